package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program is a linked shader program with cached uniform locations.
// A Program is either fully linked and usable, or CompileProgram
// returned an error and no Program exists.
type Program struct {
	id   uint32
	locs map[string]int32
}

// CompileProgram compiles a vertex/fragment source pair and links them
// into a program. The sources do not need a trailing NUL. On a stage or
// link failure the returned error carries the GL info log, names the
// failing stage, and no partial program object is leaked. The stage
// objects are deleted as soon as the program is linked.
func CompileProgram(vertexSource, fragmentSource string) (*Program, error) {
	vertex, err := compileShader(gl.VERTEX_SHADER, "vertex", vertexSource)
	if err != nil {
		return nil, err
	}
	fragment, err := compileShader(gl.FRAGMENT_SHADER, "fragment", fragmentSource)
	if err != nil {
		gl.DeleteShader(vertex)
		return nil, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	// The program holds its own reference to the stages now.
	gl.DeleteShader(vertex)
	gl.DeleteShader(fragment)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := programInfoLog(program)
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("program link failed: %s", log)
	}

	return &Program{id: program, locs: make(map[string]int32)}, nil
}

func compileShader(kind uint32, stage, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader compilation failed: %s", stage, trimLog(log))
	}
	return shader, nil
}

func programInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	log := make([]byte, logLength+1)
	gl.GetProgramInfoLog(program, logLength, nil, &log[0])
	return trimLog(log)
}

func trimLog(log []byte) string {
	return strings.TrimRight(string(log), "\x00\n")
}

// Use binds the program as the active program.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// UniformLocation resolves a uniform by name, caching the result. A
// uniform the linker optimized away resolves to -1; GL defines setting
// location -1 as a no-op, so a miss is not fatal.
func (p *Program) UniformLocation(name string) int32 {
	loc, ok := p.locs[name]
	if !ok {
		loc = gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
		p.locs[name] = loc
	}
	return loc
}

// SetInt sets an int uniform on the bound program.
func (p *Program) SetInt(name string, v int32) {
	gl.Uniform1i(p.UniformLocation(name), v)
}

// SetFloat sets a float uniform on the bound program.
func (p *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(p.UniformLocation(name), v)
}

// SetVec2 sets a vec2 uniform on the bound program.
func (p *Program) SetVec2(name string, v mgl32.Vec2) {
	gl.Uniform2f(p.UniformLocation(name), v.X(), v.Y())
}

// Delete releases the program object. Call at most once; the Program
// must not be used afterward.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}
