// Package opengl provides the OpenGL 4.3 backend for the triangles demo.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/triangles"
)

// Vertex shader source. The mode branch values match
// triangles.RenderMode; this integer contract is the wire format into
// the pipeline.
const vertexShaderSource = `
#version 430 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec3 aColor;

out vec3 vColor;

uniform int mode;
uniform vec2 offset;
uniform float angle;
uniform vec2 center;

void main() {
    vec2 pos = aPos;
    if (mode == 3) {
        pos += offset;
    } else if (mode == 4) {
        float c = cos(angle);
        float s = sin(angle);
        pos = center + mat2(c, s, -s, c) * (pos - center);
    }
    gl_Position = vec4(pos, 0.0, 1.0);
    vColor = aColor;
}
`

// Fragment shader source. Mode 0 ignores the vertex color, mode 2
// pulses it with time; all other modes pass the interpolated color
// through.
const fragmentShaderSource = `
#version 430 core
in vec3 vColor;

out vec4 FragColor;

uniform int mode;
uniform float time;

void main() {
    vec3 color = vColor;
    if (mode == 0) {
        color = vec3(0.85);
    } else if (mode == 2) {
        color = vColor * (0.55 + 0.45 * sin(time * 3.0));
    }
    FragColor = vec4(color, 1.0);
}
`

// Renderer draws the scene through a single mode-dispatch shader
// program. It implements triangles.Renderer and requires a current GL
// context on the calling thread.
type Renderer struct {
	program *Program
	clear   mgl32.Vec3
	meshes  map[triangles.MeshID]*mesh
	nextID  triangles.MeshID
}

type mesh struct {
	vao, vbo uint32
	mode     triangles.RenderMode
	pivot    mgl32.Vec2
}

// NewRenderer compiles and links the demo's shader program. A compile
// or link failure is returned with the driver's diagnostic log so the
// caller can report it and tear down.
func NewRenderer() (*Renderer, error) {
	program, err := CompileProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("create shader: %w", err)
	}
	return &Renderer{
		program: program,
		clear:   mgl32.Vec3{0.10, 0.11, 0.13},
		meshes:  make(map[triangles.MeshID]*mesh),
	}, nil
}

// Upload copies one triangle into its own vertex array and buffer.
func (r *Renderer) Upload(tri triangles.Triangle) (triangles.MeshID, error) {
	m := &mesh{mode: tri.Mode, pivot: tri.Pivot}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(tri.Verts)*int(unsafe.Sizeof(triangles.Vertex{})),
		gl.Ptr(tri.Verts[:]), gl.STATIC_DRAW)

	stride := int32(unsafe.Sizeof(triangles.Vertex{}))

	// Position attribute
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	// Color attribute
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, unsafe.Offsetof(triangles.Vertex{}.Color))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	id := r.nextID
	r.nextID++
	r.meshes[id] = m
	return id, nil
}

// BeginFrame clears the frame and binds the shader program with the
// frame's time uniform.
func (r *Renderer) BeginFrame(fs triangles.FrameState) {
	gl.ClearColor(r.clear.X(), r.clear.Y(), r.clear.Z(), 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	r.program.Use()
	r.program.SetFloat("time", fs.Time)
}

// Draw sets the mesh's mode uniform, the mode-specific uniforms, and
// issues a 3-vertex draw call.
func (r *Renderer) Draw(id triangles.MeshID, fs triangles.FrameState) {
	m, ok := r.meshes[id]
	if !ok {
		return
	}

	r.program.SetInt("mode", int32(m.mode))
	switch m.mode {
	case triangles.ModeTranslating:
		r.program.SetVec2("offset", fs.Offset)
	case triangles.ModeRotating:
		r.program.SetFloat("angle", fs.Angle)
		r.program.SetVec2("center", m.pivot)
	}

	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
}

// Release frees one mesh's buffers.
func (r *Renderer) Release(id triangles.MeshID) {
	m, ok := r.meshes[id]
	if !ok {
		return
	}
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteVertexArrays(1, &m.vao)
	delete(r.meshes, id)
}

// Delete releases any remaining meshes and the shader program. The GL
// context must still be current.
func (r *Renderer) Delete() {
	for id := range r.meshes {
		r.Release(id)
	}
	r.program.Delete()
}
