package triangles

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderMode selects which visual behavior a draw call exercises.
// The numeric values are part of the shader contract: the backend passes
// the mode to the pipeline as an integer uniform, and the shaders branch
// on the same values.
type RenderMode int32

const (
	// ModeStatic draws with a fixed color chosen in the fragment shader.
	ModeStatic RenderMode = iota
	// ModePerVertexColor interpolates the vertex colors across the face.
	ModePerVertexColor
	// ModePulsingColor scales the vertex colors by a sine of the time
	// uniform inside the shader.
	ModePulsingColor
	// ModeTranslating offsets the position by the frame's 2D offset.
	ModeTranslating
	// ModeRotating rotates the position around the triangle's pivot by
	// the frame's angle.
	ModeRotating
)

var modeNames = [...]string{
	"Static",
	"PerVertexColor",
	"PulsingColor",
	"Translating",
	"Rotating",
}

func (m RenderMode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("RenderMode(%d)", int32(m))
	}
	return modeNames[m]
}

// Vertex is one interleaved vertex: a 2D position in normalized device
// coordinates plus an RGB color.
// Memory layout matches OpenGL vertex attribute expectations.
type Vertex struct {
	Pos   mgl32.Vec2
	Color mgl32.Vec3
}

// Triangle is one immutable piece of scene geometry together with the
// render mode it is permanently associated with. Pivot is the rotation
// center and is only meaningful for ModeRotating.
type Triangle struct {
	Verts [3]Vertex
	Mode  RenderMode
	Pivot mgl32.Vec2
}
