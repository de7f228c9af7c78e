package triangles

import "github.com/go-gl/mathgl/mgl32"

// rotPivot is the rotation center for the rotating triangle, a literal
// constant approximating the centroid of its authored geometry.
var rotPivot = mgl32.Vec2{0.75, 0.5}

// Scene returns the five demo triangles in draw order. Four sit on the
// top row; the translating one sits alone on the bottom row so its
// oscillation has room on both sides.
func Scene() []Triangle {
	return []Triangle{
		{
			Mode: ModeStatic,
			Verts: [3]Vertex{
				{Pos: mgl32.Vec2{-0.90, 0.40}, Color: mgl32.Vec3{0.85, 0.85, 0.85}},
				{Pos: mgl32.Vec2{-0.60, 0.40}, Color: mgl32.Vec3{0.85, 0.85, 0.85}},
				{Pos: mgl32.Vec2{-0.75, 0.70}, Color: mgl32.Vec3{0.85, 0.85, 0.85}},
			},
		},
		{
			Mode: ModePerVertexColor,
			Verts: [3]Vertex{
				{Pos: mgl32.Vec2{-0.40, 0.40}, Color: mgl32.Vec3{1, 0, 0}},
				{Pos: mgl32.Vec2{-0.10, 0.40}, Color: mgl32.Vec3{0, 1, 0}},
				{Pos: mgl32.Vec2{-0.25, 0.70}, Color: mgl32.Vec3{0, 0, 1}},
			},
		},
		{
			Mode: ModePulsingColor,
			Verts: [3]Vertex{
				{Pos: mgl32.Vec2{0.10, 0.40}, Color: mgl32.Vec3{1.0, 0.55, 0.10}},
				{Pos: mgl32.Vec2{0.40, 0.40}, Color: mgl32.Vec3{1.0, 0.55, 0.10}},
				{Pos: mgl32.Vec2{0.25, 0.70}, Color: mgl32.Vec3{1.0, 0.55, 0.10}},
			},
		},
		{
			Mode: ModeTranslating,
			Verts: [3]Vertex{
				{Pos: mgl32.Vec2{-0.15, -0.70}, Color: mgl32.Vec3{0.10, 0.80, 0.90}},
				{Pos: mgl32.Vec2{0.15, -0.70}, Color: mgl32.Vec3{0.10, 0.80, 0.90}},
				{Pos: mgl32.Vec2{0.00, -0.40}, Color: mgl32.Vec3{0.10, 0.80, 0.90}},
			},
		},
		{
			Mode:  ModeRotating,
			Pivot: rotPivot,
			Verts: [3]Vertex{
				{Pos: mgl32.Vec2{0.60, 0.40}, Color: mgl32.Vec3{0.90, 0.20, 0.80}},
				{Pos: mgl32.Vec2{0.90, 0.40}, Color: mgl32.Vec3{0.90, 0.20, 0.80}},
				{Pos: mgl32.Vec2{0.75, 0.70}, Color: mgl32.Vec3{0.90, 0.20, 0.80}},
			},
		},
	}
}
