package triangles

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Motion constants for the translating and rotating triangles.
const (
	translateSpeed = 1.2  // oscillation rate in radians per second
	translateSpan  = 0.75 // maximum horizontal excursion in NDC
	rotateSpeed    = 1.0  // radians per second, never wrapped
)

// FrameState carries the per-frame uniform values derived from elapsed
// wall-clock time. It is recomputed every frame and never persisted.
type FrameState struct {
	Time   float32
	Offset mgl32.Vec2 // translation for ModeTranslating
	Angle  float32    // rotation for ModeRotating
}

// FrameAt derives the frame state for t seconds after startup. The
// offset oscillates within ±translateSpan on the x axis and the angle
// increases strictly monotonically.
func FrameAt(t float64) FrameState {
	ft := float32(t)
	return FrameState{
		Time:   ft,
		Offset: mgl32.Vec2{math32.Sin(ft*translateSpeed) * translateSpan, 0},
		Angle:  ft * rotateSpeed,
	}
}
