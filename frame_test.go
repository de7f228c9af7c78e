package triangles

import (
	"math"
	"testing"
)

func TestOffsetStaysWithinBounds(t *testing.T) {
	for i := 0; i <= 2000; i++ {
		elapsed := float64(i) * 0.0173
		fs := FrameAt(elapsed)
		if x := fs.Offset.X(); x < -0.75 || x > 0.75 {
			t.Fatalf("offset x = %v at t = %v, want within [-0.75, 0.75]", x, elapsed)
		}
		if y := fs.Offset.Y(); y != 0 {
			t.Fatalf("offset y = %v at t = %v, want 0", y, elapsed)
		}
	}
}

func TestOffsetZeroCrossings(t *testing.T) {
	// Offset crosses zero at t = k*pi/1.2.
	for k := 0; k < 5; k++ {
		elapsed := float64(k) * math.Pi / 1.2
		if x := FrameAt(elapsed).Offset.X(); math.Abs(float64(x)) > 1e-4 {
			t.Errorf("offset x = %v at t = %v, want ~0", x, elapsed)
		}
	}
}

func TestAngleStrictlyIncreasing(t *testing.T) {
	if angle := FrameAt(0).Angle; angle != 0 {
		t.Fatalf("angle at t = 0 is %v, want 0", angle)
	}
	prev := float32(0)
	for i := 1; i <= 200; i++ {
		elapsed := float64(i) * 0.25
		angle := FrameAt(elapsed).Angle
		if angle <= prev {
			t.Fatalf("angle not strictly increasing: %v then %v at t = %v", prev, angle, elapsed)
		}
		prev = angle
	}
}

func TestAngleIsUnwrapped(t *testing.T) {
	// Well past 2*pi the angle keeps growing rather than wrapping.
	if angle := FrameAt(100).Angle; angle != 100 {
		t.Fatalf("angle at t = 100 is %v, want 100", angle)
	}
}

func TestFrameTime(t *testing.T) {
	if ft := FrameAt(2.5).Time; ft != 2.5 {
		t.Fatalf("Time = %v, want 2.5", ft)
	}
}
