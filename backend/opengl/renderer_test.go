package opengl

import (
	"testing"

	"github.com/go-gl/gl/v4.3-core/gl"

	"github.com/go-theft-auto/triangles"
)

func TestRendererFrame(t *testing.T) {
	newTestContext(t)

	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() returned error: %v", err)
	}
	defer r.Delete()

	var ids []triangles.MeshID
	for _, tri := range triangles.Scene() {
		id, err := r.Upload(tri)
		if err != nil {
			t.Fatalf("Upload() returned error: %v", err)
		}
		ids = append(ids, id)
	}

	drainGLErrors()
	fs := triangles.FrameAt(1.25)
	r.BeginFrame(fs)
	for _, id := range ids {
		r.Draw(id, fs)
	}
	if glErr := gl.GetError(); glErr != gl.NO_ERROR {
		t.Fatalf("frame raised GL error 0x%x", glErr)
	}

	for _, id := range ids {
		r.Release(id)
	}
	if glErr := gl.GetError(); glErr != gl.NO_ERROR {
		t.Fatalf("release raised GL error 0x%x", glErr)
	}
}
