package triangles

import (
	"errors"
	"fmt"
)

// MeshID identifies geometry uploaded to a Renderer.
type MeshID int

// Renderer is the interface the scene driver renders through. The
// backend/opengl package provides the OpenGL implementation; tests use
// mocks.
type Renderer interface {
	// Upload copies one triangle's vertex data to the GPU and returns a
	// handle for drawing it. Geometry is immutable after upload.
	Upload(tri Triangle) (MeshID, error)
	// BeginFrame clears the frame, binds the shader program and sets
	// the time uniform.
	BeginFrame(fs FrameState)
	// Draw sets the mesh's mode uniform plus any mode-specific uniforms
	// and issues a 3-vertex draw call.
	Draw(id MeshID, fs FrameState)
	// Release frees one uploaded mesh.
	Release(id MeshID)
	// Delete frees the renderer's remaining GPU resources, including
	// the shader program.
	Delete()
}

// Window is the windowing collaborator polled once per frame.
type Window interface {
	ShouldClose() bool
	PresentAndPollEvents()
}

// The driver's lifecycle is strictly linear; there is no re-entry into
// initialized once shutdown begins.
type driverState int

const (
	stateUninitialized driverState = iota
	stateInitialized
	stateRunning
	stateTerminated
)

// Driver owns the scene: the fixed triangles, the renderer they are
// uploaded to and the window the frames are presented on.
type Driver struct {
	win      Window
	renderer Renderer
	scene    []Triangle
	meshes   []MeshID
	clock    func() float64
	state    driverState
}

// Option configures a Driver.
type Option func(*Driver)

// WithClock sets the elapsed-time source driving the frame state. The
// executable passes the window's elapsed seconds; the default clock is
// frozen at zero and only suitable for tests.
func WithClock(clock func() float64) Option {
	return func(d *Driver) { d.clock = clock }
}

// WithScene replaces the default five-triangle scene.
func WithScene(scene []Triangle) Option {
	return func(d *Driver) { d.scene = scene }
}

// NewDriver creates a driver over the given window and renderer. The
// driver owns the renderer's meshes and program from Init to Shutdown;
// the window stays owned by the caller.
func NewDriver(win Window, renderer Renderer, opts ...Option) *Driver {
	d := &Driver{
		win:      win,
		renderer: renderer,
		scene:    Scene(),
		clock:    func() float64 { return 0 },
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Init uploads the scene geometry. On failure every mesh uploaded so
// far is released before the error is returned, so no handle leaks past
// a failed startup.
func (d *Driver) Init() error {
	if d.state != stateUninitialized {
		return errors.New("driver: Init called twice")
	}
	for i, tri := range d.scene {
		id, err := d.renderer.Upload(tri)
		if err != nil {
			for _, m := range d.meshes {
				d.renderer.Release(m)
			}
			d.meshes = nil
			return fmt.Errorf("upload triangle %d (%v): %w", i, tri.Mode, err)
		}
		d.meshes = append(d.meshes, id)
	}
	d.state = stateInitialized
	return nil
}

// Frame renders one frame: clear, bind, set time, then draw each
// triangle in scene order with its mode-specific uniforms.
func (d *Driver) Frame() error {
	switch d.state {
	case stateInitialized:
		d.state = stateRunning
	case stateRunning:
	default:
		return errors.New("driver: Frame outside the Init/Shutdown window")
	}
	fs := FrameAt(d.clock())
	d.renderer.BeginFrame(fs)
	for _, id := range d.meshes {
		d.renderer.Draw(id, fs)
	}
	return nil
}

// Run loops until the window reports a close request, presenting and
// polling events once per frame.
func (d *Driver) Run() error {
	for !d.win.ShouldClose() {
		if err := d.Frame(); err != nil {
			return err
		}
		d.win.PresentAndPollEvents()
	}
	return nil
}

// Shutdown releases the meshes and then the renderer. Safe to call
// after a failed Init; calling it again is a no-op. GPU release must
// happen before the caller destroys the window's context.
func (d *Driver) Shutdown() {
	if d.state == stateTerminated {
		return
	}
	for _, id := range d.meshes {
		d.renderer.Release(id)
	}
	d.meshes = nil
	d.renderer.Delete()
	d.state = stateTerminated
}
