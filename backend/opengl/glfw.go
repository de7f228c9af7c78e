package opengl

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window owns the GLFW window and its OpenGL context. It implements
// triangles.Window. The calling goroutine must be locked to the main
// OS thread before NewWindow and stay there for the window's lifetime.
type Window struct {
	win   *glfw.Window
	start float64
}

// NewWindow initializes GLFW, opens a fixed-size window with a 4.3 core
// context and loads the GL functions. Any failure here is a fatal
// startup condition for the demo; GLFW is terminated before returning
// the error.
func NewWindow(width, height int, title string) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	// Escape closes the window, same as the window manager's close
	// button.
	win.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	enableDebugOutput()

	fbw, fbh := win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))

	return &Window{win: win, start: glfw.GetTime()}, nil
}

// enableDebugOutput routes GL debug messages to stderr. Debug output is
// core in 4.3; notification-severity chatter is dropped.
func enableDebugOutput() {
	gl.Enable(gl.DEBUG_OUTPUT)
	gl.DebugMessageCallback(func(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
		if severity == gl.DEBUG_SEVERITY_NOTIFICATION {
			return
		}
		fmt.Fprintf(os.Stderr, "gl debug [source=0x%x type=0x%x severity=0x%x] %s\n",
			source, gltype, severity, message)
	}, nil)
}

// ShouldClose reports whether a close was requested.
func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// PresentAndPollEvents swaps the frame buffer and processes pending
// input and window events.
func (w *Window) PresentAndPollEvents() {
	w.win.SwapBuffers()
	glfw.PollEvents()
}

// Elapsed returns seconds since the window was created. The driver uses
// this as its frame clock.
func (w *Window) Elapsed() float64 {
	return glfw.GetTime() - w.start
}

// Destroy tears down the window and the GLFW library. All GPU resources
// must have been released first, since this destroys the context.
func (w *Window) Destroy() {
	w.win.Destroy()
	glfw.Terminate()
}
