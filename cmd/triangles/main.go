// Command triangles opens a window and draws five small triangles, each
// exercising a different per-draw transform: static color, per-vertex
// color, a time-based color pulse, a horizontal oscillation, and a
// continuous rotation. Close the window or press Escape to exit.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-theft-auto/triangles"
	"github.com/go-theft-auto/triangles/backend/opengl"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	windowTitle  = "triangles"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	window, err := opengl.NewWindow(windowWidth, windowHeight, windowTitle)
	if err != nil {
		return err
	}
	defer window.Destroy()

	renderer, err := opengl.NewRenderer()
	if err != nil {
		return err
	}

	driver := triangles.NewDriver(window, renderer, triangles.WithClock(window.Elapsed))
	defer driver.Shutdown()

	if err := driver.Init(); err != nil {
		return err
	}
	return driver.Run()
}
