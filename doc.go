/*
Package triangles is a minimal real-time rendering demo: five small
triangles, each drawn with a different per-draw transform selected by an
integer mode uniform: static color, per-vertex color, a time-based
color pulse, a horizontal oscillation, and a continuous rotation.

# Overview

The package itself is backend-agnostic. It defines the scene (five fixed
triangles in normalized device coordinates), the per-frame motion math
(FrameAt), and a Driver that renders the scene through the Renderer and
Window interfaces. The backend/opengl subpackage provides the OpenGL 4.3
implementation: a GLFW window wrapper and a renderer built around a
single mode-dispatch shader program.

# Quick Start

	window, err := opengl.NewWindow(1280, 720, "triangles")
	if err != nil {
	    // fatal: no usable window or GL context
	}
	defer window.Destroy()

	renderer, err := opengl.NewRenderer()
	if err != nil {
	    // shader compile/link diagnostic in err
	}

	driver := triangles.NewDriver(window, renderer, triangles.WithClock(window.Elapsed))
	defer driver.Shutdown()

	if err := driver.Init(); err != nil {
	    return err
	}
	return driver.Run()

The driver's lifecycle is strictly linear: Init uploads the geometry,
Run loops one Frame per iteration until the window reports a close
request, and Shutdown releases every GPU handle before the window (and
with it the context) is destroyed.
*/
package triangles
