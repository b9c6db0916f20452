package main

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/netkeep80/isocubic-sub006/internal/graphics"
	"github.com/netkeep80/isocubic-sub006/internal/grid"
)

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(winWidth, winHeight, "isocubic", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return nil, err
	}

	// Disable V-Sync; the loop runs its own limiter.
	glfw.SwapInterval(0)

	return window, nil
}

func setupInputHandlers(window *glfw.Window, manager *grid.Manager, renderer *graphics.Renderer, camera *graphics.OrbitCamera) {
	var dragging bool
	var lastX, lastY float64

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button == glfw.MouseButtonLeft {
			dragging = action == glfw.Press
			if dragging {
				lastX, lastY = w.GetCursorPos()
			}
		}
	})

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if !dragging {
			return
		}
		dx := float32(xpos-lastX) * 0.01
		dy := float32(ypos-lastY) * 0.01
		lastX, lastY = xpos, ypos
		camera.Rotate(dx, dy)
	})

	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		camera.Zoom(float32(yoff) * camera.Distance * 0.1)
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		case glfw.KeyL:
			renderer.DebugLOD = !renderer.DebugLOD
		case glfw.KeyLeftBracket:
			manager.SetQuality(manager.Quality() * 0.8)
		case glfw.KeyRightBracket:
			manager.SetQuality(manager.Quality() / 0.8)
		}
	})
}
