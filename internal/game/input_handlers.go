package game

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func SetupInputHandlers(app *App) {
	window := app.window

	// Key, mouse button, cursor and scroll events feed the input manager
	app.inputManager.SetCallbacks(window)

	// Framebuffer size callback
	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
		// NOTE: Do not render here. Rely on SetRefreshCallback for smooth resizing on macOS.
	})

	// Refresh callback
	window.SetRefreshCallback(func(w *glfw.Window) {
		app.render()
		w.SwapBuffers()
	})
}
