package orion

import "log/slog"

// frame runs one iteration of the frame loop.
func (v *Viewer) frame() {
	v.switchApplication()

	v.window.Clear()

	if v.app != nil {
		v.app.Render()
	}

	if v.showZoom {
		v.drawZoom()
	}

	// draw the overlay last so it stays on top
	if v.showInfo {
		v.updateFramerate()
		v.drawInfo()
	}

	v.window.SwapBuffers()

	// dispatches the pending events to the adapters
	v.backend.PollEvents()

	v.frames.FrameDone()
}

// switchApplication activates an application set after Init.
func (v *Viewer) switchApplication() {
	if !v.hasPending {
		return
	}

	app := v.pending
	v.pending = nil
	v.hasPending = false

	if app == v.app {
		return
	}

	v.replaceApplication(app)

	if app == nil {
		return
	}

	slog.Info("Switch application", slog.String("name", app.Name()))

	v.initApplication(app)
	app.Resize(uint32(v.bufferWidth), uint32(v.bufferHeight))
}
