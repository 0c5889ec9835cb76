package orion

import (
	"log/slog"

	"github.com/oliverbestmann/glview/glm"
)

// adapters translate the raw window events into application events.
type adapters struct {
	viewer *Viewer
}

func (a *adapters) OnResize(_, _ int) {
	v := a.viewer
	if v.window == nil {
		return
	}

	// always use the framebuffer size, the event might report the window size
	width, height := v.window.FramebufferSize()
	width, height = max(0, width), max(0, height)

	v.bufferWidth = width
	v.bufferHeight = height

	slog.Debug("Resize framebuffer",
		slog.Int("width", width),
		slog.Int("height", height),
	)

	if v.osd != nil {
		v.osd.Resize(width, height)
	}

	if v.app != nil && !v.closing() {
		v.app.Resize(uint32(width), uint32(height))
	}
}

func (a *adapters) OnCursor(x, y float64) {
	v := a.viewer

	if v.hdpi.Get() {
		x *= hdpiScale
		y *= hdpiScale
	}

	v.cursor = glm.Vec2d{x, y}

	if handler, ok := v.app.(CursorHandler); ok && !v.closing() {
		handler.CursorEvent(float32(x), float32(y))
	}
}

func (a *adapters) OnScroll(dx, dy float64) {
	v := a.viewer

	if handler, ok := v.app.(ScrollHandler); ok && !v.closing() {
		handler.ScrollEvent(float32(dx), float32(dy))
	}
}

func (a *adapters) OnMouseButton(button MouseButton, action Action, mods ModifierKey) {
	v := a.viewer

	if handler, ok := v.app.(MouseHandler); ok && !v.closing() {
		handler.MouseEvent(button, action, mods)
	}
}

func (a *adapters) OnKey(key Key, _ int, action Action, mods ModifierKey) {
	v := a.viewer

	switch key {
	case KeyEscape:
		if action == Press && v.window != nil {
			slog.Info("Close requested")
			v.window.RequestClose()
		}

		return

	case v.opts.ToggleKey:
		if action == Press {
			v.toggleInfo()
		}

		return

	case v.opts.ZoomKey:
		if action == Press {
			v.toggleZoom()
		}

		return
	}

	if handler, ok := v.app.(KeyboardHandler); ok && !v.closing() {
		handler.KeyboardEvent(key, action, mods)
	}
}

func (v *Viewer) toggleInfo() {
	v.showInfo = !v.showInfo

	// frames drawn while hidden do not count
	if v.showInfo {
		v.frames.Start(v.opts.Clock())
	}
}

func (v *Viewer) toggleZoom() {
	v.showZoom = !v.showZoom

	if _, ok := v.window.(FrameReader); v.showZoom && !ok {
		slog.Info("Zoom view is not supported by this window")
	}
}

func (a *adapters) OnError(err error) {
	slog.Error("Window backend failed", slog.String("err", err.Error()))
}
