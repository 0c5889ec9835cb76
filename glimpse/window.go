package glimpse

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/glview/orion"
	"github.com/oliverbestmann/glview/osd"
	"github.com/oliverbestmann/glview/pulse"
)

var clearColor = wgpu.Color{R: 0, G: 0, B: 0, A: 1}

// Window is a glfw window that renders through webgpu. The surface
// texture of the current frame is available via Target between
// Clear and SwapBuffers.
type Window struct {
	win *glfw.Window

	ctx    *pulse.Context
	view   *pulse.View
	clear  *pulse.ClearCommand
	images *pulse.ImageCommand

	osd *osd.Text

	listener   orion.EventListener
	configured bool
}

func newWindow(width, height int, title string) (w *Window, err error) {
	// rendering is done by webgpu, no opengl context required
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	ctx, err := pulse.NewContext(wgpuglfw.GetSurfaceDescriptor(win))
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("initialize webgpu: %w", err)
	}

	w = &Window{
		win:    win,
		ctx:    ctx,
		view:   pulse.NewView(ctx),
		clear:  pulse.NewClear(ctx),
		images: pulse.NewImageCommand(ctx),
	}

	w.osd = osd.NewText(w)

	win.SetInputMode(glfw.StickyMouseButtonsMode, glfw.True)

	configureInput(w)

	return w, nil
}

// MakeCurrent configures the surface to the current framebuffer size.
func (w *Window) MakeCurrent() {
	width, height := w.FramebufferSize()
	w.view.Configure(uint32(width), uint32(height))
	w.configured = true
}

func (w *Window) SetSwapInterval(interval int) {
	w.view.SetPresentMode(pulse.PresentMode(interval))

	if w.configured {
		w.MakeCurrent()
	}
}

func (w *Window) SetListener(listener orion.EventListener) {
	w.listener = listener
}

// Clear acquires the surface texture of the next frame and clears it.
func (w *Window) Clear() {
	target, err := w.view.Acquire()
	if err != nil {
		w.report(fmt.Errorf("acquire frame: %w", err))
		return
	}

	if err := w.clear.Clear(target, clearColor); err != nil {
		w.report(fmt.Errorf("clear frame: %w", err))
	}
}

// SwapBuffers presents the current frame.
func (w *Window) SwapBuffers() {
	w.view.Present()
}

func (w *Window) FramebufferSize() (int, int) {
	return w.win.GetFramebufferSize()
}

func (w *Window) RequestClose() {
	w.win.SetShouldClose(true)
}

func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

func (w *Window) OSD() orion.OSD {
	return w.osd
}

// DrawOverlay blends the overlay image over the current frame.
func (w *Window) DrawOverlay(overlay *image.RGBA) error {
	target := w.view.Target()
	if target == nil {
		return fmt.Errorf("no frame in flight")
	}

	return w.images.Draw(target, overlay)
}

// Context returns the webgpu context applications render with.
func (w *Window) Context() *pulse.Context {
	return w.ctx
}

// Target returns the render target of the current frame, or nil
// outside of Clear and SwapBuffers.
func (w *Window) Target() *pulse.RenderTarget {
	return w.view.Target()
}

// Format returns the texture format of the surface.
func (w *Window) Format() wgpu.TextureFormat {
	return w.view.Format()
}

func (w *Window) Destroy() {
	if w.win == nil {
		return
	}

	w.view.Discard()
	w.images.Release()
	pulse.PurgeSamplers()
	w.ctx.Release()

	w.win.Destroy()
	w.win = nil
}

func (w *Window) report(err error) {
	if w.listener == nil {
		slog.Error("Window failed", slog.String("err", err.Error()))
		return
	}

	w.listener.OnError(err)
}

func configureInput(w *Window) {
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		// the surface must match the framebuffer before anyone renders again
		w.view.Configure(uint32(max(0, width)), uint32(max(0, height)))

		if w.listener != nil {
			w.listener.OnResize(width, height)
		}
	})

	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if w.listener != nil {
			w.listener.OnKey(orion.Key(key), scancode, orion.Action(action), orion.ModifierKey(mods))
		}
	})

	w.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if w.listener != nil {
			w.listener.OnCursor(x, y)
		}
	})

	w.win.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		if w.listener != nil {
			w.listener.OnScroll(dx, dy)
		}
	})

	w.win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if w.listener != nil {
			w.listener.OnMouseButton(orion.MouseButton(button), orion.Action(action), orion.ModifierKey(mods))
		}
	})
}
