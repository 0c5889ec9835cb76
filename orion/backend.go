package orion

import "github.com/oliverbestmann/glview/osd"

// Backend provides windows, a rendering context and input polling.
type Backend interface {
	Init() error
	CreateWindow(width, height int, title string) (Window, error)

	// PollEvents processes all pending input events and dispatches them
	// to the listeners of the backends windows before returning.
	PollEvents()

	Terminate()
}

// Window is a single window with a rendering context.
type Window interface {
	MakeCurrent()
	SetSwapInterval(interval int)
	SetListener(listener EventListener)

	// Clear starts a new frame by clearing the framebuffer.
	Clear()

	// SwapBuffers presents the frame. It may block for up to one
	// refresh interval of the display.
	SwapBuffers()

	// FramebufferSize returns the size of the framebuffer in pixels.
	FramebufferSize() (width, height int)

	RequestClose()
	ShouldClose() bool

	// OSD returns the on-screen display drawing into this window.
	OSD() OSD

	Destroy()
}

// EventListener receives the raw window events of a Window.
type EventListener interface {
	OnResize(width, height int)
	OnKey(key Key, scancode int, action Action, mods ModifierKey)
	OnCursor(x, y float64)
	OnScroll(dx, dy float64)
	OnMouseButton(button MouseButton, action Action, mods ModifierKey)
	OnError(err error)
}

// OSD draws short text lines on top of the frame. Lines are addressed
// by the id returned from AddLine. Positions are normalized device
// coordinates, (-1, -1) is the bottom left corner.
type OSD interface {
	Init(hdpi bool) error
	AddLine(x, y float32, text string, size int, color osd.Color) int
	SetText(id int, text string)
	SetColor(id int, color osd.Color)
	Resize(width, height int)
	Render()
}
