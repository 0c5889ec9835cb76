package orion

// Application is the visual component hosted by a Viewer. The viewer calls
// Render once per frame and forwards buffer resizes. Input is forwarded to
// the optional handler interfaces below if the application implements them.
type Application interface {
	// Name is included in the window title if the application is set
	// before the viewer is initialized.
	Name() string

	// Info is shown in the application line of the on-screen display.
	Info() string

	// Init is called once by Viewer.Init, after the window exists.
	Init()

	// Render draws the content of the current frame.
	Render()

	// Resize reports the new framebuffer size in pixels.
	Resize(width, height uint32)
}

// CursorHandler receives cursor movements in framebuffer pixels,
// (0, 0) is the top left corner.
type CursorHandler interface {
	CursorEvent(x, y float32)
}

type ScrollHandler interface {
	ScrollEvent(dx, dy float32)
}

type MouseHandler interface {
	MouseEvent(button MouseButton, action Action, mods ModifierKey)
}

// KeyboardHandler receives every key event the viewer does not
// reserve for itself, including releases and repeats.
type KeyboardHandler interface {
	KeyboardEvent(key Key, action Action, mods ModifierKey)
}

// HDPIAware applications are told before Init when the
// framebuffer is larger than the requested window size.
type HDPIAware interface {
	UseHDPIRenderTarget()
}

// Releaser is implemented by resources that must be freed explicitly.
// The viewer releases its application and on-screen display on teardown.
type Releaser interface {
	Release()
}
