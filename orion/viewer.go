package orion

import (
	"errors"
	"log/slog"

	"github.com/oliverbestmann/glview/glm"
)

// hdpiScale is the fixed factor applied to cursor positions on hdpi displays.
// The real ratio between framebuffer and window size is not measured.
const hdpiScale = 2

// Viewer opens a window, runs the frame loop and forwards window events
// to the hosted Application. A Viewer must only be used from the goroutine
// that called Init.
type Viewer struct {
	backend Backend
	opts    Options

	window Window
	osd    OSD
	events EventListener

	app Application

	// application set after Init, swapped in on the next frame
	pending    Application
	hasPending bool

	backendReady bool
	initialized  bool

	bufferWidth  int
	bufferHeight int

	hdpi     fixed[bool]
	showInfo bool
	showZoom bool
	cursor   glm.Vec2d

	frames FrameCounter

	lineApplication int
	lineFramerate   int
}

// New creates a viewer using the given backend. opts may be nil.
func New(backend Backend, opts *Options) *Viewer {
	var options Options
	if opts != nil {
		options = *opts
	}

	options = options.withDefaults()

	v := &Viewer{
		backend:  backend,
		opts:     options,
		showInfo: !options.HideInfo,
		showZoom: options.ShowZoom,
	}

	v.events = &adapters{viewer: v}

	return v
}

// SetApplication hands the application over to the viewer. The viewer owns
// the application from now on and releases it on teardown or when it is
// replaced. After Init the application is switched at the beginning of the
// next frame.
func (v *Viewer) SetApplication(app Application) {
	if !v.initialized {
		v.replaceApplication(app)
		return
	}

	if v.hasPending && v.pending != app {
		release(v.pending)
	}

	v.pending = app
	v.hasPending = true
}

// Init opens the window, installs the event handlers and prepares the
// on-screen display. Init must be called exactly once before Start.
// All errors returned by Init are fatal, there is no window to continue with.
func (v *Viewer) Init() error {
	if v.initialized || v.window != nil {
		return ErrAlreadyInitialized
	}

	if err := v.backend.Init(); err != nil {
		return initFailed(ErrBackendInit, err)
	}

	v.backendReady = true

	title := v.opts.Title
	if v.app != nil {
		title += ": " + v.app.Name()
	}

	window, err := v.backend.CreateWindow(v.opts.Width, v.opts.Height, title)
	if err != nil {
		return initFailed(ErrWindowCreate, err)
	}

	v.window = window

	window.SetListener(v.events)
	window.MakeCurrent()
	window.SetSwapInterval(v.opts.SwapInterval)

	// the framebuffer is larger than requested on hdpi displays
	bufferWidth, bufferHeight := window.FramebufferSize()
	v.hdpi.set(bufferWidth > v.opts.Width)

	slog.Info("Window created",
		slog.String("title", title),
		slog.Int("width", v.opts.Width),
		slog.Int("height", v.opts.Height),
		slog.Int("bufferWidth", bufferWidth),
		slog.Int("bufferHeight", bufferHeight),
		slog.Bool("hdpi", v.hdpi.Get()),
	)

	if v.app != nil {
		v.initApplication(v.app)
	}

	v.osd = v.opts.OSD
	if v.osd == nil {
		v.osd = window.OSD()
	}

	if v.osd == nil {
		return initFailed(ErrOSDInit, errors.New("window has no on-screen display"))
	}

	if err := v.osd.Init(v.hdpi.Get()); err != nil {
		return initFailed(ErrOSDInit, err)
	}

	v.lineApplication = v.osd.AddLine(-0.95, 0.90, "Application", 18, v.opts.NormalColor)
	v.lineFramerate = v.osd.AddLine(-0.98, -0.96, "Framerate", 14, v.opts.NormalColor)

	v.initialized = true

	// size all components to the current framebuffer
	v.events.OnResize(bufferWidth, bufferHeight)

	return nil
}

// Start runs the frame loop until the window is asked to close.
func (v *Viewer) Start() error {
	if !v.initialized {
		return ErrNotInitialized
	}

	v.frames.Start(v.opts.Clock())

	for !v.window.ShouldClose() {
		v.frame()
	}

	slog.Info("Window closed")

	return nil
}

// Release destroys the window and frees the application and the on-screen
// display. It is safe to call Release on a viewer that was never initialized.
func (v *Viewer) Release() {
	if v.window != nil {
		v.window.Destroy()
		v.window = nil
	}

	if v.backendReady {
		v.backend.Terminate()
		v.backendReady = false
	}

	if v.hasPending {
		if v.pending != v.app {
			release(v.pending)
		}

		v.pending = nil
		v.hasPending = false
	}

	if v.app != nil {
		release(v.app)
		v.app = nil
	}

	if v.osd != nil {
		release(v.osd)
		v.osd = nil
	}

	v.initialized = false
}

// BufferSize returns the size of the framebuffer in pixels.
func (v *Viewer) BufferSize() (width, height int) {
	return v.bufferWidth, v.bufferHeight
}

// HDPI reports whether cursor positions are scaled to framebuffer pixels.
func (v *Viewer) HDPI() bool {
	return v.hdpi.Get()
}

// ShowInfo reports whether the on-screen display is drawn.
func (v *Viewer) ShowInfo() bool {
	return v.showInfo
}

// ShowZoom reports whether the zoom view is drawn.
func (v *Viewer) ShowZoom() bool {
	return v.showZoom
}

// Cursor returns the last cursor position in framebuffer pixels.
func (v *Viewer) Cursor() glm.Vec2d {
	return v.cursor
}

// Window returns the window opened by Init.
func (v *Viewer) Window() Window {
	return v.window
}

// Application returns the application that renders the current frame.
func (v *Viewer) Application() Application {
	return v.app
}

func (v *Viewer) replaceApplication(app Application) {
	if v.app != nil && v.app != app {
		release(v.app)
	}

	v.app = app
}

func (v *Viewer) initApplication(app Application) {
	if v.hdpi.Get() {
		if aware, ok := app.(HDPIAware); ok {
			aware.UseHDPIRenderTarget()
		}
	}

	app.Init()
}

func (v *Viewer) closing() bool {
	return v.window == nil || v.window.ShouldClose()
}

func release(value any) {
	if releaser, ok := value.(Releaser); ok {
		releaser.Release()
	}
}
