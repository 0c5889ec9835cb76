package orion

import (
	"fmt"
	"image"
	"image/draw"
	"time"

	"github.com/oliverbestmann/glview/osd"
)

// callLog records the calls of all fakes in order.
type callLog struct {
	calls []string
}

func (l *callLog) add(format string, args ...any) {
	l.calls = append(l.calls, fmt.Sprintf(format, args...))
}

type fakeBackend struct {
	log *callLog

	initErr   error
	createErr error

	window *fakeWindow

	// returned instead of window if set
	readable *readableWindow

	// polls are consumed one per call to PollEvents
	polls []func(w *fakeWindow)

	// close the window after this many polls, 0 keeps it open
	closeAfter int
	pollCount  int

	created    int
	terminated int
}

func newFakeBackend(bufferWidth, bufferHeight int) *fakeBackend {
	log := &callLog{}

	return &fakeBackend{
		log: log,
		window: &fakeWindow{
			log:          log,
			bufferWidth:  bufferWidth,
			bufferHeight: bufferHeight,
			osd:          newFakeOSD(log),
		},
		closeAfter: 1,
	}
}

func (b *fakeBackend) Init() error {
	b.log.add("backend.init")
	return b.initErr
}

func (b *fakeBackend) CreateWindow(width, height int, title string) (Window, error) {
	b.log.add("backend.create %dx%d %q", width, height, title)

	if b.createErr != nil {
		return nil, b.createErr
	}

	b.created++

	if b.readable != nil {
		return b.readable, nil
	}

	return b.window, nil
}

func (b *fakeBackend) PollEvents() {
	b.log.add("poll")

	if len(b.polls) > 0 {
		poll := b.polls[0]
		b.polls = b.polls[1:]
		poll(b.window)
	}

	b.pollCount++
	if b.closeAfter > 0 && b.pollCount >= b.closeAfter {
		b.window.shouldClose = true
	}
}

func (b *fakeBackend) Terminate() {
	b.log.add("backend.terminate")
	b.terminated++
}

type fakeWindow struct {
	log *callLog

	listener EventListener

	bufferWidth  int
	bufferHeight int

	swapInterval int
	shouldClose  bool
	destroyed    int

	osd *fakeOSD
}

func (w *fakeWindow) MakeCurrent() {
	w.log.add("window.current")
}

func (w *fakeWindow) SetSwapInterval(interval int) {
	w.swapInterval = interval
}

func (w *fakeWindow) SetListener(listener EventListener) {
	w.log.add("window.listener")
	w.listener = listener
}

func (w *fakeWindow) Clear() {
	w.log.add("clear")
}

func (w *fakeWindow) SwapBuffers() {
	w.log.add("swap")
}

func (w *fakeWindow) FramebufferSize() (int, int) {
	return w.bufferWidth, w.bufferHeight
}

func (w *fakeWindow) RequestClose() {
	w.log.add("window.close")
	w.shouldClose = true
}

func (w *fakeWindow) ShouldClose() bool {
	return w.shouldClose
}

func (w *fakeWindow) OSD() OSD {
	if w.osd == nil {
		return nil
	}

	return w.osd
}

func (w *fakeWindow) Destroy() {
	w.log.add("window.destroy")
	w.destroyed++
}

// resize changes the framebuffer size and notifies the listener.
func (w *fakeWindow) resize(width, height int) {
	w.bufferWidth = width
	w.bufferHeight = height
	w.listener.OnResize(width/2, height/2)
}

// readableWindow is a fakeWindow whose frame can be read back.
type readableWindow struct {
	*fakeWindow

	frame   *image.RGBA
	readErr error

	reads []image.Rectangle
	drawn []drawnImage
}

type drawnImage struct {
	img *image.RGBA
	pos image.Point
}

func (b *fakeBackend) useReadableWindow(frame *image.RGBA) *readableWindow {
	b.readable = &readableWindow{fakeWindow: b.window, frame: frame}
	return b.readable
}

func (w *readableWindow) ReadPixels(rect image.Rectangle) (*image.RGBA, error) {
	w.log.add("window.read %v", rect)
	w.reads = append(w.reads, rect)

	if w.readErr != nil {
		return nil, w.readErr
	}

	pixels := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(pixels, pixels.Bounds(), w.frame, rect.Min, draw.Src)

	return pixels, nil
}

func (w *readableWindow) DrawPixels(img *image.RGBA, pos image.Point) error {
	w.log.add("window.draw %v", pos)
	w.drawn = append(w.drawn, drawnImage{img: img, pos: pos})
	return nil
}

type fakeLine struct {
	x, y  float32
	text  string
	size  int
	color osd.Color
}

type fakeOSD struct {
	log *callLog

	initErr error
	hdpi    bool

	lines   []fakeLine
	resizes [][2]int
	renders int

	// every text written to a line, by line id
	texts map[int][]string

	released int
}

func newFakeOSD(log *callLog) *fakeOSD {
	return &fakeOSD{log: log, texts: map[int][]string{}}
}

func (o *fakeOSD) Init(hdpi bool) error {
	o.log.add("osd.init hdpi=%v", hdpi)
	o.hdpi = hdpi
	return o.initErr
}

func (o *fakeOSD) AddLine(x, y float32, text string, size int, color osd.Color) int {
	o.lines = append(o.lines, fakeLine{x: x, y: y, text: text, size: size, color: color})
	return len(o.lines) - 1
}

func (o *fakeOSD) SetText(id int, text string) {
	o.lines[id].text = text
	o.texts[id] = append(o.texts[id], text)
}

func (o *fakeOSD) SetColor(id int, color osd.Color) {
	o.lines[id].color = color
}

func (o *fakeOSD) Resize(width, height int) {
	o.resizes = append(o.resizes, [2]int{width, height})
}

func (o *fakeOSD) Render() {
	o.log.add("osd.render")
	o.renders++
}

func (o *fakeOSD) Release() {
	o.log.add("osd.release")
	o.released++
}

type keyEvent struct {
	key    Key
	action Action
	mods   ModifierKey
}

type mouseEvent struct {
	button MouseButton
	action Action
	mods   ModifierKey
}

type fakeApp struct {
	log  *callLog
	name string
	info string

	toldHDPI bool
	inits    int
	renders  int
	released int

	resizes [][2]uint32
	cursors [][2]float32
	scrolls [][2]float32
	mouse   []mouseEvent
	keys    []keyEvent

	onRender func()
}

func newFakeApp(log *callLog, name string) *fakeApp {
	return &fakeApp{log: log, name: name, info: name + " info"}
}

func (a *fakeApp) Name() string { return a.name }
func (a *fakeApp) Info() string { return a.info }

func (a *fakeApp) Init() {
	a.log.add("%s.init", a.name)
	a.inits++
}

func (a *fakeApp) Render() {
	a.log.add("%s.render", a.name)
	a.renders++

	if a.onRender != nil {
		a.onRender()
	}
}

func (a *fakeApp) Resize(width, height uint32) {
	a.log.add("%s.resize %dx%d", a.name, width, height)
	a.resizes = append(a.resizes, [2]uint32{width, height})
}

func (a *fakeApp) UseHDPIRenderTarget() {
	a.log.add("%s.hdpi", a.name)
	a.toldHDPI = true
}

func (a *fakeApp) CursorEvent(x, y float32) {
	a.cursors = append(a.cursors, [2]float32{x, y})
}

func (a *fakeApp) ScrollEvent(dx, dy float32) {
	a.scrolls = append(a.scrolls, [2]float32{dx, dy})
}

func (a *fakeApp) MouseEvent(button MouseButton, action Action, mods ModifierKey) {
	a.mouse = append(a.mouse, mouseEvent{button, action, mods})
}

func (a *fakeApp) KeyboardEvent(key Key, action Action, mods ModifierKey) {
	a.keys = append(a.keys, keyEvent{key, action, mods})
}

func (a *fakeApp) Release() {
	a.log.add("%s.release", a.name)
	a.released++
}

// minimalApp implements none of the optional handlers.
type minimalApp struct {
	renders int
}

func (m *minimalApp) Name() string       { return "minimal" }
func (m *minimalApp) Info() string       { return "minimal info" }
func (m *minimalApp) Init()              {}
func (m *minimalApp) Render()            { m.renders++ }
func (m *minimalApp) Resize(_, _ uint32) {}

// fakeClock is advanced explicitly by the test.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
