package tty

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/oliverbestmann/glview/orion"
)

// refresh period of a terminal "display"
const refreshPeriod = time.Second / 60

// Window renders into the cells of a tcell screen.
type Window struct {
	screen tcell.Screen
	fini   func()

	listener orion.EventListener
	input    inputState

	osd *OSD

	// minimum time between two frames, zero disables pacing
	framePeriod time.Duration
	lastSwap    time.Time

	// used for pacing, replaced in tests
	now   func() time.Time
	sleep func(time.Duration)

	closeRequested bool
	destroyed      bool
}

func newWindow(screen tcell.Screen, fini func()) *Window {
	return &Window{
		screen: screen,
		fini:   fini,
		osd:    NewOSD(screen),
		now:    time.Now,
		sleep:  time.Sleep,
	}
}

func (w *Window) MakeCurrent() {}

// SetSwapInterval limits the frame rate to one frame every
// interval refreshes of a 60Hz display.
func (w *Window) SetSwapInterval(interval int) {
	w.framePeriod = time.Duration(max(0, interval)) * refreshPeriod
}

func (w *Window) SetListener(listener orion.EventListener) {
	w.listener = listener
}

func (w *Window) Clear() {
	w.screen.Clear()
}

func (w *Window) SwapBuffers() {
	w.screen.Show()

	if w.framePeriod <= 0 {
		return
	}

	now := w.now()

	if !w.lastSwap.IsZero() {
		if wait := w.framePeriod - now.Sub(w.lastSwap); wait > 0 {
			w.sleep(wait)
			now = now.Add(wait)
		}
	}

	w.lastSwap = now
}

// FramebufferSize returns the size of the terminal in cells.
func (w *Window) FramebufferSize() (int, int) {
	return w.screen.Size()
}

func (w *Window) RequestClose() {
	w.closeRequested = true
}

func (w *Window) ShouldClose() bool {
	return w.closeRequested || w.destroyed
}

func (w *Window) OSD() orion.OSD {
	return w.osd
}

// Screen returns the screen applications draw their cells to.
func (w *Window) Screen() tcell.Screen {
	return w.screen
}

// Destroy restores the terminal. Further calls have no effect.
func (w *Window) Destroy() {
	if w.destroyed {
		return
	}

	w.destroyed = true
	w.fini()
}
