package tty

import (
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/oliverbestmann/glview/orion"
)

var namedKeys = map[tcell.Key]orion.Key{
	tcell.KeyEscape:     orion.KeyEscape,
	tcell.KeyEnter:      orion.KeyEnter,
	tcell.KeyTab:        orion.KeyTab,
	tcell.KeyBackspace:  orion.KeyBackspace,
	tcell.KeyBackspace2: orion.KeyBackspace,
	tcell.KeyInsert:     orion.KeyInsert,
	tcell.KeyDelete:     orion.KeyDelete,
	tcell.KeyRight:      orion.KeyRight,
	tcell.KeyLeft:       orion.KeyLeft,
	tcell.KeyDown:       orion.KeyDown,
	tcell.KeyUp:         orion.KeyUp,
	tcell.KeyPgUp:       orion.KeyPageUp,
	tcell.KeyPgDn:       orion.KeyPageDown,
	tcell.KeyHome:       orion.KeyHome,
	tcell.KeyEnd:        orion.KeyEnd,
	tcell.KeyPrint:      orion.KeyPrintScr,
}

var mouseButtons = []struct {
	mask   tcell.ButtonMask
	button orion.MouseButton
}{
	{tcell.Button1, orion.MouseLeft},
	{tcell.Button2, orion.MouseRight},
	{tcell.Button3, orion.MouseMiddle},
}

const buttonsMask = tcell.Button1 | tcell.Button2 | tcell.Button3

const wheelMask = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

// inputState remembers what the terminal reported last, so
// presses and releases can be derived from mouse events.
type inputState struct {
	buttons tcell.ButtonMask

	cursorX, cursorY int
	hasCursor        bool
}

func (w *Window) dispatch(ev tcell.Event) {
	if w.listener == nil {
		return
	}

	switch ev := ev.(type) {
	case *tcell.EventResize:
		width, height := ev.Size()
		w.listener.OnResize(width, height)

	case *tcell.EventKey:
		key, mods, ok := keyOf(ev)
		if !ok {
			slog.Debug("Ignore unknown key", slog.String("key", ev.Name()))
			return
		}

		w.listener.OnKey(key, int(ev.Key()), orion.Press, mods)

	case *tcell.EventMouse:
		w.dispatchMouse(ev)
	}
}

func (w *Window) dispatchMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	mask := ev.Buttons()
	mods := modifiersOf(ev.Modifiers())

	if !w.input.hasCursor || x != w.input.cursorX || y != w.input.cursorY {
		w.input.cursorX, w.input.cursorY = x, y
		w.input.hasCursor = true

		w.listener.OnCursor(float64(x), float64(y))
	}

	if mask&wheelMask != 0 {
		// wheel events do not report the held buttons reliably
		dx, dy := scrollDelta(mask)
		w.listener.OnScroll(dx, dy)
		return
	}

	previous := w.input.buttons
	current := mask & buttonsMask
	w.input.buttons = current

	for _, mb := range mouseButtons {
		wasPressed := previous&mb.mask != 0
		isPressed := current&mb.mask != 0

		switch {
		case isPressed && !wasPressed:
			w.listener.OnMouseButton(mb.button, orion.Press, mods)

		case !isPressed && wasPressed:
			w.listener.OnMouseButton(mb.button, orion.Release, mods)
		}
	}
}

// scrollDelta follows glfw: scrolling up is a positive y offset.
func scrollDelta(mask tcell.ButtonMask) (dx, dy float64) {
	if mask&tcell.WheelUp != 0 {
		dy++
	}

	if mask&tcell.WheelDown != 0 {
		dy--
	}

	if mask&tcell.WheelLeft != 0 {
		dx--
	}

	if mask&tcell.WheelRight != 0 {
		dx++
	}

	return dx, dy
}

// keyOf translates a terminal key into a glfw key code. Terminals only
// report key presses, the caller always delivers them as orion.Press.
func keyOf(ev *tcell.EventKey) (orion.Key, orion.ModifierKey, bool) {
	mods := modifiersOf(ev.Modifiers())

	if key, ok := namedKeys[ev.Key()]; ok {
		return key, mods, true
	}

	switch k := ev.Key(); {
	case k >= tcell.KeyF1 && k <= tcell.KeyF12:
		return orion.KeyF1 + orion.Key(k-tcell.KeyF1), mods, true

	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return orion.KeyA + orion.Key(k-tcell.KeyCtrlA), mods | orion.ModControl, true

	case k == tcell.KeyRune:
		return runeKey(ev.Rune(), mods)
	}

	return 0, 0, false
}

func runeKey(r rune, mods orion.ModifierKey) (orion.Key, orion.ModifierKey, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return orion.Key(r - 'a' + 'A'), mods, true

	case r >= 'A' && r <= 'Z':
		return orion.Key(r), mods | orion.ModShift, true

	case r > ' ' && r < 0x7f:
		return orion.Key(r), mods, true

	case r == ' ':
		return orion.KeySpace, mods, true
	}

	return 0, 0, false
}

func modifiersOf(mask tcell.ModMask) orion.ModifierKey {
	var mods orion.ModifierKey

	if mask&tcell.ModShift != 0 {
		mods |= orion.ModShift
	}

	if mask&tcell.ModCtrl != 0 {
		mods |= orion.ModControl
	}

	if mask&tcell.ModAlt != 0 {
		mods |= orion.ModAlt
	}

	if mask&tcell.ModMeta != 0 {
		mods |= orion.ModSuper
	}

	return mods
}
