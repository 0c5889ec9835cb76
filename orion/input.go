package orion

// Key is a keyboard key code. Codes follow the glfw numbering: printable
// keys use their uppercase ascii value, everything else starts at 256.
type Key int

const (
	KeySpace       Key = 32
	KeyApostrophe  Key = 39
	KeyComma       Key = 44
	KeyMinus       Key = 45
	KeyPeriod      Key = 46
	KeySlash       Key = 47
	Key0           Key = 48
	Key9           Key = 57
	KeySemicolon   Key = 59
	KeyEqual       Key = 61
	KeyA           Key = 65
	KeyC           Key = 67
	KeyI           Key = 73
	KeyK           Key = 75
	KeyR           Key = 82
	KeyZ           Key = 90
	KeyGraveAccent Key = 96

	KeyEscape    Key = 256
	KeyEnter     Key = 257
	KeyTab       Key = 258
	KeyBackspace Key = 259
	KeyInsert    Key = 260
	KeyDelete    Key = 261
	KeyRight     Key = 262
	KeyLeft      Key = 263
	KeyDown      Key = 264
	KeyUp        Key = 265
	KeyPageUp    Key = 266
	KeyPageDown  Key = 267
	KeyHome      Key = 268
	KeyEnd       Key = 269
	KeyPrintScr  Key = 283
	KeyF1        Key = 290
	KeyF12       Key = 301
)

// Action is the kind of a key or mouse button event.
type Action int

const (
	Release Action = 0
	Press   Action = 1
	Repeat  Action = 2
)

func (a Action) String() string {
	switch a {
	case Release:
		return "release"
	case Press:
		return "press"
	case Repeat:
		return "repeat"
	default:
		return "unknown"
	}
}

// ModifierKey is a bitmask of the modifier keys held during an event.
type ModifierKey int

const (
	ModShift ModifierKey = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

type MouseButton int

const (
	MouseLeft   MouseButton = 0
	MouseRight  MouseButton = 1
	MouseMiddle MouseButton = 2
)
