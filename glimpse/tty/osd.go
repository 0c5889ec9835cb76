package tty

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/oliverbestmann/glview/glm"
	"github.com/oliverbestmann/glview/osd"
)

type osdLine struct {
	position glm.Vec2f
	text     string
	color    osd.Color
}

// OSD writes its lines directly into the screen cells. Font sizes
// are ignored, a terminal has only one.
type OSD struct {
	screen tcell.Screen
	lines  []osdLine

	width, height int
}

func NewOSD(screen tcell.Screen) *OSD {
	return &OSD{screen: screen}
}

func (o *OSD) Init(_ bool) error {
	o.width, o.height = o.screen.Size()
	return nil
}

func (o *OSD) AddLine(x, y float32, text string, _ int, color osd.Color) int {
	o.lines = append(o.lines, osdLine{
		position: glm.Vec2f{x, y},
		text:     text,
		color:    color,
	})

	return len(o.lines) - 1
}

func (o *OSD) SetText(id int, text string) {
	if id >= 0 && id < len(o.lines) {
		o.lines[id].text = text
	}
}

func (o *OSD) SetColor(id int, color osd.Color) {
	if id >= 0 && id < len(o.lines) {
		o.lines[id].color = color
	}
}

// Text returns the current text of a line.
func (o *OSD) Text(id int) (string, bool) {
	if id < 0 || id >= len(o.lines) {
		return "", false
	}

	return o.lines[id].text, true
}

func (o *OSD) Resize(width, height int) {
	o.width, o.height = width, height
}

func (o *OSD) Render() {
	if o.width <= 0 || o.height <= 0 {
		return
	}

	for _, line := range o.lines {
		o.drawLine(line)
	}
}

func (o *OSD) drawLine(line osdLine) {
	pos := glm.NDCToScreen(line.position, float32(o.width), float32(o.height))

	col := int(pos[0])
	row := min(max(int(pos[1]), 0), o.height-1)

	c := line.color.NRGBA()
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))

	for _, r := range line.text {
		width := runewidth.RuneWidth(r)
		if width == 0 {
			continue
		}

		// clip glyphs that do not fit completely
		if col+width > o.width {
			return
		}

		if col >= 0 {
			o.screen.SetContent(col, row, r, nil, style)
		}

		col += width
	}
}
