package osd

import (
	"fmt"
	"image"
	"image/draw"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/oliverbestmann/glview/glm"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Compositor draws the rendered overlay image on top of the current frame.
type Compositor interface {
	DrawOverlay(overlay *image.RGBA) error
}

type textLine struct {
	position glm.Vec2f
	text     string
	size     int
	color    Color
}

// Text is an on-screen display that rasterizes its lines into an
// image and hands that image to a Compositor on every Render.
type Text struct {
	compositor Compositor

	font  *opentype.Font
	faces *lru.Cache[int, font.Face]

	// font sizes are multiplied by this on hdpi displays
	scale int

	lines  []textLine
	canvas *image.RGBA
	dirty  bool
}

func NewText(compositor Compositor) *Text {
	return &Text{compositor: compositor, scale: 1}
}

func (t *Text) Init(hdpi bool) error {
	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}

	faces, err := lru.NewWithEvict[int, font.Face](8, closeFaceOnEviction)
	if err != nil {
		return fmt.Errorf("create face cache: %w", err)
	}

	t.font = parsed
	t.faces = faces

	if hdpi {
		t.scale = 2
	}

	return nil
}

func (t *Text) AddLine(x, y float32, text string, size int, color Color) int {
	t.lines = append(t.lines, textLine{
		position: glm.Vec2f{x, y},
		text:     text,
		size:     size,
		color:    color,
	})

	t.dirty = true

	return len(t.lines) - 1
}

func (t *Text) SetText(id int, text string) {
	line := t.line(id)
	if line == nil || line.text == text {
		return
	}

	line.text = text
	t.dirty = true
}

func (t *Text) SetColor(id int, color Color) {
	line := t.line(id)
	if line == nil || line.color == color {
		return
	}

	line.color = color
	t.dirty = true
}

// Text returns the current text of a line.
func (t *Text) Text(id int) (string, bool) {
	line := t.line(id)
	if line == nil {
		return "", false
	}

	return line.text, true
}

func (t *Text) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		t.canvas = nil
		return
	}

	if t.canvas != nil && t.canvas.Rect.Dx() == width && t.canvas.Rect.Dy() == height {
		return
	}

	t.canvas = image.NewRGBA(image.Rect(0, 0, width, height))
	t.dirty = true
}

func (t *Text) Render() {
	if t.canvas == nil || t.font == nil {
		return
	}

	if t.dirty {
		if err := t.redraw(); err != nil {
			slog.Error("Redraw on-screen display", slog.String("err", err.Error()))
			return
		}

		t.dirty = false
	}

	if err := t.compositor.DrawOverlay(t.canvas); err != nil {
		slog.Error("Draw on-screen display", slog.String("err", err.Error()))
	}
}

func (t *Text) Release() {
	if t.faces != nil {
		t.faces.Purge()
	}
}

func (t *Text) redraw() error {
	draw.Draw(t.canvas, t.canvas.Rect, image.Transparent, image.Point{}, draw.Src)

	width, height := float32(t.canvas.Rect.Dx()), float32(t.canvas.Rect.Dy())

	for _, line := range t.lines {
		face, err := t.face(line.size * t.scale)
		if err != nil {
			return err
		}

		// the line position is the left end of the baseline
		pos := glm.NDCToScreen(line.position, width, height)

		drawer := font.Drawer{
			Dst:  t.canvas,
			Src:  image.NewUniform(line.color.NRGBA()),
			Face: face,
			Dot:  fixed.P(int(pos[0]), int(pos[1])),
		}

		drawer.DrawString(line.text)
	}

	return nil
}

func (t *Text) face(size int) (font.Face, error) {
	face, ok := t.faces.Get(size)
	if ok {
		return face, nil
	}

	face, err := opentype.NewFace(t.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face of size %d: %w", size, err)
	}

	t.faces.Add(size, face)

	return face, nil
}

func (t *Text) line(id int) *textLine {
	if id < 0 || id >= len(t.lines) {
		return nil
	}

	return &t.lines[id]
}

func closeFaceOnEviction(_ int, face font.Face) {
	_ = face.Close()
}
