package orion

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/oliverbestmann/glview/osd"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth  = 960
	DefaultHeight = 640
	DefaultTitle  = "CMU462"

	DefaultZoomRegion = 32
)

var (
	DefaultNormalColor = osd.RGB(0.15, 0.5, 0.15)
	DefaultAlarmColor  = osd.RGB(1.0, 0.35, 0.35)
)

type Options struct {
	// Title of the window. The name of the application is appended
	// if the application is set before Init.
	Title string

	// Requested window size. If the framebuffer turns out to be wider
	// than this, the viewer runs in hdpi mode.
	Width  int
	Height int

	// Number of display refreshes to wait for on each buffer swap.
	// Use a negative value to disable vsync.
	SwapInterval int

	// Key that toggles the on-screen display.
	ToggleKey Key

	// Hide the on-screen display on startup.
	HideInfo bool

	// Key that toggles the zoom view.
	ZoomKey Key

	// Show the zoom view on startup.
	ShowZoom bool

	// Edge length in framebuffer pixels of the square around the cursor
	// that the zoom view magnifies.
	ZoomRegion int

	// Framerates below this threshold are shown in AlarmColor.
	AlarmThreshold int

	NormalColor osd.Color
	AlarmColor  osd.Color

	// Overrides the on-screen display provided by the window.
	OSD OSD

	// Source of the current time, defaults to time.Now.
	Clock func() time.Time
}

func (opts Options) withDefaults() Options {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}

	if opts.Width == 0 {
		opts.Width = DefaultWidth
	}

	if opts.Height == 0 {
		opts.Height = DefaultHeight
	}

	switch {
	case opts.SwapInterval == 0:
		opts.SwapInterval = 1
	case opts.SwapInterval < 0:
		opts.SwapInterval = 0
	}

	if opts.ToggleKey == 0 {
		opts.ToggleKey = KeyGraveAccent
	}

	if opts.ZoomKey == 0 {
		opts.ZoomKey = KeyZ
	}

	if opts.ZoomRegion == 0 {
		opts.ZoomRegion = DefaultZoomRegion
	}

	if opts.AlarmThreshold == 0 {
		opts.AlarmThreshold = 20
	}

	if opts.NormalColor == (osd.Color{}) {
		opts.NormalColor = DefaultNormalColor
	}

	if opts.AlarmColor == (osd.Color{}) {
		opts.AlarmColor = DefaultAlarmColor
	}

	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	return opts
}

// optionsFile is the yaml representation of Options.
type optionsFile struct {
	Title          string `yaml:"title"`
	Width          int    `yaml:"width"`
	Height         int    `yaml:"height"`
	SwapInterval   int    `yaml:"swap_interval"`
	ToggleKey      string `yaml:"toggle_key"`
	HideInfo       bool   `yaml:"hide_info"`
	ZoomKey        string `yaml:"zoom_key"`
	ShowZoom       bool   `yaml:"show_zoom"`
	ZoomRegion     int    `yaml:"zoom_region"`
	AlarmThreshold int    `yaml:"alarm_threshold"`
	NormalColor    string `yaml:"normal_color"`
	AlarmColor     string `yaml:"alarm_color"`
}

// LoadOptions reads viewer options from a yaml file.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read options: %w", err)
	}

	opts, err := ParseOptions(data)
	if err != nil {
		return Options{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return opts, nil
}

// ParseOptions decodes yaml encoded options. Fields not set in
// the document keep their zero value and use the defaults.
func ParseOptions(data []byte) (Options, error) {
	var file optionsFile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, err
	}

	if file.Width < 0 || file.Height < 0 {
		return Options{}, fmt.Errorf("invalid window size %dx%d", file.Width, file.Height)
	}

	if file.ZoomRegion < 0 {
		return Options{}, fmt.Errorf("invalid zoom region %d", file.ZoomRegion)
	}

	opts := Options{
		Title:          file.Title,
		Width:          file.Width,
		Height:         file.Height,
		SwapInterval:   file.SwapInterval,
		HideInfo:       file.HideInfo,
		ShowZoom:       file.ShowZoom,
		ZoomRegion:     file.ZoomRegion,
		AlarmThreshold: file.AlarmThreshold,
	}

	for _, field := range []struct {
		value  string
		target *Key
	}{
		{file.ToggleKey, &opts.ToggleKey},
		{file.ZoomKey, &opts.ZoomKey},
	} {
		if field.value == "" {
			continue
		}

		key, err := parseKey(field.value)
		if err != nil {
			return Options{}, err
		}

		*field.target = key
	}

	for _, field := range []struct {
		value  string
		target *osd.Color
	}{
		{file.NormalColor, &opts.NormalColor},
		{file.AlarmColor, &opts.AlarmColor},
	} {
		if field.value == "" {
			continue
		}

		color, err := osd.ParseHex(field.value)
		if err != nil {
			return Options{}, err
		}

		*field.target = color
	}

	return opts, nil
}

// parseKey accepts a single printable character or the name of a function key.
func parseKey(value string) (Key, error) {
	named := map[string]Key{
		"tab":    KeyTab,
		"insert": KeyInsert,
		"delete": KeyDelete,
		"home":   KeyHome,
		"end":    KeyEnd,
	}

	if key, ok := named[value]; ok {
		return key, nil
	}

	// function keys, Atoi alone would also accept a sign
	if digits, ok := strings.CutPrefix(value, "f"); ok && digits != "" && digits[0] >= '0' && digits[0] <= '9' {
		if fn, err := strconv.Atoi(digits); err == nil && fn >= 1 && fn <= 12 {
			return KeyF1 + Key(fn-1), nil
		}
	}

	runes := []rune(value)
	if len(runes) == 1 && runes[0] > 32 && runes[0] < 127 {
		r := runes[0]
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}

		return Key(r), nil
	}

	return 0, fmt.Errorf("unknown key %q", value)
}
