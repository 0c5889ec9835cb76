package orion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/oliverbestmann/glview/osd"
)

func TestParseOptions(t *testing.T) {
	data := []byte(`
title: Demo
width: 800
height: 600
swap_interval: -1
toggle_key: f2
hide_info: true
zoom_key: m
show_zoom: true
zoom_region: 16
alarm_threshold: 30
normal_color: "#00ff00"
alarm_color: "#ff0000"
`)

	opts, err := ParseOptions(data)
	if err != nil {
		t.Fatalf("ParseOptions() failed: %s", err)
	}

	want := Options{
		Title:          "Demo",
		Width:          800,
		Height:         600,
		SwapInterval:   -1,
		ToggleKey:      KeyF1 + 1,
		HideInfo:       true,
		ZoomKey:        Key('M'),
		ShowZoom:       true,
		ZoomRegion:     16,
		AlarmThreshold: 30,
		NormalColor:    osd.RGB(0, 1, 0),
		AlarmColor:     osd.RGB(1, 0, 0),
	}

	if opts.Title != want.Title || opts.Width != want.Width || opts.Height != want.Height ||
		opts.SwapInterval != want.SwapInterval || opts.ToggleKey != want.ToggleKey ||
		opts.HideInfo != want.HideInfo || opts.AlarmThreshold != want.AlarmThreshold ||
		opts.ZoomKey != want.ZoomKey || opts.ShowZoom != want.ShowZoom || opts.ZoomRegion != want.ZoomRegion ||
		opts.NormalColor != want.NormalColor || opts.AlarmColor != want.AlarmColor {
		t.Fatalf("opts=%+v, want %+v", opts, want)
	}
}

func TestParseOptionsEmpty(t *testing.T) {
	opts, err := ParseOptions(nil)
	if err != nil {
		t.Fatalf("ParseOptions() failed: %s", err)
	}

	opts = opts.withDefaults()

	if opts.Title != DefaultTitle || opts.Width != DefaultWidth || opts.Height != DefaultHeight {
		t.Fatalf("opts=%+v, want defaults", opts)
	}
}

func TestParseOptionsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown field", "fullscreen: true\n"},
		{"bad color", "normal_color: green\n"},
		{"bad key", "toggle_key: space bar\n"},
		{"function key with suffix", "toggle_key: f1x\n"},
		{"bad zoom key", "zoom_key: zoom\n"},
		{"negative zoom region", "zoom_region: -4\n"},
		{"negative width", "width: -10\n"},
		{"wrong type", "width: wide\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseOptions([]byte(tc.data)); err == nil {
				t.Fatalf("ParseOptions(%q) succeeded, want error", tc.data)
			}
		})
	}
}

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.yaml")

	if err := os.WriteFile(path, []byte("title: File\n"), 0o644); err != nil {
		t.Fatalf("write options: %s", err)
	}

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions() failed: %s", err)
	}

	if opts.Title != "File" {
		t.Fatalf("Title=%q, want %q", opts.Title, "File")
	}

	if _, err := LoadOptions(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("LoadOptions() of a missing file succeeded")
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		value string
		want  Key
	}{
		{"`", KeyGraveAccent},
		{"a", KeyA},
		{"Z", KeyZ},
		{"tab", KeyTab},
		{"home", KeyHome},
		{"f1", KeyF1},
		{"f12", KeyF12},
		{"f", Key('F')},
	}

	for _, tc := range tests {
		got, err := parseKey(tc.value)
		if err != nil {
			t.Fatalf("parseKey(%q) failed: %s", tc.value, err)
		}

		if got != tc.want {
			t.Fatalf("parseKey(%q)=%d, want %d", tc.value, got, tc.want)
		}
	}

	for _, value := range []string{"", " ", "f13", "f0", "ab", "escape", "f1x", "f12 ", "f+1", "f-1", "fx"} {
		if _, err := parseKey(value); err == nil {
			t.Fatalf("parseKey(%q) succeeded, want error", value)
		}
	}
}

func TestWithDefaults(t *testing.T) {
	opts := Options{}.withDefaults()

	if opts.Title != "CMU462" || opts.Width != 960 || opts.Height != 640 {
		t.Fatalf("window defaults: %q %dx%d", opts.Title, opts.Width, opts.Height)
	}

	if opts.SwapInterval != 1 {
		t.Fatalf("SwapInterval=%d, want 1", opts.SwapInterval)
	}

	if opts.ToggleKey != KeyGraveAccent {
		t.Fatalf("ToggleKey=%d, want %d", opts.ToggleKey, KeyGraveAccent)
	}

	if opts.ZoomKey != KeyZ || opts.ShowZoom || opts.ZoomRegion != 32 {
		t.Fatalf("zoom defaults: key %d, show %v, region %d", opts.ZoomKey, opts.ShowZoom, opts.ZoomRegion)
	}

	if opts.AlarmThreshold != 20 {
		t.Fatalf("AlarmThreshold=%d, want 20", opts.AlarmThreshold)
	}

	if opts.NormalColor != DefaultNormalColor || opts.AlarmColor != DefaultAlarmColor {
		t.Fatalf("colors=%v %v", opts.NormalColor, opts.AlarmColor)
	}

	if opts.Clock == nil {
		t.Fatalf("Clock not set")
	}

	if got := (Options{SwapInterval: 3}).withDefaults().SwapInterval; got != 3 {
		t.Fatalf("SwapInterval=%d, want 3", got)
	}
}
