package orion

import (
	"errors"
	"image"
	"image/color"
	"slices"
	"testing"

	"github.com/oliverbestmann/glview/glm"
)

func TestLayoutZoom(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		region        int
		cursor        glm.Vec2i
		want          zoomLayout
	}{
		{
			name:   "center",
			width:  960,
			height: 640,
			region: 32,
			cursor: glm.Vec2i{480, 320},
			want: zoomLayout{
				region: image.Rect(464, 304, 496, 336),
				factor: 10,
				pos:    image.Pt(640, 0),
			},
		},
		{
			name:   "top left corner, maximum factor",
			width:  1920,
			height: 1280,
			region: 32,
			cursor: glm.Vec2i{0, 0},
			want: zoomLayout{
				region: image.Rect(0, 0, 32, 32),
				factor: 16,
				pos:    image.Pt(1408, 0),
			},
		},
		{
			name:   "cursor outside",
			width:  960,
			height: 640,
			region: 32,
			cursor: glm.Vec2i{5000, 5000},
			want: zoomLayout{
				region: image.Rect(927, 607, 959, 639),
				factor: 10,
				pos:    image.Pt(640, 0),
			},
		},
		{
			name:   "terminal",
			width:  120,
			height: 40,
			region: 8,
			cursor: glm.Vec2i{60, 20},
			want: zoomLayout{
				region: image.Rect(56, 16, 64, 24),
				factor: 2,
				pos:    image.Pt(104, 0),
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := layoutZoom(tc.width, tc.height, tc.region, tc.cursor)
			if !ok {
				t.Fatalf("layoutZoom failed")
			}

			if got != tc.want {
				t.Fatalf("layout=%+v, want %+v", got, tc.want)
			}

			size := tc.region * got.factor
			if size > tc.width/2 || size > tc.height/2 {
				t.Fatalf("zoom view of %d pixels covers more than half of %dx%d", size, tc.width, tc.height)
			}
		})
	}
}

func TestLayoutZoomTooSmall(t *testing.T) {
	if _, ok := layoutZoom(60, 600, 32, glm.Vec2i{}); ok {
		t.Fatalf("zoom view laid out in a framebuffer that is too narrow")
	}

	if _, ok := layoutZoom(960, 640, 0, glm.Vec2i{}); ok {
		t.Fatalf("zoom view laid out without a region")
	}
}

func TestMagnify(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, color.RGBA{A: 0xff})
	src.SetRGBA(1, 0, color.RGBA{R: 100, G: 200, B: 255, A: 128})

	dst := magnify(src, 3)

	if got := dst.Bounds(); got != image.Rect(0, 0, 6, 3) {
		t.Fatalf("bounds=%v, want 6x3", got)
	}

	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{1, 1, color.RGBA{A: 0xff}},
		{2, 2, color.RGBA{A: 0xff}},
		{0, 0, color.RGBA{R: 76, G: 76, B: 76, A: 0xff}},
		{1, 0, color.RGBA{R: 76, G: 76, B: 76, A: 0xff}},
		{0, 2, color.RGBA{R: 76, G: 76, B: 76, A: 0xff}},
		{4, 1, color.RGBA{R: 100, G: 200, B: 255, A: 0xff}},
		{3, 1, color.RGBA{R: 116, G: 156, B: 178, A: 0xff}},
	}

	for _, tc := range tests {
		if got := dst.RGBAAt(tc.x, tc.y); got != tc.want {
			t.Fatalf("pixel (%d, %d)=%v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestZoomFrameOrder(t *testing.T) {
	tv := newTestViewer(t, 960, 640, Options{ShowZoom: true})
	app := newFakeApp(tv.backend.log, "A")

	frame := image.NewRGBA(image.Rect(0, 0, 960, 640))
	frame.SetRGBA(480, 320, color.RGBA{R: 0xff, A: 0xff})

	window := tv.backend.useReadableWindow(frame)

	tv.viewer.SetApplication(app)
	tv.init(t)

	tv.window.listener.OnCursor(480, 320)

	mark := len(tv.backend.log.calls)
	tv.start(t)

	// the zoom view is drawn after the application and below the overlay
	want := []string{
		"clear",
		"A.render",
		"window.read (464,304)-(496,336)",
		"window.draw (640,0)",
		"osd.render",
		"swap",
		"poll",
	}

	if got := tv.callsSince(mark); !slices.Equal(got, want) {
		t.Fatalf("calls=%q, want %q", got, want)
	}

	zoom := window.drawn[0].img
	if got := zoom.Bounds(); got != image.Rect(0, 0, 320, 320) {
		t.Fatalf("zoom bounds=%v, want 320x320", got)
	}

	// the pixel below the cursor is at offset 16 in the region
	if got := zoom.RGBAAt(165, 165); got != (color.RGBA{R: 0xff, A: 0xff}) {
		t.Fatalf("magnified cursor pixel=%v, want red", got)
	}
}

func TestZoomHDPI(t *testing.T) {
	tv := newTestViewer(t, 1920, 1280, Options{ShowZoom: true})
	window := tv.backend.useReadableWindow(image.NewRGBA(image.Rect(0, 0, 1920, 1280)))

	tv.init(t)

	// window coordinates, scaled to framebuffer pixels
	tv.window.listener.OnCursor(100, 50)
	tv.start(t)

	if want := []image.Rectangle{image.Rect(184, 84, 216, 116)}; !slices.Equal(window.reads, want) {
		t.Fatalf("reads=%v, want %v", window.reads, want)
	}

	if got := window.drawn[0].pos; got != image.Pt(1408, 0) {
		t.Fatalf("zoom position=%v, want (1408,0)", got)
	}
}

func TestZoomKey(t *testing.T) {
	tv := newTestViewer(t, 960, 640, Options{})
	app := newFakeApp(tv.backend.log, "A")
	window := tv.backend.useReadableWindow(image.NewRGBA(image.Rect(0, 0, 960, 640)))

	tv.backend.closeAfter = 3
	tv.backend.polls = []func(w *fakeWindow){
		func(w *fakeWindow) {
			w.listener.OnKey(KeyZ, 52, Press, 0)
			w.listener.OnKey(KeyZ, 52, Release, 0)
		},
		func(w *fakeWindow) {
			w.listener.OnKey(KeyZ, 52, Press, 0)
		},
	}

	tv.viewer.SetApplication(app)
	tv.init(t)
	tv.start(t)

	// hidden in the first frame, shown in the second, hidden again in the third
	if len(window.drawn) != 1 {
		t.Fatalf("zoom drawn %d times, want 1", len(window.drawn))
	}

	if tv.viewer.ShowZoom() {
		t.Fatalf("ShowZoom()=true after toggling twice")
	}

	if len(app.keys) != 0 {
		t.Fatalf("keys=%v, zoom key must not be forwarded", app.keys)
	}
}

func TestZoomWithoutFrameReader(t *testing.T) {
	tv := newTestViewer(t, 960, 640, Options{ShowZoom: true})
	app := newFakeApp(tv.backend.log, "A")

	tv.viewer.SetApplication(app)
	tv.init(t)

	mark := len(tv.backend.log.calls)
	tv.start(t)

	want := []string{"clear", "A.render", "osd.render", "swap", "poll"}
	if got := tv.callsSince(mark); !slices.Equal(got, want) {
		t.Fatalf("calls=%q, want %q", got, want)
	}
}

func TestZoomReadError(t *testing.T) {
	tv := newTestViewer(t, 960, 640, Options{ShowZoom: true})
	window := tv.backend.useReadableWindow(nil)
	window.readErr = errors.New("frame not readable")

	tv.init(t)

	mark := len(tv.backend.log.calls)
	tv.start(t)

	// the cursor was never reported, the region is clamped to the top left
	want := []string{"clear", "window.read (0,0)-(32,32)", "osd.render", "swap", "poll"}

	if got := tv.callsSince(mark); !slices.Equal(got, want) {
		t.Fatalf("calls=%q, want %q", got, want)
	}

	if len(window.drawn) != 0 {
		t.Fatalf("zoom drawn after a failed read")
	}
}
