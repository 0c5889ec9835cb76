package orion

import "fmt"

const noApplicationInfo = "No input application"

// updateFramerate publishes the framerate once per elapsed second.
func (v *Viewer) updateFramerate() {
	frames, ok := v.frames.Tick(v.opts.Clock())
	if !ok {
		return
	}

	color := v.opts.NormalColor
	if frames < v.opts.AlarmThreshold {
		color = v.opts.AlarmColor
	}

	v.osd.SetColor(v.lineFramerate, color)
	v.osd.SetText(v.lineFramerate, fmt.Sprintf("Framerate: %d fps", frames))
}

// drawInfo refreshes the application line and draws the on-screen display.
func (v *Viewer) drawInfo() {
	info := noApplicationInfo
	if v.app != nil {
		info = v.app.Info()
	}

	v.osd.SetText(v.lineApplication, info)
	v.osd.Render()
}
