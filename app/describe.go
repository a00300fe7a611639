package app

import (
	"fmt"

	"github.com/ugparu/recdl"
	"github.com/ugparu/recdl/codec"
	"github.com/ugparu/recdl/codec/aac"
	"github.com/ugparu/recdl/session"
)

// Description holds the human readable strings of the current device and selection.
type Description struct {
	Device      string `json:"device"`
	DisplayMode string `json:"displayMode"`
	VideoStyle  string `json:"videoStyle"`
	Config      string `json:"config,omitempty"`
	Video       string `json:"video,omitempty"`
	Audio       string `json:"audio,omitempty"`
}

// Describe formats the device, the selected display mode and the selected video style.
func (a *App) Describe() Description {
	a.mu.RLock()
	defer a.mu.RUnlock()

	d := Description{
		Device:      "No device",
		DisplayMode: fmt.Sprintf("%s (unsupported)", a.snap.DisplayMode),
		VideoStyle:  fmt.Sprintf("%s (unsupported)", a.snap.VideoStyle),
	}
	if desc, ok := a.cat.Device(); ok {
		d.Device = desc.String()
	}
	if info, ok := a.cat.SettingInfoFor(a.snap.DisplayMode); ok {
		d.DisplayMode = info.String()
	}
	if style, ok := a.cat.Style(a.snap.VideoStyle); ok {
		d.VideoStyle = style.String()
	}
	if a.cfg != (recdl.RecordingEncoderConfig{}) {
		d.Config = a.cfg.String()
		d.Video = describeVideo(a.cfg)
		d.Audio = describeAudio(a.cfg)
	}
	return d
}

func describeVideo(cfg recdl.RecordingEncoderConfig) string {
	if cfg.VideoCodec == 0 {
		return ""
	}
	s := cfg.VideoCodec.String()
	if idx, ok := codec.VideoEncoderIndex(cfg.VideoCodec); ok {
		s += fmt.Sprintf(" (encoder %d)", idx)
	}
	if cfg.VideoBitrate > 0 {
		s += fmt.Sprintf(" %d bps", cfg.VideoBitrate)
	}
	return s
}

func describeAudio(cfg recdl.RecordingEncoderConfig) string {
	if cfg.AudioCodec == 0 {
		return ""
	}
	s := cfg.AudioCodec.String()
	if ot := aac.ObjectType(cfg.AudioCodec); ot != 0 {
		s += fmt.Sprintf(" (object type %d)", ot)
	}
	if cfg.AudioBitrate > 0 {
		s += fmt.Sprintf(" %d bps", cfg.AudioBitrate)
	}
	return s
}

// Status is the session status with the rendered status line.
type Status struct {
	session.Status
	Line     string `json:"text"`
	AutoQuit bool   `json:"autoQuit"`
}

// Status returns the last published session status.
func (a *App) Status() Status {
	st := a.session.Status()
	a.mu.RLock()
	autoQuit := a.evalQuit && a.snap.AutoQuit
	a.mu.RUnlock()

	text := st.Text()
	if text != "" && st.Limited && autoQuit {
		text += " (AutoQuit)"
	}
	return Status{Status: st, Line: text, AutoQuit: autoQuit}
}
