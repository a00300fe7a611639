// Package settings holds the user settings snapshot consumed by the configuration engine and
// the stores that persist it.
package settings

import (
	"github.com/ugparu/recdl"
	"github.com/ugparu/recdl/resolver"
)

// Snapshot is an immutable copy of every persisted setting. Encoder bitrates are in kbit/s,
// durations in the unit named by the field.
type Snapshot struct {
	DisplayMode     recdl.DisplayMode     `yaml:"displayMode"     json:"displayMode"`
	PixelFormat     recdl.PixelFormat     `yaml:"pixelFormat"     json:"pixelFormat"`
	VideoStyle      string                `yaml:"videoStyle"      json:"videoStyle"`
	ClapOffsetH     int                   `yaml:"clapOffsetH"     json:"clapOffsetH"`
	ClapOffsetV     int                   `yaml:"clapOffsetV"     json:"clapOffsetV"`
	VideoTimeScale  int32                 `yaml:"videoTimeScale"  json:"videoTimeScale"`
	TimeCodeSource  recdl.TimecodeSource  `yaml:"timeCodeSource"  json:"timeCodeSource"`
	TimeCodeFormat  int                   `yaml:"timeCodeFormat"  json:"timeCodeFormat"`
	VideoConnection recdl.VideoConnection `yaml:"videoConnection" json:"videoConnection"`
	AudioConnection recdl.AudioConnection `yaml:"audioConnection" json:"audioConnection"`

	VideoEncode      bool              `yaml:"videoEncode"      json:"videoEncode"`
	VideoEncoder     int               `yaml:"videoEncoder"     json:"videoEncoder"`
	VideoBitRate     int               `yaml:"videoBitRate"     json:"videoBitRate"`
	VideoFieldDetail recdl.FieldDetail `yaml:"videoFieldDetail" json:"videoFieldDetail"`

	AudioDepth     recdl.AudioDepth  `yaml:"audioDepth"     json:"audioDepth"`
	AudioEncode    bool              `yaml:"audioEncode"    json:"audioEncode"`
	AudioEncoder   int               `yaml:"audioEncoder"   json:"audioEncoder"`
	AudioBitRate   int               `yaml:"audioBitRate"   json:"audioBitRate"`
	AudioChannel   uint32            `yaml:"audioChannel"   json:"audioChannel"`
	AudioLayout    recdl.AudioLayout `yaml:"audioLayout"    json:"audioLayout"`
	AudioReverse34 bool              `yaml:"audioReverse34" json:"audioReverse34"`

	Prefix      string `yaml:"prefix"      json:"prefix"`
	MovieFolder string `yaml:"movieFolder" json:"movieFolder,omitempty"`
	AutoQuit    bool   `yaml:"autoQuit"    json:"autoQuit"`
	RecordFor   int    `yaml:"recordFor"   json:"recordFor"`   // minutes
	MaxSeconds  int    `yaml:"maxSeconds"  json:"maxSeconds"`  // seconds, 0 disables
	MaxDuration int    `yaml:"maxDuration" json:"maxDuration"` // minutes
}

// Defaults returns the settings a fresh installation starts from.
func Defaults() Snapshot {
	return Snapshot{
		DisplayMode:     recdl.ModeNTSC,
		PixelFormat:     recdl.Format8BitYUV,
		VideoStyle:      "SD_720_480_16_9",
		VideoTimeScale:  30000,
		TimeCodeSource:  recdl.TimecodeNone,
		VideoConnection: recdl.VideoConnectionSVideo,
		AudioConnection: recdl.AudioConnectionAnalogRCA,

		VideoEncode:      true,
		VideoEncoder:     1,
		VideoBitRate:     25000,
		VideoFieldDetail: recdl.BottomFieldFirst,

		AudioDepth:   recdl.Depth16,
		AudioEncode:  true,
		AudioEncoder: 1,
		AudioBitRate: 256,
		AudioChannel: 2,
		AudioLayout:  recdl.LayoutFiveOne,

		Prefix:      "recdl-",
		RecordFor:   30,
		MaxDuration: 720,
	}
}

// Offset returns the persisted clean aperture offset.
func (s Snapshot) Offset() recdl.ClapOffset {
	return recdl.ClapOffset{Horizontal: s.ClapOffsetH, Vertical: s.ClapOffsetV}
}

// WithVideoStyle returns a copy of s using the named style and clap offset.
func (s Snapshot) WithVideoStyle(name string, offset recdl.ClapOffset) Snapshot {
	s.VideoStyle = name
	s.ClapOffsetH = offset.Horizontal
	s.ClapOffsetV = offset.Vertical
	return s
}

// WithDefaults returns a copy of s switched to the native settings of a display mode.
func (s Snapshot) WithDefaults(d resolver.Defaults) Snapshot {
	s = s.WithVideoStyle(d.VideoStyle.Name, d.Offset)
	s.DisplayMode = d.DisplayMode
	s.VideoFieldDetail = d.FieldDetail
	return s
}
