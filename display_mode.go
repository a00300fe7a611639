package recdl

import (
	"fmt"
	"time"
)

// DisplayMode is the device-native video timing identifier, an opaque four character code.
type DisplayMode uint32

// Display modes recognised by the engine.
var (
	ModeNTSC        = DisplayMode(MakeFourCC("ntsc"))
	ModeNTSC2398    = DisplayMode(MakeFourCC("nt23"))
	ModeNTSCp       = DisplayMode(MakeFourCC("ntsp"))
	ModePAL         = DisplayMode(MakeFourCC("pal "))
	ModePALp        = DisplayMode(MakeFourCC("palp"))
	ModeHD1080p2398 = DisplayMode(MakeFourCC("23ps"))
	ModeHD1080p24   = DisplayMode(MakeFourCC("24ps"))
	ModeHD1080p25   = DisplayMode(MakeFourCC("Hp25"))
	ModeHD1080p2997 = DisplayMode(MakeFourCC("Hp29"))
	ModeHD1080p30   = DisplayMode(MakeFourCC("Hp30"))
	ModeHD1080i50   = DisplayMode(MakeFourCC("Hi50"))
	ModeHD1080i5994 = DisplayMode(MakeFourCC("Hi59"))
	ModeHD1080i6000 = DisplayMode(MakeFourCC("Hi60"))
	ModeHD720p50    = DisplayMode(MakeFourCC("hp50"))
	ModeHD720p5994  = DisplayMode(MakeFourCC("hp59"))
	ModeHD720p60    = DisplayMode(MakeFourCC("hp60"))
	Mode4K2160p2398 = DisplayMode(MakeFourCC("4k23"))
	Mode4K2160p24   = DisplayMode(MakeFourCC("4k24"))
	Mode4K2160p25   = DisplayMode(MakeFourCC("4k25"))
	Mode4K2160p2997 = DisplayMode(MakeFourCC("4k29"))
	Mode4K2160p30   = DisplayMode(MakeFourCC("4k30"))
)

// String returns the four character code of the mode.
func (dm DisplayMode) String() string {
	return fourCCString(uint32(dm))
}

func (dm DisplayMode) MarshalText() ([]byte, error) {
	return []byte(dm.String()), nil
}

func (dm *DisplayMode) UnmarshalText(text []byte) error {
	v, err := parseFourCC(string(text))
	if err != nil {
		return err
	}
	*dm = DisplayMode(v)
	return nil
}

// DisplayModeInfo describes one device-native video timing mode as reported by the device.
// Values are immutable snapshots; a device re-query replaces them wholesale.
type DisplayModeInfo struct {
	Mode          DisplayMode
	Name          string
	Width         uint
	Height        uint
	FrameDuration int64
	TimeScale     int64
	Dominance     FieldDominance
}

// Size returns the native pixel geometry of the mode.
func (dmi DisplayModeInfo) Size() Size {
	return Size{Width: dmi.Width, Height: dmi.Height}
}

// Valid reports whether the geometry and timing are usable.
func (dmi DisplayModeInfo) Valid() bool {
	return dmi.Width > 0 && dmi.Height > 0 && dmi.TimeScale > 0 && dmi.FrameDuration > 0
}

// FrameRate returns frames per second, 0 for an invalid timing.
func (dmi DisplayModeInfo) FrameRate() float64 {
	if dmi.FrameDuration <= 0 || dmi.TimeScale <= 0 {
		return 0
	}
	return float64(dmi.TimeScale) / float64(dmi.FrameDuration)
}

// FrameInterval returns the duration of one frame.
func (dmi DisplayModeInfo) FrameInterval() time.Duration {
	if dmi.TimeScale <= 0 {
		return 0
	}
	return time.Duration(dmi.FrameDuration) * time.Second / time.Duration(dmi.TimeScale)
}

func (dmi DisplayModeInfo) String() string {
	return fmt.Sprintf("%s (%s) %dx%d %.2ffps %s",
		dmi.Name, dmi.Mode, dmi.Width, dmi.Height, dmi.FrameRate(), dmi.Dominance)
}
