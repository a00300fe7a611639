package recdl

import "fmt"

// ChannelLayout represents the audio speaker layout as a bit mask.
type ChannelLayout uint16

// String returns the human-readable string representation of a ChannelLayout.
func (ch ChannelLayout) String() string {
	if ch.HasLFE() {
		return fmt.Sprintf("%d.1ch", ch.Count()-1)
	}
	return fmt.Sprintf("%dch", ch.Count())
}

// Speaker positions.
const (
	ChFrontCenter = ChannelLayout(1 << iota)
	ChFrontLeft
	ChFrontRight
	ChBackCenter
	ChBackLeft
	ChBackRight
	ChSideLeft
	ChSideRight
	ChLowFreq

	ChMono     = (ChFrontCenter)
	ChStereo   = (ChFrontLeft | ChFrontRight)
	ChSurround = (ChStereo | ChFrontCenter)
	Ch5P1      = (ChSurround | ChLowFreq | ChBackLeft | ChBackRight)
	Ch7P1      = (Ch5P1 | ChSideLeft | ChSideRight)
)

// Count returns the number of channels in the ChannelLayout.
func (ch ChannelLayout) Count() (n int) {
	for ch != 0 {
		n++
		ch = (ch - 1) & ch
	}
	return
}

// HasLFE reports whether the layout carries a low-frequency-effects channel.
func (ch ChannelLayout) HasLFE() bool {
	return ch&ChLowFreq != 0
}

// AudioLayout is the HDMI multichannel layout selection. The raw values are the persisted
// ones: 0 discrete, otherwise the speaker count of the layout.
type AudioLayout uint32

const (
	LayoutDiscrete AudioLayout = 0
	LayoutLR       AudioLayout = 2
	LayoutLRC      AudioLayout = 3
	LayoutFiveOne  AudioLayout = 6
	LayoutSevenOne AudioLayout = 8
)

// Valid reports whether al is one of the known layouts.
func (al AudioLayout) Valid() bool {
	switch al {
	case LayoutDiscrete, LayoutLR, LayoutLRC, LayoutFiveOne, LayoutSevenOne:
		return true
	}
	return false
}

// ChannelLayout returns the speaker mask for the layout. Discrete has no speaker mapping.
func (al AudioLayout) ChannelLayout() ChannelLayout {
	switch al {
	case LayoutLR:
		return ChStereo
	case LayoutLRC:
		return ChSurround
	case LayoutFiveOne:
		return Ch5P1
	case LayoutSevenOne:
		return Ch7P1
	}
	return 0
}

func (al AudioLayout) String() string {
	switch al {
	case LayoutDiscrete:
		return "Discrete"
	case LayoutLR:
		return "LR"
	case LayoutLRC:
		return "LRC"
	case LayoutFiveOne:
		return "5.1ch"
	case LayoutSevenOne:
		return "7.1ch"
	}
	return fmt.Sprintf("UnknownLayout(%d)", uint32(al))
}
