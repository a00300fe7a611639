// Package aac picks the AAC profile for a requested bitrate and clamps the bitrate into the
// range the profile accepts.
package aac

import (
	"fmt"

	"github.com/ugparu/recdl"
	"github.com/ugparu/recdl/codec"
)

// MPEG-4 audio object types of the three profiles, from libavcodec/mpeg4audio.h.
const (
	ObjectTypeLC   = 2  // Low Complexity
	ObjectTypeHE   = 5  // Spectral Band Replication
	ObjectTypeHEv2 = 29 // Parametric Stereo
)

const (
	// LCThreshold is the bitrate above which AAC-LC is used.
	LCThreshold uint = 80_000
	// HEThreshold is the bitrate above which HE-AAC is used; at or below it HE-AACv2.
	HEThreshold uint = 40_000

	// HECeiling and HEv2Ceiling are flat limits independent of channel count.
	HECeiling   uint = 80_000
	HEv2Ceiling uint = 40_000

	minBitratePerChannel uint = 40_000
	maxBitratePerChannel uint = 160_000

	// lfeThreshold is the channel count above which one channel is the LFE.
	lfeThreshold = 5
)

// EffectiveChannels excludes the LFE channel from the rate budget when channels > 5.
func EffectiveChannels(channels int) int {
	if channels > lfeThreshold {
		return channels - 1
	}
	return channels
}

// BitrateRange returns the AAC-LC bitrate range for the channel count. channels must be
// positive; anything else is a programming error and panics.
func BitrateRange(channels int) (lo, hi uint) {
	if channels <= 0 {
		panic(fmt.Sprintf("aac: channel count must be positive, got %d", channels))
	}
	eff := uint(EffectiveChannels(channels)) //nolint:gosec // positive
	return minBitratePerChannel * eff, maxBitratePerChannel * eff
}

// SelectProfile buckets the requested bitrate into a profile.
func SelectProfile(bitrate uint) recdl.CodecType {
	switch {
	case bitrate > LCThreshold:
		return recdl.AAC
	case bitrate > HEThreshold:
		return recdl.AACHE
	default:
		return recdl.AACHEv2
	}
}

// ObjectType returns the MPEG-4 audio object type of an AAC profile, 0 for other codecs.
func ObjectType(ct recdl.CodecType) uint {
	switch ct {
	case recdl.AAC:
		return ObjectTypeLC
	case recdl.AACHE:
		return ObjectTypeHE
	case recdl.AACHEv2:
		return ObjectTypeHEv2
	}
	return 0
}

// Legalize selects the profile for bitrate and clamps bitrate into its legal range. AAC-LC
// is clamped per effective channel; HE and HEv2 only have a flat ceiling.
func Legalize(bitrate uint, channels int) codec.AudioParameters {
	par := codec.AudioParameters{Encode: true}
	par.CodecType = SelectProfile(bitrate)
	switch par.CodecType {
	case recdl.AAC:
		lo, hi := BitrateRange(channels)
		par.SetBitrate(min(max(bitrate, lo), hi))
	case recdl.AACHE:
		par.SetBitrate(min(bitrate, HECeiling))
	default:
		par.SetBitrate(min(bitrate, HEv2Ceiling))
	}
	return par
}
