// Package codec selects encoder formats and legal bitrates for recording.
package codec

import (
	"fmt"

	"github.com/ugparu/recdl"
)

// BaseParameters is the codec and bitrate pair shared by audio and video selections.
type BaseParameters struct {
	BRate uint
	recdl.CodecType
}

func (par *BaseParameters) Type() recdl.CodecType {
	if par == nil {
		return 0
	}
	return par.CodecType
}

func (par *BaseParameters) SetBitrate(br uint) {
	par.BRate = br
}

// Bitrate returns the target bitrate in bits per second, 0 for fixed-quality codecs.
func (par *BaseParameters) Bitrate() uint {
	if par == nil {
		return 0
	}
	return par.BRate
}

func (par *BaseParameters) String() string {
	if par == nil {
		return "EMPTY_CODEC_PARAMETERS"
	}
	return fmt.Sprintf("CODEC_PARAMETERS codec=%v bitrate=%d", par.CodecType, par.BRate)
}

// VideoParameters is a video codec selection.
type VideoParameters struct {
	BaseParameters
	Encode bool
}

// AudioParameters is an audio codec selection.
type AudioParameters struct {
	BaseParameters
	Encode bool
}
