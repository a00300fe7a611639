package codec

import "github.com/ugparu/recdl"

// Persisted video encoder indices.
const (
	EncoderProRes422HQ    = 0
	EncoderProRes422      = 1
	EncoderProRes422LT    = 2
	EncoderProRes422Proxy = 3
	EncoderH264           = 10
	EncoderH265           = 11
)

// videoBitrateUnit converts the persisted kbit/s value to bit/s.
const videoBitrateUnit = 1024

var videoEncoders = map[int]recdl.CodecType{
	EncoderProRes422HQ:    recdl.ProRes422HQ,
	EncoderProRes422:      recdl.ProRes422,
	EncoderProRes422LT:    recdl.ProRes422LT,
	EncoderProRes422Proxy: recdl.ProRes422Proxy,
	EncoderH264:           recdl.H264,
	EncoderH265:           recdl.H265,
}

// SelectVideo maps the compression toggle and encoder index to a codec. Disabled
// compression records uncompressed 4:2:2. ProRes variants are fixed quality (bitrate 0);
// H.264/H.265 take kbps × 1024. An unknown index returns false and no codec.
func SelectVideo(encode bool, encoderIndex int, kbps int) (VideoParameters, bool) {
	if !encode {
		return VideoParameters{BaseParameters: BaseParameters{CodecType: recdl.Uncompressed}}, true
	}
	ct, ok := videoEncoders[encoderIndex]
	if !ok {
		return VideoParameters{Encode: true}, false
	}
	par := VideoParameters{Encode: true, BaseParameters: BaseParameters{CodecType: ct}}
	if !ct.FixedQuality() && kbps > 0 {
		par.SetBitrate(uint(kbps) * videoBitrateUnit)
	}
	return par, true
}

// VideoEncoderIndex is the inverse of SelectVideo's index table.
func VideoEncoderIndex(ct recdl.CodecType) (int, bool) {
	for idx, c := range videoEncoders {
		if c == ct {
			return idx, true
		}
	}
	return 0, false
}
