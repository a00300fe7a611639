package recdl

// AudioDepth is the captured audio sample width in bits.
type AudioDepth uint32

const (
	Depth16 AudioDepth = 16
	Depth32 AudioDepth = 32
)

// Valid reports whether the device accepts the depth.
func (ad AudioDepth) Valid() bool {
	return ad == Depth16 || ad == Depth32
}

// BytesPerSample returns the number of bytes per audio sample, 0 for an unknown depth.
func (ad AudioDepth) BytesPerSample() int {
	if !ad.Valid() {
		return 0
	}
	return int(ad) / 8 //nolint:mnd
}

func (ad AudioDepth) String() string {
	switch ad {
	case Depth16:
		return "S16"
	case Depth32:
		return "S32"
	default:
		return "?"
	}
}
