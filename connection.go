package recdl

import "fmt"

// PixelFormat is the capture pixel buffer format.
type PixelFormat uint32

var (
	Format8BitYUV  = PixelFormat(MakeFourCC("2vuy"))
	Format10BitYUV = PixelFormat(MakeFourCC("v210"))
	Format8BitARGB = PixelFormat(32) //nolint:mnd
	Format8BitBGRA = PixelFormat(MakeFourCC("BGRA"))
	Format10BitRGB = PixelFormat(MakeFourCC("r210"))
)

// Valid reports whether pf is a capture format the device accepts.
func (pf PixelFormat) Valid() bool {
	switch pf {
	case Format8BitYUV, Format10BitYUV, Format8BitARGB, Format8BitBGRA, Format10BitRGB:
		return true
	}
	return false
}

func (pf PixelFormat) String() string {
	if pf == Format8BitARGB {
		return "ARGB"
	}
	return fourCCString(uint32(pf))
}

func (pf PixelFormat) MarshalText() ([]byte, error) {
	return []byte(fourCCString(uint32(pf))), nil
}

func (pf *PixelFormat) UnmarshalText(text []byte) error {
	v, err := parseFourCC(string(text))
	if err != nil {
		return err
	}
	*pf = PixelFormat(v)
	return nil
}

// VideoConnection is the physical video input.
type VideoConnection uint32

const (
	VideoConnectionNone       VideoConnection = 0
	VideoConnectionSDI        VideoConnection = 1 << 0
	VideoConnectionHDMI       VideoConnection = 1 << 1
	VideoConnectionOpticalSDI VideoConnection = 1 << 2
	VideoConnectionComponent  VideoConnection = 1 << 3
	VideoConnectionComposite  VideoConnection = 1 << 4
	VideoConnectionSVideo     VideoConnection = 1 << 5
)

func (vc VideoConnection) String() string {
	switch vc {
	case VideoConnectionNone:
		return "None"
	case VideoConnectionSDI:
		return "SDI"
	case VideoConnectionHDMI:
		return "HDMI"
	case VideoConnectionOpticalSDI:
		return "OpticalSDI"
	case VideoConnectionComponent:
		return "Component"
	case VideoConnectionComposite:
		return "Composite"
	case VideoConnectionSVideo:
		return "S-Video"
	}
	return fmt.Sprintf("VideoConnection(%d)", uint32(vc))
}

// AudioConnection is the physical audio input.
type AudioConnection uint32

const (
	AudioConnectionNone       AudioConnection = 0
	AudioConnectionEmbedded   AudioConnection = 1 << 0
	AudioConnectionAESEBU     AudioConnection = 1 << 1
	AudioConnectionAnalog     AudioConnection = 1 << 2
	AudioConnectionAnalogXLR  AudioConnection = 1 << 3
	AudioConnectionAnalogRCA  AudioConnection = 1 << 4
	AudioConnectionMicrophone AudioConnection = 1 << 5
	AudioConnectionHeadphones AudioConnection = 1 << 6
)

func (ac AudioConnection) String() string {
	switch ac {
	case AudioConnectionNone:
		return "None"
	case AudioConnectionEmbedded:
		return "Embedded"
	case AudioConnectionAESEBU:
		return "AES/EBU"
	case AudioConnectionAnalog:
		return "Analog"
	case AudioConnectionAnalogXLR:
		return "AnalogXLR"
	case AudioConnectionAnalogRCA:
		return "AnalogRCA"
	case AudioConnectionMicrophone:
		return "Microphone"
	case AudioConnectionHeadphones:
		return "Headphones"
	}
	return fmt.Sprintf("AudioConnection(%d)", uint32(ac))
}
