package recdl

// CodecType identifies an encoder output format by its four character code.
type CodecType uint32

// codecTypeAudioBit marks audio formats in the low bit of the registry index below.
const codecTypeAudioBit = 0x1

// Video codec types.
var (
	Uncompressed   = CodecType(MakeFourCC("2vuy"))
	ProRes422HQ    = CodecType(MakeFourCC("apch"))
	ProRes422      = CodecType(MakeFourCC("apcn"))
	ProRes422LT    = CodecType(MakeFourCC("apcs"))
	ProRes422Proxy = CodecType(MakeFourCC("apco"))
	H264           = CodecType(MakeFourCC("avc1"))
	H265           = CodecType(MakeFourCC("hvc1"))
)

// Audio codec types.
var (
	LPCM    = CodecType(MakeFourCC("lpcm"))
	AAC     = CodecType(MakeFourCC("aac "))
	AACHE   = CodecType(MakeFourCC("aach"))
	AACHEv2 = CodecType(MakeFourCC("aacp"))
)

type codecInfo struct {
	name  string
	flags uint8
}

var codecRegistry = map[CodecType]codecInfo{
	Uncompressed:   {name: "Uncompressed 4:2:2"},
	ProRes422HQ:    {name: "ProRes 422 HQ"},
	ProRes422:      {name: "ProRes 422"},
	ProRes422LT:    {name: "ProRes 422 LT"},
	ProRes422Proxy: {name: "ProRes 422 Proxy"},
	H264:           {name: "H.264"},
	H265:           {name: "H.265"},
	LPCM:           {name: "LPCM", flags: codecTypeAudioBit},
	AAC:            {name: "AAC-LC", flags: codecTypeAudioBit},
	AACHE:          {name: "HE-AAC", flags: codecTypeAudioBit},
	AACHEv2:        {name: "HE-AACv2", flags: codecTypeAudioBit},
}

// String returns the human-readable codec name.
func (ct CodecType) String() string {
	if info, ok := codecRegistry[ct]; ok {
		return info.name
	}
	if ct == 0 {
		return "NONE"
	}
	return "UNKNOWN(" + fourCCString(uint32(ct)) + ")"
}

// FourCC returns the raw four character code.
func (ct CodecType) FourCC() string {
	return fourCCString(uint32(ct))
}

// IsAudio returns true if the CodecType represents an audio codec.
func (ct CodecType) IsAudio() bool {
	info, ok := codecRegistry[ct]
	return ok && info.flags&codecTypeAudioBit != 0
}

// IsVideo returns true if the CodecType represents a video codec.
func (ct CodecType) IsVideo() bool {
	info, ok := codecRegistry[ct]
	return ok && info.flags&codecTypeAudioBit == 0
}

// FixedQuality reports codecs that ignore a bitrate target.
func (ct CodecType) FixedQuality() bool {
	switch ct {
	case Uncompressed, ProRes422HQ, ProRes422, ProRes422LT, ProRes422Proxy, LPCM:
		return true
	}
	return false
}

func (ct CodecType) MarshalText() ([]byte, error) {
	return []byte(ct.FourCC()), nil
}

func (ct *CodecType) UnmarshalText(text []byte) error {
	v, err := parseFourCC(string(text))
	if err != nil {
		return err
	}
	*ct = CodecType(v)
	return nil
}
