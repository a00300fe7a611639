package recdl

// TimecodeSource selects where recorded timecode comes from. Zero means no timecode track.
type TimecodeSource int

const (
	TimecodeNone      TimecodeSource = 0
	TimecodeSerial    TimecodeSource = 1
	TimecodeVITC      TimecodeSource = 2
	TimecodeRP188     TimecodeSource = 4
	TimecodeCoreAudio TimecodeSource = 8
)

// Valid reports whether ts is exactly one of the four source flags.
func (ts TimecodeSource) Valid() bool {
	switch ts {
	case TimecodeSerial, TimecodeVITC, TimecodeRP188, TimecodeCoreAudio:
		return true
	}
	return false
}

func (ts TimecodeSource) String() string {
	switch ts {
	case TimecodeNone:
		return "None"
	case TimecodeSerial:
		return "Serial"
	case TimecodeVITC:
		return "VITC"
	case TimecodeRP188:
		return "RP188"
	case TimecodeCoreAudio:
		return "CoreAudio"
	}
	return "Invalid"
}

// TimecodeFormat is the timecode sample format of the recorded track.
type TimecodeFormat uint32

var (
	TimeCode32 = TimecodeFormat(MakeFourCC("tmcd"))
	TimeCode64 = TimecodeFormat(MakeFourCC("tc64"))
)

func (tf TimecodeFormat) String() string {
	return fourCCString(uint32(tf))
}

func (tf TimecodeFormat) MarshalText() ([]byte, error) {
	return []byte(tf.String()), nil
}

func (tf *TimecodeFormat) UnmarshalText(text []byte) error {
	v, err := parseFourCC(string(text))
	if err != nil {
		return err
	}
	*tf = TimecodeFormat(v)
	return nil
}
