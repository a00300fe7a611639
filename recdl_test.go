package recdl

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFourCC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code string
		want uint32
		text string
	}{
		{name: "full", code: "ntsc", want: 0x6e747363, text: "ntsc"},
		{name: "padded", code: "pal", want: 0x70616c20, text: "pal "},
		{name: "truncated", code: "2vuyx", want: 0x32767579, text: "2vuy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, MakeFourCC(tt.code))
			require.Equal(t, tt.text, fourCCString(tt.want))
		})
	}

	require.Equal(t, "0x00000020", fourCCString(32))
	v, err := parseFourCC("0x00000020")
	require.NoError(t, err)
	require.Equal(t, uint32(32), v)

	_, err = parseFourCC("")
	require.Error(t, err)
	_, err = parseFourCC("0xZZ")
	require.Error(t, err)
}

func TestDisplayModeText(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(ModePAL)
	require.NoError(t, err)
	require.JSONEq(t, `"pal "`, string(data))

	var mode DisplayMode
	require.NoError(t, json.Unmarshal([]byte(`"Hp30"`), &mode))
	require.Equal(t, ModeHD1080p30, mode)
}

func TestDisplayModeInfoTiming(t *testing.T) {
	t.Parallel()

	info := DisplayModeInfo{Mode: ModeNTSC, Width: 720, Height: 486, FrameDuration: 1001, TimeScale: 30000}
	require.True(t, info.Valid())
	require.InDelta(t, 29.97, info.FrameRate(), 0.01)
	require.Equal(t, Size{Width: 720, Height: 486}, info.Size())

	require.False(t, DisplayModeInfo{Width: 720, Height: 486, TimeScale: 30000}.Valid())
	require.Zero(t, DisplayModeInfo{}.FrameRate())
}

func TestFieldDetail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		detail     FieldDetail
		dominance  FieldDominance
		interlaced bool
		order      FieldOrder
	}{
		{detail: SingleField, dominance: ProgressiveFrame, order: FieldOrderNone},
		{detail: BottomFieldFirst, dominance: LowerFieldFirst, interlaced: true, order: SpatialFirstLineLate},
		{detail: TopFieldFirst, dominance: UpperFieldFirst, interlaced: true, order: SpatialFirstLineEarly},
	}
	for _, tt := range tests {
		require.True(t, tt.detail.Valid())
		require.Equal(t, tt.dominance, tt.detail.Dominance())
		require.Equal(t, tt.interlaced, tt.detail.Interlaced())
		require.Equal(t, tt.order, tt.detail.Order())

		back, ok := FieldDetailFor(tt.dominance)
		require.True(t, ok)
		require.Equal(t, tt.detail, back)
	}

	require.False(t, FieldDetail(3).Valid())
	require.Equal(t, FieldUnknown, FieldDetail(-1).Dominance())
	_, ok := FieldDetailFor(ProgressiveSegmentedFrame)
	require.False(t, ok)
}

func TestVideoStyleClapRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		style VideoStyle
		h, v  int
	}{
		{name: "sd_16_9", style: VideoStyle{Name: "a", Encoded: Size{720, 480}, Visible: Size{704, 480}}, h: 8, v: 0},
		{name: "hd_16_9", style: VideoStyle{Name: "b", Encoded: Size{1920, 1080}, Visible: Size{1888, 1062}}, h: 16, v: 9},
		{name: "full", style: VideoStyle{Name: "c", Encoded: Size{1280, 720}, Visible: Size{1280, 720}}},
		{name: "visible_exceeds", style: VideoStyle{Name: "d", Encoded: Size{640, 480}, Visible: Size{720, 480}}},
		{name: "nameless", style: VideoStyle{Encoded: Size{720, 486}, Visible: Size{704, 480}}, h: 8, v: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, v := tt.style.ClapRange()
			require.Equal(t, tt.h, h)
			require.Equal(t, tt.v, v)
		})
	}

	require.False(t, VideoStyle{Encoded: Size{720, 486}, Visible: Size{704, 480}}.Valid())
	require.False(t, VideoStyle{Name: "d", Encoded: Size{640, 480}, Visible: Size{720, 480}}.Valid())
}

func TestChannelLayout(t *testing.T) {
	t.Parallel()

	require.Equal(t, 2, ChStereo.Count())
	require.Equal(t, 6, Ch5P1.Count())
	require.Equal(t, 8, Ch7P1.Count())
	require.Equal(t, "5.1ch", Ch5P1.String())
	require.Equal(t, "3ch", ChSurround.String())

	require.Equal(t, Ch7P1, LayoutSevenOne.ChannelLayout())
	require.Zero(t, LayoutDiscrete.ChannelLayout())
	require.True(t, LayoutFiveOne.Valid())
	require.False(t, AudioLayout(4).Valid())
}

func TestCodecType(t *testing.T) {
	t.Parallel()

	require.True(t, AAC.IsAudio())
	require.False(t, AAC.IsVideo())
	require.True(t, H265.IsVideo())
	require.True(t, ProRes422LT.FixedQuality())
	require.False(t, H264.FixedQuality())
	require.Equal(t, "HE-AACv2", AACHEv2.String())
	require.Equal(t, "aac ", AAC.FourCC())

	var ct CodecType
	require.NoError(t, ct.UnmarshalText([]byte("apch")))
	require.Equal(t, ProRes422HQ, ct)
	require.False(t, CodecType(MakeFourCC("zzzz")).IsAudio())
}

func TestPixelFormatAndDepth(t *testing.T) {
	t.Parallel()

	require.True(t, Format10BitYUV.Valid())
	require.True(t, Format8BitARGB.Valid())
	require.False(t, PixelFormat(7).Valid())

	text, err := Format8BitARGB.MarshalText()
	require.NoError(t, err)
	var pf PixelFormat
	require.NoError(t, pf.UnmarshalText(text))
	require.Equal(t, Format8BitARGB, pf)

	require.Equal(t, 2, Depth16.BytesPerSample())
	require.Equal(t, 4, Depth32.BytesPerSample())
	require.Zero(t, AudioDepth(24).BytesPerSample())
}

func TestTimecodeSource(t *testing.T) {
	t.Parallel()

	for _, src := range []TimecodeSource{TimecodeSerial, TimecodeVITC, TimecodeRP188, TimecodeCoreAudio} {
		require.True(t, src.Valid(), src.String())
	}
	for _, src := range []TimecodeSource{TimecodeNone, 3, -1, 16} {
		require.False(t, src.Valid(), src.String())
	}
}

func TestRecordingEncoderConfigString(t *testing.T) {
	t.Parallel()

	cfg := RecordingEncoderConfig{
		DisplayMode:    ModeNTSC,
		VideoStyle:     "SD_720_486_16_9",
		VideoCodec:     ProRes422,
		AudioCodec:     AAC,
		AudioBitrate:   256000,
		AudioChannels:  2,
		AudioDepth:     Depth16,
		TimecodeSource: TimecodeRP188,
		TimecodeFormat: TimeCode64,
	}
	s := cfg.String()
	require.Contains(t, s, "mode=ntsc")
	require.Contains(t, s, "video=ProRes 422@0")
	require.Contains(t, s, "audio=AAC-LC@256000 2ch/S16")
	require.Contains(t, s, "timecode=RP188/tc64")
}
