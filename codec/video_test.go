package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ugparu/recdl"
)

func TestSelectVideo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		encode  bool
		index   int
		kbps    int
		want    recdl.CodecType
		bitrate uint
		ok      bool
	}{
		{name: "disabled", encode: false, index: EncoderH264, kbps: 25000, want: recdl.Uncompressed, ok: true},
		{name: "prores_hq", encode: true, index: EncoderProRes422HQ, kbps: 25000, want: recdl.ProRes422HQ, ok: true},
		{name: "prores", encode: true, index: EncoderProRes422, kbps: 25000, want: recdl.ProRes422, ok: true},
		{name: "prores_lt", encode: true, index: EncoderProRes422LT, kbps: 25000, want: recdl.ProRes422LT, ok: true},
		{name: "prores_proxy", encode: true, index: EncoderProRes422Proxy, kbps: 25000, want: recdl.ProRes422Proxy, ok: true},
		{name: "h264", encode: true, index: EncoderH264, kbps: 25000, want: recdl.H264, bitrate: 25000 * 1024, ok: true},
		{name: "h265", encode: true, index: EncoderH265, kbps: 8000, want: recdl.H265, bitrate: 8000 * 1024, ok: true},
		{name: "unknown", encode: true, index: 5, kbps: 8000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			par, ok := SelectVideo(tt.encode, tt.index, tt.kbps)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, par.Type())
			require.Equal(t, tt.bitrate, par.Bitrate())
			require.Equal(t, tt.encode, par.Encode)
		})
	}
}

func TestVideoEncoderIndexRoundTrip(t *testing.T) {
	t.Parallel()

	idx, ok := VideoEncoderIndex(recdl.H265)
	require.True(t, ok)
	require.Equal(t, EncoderH265, idx)

	_, ok = VideoEncoderIndex(recdl.LPCM)
	require.False(t, ok)
}
