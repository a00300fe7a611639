// Package recording turns a settings snapshot into the encoder configuration handed to the
// capture device. Session parameters and recording parameters are applied separately: the
// former before the capture session starts, the latter before every recording.
package recording

import (
	"github.com/ugparu/recdl"
	"github.com/ugparu/recdl/codec"
	"github.com/ugparu/recdl/codec/aac"
	"github.com/ugparu/recdl/resolver"
	"github.com/ugparu/recdl/settings"
	"github.com/ugparu/recdl/utils/logger"
)

// Persisted timecode format selectors.
const (
	TimecodeFormat32 = 32
	TimecodeFormat64 = 64
)

const (
	audioBitrateUnit = 1000
	minAACChannels   = 2
)

// Builder maps snapshots to configs against the catalog of a resolver. It holds no state
// besides the resolver and is safe for concurrent use.
type Builder struct {
	res *resolver.Resolver
}

// NewBuilder returns a builder over res. A nil resolver behaves as one over an empty catalog.
func NewBuilder(res *resolver.Resolver) *Builder {
	if res == nil {
		res = resolver.New(nil)
	}
	return &Builder{res: res}
}

// ApplySession sets the session level fields of prior from snap. It fails, returning prior
// unchanged, when the display mode or video style is not in the catalog or the pixel format
// or audio depth is unknown.
func (b *Builder) ApplySession(prior recdl.RecordingEncoderConfig,
	snap settings.Snapshot) (recdl.RecordingEncoderConfig, bool) {
	cat := b.res.Catalog()
	if _, ok := cat.SettingInfoFor(snap.DisplayMode); !ok {
		logger.Warningf(b, "Display mode %s is not supported by the device", snap.DisplayMode)
		return prior, false
	}
	style, ok := cat.Style(snap.VideoStyle)
	if !ok {
		logger.Warningf(b, "Unknown video style %q", snap.VideoStyle)
		return prior, false
	}
	if !snap.PixelFormat.Valid() {
		logger.Warningf(b, "Unknown pixel format %s", snap.PixelFormat)
		return prior, false
	}
	if !snap.AudioDepth.Valid() {
		logger.Warningf(b, "Unknown audio depth %d", uint32(snap.AudioDepth))
		return prior, false
	}

	if compat := b.res.VerifyAll(snap.DisplayMode, style.Name, snap.Offset(), snap.VideoFieldDetail); !compat.OK() {
		logger.Warningf(b, "Inconsistent settings for %s/%s: style=%t clap=%t field=%t",
			snap.DisplayMode, style.Name, compat.Style, compat.Clap, compat.Field)
	}

	cfg := prior
	cfg.DisplayMode = snap.DisplayMode
	cfg.VideoConnection = snap.VideoConnection
	cfg.AudioConnection = snap.AudioConnection
	cfg.PixelFormat = snap.PixelFormat
	cfg.VideoStyle = style.Name
	cfg.AudioDepth = snap.AudioDepth
	cfg.AudioChannels = snap.AudioChannel
	if resolver.HDMIAudioLayoutReady(snap.VideoConnection, snap.AudioConnection, snap.AudioChannel) {
		if snap.AudioLayout.Valid() {
			cfg.HDMILayout = snap.AudioLayout
			cfg.ReverseCh3Ch4 = snap.AudioReverse34
		} else {
			logger.Warningf(b, "Unknown HDMI audio layout %d, layout kept", uint32(snap.AudioLayout))
		}
	}
	cfg.TimecodeSource = timecodeSource(snap.TimeCodeSource)
	return cfg, true
}

// ApplyRecording sets the encoder fields of prior from snap. Out of range values are
// clamped or cleared, never rejected.
func (b *Builder) ApplyRecording(prior recdl.RecordingEncoderConfig, snap settings.Snapshot) recdl.RecordingEncoderConfig {
	cfg := prior
	cfg.Offset = snap.Offset()
	cfg.SampleTimescale = snap.VideoTimeScale

	format, ok := timecodeFormat(snap.TimeCodeFormat)
	cfg.TimecodeFormat = format
	cfg.TimecodeSource = timecodeSource(snap.TimeCodeSource)
	if !ok {
		cfg.TimecodeSource = recdl.TimecodeNone
	}

	b.applyVideo(&cfg, snap)
	b.applyField(&cfg, snap.VideoFieldDetail)
	b.applyAudio(&cfg, snap)
	return cfg
}

// Build applies session then recording parameters.
func (b *Builder) Build(prior recdl.RecordingEncoderConfig, snap settings.Snapshot) (recdl.RecordingEncoderConfig, bool) {
	cfg, ok := b.ApplySession(prior, snap)
	if !ok {
		return prior, false
	}
	return b.ApplyRecording(cfg, snap), true
}

func (b *Builder) applyVideo(cfg *recdl.RecordingEncoderConfig, snap settings.Snapshot) {
	par, ok := codec.SelectVideo(snap.VideoEncode, snap.VideoEncoder, snap.VideoBitRate)
	cfg.EncodeVideo = par.Encode
	if !ok {
		logger.Warningf(b, "Unknown video encoder %d, video codec left unconfigured", snap.VideoEncoder)
		return
	}
	cfg.VideoCodec = par.Type()
	cfg.VideoBitrate = par.Bitrate()
}

func (b *Builder) applyField(cfg *recdl.RecordingEncoderConfig, detail recdl.FieldDetail) {
	switch {
	case detail.Interlaced():
		cfg.FieldDetail = detail
		cfg.FieldOrder = detail.Order()
	case detail <= recdl.SingleField:
		cfg.FieldDetail = recdl.SingleField
		cfg.FieldOrder = recdl.FieldOrderNone
	default:
		logger.Debugf(b, "Unknown field detail %d, field order kept", int(detail))
	}
}

func (b *Builder) applyAudio(cfg *recdl.RecordingEncoderConfig, snap settings.Snapshot) {
	if !snap.AudioEncode {
		cfg.EncodeAudio = false
		cfg.AudioCodec = recdl.LPCM
		cfg.AudioBitrate = 0
		return
	}
	cfg.EncodeAudio = true
	if snap.AudioEncoder <= 0 {
		logger.Debugf(b, "Audio encoder %d selects no codec", snap.AudioEncoder)
		return
	}
	bitrate := uint(max(snap.AudioBitRate, 0)) * audioBitrateUnit //nolint:gosec // non-negative
	par := aac.Legalize(bitrate, max(minAACChannels, cfg.HDMILayout.ChannelLayout().Count()))
	cfg.AudioCodec = par.Type()
	cfg.AudioBitrate = par.Bitrate()
}

func (b *Builder) String() string {
	return "RECORDING_BUILDER"
}

// timecodeSource keeps only the four single-flag sources.
func timecodeSource(src recdl.TimecodeSource) recdl.TimecodeSource {
	if src.Valid() {
		return src
	}
	return recdl.TimecodeNone
}

// timecodeFormat falls back to the 32-bit format and reports false for unknown selectors.
func timecodeFormat(selector int) (recdl.TimecodeFormat, bool) {
	switch selector {
	case TimecodeFormat32:
		return recdl.TimeCode32, true
	case TimecodeFormat64:
		return recdl.TimeCode64, true
	}
	return recdl.TimeCode32, false
}
