package recdl

import (
	"context"
	"fmt"
	"strings"
)

// DeviceQuerier is the read side of the capture SDK collaborator.
type DeviceQuerier interface {
	CurrentDevice() (DeviceDescriptor, bool)                  // Returns the attached device, false when none.
	SupportedDisplayModes() []DisplayMode                     // Lists display modes reported by the device input.
	NativeGeometry(mode DisplayMode) (DisplayModeInfo, error) // Queries native geometry, timing and field dominance.
}

// CaptureDevice is the full capture SDK collaborator the engine configures.
type CaptureDevice interface {
	DeviceQuerier                                // Inherits all DeviceQuerier methods.
	ApplySessionConfig(RecordingEncoderConfig)   // Applies session level parameters before start.
	ApplyRecordingConfig(RecordingEncoderConfig) // Applies encoder parameters before each recording.
	SetMoviePath(path string)                    // Sets the destination of the next recording.
	StartCapture(ctx context.Context) bool       // Starts the capture session.
	StopCapture(ctx context.Context) bool        // Stops the capture session.
	ToggleRecord(ctx context.Context) bool       // Starts or stops recording.
	IsRecording() bool                           // Reports whether a recording is in progress.
	IsRunning() bool                             // Reports whether the capture session is running.
}

// RecordingEncoderConfig is the resolved, SDK-ready parameter bundle. It is the only value
// handed to the CaptureDevice.
type RecordingEncoderConfig struct {
	DisplayMode     DisplayMode     `json:"displayMode"`
	PixelFormat     PixelFormat     `json:"pixelFormat"`
	VideoConnection VideoConnection `json:"videoConnection"`
	AudioConnection AudioConnection `json:"audioConnection"`
	VideoStyle      string          `json:"videoStyle"`
	Offset          ClapOffset      `json:"offset"`
	SampleTimescale int32           `json:"sampleTimescale"`

	FieldDetail FieldDetail `json:"fieldDetail"`
	FieldOrder  FieldOrder  `json:"fieldOrder,omitempty"`

	EncodeVideo  bool      `json:"encodeVideo"`
	VideoCodec   CodecType `json:"videoCodec"`
	VideoBitrate uint      `json:"videoBitrate"`

	EncodeAudio   bool       `json:"encodeAudio"`
	AudioCodec    CodecType  `json:"audioCodec"`
	AudioBitrate  uint       `json:"audioBitrate"`
	AudioDepth    AudioDepth `json:"audioDepth"`
	AudioChannels uint32     `json:"audioChannels"`

	HDMILayout    AudioLayout `json:"hdmiLayout"`
	ReverseCh3Ch4 bool        `json:"reverseCh3Ch4"`

	TimecodeSource TimecodeSource `json:"timecodeSource"`
	TimecodeFormat TimecodeFormat `json:"timecodeFormat"`
}

func (cfg RecordingEncoderConfig) String() string {
	sb := new(strings.Builder)
	fmt.Fprintf(sb, "mode=%s pixel=%s style=%s offset=%s", cfg.DisplayMode, cfg.PixelFormat, cfg.VideoStyle, cfg.Offset)
	fmt.Fprintf(sb, " video=%s@%d field=%s", cfg.VideoCodec, cfg.VideoBitrate, cfg.FieldDetail)
	fmt.Fprintf(sb, " audio=%s@%d %dch/%s", cfg.AudioCodec, cfg.AudioBitrate, cfg.AudioChannels, cfg.AudioDepth)
	if cfg.TimecodeSource != TimecodeNone {
		fmt.Fprintf(sb, " timecode=%s/%s", cfg.TimecodeSource, cfg.TimecodeFormat)
	}
	return sb.String()
}
