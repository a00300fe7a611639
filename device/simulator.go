// Package device provides a simulated capture device implementing recdl.CaptureDevice.
package device

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ugparu/recdl"
	"github.com/ugparu/recdl/utils/logger"
)

// GeometryError is returned by NativeGeometry for a mode the device cannot describe.
type GeometryError struct {
	Mode recdl.DisplayMode
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("no native geometry for display mode %s", e.Mode)
}

// Simulator behaves like a capture card driven through the vendor SDK: it reports display
// modes, accepts session and recording parameters, and starts/stops/toggles on request.
type Simulator struct {
	mu         sync.Mutex
	desc       *recdl.DeviceDescriptor
	modes      []recdl.DisplayModeInfo
	extraModes []recdl.DisplayMode
	latency    time.Duration
	refuse     bool

	running     bool
	recording   bool
	moviePath   string
	sessionCfg  recdl.RecordingEncoderConfig
	recordCfg   recdl.RecordingEncoderConfig
	recordPaths []string
}

// DefaultModes is the mode table of a typical SD/HD capture card.
func DefaultModes() []recdl.DisplayModeInfo {
	return []recdl.DisplayModeInfo{
		{Mode: recdl.ModeNTSC, Width: 720, Height: 486, FrameDuration: 1001, TimeScale: 30000, Dominance: recdl.LowerFieldFirst},
		{Mode: recdl.ModeNTSC2398, Width: 720, Height: 486, FrameDuration: 1001, TimeScale: 24000, Dominance: recdl.LowerFieldFirst},
		{Mode: recdl.ModeNTSCp, Width: 720, Height: 486, FrameDuration: 1001, TimeScale: 60000, Dominance: recdl.ProgressiveFrame},
		{Mode: recdl.ModePAL, Width: 720, Height: 576, FrameDuration: 1000, TimeScale: 25000, Dominance: recdl.UpperFieldFirst},
		{Mode: recdl.ModePALp, Width: 720, Height: 576, FrameDuration: 1000, TimeScale: 50000, Dominance: recdl.ProgressiveFrame},
		{Mode: recdl.ModeHD1080p2398, Width: 1920, Height: 1080, FrameDuration: 1001, TimeScale: 24000, Dominance: recdl.ProgressiveFrame},
		{Mode: recdl.ModeHD1080p25, Width: 1920, Height: 1080, FrameDuration: 1000, TimeScale: 25000, Dominance: recdl.ProgressiveFrame},
		{Mode: recdl.ModeHD1080i50, Width: 1920, Height: 1080, FrameDuration: 1000, TimeScale: 25000, Dominance: recdl.UpperFieldFirst},
		{Mode: recdl.ModeHD1080i5994, Width: 1920, Height: 1080, FrameDuration: 1001, TimeScale: 30000, Dominance: recdl.UpperFieldFirst},
		{Mode: recdl.ModeHD720p5994, Width: 1280, Height: 720, FrameDuration: 1001, TimeScale: 60000, Dominance: recdl.ProgressiveFrame},
		{Mode: recdl.ModeHD720p60, Width: 1280, Height: 720, FrameDuration: 1000, TimeScale: 60000, Dominance: recdl.ProgressiveFrame},
	}
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithModes replaces the mode table.
func WithModes(modes ...recdl.DisplayModeInfo) Option {
	return func(s *Simulator) {
		s.modes = append([]recdl.DisplayModeInfo(nil), modes...)
	}
}

// WithUnknownModes makes the device report extra modes it cannot describe.
func WithUnknownModes(modes ...recdl.DisplayMode) Option {
	return func(s *Simulator) {
		s.extraModes = append(s.extraModes, modes...)
	}
}

// WithLatency delays start, stop and toggle, as hardware negotiation does.
func WithLatency(d time.Duration) Option {
	return func(s *Simulator) {
		s.latency = d
	}
}

// WithDescriptor replaces the reported device identity.
func WithDescriptor(desc recdl.DeviceDescriptor) Option {
	return func(s *Simulator) {
		s.desc = &desc
	}
}

// New returns an attached simulator.
func New(opts ...Option) *Simulator {
	desc := recdl.NewDeviceDescriptor("DeckLink Mini Recorder", "Simulated DeckLink")
	desc.PersistentID = 0x5e1ec7ed
	desc.TopologicalID = 0x200
	desc.DuplexMode = recdl.DuplexHalf
	desc.SupportInputFormatDetection = true
	sim := &Simulator{desc: &desc, modes: DefaultModes()}
	for _, opt := range opts {
		opt(sim)
	}
	return sim
}

// Detached returns a simulator with no device attached.
func Detached() *Simulator {
	return &Simulator{}
}

func (s *Simulator) String() string {
	return "SIMULATOR"
}

// Refuse makes subsequent start/stop/toggle calls fail.
func (s *Simulator) Refuse(refuse bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refuse = refuse
}

func (s *Simulator) CurrentDevice() (recdl.DeviceDescriptor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.desc == nil {
		return recdl.DeviceDescriptor{}, false
	}
	return *s.desc, true
}

func (s *Simulator) SupportedDisplayModes() []recdl.DisplayMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.desc == nil {
		return nil
	}
	modes := make([]recdl.DisplayMode, 0, len(s.modes)+len(s.extraModes))
	for _, info := range s.modes {
		modes = append(modes, info.Mode)
	}
	return append(modes, s.extraModes...)
}

func (s *Simulator) NativeGeometry(mode recdl.DisplayMode) (recdl.DisplayModeInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, info := range s.modes {
		if info.Mode == mode {
			return info, nil
		}
	}
	return recdl.DisplayModeInfo{}, &GeometryError{Mode: mode}
}

func (s *Simulator) ApplySessionConfig(cfg recdl.RecordingEncoderConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessionCfg = cfg
	logger.Debugf(s, "Session config applied: %s", cfg)
}

func (s *Simulator) ApplyRecordingConfig(cfg recdl.RecordingEncoderConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recordCfg = cfg
	logger.Debugf(s, "Recording config applied: %s", cfg)
}

func (s *Simulator) SetMoviePath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.moviePath = path
}

func (s *Simulator) wait(ctx context.Context) bool {
	if s.latency <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (s *Simulator) StartCapture(ctx context.Context) bool {
	if !s.wait(ctx) {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.desc == nil || s.refuse || s.running {
		return false
	}
	s.running = true
	return true
}

func (s *Simulator) StopCapture(ctx context.Context) bool {
	if !s.wait(ctx) {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.refuse || !s.running {
		return false
	}
	s.running = false
	s.recording = false
	return true
}

func (s *Simulator) ToggleRecord(ctx context.Context) bool {
	if !s.wait(ctx) {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.refuse || !s.running {
		return false
	}
	if !s.recording {
		if s.moviePath == "" {
			return false
		}
		s.recordPaths = append(s.recordPaths, s.moviePath)
	}
	s.recording = !s.recording
	return true
}

func (s *Simulator) IsRecording() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recording
}

func (s *Simulator) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// SessionConfig returns the last applied session configuration.
func (s *Simulator) SessionConfig() recdl.RecordingEncoderConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionCfg
}

// RecordingConfig returns the last applied recording configuration.
func (s *Simulator) RecordingConfig() recdl.RecordingEncoderConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recordCfg
}

// Recordings lists the movie paths recordings were started with.
func (s *Simulator) Recordings() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.recordPaths...)
}
