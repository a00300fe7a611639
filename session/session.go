// Package session owns the capture device. Every mutating operation runs alone: an
// operation issued while another is in flight is rejected with BusyError instead of
// being queued.
package session

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/ugparu/recdl"
	"github.com/ugparu/recdl/utils/lifecycle"
	"github.com/ugparu/recdl/utils/logger"
)

const (
	defaultPollInterval = 500 * time.Millisecond
	limitRetryInterval  = 20 * time.Millisecond
)

// Session serializes start, stop, toggle and apply calls against one capture device.
type Session struct {
	busy atomic.Bool

	mu        sync.RWMutex
	dev       recdl.CaptureDevice
	id        uuid.UUID
	started   bool
	recording bool
	path      string
	since     time.Time
	deadline  time.Time

	timer    lifecycle.AsyncManager[*stopTimer]
	timerGen uint64
	poller   lifecycle.AsyncManager[*statusPoller]
	status   atomic.Pointer[Status]

	pollInterval time.Duration
	onLimit      func(Status)
}

// Option configures a Session.
type Option func(*Session)

// WithPollInterval sets how often the status is republished.
func WithPollInterval(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.pollInterval = d
		}
	}
}

// OnLimitReached registers fn to run after the stop timer ended a recording. fn receives
// the status at the moment recording stopped.
func OnLimitReached(fn func(Status)) Option {
	return func(s *Session) {
		s.onLimit = fn
	}
}

// New returns an unconfigured session.
func New(opts ...Option) *Session {
	s := &Session{pollInterval: defaultPollInterval}
	for _, opt := range opts {
		opt(s)
	}
	s.status.Store(&Status{})
	return s
}

func (s *Session) String() string {
	return "SESSION"
}

func (s *Session) acquire(op string) error {
	if !s.busy.CompareAndSwap(false, true) {
		logger.Warningf(s, "Rejected %s: another operation is in flight", op)
		return &BusyError{Op: op}
	}
	return nil
}

func (s *Session) release() {
	s.busy.Store(false)
}

// Busy reports whether an operation is in flight.
func (s *Session) Busy() bool {
	return s.busy.Load()
}

// Configure binds dev to the session. A running session must be stopped first.
func (s *Session) Configure(dev recdl.CaptureDevice) error {
	if err := s.acquire("configure"); err != nil {
		return err
	}
	defer s.release()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return &StartedAlreadyError{}
	}
	s.dev = dev
	return nil
}

// Start applies the session parameters of cfg and starts capturing.
func (s *Session) Start(ctx context.Context, cfg recdl.RecordingEncoderConfig) error {
	if err := s.acquire("start"); err != nil {
		return err
	}
	defer s.release()

	dev, started, _ := s.state()
	if dev == nil {
		return &NotConfiguredError{}
	}
	if started {
		return &StartedAlreadyError{}
	}

	logger.Infof(s, "Starting capture session: %s", cfg)
	dev.ApplySessionConfig(cfg)
	if !dev.StartCapture(ctx) {
		logger.Errorf(s, "Starting capture session failed")
		return &DeviceRefusedError{Op: "start capture"}
	}

	s.mu.Lock()
	s.started = true
	s.id = uuid.New()
	s.mu.Unlock()

	s.startPoller()
	logger.Infof(s, "Capture session %s started", s.ID())
	return nil
}

// Stop ends a running session, stopping a recording in progress first.
func (s *Session) Stop(ctx context.Context) error {
	if err := s.acquire("stop"); err != nil {
		return err
	}
	defer s.release()

	dev, started, recording := s.state()
	if dev == nil {
		return &NotConfiguredError{}
	}
	if !started {
		return &NotStartedError{}
	}
	if recording {
		if err := s.stopRecording(ctx, dev); err != nil {
			return err
		}
	}

	logger.Info(s, "Stopping capture session")
	if !dev.StopCapture(ctx) {
		logger.Errorf(s, "Stopping capture session failed")
		return &DeviceRefusedError{Op: "stop capture"}
	}
	s.stopPoller()

	s.mu.Lock()
	s.started = false
	s.mu.Unlock()
	s.publish()
	return nil
}

// ToggleRecording stops the recording in progress, or applies the recording parameters of
// cfg and starts an unlimited recording to path.
func (s *Session) ToggleRecording(ctx context.Context, cfg recdl.RecordingEncoderConfig, path string) error {
	if err := s.acquire("toggle recording"); err != nil {
		return err
	}
	defer s.release()

	dev, started, recording := s.state()
	if dev == nil {
		return &NotConfiguredError{}
	}
	if !started {
		return &NotStartedError{}
	}
	if recording {
		return s.stopRecording(ctx, dev)
	}

	dev.ApplyRecordingConfig(cfg)
	dev.SetMoviePath(path)
	if !dev.ToggleRecord(ctx) || !dev.IsRecording() {
		logger.Errorf(s, "Failed to start recording to %s", path)
		return &DeviceRefusedError{Op: "start recording"}
	}
	s.markRecording(path)
	logger.Infof(s, "Recording to %s", path)
	return nil
}

// StartRecording applies the recording parameters of cfg and records to path. A limit other
// than NoLimit arms a stop timer that ends the recording after limit; a zero limit stops it
// right away.
func (s *Session) StartRecording(ctx context.Context, cfg recdl.RecordingEncoderConfig, path string,
	limit time.Duration) error {
	if err := s.acquire("start recording"); err != nil {
		return err
	}
	defer s.release()

	dev, started, recording := s.state()
	if dev == nil {
		return &NotConfiguredError{}
	}
	if !started {
		return &NotStartedError{}
	}
	if recording {
		return &RecordingAlreadyError{}
	}

	dev.ApplyRecordingConfig(cfg)
	dev.SetMoviePath(path)
	if !dev.ToggleRecord(ctx) || !dev.IsRecording() {
		logger.Errorf(s, "Failed to start recording to %s", path)
		return &DeviceRefusedError{Op: "start recording"}
	}
	s.markRecording(path)
	if limit == NoLimit {
		logger.Infof(s, "Recording to %s", path)
		return nil
	}
	s.arm(max(limit, 0))
	logger.Infof(s, "Recording to %s (limit %s)", path, max(limit, 0))
	return nil
}

// StopRecording ends the recording in progress and invalidates its stop timer.
func (s *Session) StopRecording(ctx context.Context) error {
	if err := s.acquire("stop recording"); err != nil {
		return err
	}
	defer s.release()

	dev, _, recording := s.state()
	if dev == nil {
		return &NotConfiguredError{}
	}
	if !recording {
		return &NotRecordingError{}
	}
	return s.stopRecording(ctx, dev)
}

// Reset tears the session down and forgets the device. Device failures are logged, not
// returned.
func (s *Session) Reset(ctx context.Context) error {
	if err := s.acquire("reset"); err != nil {
		return err
	}
	defer s.release()

	s.disarm()
	dev, started, recording := s.state()
	if dev != nil && recording && !dev.ToggleRecord(ctx) {
		logger.Warning(s, "Device refused to stop recording on reset")
	}
	if dev != nil && started && !dev.StopCapture(ctx) {
		logger.Warning(s, "Device refused to stop capture on reset")
	}
	s.stopPoller()

	s.mu.Lock()
	s.dev = nil
	s.started = false
	s.recording = false
	s.path = ""
	s.since = time.Time{}
	s.id = uuid.Nil
	s.mu.Unlock()
	s.publish()
	logger.Info(s, "Session reset")
	return nil
}

func (s *Session) IsStarted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.started
}

func (s *Session) IsRecording() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recording
}

// ID identifies the current capture session, uuid.Nil when stopped.
func (s *Session) ID() uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}

// Status returns the last published status.
func (s *Session) Status() Status {
	return *s.status.Load()
}

func (s *Session) state() (recdl.CaptureDevice, bool, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dev, s.started, s.recording
}

func (s *Session) markRecording(path string) {
	s.mu.Lock()
	s.recording = true
	s.path = path
	s.since = time.Now()
	s.mu.Unlock()
	s.publish()
}

// stopRecording runs with the busy flag held.
func (s *Session) stopRecording(ctx context.Context, dev recdl.CaptureDevice) error {
	if !dev.ToggleRecord(ctx) || dev.IsRecording() {
		logger.Errorf(s, "Failed to stop recording")
		return &DeviceRefusedError{Op: "stop recording"}
	}
	s.disarm()

	s.mu.Lock()
	logger.Infof(s, "Recording to %s stopped after %s", s.path, time.Since(s.since).Round(time.Second))
	s.recording = false
	s.path = ""
	s.since = time.Time{}
	s.mu.Unlock()
	s.publish()
	return nil
}

func (s *Session) arm(limit time.Duration) {
	s.disarm()

	st := &stopTimer{limit: limit, fire: s.limitReached}
	timer := lifecycle.NewAsyncManager(st)

	s.mu.Lock()
	s.timerGen++
	st.gen = s.timerGen
	s.timer = timer
	s.deadline = time.Now().Add(limit)
	s.mu.Unlock()

	if err := timer.Start(func(st *stopTimer) error {
		st.clock = time.NewTimer(st.limit)
		return nil
	}); err != nil {
		logger.Errorf(s, "Failed to arm stop timer: %v", err)
		s.disarm()
		return
	}
	s.publish()
	logger.Debugf(s, "Stop timer armed for %s", limit)
}

// disarm invalidates the stop timer. Closing the manager happens once per timer.
func (s *Session) disarm() {
	s.mu.Lock()
	timer := s.timer
	s.timer = nil
	s.deadline = time.Time{}
	s.mu.Unlock()
	if timer != nil {
		timer.Close()
		s.publish()
		logger.Debug(s, "Stop timer invalidated")
	}
}

// limitReached stops the recording armed with timer generation gen. It waits while another
// operation is in flight and gives up once that timer was invalidated.
func (s *Session) limitReached(gen uint64) {
	for !s.busy.CompareAndSwap(false, true) {
		if !s.timerCurrent(gen) {
			return
		}
		time.Sleep(limitRetryInterval)
	}
	defer s.release()

	if err := s.expire(gen); err != nil {
		logger.Errorf(s, "Stop timer could not stop recording: %v", err)
	}
}

func (s *Session) timerCurrent(gen uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.timer != nil && s.timerGen == gen
}

func (s *Session) expire(gen uint64) error {
	dev, _, recording := s.state()
	if !s.timerCurrent(gen) || dev == nil || !recording {
		return nil
	}

	logger.Info(s, "Recording limit reached")
	final := s.snapshot()
	if err := s.stopRecording(context.Background(), dev); err != nil {
		return err
	}
	if s.onLimit != nil {
		s.onLimit(final)
	}
	return nil
}

func (s *Session) snapshot() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := Status{
		SessionID: s.id,
		Running:   s.started,
		Recording: s.recording,
		Path:      s.path,
		Since:     s.since,
	}
	if s.dev != nil {
		st.Running = s.dev.IsRunning()
		st.Recording = s.dev.IsRecording()
	}
	if !s.deadline.IsZero() {
		st.Limited = true
		st.Remaining = max(time.Until(s.deadline), 0)
	}
	return st
}

func (s *Session) publish() {
	st := s.snapshot()
	s.status.Store(&st)
}

func (s *Session) startPoller() {
	poller := lifecycle.NewFailSafeAsyncManager(&statusPoller{interval: s.pollInterval, publish: s.publish})
	_ = poller.Start(func(sp *statusPoller) error {
		sp.ticker = time.NewTicker(sp.interval)
		return nil
	})
	s.mu.Lock()
	s.poller = poller
	s.mu.Unlock()
	s.publish()
}

func (s *Session) stopPoller() {
	s.mu.Lock()
	poller := s.poller
	s.poller = nil
	s.mu.Unlock()
	if poller != nil {
		poller.Close()
	}
}
