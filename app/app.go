// Package app wires the settings store, the device catalog, the configuration engine and the
// capture session together. It is what the HTTP control surface and the command line drive.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ugparu/recdl"
	"github.com/ugparu/recdl/catalog"
	"github.com/ugparu/recdl/recording"
	"github.com/ugparu/recdl/resolver"
	"github.com/ugparu/recdl/session"
	"github.com/ugparu/recdl/settings"
	"github.com/ugparu/recdl/utils/logger"
)

const restartSettle = 100 * time.Millisecond

// App owns the mutable state around the pure configuration engine.
type App struct {
	store   settings.Store
	dev     recdl.CaptureDevice
	session *session.Session

	mu       sync.RWMutex
	snap     settings.Snapshot
	cat      *catalog.Catalog
	res      *resolver.Resolver
	builder  *recording.Builder
	cfg      recdl.RecordingEncoderConfig
	evalQuit bool

	quit     chan struct{}
	quitOnce sync.Once
}

// New loads the settings from store and queries dev. opts are passed to the session.
func New(store settings.Store, dev recdl.CaptureDevice, opts ...session.Option) (*App, error) {
	snap, err := store.Load()
	if err != nil {
		return nil, err
	}
	a := &App{
		store: store,
		dev:   dev,
		snap:  snap,
		quit:  make(chan struct{}),
	}
	a.session = session.New(append(opts, session.OnLimitReached(a.limitReached))...)
	a.Refresh()
	return a, nil
}

func (a *App) String() string {
	return "APP"
}

// Refresh re-queries the device and replaces the catalog wholesale.
func (a *App) Refresh() {
	cat := catalog.Query(a.dev)
	res := resolver.New(cat)

	a.mu.Lock()
	a.cat = cat
	a.res = res
	a.builder = recording.NewBuilder(res)
	a.mu.Unlock()

	if cat.Empty() {
		logger.Warning(a, "Capture device unavailable, settings checks disabled")
		return
	}
	logger.Infof(a, "Device catalog refreshed: %d display modes", len(cat.Modes()))
}

// Snapshot returns the current settings.
func (a *App) Snapshot() settings.Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snap
}

// Catalog returns the current device catalog.
func (a *App) Catalog() *catalog.Catalog {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.cat
}

// Config returns the last configuration applied to the device.
func (a *App) Config() recdl.RecordingEncoderConfig {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.cfg
}

// Session returns the capture session.
func (a *App) Session() *session.Session {
	return a.session
}

// Resolve builds the full configuration for the current settings without applying it.
func (a *App) Resolve() (recdl.RecordingEncoderConfig, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.builder.Build(a.cfg, a.snap)
}

// Compatibility checks the current settings against the device.
func (a *App) Compatibility() resolver.Compatibility {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.res.VerifyAll(a.snap.DisplayMode, a.snap.VideoStyle, a.snap.Offset(), a.snap.VideoFieldDetail)
}

// ResetStyle switches to the native field detail and preferred video style of the current
// display mode, clamping the current clean aperture offset into the new style.
func (a *App) ResetStyle() (resolver.Defaults, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cat.Empty() {
		return resolver.Defaults{}, &NoDeviceError{}
	}
	d, ok := a.res.ResetToDeviceDefaultFrom(a.snap.DisplayMode, a.snap.Offset())
	if !ok {
		return resolver.Defaults{}, &UnresolvableError{What: fmt.Sprintf("display mode %s", a.snap.DisplayMode)}
	}
	return d, a.persist(a.snap.WithDefaults(d))
}

// SetVideoStyle selects a video style by name and re-clamps the clean aperture offset.
func (a *App) SetVideoStyle(name string) (recdl.ClapOffset, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cat.Empty() {
		return recdl.ClapOffset{}, &NoDeviceError{}
	}
	style, ok := a.cat.Style(name)
	if !ok {
		return recdl.ClapOffset{}, &UnresolvableError{What: fmt.Sprintf("video style %q", name)}
	}
	offset := a.res.DefaultClapFor(style, a.snap.Offset())
	return offset, a.persist(a.snap.WithVideoStyle(style.Name, offset))
}

// SetDisplayMode selects a display mode together with its native style.
func (a *App) SetDisplayMode(mode recdl.DisplayMode) (resolver.Defaults, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cat.Empty() {
		return resolver.Defaults{}, &NoDeviceError{}
	}
	d, ok := a.res.ResetToDeviceDefaultFrom(mode, a.snap.Offset())
	if !ok {
		return resolver.Defaults{}, &UnresolvableError{What: fmt.Sprintf("display mode %s", mode)}
	}
	return d, a.persist(a.snap.WithDefaults(d))
}

// SetAutoQuit sets whether a recording ended by its limit quits the application.
func (a *App) SetAutoQuit(autoQuit bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	snap := a.snap
	snap.AutoQuit = autoQuit
	return a.persist(snap)
}

// Update replaces the settings wholesale.
func (a *App) Update(snap settings.Snapshot) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.persist(snap)
}

// persist runs with mu held.
func (a *App) persist(snap settings.Snapshot) error {
	if err := a.store.Save(snap); err != nil {
		logger.Errorf(a, "Failed to save settings: %v", err)
		return err
	}
	a.snap = snap
	return nil
}

// StartSession applies the session parameters and starts capturing.
func (a *App) StartSession(ctx context.Context) error {
	if a.Catalog().Empty() {
		return &NoDeviceError{}
	}
	if !a.session.IsStarted() {
		if err := a.session.Configure(a.dev); err != nil {
			return err
		}
	}

	a.mu.RLock()
	cfg, ok := a.builder.ApplySession(a.cfg, a.snap)
	mode, style := a.snap.DisplayMode, a.snap.VideoStyle
	a.mu.RUnlock()
	if !ok {
		return &UnresolvableError{What: fmt.Sprintf("display mode %s with video style %q", mode, style)}
	}

	if err := a.session.Start(ctx, cfg); err != nil {
		return err
	}
	a.mu.Lock()
	a.cfg = cfg
	a.mu.Unlock()
	return nil
}

// StopSession stops capturing.
func (a *App) StopSession(ctx context.Context) error {
	return a.session.Stop(ctx)
}

// RestartSession stops a running session, lets the device settle and starts again.
func (a *App) RestartSession(ctx context.Context) error {
	var notStarted *session.NotStartedError
	var notConfigured *session.NotConfiguredError
	if err := a.session.Stop(ctx); err != nil && !errors.As(err, &notStarted) && !errors.As(err, &notConfigured) {
		return err
	}

	timer := time.NewTimer(restartSettle)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}
	return a.StartSession(ctx)
}

// StartRecording records to path, or to a generated path in the movie folder when path is
// empty. A positive seconds arms the stop timer, bounded by the maximum duration setting.
// It returns the movie path.
func (a *App) StartRecording(ctx context.Context, seconds int, path string) (string, error) {
	snap := a.Snapshot()
	if path == "" {
		var err error
		if path, err = session.MoviePath(snap.MovieFolder, snap.Prefix, time.Now()); err != nil {
			return "", err
		}
	}

	a.mu.RLock()
	cfg := a.builder.ApplyRecording(a.cfg, snap)
	a.mu.RUnlock()

	limit := session.NoLimit
	if seconds > 0 {
		limit = session.StopLimit(seconds, snap.MaxDuration)
	}
	if err := a.session.StartRecording(ctx, cfg, path, limit); err != nil {
		return "", err
	}

	a.mu.Lock()
	a.cfg = cfg
	a.evalQuit = seconds > 0
	a.mu.Unlock()
	return path, nil
}

// ToggleRecording stops the recording in progress, or starts an unlimited recording to a
// fresh path in the movie folder. It returns the movie path, empty when it stopped.
func (a *App) ToggleRecording(ctx context.Context) (string, error) {
	if a.session.IsRecording() {
		return "", a.session.StopRecording(ctx)
	}

	snap := a.Snapshot()
	path, err := session.MoviePath(snap.MovieFolder, snap.Prefix, time.Now())
	if err != nil {
		return "", err
	}
	a.mu.RLock()
	cfg := a.builder.ApplyRecording(a.cfg, snap)
	a.mu.RUnlock()

	if err = a.session.ToggleRecording(ctx, cfg, path); err != nil {
		return "", err
	}
	if !a.session.IsRecording() {
		return "", nil
	}
	a.mu.Lock()
	a.cfg = cfg
	a.evalQuit = false
	a.mu.Unlock()
	return path, nil
}

// StopRecording ends the recording in progress.
func (a *App) StopRecording(ctx context.Context) error {
	return a.session.StopRecording(ctx)
}

// Quit is closed when a recording ended by its limit should quit the application.
func (a *App) Quit() <-chan struct{} {
	return a.quit
}

func (a *App) limitReached(st session.Status) {
	a.mu.RLock()
	autoQuit := a.evalQuit && a.snap.AutoQuit
	a.mu.RUnlock()
	logger.Infof(a, "Recording %s reached its limit", st.Path)
	if autoQuit {
		logger.Info(a, "Auto quit triggered")
		a.quitOnce.Do(func() { close(a.quit) })
	}
}

// Close tears the session down.
func (a *App) Close(ctx context.Context) error {
	return a.session.Reset(ctx)
}
