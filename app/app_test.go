package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/ugparu/recdl"
	"github.com/ugparu/recdl/device"
	"github.com/ugparu/recdl/resolver"
	"github.com/ugparu/recdl/session"
	"github.com/ugparu/recdl/settings"
)

func TestMain(m *testing.M) {
	logrus.SetLevel(logrus.FatalLevel)
	os.Exit(m.Run())
}

func newApp(t *testing.T, snap settings.Snapshot) (*App, *device.Simulator, *settings.MemoryStore) {
	t.Helper()
	sim := device.New()
	st := settings.NewMemoryStore(snap)
	a, err := New(st, sim, session.WithPollInterval(10*time.Millisecond))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close(context.Background()) })
	return a, sim, st
}

func TestCompatibilityOfDefaults(t *testing.T) {
	t.Parallel()

	a, _, _ := newApp(t, settings.Defaults())
	require.Equal(t, resolver.Compatibility{Style: false, Clap: true, Field: true}, a.Compatibility())
}

func TestResetStyle(t *testing.T) {
	t.Parallel()

	snap := settings.Defaults()
	snap.ClapOffsetH = -20
	snap.ClapOffsetV = 2
	a, _, st := newApp(t, snap)

	d, err := a.ResetStyle()
	require.NoError(t, err)
	require.Equal(t, "SD_720_486_16_9", d.VideoStyle.Name)
	require.Equal(t, recdl.BottomFieldFirst, d.FieldDetail)
	require.Equal(t, recdl.ClapOffset{Horizontal: -8, Vertical: 2}, d.Offset)

	require.True(t, a.Compatibility().OK())
	require.Equal(t, 1, st.Saves())
	saved, err := st.Load()
	require.NoError(t, err)
	require.Equal(t, "SD_720_486_16_9", saved.VideoStyle)
	require.Equal(t, recdl.ClapOffset{Horizontal: -8, Vertical: 2}, saved.Offset())
}

func TestSetVideoStyleReclamps(t *testing.T) {
	t.Parallel()

	snap := settings.Defaults()
	snap.ClapOffsetH = 100
	snap.ClapOffsetV = -100
	a, _, _ := newApp(t, snap)

	offset, err := a.SetVideoStyle("HD_1280_720_16_9")
	require.NoError(t, err)
	require.Equal(t, recdl.ClapOffset{Horizontal: 16, Vertical: -9}, offset)
	require.Equal(t, "HD_1280_720_16_9", a.Snapshot().VideoStyle)

	var unresolvable *UnresolvableError
	_, err = a.SetVideoStyle("SD_1_1")
	require.ErrorAs(t, err, &unresolvable)
	require.Equal(t, "HD_1280_720_16_9", a.Snapshot().VideoStyle)
}

func TestSetDisplayMode(t *testing.T) {
	t.Parallel()

	a, _, _ := newApp(t, settings.Defaults())

	d, err := a.SetDisplayMode(recdl.ModePAL)
	require.NoError(t, err)
	require.Equal(t, "SD_720_576_16_9", d.VideoStyle.Name)
	require.Equal(t, recdl.TopFieldFirst, d.FieldDetail)
	snap := a.Snapshot()
	require.Equal(t, recdl.ModePAL, snap.DisplayMode)
	require.Equal(t, recdl.TopFieldFirst, snap.VideoFieldDetail)

	var unresolvable *UnresolvableError
	_, err = a.SetDisplayMode(recdl.Mode4K2160p30)
	require.ErrorAs(t, err, &unresolvable)
	require.Equal(t, recdl.ModePAL, a.Snapshot().DisplayMode)
}

func TestDetachedDeviceFailsClosed(t *testing.T) {
	t.Parallel()

	a, err := New(settings.NewMemoryStore(settings.Defaults()), device.Detached())
	require.NoError(t, err)

	var noDevice *NoDeviceError
	_, err = a.ResetStyle()
	require.ErrorAs(t, err, &noDevice)
	_, err = a.SetVideoStyle("SD_720_486_16_9")
	require.ErrorAs(t, err, &noDevice)
	require.ErrorAs(t, a.StartSession(context.Background()), &noDevice)
	require.Equal(t, resolver.Compatibility{}, a.Compatibility())
	require.Equal(t, "No device", a.Describe().Device)
}

func TestSessionAndRecording(t *testing.T) {
	t.Parallel()

	a, sim, _ := newApp(t, settings.Defaults())
	_, err := a.ResetStyle()
	require.NoError(t, err)

	require.NoError(t, a.StartSession(context.Background()))
	require.True(t, sim.IsRunning())
	require.Equal(t, "SD_720_486_16_9", sim.SessionConfig().VideoStyle)

	var started *session.StartedAlreadyError
	require.ErrorAs(t, a.StartSession(context.Background()), &started)

	path := filepath.Join(t.TempDir(), "take.mov")
	got, err := a.StartRecording(context.Background(), 0, path)
	require.NoError(t, err)
	require.Equal(t, path, got)

	rc := sim.RecordingConfig()
	require.Equal(t, recdl.ProRes422, rc.VideoCodec)
	require.Equal(t, recdl.AAC, rc.AudioCodec)
	require.Equal(t, uint(256_000), rc.AudioBitrate)
	require.Equal(t, recdl.SpatialFirstLineLate, rc.FieldOrder)
	require.Equal(t, "Recording...", a.Status().Line)

	d := a.Describe()
	require.Equal(t, "ProRes 422 (encoder 1)", d.Video)
	require.Equal(t, "AAC-LC (object type 2) 256000 bps", d.Audio)

	require.NoError(t, a.StopRecording(context.Background()))
	require.NoError(t, a.RestartSession(context.Background()))
	require.True(t, sim.IsRunning())
	require.NoError(t, a.StopSession(context.Background()))
	require.False(t, sim.IsRunning())
}

func TestStartSessionUnresolvable(t *testing.T) {
	t.Parallel()

	snap := settings.Defaults()
	snap.VideoStyle = "SD_1_1"
	a, sim, _ := newApp(t, snap)

	var unresolvable *UnresolvableError
	require.ErrorAs(t, a.StartSession(context.Background()), &unresolvable)
	require.False(t, sim.IsRunning())
}

func TestStartRecordingGeneratesPath(t *testing.T) {
	t.Parallel()

	snap := settings.Defaults()
	snap.MovieFolder = t.TempDir()
	snap.Prefix = "cam-"
	a, sim, _ := newApp(t, snap)
	require.NoError(t, a.StartSession(context.Background()))

	path, err := a.StartRecording(context.Background(), 0, "")
	require.NoError(t, err)
	require.Equal(t, snap.MovieFolder, filepath.Dir(path))
	require.True(t, strings.HasPrefix(filepath.Base(path), "cam-"))
	require.True(t, strings.HasSuffix(path, ".mov"))
	require.Equal(t, []string{path}, sim.Recordings())
}

func TestToggleRecordingUsesFreshPath(t *testing.T) {
	t.Parallel()

	snap := settings.Defaults()
	snap.MovieFolder = t.TempDir()
	a, sim, _ := newApp(t, snap)
	require.NoError(t, a.StartSession(context.Background()))

	explicit := filepath.Join(t.TempDir(), "explicit.mov")
	_, err := a.StartRecording(context.Background(), 0, explicit)
	require.NoError(t, err)
	require.NoError(t, a.StopRecording(context.Background()))

	path, err := a.ToggleRecording(context.Background())
	require.NoError(t, err)
	require.NotEqual(t, explicit, path)
	require.Equal(t, snap.MovieFolder, filepath.Dir(path))
	require.Equal(t, []string{explicit, path}, sim.Recordings())
	require.Equal(t, path, a.Status().Path)
	require.Equal(t, recdl.AAC, sim.RecordingConfig().AudioCodec)
	require.False(t, a.Status().Limited)

	path, err = a.ToggleRecording(context.Background())
	require.NoError(t, err)
	require.Empty(t, path)
	require.False(t, sim.IsRecording())
}

func TestAutoQuitAfterLimit(t *testing.T) {
	t.Parallel()

	snap := settings.Defaults()
	snap.AutoQuit = true
	a, sim, _ := newApp(t, snap)
	require.NoError(t, a.StartSession(context.Background()))

	_, err := a.StartRecording(context.Background(), 1, filepath.Join(t.TempDir(), "short.mov"))
	require.NoError(t, err)
	require.True(t, a.Status().AutoQuit)

	select {
	case <-a.Quit():
	case <-time.After(5 * time.Second):
		require.FailNow(t, "auto quit not triggered")
	}
	require.False(t, sim.IsRecording())
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	a, _, _ := newApp(t, settings.Defaults())
	d := a.Describe()
	require.Contains(t, d.Device, "Simulated DeckLink")
	require.Contains(t, d.DisplayMode, "NTSC")
	require.Contains(t, d.VideoStyle, "SD_720_480_16_9 (720:480 clap 704:480")
	require.Empty(t, d.Config)
	require.Empty(t, d.Video)
	require.Empty(t, d.Audio)
}
