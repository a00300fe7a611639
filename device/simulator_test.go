package device

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/ugparu/recdl"
)

func TestMain(m *testing.M) {
	logrus.SetLevel(logrus.FatalLevel)
	m.Run()
}

func TestSimulatorReportsModes(t *testing.T) {
	t.Parallel()

	sim := New(WithUnknownModes(recdl.DisplayMode(recdl.MakeFourCC("xxxx"))))
	modes := sim.SupportedDisplayModes()
	require.Len(t, modes, len(DefaultModes())+1)

	info, err := sim.NativeGeometry(recdl.ModePAL)
	require.NoError(t, err)
	require.Equal(t, recdl.Size{Width: 720, Height: 576}, info.Size())

	_, err = sim.NativeGeometry(recdl.DisplayMode(recdl.MakeFourCC("xxxx")))
	targetError := &GeometryError{}
	require.ErrorAs(t, err, &targetError)
}

func TestDetachedSimulator(t *testing.T) {
	t.Parallel()

	sim := Detached()
	_, ok := sim.CurrentDevice()
	require.False(t, ok)
	require.Empty(t, sim.SupportedDisplayModes())
	require.False(t, sim.StartCapture(context.Background()))
}

func TestSimulatorRecordToggle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sim := New()
	require.False(t, sim.ToggleRecord(ctx), "toggle before start")
	require.True(t, sim.StartCapture(ctx))
	require.False(t, sim.StartCapture(ctx), "double start")
	require.False(t, sim.ToggleRecord(ctx), "no movie path")

	sim.SetMoviePath("/tmp/a.mov")
	require.True(t, sim.ToggleRecord(ctx))
	require.True(t, sim.IsRecording())
	require.True(t, sim.ToggleRecord(ctx))
	require.False(t, sim.IsRecording())
	require.Equal(t, []string{"/tmp/a.mov"}, sim.Recordings())

	require.True(t, sim.StopCapture(ctx))
	require.False(t, sim.IsRunning())
}

func TestSimulatorLatencyHonorsContext(t *testing.T) {
	t.Parallel()

	sim := New(WithLatency(time.Second))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	require.False(t, sim.StartCapture(ctx))
	require.False(t, sim.IsRunning())
}
