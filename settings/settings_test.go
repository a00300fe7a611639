package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/ugparu/recdl"
	"github.com/ugparu/recdl/resolver"
)

func TestMain(m *testing.M) {
	logrus.SetLevel(logrus.FatalLevel)
	os.Exit(m.Run())
}

func TestFileStoreMissingFileYieldsDefaults(t *testing.T) {
	t.Parallel()

	st := NewFileStore(filepath.Join(t.TempDir(), "settings.yaml"))
	snap, err := st.Load()
	require.NoError(t, err)
	require.Equal(t, Defaults(), snap)
}

func TestFileStoreRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	st := NewFileStore(path)

	want := Defaults()
	want.DisplayMode = recdl.ModePAL
	want.PixelFormat = recdl.Format8BitARGB
	want.VideoStyle = "SD_720_576_16_9"
	want.ClapOffsetH = -8
	want.ClapOffsetV = 2
	want.TimeCodeSource = recdl.TimecodeRP188
	want.TimeCodeFormat = 64
	want.VideoConnection = recdl.VideoConnectionHDMI
	want.AudioConnection = recdl.AudioConnectionEmbedded
	want.VideoEncoder = 11
	want.AudioChannel = 8
	want.AudioLayout = recdl.LayoutSevenOne
	want.AudioReverse34 = true
	want.MovieFolder = "/tmp/movies"
	require.NoError(t, st.Save(want))

	got, err := NewFileStore(path).Load()
	require.NoError(t, err)
	require.Equal(t, want, got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestFileStorePartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("displayMode: \"pal \"\nvideoBitRate: 8000\n"), 0o600))

	snap, err := NewFileStore(path).Load()
	require.NoError(t, err)
	require.Equal(t, recdl.ModePAL, snap.DisplayMode)
	require.Equal(t, 8000, snap.VideoBitRate)
	require.Equal(t, Defaults().AudioBitRate, snap.AudioBitRate)
	require.Equal(t, Defaults().Prefix, snap.Prefix)
}

func TestFileStoreCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("videoBitRate: [1, 2\n"), 0o600))

	snap, err := NewFileStore(path).Load()
	require.Error(t, err)
	require.Equal(t, Defaults(), snap)
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	st := NewMemoryStore(Defaults())
	snap, err := st.Load()
	require.NoError(t, err)
	require.Equal(t, Defaults(), snap)

	snap.Prefix = "cam-"
	require.NoError(t, st.Save(snap))
	require.Equal(t, 1, st.Saves())

	got, err := st.Load()
	require.NoError(t, err)
	require.Equal(t, "cam-", got.Prefix)
}

func TestSnapshotHelpers(t *testing.T) {
	t.Parallel()

	base := Defaults()
	moved := base.WithVideoStyle("HD_1280_720_16_9", recdl.ClapOffset{Horizontal: 4, Vertical: -3})
	require.Equal(t, "HD_1280_720_16_9", moved.VideoStyle)
	require.Equal(t, recdl.ClapOffset{Horizontal: 4, Vertical: -3}, moved.Offset())
	require.Equal(t, "SD_720_480_16_9", base.VideoStyle)

	native := base.WithDefaults(resolver.Defaults{
		DisplayMode: recdl.ModeHD720p60,
		FieldDetail: recdl.SingleField,
		VideoStyle:  recdl.VideoStyle{Name: "HD_1280_720_Full"},
	})
	require.Equal(t, recdl.ModeHD720p60, native.DisplayMode)
	require.Equal(t, recdl.SingleField, native.VideoFieldDetail)
	require.Equal(t, "HD_1280_720_Full", native.VideoStyle)
	require.Equal(t, recdl.ClapOffset{}, native.Offset())
}
