package catalog

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/ugparu/recdl"
	"github.com/ugparu/recdl/device"
)

func TestMain(m *testing.M) {
	logrus.SetLevel(logrus.FatalLevel)
	m.Run()
}

func TestQuerySkipsUnsupportedModes(t *testing.T) {
	t.Parallel()

	unknown := recdl.DisplayMode(recdl.MakeFourCC("iunk"))
	// Known to the engine but not describable by the device.
	undescribed := recdl.Mode4K2160p25
	sim := device.New(device.WithUnknownModes(unknown, undescribed))

	cat := Query(sim)
	require.False(t, cat.Empty())
	require.Len(t, cat.Modes(), len(device.DefaultModes()))

	_, ok := cat.SettingInfoFor(unknown)
	require.False(t, ok)
	_, ok = cat.SettingInfoFor(undescribed)
	require.False(t, ok)

	info, ok := cat.SettingInfoFor(recdl.ModeNTSC)
	require.True(t, ok)
	require.Equal(t, "NTSC", info.Name)
	require.Equal(t, recdl.LowerFieldFirst, info.Dominance)

	desc, ok := cat.Device()
	require.True(t, ok)
	require.Equal(t, "DeckLink Mini Recorder", desc.ModelName)
}

func TestQueryWithoutDevice(t *testing.T) {
	t.Parallel()

	for name, cat := range map[string]*Catalog{
		"detached": Query(device.Detached()),
		"nil":      Query(nil),
		"empty":    Empty(),
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			require.True(t, cat.Empty())
			_, ok := cat.SettingInfoFor(recdl.ModeNTSC)
			require.False(t, ok)
			require.Empty(t, cat.VideoStylesFor(recdl.Size{Width: 720, Height: 480}))
			_, ok = cat.Style("SD_720_480_16_9")
			require.False(t, ok)
			_, ok = cat.Device()
			require.False(t, ok)
		})
	}
}

func TestNewDropsInvalidEntries(t *testing.T) {
	t.Parallel()

	desc := recdl.NewDeviceDescriptor("Test", "Test")
	cat := New(&desc,
		[]recdl.DisplayModeInfo{
			{Mode: recdl.ModeNTSC, Width: 720, Height: 480, FrameDuration: 1001, TimeScale: 30000},
			{Mode: recdl.ModePAL, Width: 0, Height: 576, FrameDuration: 1000, TimeScale: 25000},
			{Mode: recdl.ModeHD720p60, Width: 1280, Height: 720, FrameDuration: 1000, TimeScale: 0},
		},
		[]recdl.VideoStyle{
			{Name: "ok", Encoded: recdl.Size{Width: 720, Height: 480}, Visible: recdl.Size{Width: 704, Height: 480}},
			{Name: "inverted", Encoded: recdl.Size{Width: 704, Height: 480}, Visible: recdl.Size{Width: 720, Height: 480}},
		})

	require.Len(t, cat.Modes(), 1)
	require.Len(t, cat.Styles(), 1)
}

func TestVideoStylesForPreferenceOrder(t *testing.T) {
	t.Parallel()

	cat := Query(device.New())

	tests := []struct {
		name     string
		geometry recdl.Size
		first    string
		count    int
	}{
		{name: "ntsc_486", geometry: recdl.Size{Width: 720, Height: 486}, first: "SD_720_486_16_9", count: 3},
		{name: "ntsc_480", geometry: recdl.Size{Width: 720, Height: 480}, first: "SD_720_480_16_9", count: 2},
		{name: "pal", geometry: recdl.Size{Width: 720, Height: 576}, first: "SD_720_576_16_9", count: 3},
		{name: "hd720", geometry: recdl.Size{Width: 1280, Height: 720}, first: "HD_1280_720_Full", count: 2},
		{name: "hd1080", geometry: recdl.Size{Width: 1920, Height: 1080}, first: "HD_1920_1080_Full", count: 2},
		{name: "none", geometry: recdl.Size{Width: 100, Height: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			list := cat.VideoStylesFor(tt.geometry)
			require.Len(t, list, tt.count)
			for _, vs := range list {
				require.Equal(t, tt.geometry, vs.Encoded)
			}
			if tt.count > 0 {
				require.Equal(t, tt.first, list[0].Name)
			}
		})
	}
}

func TestQueryReplacesWholesale(t *testing.T) {
	t.Parallel()

	first := Query(device.New())
	second := Query(device.New(device.WithModes(device.DefaultModes()[0])))

	require.Len(t, first.Modes(), len(device.DefaultModes()))
	require.Len(t, second.Modes(), 1)
	_, ok := second.SettingInfoFor(recdl.ModePAL)
	require.False(t, ok)
}
