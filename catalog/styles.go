package catalog

import "github.com/ugparu/recdl"

func style(name string, ew, eh, vw, vh uint) recdl.VideoStyle {
	return recdl.VideoStyle{
		Name:    name,
		Encoded: recdl.Size{Width: ew, Height: eh},
		Visible: recdl.Size{Width: vw, Height: vh},
	}
}

// Styles is the static video style table. For each encoded geometry the first matching
// entry is the preferred default.
var Styles = []recdl.VideoStyle{
	style("SD_720_480_16_9", 720, 480, 704, 480),
	style("SD_720_480_4_3", 720, 480, 704, 480),
	style("SD_720_486_16_9", 720, 486, 704, 480),
	style("SD_720_486_4_3", 720, 486, 704, 480),
	style("SD_525_13_5", 720, 486, 711, 486),
	style("SD_640_480_Full", 640, 480, 640, 480),
	style("SD_720_576_16_9", 720, 576, 704, 576),
	style("SD_720_576_4_3", 720, 576, 704, 576),
	style("SD_625_13_5", 720, 576, 702, 576),
	style("SD_768_576_Full", 768, 576, 768, 576),
	style("HD_1280_720_Full", 1280, 720, 1280, 720),
	style("HD_1280_720_16_9", 1280, 720, 1248, 702),
	style("HD_1920_1080_Full", 1920, 1080, 1920, 1080),
	style("HD_1920_1080_16_9", 1920, 1080, 1888, 1062),
	style("HD_1440_1080_HDCAM", 1440, 1080, 1440, 1080),
	style("UHD_3840_2160_Full", 3840, 2160, 3840, 2160),
}

// KnownModes names every display mode the engine recognises. Modes a device reports outside
// this table are skipped when the catalog is queried.
var KnownModes = map[recdl.DisplayMode]string{
	recdl.ModeNTSC:        "NTSC",
	recdl.ModeNTSC2398:    "NTSC 23.98",
	recdl.ModeNTSCp:       "NTSC Progressive",
	recdl.ModePAL:         "PAL",
	recdl.ModePALp:        "PAL Progressive",
	recdl.ModeHD1080p2398: "HD 1080p 23.98",
	recdl.ModeHD1080p24:   "HD 1080p 24",
	recdl.ModeHD1080p25:   "HD 1080p 25",
	recdl.ModeHD1080p2997: "HD 1080p 29.97",
	recdl.ModeHD1080p30:   "HD 1080p 30",
	recdl.ModeHD1080i50:   "HD 1080i 50",
	recdl.ModeHD1080i5994: "HD 1080i 59.94",
	recdl.ModeHD1080i6000: "HD 1080i 60",
	recdl.ModeHD720p50:    "HD 720p 50",
	recdl.ModeHD720p5994:  "HD 720p 59.94",
	recdl.ModeHD720p60:    "HD 720p 60",
	recdl.Mode4K2160p2398: "4K 2160p 23.98",
	recdl.Mode4K2160p24:   "4K 2160p 24",
	recdl.Mode4K2160p25:   "4K 2160p 25",
	recdl.Mode4K2160p2997: "4K 2160p 29.97",
	recdl.Mode4K2160p30:   "4K 2160p 30",
}
