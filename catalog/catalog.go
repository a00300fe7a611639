// Package catalog holds what the attached capture device supports: native geometry and
// field dominance per display mode, and the video styles compatible with a geometry.
//
// A Catalog is an immutable snapshot. Lookups on an empty catalog fail closed.
package catalog

import (
	"github.com/ugparu/recdl"
	"github.com/ugparu/recdl/utils/logger"
)

type Catalog struct {
	device *recdl.DeviceDescriptor
	modes  []recdl.DisplayModeInfo
	styles []recdl.VideoStyle
}

// New builds a catalog from already queried facts. A nil styles slice selects Styles.
// Invalid entries are dropped.
func New(device *recdl.DeviceDescriptor, infos []recdl.DisplayModeInfo, styles []recdl.VideoStyle) *Catalog {
	if styles == nil {
		styles = Styles
	}
	cat := &Catalog{
		device: device,
		modes:  make([]recdl.DisplayModeInfo, 0, len(infos)),
		styles: make([]recdl.VideoStyle, 0, len(styles)),
	}
	for _, info := range infos {
		if !info.Valid() {
			logger.Warningf(cat, "Skipped display mode %s with invalid geometry %dx%d", info.Mode, info.Width, info.Height)
			continue
		}
		cat.modes = append(cat.modes, info)
	}
	for _, vs := range styles {
		if !vs.Valid() {
			logger.Warningf(cat, "Skipped video style %q: visible %s exceeds encoded %s", vs.Name, vs.Visible, vs.Encoded)
			continue
		}
		cat.styles = append(cat.styles, vs)
	}
	return cat
}

// Empty returns a catalog with no device.
func Empty() *Catalog {
	return &Catalog{}
}

// Query rebuilds the catalog from the device. Without a device the result is empty.
// Reported modes missing from KnownModes or whose geometry query fails are skipped.
func Query(dev recdl.DeviceQuerier) *Catalog {
	if dev == nil {
		return Empty()
	}
	desc, ok := dev.CurrentDevice()
	if !ok {
		logger.Info("catalog", "No capture device attached")
		return Empty()
	}

	reported := dev.SupportedDisplayModes()
	infos := make([]recdl.DisplayModeInfo, 0, len(reported))
	seen := make(map[recdl.DisplayMode]struct{}, len(reported))
	for _, mode := range reported {
		if _, dup := seen[mode]; dup {
			continue
		}
		seen[mode] = struct{}{}

		name, known := KnownModes[mode]
		if !known {
			logger.Infof("catalog", "Skipped unsupported display mode %s", mode)
			continue
		}
		info, err := dev.NativeGeometry(mode)
		if err != nil {
			logger.Warningf("catalog", "Skipped display mode %s: %v", mode, err)
			continue
		}
		info.Mode = mode
		if info.Name == "" {
			info.Name = name
		}
		infos = append(infos, info)
	}

	cat := New(&desc, infos, nil)
	if cat.Empty() {
		logger.Warningf(cat, "Device %s reported no usable display mode", desc.ModelName)
	} else {
		logger.Debugf(cat, "Queried %d display modes from %s", len(cat.modes), desc.ModelName)
	}
	return cat
}

// Empty reports whether the catalog has no device or no usable display mode.
func (c *Catalog) Empty() bool {
	return c == nil || c.device == nil || len(c.modes) == 0
}

// Device returns the descriptor the catalog was queried from.
func (c *Catalog) Device() (recdl.DeviceDescriptor, bool) {
	if c == nil || c.device == nil {
		return recdl.DeviceDescriptor{}, false
	}
	return *c.device, true
}

// SettingInfoFor returns the catalog entry for the display mode.
func (c *Catalog) SettingInfoFor(mode recdl.DisplayMode) (recdl.DisplayModeInfo, bool) {
	if c.Empty() {
		return recdl.DisplayModeInfo{}, false
	}
	for _, info := range c.modes {
		if info.Mode == mode {
			return info, true
		}
	}
	return recdl.DisplayModeInfo{}, false
}

// Modes returns a copy of the catalog entries in device order.
func (c *Catalog) Modes() []recdl.DisplayModeInfo {
	if c.Empty() {
		return nil
	}
	return append([]recdl.DisplayModeInfo(nil), c.modes...)
}

// VideoStylesFor lists styles whose encoded size equals geometry, preferred first.
func (c *Catalog) VideoStylesFor(geometry recdl.Size) []recdl.VideoStyle {
	if c.Empty() {
		return nil
	}
	var list []recdl.VideoStyle
	for _, vs := range c.styles {
		if vs.Encoded == geometry {
			list = append(list, vs)
		}
	}
	return list
}

// Style looks up a video style by name.
func (c *Catalog) Style(name string) (recdl.VideoStyle, bool) {
	if c.Empty() {
		return recdl.VideoStyle{}, false
	}
	for _, vs := range c.styles {
		if vs.Name == name {
			return vs, true
		}
	}
	return recdl.VideoStyle{}, false
}

// Styles returns every style in the catalog.
func (c *Catalog) Styles() []recdl.VideoStyle {
	if c.Empty() {
		return nil
	}
	return append([]recdl.VideoStyle(nil), c.styles...)
}

func (c *Catalog) String() string {
	return "CATALOG"
}
