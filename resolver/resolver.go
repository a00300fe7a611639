// Package resolver checks a requested display mode, video style, clean aperture offset and
// field detail against the device catalog, and computes legal defaults.
//
// Every operation fails closed: an empty catalog or an unknown identifier yields false or
// a missing result, never an error.
package resolver

import (
	"github.com/ugparu/recdl"
	"github.com/ugparu/recdl/catalog"
)

// Compatibility is the per-axis result of VerifyAll.
type Compatibility struct {
	Style bool `json:"style"`
	Clap  bool `json:"clap"`
	Field bool `json:"field"`
}

// OK reports whether every axis is compatible.
func (c Compatibility) OK() bool {
	return c.Style && c.Clap && c.Field
}

// Defaults is the device-native configuration for one display mode.
type Defaults struct {
	DisplayMode recdl.DisplayMode `json:"displayMode"`
	FieldDetail recdl.FieldDetail `json:"fieldDetail"`
	VideoStyle  recdl.VideoStyle  `json:"videoStyle"`
	Offset      recdl.ClapOffset  `json:"offset"`
}

type Resolver struct {
	cat *catalog.Catalog
}

// New returns a resolver over cat. A nil catalog behaves as an empty one.
func New(cat *catalog.Catalog) *Resolver {
	if cat == nil {
		cat = catalog.Empty()
	}
	return &Resolver{cat: cat}
}

// Catalog returns the catalog the resolver reads.
func (r *Resolver) Catalog() *catalog.Catalog {
	return r.cat
}

// VerifyVideoStyle reports whether the style's encoded size equals the native geometry of
// the mode. Exact equality.
func (r *Resolver) VerifyVideoStyle(style recdl.VideoStyle, mode recdl.DisplayMode) bool {
	info, ok := r.cat.SettingInfoFor(mode)
	if !ok {
		return false
	}
	return style.Encoded == info.Size()
}

// VerifyFieldDominance reports whether detail implies the native field dominance of mode.
func (r *Resolver) VerifyFieldDominance(detail recdl.FieldDetail, mode recdl.DisplayMode) bool {
	info, ok := r.cat.SettingInfoFor(mode)
	if !ok || !detail.Valid() {
		return false
	}
	return detail.Dominance() == info.Dominance
}

// VerifyClapOffset reports whether both axes of offset are within the style's clap range.
func (r *Resolver) VerifyClapOffset(offset recdl.ClapOffset, style recdl.VideoStyle) bool {
	h, v := style.ClapRange()
	return abs(offset.Horizontal) <= h && abs(offset.Vertical) <= v
}

// VerifyAll runs the three checks. An unknown mode or style name reports all false.
func (r *Resolver) VerifyAll(mode recdl.DisplayMode, styleName string, offset recdl.ClapOffset,
	detail recdl.FieldDetail) Compatibility {
	if _, ok := r.cat.SettingInfoFor(mode); !ok {
		return Compatibility{}
	}
	style, ok := r.cat.Style(styleName)
	if !ok {
		return Compatibility{}
	}
	return Compatibility{
		Style: r.VerifyVideoStyle(style, mode),
		Clap:  r.VerifyClapOffset(offset, style),
		Field: r.VerifyFieldDominance(detail, mode),
	}
}

// DefaultClapFor clamps each axis of current into the style's clap range, keeping as much
// of the prior offset as is legal.
func (r *Resolver) DefaultClapFor(style recdl.VideoStyle, current recdl.ClapOffset) recdl.ClapOffset {
	h, v := style.ClapRange()
	return recdl.ClapOffset{
		Horizontal: clamp(current.Horizontal, -h, h),
		Vertical:   clamp(current.Vertical, -v, v),
	}
}

// ResetToDeviceDefault returns the native defaults of mode with a centered clean aperture.
func (r *Resolver) ResetToDeviceDefault(mode recdl.DisplayMode) (Defaults, bool) {
	return r.ResetToDeviceDefaultFrom(mode, recdl.ClapOffset{})
}

// ResetToDeviceDefaultFrom returns the native field detail and preferred video style of mode,
// with current clamped into that style's clap range. It fails when mode is unknown, its
// field dominance has no matching field detail, or no style matches its geometry.
func (r *Resolver) ResetToDeviceDefaultFrom(mode recdl.DisplayMode, current recdl.ClapOffset) (Defaults, bool) {
	info, ok := r.cat.SettingInfoFor(mode)
	if !ok {
		return Defaults{}, false
	}
	detail, ok := recdl.FieldDetailFor(info.Dominance)
	if !ok {
		return Defaults{}, false
	}
	styles := r.cat.VideoStylesFor(info.Size())
	if len(styles) == 0 {
		return Defaults{}, false
	}
	return Defaults{
		DisplayMode: mode,
		FieldDetail: detail,
		VideoStyle:  styles[0],
		Offset:      r.DefaultClapFor(styles[0], current),
	}, true
}

// HDMIAudioLayoutReady reports whether the HDMI discrete layout and channel 3/4 reversal
// may be applied: HDMI video, audio embedded in it, and exactly 8 channels.
func HDMIAudioLayoutReady(video recdl.VideoConnection, audio recdl.AudioConnection, channels uint32) bool {
	return video == recdl.VideoConnectionHDMI && audio == recdl.AudioConnectionEmbedded && channels == hdmiChannels
}

const hdmiChannels = 8

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
