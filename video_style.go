package recdl

import "fmt"

// Size is a pixel geometry.
type Size struct {
	Width  uint `json:"width"  yaml:"width"`
	Height uint `json:"height" yaml:"height"`
}

func (s Size) String() string {
	return fmt.Sprintf("%d:%d", s.Width, s.Height)
}

// VideoStyle is a named encoded/visible frame size pair. Encoded is the pixel buffer the
// encoder writes, Visible is the clean aperture inside it.
type VideoStyle struct {
	Name    string `json:"name"`
	Encoded Size   `json:"encoded"`
	Visible Size   `json:"visible"`
}

// Valid reports whether the visible region fits inside the encoded buffer.
func (vs VideoStyle) Valid() bool {
	return vs.Name != "" && vs.fits()
}

func (vs VideoStyle) fits() bool {
	return vs.Encoded.Width >= vs.Visible.Width && vs.Encoded.Height >= vs.Visible.Height
}

// ClapRange returns the largest clean aperture offset magnitude on each axis.
func (vs VideoStyle) ClapRange() (h, v int) {
	if !vs.fits() {
		return 0, 0
	}
	h = int(vs.Encoded.Width-vs.Visible.Width) / 2   //nolint:gosec,mnd
	v = int(vs.Encoded.Height-vs.Visible.Height) / 2 //nolint:gosec,mnd
	return h, v
}

func (vs VideoStyle) String() string {
	if vs.Encoded == vs.Visible {
		return fmt.Sprintf("%s (%s full)", vs.Name, vs.Encoded)
	}
	h, v := vs.ClapRange()
	return fmt.Sprintf("%s (%s clap %s, +/-%d:%d)", vs.Name, vs.Encoded, vs.Visible, h, v)
}

// ClapOffset shifts the clean aperture window from the center of the encoded buffer.
type ClapOffset struct {
	Horizontal int `json:"horizontal" yaml:"horizontal"`
	Vertical   int `json:"vertical"   yaml:"vertical"`
}

func (co ClapOffset) String() string {
	return fmt.Sprintf("(%+d,%+d)", co.Horizontal, co.Vertical)
}
