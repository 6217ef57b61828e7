package cellbuf

import "github.com/tuimorph/tuimorph/oklch"

// ColorKind discriminates the three color variants a Cell's fg/bg can hold.
type ColorKind uint8

const (
	// ColorRGB is a concrete 24-bit sRGB triple.
	ColorRGB ColorKind = iota
	// ColorNamed is one of the standard named colors, with a fixed sRGB
	// mapping (see oklch.FromNamed).
	ColorNamed
	// ColorOther is a non-interpolable reference: default/reset, or a
	// palette index. Two ColorOther values compare equal only if both
	// their Tag and Index match.
	ColorOther
)

// OtherTag distinguishes the sub-kinds of ColorOther.
type OtherTag uint8

const (
	Default OtherTag = iota
	Indexed
)

// Color is either a concrete sRGB triple, a named color, or a
// non-interpolable reference. It is a plain comparable struct so cells can
// be compared with == during solver classification.
type Color struct {
	Kind  ColorKind
	R, G, B uint8    // valid when Kind == ColorRGB
	Name  string     // valid when Kind == ColorNamed
	Tag   OtherTag   // valid when Kind == ColorOther
	Index uint8      // valid when Kind == ColorOther && Tag == Indexed
}

// RGB builds a concrete 24-bit sRGB color.
func RGB(r, g, b uint8) Color { return Color{Kind: ColorRGB, R: r, G: g, B: b} }

// Named builds a named-color reference. Names follow oklch's standard
// palette (e.g. "red", "lightblue", "gray").
func Named(name string) Color { return Color{Kind: ColorNamed, Name: name} }

// DefaultColor is the terminal's default/reset foreground or background.
func DefaultColor() Color { return Color{Kind: ColorOther, Tag: Default} }

// IndexedColor is a palette-indexed color (e.g. xterm-256).
func IndexedColor(idx uint8) Color { return Color{Kind: ColorOther, Tag: Indexed, Index: idx} }

// ToOklch converts a color to Oklch when it admits perceptual
// interpolation (RGB and Named do; ColorOther never does).
func ToOklch(c Color) (oklch.Oklch, bool) {
	switch c.Kind {
	case ColorRGB:
		return oklch.FromSRGB(c.R, c.G, c.B), true
	case ColorNamed:
		return oklch.FromNamed(c.Name)
	default:
		return oklch.Oklch{}, false
	}
}

// ColorPair carries a color's raw value alongside its optional Oklch
// representation. A nil Oklch means the color snaps rather than
// interpolates.
type ColorPair struct {
	Raw   Color
	Oklch *oklch.Oklch
}

// NewColorPair computes a ColorPair's Oklch representation once, at
// classification time.
func NewColorPair(c Color) ColorPair {
	lch, ok := ToOklch(c)
	if !ok {
		return ColorPair{Raw: c}
	}
	return ColorPair{Raw: c, Oklch: &lch}
}
