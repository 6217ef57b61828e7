// Package morph implements the morph pipeline's solver and interpolator:
// diffing two buffers into a frozen InterpolationPlan, then rendering that
// plan at any progress value t.
package morph

import "github.com/tuimorph/tuimorph/cellbuf"

// Plan is the frozen diff artifact between two equal-sized buffers,
// produced once by Diff and consumed read-only by many Render calls.
//
// Every grid cell appears in exactly one of: Stable, Mutating, an Appearing
// entry, a Disappearing entry, the src side of a Displaced entry, or the
// dst side of a Displaced entry.
type Plan struct {
	Width, Height uint16
	Stable        []StableCell
	Mutating      []MutatingCell
	Displaced     []DisplacedCell
	Appearing     []OrphanCell
	Disappearing  []OrphanCell
}

// StableCell held the same position, symbol, colors and modifier in both
// frames (or was blank-to-blank with a style change, snapped to dst).
type StableCell struct {
	X, Y     uint16
	Symbol   string
	Fg, Bg   cellbuf.Color
	Modifier cellbuf.Modifier
}

// MutatingCell is non-blank in both frames at the same position, with at
// least one attribute differing.
type MutatingCell struct {
	X, Y                       uint16
	SrcSymbol, DstSymbol       string
	SrcFg, DstFg, SrcBg, DstBg cellbuf.ColorPair
	SrcModifier, DstModifier   cellbuf.Modifier
}

// DisplacedCell is a correspondence chosen by the matcher across frames.
type DisplacedCell struct {
	SrcX, SrcY, DstX, DstY     uint16
	SrcSymbol, DstSymbol       string
	SrcFg, DstFg, SrcBg, DstBg cellbuf.ColorPair
	SrcModifier, DstModifier   cellbuf.Modifier
}

// OrphanCell exists in only one frame: blank in src, non-blank in dst
// (Appearing), or the reverse (Disappearing). CounterBg is the background
// at this position in the *other* frame, so the orphan's background can
// animate toward whatever will actually occupy the cell rather than
// fading through black.
type OrphanCell struct {
	X, Y       uint16
	Symbol     string
	Fg, Bg     cellbuf.ColorPair
	CounterBg  cellbuf.ColorPair
	Modifier   cellbuf.Modifier
}
