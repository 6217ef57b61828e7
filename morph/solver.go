package morph

import (
	"fmt"

	"github.com/tuimorph/tuimorph/cellbuf"
	"github.com/tuimorph/tuimorph/oklch"
	"github.com/tuimorph/tuimorph/weights"
)

// unmatchedCell is a non-blank orphan candidate awaiting correspondence.
type unmatchedCell struct {
	x, y   uint16
	symbol string
	fg, bg cellbuf.ColorPair
	mods   cellbuf.Modifier
}

// Diff classifies every cell of src and dst and assigns displacement
// correspondences via a minimum-cost matching. src and dst must have equal
// dimensions — a mismatch is a programmer error, not a runtime condition the
// caller is expected to recover from.
func Diff(src, dst *cellbuf.Buffer, w weights.Weights) *Plan {
	if !cellbuf.SameDimensions(src, dst) {
		panic(fmt.Sprintf("morph: dimension mismatch: src=%dx%d dst=%dx%d", src.Width, src.Height, dst.Width, dst.Height))
	}

	plan := &Plan{Width: src.Width, Height: src.Height}
	var srcUnmatched, dstUnmatched []unmatchedCell

	for y := uint16(0); y < src.Height; y++ {
		for x := uint16(0); x < src.Width; x++ {
			sc := src.At(x, y)
			dc := dst.At(x, y)

			sameSymbol := sc.Symbol == dc.Symbol
			sameFg := sc.Fg == dc.Fg
			sameBg := sc.Bg == dc.Bg
			sameMods := sc.Mods == dc.Mods

			switch {
			case sameSymbol && sameFg && sameBg && sameMods:
				plan.Stable = append(plan.Stable, StableCell{X: x, Y: y, Symbol: sc.Symbol, Fg: sc.Fg, Bg: sc.Bg, Modifier: sc.Mods})
			case sc.Blank() && !dc.Blank():
				dstUnmatched = append(dstUnmatched, snapshot(x, y, dc))
			case !sc.Blank() && dc.Blank():
				srcUnmatched = append(srcUnmatched, snapshot(x, y, sc))
			case !sc.Blank() && !dc.Blank():
				plan.Mutating = append(plan.Mutating, MutatingCell{
					X: x, Y: y,
					SrcSymbol: sc.Symbol, DstSymbol: dc.Symbol,
					SrcFg: cellbuf.NewColorPair(sc.Fg), DstFg: cellbuf.NewColorPair(dc.Fg),
					SrcBg: cellbuf.NewColorPair(sc.Bg), DstBg: cellbuf.NewColorPair(dc.Bg),
					SrcModifier: sc.Mods, DstModifier: dc.Mods,
				})
			default:
				// Both blank, styles differ: invisible, snap to dst content.
				plan.Stable = append(plan.Stable, StableCell{X: x, Y: y, Symbol: dc.Symbol, Fg: dc.Fg, Bg: dc.Bg, Modifier: dc.Mods})
			}
		}
	}

	displaced, appearing, disappearing := solveUnmatched(srcUnmatched, dstUnmatched, w, src, dst)
	plan.Displaced = displaced
	plan.Appearing = appearing
	plan.Disappearing = disappearing
	return plan
}

func snapshot(x, y uint16, c cellbuf.Cell) unmatchedCell {
	return unmatchedCell{
		x: x, y: y, symbol: c.Symbol,
		fg: cellbuf.NewColorPair(c.Fg), bg: cellbuf.NewColorPair(c.Bg),
		mods: c.Mods,
	}
}

// orphanFrom builds an orphan entry from an unmatched cell and its counter
// background: the other frame's bg at the same position, so a fading cell's
// background travels toward whatever will actually occupy that position
// afterward.
func orphanFrom(u unmatchedCell, counterBg cellbuf.ColorPair) OrphanCell {
	return OrphanCell{X: u.x, Y: u.y, Symbol: u.symbol, Fg: u.fg, Bg: u.bg, CounterBg: counterBg, Modifier: u.mods}
}

func solveUnmatched(src, dst []unmatchedCell, w weights.Weights, srcBuf, dstBuf *cellbuf.Buffer) ([]DisplacedCell, []OrphanCell, []OrphanCell) {
	if len(src) == 0 && len(dst) == 0 {
		return nil, nil, nil
	}
	if len(src) == 0 {
		appearing := make([]OrphanCell, len(dst))
		for i, u := range dst {
			appearing[i] = orphanFrom(u, cellbuf.NewColorPair(srcBuf.At(u.x, u.y).Bg))
		}
		return nil, appearing, nil
	}
	if len(dst) == 0 {
		disappearing := make([]OrphanCell, len(src))
		for i, u := range src {
			disappearing[i] = orphanFrom(u, cellbuf.NewColorPair(dstBuf.At(u.x, u.y).Bg))
		}
		return nil, nil, disappearing
	}

	n, m := len(src), len(dst)
	cost := make([][]float32, n)
	for i := range cost {
		cost[i] = make([]float32, m)
		for j := range cost[i] {
			cost[i][j] = cellCost(src[i], dst[j], w)
		}
	}

	// Above this cost, fade-out plus fade-in reads better than an
	// implausible slide or a jarring in-place rewrite.
	threshold := w.GlyphMismatch*w.Glyph*2 + w.Spatial*100 + w.Color*0.5

	assignment := hungarian(cost, n, m)

	var displaced []DisplacedCell
	var appearing []OrphanCell
	var disappearing []OrphanCell
	dstMatched := make([]bool, m)

	for i, j := range assignment {
		if j >= 0 && cost[i][j] <= threshold {
			s, d := src[i], dst[j]
			displaced = append(displaced, DisplacedCell{
				SrcX: s.x, SrcY: s.y, DstX: d.x, DstY: d.y,
				SrcSymbol: s.symbol, DstSymbol: d.symbol,
				SrcFg: s.fg, DstFg: d.fg, SrcBg: s.bg, DstBg: d.bg,
				SrcModifier: s.mods, DstModifier: d.mods,
			})
			dstMatched[j] = true
		} else {
			disappearing = append(disappearing, orphanFrom(src[i], cellbuf.NewColorPair(dstBuf.At(src[i].x, src[i].y).Bg)))
		}
	}

	for j, matched := range dstMatched {
		if !matched {
			appearing = append(appearing, orphanFrom(dst[j], cellbuf.NewColorPair(srcBuf.At(dst[j].x, dst[j].y).Bg)))
		}
	}

	return displaced, appearing, disappearing
}

func cellCost(s, d unmatchedCell, w weights.Weights) float32 {
	dx := float32(d.x) - float32(s.x)
	dy := float32(d.y) - float32(s.y)
	spatial := dx*dx + dy*dy

	glyph := float32(0)
	if s.symbol != d.symbol {
		glyph = w.GlyphMismatch
	}

	color := float32(0.5)
	if s.fg.Oklch != nil && d.fg.Oklch != nil {
		color = oklch.Distance(*s.fg.Oklch, *d.fg.Oklch)
	}

	return w.Spatial*spatial + w.Glyph*glyph + w.Color*color
}
