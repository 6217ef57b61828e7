package morph

import (
	"github.com/tuimorph/tuimorph/cellbuf"
	"github.com/tuimorph/tuimorph/oklch"
)

// Render composites a plan at progress t (clamped to [0,1]) into a fresh
// buffer. Buckets are composited in a fixed order — stable, mutating,
// displaced, appearing, disappearing — so a later write overwrites an
// earlier one at the same coordinate.
func Render(plan *Plan, t float32) *cellbuf.Buffer {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	buf := cellbuf.NewBuffer(plan.Width, plan.Height)

	for _, s := range plan.Stable {
		buf.Set(s.X, s.Y, cellbuf.Cell{X: s.X, Y: s.Y, Symbol: s.Symbol, Fg: s.Fg, Bg: s.Bg, Mods: s.Modifier})
	}

	for _, m := range plan.Mutating {
		fg := lerpColor(m.SrcFg, m.DstFg, t)
		bg := lerpColor(m.SrcBg, m.DstBg, t)
		sym := pickSymbol(m.SrcSymbol, m.DstSymbol, m.SrcFg, t)
		mods := m.SrcModifier
		if t >= 0.5 {
			mods = m.DstModifier
		}
		buf.Set(m.X, m.Y, cellbuf.Cell{X: m.X, Y: m.Y, Symbol: sym, Fg: fg, Bg: bg, Mods: mods})
	}

	for _, d := range plan.Displaced {
		x := roundInt(lerpF(float32(d.SrcX), float32(d.DstX), t))
		y := roundInt(lerpF(float32(d.SrcY), float32(d.DstY), t))
		if x < 0 || y < 0 || x >= int(plan.Width) || y >= int(plan.Height) {
			continue
		}
		fg := lerpColor(d.SrcFg, d.DstFg, t)
		bg := lerpColor(d.SrcBg, d.DstBg, t)
		sym := pickSymbol(d.SrcSymbol, d.DstSymbol, d.SrcFg, t)
		mods := d.SrcModifier
		if t >= 0.5 {
			mods = d.DstModifier
		}
		ux, uy := uint16(x), uint16(y)
		buf.Set(ux, uy, cellbuf.Cell{X: ux, Y: uy, Symbol: sym, Fg: fg, Bg: bg, Mods: mods})
	}

	for _, a := range plan.Appearing {
		fg := fade(a.Fg, t)
		bg := lerpColor(a.CounterBg, a.Bg, t)
		sym := ""
		if visible(a.Fg, t) {
			sym = a.Symbol
		}
		buf.Set(a.X, a.Y, cellbuf.Cell{X: a.X, Y: a.Y, Symbol: sym, Fg: fg, Bg: bg, Mods: a.Modifier})
	}

	for _, d := range plan.Disappearing {
		factor := 1 - t
		fg := fade(d.Fg, factor)
		bg := lerpColor(d.Bg, d.CounterBg, t)
		sym := ""
		if visible(d.Fg, factor) {
			sym = d.Symbol
		}
		buf.Set(d.X, d.Y, cellbuf.Cell{X: d.X, Y: d.Y, Symbol: sym, Fg: fg, Bg: bg, Mods: d.Modifier})
	}

	return buf
}

// visible gates an orphan glyph's presence this frame: a color with Oklch
// becomes legible once its lightness-scaled factor crosses 0.15; a
// non-interpolable color just snaps at the midpoint.
func visible(fg cellbuf.ColorPair, factor float32) bool {
	if fg.Oklch != nil {
		return fg.Oklch.L*factor >= 0.15
	}
	return factor >= 0.5
}

// lerpColor interpolates in Oklch when both endpoints admit it, otherwise
// snaps to src before the midpoint and dst after.
func lerpColor(src, dst cellbuf.ColorPair, t float32) cellbuf.Color {
	if src.Oklch != nil && dst.Oklch != nil {
		lch := oklch.Lerp(*src.Oklch, *dst.Oklch, t)
		r, g, b := oklch.ToSRGB(lch)
		return cellbuf.RGB(r, g, b)
	}
	if t < 0.5 {
		return src.Raw
	}
	return dst.Raw
}

// pickSymbol applies the crossfade rule: dim source glyphs switch to dst
// earlier, bright ones hold until mid-fade, based on the source foreground's
// lightness.
func pickSymbol(src, dst string, srcFg cellbuf.ColorPair, t float32) string {
	if src == dst {
		return src
	}
	threshold := float32(0.5)
	if srcFg.Oklch != nil && srcFg.Oklch.L >= 0.01 {
		threshold = 0.15 / srcFg.Oklch.L
		if threshold < 0 {
			threshold = 0
		} else if threshold > 1 {
			threshold = 1
		}
	}
	if t < threshold {
		return src
	}
	return dst
}

// fade scales only the lightness channel toward zero by factor; a
// non-interpolable color returns itself above the midpoint and the default
// color below it.
func fade(c cellbuf.ColorPair, factor float32) cellbuf.Color {
	if c.Oklch == nil {
		if factor >= 0.5 {
			return c.Raw
		}
		return cellbuf.DefaultColor()
	}
	lch := *c.Oklch
	lch.L *= factor
	r, g, b := oklch.ToSRGB(lch)
	return cellbuf.RGB(r, g, b)
}

func lerpF(a, b, t float32) float32 { return a + (b-a)*t }

func roundInt(f float32) int {
	if f >= 0 {
		return int(f + 0.5)
	}
	return -int(-f + 0.5)
}
