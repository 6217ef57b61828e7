package cellbuf

import "github.com/mattn/go-runewidth"

// Modifier is a bitset of terminal text attributes. Attribute bits never
// animate continuously; they snap at the transition's midpoint.
type Modifier uint8

const (
	Bold Modifier = 1 << iota
	Italic
	Underline
	Reverse
	Dim
)

// Has reports whether every bit in mask is set.
func (m Modifier) Has(mask Modifier) bool { return m&mask == mask }

// Cell is a single terminal grid position: coordinates, a short symbol
// (typically one grapheme), foreground/background color, and a modifier
// bitset.
type Cell struct {
	X, Y   uint16
	Symbol string
	Fg, Bg Color
	Mods   Modifier
}

// Blank is a cell whose symbol is empty or a single space.
func (c Cell) Blank() bool { return c.Symbol == "" || c.Symbol == " " }

// Width is the cell's on-screen rune width (0 for combining marks, 1 for
// ordinary glyphs, 2 for wide glyphs like CJK ideographs). Double-wide
// reflow during displacement is out of scope; Width exists so a cell knows
// its own footprint at rest.
func (c Cell) Width() int {
	if c.Symbol == "" {
		return 0
	}
	w := 0
	for _, r := range c.Symbol {
		if rw := runewidth.RuneWidth(r); rw > w {
			w = rw
		}
	}
	return w
}
