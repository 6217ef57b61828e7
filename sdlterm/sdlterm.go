// Package sdlterm is a second concrete Renderer, drawing a monospace glyph
// grid to an SDL2 window instead of writing escape codes. It exists to prove
// backend.Adapter is backend-agnostic: it composes over a pixel surface just
// as readily as over a text stream.
package sdlterm

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/tuimorph/tuimorph/backend"
	"github.com/tuimorph/tuimorph/cellbuf"
	"github.com/tuimorph/tuimorph/oklch"
)

type glyphKey struct {
	ch rune
	fg cellbuf.Color
	mods cellbuf.Modifier
}

// Window is an SDL2-backed Renderer: a fixed-size grid of monospace cells
// drawn with a single font, re-painted in full on every Flush.
type Window struct {
	win      *sdl.Window
	renderer *sdl.Renderer
	font     *ttf.Font

	cols, rows        uint16
	cellW, cellH      int32
	glyphCache        map[glyphKey]*sdl.Texture

	grid          []cellbuf.Cell
	cursorVisible bool
	cursorX       uint16
	cursorY       uint16
}

// Open initializes SDL + SDL_ttf, opens fontPath at ptSize, and creates a
// window sized for cols x rows cells.
func Open(title string, cols, rows uint16, fontPath string, ptSize int) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdlterm: init sdl: %w", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdlterm: init ttf: %w", err)
	}

	font, err := ttf.OpenFont(fontPath, ptSize)
	if err != nil {
		ttf.Quit()
		sdl.Quit()
		return nil, fmt.Errorf("sdlterm: open font: %w", err)
	}

	cellW, _, err := font.SizeUTF8("W")
	if err != nil {
		return nil, fmt.Errorf("sdlterm: measure glyph: %w", err)
	}
	cellH := font.Height()

	pxW := int32(cellW) * int32(cols)
	pxH := int32(cellH) * int32(rows)

	win, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, pxW, pxH, sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, fmt.Errorf("sdlterm: create window: %w", err)
	}
	renderer, err := win.CreateRenderer(sdl.RENDERER_ACCELERATED)
	if err != nil {
		return nil, fmt.Errorf("sdlterm: create renderer: %w", err)
	}

	w := &Window{
		win: win, renderer: renderer, font: font,
		cols: cols, rows: rows,
		cellW: int32(cellW), cellH: int32(cellH),
		glyphCache: make(map[glyphKey]*sdl.Texture),
		grid:       make([]cellbuf.Cell, int(cols)*int(rows)),
	}
	for i := range w.grid {
		w.grid[i] = cellbuf.Cell{Symbol: " "}
	}
	return w, nil
}

// Close destroys all SDL resources and shuts down the library.
func (w *Window) Close() {
	for _, tex := range w.glyphCache {
		tex.Destroy()
	}
	w.renderer.Destroy()
	w.win.Destroy()
	w.font.Close()
	ttf.Quit()
	sdl.Quit()
}

func (w *Window) index(x, y uint16) int { return int(y)*int(w.cols) + int(x) }

func (w *Window) Draw(x, y uint16, cell cellbuf.Cell) error {
	if x >= w.cols || y >= w.rows {
		return nil
	}
	w.grid[w.index(x, y)] = cell
	return nil
}

func (w *Window) Size() (uint16, uint16, error) { return w.cols, w.rows, nil }

func (w *Window) WindowSize() (uint16, uint16, error) {
	pw, ph := w.win.GetSize()
	return uint16(pw), uint16(ph), nil
}

func (w *Window) ShowCursor() error          { w.cursorVisible = true; return nil }
func (w *Window) HideCursor() error          { w.cursorVisible = false; return nil }
func (w *Window) CursorPosition() (uint16, uint16, error) { return w.cursorX, w.cursorY, nil }

func (w *Window) SetCursorPosition(x, y uint16) error {
	w.cursorX, w.cursorY = x, y
	return nil
}

func (w *Window) Clear() error {
	for i := range w.grid {
		w.grid[i] = cellbuf.Cell{Symbol: " "}
	}
	return nil
}

func (w *Window) ClearRegion(kind backend.ClearKind) error {
	switch kind {
	case backend.ClearScreen:
		return w.Clear()
	case backend.ClearLine:
		for x := uint16(0); x < w.cols; x++ {
			w.grid[w.index(x, w.cursorY)] = cellbuf.Cell{Symbol: " "}
		}
	case backend.ClearToEndOfLine:
		for x := w.cursorX; x < w.cols; x++ {
			w.grid[w.index(x, w.cursorY)] = cellbuf.Cell{Symbol: " "}
		}
	case backend.ClearToEndOfScreen:
		for y := w.cursorY; y < w.rows; y++ {
			startX := uint16(0)
			if y == w.cursorY {
				startX = w.cursorX
			}
			for x := startX; x < w.cols; x++ {
				w.grid[w.index(x, y)] = cellbuf.Cell{Symbol: " "}
			}
		}
	}
	return nil
}

// Flush repaints the whole grid and presents it. Glyph textures are cached
// per (rune, fg, modifier) so a static frame costs one texture lookup per
// cell, not one render per cell.
func (w *Window) Flush() error {
	w.renderer.SetDrawColor(0, 0, 0, 255)
	w.renderer.Clear()

	for y := uint16(0); y < w.rows; y++ {
		for x := uint16(0); x < w.cols; x++ {
			cell := w.grid[w.index(x, y)]
			dst := &sdl.Rect{X: int32(x) * w.cellW, Y: int32(y) * w.cellH, W: w.cellW, H: w.cellH}

			bg := sdlColor(cell.Bg)
			w.renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
			if err := w.renderer.FillRect(dst); err != nil {
				return fmt.Errorf("sdlterm: fill background: %w", err)
			}

			if cell.Blank() {
				continue
			}
			tex, err := w.glyphTexture(cell)
			if err != nil {
				return err
			}
			if err := w.renderer.Copy(tex, nil, dst); err != nil {
				return fmt.Errorf("sdlterm: copy glyph: %w", err)
			}
		}
	}

	if w.cursorVisible {
		cur := &sdl.Rect{X: int32(w.cursorX) * w.cellW, Y: int32(w.cursorY) * w.cellH, W: w.cellW, H: w.cellH}
		w.renderer.SetDrawColor(255, 255, 255, 120)
		if err := w.renderer.FillRect(cur); err != nil {
			return fmt.Errorf("sdlterm: draw cursor: %w", err)
		}
	}

	w.renderer.Present()
	return nil
}

func (w *Window) glyphTexture(cell cellbuf.Cell) (*sdl.Texture, error) {
	r := []rune(cell.Symbol)
	var ch rune = ' '
	if len(r) > 0 {
		ch = r[0]
	}
	key := glyphKey{ch: ch, fg: cell.Fg, mods: cell.Mods}
	if tex, ok := w.glyphCache[key]; ok {
		return tex, nil
	}

	surface, err := w.font.RenderUTF8Blended(string(ch), sdlColor(cell.Fg))
	if err != nil {
		return nil, fmt.Errorf("sdlterm: render glyph: %w", err)
	}
	defer surface.Free()

	tex, err := w.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("sdlterm: upload glyph texture: %w", err)
	}
	w.glyphCache[key] = tex
	return tex, nil
}

func sdlColor(c cellbuf.Color) sdl.Color {
	switch c.Kind {
	case cellbuf.ColorRGB:
		return sdl.Color{R: c.R, G: c.G, B: c.B, A: 255}
	case cellbuf.ColorNamed:
		if lch, ok := oklch.FromNamed(c.Name); ok {
			r, g, b := oklch.ToSRGB(lch)
			return sdl.Color{R: r, G: g, B: b, A: 255}
		}
		return sdl.Color{R: 0, G: 0, B: 0, A: 255}
	default:
		return sdl.Color{R: 0, G: 0, B: 0, A: 255}
	}
}

var _ backend.Renderer = (*Window)(nil)
