// Package ansiterm is a reference Renderer that writes SGR and cursor
// escape codes to an io.Writer — the inner backend a host application plugs
// backend.Adapter in front of when driving a real terminal.
package ansiterm

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/tuimorph/tuimorph/backend"
	"github.com/tuimorph/tuimorph/cellbuf"
	"github.com/tuimorph/tuimorph/oklch"
)

const (
	saveCursor    = "\0337"
	restoreCursor = "\0338"
	clearScreen   = "\033[H\033[2J"
	hideCursorSeq = "\033[?25l"
	showCursorSeq = "\033[?25h"
	resetSGR      = "\033[0m"
)

// Terminal drives an ANSI/VT terminal over an *os.File, using the file's
// descriptor for winsize queries (TIOCGWINSZ) and a buffered writer for the
// escape-code stream.
type Terminal struct {
	f   *os.File
	w   *bufio.Writer
	cx  uint16
	cy  uint16
	mod cellbuf.Modifier
	fg  cellbuf.Color
	bg  cellbuf.Color
}

// New wraps f (typically os.Stdout, or a pty's slave side) as a Renderer.
func New(f *os.File) *Terminal {
	return &Terminal{f: f, w: bufio.NewWriter(f)}
}

// Size reports the terminal's character grid dimensions.
func (t *Terminal) Size() (uint16, uint16, error) {
	sz, err := getWinsize(t.f.Fd())
	if err != nil {
		return 0, 0, fmt.Errorf("ansiterm: query size: %w", err)
	}
	return sz.Col, sz.Row, nil
}

// WindowSize reports the terminal's pixel dimensions.
func (t *Terminal) WindowSize() (uint16, uint16, error) {
	sz, err := getWinsize(t.f.Fd())
	if err != nil {
		return 0, 0, fmt.Errorf("ansiterm: query window size: %w", err)
	}
	return sz.Xpixel, sz.Ypixel, nil
}

func getWinsize(fd uintptr) (*unix.Winsize, error) {
	for {
		sz, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
		if err != unix.EINTR {
			return sz, err
		}
	}
}

// Draw moves the cursor to (x,y), sets SGR state if it changed since the
// last cell, and writes the cell's symbol.
func (t *Terminal) Draw(x, y uint16, cell cellbuf.Cell) error {
	fmt.Fprintf(t.w, "\033[%d;%dH", y+1, x+1)
	t.writeSGR(cell)
	sym := cell.Symbol
	if sym == "" {
		sym = " "
	}
	if _, err := t.w.WriteString(sym); err != nil {
		return fmt.Errorf("ansiterm: draw: %w", err)
	}
	t.cx, t.cy = x+uint16(cell.Width()), y
	return nil
}

func (t *Terminal) writeSGR(cell cellbuf.Cell) {
	if cell.Fg == t.fg && cell.Bg == t.bg && cell.Mods == t.mod {
		return
	}
	var sb strings.Builder
	sb.WriteString("\033[0")
	if cell.Mods.Has(cellbuf.Bold) {
		sb.WriteString(";1")
	}
	if cell.Mods.Has(cellbuf.Dim) {
		sb.WriteString(";2")
	}
	if cell.Mods.Has(cellbuf.Italic) {
		sb.WriteString(";3")
	}
	if cell.Mods.Has(cellbuf.Underline) {
		sb.WriteString(";4")
	}
	if cell.Mods.Has(cellbuf.Reverse) {
		sb.WriteString(";7")
	}
	writeColorSGR(&sb, cell.Fg, false)
	writeColorSGR(&sb, cell.Bg, true)
	sb.WriteString("m")
	t.w.WriteString(sb.String())
	t.fg, t.bg, t.mod = cell.Fg, cell.Bg, cell.Mods
}

func writeColorSGR(sb *strings.Builder, c cellbuf.Color, isBg bool) {
	base := 38
	if isBg {
		base = 48
	}
	switch c.Kind {
	case cellbuf.ColorRGB:
		fmt.Fprintf(sb, ";%d;2;%d;%d;%d", base, c.R, c.G, c.B)
	case cellbuf.ColorNamed:
		if lch, ok := oklch.FromNamed(c.Name); ok {
			r, g, b := oklch.ToSRGB(lch)
			fmt.Fprintf(sb, ";%d;2;%d;%d;%d", base, r, g, b)
		}
	case cellbuf.ColorOther:
		if c.Tag == cellbuf.Indexed {
			fmt.Fprintf(sb, ";%d;5;%d", base, c.Index)
		}
		// Default/reset: omit, leaving the terminal's own default in effect.
	}
}

// Flush drains the buffered escape-code stream to the underlying file.
func (t *Terminal) Flush() error {
	if err := t.w.Flush(); err != nil {
		return fmt.Errorf("ansiterm: flush: %w", err)
	}
	return nil
}

func (t *Terminal) ShowCursor() error {
	_, err := t.w.WriteString(showCursorSeq)
	return err
}

func (t *Terminal) HideCursor() error {
	_, err := t.w.WriteString(hideCursorSeq)
	return err
}

func (t *Terminal) CursorPosition() (uint16, uint16, error) { return t.cx, t.cy, nil }

func (t *Terminal) SetCursorPosition(x, y uint16) error {
	fmt.Fprintf(t.w, "\033[%d;%dH", y+1, x+1)
	t.cx, t.cy = x, y
	return nil
}

func (t *Terminal) Clear() error {
	_, err := t.w.WriteString(clearScreen)
	t.fg, t.bg, t.mod = cellbuf.Color{}, cellbuf.Color{}, 0
	return err
}

func (t *Terminal) ClearRegion(kind backend.ClearKind) error {
	var seq string
	switch kind {
	case backend.ClearScreen:
		seq = "\033[2J"
	case backend.ClearLine:
		seq = "\033[2K"
	case backend.ClearToEndOfLine:
		seq = "\033[0K"
	case backend.ClearToEndOfScreen:
		seq = "\033[0J"
	}
	_, err := t.w.WriteString(seq)
	return err
}

var _ backend.Renderer = (*Terminal)(nil)
