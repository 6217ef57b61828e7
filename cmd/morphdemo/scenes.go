package main

import "github.com/tuimorph/tuimorph/cellbuf"

// scene renders one logical frame into a width x height buffer.
type scene func(width, height uint16, theme map[string]cellbuf.Color) *cellbuf.Buffer

var scenes = []scene{sceneBanner, sceneBars, sceneDiagonal}

func sceneBanner(width, height uint16, theme map[string]cellbuf.Color) *cellbuf.Buffer {
	buf := cellbuf.NewBuffer(width, height)
	text := "tui-morph demo"
	y := height / 2
	for i, r := range text {
		x := uint16(i)
		if x >= width {
			break
		}
		buf.Set(x, y, cellbuf.Cell{X: x, Y: y, Symbol: string(r), Fg: theme["foreground"], Bg: theme["background"]})
	}
	return buf
}

func sceneBars(width, height uint16, theme map[string]cellbuf.Color) *cellbuf.Buffer {
	buf := cellbuf.NewBuffer(width, height)
	for y := uint16(0); y < height; y++ {
		if y%2 != 0 {
			continue
		}
		for x := uint16(0); x < width; x++ {
			buf.Set(x, y, cellbuf.Cell{X: x, Y: y, Symbol: "=", Fg: theme["accent"], Bg: theme["background"]})
		}
	}
	return buf
}

func sceneDiagonal(width, height uint16, theme map[string]cellbuf.Color) *cellbuf.Buffer {
	buf := cellbuf.NewBuffer(width, height)
	for i := uint16(0); i < width && i < height; i++ {
		buf.Set(i, i, cellbuf.Cell{X: i, Y: i, Symbol: "*", Fg: theme["foreground"], Bg: theme["background"]})
	}
	return buf
}
