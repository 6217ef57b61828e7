// Command morphdemo drives tuimorph's backend adapter against the real
// terminal on stdout (through ansiterm; it does not open an SDL2 window),
// cycling through a handful of scenes so the morph transitions are visible. It is ordinary UI plumbing around the
// library, not part of the core.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/tuimorph/tuimorph/ansiterm"
	"github.com/tuimorph/tuimorph/backend"
)

func main() {
	configPath := flag.String("config", "morphdemo.toml", "path to a TOML config file")
	sceneDelay := flag.Duration("scene-delay", 2*time.Second, "time to hold each scene before morphing to the next")
	flag.Parse()

	cfg := loadDemoConfig(*configPath)

	restore, err := rawMode(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("morphdemo: enable raw mode: %v", err)
	}
	defer restore()

	term := ansiterm.New(os.Stdout)
	adapter, err := backend.New(term, backend.Config{
		Weights:  cfg.Weights,
		Duration: time.Duration(cfg.DurationMS) * time.Millisecond,
		Easing:   cfg.Easing,
		FPS:      uint32(cfg.FPS),
	})
	if err != nil {
		log.Fatalf("morphdemo: init adapter: %v", err)
	}

	if err := adapter.HideCursor(); err != nil {
		log.Printf("morphdemo: hide cursor: %v", err)
	}
	defer adapter.ShowCursor()
	defer adapter.Clear()

	width, height, err := adapter.Size()
	if err != nil {
		log.Fatalf("morphdemo: query size: %v", err)
	}

	quit := pollQuit()

	for i := 0; ; i++ {
		s := scenes[i%len(scenes)]
		frame := s(width, height, cfg.Theme)
		for y := uint16(0); y < height; y++ {
			for x := uint16(0); x < width; x++ {
				if err := adapter.Draw(x, y, frame.At(x, y)); err != nil {
					log.Fatalf("morphdemo: draw: %v", err)
				}
			}
		}
		if err := adapter.Flush(); err != nil {
			log.Fatalf("morphdemo: flush: %v", err)
		}

		select {
		case <-quit:
			return
		case <-time.After(*sceneDelay):
		}
	}
}

// pollQuit reads single bytes from stdin in the background and signals on
// the returned channel the first time 'q' is seen, so the main loop can
// check it between scenes without blocking the transition timer.
func pollQuit() <-chan struct{} {
	ch := make(chan struct{})
	go func() {
		buf := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				return
			}
			if n > 0 && buf[0] == 'q' {
				close(ch)
				return
			}
		}
	}()
	return ch
}
