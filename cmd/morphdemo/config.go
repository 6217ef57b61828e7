package main

import (
	"log"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/tuimorph/tuimorph/cellbuf"
	"github.com/tuimorph/tuimorph/easing"
	"github.com/tuimorph/tuimorph/weights"
)

// fileConfig is the on-disk shape of a morphdemo config file: weights
// preset name, transition duration in milliseconds, easing curve name, fps,
// and a small theme palette for the scenes to draw with.
type fileConfig struct {
	Preset     string            `toml:"preset"`
	DurationMS int               `toml:"duration_ms"`
	Easing     string            `toml:"easing"`
	FPS        int               `toml:"fps"`
	Theme      map[string]string `toml:"theme"`
}

// demoConfig is the resolved, typed configuration the harness runs with.
type demoConfig struct {
	Weights    weights.Weights
	DurationMS int
	Easing     easing.Func
	FPS        int
	Theme      map[string]cellbuf.Color
}

func defaultDemoConfig() demoConfig {
	return demoConfig{
		Weights:    weights.Liquid,
		DurationMS: 200,
		Easing:     easing.EaseInOut,
		FPS:        60,
		Theme: map[string]cellbuf.Color{
			"foreground": cellbuf.RGB(204, 204, 204),
			"background": cellbuf.RGB(30, 30, 30),
			"accent":     cellbuf.RGB(36, 114, 200),
		},
	}
}

// loadDemoConfig reads path, falling back to defaultDemoConfig on a missing
// or undecodable file. Invalid fields are skipped individually, keeping
// their defaults, rather than aborting the whole load: an unknown preset
// name or an invalid theme color is warned about, while an unknown easing
// name or a non-positive duration or fps is ignored without a warning.
func loadDemoConfig(path string) demoConfig {
	cfg := defaultDemoConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg
	}

	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		log.Printf("morphdemo: failed to decode config %s: %v. Using defaults.", path, err)
		return cfg
	}

	if fc.Preset != "" {
		if w, ok := presetByName(fc.Preset); ok {
			cfg.Weights = w
		} else {
			log.Printf("morphdemo: unknown weights preset %q. Using default.", fc.Preset)
		}
	}
	if fc.DurationMS > 0 {
		cfg.DurationMS = fc.DurationMS
	}
	if f, ok := easingByName(fc.Easing); ok {
		cfg.Easing = f
	}
	if fc.FPS > 0 {
		cfg.FPS = fc.FPS
	}
	for name, hex := range fc.Theme {
		c, err := colorful.Hex(hex)
		if err != nil {
			log.Printf("morphdemo: invalid theme color %q=%q: %v. Skipping.", name, hex, err)
			continue
		}
		r, g, b := c.RGB255()
		cfg.Theme[name] = cellbuf.RGB(r, g, b)
	}

	return cfg
}

func presetByName(name string) (weights.Weights, bool) {
	switch name {
	case "liquid":
		return weights.Liquid, true
	case "crisp":
		return weights.Crisp, true
	case "fade":
		return weights.Fade, true
	default:
		return weights.Weights{}, false
	}
}

func easingByName(name string) (easing.Func, bool) {
	switch name {
	case "linear":
		return easing.Linear, true
	case "ease_in":
		return easing.EaseIn, true
	case "ease_out":
		return easing.EaseOut, true
	case "ease_in_out":
		return easing.EaseInOut, true
	default:
		return nil, false
	}
}
