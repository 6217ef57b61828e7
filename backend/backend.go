// Package backend implements the transition-driving adapter: it accumulates
// incoming incremental cell draws into logical frames, diffs consecutive
// frames through the morph solver, and drives a timed transition loop that
// emits minimal cell diffs to a wrapped inner renderer.
package backend

import (
	"errors"
	"fmt"
	"time"

	"github.com/tuimorph/tuimorph/cellbuf"
	"github.com/tuimorph/tuimorph/easing"
	"github.com/tuimorph/tuimorph/morph"
	"github.com/tuimorph/tuimorph/weights"
)

// ClearKind distinguishes what a clear_region call should wipe.
type ClearKind uint8

const (
	ClearScreen ClearKind = iota
	ClearLine
	ClearToEndOfLine
	ClearToEndOfScreen
)

// Renderer is the inner backend's capability set: streaming cell writes,
// flushing, cursor control, and size queries. Both the adapter's consumed
// "inner backend" and its own exposed surface implement this, so adapters
// compose transparently over one another.
type Renderer interface {
	Draw(x, y uint16, cell cellbuf.Cell) error
	Flush() error
	Size() (width, height uint16, err error)
	WindowSize() (widthPx, heightPx uint16, err error)
	ShowCursor() error
	HideCursor() error
	CursorPosition() (x, y uint16, err error)
	SetCursorPosition(x, y uint16) error
	Clear() error
	ClearRegion(kind ClearKind) error
}

// ErrNotInitialized is returned by New/Wrap when the inner renderer cannot
// report its size at construction time.
var ErrNotInitialized = errors.New("backend: inner renderer size unavailable")

// Config tunes a transition: which cost weights drive the solver, how long a
// transition runs, which easing curve shapes its velocity, and how many
// frames per second the loop targets.
type Config struct {
	Weights  weights.Weights
	Duration time.Duration
	Easing   easing.Func
	FPS      uint32
}

// DefaultConfig matches §6: LIQUID weights, 200ms, ease-in-out, 60fps.
func DefaultConfig() Config {
	return Config{
		Weights:  weights.Liquid,
		Duration: 200 * time.Millisecond,
		Easing:   easing.EaseInOut,
		FPS:      60,
	}
}

// Adapter sits transparently between an application and an inner Renderer,
// turning discrete frame writes into smooth morphing transitions. It is
// itself a Renderer, so it composes.
type Adapter struct {
	inner  Renderer
	config Config

	width, height uint16

	current     *cellbuf.Buffer
	prev        *cellbuf.Buffer // nil before the first flush
	lastFlushed *cellbuf.Buffer

	now func() time.Time
}

// New constructs an Adapter wrapping inner, sized to whatever inner reports.
// Returns ErrNotInitialized if the inner renderer's size cannot be read.
func New(inner Renderer, config Config) (*Adapter, error) {
	w, h, err := inner.Size()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotInitialized, err)
	}
	a := &Adapter{
		inner:       inner,
		config:      config,
		width:       w,
		height:      h,
		current:     cellbuf.NewBuffer(w, h),
		lastFlushed: cellbuf.NewBuffer(w, h),
		now:         time.Now,
	}
	return a, nil
}

// Wrap builds an Adapter over inner with DefaultConfig.
func Wrap(inner Renderer) (*Adapter, error) {
	return New(inner, DefaultConfig())
}

// Draw writes a single cell into the accumulating current frame. Out-of-
// bounds coordinates are silently dropped — the upstream renderer is the
// authority on grid bounds.
func (a *Adapter) Draw(x, y uint16, cell cellbuf.Cell) error {
	if !a.current.InBounds(x, y) {
		return nil
	}
	a.current.Set(x, y, cell)
	return nil
}

// Flush commits the accumulated current frame: on the very first flush it is
// rendered directly, otherwise a transition runs from the previous logical
// frame to this one. current is never reset after a flush — it is assembled
// incrementally from the caller's draws, so unchanged cells a caller doesn't
// redraw carry forward as-is into the next frame instead of going blank.
// prev is snapshotted with a clone so later draws into current, which keeps
// accumulating in place, cannot retroactively mutate the frame just flushed.
func (a *Adapter) Flush() error {
	next := a.current

	if a.prev == nil {
		if err := a.emitDiff(next.Clone()); err != nil {
			return err
		}
		a.prev = next.Clone()
		return nil
	}

	if err := a.transition(a.prev, next); err != nil {
		return err
	}
	a.prev = next.Clone()
	return nil
}

// emitDiff writes the minimal set of cell updates that turn lastFlushed into
// target, then flushes the inner renderer and records target as the new
// lastFlushed.
func (a *Adapter) emitDiff(target *cellbuf.Buffer) error {
	for _, u := range cellbuf.Diff(a.lastFlushed, target) {
		if err := a.inner.Draw(u.X, u.Y, u.Cell); err != nil {
			return err
		}
	}
	if err := a.inner.Flush(); err != nil {
		return err
	}
	a.lastFlushed = target
	return nil
}

// transition drives the timed morph from src to dst at config.FPS, easing
// raw elapsed-time progress through config.Easing, emitting one diff per
// tick until the final frame lands exactly at t=1. Ticks land on whole
// multiples of frame_interval after start, accumulated rather than
// re-derived from "now + interval", so drift cannot stretch the transition.
func (a *Adapter) transition(src, dst *cellbuf.Buffer) error {
	plan := morph.Diff(src, dst, a.config.Weights)
	frameInterval := time.Second / time.Duration(a.config.FPS)
	start := a.now()

	for k := int64(1); ; k++ {
		tick := start.Add(time.Duration(k) * frameInterval)
		if now := a.now(); now.Before(tick) {
			time.Sleep(tick.Sub(now))
		}

		elapsed := a.now().Sub(start)
		rawT := float32(elapsed) / float32(a.config.Duration)
		if rawT > 1 {
			rawT = 1
		}
		t := a.config.Easing(rawT)

		frame := morph.Render(plan, t)
		if err := a.emitDiff(frame); err != nil {
			return err
		}

		if rawT >= 1 {
			return nil
		}
	}
}

func (a *Adapter) Size() (uint16, uint16, error)           { return a.inner.Size() }
func (a *Adapter) WindowSize() (uint16, uint16, error)     { return a.inner.WindowSize() }
func (a *Adapter) ShowCursor() error                       { return a.inner.ShowCursor() }
func (a *Adapter) HideCursor() error                       { return a.inner.HideCursor() }
func (a *Adapter) CursorPosition() (uint16, uint16, error) { return a.inner.CursorPosition() }
func (a *Adapter) SetCursorPosition(x, y uint16) error     { return a.inner.SetCursorPosition(x, y) }
func (a *Adapter) Clear() error                            { return a.inner.Clear() }
func (a *Adapter) ClearRegion(kind ClearKind) error        { return a.inner.ClearRegion(kind) }
