package morph

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tuimorph/tuimorph/cellbuf"
	"github.com/tuimorph/tuimorph/weights"
)

func TestDiffIdenticalBuffersAllStable(t *testing.T) {
	buf := cellbuf.NewBuffer(4, 3)
	buf.Set(1, 1, cellbuf.Cell{X: 1, Y: 1, Symbol: "Q", Fg: cellbuf.RGB(10, 20, 30)})

	plan := Diff(buf, buf.Clone(), weights.Liquid)
	if len(plan.Stable) != 12 {
		t.Fatalf("expected 12 stable cells, got %d", len(plan.Stable))
	}
	if len(plan.Mutating) != 0 || len(plan.Displaced) != 0 || len(plan.Appearing) != 0 || len(plan.Disappearing) != 0 {
		t.Fatalf("expected only stable entries, got %+v", plan)
	}
}

func TestDiffSameSymbolDifferentFgIsMutating(t *testing.T) {
	src := cellbuf.NewBuffer(1, 1)
	src.Set(0, 0, cellbuf.Cell{Symbol: "A", Fg: cellbuf.RGB(255, 0, 0)})
	dst := src.Clone()
	dst.Set(0, 0, cellbuf.Cell{Symbol: "A", Fg: cellbuf.RGB(0, 0, 255)})

	plan := Diff(src, dst, weights.Liquid)
	if len(plan.Mutating) != 1 {
		t.Fatalf("expected 1 mutating entry, got %d", len(plan.Mutating))
	}
	if len(plan.Stable) != 0 || len(plan.Displaced) != 0 || len(plan.Appearing) != 0 || len(plan.Disappearing) != 0 {
		t.Fatalf("expected no other buckets, got %+v", plan)
	}
}

func TestDiffEmptySrcOneAppearing(t *testing.T) {
	src := cellbuf.NewBuffer(2, 1)
	dst := cellbuf.NewBuffer(2, 1)
	dst.Set(1, 0, cellbuf.Cell{Symbol: "Z", Fg: cellbuf.RGB(0, 255, 0)})

	plan := Diff(src, dst, weights.Liquid)
	if len(plan.Appearing) != 1 {
		t.Fatalf("expected 1 appearing entry, got %d", len(plan.Appearing))
	}
	if plan.Appearing[0].X != 1 || plan.Appearing[0].Y != 0 {
		t.Fatalf("unexpected appearing position %+v", plan.Appearing[0])
	}
}

func TestDiffEmptyDstOneDisappearing(t *testing.T) {
	src := cellbuf.NewBuffer(2, 1)
	src.Set(0, 0, cellbuf.Cell{Symbol: "Z", Fg: cellbuf.RGB(0, 255, 0)})
	dst := cellbuf.NewBuffer(2, 1)

	plan := Diff(src, dst, weights.Liquid)
	if len(plan.Disappearing) != 1 {
		t.Fatalf("expected 1 disappearing entry, got %d", len(plan.Disappearing))
	}
}

func TestDiffDisplacesAcrossRow(t *testing.T) {
	src := cellbuf.NewBuffer(3, 1)
	src.Set(0, 0, cellbuf.Cell{Symbol: "M", Fg: cellbuf.RGB(255, 0, 0)})
	dst := cellbuf.NewBuffer(3, 1)
	dst.Set(2, 0, cellbuf.Cell{Symbol: "M", Fg: cellbuf.RGB(255, 0, 0)})

	plan := Diff(src, dst, weights.Liquid)
	if len(plan.Displaced) != 1 {
		t.Fatalf("expected 1 displaced entry, got %d", len(plan.Displaced))
	}
	d := plan.Displaced[0]
	type pos struct{ SrcX, SrcY, DstX, DstY uint16 }
	want := pos{SrcX: 0, SrcY: 0, DstX: 2, DstY: 0}
	got := pos{SrcX: d.SrcX, SrcY: d.SrcY, DstX: d.DstX, DstY: d.DstY}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected displacement (-want +got):\n%s", diff)
	}
}

func TestDiffDimensionMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on dimension mismatch")
		}
	}()
	Diff(cellbuf.NewBuffer(2, 2), cellbuf.NewBuffer(3, 2), weights.Liquid)
}

func TestDiffCoverageInvariant(t *testing.T) {
	src := cellbuf.NewBuffer(3, 2)
	dst := cellbuf.NewBuffer(3, 2)
	src.Set(0, 0, cellbuf.Cell{Symbol: "A"})
	dst.Set(2, 1, cellbuf.Cell{Symbol: "A"})
	src.Set(1, 1, cellbuf.Cell{Symbol: "B", Fg: cellbuf.RGB(1, 2, 3)})
	dst.Set(1, 1, cellbuf.Cell{Symbol: "B", Fg: cellbuf.RGB(4, 5, 6)})

	plan := Diff(src, dst, weights.Liquid)

	covered := map[[2]uint16]int{}
	for _, s := range plan.Stable {
		covered[[2]uint16{s.X, s.Y}]++
	}
	for _, m := range plan.Mutating {
		covered[[2]uint16{m.X, m.Y}]++
	}
	for _, a := range plan.Appearing {
		covered[[2]uint16{a.X, a.Y}]++
	}
	for _, d := range plan.Disappearing {
		covered[[2]uint16{d.X, d.Y}]++
	}
	for _, d := range plan.Displaced {
		covered[[2]uint16{d.SrcX, d.SrcY}]++
		covered[[2]uint16{d.DstX, d.DstY}]++
	}

	for y := uint16(0); y < 2; y++ {
		for x := uint16(0); x < 3; x++ {
			if covered[[2]uint16{x, y}] == 0 {
				t.Fatalf("cell (%d,%d) not covered by any bucket", x, y)
			}
		}
	}
}

func TestHungarianIdentity(t *testing.T) {
	cost := [][]float32{
		{0, 5, 5},
		{5, 0, 5},
		{5, 5, 0},
	}
	got := hungarian(cost, 3, 3)
	want := []int{0, 1, 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected assignment (-want +got):\n%s", diff)
	}
}

func TestHungarianSwap(t *testing.T) {
	cost := [][]float32{
		{5, 0},
		{0, 5},
	}
	got := hungarian(cost, 2, 2)
	want := []int{1, 0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected assignment (-want +got):\n%s", diff)
	}
}

func TestHungarianRectangular(t *testing.T) {
	// 3 rows, 2 columns; cheap edges at (0,1) and (1,0), row 2 has no cheap option.
	cost := [][]float32{
		{10, 1},
		{1, 10},
		{10, 10},
	}
	got := hungarian(cost, 3, 2)
	want := []int{1, 0, -1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected assignment (-want +got):\n%s", diff)
	}
}
