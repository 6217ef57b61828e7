package cellbuf

import "testing"

func TestBlank(t *testing.T) {
	if !(Cell{Symbol: ""}).Blank() {
		t.Fatal("empty symbol should be blank")
	}
	if !(Cell{Symbol: " "}).Blank() {
		t.Fatal("single space should be blank")
	}
	if (Cell{Symbol: "x"}).Blank() {
		t.Fatal("non-space symbol should not be blank")
	}
}

func TestBufferSetAt(t *testing.T) {
	buf := NewBuffer(3, 2)
	if buf.Width != 3 || buf.Height != 2 {
		t.Fatalf("unexpected dimensions %dx%d", buf.Width, buf.Height)
	}
	c := Cell{X: 1, Y: 1, Symbol: "Z", Fg: RGB(1, 2, 3)}
	buf.Set(1, 1, c)
	if got := buf.At(1, 1); got != c {
		t.Fatalf("At(1,1) = %+v, want %+v", got, c)
	}
	if buf.At(0, 0).Symbol != " " {
		t.Fatalf("expected blank cell by default, got %q", buf.At(0, 0).Symbol)
	}
}

func TestDiffFindsChangedCells(t *testing.T) {
	a := NewBuffer(2, 1)
	b := a.Clone()
	b.Set(1, 0, Cell{X: 1, Y: 0, Symbol: "Q"})

	updates := Diff(a, b)
	if len(updates) != 1 {
		t.Fatalf("expected 1 update, got %d", len(updates))
	}
	if updates[0].X != 1 || updates[0].Y != 0 || updates[0].Cell.Symbol != "Q" {
		t.Fatalf("unexpected update %+v", updates[0])
	}
}

func TestColorPairSnapsForNonInterpolable(t *testing.T) {
	pair := NewColorPair(DefaultColor())
	if pair.Oklch != nil {
		t.Fatalf("expected nil Oklch for a default color reference")
	}
	pair = NewColorPair(RGB(255, 0, 0))
	if pair.Oklch == nil {
		t.Fatalf("expected non-nil Oklch for a concrete RGB color")
	}
}
