package easing

import "testing"

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func assertBoundaries(t *testing.T, f Func) {
	t.Helper()
	if abs32(f(0)) >= 1e-6 {
		t.Fatalf("f(0) = %v, want 0", f(0))
	}
	if abs32(f(1)-1) >= 1e-6 {
		t.Fatalf("f(1) = %v, want 1", f(1))
	}
}

func assertMonotonic(t *testing.T, f Func) {
	t.Helper()
	prev := f(0)
	for i := 1; i <= 100; i++ {
		x := float32(i) / 100
		v := f(x)
		if v < prev-1e-6 {
			t.Fatalf("non-monotonic at t=%v: %v > %v", x, prev, v)
		}
		prev = v
	}
}

func TestLinearIsIdentity(t *testing.T) {
	for i := 0; i <= 10; i++ {
		x := float32(i) / 10
		if abs32(Linear(x)-x) >= 1e-6 {
			t.Fatalf("Linear(%v) = %v", x, Linear(x))
		}
	}
}

func TestBuiltinBoundariesAndMonotonic(t *testing.T) {
	for _, f := range []Func{EaseIn, EaseOut, EaseInOut} {
		assertBoundaries(t, f)
		assertMonotonic(t, f)
	}
}

func TestEaseInStartsSlow(t *testing.T) {
	if !(EaseIn(0.25) < 0.25) {
		t.Fatalf("EaseIn(0.25) = %v, want < 0.25", EaseIn(0.25))
	}
}

func TestEaseOutStartsFast(t *testing.T) {
	if !(EaseOut(0.25) > 0.25) {
		t.Fatalf("EaseOut(0.25) = %v, want > 0.25", EaseOut(0.25))
	}
}

func TestEaseInOutSymmetric(t *testing.T) {
	if abs32(EaseInOut(0.5)-0.5) >= 1e-6 {
		t.Fatalf("EaseInOut(0.5) = %v, want 0.5", EaseInOut(0.5))
	}
}

func TestCubicBezierBoundaries(t *testing.T) {
	assertBoundaries(t, CubicBezier(0.25, 0.1, 0.25, 1.0))
}

func TestCubicBezierIdentity(t *testing.T) {
	ease := CubicBezier(0, 0, 1, 1)
	for i := 0; i <= 10; i++ {
		x := float32(i) / 10
		if abs32(ease(x)-x) >= 0.01 {
			t.Fatalf("at t=%v: %v", x, ease(x))
		}
	}
}
