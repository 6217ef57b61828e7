package oklch

import (
	"math"
	"testing"
)

func absDiff(a, b float32) float32 {
	if a > b {
		return a - b
	}
	return b - a
}

func TestRoundTrip(t *testing.T) {
	check := func(r, g, b uint8) {
		t.Helper()
		lch := FromSRGB(r, g, b)
		r2, g2, b2 := ToSRGB(lch)
		if absDiff(float32(r), float32(r2)) > 1 || absDiff(float32(g), float32(g2)) > 1 || absDiff(float32(b), float32(b2)) > 1 {
			t.Fatalf("round-trip failed: (%d,%d,%d) -> %+v -> (%d,%d,%d)", r, g, b, lch, r2, g2, b2)
		}
	}
	for v := 0; v <= 255; v += 17 {
		check(uint8(v), uint8(v), uint8(v))
	}
	check(255, 0, 0)
	check(0, 255, 0)
	check(0, 0, 255)
	check(128, 64, 32)
	check(10, 200, 150)
	check(1, 1, 1)
	check(254, 254, 254)
}

func TestGraysHaveZeroChroma(t *testing.T) {
	for v := 0; v <= 255; v++ {
		lch := FromSRGB(uint8(v), uint8(v), uint8(v))
		if lch.C >= 1e-4 {
			t.Fatalf("gray %d had chroma %v", v, lch.C)
		}
	}
}

func TestBlackAndWhiteLightness(t *testing.T) {
	black := FromSRGB(0, 0, 0)
	if black.L >= 1e-6 {
		t.Fatalf("black.L = %v, want ~0", black.L)
	}
	white := FromSRGB(255, 255, 255)
	if math.Abs(float64(white.L-1)) >= 0.01 {
		t.Fatalf("white.L = %v, want ~1", white.L)
	}
}

func TestLerpEndpoints(t *testing.T) {
	a := FromSRGB(255, 0, 0)
	b := FromSRGB(0, 0, 255)
	at0 := Lerp(a, b, 0)
	at1 := Lerp(a, b, 1)
	if absDiff(at0.L, a.L) > 1e-6 || absDiff(at0.C, a.C) > 1e-6 {
		t.Fatalf("lerp(a,b,0) = %+v, want %+v", at0, a)
	}
	if absDiff(at1.L, b.L) > 1e-6 || absDiff(at1.C, b.C) > 1e-6 {
		t.Fatalf("lerp(a,b,1) = %+v, want %+v", at1, b)
	}
}

func TestDistanceIdentityAndSymmetry(t *testing.T) {
	a := FromSRGB(100, 150, 200)
	if Distance(a, a) >= 1e-6 {
		t.Fatalf("distance(a,a) = %v, want ~0", Distance(a, a))
	}
	b := FromSRGB(255, 0, 0)
	c := FromSRGB(0, 255, 0)
	if absDiff(Distance(b, c), Distance(c, b)) >= 1e-6 {
		t.Fatalf("distance not symmetric")
	}
}

func TestFromNamed(t *testing.T) {
	if _, ok := FromNamed("not-a-color"); ok {
		t.Fatalf("expected unknown name to miss")
	}
	lch, ok := FromNamed("gray")
	if !ok {
		t.Fatalf("expected gray to resolve")
	}
	if lch.C >= 1e-4 {
		t.Fatalf("named gray should be achromatic, got chroma %v", lch.C)
	}
}
