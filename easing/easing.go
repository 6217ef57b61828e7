// Package easing provides progress-remapping functions [0,1] -> [0,1] used
// to shape the velocity of a morph transition.
package easing

// Func remaps a raw progress value to an eased one. f(0) = 0, f(1) = 1,
// monotonic non-decreasing.
type Func func(t float32) float32

// Linear is the identity mapping.
func Linear(t float32) float32 { return t }

// EaseIn starts slow and accelerates.
func EaseIn(t float32) float32 { return t * t }

// EaseOut starts fast and decelerates.
func EaseOut(t float32) float32 { return t * (2 - t) }

// EaseInOut is symmetric about t=0.5.
func EaseInOut(t float32) float32 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// CubicBezier builds a CSS cubic-bezier(x1,y1,x2,y2) easing function: control
// points (x1,y1) and (x2,y2), fixed endpoints (0,0) and (1,1). Evaluation
// solves for the bezier parameter t whose x-projection equals the input via
// Newton's method, then returns the y-projection at that t.
func CubicBezier(x1, y1, x2, y2 float32) Func {
	return func(x float32) float32 {
		t := solveBezierT(x, x1, x2)
		return sampleBezier(t, y1, y2)
	}
}

func solveBezierT(x, x1, x2 float32) float32 {
	t := x
	for range 8 {
		residual := sampleBezier(t, x1, x2) - x
		absResidual := residual
		if absResidual < 0 {
			absResidual = -absResidual
		}
		if absResidual < 1e-6 {
			return t
		}
		slope := bezierDerivative(t, x1, x2)
		absSlope := slope
		if absSlope < 0 {
			absSlope = -absSlope
		}
		if absSlope < 1e-6 {
			break
		}
		t -= residual / slope
	}
	return t
}

// sampleBezier evaluates a cubic bezier with endpoints (0,0) and (1,1).
func sampleBezier(t, p1, p2 float32) float32 {
	t2 := t * t
	t3 := t2 * t
	mt := 1 - t
	mt2 := mt * mt
	return 3*mt2*t*p1 + 3*mt*t2*p2 + t3
}

func bezierDerivative(t, p1, p2 float32) float32 {
	mt := 1 - t
	return 3*mt*mt*p1 + 6*mt*t*(p2-p1) + 3*t*t*(1-p2)
}
