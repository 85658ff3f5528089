package transition

import (
	"fmt"
	"math"
	"strings"
)

// Curve maps linear progress t in [0, 1] to eased progress.
type Curve func(t float64) float64

// Linear applies no easing.
func Linear(t float64) float64 {
	return t
}

// Accelerate starts slowly and speeds up. Used for elements leaving the screen.
func Accelerate(t float64) float64 {
	return t * t
}

// Decelerate starts quickly and slows down.
func Decelerate(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// AccelerateDecelerate starts and ends slowly with the fastest change in the
// middle.
func AccelerateDecelerate(t float64) float64 {
	return math.Cos((t+1)*math.Pi)/2 + 0.5
}

func clampUnit(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// CubicBezier returns the curve through (0,0) and (1,1) with control points
// (x1,y1) and (x2,y2), as in CSS cubic-bezier(). x1 and x2 are clamped to
// [0, 1] so the curve stays a function of t.
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	x1, x2 = clampUnit(x1), clampUnit(x2)
	bezier := func(a, b, t float64) float64 {
		u := 1 - t
		return 3*u*u*t*a + 3*u*t*t*b + t*t*t
	}
	slope := func(a, b, t float64) float64 {
		u := 1 - t
		return 3*u*u*a + 6*u*t*(b-a) + 3*t*t*(1-b)
	}
	return func(p float64) float64 {
		if p <= 0 || p >= 1 {
			return clampUnit(p)
		}
		// Newton's method, falling back to bisection on a flat slope.
		t := p
		for i := 0; i < 8; i++ {
			d := slope(x1, x2, t)
			if math.Abs(d) < 1e-6 {
				break
			}
			x := bezier(x1, x2, t) - p
			if math.Abs(x) < 1e-7 {
				return bezier(y1, y2, t)
			}
			t -= x / d
		}
		lo, hi := 0.0, 1.0
		t = p
		for i := 0; i < 32; i++ {
			x := bezier(x1, x2, t)
			if math.Abs(x-p) < 1e-7 {
				break
			}
			if x < p {
				lo = t
			} else {
				hi = t
			}
			t = (lo + hi) / 2
		}
		return bezier(y1, y2, t)
	}
}

// Named curves accepted by ParseCurve.
var namedCurves = map[string]Curve{
	"linear":                Linear,
	"accelerate":            Accelerate,
	"decelerate":            Decelerate,
	"accelerate-decelerate": AccelerateDecelerate,
	"ease":                  CubicBezier(0.25, 0.1, 0.25, 1),
	"ease-in-out":           CubicBezier(0.42, 0, 0.58, 1),
}

// ParseCurve returns the curve for a config value: one of the named curves
// or "cubic-bezier(x1, y1, x2, y2)". An empty name is AccelerateDecelerate.
func ParseCurve(name string) (Curve, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return AccelerateDecelerate, nil
	}
	if c, ok := namedCurves[name]; ok {
		return c, nil
	}
	var x1, y1, x2, y2 float64
	compact := strings.ReplaceAll(name, " ", "")
	if _, err := fmt.Sscanf(compact, "cubic-bezier(%g,%g,%g,%g)", &x1, &y1, &x2, &y2); err == nil {
		return CubicBezier(x1, y1, x2, y2), nil
	}
	return nil, fmt.Errorf("unknown curve %q", name)
}
