package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// FractionWithinRange returns where v sits between start and end, 0 at start
// and 1 at end. A zero-width range yields 0.
func FractionWithinRange(v, start, end float64) float64 {
	if start == end {
		return 0
	}
	return (v - start) / (end - start)
}

// RangeMap maps v from [inStart, inEnd] onto [outStart, outEnd] without clamping.
func RangeMap(v, inStart, inEnd, outStart, outEnd float64) float64 {
	return Lerp(outStart, outEnd, FractionWithinRange(v, inStart, inEnd))
}

func RangeMapClamped(v, inStart, inEnd, outStart, outEnd float64) float64 {
	return Lerp(outStart, outEnd, Clamp(FractionWithinRange(v, inStart, inEnd), 0, 1))
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// CubicBezier1D evaluates a one dimensional cubic bezier with control values
// a, b, c, d at t in [0, 1].
func CubicBezier1D(a, b, c, d, t float64) float64 {
	s := 1 - t
	return s*s*s*a + 3*s*s*t*b + 3*s*t*t*c + t*t*t*d
}

// FloatRange is an inclusive [Min, Max] interval.
type FloatRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

func (r FloatRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}
