package anim

import (
	"fmt"
	"math"

	"github.com/milk9111/parkour/common"
	"gonum.org/v1/gonum/floats/scalar"
)

// Edits below only rewrite keyframe values on one axis. Keyframe count and
// times never change. An edit that returns ErrDegenerate leaves the curve as
// it was.

const extentEpsilon = 1e-6

func nearlyEqual(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, extentEpsilon)
}

func degenerate(op string, a Axis, why string) error {
	return fmt.Errorf("anim: %s %s: %s: %w", op, a, why, ErrDegenerate)
}

func (c *Curve) apply(a Axis, f func(i int, v float64) float64) {
	for i := range c.Keys {
		a.set(&c.Keys[i].Value, f(i, a.Of(c.Keys[i].Value)))
	}
}

// SetAxis overwrites one axis of every keyframe with v.
func (c *Curve) SetAxis(a Axis, v float64) {
	c.apply(a, func(int, float64) float64 { return v })
}

func (c *Curve) ZeroAxis(a Axis) { c.SetAxis(a, 0) }

// FlattenAxis holds one axis at the first keyframe's value.
func (c *Curve) FlattenAxis(a Axis) {
	if c.Empty() {
		return
	}
	c.SetAxis(a, a.Of(c.First()))
}

func (c *Curve) ShiftAxis(a Axis, d float64) {
	c.apply(a, func(_ int, v float64) float64 { return v + d })
}

func (c *Curve) ScaleAxis(a Axis, f float64) {
	c.apply(a, func(_ int, v float64) float64 { return v * f })
}

// Normalize maps one axis from its [min, max] onto [0, 1].
func (c *Curve) Normalize(a Axis) error {
	lo, hi, ok := c.AxisRange(a)
	if !ok {
		return degenerate("normalize", a, "empty curve")
	}
	if nearlyEqual(lo, hi) {
		return degenerate("normalize", a, "zero extent")
	}
	c.apply(a, func(_ int, v float64) float64 { return (v - lo) / (hi - lo) })
	return nil
}

// RescaleExtent divides one axis by its extent and multiplies by extent,
// keeping the axis origin in place.
func (c *Curve) RescaleExtent(a Axis, extent float64) error {
	lo, hi, ok := c.AxisRange(a)
	if !ok {
		return degenerate("rescale", a, "empty curve")
	}
	if nearlyEqual(lo, hi) {
		return degenerate("rescale", a, "zero extent")
	}
	c.ScaleAxis(a, extent/(hi-lo))
	return nil
}

// Remap maps one axis linearly from [fromStart, fromEnd] onto [toStart, toEnd].
func (c *Curve) Remap(a Axis, fromStart, fromEnd, toStart, toEnd float64) error {
	if c.Empty() {
		return degenerate("remap", a, "empty curve")
	}
	if nearlyEqual(fromStart, fromEnd) {
		return degenerate("remap", a, "zero source range")
	}
	c.apply(a, func(_ int, v float64) float64 {
		return common.RangeMap(v, fromStart, fromEnd, toStart, toEnd)
	})
	return nil
}

// RemapEnds remaps so the first keyframe lands on toStart and the last on toEnd.
func (c *Curve) RemapEnds(a Axis, toStart, toEnd float64) error {
	if c.Empty() {
		return degenerate("remap ends", a, "empty curve")
	}
	return c.Remap(a, a.Of(c.First()), a.Of(c.Last()), toStart, toEnd)
}

// RemapRange remaps so the axis minimum lands on toMin and the maximum on toMax.
func (c *Curve) RemapRange(a Axis, toMin, toMax float64) error {
	lo, hi, ok := c.AxisRange(a)
	if !ok {
		return degenerate("remap range", a, "empty curve")
	}
	return c.Remap(a, lo, hi, toMin, toMax)
}

// StartAxisAt shifts one axis so the first keyframe equals v.
func (c *Curve) StartAxisAt(a Axis, v float64) error {
	if c.Empty() {
		return degenerate("start at", a, "empty curve")
	}
	c.ShiftAxis(a, v-a.Of(c.First()))
	return nil
}

// EndAxisAt shifts one axis so the last keyframe equals v.
func (c *Curve) EndAxisAt(a Axis, v float64) error {
	if c.Empty() {
		return degenerate("end at", a, "empty curve")
	}
	c.ShiftAxis(a, v-a.Of(c.Last()))
	return nil
}

// ScaleToEndLength scales one axis so the last keyframe's magnitude on that
// axis equals length. The sign of every value is kept.
func (c *Curve) ScaleToEndLength(a Axis, length float64) error {
	if c.Empty() {
		return degenerate("scale to length", a, "empty curve")
	}
	last := math.Abs(a.Of(c.Last()))
	if last < extentEpsilon {
		return degenerate("scale to length", a, "zero end value")
	}
	c.ScaleAxis(a, length/last)
	return nil
}

// RelerpSegment splits the curve into three time segments at startFrac and
// endFrac of its end time. Values in the middle segment are re-lerped from
// [oldStart, oldEnd] onto [oldStart, newEnd]; the tail segment is shifted by
// newEnd-oldEnd so it continues from the new segment end.
func (c *Curve) RelerpSegment(a Axis, startFrac, endFrac, newEnd float64) error {
	si, ei, err := c.segment(a, startFrac, endFrac)
	if err != nil {
		return err
	}
	oldStart := a.Of(c.Keys[si].Value)
	oldEnd := a.Of(c.Keys[ei].Value)
	if nearlyEqual(oldStart, oldEnd) {
		return degenerate("relerp segment", a, "flat middle segment")
	}

	pad := newEnd - oldEnd
	c.apply(a, func(i int, v float64) float64 {
		switch {
		case i < si:
			return v
		case i <= ei:
			return common.Lerp(oldStart, newEnd, common.FractionWithinRange(v, oldStart, oldEnd))
		default:
			return v + pad
		}
	})
	return nil
}

// FitSegmentTravel re-lerps the middle segment so that the whole curve moves
// exactly travel along the axis from its first to its last keyframe.
func (c *Curve) FitSegmentTravel(a Axis, startFrac, endFrac, travel float64) error {
	_, ei, err := c.segment(a, startFrac, endFrac)
	if err != nil {
		return err
	}
	tail := a.Of(c.Last()) - a.Of(c.Keys[ei].Value)
	newEnd := a.Of(c.First()) + travel - tail
	return c.RelerpSegment(a, startFrac, endFrac, newEnd)
}

func (c *Curve) segment(a Axis, startFrac, endFrac float64) (int, int, error) {
	if c.Empty() {
		return 0, 0, degenerate("segment", a, "empty curve")
	}
	end := c.EndTimeMs()
	si := c.IndexAtTime(end * startFrac)
	ei := c.IndexAtTime(end * endFrac)
	if si >= ei {
		return 0, 0, degenerate("segment", a, "middle segment has no span")
	}
	return si, ei, nil
}

// Arc reshapes a curve axis into an ease-in rise followed by a cubic bezier
// arc, expressed in parametric time over the curve's duration.
type Arc struct {
	// LinearEnd is the parametric end of the ease-in segment, which starts at 0.
	LinearEnd float64 `yaml:"linear_end"`
	// CubicEnd is the parametric end of the arc segment, which starts at LinearEnd.
	CubicEnd float64 `yaml:"cubic_end"`
	// Start is the value at parametric 0.
	Start float64 `yaml:"start"`
	// LinearRise is added to Start across the ease-in segment.
	LinearRise float64 `yaml:"linear_rise"`
	// PeakRise lifts the arc's top above the ease-in end.
	PeakRise float64    `yaml:"peak_rise"`
	EaseIn   [4]float64 `yaml:"ease_in"`
	Bezier   [4]float64 `yaml:"bezier"`
}

// SpliceArc rewrites one axis of the keyframes that fall inside the arc's two
// segments. Keyframes after CubicEnd keep their values. The arc segment lands
// on the value the unedited curve had at CubicEnd.
func (c *Curve) SpliceArc(a Axis, arc Arc) error {
	if c.Empty() {
		return degenerate("splice arc", a, "empty curve")
	}
	end := c.EndTimeMs()
	if end <= 0 {
		return degenerate("splice arc", a, "zero duration")
	}
	if arc.LinearEnd <= 0 || arc.CubicEnd <= arc.LinearEnd {
		return degenerate("splice arc", a, "empty segment")
	}

	linearEndValue := arc.Start + arc.LinearRise
	cubicEndValue := a.Of(c.Sample(end * arc.CubicEnd))
	peak := linearEndValue + arc.PeakRise

	c.apply(a, func(i int, v float64) float64 {
		p := c.Keys[i].TimeMs / end
		if p >= 0 && p <= arc.LinearEnd {
			t := common.FractionWithinRange(p, 0, arc.LinearEnd)
			e := arc.EaseIn
			v = common.Lerp(arc.Start, linearEndValue, common.CubicBezier1D(e[0], e[1], e[2], e[3], t))
		}
		if p >= arc.LinearEnd && p <= arc.CubicEnd {
			t := common.FractionWithinRange(p, arc.LinearEnd, arc.CubicEnd)
			b := arc.Bezier
			v = common.Lerp(cubicEndValue, peak, common.CubicBezier1D(b[0], b[1], b[2], b[3], t))
		}
		return v
	})
	return nil
}
