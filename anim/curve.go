package anim

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// Axis selects one component of a keyframe value.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

func (a Axis) Of(v r3.Vec) float64 {
	switch a {
	case AxisY:
		return v.Y
	case AxisZ:
		return v.Z
	default:
		return v.X
	}
}

func (a Axis) set(v *r3.Vec, f float64) {
	switch a {
	case AxisY:
		v.Y = f
	case AxisZ:
		v.Z = f
	default:
		v.X = f
	}
}

type Keyframe struct {
	TimeMs float64
	Value  r3.Vec
}

// Curve is a time-ordered list of vector keyframes. It is a value type: the
// zero Curve is empty, and Clone is needed before editing a shared copy.
type Curve struct {
	Keys []Keyframe
}

// NewCurve copies keys into a curve sorted by time.
func NewCurve(keys ...Keyframe) Curve {
	c := Curve{Keys: append([]Keyframe(nil), keys...)}
	sort.SliceStable(c.Keys, func(i, j int) bool { return c.Keys[i].TimeMs < c.Keys[j].TimeMs })
	return c
}

func (c Curve) Len() int { return len(c.Keys) }

func (c Curve) Empty() bool { return len(c.Keys) == 0 }

func (c Curve) Clone() Curve {
	if c.Keys == nil {
		return Curve{}
	}
	return Curve{Keys: append([]Keyframe(nil), c.Keys...)}
}

func (c Curve) StartTimeMs() float64 {
	if c.Empty() {
		return 0
	}
	return c.Keys[0].TimeMs
}

func (c Curve) EndTimeMs() float64 {
	if c.Empty() {
		return 0
	}
	return c.Keys[len(c.Keys)-1].TimeMs
}

// First returns the first keyframe value, or the zero vector.
func (c Curve) First() r3.Vec {
	if c.Empty() {
		return r3.Vec{}
	}
	return c.Keys[0].Value
}

// Last returns the last keyframe value, or the zero vector.
func (c Curve) Last() r3.Vec {
	if c.Empty() {
		return r3.Vec{}
	}
	return c.Keys[len(c.Keys)-1].Value
}

// Delta is Last minus First.
func (c Curve) Delta() r3.Vec {
	return r3.Sub(c.Last(), c.First())
}

// Sample linearly interpolates the curve at timeMs. Times outside the curve
// clamp to the first or last keyframe; there is no extrapolation or looping.
func (c Curve) Sample(timeMs float64) r3.Vec {
	n := len(c.Keys)
	switch {
	case n == 0:
		return r3.Vec{}
	case timeMs <= c.Keys[0].TimeMs:
		return c.Keys[0].Value
	case timeMs >= c.Keys[n-1].TimeMs:
		return c.Keys[n-1].Value
	}

	i := c.IndexAtTime(timeMs)
	a, b := c.Keys[i], c.Keys[i+1]
	span := b.TimeMs - a.TimeMs
	if span <= 0 {
		return b.Value
	}
	t := (timeMs - a.TimeMs) / span
	return r3.Add(a.Value, r3.Scale(t, r3.Sub(b.Value, a.Value)))
}

// IndexAtTime returns the index of the last keyframe at or before timeMs,
// clamped to the valid index range. It returns -1 for an empty curve.
func (c Curve) IndexAtTime(timeMs float64) int {
	n := len(c.Keys)
	if n == 0 {
		return -1
	}
	i := sort.Search(n, func(i int) bool { return c.Keys[i].TimeMs > timeMs }) - 1
	if i < 0 {
		return 0
	}
	return i
}

// Values returns one axis of every keyframe.
func (c Curve) Values(a Axis) []float64 {
	vs := make([]float64, len(c.Keys))
	for i, k := range c.Keys {
		vs[i] = a.Of(k.Value)
	}
	return vs
}

// AxisRange returns the minimum and maximum of one axis. ok is false for an
// empty curve.
func (c Curve) AxisRange(a Axis) (lo, hi float64, ok bool) {
	if c.Empty() {
		return 0, 0, false
	}
	vs := c.Values(a)
	return floats.Min(vs), floats.Max(vs), true
}
