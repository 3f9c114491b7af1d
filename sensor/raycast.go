package sensor

import (
	"math"

	"github.com/jakecoffman/cp"
	"gonum.org/v1/gonum/spatial/r3"
)

// RaycastResult describes one ray query. The ray fields are kept on a miss so
// debug rendering can draw it.
type RaycastResult struct {
	DidImpact    bool
	ImpactDist   float64
	ImpactPos    r3.Vec
	RayStart     r3.Vec
	RayFwd       r3.Vec
	RayMaxLength float64

	// ObstacleHeight is the top face of the obstacle that was hit.
	ObstacleHeight float64
	// ObstacleWidth is how far the ray travels inside the obstacle.
	ObstacleWidth float64
}

// Raycast returns the closest obstacle hit along dir within maxLength. A ray
// that starts inside an obstacle hits it at distance zero.
func (w *World) Raycast(start, dir r3.Vec, maxLength float64) RaycastResult {
	res := RaycastResult{RayStart: start, RayMaxLength: maxLength}
	n := r3.Norm(dir)
	if n == 0 || maxLength <= 0 {
		return res
	}
	fwd := r3.Scale(1/n, dir)
	res.RayFwd = fwd

	end := r3.Add(start, r3.Scale(maxLength, fwd))
	bb := cp.BB{
		L: math.Min(start.X, end.X),
		B: math.Min(start.Y, end.Y),
		R: math.Max(start.X, end.X),
		T: math.Max(start.Y, end.Y),
	}

	best := math.Inf(1)
	for _, o := range w.candidates(bb) {
		entry, exit, ok := rayBoxHit(start, fwd, o.Min, o.Max)
		if !ok || entry > maxLength || entry >= best {
			continue
		}
		best = entry
		res.DidImpact = true
		res.ImpactDist = entry
		res.ImpactPos = r3.Add(start, r3.Scale(entry, fwd))
		res.ObstacleHeight = o.Height()
		res.ObstacleWidth = exit - entry
	}
	return res
}

// rayBoxHit is a slab test against an axis-aligned box. entry and exit are
// distances along the unit direction d; entry is clamped at zero.
func rayBoxHit(p, d, lo, hi r3.Vec) (entry, exit float64, ok bool) {
	tmin := 0.0
	tmax := math.Inf(1)

	axes := [3][4]float64{
		{p.X, d.X, lo.X, hi.X},
		{p.Y, d.Y, lo.Y, hi.Y},
		{p.Z, d.Z, lo.Z, hi.Z},
	}
	for _, a := range axes {
		p0, dd, minV, maxV := a[0], a[1], a[2], a[3]
		if dd != 0 {
			invD := 1.0 / dd
			t1 := (minV - p0) * invD
			t2 := (maxV - p0) * invD
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			tmin = math.Max(tmin, t1)
			tmax = math.Min(tmax, t2)
		} else if p0 < minV || p0 > maxV {
			return 0, 0, false
		}
	}

	if tmax >= tmin {
		return tmin, tmax, true
	}
	return 0, 0, false
}
