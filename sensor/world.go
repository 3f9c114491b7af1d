package sensor

import (
	"github.com/jakecoffman/cp"
	"gonum.org/v1/gonum/spatial/r3"
)

// Obstacle is an axis-aligned box standing on the ground plane.
type Obstacle struct {
	Name string `yaml:"name"`
	Min  r3.Vec `yaml:"min"`
	Max  r3.Vec `yaml:"max"`
}

// Height is the obstacle's top face.
func (o Obstacle) Height() float64 { return o.Max.Z }

// Contains reports whether p lies inside or on the box.
func (o Obstacle) Contains(p r3.Vec) bool {
	return p.X >= o.Min.X && p.X <= o.Max.X &&
		p.Y >= o.Min.Y && p.Y <= o.Max.Y &&
		p.Z >= o.Min.Z && p.Z <= o.Max.Z
}

// World indexes obstacles in a chipmunk space. Only the static index is used:
// it answers which boxes overlap a ray's ground footprint, and the exact 3D
// test runs on those candidates.
type World struct {
	space     *cp.Space
	obstacles []*Obstacle
	byShape   map[*cp.Shape]*Obstacle
}

func NewWorld(obstacles ...Obstacle) *World {
	w := &World{
		space:   cp.NewSpace(),
		byShape: make(map[*cp.Shape]*Obstacle),
	}
	for _, o := range obstacles {
		w.Add(o)
	}
	return w
}

// Add inserts an obstacle. Min and Max are reordered per axis if swapped.
func (w *World) Add(o Obstacle) {
	o.Min, o.Max = orderBox(o.Min, o.Max)
	ob := &o
	bb := cp.BB{L: o.Min.X, B: o.Min.Y, R: o.Max.X, T: o.Max.Y}
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	w.space.AddShape(shape)
	w.byShape[shape] = ob
	w.obstacles = append(w.obstacles, ob)
}

// Obstacles returns a copy of every obstacle in insertion order.
func (w *World) Obstacles() []Obstacle {
	out := make([]Obstacle, len(w.obstacles))
	for i, o := range w.obstacles {
		out[i] = *o
	}
	return out
}

func (w *World) Len() int { return len(w.obstacles) }

// candidates returns the obstacles whose ground footprint overlaps bb.
func (w *World) candidates(bb cp.BB) []*Obstacle {
	var out []*Obstacle
	w.space.BBQuery(bb, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		if o, ok := w.byShape[shape]; ok {
			out = append(out, o)
		}
	}, nil)
	return out
}

func orderBox(a, b r3.Vec) (r3.Vec, r3.Vec) {
	lo := r3.Vec{X: min(a.X, b.X), Y: min(a.Y, b.Y), Z: min(a.Z, b.Z)}
	hi := r3.Vec{X: max(a.X, b.X), Y: max(a.Y, b.Y), Z: max(a.Z, b.Z)}
	return lo, hi
}
