package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestRangeMap(t *testing.T) {
	tests := []struct {
		name                    string
		v, inA, inB, outA, outB float64
		want                    float64
	}{
		{name: "identity", v: 0.5, inA: 0, inB: 1, outA: 0, outB: 1, want: 0.5},
		{name: "reversed output", v: 250, inA: 1000, inB: 0, outA: 0, outB: 1, want: 0.75},
		{name: "extrapolates", v: 2, inA: 0, inB: 1, outA: 0, outB: 10, want: 20},
		{name: "zero width input", v: 3, inA: 1, inB: 1, outA: 4, outB: 8, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RangeMap(tt.v, tt.inA, tt.inB, tt.outA, tt.outB), 1e-9)
		})
	}
}

func TestCubicBezier1DEndpoints(t *testing.T) {
	assert.InDelta(t, 0.0, CubicBezier1D(0, 0.7, 0.25, 1, 0), 1e-12)
	assert.InDelta(t, 1.0, CubicBezier1D(0, 0.7, 0.25, 1, 1), 1e-12)
	assert.InDelta(t, 0.7, CubicBezier1D(0.7, 1.6, 0, 0, 0), 1e-12)
	assert.InDelta(t, 0.0, CubicBezier1D(0.7, 1.6, 0, 0, 1), 1e-12)
}

func TestRotate(t *testing.T) {
	q := FromYaw(math.Pi / 2)
	got := Rotate(q, r3.Vec{X: 1})
	assert.InDelta(t, 0, got.X, 1e-9)
	assert.InDelta(t, 1, got.Y, 1e-9)
	assert.InDelta(t, 0, got.Z, 1e-9)

	back := Rotate(AxisAngle(Up, math.Pi), r3.Vec{X: 2, Y: 1})
	assert.InDelta(t, -2, back.X, 1e-9)
	assert.InDelta(t, -1, back.Y, 1e-9)
}

func TestRotateTowardsLimitsStep(t *testing.T) {
	from := FromYaw(0)
	to := FromYaw(math.Pi / 2)

	step := RotateTowards(from, to, 0.1)
	assert.InDelta(t, 0.1, Yaw(step), 1e-6)

	assert.InDelta(t, math.Pi/2, Yaw(RotateTowards(from, to, 10)), 1e-9)
}

func TestClockPauseAndChildren(t *testing.T) {
	root := NewClock()
	anim := NewChildClock(root)
	char := NewChildClock(root)

	root.Tick(0.016)
	assert.InDelta(t, 16, anim.DeltaMs(), 1e-9)
	assert.InDelta(t, 16, char.DeltaMs(), 1e-9)

	anim.Pause()
	root.Tick(0.016)
	assert.Zero(t, anim.DeltaMs())
	assert.InDelta(t, 16, char.DeltaMs(), 1e-9)

	anim.StepSingleFrame()
	root.Tick(0.010)
	assert.InDelta(t, 10, anim.DeltaMs(), 1e-9)
	assert.True(t, anim.IsPaused())

	char.SetTimeScale(2)
	root.Tick(0.010)
	assert.InDelta(t, 20, char.DeltaMs(), 1e-9)
	assert.InDelta(t, 0.062, char.TotalSeconds(), 1e-9)
}
