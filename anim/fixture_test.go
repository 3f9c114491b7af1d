package anim

import (
	"context"
	"testing"

	"github.com/milk9111/parkour/common"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// linearClip moves the root from the origin to end over durationMs.
func linearClip(name string, durationMs float64, end r3.Vec) *Clip {
	return &Clip{
		Name:       name,
		DurationMs: durationMs,
		Root: NewCurve(
			Keyframe{TimeMs: 0, Value: r3.Vec{}},
			Keyframe{TimeMs: durationMs / 2, Value: r3.Scale(0.5, end)},
			Keyframe{TimeMs: durationMs, Value: end},
		),
	}
}

func testDefs() []StateDef {
	return []StateDef{
		{
			Name: "idle",
			Clip: "idle.clip",
			Transitions: []Transition{
				{Name: "walk", Target: "walk", FadeMs: 250},
				{Name: "jump", Target: "jump", FadeMs: 125},
				{Name: "crouch", Target: "standToCrouch", FadeMs: 0},
			},
		},
		{
			Name: "walk",
			Clip: "walk.clip",
			Transitions: []Transition{
				{Name: "idle", Target: "idle", FadeMs: 250},
				{Name: "run", Target: "run", FadeMs: 125},
			},
			PopOut: &Transition{Target: "idle", FadeMs: 62.5},
		},
		{
			Name: "run",
			Clip: "run.clip",
			Transitions: []Transition{
				{Name: "walk", Target: "walk", FadeMs: 125},
			},
		},
		{
			Name: "jump",
			Clip: "jump.clip",
			Transitions: []Transition{
				{Name: "idle", Target: "idle", FadeMs: 125},
			},
		},
		{
			Name: "standToCrouch",
			Clip: "standToCrouch.clip",
			End:  &Transition{Target: "crouchedIdle"},
		},
		{
			Name: "crouchedIdle",
			Clip: "crouchedIdle.clip",
			Transitions: []Transition{
				{Name: "idle", Target: "idle", FadeMs: 125},
			},
		},
	}
}

func testClips() MapLoader {
	return MapLoader{
		"idle.clip":          linearClip("idle", 1000, r3.Vec{}),
		"walk.clip":          linearClip("walk", 1000, r3.Vec{X: 1.5}),
		"run.clip":           linearClip("run", 750, r3.Vec{X: 3}),
		"jump.clip":          linearClip("jump", 500, r3.Vec{X: 1, Z: 0.5}),
		"standToCrouch.clip": linearClip("standToCrouch", 250, r3.Vec{X: 0.25, Z: -0.5}),
		"crouchedIdle.clip":  linearClip("crouchedIdle", 1000, r3.Vec{}),
	}
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := NewRegistry(testDefs())
	require.NoError(t, err)
	require.NoError(t, reg.LoadClips(context.Background(), testClips()))
	t.Cleanup(reg.Close)
	return reg
}

type endRecorder struct {
	calls    int
	triggers []bool
}

func (r *endRecorder) NotifyEndOfAnimationState(trigger bool) {
	r.calls++
	r.triggers = append(r.triggers, trigger)
}

// newTestController returns a started controller and its clock. Each step
// ticks the clock by 15.625ms, which is exact in binary.
func newTestController(t *testing.T) (*Controller, *common.Clock) {
	t.Helper()
	clock := common.NewClock()
	c := NewController(newTestRegistry(t), clock)
	require.NoError(t, c.Startup())
	return c, clock
}

const stepSeconds = 0.015625

func step(c *Controller, clock *common.Clock, frames int) {
	for i := 0; i < frames; i++ {
		clock.Tick(stepSeconds)
		c.Update()
	}
}
