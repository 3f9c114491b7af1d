package anim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestStateUpdateClampsAtEnd(t *testing.T) {
	tests := []struct {
		name   string
		deltas []float64
	}{
		{name: "one huge delta", deltas: []float64{1e9}},
		{name: "many large deltas", deltas: []float64{400, 900, 2000, 5000, 1e6}},
		{name: "exactly end", deltas: []float64{500, 500}},
		{name: "small steps past end", deltas: repeat(17, 70)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := newTestRegistry(t)
			s, err := reg.Lookup("walk")
			require.NoError(t, err)

			for _, d := range tt.deltas {
				s.Update(d)
				require.LessOrEqual(t, s.LocalTimeMs(), s.EndTimeMs())
			}
			assert.True(t, s.AtEnd())
			assert.Equal(t, s.EndTimeMs(), s.LocalTimeMs())
			assert.InDelta(t, 1, s.Node().Param(), 1e-12)
		})
	}
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestStateLoopFlagStillClamps(t *testing.T) {
	reg, err := NewRegistry([]StateDef{{Name: "idle", Clip: "idle"}})
	require.NoError(t, err)
	loop := linearClip("idle", 100, r3.Vec{X: 1})
	loop.Loop = true
	require.NoError(t, reg.LoadClips(t.Context(), MapLoader{"idle": loop}))

	s, _ := reg.Lookup("idle")
	s.Update(150)
	assert.Equal(t, 100.0, s.LocalTimeMs())
}

func TestStateTransitionLookup(t *testing.T) {
	reg := newTestRegistry(t)
	idle, err := reg.Lookup("idle")
	require.NoError(t, err)

	tr, err := idle.Transition("walk")
	require.NoError(t, err)
	assert.Equal(t, Transition{Name: "walk", Target: "walk", FadeMs: 250}, tr)

	_, err = idle.Transition("fly")
	assert.True(t, errors.Is(err, ErrNotFound))

	crouch, _ := reg.Lookup("standToCrouch")
	end, ok := crouch.EndTransition()
	require.True(t, ok)
	assert.Equal(t, EndTransitionName, end.Name)
	assert.Equal(t, "crouchedIdle", end.Target)

	walk, _ := reg.Lookup("walk")
	pop, ok := walk.PopOutTransition()
	require.True(t, ok)
	assert.Equal(t, PopOutTransitionName, pop.Name)
}

func TestStateNotReady(t *testing.T) {
	reg, err := NewRegistry(testDefs())
	require.NoError(t, err)
	s, _ := reg.Lookup("walk")

	assert.False(t, s.Ready())
	s.Update(100)
	assert.Zero(t, s.LocalTimeMs())
	assert.False(t, s.AtEnd())
	assert.True(t, s.RootMotion().Empty())
	assert.Nil(t, s.RootMotionRef())
}

func TestStateRootMotionCopyAndRef(t *testing.T) {
	reg := newTestRegistry(t)
	s, _ := reg.Lookup("walk")

	cp := s.RootMotion()
	cp.ZeroAxis(AxisX)
	assert.InDelta(t, 1.5, s.LastRootMotion().X, 1e-12)

	ref := s.RootMotionRef()
	ref.ZeroAxis(AxisX)
	assert.Zero(t, s.LastRootMotion().X)
}

func TestStateSourceRootMotionIgnoresInPlaceEdits(t *testing.T) {
	reg := newTestRegistry(t)
	s, _ := reg.Lookup("walk")

	s.RootMotionRef().ZeroAxis(AxisX)
	require.Zero(t, s.LastRootMotion().X)

	src := s.SourceRootMotion()
	assert.InDelta(t, 1.5, src.Last().X, 1e-12)

	src.ZeroAxis(AxisX)
	assert.InDelta(t, 1.5, s.SourceRootMotion().Last().X, 1e-12)
}
