package sensor

import (
	"math"
	"testing"

	"github.com/milk9111/parkour/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

var vaultBox = Obstacle{Name: "vault", Min: r3.Vec{X: 5, Y: -1}, Max: r3.Vec{X: 6.5, Y: 1, Z: 1.4}}

func TestRaycast(t *testing.T) {
	tests := []struct {
		name      string
		start     r3.Vec
		dir       r3.Vec
		length    float64
		wantHit   bool
		wantDist  float64
		wantWidth float64
	}{
		{name: "hit", start: r3.Vec{X: 2.5, Z: 0.1}, dir: r3.Vec{X: 1}, length: 3, wantHit: true, wantDist: 2.5, wantWidth: 1.5},
		{name: "short", start: r3.Vec{Z: 0.1}, dir: r3.Vec{X: 1}, length: 3},
		{name: "over the top", start: r3.Vec{X: 2.5, Z: 2}, dir: r3.Vec{X: 1}, length: 3},
		{name: "unnormalized direction", start: r3.Vec{X: 2.5, Z: 0.1}, dir: r3.Vec{X: 10}, length: 3, wantHit: true, wantDist: 2.5, wantWidth: 1.5},
		{name: "starts inside", start: r3.Vec{X: 5.5, Z: 0.5}, dir: r3.Vec{X: 1}, length: 3, wantHit: true, wantDist: 0, wantWidth: 1},
		{name: "pointing away", start: r3.Vec{X: 2.5, Z: 0.1}, dir: r3.Vec{X: -1}, length: 3},
		{name: "zero direction", start: r3.Vec{X: 2.5, Z: 0.1}, length: 3},
		{name: "downward onto top", start: r3.Vec{X: 6, Z: 2}, dir: r3.Vec{Z: -1}, length: 1.5, wantHit: true, wantDist: 0.6, wantWidth: 1.4},
	}

	w := NewWorld(vaultBox)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := w.Raycast(tt.start, tt.dir, tt.length)
			require.Equal(t, tt.wantHit, res.DidImpact)
			assert.Equal(t, tt.start, res.RayStart)
			assert.Equal(t, tt.length, res.RayMaxLength)
			if !tt.wantHit {
				return
			}
			assert.InDelta(t, tt.wantDist, res.ImpactDist, 1e-9)
			assert.InDelta(t, tt.wantWidth, res.ObstacleWidth, 1e-9)
			assert.InDelta(t, 1.4, res.ObstacleHeight, 1e-9)
		})
	}
}

func TestRaycastPicksClosest(t *testing.T) {
	far := Obstacle{Name: "far", Min: r3.Vec{X: 8, Y: -1}, Max: r3.Vec{X: 9, Y: 1, Z: 4}}
	w := NewWorld(far, vaultBox)

	res := w.Raycast(r3.Vec{Z: 0.1}, r3.Vec{X: 1}, 20)
	require.True(t, res.DidImpact)
	assert.InDelta(t, 5, res.ImpactDist, 1e-9)
	assert.InDelta(t, 1.4, res.ObstacleHeight, 1e-9)
}

func TestWorldReordersSwappedCorners(t *testing.T) {
	w := NewWorld(Obstacle{Min: r3.Vec{X: 2, Y: 1, Z: 3}, Max: r3.Vec{X: 1, Y: -1}})
	got := w.Obstacles()
	require.Len(t, got, 1)
	assert.Equal(t, r3.Vec{X: 1, Y: -1}, got[0].Min)
	assert.Equal(t, r3.Vec{X: 2, Y: 1, Z: 3}, got[0].Max)
	assert.True(t, got[0].Contains(r3.Vec{X: 1.5, Z: 1}))
}

func TestSensorsFootAndHead(t *testing.T) {
	s := New(NewWorld(vaultBox), DefaultConfig())
	s.Update(Pose{Position: r3.Vec{X: 2.5}, Orientation: common.IdentityOrientation, Height: 2})

	assert.True(t, s.IsFootInRange(common.FloatRange{Min: 2, Max: 3}))
	assert.False(t, s.IsFootInRange(common.FloatRange{Min: 0, Max: 2}))
	assert.True(t, s.IsFootInFront(2.5))
	assert.False(t, s.IsHeadBlocked())
	assert.InDelta(t, 1.5, s.LatestObstacleWidth(), 1e-9)

	// Missing the foot ray keeps the last measured width.
	s.Update(Pose{Position: r3.Vec{X: -10}, Orientation: common.IdentityOrientation, Height: 2})
	assert.False(t, s.IsFootInRange(common.FloatRange{Min: 0, Max: 3}))
	assert.InDelta(t, 1.5, s.LatestObstacleWidth(), 1e-9)
}

func TestSensorsLedgeHeight(t *testing.T) {
	ledge := Obstacle{Min: r3.Vec{X: 1, Y: -5}, Max: r3.Vec{X: 10, Y: 5, Z: 3.25}}
	s := New(NewWorld(ledge), DefaultConfig())
	s.Update(Pose{Position: r3.Vec{X: 0.5}, Orientation: common.IdentityOrientation, Height: 2})

	require.True(t, s.IsHeadBlocked())
	assert.True(t, s.IsHeadInRange(common.FloatRange{Min: 0, Max: 0.6}))
	assert.InDelta(t, 3.25, s.LatestObstacleHeight(), 1e-9)
}

func TestSensorsShoulders(t *testing.T) {
	wall := Obstacle{Min: r3.Vec{X: 1, Y: 0.5}, Max: r3.Vec{X: 2, Y: 2, Z: 5}}
	s := New(NewWorld(wall), DefaultConfig())
	s.Update(Pose{Orientation: common.IdentityOrientation, Height: 2})

	assert.True(t, s.IsLeftShoulderHit())
	assert.False(t, s.IsRightShoulderHit())
}

func TestSensorsFollowYaw(t *testing.T) {
	box := Obstacle{Min: r3.Vec{X: -1, Y: 2}, Max: r3.Vec{X: 1, Y: 3, Z: 1}}
	s := New(NewWorld(box), DefaultConfig())
	s.Update(Pose{Orientation: common.FromYaw(math.Pi / 2), Height: 2})

	require.True(t, s.Foot.DidImpact)
	assert.InDelta(t, 2, s.Foot.ImpactDist, 1e-9)
}

func TestSensorsGround(t *testing.T) {
	s := New(NewWorld(vaultBox), DefaultConfig())

	t.Run("on floor", func(t *testing.T) {
		s.Update(Pose{Orientation: common.IdentityOrientation, Height: 2})
		assert.True(t, s.IsOnGround())
		assert.False(t, s.IsGroundHit())
	})

	t.Run("on top of box", func(t *testing.T) {
		s.Update(Pose{Position: r3.Vec{X: 5.2, Z: 1.4}, Orientation: common.IdentityOrientation, Height: 2, State: "walk"})
		assert.False(t, s.IsOnGround())
		assert.True(t, s.IsGroundHit())
	})

	t.Run("past the edge", func(t *testing.T) {
		s.Update(Pose{Position: r3.Vec{X: 6.3, Z: 1.4}, Orientation: common.IdentityOrientation, Height: 2, State: "walk"})
		assert.False(t, s.IsOnGround())
		assert.False(t, s.IsGroundHit())
	})

	t.Run("run probes farther ahead", func(t *testing.T) {
		s.Update(Pose{Position: r3.Vec{X: 5.2, Z: 1.4}, Orientation: common.IdentityOrientation, Height: 2, State: "run"})
		assert.False(t, s.IsGroundHit())
	})
}
