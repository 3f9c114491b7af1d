package sensor

import (
	"github.com/milk9111/parkour/common"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Config holds ray lengths and offsets.
type Config struct {
	FootRayLength     float64 `yaml:"foot_ray_length"`
	FootRayLift       float64 `yaml:"foot_ray_lift"`
	HeadRayLength     float64 `yaml:"head_ray_length"`
	ShoulderRayLength float64 `yaml:"shoulder_ray_length"`
	GroundRayLength   float64 `yaml:"ground_ray_length"`
	// GroundOffsets maps a movement state name to the ground probe's start
	// offset in character space. DefaultGroundOffset is used otherwise.
	GroundOffsets       map[string]r3.Vec `yaml:"ground_offsets"`
	DefaultGroundOffset r3.Vec            `yaml:"default_ground_offset"`
}

func DefaultConfig() Config {
	return Config{
		FootRayLength:     3,
		FootRayLift:       0.1,
		HeadRayLength:     3,
		ShoulderRayLength: 2,
		GroundRayLength:   1.5,
		GroundOffsets: map[string]r3.Vec{
			"walk": {X: 0.45, Z: -0.2},
			"run":  {X: 2, Z: -0.2},
		},
		DefaultGroundOffset: r3.Vec{X: 0.65, Z: -0.2},
	}
}

// Pose is what the sensors need to know about the character each frame.
type Pose struct {
	Position    r3.Vec
	Orientation quat.Number
	Height      float64
	// State is the current movement state name, used to pick the ground
	// probe offset.
	State string
}

// Sensors casts the character's probe rays and answers the predicates the
// movement states branch on.
type Sensors struct {
	world *World
	cfg   Config

	Foot          RaycastResult
	Head          RaycastResult
	LeftShoulder  RaycastResult
	RightShoulder RaycastResult
	Ground        RaycastResult

	latestObstacleHeight float64
	latestObstacleWidth  float64
}

func New(world *World, cfg Config) *Sensors {
	if world == nil {
		world = NewWorld()
	}
	return &Sensors{world: world, cfg: cfg}
}

func (s *Sensors) World() *World { return s.world }

// Update recasts every ray from the given pose.
func (s *Sensors) Update(p Pose) {
	fwd := common.ForwardOf(p.Orientation)

	s.Foot = s.world.Raycast(r3.Add(p.Position, r3.Vec{Z: s.cfg.FootRayLift}), fwd, s.cfg.FootRayLength)
	if s.Foot.DidImpact {
		s.latestObstacleWidth = s.Foot.ObstacleWidth
	}

	s.Head = s.world.Raycast(r3.Add(p.Position, r3.Vec{Z: p.Height}), fwd, s.cfg.HeadRayLength)
	if s.Head.DidImpact {
		s.latestObstacleHeight = s.Head.ObstacleHeight
	}

	left := common.LeftOf(p.Orientation)
	mid := p.Height * 0.5
	s.LeftShoulder = s.world.Raycast(r3.Add(p.Position, r3.Vec{X: left.X, Y: left.Y, Z: mid}), fwd, s.cfg.ShoulderRayLength)
	s.RightShoulder = s.world.Raycast(r3.Add(p.Position, r3.Vec{X: -left.X, Y: -left.Y, Z: mid}), fwd, s.cfg.ShoulderRayLength)

	offset, ok := s.cfg.GroundOffsets[p.State]
	if !ok {
		offset = s.cfg.DefaultGroundOffset
	}
	start := r3.Add(p.Position, common.Rotate(p.Orientation, offset))
	down := r3.Scale(-1, common.UpOf(p.Orientation))
	s.Ground = s.world.Raycast(start, down, s.cfg.GroundRayLength)
}

// IsFootInRange reports a foot hit whose distance falls inside r.
func (s *Sensors) IsFootInRange(r common.FloatRange) bool {
	return s.Foot.DidImpact && r.Contains(s.Foot.ImpactDist)
}

// IsFootInFront reports a foot hit no farther than dist.
func (s *Sensors) IsFootInFront(dist float64) bool {
	return s.Foot.DidImpact && s.Foot.ImpactDist <= dist
}

// FootDistance is the foot ray's impact distance, ok is false on a miss.
func (s *Sensors) FootDistance() (float64, bool) {
	return s.Foot.ImpactDist, s.Foot.DidImpact
}

func (s *Sensors) IsHeadBlocked() bool { return s.Head.DidImpact }

func (s *Sensors) IsHeadInRange(r common.FloatRange) bool {
	return s.Head.DidImpact && r.Contains(s.Head.ImpactDist)
}

func (s *Sensors) IsLeftShoulderHit() bool { return s.LeftShoulder.DidImpact }

func (s *Sensors) IsRightShoulderHit() bool { return s.RightShoulder.DidImpact }

func (s *Sensors) IsGroundHit() bool { return s.Ground.DidImpact }

// IsOnGround reports whether the ground probe starts at or below the floor.
// Obstacle tops do not count; standing on one relies on IsGroundHit.
func (s *Sensors) IsOnGround() bool { return s.Ground.RayStart.Z <= 0 }

// LatestObstacleHeight is the top of the last obstacle the head ray hit.
func (s *Sensors) LatestObstacleHeight() float64 { return s.latestObstacleHeight }

// LatestObstacleWidth is the depth of the last obstacle the foot ray crossed.
func (s *Sensors) LatestObstacleWidth() float64 { return s.latestObstacleWidth }
