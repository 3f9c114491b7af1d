package character

import (
	"math"

	"github.com/milk9111/parkour/common"
	"github.com/milk9111/parkour/input"
	"github.com/milk9111/parkour/movement"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// ControllerConfig tunes manual locomotion and the camera.
type ControllerConfig struct {
	// TurnRate is how fast, in radians per second, the character turns to
	// face the camera heading.
	TurnRate         float64 `yaml:"turn_rate"`
	WalkAcceleration float64 `yaml:"walk_acceleration"`
	RunAcceleration  float64 `yaml:"run_acceleration"`
	Friction         float64 `yaml:"friction"`
	WalkMaxSpeed     float64 `yaml:"walk_max_speed"`
	RunMaxSpeed      float64 `yaml:"run_max_speed"`
	// HeadBlockRange and FootBlockDistance stop manual motion into walls.
	HeadBlockRange    common.FloatRange `yaml:"head_block_range"`
	FootBlockDistance float64           `yaml:"foot_block_distance"`

	MouseSensitivity float64 `yaml:"mouse_sensitivity"`
	MaxPitch         float64 `yaml:"max_pitch"`
	CameraSpeed      float64 `yaml:"camera_speed"`
	CameraBoost      float64 `yaml:"camera_boost"`
}

func DefaultControllerConfig() ControllerConfig {
	return ControllerConfig{
		TurnRate:          50,
		WalkAcceleration:  10,
		RunAcceleration:   15,
		Friction:          5,
		WalkMaxSpeed:      2,
		RunMaxSpeed:       10,
		HeadBlockRange:    common.FloatRange{Min: 0, Max: 0.45},
		FootBlockDistance: 0.45,
		MouseSensitivity:  0.003,
		MaxPitch:          1.4,
		CameraSpeed:       2,
		CameraBoost:       5,
	}
}

// Probe is what manual locomotion asks the sensors before moving.
type Probe interface {
	IsHeadInRange(r common.FloatRange) bool
	IsFootInFront(dist float64) bool
	IsOnGround() bool
	IsGroundHit() bool
}

// Controller drives the character where root motion does not: idle, walk
// and run move under player control in follow mode, and the camera flies
// free in free-roam mode.
type Controller struct {
	cfg     ControllerConfig
	body    *Body
	machine *movement.Machine
	probe   Probe

	speed        float64
	pitch        float64
	cameraLocked bool
}

func NewController(cfg ControllerConfig, body *Body, machine *movement.Machine, probe Probe) *Controller {
	f := common.ForwardOf(body.Camera.Orientation)
	return &Controller{
		cfg:     cfg,
		body:    body,
		machine: machine,
		probe:   probe,
		pitch:   math.Atan2(f.Z, math.Hypot(f.X, f.Y)),
	}
}

func (c *Controller) Speed() float64 { return c.speed }

func (c *Controller) CameraLocked() bool { return c.cameraLocked }

// manual reports the movement kinds that move under player control.
func manual(k movement.Kind) bool {
	switch k.Name() {
	case movement.KindIdle.Name(), movement.KindWalk.Name(), movement.KindRun.Name():
		return true
	}
	return false
}

// Update runs one frame. dt is the character clock's step and cameraDt the
// camera clock's, both in seconds.
func (c *Controller) Update(keys input.Keys, dt, cameraDt float64) {
	free := c.body.FreeRoam()
	if free {
		c.roam(keys, cameraDt)
	}

	cur := c.machine.Current()
	if cur.Kind == movement.KindIdleDropToFreeHang {
		return
	}
	isManual := manual(cur.Kind)
	if !free && isManual {
		c.look(keys, false)
	}

	c.machine.UpdateRootMotion()
	if free || cur.ApplyRootMotion {
		return
	}

	heading := common.FromYaw(common.Yaw(c.body.Camera.Orientation))
	c.body.Character.Orientation = common.RotateTowards(c.body.Character.Orientation, heading, c.cfg.TurnRate*dt)

	if !isManual {
		c.speed = 0
		return
	}
	c.locomote(keys, dt)
}

func (c *Controller) blocked() bool {
	p := c.probe
	return p.IsHeadInRange(c.cfg.HeadBlockRange) ||
		p.IsFootInFront(c.cfg.FootBlockDistance) ||
		(!p.IsOnGround() && !p.IsGroundHit())
}

// locomote accelerates toward the held gait and moves the character and
// camera forward together.
func (c *Controller) locomote(keys input.Keys, dt float64) {
	cfg := c.cfg
	running := keys.Down(input.KeyW) && keys.Down(input.KeyShift)

	accel := 0.0
	switch {
	case running:
		accel = cfg.RunAcceleration
	case keys.Down(input.KeyW):
		accel = cfg.WalkAcceleration
	}
	limit := cfg.WalkMaxSpeed
	if running || c.speed > cfg.WalkMaxSpeed {
		limit = cfg.RunMaxSpeed
	}
	c.speed = common.Clamp(c.speed+(accel-cfg.Friction)*dt, 0, limit)

	if c.speed == 0 {
		return
	}
	if c.blocked() {
		c.speed = 0
		return
	}
	d := r3.Scale(c.speed*dt, c.body.Forward())
	c.body.Character.Position = r3.Add(c.body.Character.Position, d)
	c.body.Camera.Position = r3.Add(c.body.Camera.Position, d)
}

// look turns the camera with the mouse. Pitch only changes when withPitch
// is set.
func (c *Controller) look(keys input.Keys, withPitch bool) {
	dx, dy := keys.MouseDX, keys.MouseDY
	if dx == 0 && (!withPitch || dy == 0) {
		return
	}
	yaw := common.Yaw(c.body.Camera.Orientation) - dx*c.cfg.MouseSensitivity
	if withPitch {
		c.pitch = common.Clamp(c.pitch-dy*c.cfg.MouseSensitivity, -c.cfg.MaxPitch, c.cfg.MaxPitch)
	}
	// Positive rotation about the left axis tips forward downward.
	q := quat.Mul(common.FromYaw(yaw), common.AxisAngle(common.Left, -c.pitch))
	c.body.Camera.Orientation = common.Normalize(q)
}

// roam flies the detached camera. F5 locks it in place.
func (c *Controller) roam(keys input.Keys, dt float64) {
	if keys.JustPressed(input.KeyF5) {
		c.cameraLocked = !c.cameraLocked
	}
	if c.cameraLocked {
		return
	}
	c.look(keys, true)

	ori := c.body.Camera.Orientation
	fwd, left := common.ForwardOf(ori), common.LeftOf(ori)
	var v r3.Vec
	axis := func(pos, neg input.Key, dir r3.Vec) {
		if keys.Down(pos) {
			v = r3.Add(v, dir)
		}
		if keys.Down(neg) {
			v = r3.Sub(v, dir)
		}
	}
	axis(input.KeyW, input.KeyS, fwd)
	axis(input.KeyA, input.KeyD, left)
	axis(input.KeyE, input.KeyQ, common.Up)

	speed := c.cfg.CameraSpeed
	if keys.Down(input.KeyShift) {
		speed *= c.cfg.CameraBoost
	}
	c.body.Camera.Position = r3.Add(c.body.Camera.Position, r3.Scale(speed*dt, v))
}
