package movement

import (
	"log"

	"github.com/milk9111/parkour/anim"
	"github.com/milk9111/parkour/common"
	"github.com/milk9111/parkour/input"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Animator is the part of the animation controller movement reads and drives.
type Animator interface {
	Current() *anim.State
	LocalTimeMs() float64
	AtEnd() bool
	RootMotion() anim.Curve
	Lookup(name string) (*anim.State, error)
	RequestTransition(id anim.StateID)
}

// Body owns the character and camera transforms.
type Body interface {
	CharacterPosition() r3.Vec
	SetCharacterPosition(r3.Vec)
	CharacterOrientation() quat.Number
	SetCharacterOrientation(quat.Number)
	CameraPosition() r3.Vec
	SetCameraPosition(r3.Vec)
	CameraOrientation() quat.Number
	SetCameraOrientation(quat.Number)
	RotateTowardsCharacterOrientation(v r3.Vec) r3.Vec
	// FreeRoam reports whether the camera is detached from the character.
	FreeRoam() bool
}

// Sensors answers the obstacle queries transition rules branch on.
type Sensors interface {
	IsFootInRange(r common.FloatRange) bool
	FootDistance() (float64, bool)
	IsHeadBlocked() bool
	IsHeadInRange(r common.FloatRange) bool
	IsLeftShoulderHit() bool
	IsRightShoulderHit() bool
	IsGroundHit() bool
	IsOnGround() bool
	LatestObstacleHeight() float64
	LatestObstacleWidth() float64
}

// Context carries every collaborator a movement update needs. Keys is
// replaced each frame by the owner.
type Context struct {
	Anim    Animator
	Body    Body
	Sensors Sensors
	Keys    input.Keys
	// Clock is the character clock that advances root-motion sampling.
	Clock  *common.Clock
	Tuning Tuning
}

func (ctx *Context) deltaMs() float64 {
	if ctx.Clock == nil {
		return 0
	}
	return ctx.Clock.DeltaMs()
}

func (ctx *Context) state(name string) *anim.State {
	s, err := ctx.Anim.Lookup(name)
	if err != nil {
		return nil
	}
	return s
}

// Animation states whose curves the rules edit but that no StateID names.
const (
	animStandToCrouch   = "standToCrouch"
	animCrouchedIdle    = "crouchedIdle"
	animIdleToLedgeGrab = "idleToLedgeGrab"
	animHangToIdle      = "hangToIdle"
)

// curve returns a private copy of a registry state's root motion.
func (ctx *Context) curve(name string) anim.Curve {
	if s := ctx.state(name); s != nil {
		return s.RootMotion()
	}
	return anim.Curve{}
}

// shared returns a registry state's own root motion for in-place edits. It
// returns an empty scratch curve when the state is missing or not ready.
func (ctx *Context) shared(name string) *anim.Curve {
	if s := ctx.state(name); s != nil {
		if c := s.RootMotionRef(); c != nil {
			return c
		}
		log.Printf("movement: %s has no clip yet", name)
	}
	return &anim.Curve{}
}

// source returns a copy of a registry state's root motion as loaded.
func (ctx *Context) source(name string) anim.Curve {
	if s := ctx.state(name); s != nil {
		return s.SourceRootMotion()
	}
	return anim.Curve{}
}

func (ctx *Context) first(name string) r3.Vec {
	if s := ctx.state(name); s != nil {
		return s.FirstRootMotion()
	}
	return r3.Vec{}
}

func (ctx *Context) last(name string) r3.Vec {
	if s := ctx.state(name); s != nil {
		return s.LastRootMotion()
	}
	return r3.Vec{}
}

func (ctx *Context) rotate(v r3.Vec) r3.Vec {
	return ctx.Body.RotateTowardsCharacterOrientation(v)
}

func (ctx *Context) moveCharacter(d r3.Vec) {
	ctx.Body.SetCharacterPosition(r3.Add(ctx.Body.CharacterPosition(), d))
}

// logEdit reports a retarget edit that was refused.
func logEdit(k Kind, err error) {
	if err != nil {
		log.Printf("movement: %s: %v", k, err)
	}
}
