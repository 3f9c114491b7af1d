package movement

import (
	"fmt"

	"github.com/milk9111/parkour/anim"
)

// Kind selects a movement behavior.
type Kind int

const (
	KindIdle Kind = iota
	KindWalk
	KindRun
	KindRunStop
	KindJump
	KindCrouch
	KindCrouchWalk
	KindRunningSlide
	KindVault
	KindClimbOver
	KindCrouchToStand
	KindWalkingEdgeSlip
	KindIdleToActionIdle
	KindIdleDropToFreeHang
	KindFreeHangToBracedHang
	KindLedgeGrab
	KindHangingIdle
	KindHangDrop
	KindShimmyLeft
	KindShimmyRight
	kindCount
)

type kindInfo struct {
	name  string
	state anim.StateID
}

var kinds = [kindCount]kindInfo{
	KindIdle:                 {"idle", anim.StateIdle},
	KindWalk:                 {"walk", anim.StateWalk},
	KindRun:                  {"run", anim.StateRun},
	KindRunStop:              {"runStop", anim.StateRunStop},
	KindJump:                 {"jump", anim.StateJump},
	KindCrouch:               {"crouch", anim.StateCrouch},
	KindCrouchWalk:           {"crouchWalk", anim.StateWalk},
	KindRunningSlide:         {"runningSlide", anim.StateRunningSlide},
	KindVault:                {"vault", anim.StateVault},
	KindClimbOver:            {"climbOver", anim.StateClimbOver},
	KindCrouchToStand:        {"crouchToStand", anim.StateCrouchToStand},
	KindWalkingEdgeSlip:      {"walkingEdgeSlip", anim.StateWalkingEdgeSlip},
	KindIdleToActionIdle:     {"idleToActionIdle", anim.StateIdleToActionIdle},
	KindIdleDropToFreeHang:   {"idleDropToFreeHang", anim.StateIdleDropToFreeHang},
	KindFreeHangToBracedHang: {"freeHangToBracedHang", anim.StateFreeHangToBracedHang},
	KindLedgeGrab:            {"ledgeGrab", anim.StateHang},
	KindHangingIdle:          {"hangingIdle", anim.StateHang},
	KindHangDrop:             {"hangDrop", anim.StateHangDrop},
	KindShimmyLeft:           {"shimmyLeft", anim.StateShimmyLeft},
	KindShimmyRight:          {"shimmyRight", anim.StateShimmyRight},
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kinds[k].name
}

// StateID is the transition the animation side is asked to follow when this
// kind becomes current. Several kinds share one.
func (k Kind) StateID() anim.StateID {
	if k < 0 || k >= kindCount {
		return anim.StateUnknown
	}
	return kinds[k].state
}

// Name is the animation-facing name, the same string StateID renders.
func (k Kind) Name() string { return k.StateID().String() }

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}
