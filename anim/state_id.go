package anim

import "fmt"

// StateID names a transition request shared by the movement and animation
// layers. The string form is the transition name looked up on the current
// animation state, and for most ids also the animation state name.
type StateID int

const (
	StateUnknown StateID = iota
	StateIdle
	StateWalk
	StateRun
	StateRunStop
	StateJump
	StateCrouch
	StateRunningSlide
	StateVault
	StateClimbOver
	StateCrouchToStand
	StateWalkingEdgeSlip
	StateIdleToActionIdle
	StateIdleDropToFreeHang
	StateFreeHangToBracedHang
	StateHang
	StateHangDrop
	StateShimmyLeft
	StateShimmyRight
	stateCount
)

var stateNames = [...]string{
	StateUnknown:              "unknown",
	StateIdle:                 "idle",
	StateWalk:                 "walk",
	StateRun:                  "run",
	StateRunStop:              "runStop",
	StateJump:                 "jump",
	StateCrouch:               "crouch",
	StateRunningSlide:         "runningSlide",
	StateVault:                "vault",
	StateClimbOver:            "climbOver",
	StateCrouchToStand:        "crouchToStand",
	StateWalkingEdgeSlip:      "walkingEdgeSlip",
	StateIdleToActionIdle:     "idleToActionIdle",
	StateIdleDropToFreeHang:   "idleDropToFreeHang",
	StateFreeHangToBracedHang: "freeHangToBracedHang",
	StateHang:                 "hang",
	StateHangDrop:             "hangDrop",
	StateShimmyLeft:           "shimmyLeft",
	StateShimmyRight:          "shimmyRight",
}

func (s StateID) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("StateID(%d)", int(s))
	}
	return stateNames[s]
}

// Valid reports whether s is a known, non-zero id.
func (s StateID) Valid() bool {
	return s > StateUnknown && s < stateCount
}

// ParseStateID maps a transition name back to its id.
func ParseStateID(name string) (StateID, error) {
	for i, n := range stateNames {
		if StateID(i) != StateUnknown && n == name {
			return StateID(i), nil
		}
	}
	return StateUnknown, fmt.Errorf("anim: state id %q: %w", name, ErrNotFound)
}

// StateIDs lists every valid id in declaration order.
func StateIDs() []StateID {
	ids := make([]StateID, 0, int(stateCount)-1)
	for id := StateUnknown + 1; id < stateCount; id++ {
		ids = append(ids, id)
	}
	return ids
}
