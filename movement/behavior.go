package movement

// behavior is one row of the dispatch table. enter runs once when a State
// is built; transition runs every frame and returns the successor or nil;
// onEnd runs each frame the current animation sits at its end.
type behavior struct {
	enter      func(ctx *Context, s *State)
	transition func(ctx *Context, s *State) *State
	onEnd      func(ctx *Context, s *State, trigger bool)
}

// behaviors is filled in init because its rows construct successors through
// Enter, which reads the table.
var behaviors [kindCount]behavior

func init() {
	behaviors = [kindCount]behavior{
		KindIdle:                 {enter: enterIdle, transition: idleTransition},
		KindWalk:                 {enter: enterWalk, transition: walkTransition},
		KindRun:                  {enter: enterRun, transition: runTransition},
		KindRunStop:              {enter: enterRunStop, transition: runStopTransition},
		KindJump:                 {enter: enterJump, transition: exitAtEndByInput},
		KindCrouch:               {enter: enterCrouch, transition: crouchTransition},
		KindCrouchWalk:           {enter: enterCrouchWalk, transition: crouchWalkTransition},
		KindRunningSlide:         {enter: enterRunningSlide, transition: runningSlideTransition},
		KindVault:                {enter: enterVault, transition: exitAtEndByInput},
		KindClimbOver:            {enter: enterClimbOver, transition: lerpCameraUntilNext, onEnd: climbOverEnd},
		KindCrouchToStand:        {enter: enterCrouchToStand, transition: lerpCameraUntilNext, onEnd: crouchToStandEnd},
		KindWalkingEdgeSlip:      {enter: enterWalkingEdgeSlip, transition: walkingEdgeSlipTransition},
		KindIdleToActionIdle:     {enter: enterIdleToActionIdle, transition: idleToActionIdleTransition},
		KindIdleDropToFreeHang:   {enter: enterIdleDropToFreeHang, transition: idleDropToFreeHangTransition, onEnd: idleDropToFreeHangEnd},
		KindFreeHangToBracedHang: {enter: enterFreeHangToBracedHang, transition: freeHangToBracedHangTransition, onEnd: freeHangToBracedHangEnd},
		KindLedgeGrab:            {enter: enterLedgeGrab, transition: ledgeGrabTransition, onEnd: ledgeGrabEnd},
		KindHangingIdle:          {enter: enterHangingIdle, transition: hangingIdleTransition},
		KindHangDrop:             {enter: enterHangDrop, transition: hangDropTransition},
		KindShimmyLeft:           {enter: enterShimmy, transition: shimmyTransition},
		KindShimmyRight:          {enter: enterShimmy, transition: shimmyTransition},
	}
}

// Enter builds a State of kind k against the current context. Curve edits
// happen here and nowhere else.
func Enter(ctx *Context, k Kind) *State {
	s := newState(k)
	if b := behaviors[k]; b.enter != nil {
		b.enter(ctx, s)
	}
	return s
}

// Transition evaluates s's rules and returns its successor, or nil to stay.
func Transition(ctx *Context, s *State) *State {
	if b := behaviors[s.Kind]; b.transition != nil {
		return b.transition(ctx, s)
	}
	return nil
}

// NotifyEnd forwards an end-of-animation notification to s.
func NotifyEnd(ctx *Context, s *State, trigger bool) {
	if b := behaviors[s.Kind]; b.onEnd != nil {
		b.onEnd(ctx, s, trigger)
	}
}
