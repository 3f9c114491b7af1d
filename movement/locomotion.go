package movement

import (
	"github.com/milk9111/parkour/anim"
	"github.com/milk9111/parkour/input"
	"gonum.org/v1/gonum/spatial/r3"
)

// offEdge reports that the ground probe found neither the floor nor an
// obstacle top.
func offEdge(ctx *Context) bool {
	return !ctx.Sensors.IsOnGround() && !ctx.Sensors.IsGroundHit()
}

func enterIdle(ctx *Context, s *State) {
	s.useCurve(ctx, ctx.curve(anim.StateIdle.String()))
}

func idleTransition(ctx *Context, s *State) *State {
	k := ctx.Keys
	switch {
	case k.JustPressed(input.KeyW):
		return Enter(ctx, KindWalk)
	case k.JustPressed(input.KeySpace):
		return Enter(ctx, KindJump)
	case k.JustPressed(input.KeyC):
		// The crouched idle holds the forward offset the crouch ends on.
		ctx.shared(animCrouchedIdle).SetAxis(anim.AxisX, ctx.last(animStandToCrouch).X)
		return Enter(ctx, KindCrouch)
	case k.JustPressed(input.KeyR) && offEdge(ctx):
		return Enter(ctx, KindIdleDropToFreeHang)
	}
	return nil
}

func enterWalk(ctx *Context, s *State) { s.initRootMotion(ctx) }

func walkTransition(ctx *Context, s *State) *State {
	k := ctx.Keys
	switch {
	case !k.Down(input.KeyW):
		return Enter(ctx, KindIdle)
	case ctx.Sensors.IsHeadInRange(ctx.Tuning.LedgeGrabRange):
		return Enter(ctx, KindLedgeGrab)
	case k.JustPressed(input.KeyShift):
		return Enter(ctx, KindRun)
	case k.JustPressed(input.KeySpace):
		return Enter(ctx, KindJump)
	case offEdge(ctx):
		return Enter(ctx, KindWalkingEdgeSlip)
	}
	return nil
}

func enterRun(ctx *Context, s *State) { s.initRootMotion(ctx) }

func runTransition(ctx *Context, s *State) *State {
	k := ctx.Keys
	switch {
	case !k.Down(input.KeyW):
		return Enter(ctx, KindIdle)
	case !k.Down(input.KeyShift):
		return Enter(ctx, KindWalk)
	case k.JustPressed(input.KeyC):
		return Enter(ctx, KindRunningSlide)
	case ctx.Sensors.IsFootInRange(ctx.Tuning.VaultRange) && !ctx.Sensors.IsHeadBlocked():
		return Enter(ctx, KindVault)
	case offEdge(ctx):
		return Enter(ctx, KindRunStop)
	}
	return nil
}

// enterRunStop keeps only the forward travel of the stop, normalized so the
// character comes to rest one unit past where it began braking.
func enterRunStop(ctx *Context, s *State) {
	c := ctx.curve(anim.StateRunStop.String())
	c.ZeroAxis(anim.AxisZ)
	c.ZeroAxis(anim.AxisY)
	logEdit(s.Kind, c.Normalize(anim.AxisX))
	s.useCurve(ctx, c)
	s.charStart = ctx.Body.CharacterPosition()
	s.camStart = ctx.Body.CameraPosition()
}

func runStopTransition(ctx *Context, s *State) *State {
	v := ctx.rotate(s.Curve.Sample(ctx.Anim.LocalTimeMs()))
	ctx.Body.SetCharacterPosition(r3.Add(s.charStart, v))
	ctx.Body.SetCameraPosition(r3.Add(s.camStart, v))
	if ctx.Anim.AtEnd() {
		return Enter(ctx, KindIdle)
	}
	return nil
}

// enterJump moves the character along the jump's ground track; the height
// arc is left to the animation.
func enterJump(ctx *Context, s *State) {
	s.ApplyRootMotion = true
	s.initRootMotion(ctx)
	c := s.Curve
	c.ZeroAxis(anim.AxisZ)
	s.useCurve(ctx, c)
}

// exitAtEndByInput picks the locomotion state the held keys ask for once the
// animation has finished.
func exitAtEndByInput(ctx *Context, s *State) *State {
	if !ctx.Anim.AtEnd() {
		return nil
	}
	k := ctx.Keys
	switch {
	case k.Down(input.KeyShift) && k.Down(input.KeyW):
		return Enter(ctx, KindRun)
	case k.Down(input.KeyW):
		return Enter(ctx, KindWalk)
	}
	return Enter(ctx, KindIdle)
}

func enterCrouch(ctx *Context, s *State) {
	s.useCurve(ctx, ctx.curve(animCrouchedIdle))
}

func crouchTransition(ctx *Context, s *State) *State {
	k := ctx.Keys
	switch {
	case k.JustPressed(input.KeyC):
		stand := ctx.shared(anim.StateCrouchToStand.String())
		logEdit(s.Kind, stand.RemapEnds(anim.AxisX, ctx.last(animCrouchedIdle).X, 0))
		return Enter(ctx, KindIdle)
	case k.JustPressed(input.KeyW):
		return Enter(ctx, KindCrouchWalk)
	}
	return nil
}

func enterCrouchWalk(ctx *Context, s *State) { s.initRootMotion(ctx) }

func crouchWalkTransition(ctx *Context, s *State) *State {
	if ctx.Keys.JustReleased(input.KeyW) {
		return Enter(ctx, KindCrouch)
	}
	return nil
}

// enterRunningSlide keeps the slide on the ground plane it started on.
func enterRunningSlide(ctx *Context, s *State) {
	s.ApplyRootMotion = true
	s.initRootMotion(ctx)
	c := s.Curve
	c.FlattenAxis(anim.AxisZ)
	s.useCurve(ctx, c)
}

func runningSlideTransition(ctx *Context, s *State) *State {
	if ctx.Anim.AtEnd() {
		return Enter(ctx, KindRun)
	}
	return nil
}

// vaultTravel is how far forward a vault carries the character.
func vaultTravel(ctx *Context) float64 {
	t := ctx.Tuning
	if !t.VaultMeasureWidth {
		return t.VaultWidth
	}
	dist, ok := ctx.Sensors.FootDistance()
	if !ok {
		return t.VaultWidth
	}
	return dist + ctx.Sensors.LatestObstacleWidth() + t.VaultClearance
}

// enterVault stretches the middle of the vault so the character lands past
// the obstacle, and scales the shared clip's height to the obstacle.
func enterVault(ctx *Context, s *State) {
	s.ApplyRootMotion = true
	s.initRootMotion(ctx)
	c := s.Curve
	split := ctx.Tuning.VaultSplit
	logEdit(s.Kind, c.FitSegmentTravel(anim.AxisX, split.Min, split.Max, vaultTravel(ctx)))
	c.ZeroAxis(anim.AxisZ)
	s.useCurve(ctx, c)
	s.PrevTranslation.Z = 0
	s.ThisTranslation.Z = 0

	logEdit(s.Kind, ctx.shared(anim.StateVault.String()).RescaleExtent(anim.AxisZ, ctx.Tuning.VaultHeightScale))
}
