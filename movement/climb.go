package movement

import (
	"math"

	"github.com/milk9111/parkour/anim"
	"github.com/milk9111/parkour/common"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// queue builds the successor for an end notification. trigger false means
// the animation already followed its own end transition.
func queue(ctx *Context, s *State, k Kind, trigger bool) {
	s.next = Enter(ctx, k)
	s.next.requestAnim = trigger
}

// lerpCameraUntilNext eases the camera along the planned move and hands
// over once an end notification queued a successor.
func lerpCameraUntilNext(ctx *Context, s *State) *State {
	if s.next == nil {
		s.lerpCamera(ctx)
	}
	return s.next
}

// enterClimbOver lifts the shared climb from the hang height up onto the
// ledge.
func enterClimbOver(ctx *Context, s *State) {
	shared := ctx.shared(anim.StateClimbOver.String())
	shared.ZeroAxis(anim.AxisY)
	hangZ := ctx.last(anim.StateHang.String()).Z
	logEdit(s.Kind, shared.RemapEnds(anim.AxisZ, hangZ, hangZ+ctx.Tuning.ClimbDistance))
	s.useCurve(ctx, shared.Clone())
	s.initCamera(ctx)
}

func climbOverEnd(ctx *Context, s *State, trigger bool) {
	if s.next != nil {
		return
	}
	delta := s.Curve.Delta()
	up := s.Curve.Last().Z - ctx.first(anim.StateCrouchToStand.String()).Z
	ori := ctx.Body.CharacterOrientation()
	d := r3.Add(r3.Scale(delta.X, common.ForwardOf(ori)), r3.Scale(up, common.UpOf(ori)))
	ctx.moveCharacter(d)
	queue(ctx, s, KindCrouchToStand, trigger)
}

func enterCrouchToStand(ctx *Context, s *State) {
	shared := ctx.shared(anim.StateCrouchToStand.String())
	logEdit(s.Kind, shared.RemapEnds(anim.AxisX, 0, ctx.Tuning.ClimbStandForward))
	s.useCurve(ctx, shared.Clone())
	s.initCamera(ctx)
	s.lerpCamera(ctx)
}

func crouchToStandEnd(ctx *Context, s *State, trigger bool) {
	if s.next != nil {
		return
	}
	fwd := common.ForwardOf(ctx.Body.CharacterOrientation())
	ctx.moveCharacter(r3.Scale(s.Curve.Last().X, fwd))
	queue(ctx, s, KindIdle, trigger)
}

// enterWalkingEdgeSlip chains the slip into the action idle and the action
// idle into idle so the root height is continuous across all three.
func enterWalkingEdgeSlip(ctx *Context, s *State) {
	i2a := ctx.shared(anim.StateIdleToActionIdle.String())
	i2a.ZeroAxis(anim.AxisY)
	logEdit(s.Kind, i2a.EndAxisAt(anim.AxisZ, ctx.first(anim.StateIdle.String()).Z))

	slip := ctx.shared(anim.StateWalkingEdgeSlip.String())
	slip.ZeroAxis(anim.AxisY)
	logEdit(s.Kind, slip.EndAxisAt(anim.AxisZ, i2a.First().Z))

	s.useCurve(ctx, slip.Clone())
	s.initCamera(ctx)
}

func walkingEdgeSlipTransition(ctx *Context, s *State) *State {
	s.lerpCamera(ctx)
	if !ctx.Anim.AtEnd() {
		return nil
	}
	ctx.moveCharacter(ctx.rotate(r3.Vec{X: s.Curve.Delta().X}))
	return Enter(ctx, KindIdleToActionIdle)
}

func enterIdleToActionIdle(ctx *Context, s *State) {
	s.useCurve(ctx, ctx.curve(anim.StateIdleToActionIdle.String()))
	s.initCamera(ctx)
}

func idleToActionIdleTransition(ctx *Context, s *State) *State {
	s.lerpCamera(ctx)
	if !ctx.Anim.AtEnd() {
		return nil
	}
	diff := r3.Sub(ctx.first(anim.StateIdle.String()), s.Curve.Last())
	diff.Z = 0
	ctx.moveCharacter(r3.Scale(-1, ctx.rotate(diff)))
	return Enter(ctx, KindIdle)
}

// enterIdleDropToFreeHang turns the drop's forward travel into a fraction
// and starts its height where the idle pose currently is.
func enterIdleDropToFreeHang(ctx *Context, s *State) {
	shared := ctx.shared(anim.StateIdleDropToFreeHang.String())
	shared.ZeroAxis(anim.AxisY)
	logEdit(s.Kind, shared.Normalize(anim.AxisX))
	z := ctx.Anim.RootMotion().Sample(ctx.Anim.LocalTimeMs()).Z
	logEdit(s.Kind, shared.StartAxisAt(anim.AxisZ, z))
	s.useCurve(ctx, shared.Clone())
	s.charStart = ctx.Body.CharacterPosition()
}

func idleDropToFreeHangTransition(ctx *Context, s *State) *State {
	if s.next != nil {
		return s.next
	}
	x := s.Curve.Sample(ctx.Anim.LocalTimeMs()).X
	fwd := r3.Scale(ctx.Tuning.DropForwardScale, ctx.rotate(r3.Vec{X: x}))
	ctx.Body.SetCharacterPosition(r3.Add(s.charStart, fwd))
	return nil
}

// idleDropToFreeHangEnd turns the character around to face the ledge it
// dropped from and hangs it below the ledge top. The camera keeps its
// offset from the character, turned with it.
func idleDropToFreeHangEnd(ctx *Context, s *State, trigger bool) {
	if s.next != nil {
		return
	}
	b := ctx.Body
	rot := common.AxisAngle(common.Up, math.Pi)

	char := b.CharacterPosition()
	camOffset := common.Rotate(rot, r3.Sub(b.CameraPosition(), char))
	b.SetCharacterOrientation(common.Normalize(quat.Mul(b.CharacterOrientation(), rot)))
	b.SetCameraOrientation(common.Normalize(quat.Mul(b.CameraOrientation(), rot)))

	t := ctx.Tuning
	char.Z = ctx.Sensors.LatestObstacleHeight() - t.FreeHangDrop - t.FreeHangClearance
	b.SetCharacterPosition(char)
	b.SetCameraPosition(r3.Add(char, camOffset))

	queue(ctx, s, KindFreeHangToBracedHang, trigger)
}

func enterFreeHangToBracedHang(ctx *Context, s *State) {
	s.useCurve(ctx, ctx.curve(anim.StateFreeHangToBracedHang.String()))
}

// freeHangToBracedHangTransition lines the hang's root up with where the
// braced pose ended before handing over.
func freeHangToBracedHangTransition(ctx *Context, s *State) *State {
	if s.next == nil {
		return nil
	}
	diff := r3.Sub(ctx.first(anim.StateHang.String()), s.Curve.Last())
	ctx.moveCharacter(r3.Scale(-1, ctx.rotate(diff)))
	return s.next
}

func freeHangToBracedHangEnd(ctx *Context, s *State, trigger bool) {
	if s.next != nil {
		return
	}
	queue(ctx, s, KindHangingIdle, trigger)
}
