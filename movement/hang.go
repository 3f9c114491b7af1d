package movement

import (
	"math"

	"github.com/milk9111/parkour/anim"
	"github.com/milk9111/parkour/common"
	"github.com/milk9111/parkour/input"
	"gonum.org/v1/gonum/spatial/r3"
)

// enterLedgeGrab retargets the grab so the root ends just below the ledge
// top the head ray found. The camera rises with it over the clip.
func enterLedgeGrab(ctx *Context, s *State) {
	t := ctx.Tuning
	// Remap from the loaded curve. The shared copy may be flat from an
	// earlier grab.
	grab := ctx.shared(animIdleToLedgeGrab)
	src := ctx.source(animIdleToLedgeGrab)
	top := ctx.Sensors.LatestObstacleHeight() - t.LedgeGrabOffset
	if err := src.RemapEnds(anim.AxisZ, src.First().Z, top); err != nil {
		logEdit(s.Kind, err)
	} else {
		*grab = src
	}
	s.useCurve(ctx, grab.Clone())
	s.trackCameraZ(ctx, s.Curve.Last().Z+t.LedgeCameraLift, s.Curve.EndTimeMs())
}

func ledgeGrabTransition(ctx *Context, s *State) *State {
	if s.next == nil {
		s.setCameraZ(ctx, ctx.Anim.LocalTimeMs())
	}
	return s.next
}

// ledgeGrabEnd raises the character so the hang starts where the grab
// left the root.
func ledgeGrabEnd(ctx *Context, s *State, trigger bool) {
	if s.next != nil {
		return
	}
	queue(ctx, s, KindHangingIdle, trigger)
	ctx.moveCharacter(r3.Vec{Z: s.Curve.Last().Z - s.next.Curve.First().Z})
}

func enterHangingIdle(ctx *Context, s *State) {
	s.useCurve(ctx, ctx.curve(anim.StateHang.String()))
}

func hangingIdleTransition(ctx *Context, s *State) *State {
	k := ctx.Keys
	switch {
	case k.JustPressed(input.KeyR):
		return Enter(ctx, KindHangDrop)
	case k.Down(input.KeyD) && ctx.Sensors.IsRightShoulderHit():
		return Enter(ctx, KindShimmyRight)
	case k.Down(input.KeyA) && ctx.Sensors.IsLeftShoulderHit():
		return Enter(ctx, KindShimmyLeft)
	case k.Down(input.KeyW):
		return Enter(ctx, KindClimbOver)
	}
	return nil
}

// enterHangDrop shapes the drop's first half into a short rise and an arc
// out from the hang height. The character itself falls to the floor inside
// the drop window and stays there once it lands.
func enterHangDrop(ctx *Context, s *State) {
	s.startZ = ctx.Body.CharacterPosition().Z
	s.initRootMotion(ctx)

	arc := ctx.Tuning.HangDropArc
	arc.Start = ctx.last(anim.StateHang.String()).Z
	drop := ctx.shared(animHangToIdle)
	logEdit(s.Kind, drop.SpliceArc(anim.AxisZ, arc))
	s.useCurve(ctx, drop.Clone())

	s.trackCameraZ(ctx, ctx.Tuning.HangDropCameraZ, 1)
}

func hangDropTransition(ctx *Context, s *State) *State {
	end := s.Curve.EndTimeMs()
	if s.SampleTimeMs > end {
		return Enter(ctx, KindIdle)
	}
	if end <= 0 {
		return nil
	}

	p := common.FractionWithinRange(s.SampleTimeMs, 0, end)
	w := ctx.Tuning.HangDropWindow
	if p >= w.Min && !s.landed {
		char := ctx.Body.CharacterPosition()
		char.Z = common.RangeMapClamped(p, w.Min, w.Max, s.startZ, 0)
		ctx.Body.SetCharacterPosition(char)
		s.landed = p >= w.Max
	}
	if !ctx.Body.FreeRoam() {
		s.setCameraZ(ctx, p)
	}
	return nil
}

// enterShimmy fits the sideways travel of the shimmy clip to one unit so
// its lateral root motion reads as progress along the ledge.
func enterShimmy(ctx *Context, s *State) {
	s.initRootMotion(ctx)

	hangZ := ctx.first(anim.StateHang.String()).Z
	shared := ctx.shared(s.Kind.Name())
	logEdit(s.Kind, shared.RemapRange(anim.AxisZ, hangZ, hangZ+ctx.Tuning.ShimmyLift))
	logEdit(s.Kind, shared.ScaleToEndLength(anim.AxisY, 1))
	s.useCurve(ctx, shared.Clone())

	b := ctx.Body
	side := common.LeftOf(b.CharacterOrientation())
	if s.Kind == KindShimmyRight {
		side = r3.Scale(-1, side)
	}
	s.charStart = b.CharacterPosition()
	s.charEnd = r3.Add(s.charStart, r3.Scale(ctx.Tuning.ShimmyDistance, side))
	s.camOffset = r3.Sub(b.CameraPosition(), s.charStart)
}

func shimmyTransition(ctx *Context, s *State) *State {
	t := math.Abs(s.Curve.Sample(ctx.Anim.LocalTimeMs()).Y)
	char := common.LerpVec(s.charStart, s.charEnd, t)
	ctx.Body.SetCharacterPosition(char)
	if !ctx.Body.FreeRoam() {
		ctx.Body.SetCameraPosition(r3.Add(char, s.camOffset))
	}
	if ctx.Anim.AtEnd() {
		return Enter(ctx, KindHangingIdle)
	}
	return nil
}
