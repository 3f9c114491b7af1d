package movement

import (
	"github.com/milk9111/parkour/anim"
	"github.com/milk9111/parkour/common"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"gonum.org/v1/gonum/spatial/r3"
)

// State is one movement behavior instance. A fresh State is built on every
// transition and its curve is frozen once the constructor's edits are done.
type State struct {
	Kind Kind

	// Curve is the private root-motion copy this state samples.
	Curve           anim.Curve
	ApplyRootMotion bool
	SampleTimeMs    float64
	PrevTranslation r3.Vec
	ThisTranslation r3.Vec

	// requestAnim is cleared when the successor came from an end
	// notification, since the animation side already moved on.
	requestAnim bool
	next        *State

	// Positions captured at construction for absolute placement.
	charStart r3.Vec
	charEnd   r3.Vec
	camStart  r3.Vec
	camEnd    r3.Vec
	camOffset r3.Vec
	startZ    float64
	landed    bool
	camZ      *gween.Tween
}

func newState(k Kind) *State {
	return &State{Kind: k, requestAnim: true}
}

// Next is the successor queued by an end notification, if any.
func (s *State) Next() *State { return s.next }

// RequestsAnimation reports whether swapping away from s should ask the
// animation side to follow.
func (s *State) RequestsAnimation() bool { return s.requestAnim }

// RootMotionDelta is this frame's sampled translation minus last frame's.
func (s *State) RootMotionDelta() r3.Vec {
	return r3.Sub(s.ThisTranslation, s.PrevTranslation)
}

// useCurve installs c and primes the previous and current translation at
// the curve start, rotated into the character's heading.
func (s *State) useCurve(ctx *Context, c anim.Curve) {
	s.Curve = c
	s.SampleTimeMs = 0
	start := ctx.Body.RotateTowardsCharacterOrientation(c.Sample(0))
	s.PrevTranslation = start
	s.ThisTranslation = start
}

// initRootMotion takes the curve of the animation state this kind will
// drive: the current one when the names match, otherwise the target of the
// current state's transition named after this kind.
func (s *State) initRootMotion(ctx *Context) {
	name := s.Kind.Name()
	if cur := ctx.Anim.Current(); cur != nil {
		if cur.Name() == name {
			s.useCurve(ctx, cur.RootMotion())
			return
		}
		if t, err := cur.Transition(name); err == nil {
			if next := ctx.state(t.Target); next != nil {
				s.useCurve(ctx, next.RootMotion())
				return
			}
		}
	}
	s.useCurve(ctx, ctx.curve(s.Kind.Name()))
}

// UpdateRootMotion advances root-motion sampling by one character-clock
// frame. Sampling freezes once past the curve end. When ApplyRootMotion is
// set the frame delta moves both the character and the camera.
func UpdateRootMotion(ctx *Context, s *State) {
	s.PrevTranslation = s.ThisTranslation
	if s.Curve.Empty() || s.SampleTimeMs > s.Curve.EndTimeMs() {
		return
	}

	s.ThisTranslation = ctx.Body.RotateTowardsCharacterOrientation(s.Curve.Sample(s.SampleTimeMs))
	s.SampleTimeMs += ctx.deltaMs()

	if s.ApplyRootMotion {
		d := s.RootMotionDelta()
		ctx.moveCharacter(d)
		ctx.Body.SetCameraPosition(r3.Add(ctx.Body.CameraPosition(), d))
	}
}

// initCamera plans a camera move by the curve's total forward and vertical
// travel, rotated into the character's heading.
func (s *State) initCamera(ctx *Context) {
	s.camStart = ctx.Body.CameraPosition()
	total := s.Curve.Delta()
	total.Y = 0
	s.camEnd = r3.Add(s.camStart, ctx.Body.RotateTowardsCharacterOrientation(total))
}

// lerpCamera places the camera along the planned move at the animation's
// local time.
func (s *State) lerpCamera(ctx *Context) {
	end := s.Curve.EndTimeMs()
	if end <= 0 {
		return
	}
	t := common.Clamp(ctx.Anim.LocalTimeMs()/end, 0, 1)
	ctx.Body.SetCameraPosition(common.LerpVec(s.camStart, s.camEnd, t))
}

// trackCameraZ tweens the camera height from its current value to endZ over
// duration, in whatever unit the caller samples with.
func (s *State) trackCameraZ(ctx *Context, endZ, duration float64) {
	s.camStart = ctx.Body.CameraPosition()
	s.camEnd = s.camStart
	s.camEnd.Z = endZ
	s.camZ = gween.New(float32(s.camStart.Z), float32(endZ), float32(duration), ease.Linear)
}

func (s *State) setCameraZ(ctx *Context, at float64) {
	if s.camZ == nil {
		return
	}
	z, _ := s.camZ.Set(float32(at))
	p := s.camStart
	p.Z = float64(z)
	ctx.Body.SetCameraPosition(p)
}
