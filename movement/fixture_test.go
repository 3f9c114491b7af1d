package movement

import (
	"context"
	"testing"

	"github.com/milk9111/parkour/anim"
	"github.com/milk9111/parkour/common"
	"github.com/milk9111/parkour/input"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// stepSeconds is exact in binary so frame counts line up with clip ends.
const stepSeconds = 0.015625

func tr(name, target string, fadeMs float64) anim.Transition {
	return anim.Transition{Name: name, Target: target, FadeMs: fadeMs}
}

func end(target string) *anim.Transition {
	return &anim.Transition{Target: target}
}

// testDefs is the locomotion graph the movement rules expect.
func testDefs() []anim.StateDef {
	return []anim.StateDef{
		{Name: "idle", Clip: "idle", Transitions: []anim.Transition{
			tr("walk", "walk", 250), tr("jump", "jump", 125), tr("crouch", "standToCrouch", 0),
			tr("idleDropToFreeHang", "idleDropToFreeHang", 125),
		}},
		{Name: "walk", Clip: "walk", Transitions: []anim.Transition{
			tr("idle", "idle", 250), tr("run", "run", 125), tr("jump", "jump", 125),
			tr("hang", "idleToLedgeGrab", 125), tr("walkingEdgeSlip", "walkingEdgeSlip", 125),
		}},
		{Name: "run", Clip: "run", Transitions: []anim.Transition{
			tr("idle", "idle", 250), tr("walk", "walk", 125), tr("runningSlide", "runningSlide", 125),
			tr("vault", "vault", 62.5), tr("runStop", "runStop", 62.5),
		}},
		{Name: "runStop", Clip: "runStop", Transitions: []anim.Transition{tr("idle", "idle", 125)}},
		{Name: "jump", Clip: "jump", Transitions: []anim.Transition{
			tr("idle", "idle", 125), tr("walk", "walk", 125), tr("run", "run", 125),
		}},
		{Name: "standToCrouch", Clip: "standToCrouch", End: end("crouchedIdle")},
		{Name: "crouchedIdle", Clip: "crouchedIdle", Transitions: []anim.Transition{
			tr("idle", "crouchToStand", 0), tr("walk", "crouchWalk", 125),
		}},
		{Name: "crouchWalk", Clip: "crouchWalk", Transitions: []anim.Transition{tr("crouch", "crouchedIdle", 125)}},
		{Name: "crouchToStand", Clip: "crouchToStand", End: end("idle")},
		{Name: "runningSlide", Clip: "runningSlide", Transitions: []anim.Transition{tr("run", "run", 125)}},
		{Name: "vault", Clip: "vault", Transitions: []anim.Transition{
			tr("idle", "idle", 125), tr("walk", "walk", 125), tr("run", "run", 125),
		}},
		{Name: "walkingEdgeSlip", Clip: "walkingEdgeSlip", Transitions: []anim.Transition{
			tr("idleToActionIdle", "idleToActionIdle", 0),
		}},
		{Name: "idleToActionIdle", Clip: "idleToActionIdle", Transitions: []anim.Transition{tr("idle", "idle", 0)}},
		{Name: "idleDropToFreeHang", Clip: "idleDropToFreeHang", End: end("freeHangToBracedHang")},
		{Name: "freeHangToBracedHang", Clip: "freeHangToBracedHang", End: end("hang")},
		{Name: "idleToLedgeGrab", Clip: "idleToLedgeGrab", End: end("hang")},
		{Name: "hang", Clip: "hang", Transitions: []anim.Transition{
			tr("hangDrop", "hangToIdle", 125), tr("shimmyLeft", "shimmyLeft", 62.5),
			tr("shimmyRight", "shimmyRight", 62.5), tr("climbOver", "climbOver", 125),
		}},
		{Name: "hangToIdle", Clip: "hangToIdle", Transitions: []anim.Transition{tr("idle", "idle", 125)}},
		{Name: "shimmyLeft", Clip: "shimmyLeft", Transitions: []anim.Transition{tr("hang", "hang", 62.5)}},
		{Name: "shimmyRight", Clip: "shimmyRight", Transitions: []anim.Transition{tr("hang", "hang", 62.5)}},
		{Name: "climbOver", Clip: "climbOver", End: end("crouchToStand")},
	}
}

// evenClip spreads values evenly over durationMs.
func evenClip(durationMs float64, values ...r3.Vec) *anim.Clip {
	keys := make([]anim.Keyframe, len(values))
	for i, v := range values {
		at := 0.0
		if len(values) > 1 {
			at = durationMs * float64(i) / float64(len(values)-1)
		}
		keys[i] = anim.Keyframe{TimeMs: at, Value: v}
	}
	return &anim.Clip{DurationMs: durationMs, Root: anim.NewCurve(keys...)}
}

func testClips() anim.MapLoader {
	return anim.MapLoader{
		"idle":                 evenClip(1000, r3.Vec{Z: 1}, r3.Vec{Z: 1}),
		"walk":                 evenClip(1000, r3.Vec{Z: 1}, r3.Vec{X: 1.5, Z: 1}),
		"run":                  evenClip(500, r3.Vec{Z: 1}, r3.Vec{X: 3, Z: 1}),
		"runStop":              evenClip(250, r3.Vec{Z: 1}, r3.Vec{X: 1, Z: 1}, r3.Vec{X: 2, Z: 1}),
		"jump":                 evenClip(500, r3.Vec{Z: 1}, r3.Vec{X: 0.5, Z: 1.5}, r3.Vec{X: 1, Z: 1}),
		"standToCrouch":        evenClip(250, r3.Vec{Z: 1}, r3.Vec{X: 0.25, Z: 0.5}),
		"crouchedIdle":         evenClip(1000, r3.Vec{X: 0.1, Z: 0.5}, r3.Vec{X: 0.1, Z: 0.5}),
		"crouchWalk":           evenClip(1000, r3.Vec{Z: 0.5}, r3.Vec{X: 1, Z: 0.5}),
		"crouchToStand":        evenClip(250, r3.Vec{X: 0.25, Z: 0.5}, r3.Vec{Z: 1}),
		"runningSlide":         evenClip(500, r3.Vec{Z: 1}, r3.Vec{X: 2, Z: 0.5}, r3.Vec{X: 4, Z: 0.6}),
		"vault":                evenClip(500, r3.Vec{Z: 1}, r3.Vec{X: 1, Z: 2}, r3.Vec{X: 2, Z: 2.5}, r3.Vec{X: 3, Z: 2}, r3.Vec{X: 4, Z: 1}),
		"walkingEdgeSlip":      evenClip(500, r3.Vec{Z: 1}, r3.Vec{X: 0.5, Y: 0.1, Z: 0.6}),
		"idleToActionIdle":     evenClip(500, r3.Vec{Z: 0.8}, r3.Vec{X: 0.2, Z: 1}),
		"idleDropToFreeHang":   evenClip(500, r3.Vec{Z: 1}, r3.Vec{X: 2, Z: -1}),
		"freeHangToBracedHang": evenClip(500, r3.Vec{Z: 2}, r3.Vec{X: 0.3, Z: 2.1}),
		"idleToLedgeGrab":      evenClip(500, r3.Vec{Z: 1}, r3.Vec{Z: 1.5}, r3.Vec{Z: 2}),
		"hang":                 evenClip(1000, r3.Vec{X: 0.3, Z: 2}, r3.Vec{X: 0.3, Z: 2}),
		"hangToIdle":           evenClip(1000, r3.Vec{Z: 2}, r3.Vec{Z: 1.8}, r3.Vec{Z: 1.2}, r3.Vec{Z: 1}, r3.Vec{Z: 1}),
		"shimmyLeft":           evenClip(500, r3.Vec{X: 0.3, Z: 2}, r3.Vec{X: 0.3, Y: 0.2, Z: 2.1}, r3.Vec{X: 0.3, Y: 0.4, Z: 2}),
		"shimmyRight":          evenClip(500, r3.Vec{X: 0.3, Z: 2}, r3.Vec{X: 0.3, Y: -0.2, Z: 2.1}, r3.Vec{X: 0.3, Y: -0.4, Z: 2}),
		"climbOver":            evenClip(500, r3.Vec{X: 0.3, Z: 2}, r3.Vec{X: 0.6, Z: 3}, r3.Vec{X: 1.3, Z: 3.5}),
	}
}

type fakeBody struct {
	charPos, camPos r3.Vec
	charOri, camOri quat.Number
	freeRoam        bool
}

func newFakeBody() *fakeBody {
	return &fakeBody{
		camPos:  r3.Vec{X: -4, Z: 3},
		charOri: common.IdentityOrientation,
		camOri:  common.IdentityOrientation,
	}
}

func (b *fakeBody) CharacterPosition() r3.Vec { return b.charPos }
func (b *fakeBody) SetCharacterPosition(v r3.Vec) { b.charPos = v }
func (b *fakeBody) CharacterOrientation() quat.Number { return b.charOri }
func (b *fakeBody) SetCharacterOrientation(q quat.Number) { b.charOri = q }
func (b *fakeBody) CameraPosition() r3.Vec { return b.camPos }
func (b *fakeBody) SetCameraPosition(v r3.Vec) { b.camPos = v }
func (b *fakeBody) CameraOrientation() quat.Number { return b.camOri }
func (b *fakeBody) SetCameraOrientation(q quat.Number) { b.camOri = q }
func (b *fakeBody) FreeRoam() bool { return b.freeRoam }
func (b *fakeBody) RotateTowardsCharacterOrientation(v r3.Vec) r3.Vec {
	return common.Rotate(b.charOri, v)
}

// fakeSensors answers from plain fields; the zero value stands on open floor.
type fakeSensors struct {
	footDist  float64
	footHit   bool
	headDist  float64
	headHit   bool
	left      bool
	right     bool
	groundHit bool
	offGround bool
	obstacleH float64
	obstacleW float64
}

func (s *fakeSensors) IsFootInRange(r common.FloatRange) bool { return s.footHit && r.Contains(s.footDist) }
func (s *fakeSensors) FootDistance() (float64, bool) { return s.footDist, s.footHit }
func (s *fakeSensors) IsHeadBlocked() bool { return s.headHit }
func (s *fakeSensors) IsHeadInRange(r common.FloatRange) bool { return s.headHit && r.Contains(s.headDist) }
func (s *fakeSensors) IsLeftShoulderHit() bool { return s.left }
func (s *fakeSensors) IsRightShoulderHit() bool { return s.right }
func (s *fakeSensors) IsGroundHit() bool { return s.groundHit }
func (s *fakeSensors) IsOnGround() bool { return !s.offGround }
func (s *fakeSensors) LatestObstacleHeight() float64 { return s.obstacleH }
func (s *fakeSensors) LatestObstacleWidth() float64 { return s.obstacleW }

// recordingAnimator forwards to the controller and remembers every request.
type recordingAnimator struct {
	*anim.Controller
	requests []anim.StateID
}

func (a *recordingAnimator) RequestTransition(id anim.StateID) {
	a.requests = append(a.requests, id)
	a.Controller.RequestTransition(id)
}

type harness struct {
	t       *testing.T
	reg     *anim.Registry
	ctrl    *anim.Controller
	rec     *recordingAnimator
	clock   *common.Clock
	body    *fakeBody
	sensors *fakeSensors
	machine *Machine
	keys    input.Tracker
}

// newHarness wires a machine to a started controller. clips replace the
// default clip of the same name.
func newHarness(t *testing.T, clips map[string]*anim.Clip) *harness {
	t.Helper()
	loader := testClips()
	for name, c := range clips {
		loader[name] = c
	}
	reg, err := anim.NewRegistry(testDefs())
	require.NoError(t, err)
	require.NoError(t, reg.Validate())
	require.NoError(t, reg.LoadClips(context.Background(), loader))
	t.Cleanup(reg.Close)

	clock := common.NewClock()
	ctrl := anim.NewController(reg, clock)
	require.NoError(t, ctrl.Startup())

	h := &harness{
		t:       t,
		reg:     reg,
		ctrl:    ctrl,
		rec:     &recordingAnimator{Controller: ctrl},
		clock:   clock,
		body:    newFakeBody(),
		sensors: &fakeSensors{},
	}
	h.machine = NewMachine(&Context{
		Anim:    h.rec,
		Body:    h.body,
		Sensors: h.sensors,
		Clock:   clock,
		Tuning:  DefaultTuning(),
	})
	ctrl.SetEndListener(h.machine)
	return h
}

// frame runs one frame in the order the character runs it: root motion,
// movement transition, then animation.
func (h *harness) frame(held ...input.Key) {
	h.clock.Tick(stepSeconds)
	h.machine.Context().Keys = h.keys.Next(held...)
	h.machine.UpdateRootMotion()
	h.machine.Update()
	h.ctrl.Update()
}

func (h *harness) kind() Kind { return h.machine.Current().Kind }

// until runs frames holding keys until the machine reaches k.
func (h *harness) until(k Kind, held ...input.Key) {
	h.t.Helper()
	for i := 0; i < 400; i++ {
		if h.kind() == k {
			return
		}
		h.frame(held...)
	}
	h.t.Fatalf("never reached %s, stuck in %s", k, h.kind())
}

// hang walks into a ledge of height top and waits for the hanging idle.
func (h *harness) hang(top float64) {
	h.t.Helper()
	h.frame()
	h.frame(input.KeyW)
	require.Equal(h.t, KindWalk, h.kind())

	h.sensors.headHit, h.sensors.headDist, h.sensors.obstacleH = true, 0.3, top
	h.frame(input.KeyW)
	require.Equal(h.t, KindLedgeGrab, h.kind())
	h.sensors.headHit = false

	h.until(KindHangingIdle)
	require.Equal(h.t, "hang", h.ctrl.CurrentName())
}

func (h *harness) shared(name string) anim.Curve {
	h.t.Helper()
	s, err := h.reg.Lookup(name)
	require.NoError(h.t, err)
	return s.RootMotion()
}
