package anim

import (
	"errors"
	"fmt"
	"log"

	"github.com/milk9111/parkour/common"
)

// EndListener is told every frame the current state sits at its clip end.
// trigger is false when the animation side has already followed its own end
// transition and needs no further request.
type EndListener interface {
	NotifyEndOfAnimationState(trigger bool)
}

type crossfade struct {
	out, in     *State
	totalMs     float64
	remainingMs float64
	node        *LerpNode
}

// Controller drives the animation state stack, resolves transitions and
// orchestrates crossfades. The stack always holds exactly one state after
// Startup; the crossfade keeps the outgoing state alive beside it.
type Controller struct {
	registry *Registry
	clock    *common.Clock
	listener EndListener

	stack []*State
	fade  *crossfade
	tree  Tree

	requested bool
	pending   string
}

func NewController(registry *Registry, clock *common.Clock) *Controller {
	return &Controller{registry: registry, clock: clock}
}

func (c *Controller) SetEndListener(l EndListener) { c.listener = l }

// Startup pushes idle as the only state and points the tree at it.
func (c *Controller) Startup() error {
	idle, err := c.registry.Lookup(StateIdle.String())
	if err != nil {
		return fmt.Errorf("anim: startup: %w", err)
	}
	if !idle.Ready() {
		return fmt.Errorf("anim: startup: %s: %w", idle.Name(), ErrNotReady)
	}
	idle.Reset()
	c.stack = []*State{idle}
	c.fade = nil
	c.tree.Point(idle.Node())
	c.requested = false
	c.pending = ""
	return nil
}

// Shutdown drops the stack and any crossfade. The registry is not touched.
func (c *Controller) Shutdown() {
	c.stack = nil
	c.fade = nil
	c.tree.Point(nil)
	c.requested = false
	c.pending = ""
}

// RequestTransition queues a transition for the next Update.
func (c *Controller) RequestTransition(id StateID) {
	c.RequestTransitionNamed(id.String())
}

func (c *Controller) RequestTransitionNamed(name string) {
	c.requested = true
	c.pending = name
}

// PendingTransition returns the queued transition name, if any.
func (c *Controller) PendingTransition() (string, bool) {
	return c.pending, c.requested
}

func (c *Controller) clearRequest() {
	c.requested = false
	c.pending = ""
}

// Update runs one frame: explicit transition, end transition, state
// advance, crossfade advance.
func (c *Controller) Update() {
	if len(c.stack) == 0 {
		return
	}
	c.updateTransition()
	c.updateStates()
	c.updateCrossfade()
}

func (c *Controller) deltaMs() float64 {
	if c.clock == nil {
		return 0
	}
	return c.clock.DeltaMs()
}

func (c *Controller) top() *State { return c.stack[len(c.stack)-1] }

func (c *Controller) replaceTop(s *State) { c.stack[len(c.stack)-1] = s }

// resolve looks up a transition target that can be pushed right now.
func (c *Controller) resolve(t Transition) (*State, error) {
	next, err := c.registry.Lookup(t.Target)
	if err != nil {
		return nil, err
	}
	if !next.Ready() {
		return nil, fmt.Errorf("anim: %s: %w", next.Name(), ErrNotReady)
	}
	return next, nil
}

func (c *Controller) updateTransition() {
	if c.requested {
		c.followRequest()
	}

	cur := c.top()
	if cur.AtEnd() {
		if t, ok := cur.EndTransition(); ok {
			if next, err := c.resolve(t); err != nil {
				log.Printf("anim: end transition from %s: %v", cur.Name(), err)
			} else {
				next.Reset()
				c.replaceTop(next)
				if c.fade == nil {
					c.tree.Point(next.Node())
				}
			}
		}
		if c.listener != nil {
			c.listener.NotifyEndOfAnimationState(false)
		}
	}

	if c.fade != nil {
		c.fade.out = c.followEnd(c.fade.out)
		c.fade.in = c.followEnd(c.fade.in)
		c.fade.node.A = c.fade.out.Node()
		c.fade.node.B = c.fade.in.Node()
	}
}

func (c *Controller) followRequest() {
	cur := c.top()
	t, err := cur.Transition(c.pending)
	if err != nil {
		log.Printf("anim: unable to find transition from %s to %s", cur.Name(), c.pending)
		c.clearRequest()
		return
	}

	next, err := c.resolve(t)
	switch {
	case errors.Is(err, ErrNotReady):
		// Left queued until the clip arrives.
		log.Printf("anim: transition %s deferred: %v", t.Name, err)
		return
	case err != nil:
		log.Printf("anim: transition %s from %s: %v", t.Name, cur.Name(), err)
		c.clearRequest()
		return
	}

	next.Reset()
	c.replaceTop(next)
	c.beginCrossfade(cur, next, t.FadeMs)
	c.clearRequest()
}

// followEnd swaps a crossfade member that finished for its end target.
func (c *Controller) followEnd(s *State) *State {
	if !s.AtEnd() {
		return s
	}
	t, ok := s.EndTransition()
	if !ok {
		return s
	}
	next, err := c.resolve(t)
	if err != nil {
		return s
	}
	if next != s {
		next.Reset()
	}
	return next
}

func (c *Controller) beginCrossfade(out, in *State, fadeMs float64) {
	node := NewLerpNode(out.Node(), in.Node())
	c.fade = &crossfade{
		out:         out,
		in:          in,
		totalMs:     fadeMs,
		remainingMs: fadeMs,
		node:        node,
	}
	c.tree.Point(node)
}

func (c *Controller) updateStates() {
	dt := c.deltaMs()
	if c.fade == nil {
		c.top().Update(dt)
		return
	}
	c.fade.in.Update(dt)
	if c.fade.out != c.fade.in {
		c.fade.out.Update(dt)
	}
}

func (c *Controller) updateCrossfade() {
	if c.fade == nil {
		return
	}
	c.fade.remainingMs -= c.deltaMs()
	if c.fade.remainingMs < 0 {
		c.fade = nil
		c.tree.Point(c.top().Node())
		return
	}
	c.fade.node.SetParam(crossfadeWeight(c.fade.remainingMs, c.fade.totalMs))
}

// crossfadeWeight maps remaining time from [total, 0] onto [0, 1].
func crossfadeWeight(remainingMs, totalMs float64) float64 {
	if totalMs <= 0 {
		return 1
	}
	return common.Clamp(common.RangeMap(remainingMs, totalMs, 0, 0, 1), 0, 1)
}

// PopOut follows the current state's pop-out transition with a crossfade.
func (c *Controller) PopOut() error {
	if len(c.stack) == 0 {
		return fmt.Errorf("anim: pop out: %w", ErrNotFound)
	}
	cur := c.top()
	t, ok := cur.PopOutTransition()
	if !ok {
		return fmt.Errorf("anim: pop out from %s: %w", cur.Name(), ErrNotFound)
	}
	next, err := c.resolve(t)
	if err != nil {
		return fmt.Errorf("anim: pop out from %s: %w", cur.Name(), err)
	}
	next.Reset()
	c.replaceTop(next)
	c.beginCrossfade(cur, next, t.FadeMs)
	return nil
}

// Current is the top of the stack, the incoming state while crossfading.
func (c *Controller) Current() *State {
	if len(c.stack) == 0 {
		return nil
	}
	return c.top()
}

func (c *Controller) CurrentName() string {
	if s := c.Current(); s != nil {
		return s.Name()
	}
	return ""
}

func (c *Controller) LocalTimeMs() float64 {
	if s := c.Current(); s != nil {
		return s.LocalTimeMs()
	}
	return 0
}

func (c *Controller) AtEnd() bool {
	if s := c.Current(); s != nil {
		return s.AtEnd()
	}
	return false
}

// RootMotion returns a copy of the current state's root curve. During a
// crossfade the current state is the incoming one.
func (c *Controller) RootMotion() Curve {
	if s := c.Current(); s != nil {
		return s.RootMotion()
	}
	return Curve{}
}

// RootMotionRef returns the current state's curve for in-place edits.
func (c *Controller) RootMotionRef() *Curve {
	if s := c.Current(); s != nil {
		return s.RootMotionRef()
	}
	return nil
}

// Lookup exposes the registry for callers that only hold the controller.
func (c *Controller) Lookup(name string) (*State, error) {
	return c.registry.Lookup(name)
}

func (c *Controller) Crossfading() bool { return c.fade != nil }

// Crossfade returns the outgoing and incoming states and the remaining fade.
func (c *Controller) Crossfade() (out, in *State, remainingMs float64, ok bool) {
	if c.fade == nil {
		return nil, nil, 0, false
	}
	return c.fade.out, c.fade.in, c.fade.remainingMs, true
}

// BlendWeight is the incoming weight of the active crossfade, 1 otherwise.
func (c *Controller) BlendWeight() float64 {
	if c.fade == nil {
		return 1
	}
	return c.fade.node.Weight()
}

// Stack returns the state names from bottom to top.
func (c *Controller) Stack() []string {
	names := make([]string, len(c.stack))
	for i, s := range c.stack {
		names[i] = s.Name()
	}
	return names
}

// Tree is the indirection node the renderer evaluates.
func (c *Controller) Tree() *Tree { return &c.tree }

func (c *Controller) SampledPose() Pose { return c.tree.Evaluate() }
