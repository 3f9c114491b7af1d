package anim

import (
	"fmt"
	"sort"
	"sync/atomic"

	"gonum.org/v1/gonum/spatial/r3"
)

// Transition is an edge of the state graph.
type Transition struct {
	Name   string
	Target string
	FadeMs float64
}

const (
	EndTransitionName    = "Transition End"
	PopOutTransitionName = "Pop Out Transition"
)

// StateDef is the declarative description of one animation state.
type StateDef struct {
	Name             string
	Clip             string
	RemoveRootMotion bool
	Transitions      []Transition
	End              *Transition
	PopOut           *Transition
}

// State is one node of the animation graph. States are owned by a Registry;
// their clip arrives asynchronously and Ready reports when it has.
type State struct {
	name             string
	clipRef          string
	removeRootMotion bool
	transitions      map[string]Transition
	end              *Transition
	popOut           *Transition

	clip   atomic.Pointer[Clip]
	node   *ClipNode
	source Curve

	localTimeMs float64
}

func newState(def StateDef) *State {
	s := &State{
		name:             def.Name,
		clipRef:          def.Clip,
		removeRootMotion: def.RemoveRootMotion,
		transitions:      make(map[string]Transition, len(def.Transitions)),
	}
	for _, t := range def.Transitions {
		s.transitions[t.Name] = t
	}
	if def.End != nil {
		end := *def.End
		end.Name = EndTransitionName
		s.end = &end
	}
	if def.PopOut != nil {
		pop := *def.PopOut
		pop.Name = PopOutTransitionName
		s.popOut = &pop
	}
	return s
}

func (s *State) Name() string { return s.name }

func (s *State) ClipRef() string { return s.clipRef }

// Ready reports whether the state's clip has been loaded.
func (s *State) Ready() bool { return s.clip.Load() != nil }

// Clip returns the loaded clip, or nil before Ready.
func (s *State) Clip() *Clip { return s.clip.Load() }

func (s *State) setClip(c *Clip) {
	c.RemoveRootMotion = c.RemoveRootMotion || s.removeRootMotion
	s.node = NewClipNode(c)
	s.source = c.Root.Clone()
	s.clip.Store(c)
}

// Node is the state's single-clip evaluation subtree. It is nil before Ready.
func (s *State) Node() *ClipNode {
	if !s.Ready() {
		return nil
	}
	return s.node
}

func (s *State) LocalTimeMs() float64 { return s.localTimeMs }

// Reset rewinds local time to zero.
func (s *State) Reset() {
	s.localTimeMs = 0
	if s.Ready() {
		s.node.SetParam(0)
	}
}

// EndTimeMs is the clip end, or 0 before Ready.
func (s *State) EndTimeMs() float64 {
	if c := s.Clip(); c != nil {
		return c.EndMs()
	}
	return 0
}

// Update advances local time by deltaMs and clamps it at the clip end. The
// clip's Loop flag is not honored: playback never wraps.
func (s *State) Update(deltaMs float64) {
	c := s.Clip()
	if c == nil {
		return
	}
	end := c.EndMs()
	s.localTimeMs += deltaMs
	if s.localTimeMs > end {
		s.localTimeMs = end
	}
	if end > 0 {
		s.node.SetParam(s.localTimeMs / end)
	}
}

// AtEnd reports whether local time has reached the clip end. A state that is
// not ready is never at its end.
func (s *State) AtEnd() bool {
	c := s.Clip()
	return c != nil && s.localTimeMs >= c.EndMs()
}

// Transition looks up an outgoing transition by name.
func (s *State) Transition(name string) (Transition, error) {
	t, ok := s.transitions[name]
	if !ok {
		return Transition{}, fmt.Errorf("anim: transition %q from %q: %w", name, s.name, ErrNotFound)
	}
	return t, nil
}

func (s *State) EndTransition() (Transition, bool) {
	if s.end == nil {
		return Transition{}, false
	}
	return *s.end, true
}

func (s *State) PopOutTransition() (Transition, bool) {
	if s.popOut == nil {
		return Transition{}, false
	}
	return *s.popOut, true
}

// Transitions returns the named transitions sorted by name.
func (s *State) Transitions() []Transition {
	out := make([]Transition, 0, len(s.transitions))
	for _, t := range s.transitions {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// RootMotion returns a private copy of the root joint translation curve.
func (s *State) RootMotion() Curve {
	if c := s.Clip(); c != nil {
		return c.Root.Clone()
	}
	return Curve{}
}

// RootMotionRef returns the clip's own curve for in-place retargeting of
// shared data. It is nil before Ready.
func (s *State) RootMotionRef() *Curve {
	if c := s.Clip(); c != nil {
		return &c.Root
	}
	return nil
}

// SourceRootMotion returns a copy of the root curve as it was loaded, before
// any in-place retargeting.
func (s *State) SourceRootMotion() Curve {
	if !s.Ready() {
		return Curve{}
	}
	return s.source.Clone()
}

func (s *State) FirstRootMotion() r3.Vec {
	if c := s.Clip(); c != nil {
		return c.Root.First()
	}
	return r3.Vec{}
}

func (s *State) LastRootMotion() r3.Vec {
	if c := s.Clip(); c != nil {
		return c.Root.Last()
	}
	return r3.Vec{}
}

// RootMotionDelta is the last minus the first root keyframe.
func (s *State) RootMotionDelta() r3.Vec {
	return r3.Sub(s.LastRootMotion(), s.FirstRootMotion())
}
