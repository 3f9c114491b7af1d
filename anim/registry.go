package anim

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentLoads bounds the clip loading goroutines.
const maxConcurrentLoads = 4

// Registry is the name-keyed table of animation states. It is built once
// from a declarative graph and owned by the session that created it; Close
// releases every state.
type Registry struct {
	states map[string]*State
	order  []string
	closed bool
}

// NewRegistry builds a registry from state definitions. Duplicate or empty
// names are rejected.
func NewRegistry(defs []StateDef) (*Registry, error) {
	r := &Registry{states: make(map[string]*State, len(defs))}
	for _, def := range defs {
		if def.Name == "" {
			return nil, fmt.Errorf("anim: state with clip %q has no name", def.Clip)
		}
		if _, dup := r.states[def.Name]; dup {
			return nil, fmt.Errorf("anim: duplicate state %q", def.Name)
		}
		r.states[def.Name] = newState(def)
		r.order = append(r.order, def.Name)
	}
	return r, nil
}

// Lookup returns the state registered under name. A miss is logged and
// reported as ErrNotFound.
func (r *Registry) Lookup(name string) (*State, error) {
	if r == nil || r.closed {
		return nil, fmt.Errorf("anim: state %q: registry closed: %w", name, ErrNotFound)
	}
	s, ok := r.states[name]
	if !ok {
		log.Printf("anim: unable to find animation state %q", name)
		return nil, fmt.Errorf("anim: state %q: %w", name, ErrNotFound)
	}
	return s, nil
}

// Names returns state names in definition order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

func (r *Registry) Len() int { return len(r.order) }

// Validate checks the graph for dangling targets and makes sure every
// StateID can be requested somewhere. All problems are joined.
func (r *Registry) Validate() error {
	var errs []error
	if _, ok := r.states[StateIdle.String()]; !ok {
		errs = append(errs, fmt.Errorf("anim: missing start state %q", StateIdle))
	}

	requestable := make(map[string]bool)
	for _, name := range r.order {
		s := r.states[name]
		requestable[name] = true

		edges := s.Transitions()
		if t, ok := s.EndTransition(); ok {
			edges = append(edges, t)
		}
		if t, ok := s.PopOutTransition(); ok {
			edges = append(edges, t)
		}
		for _, t := range edges {
			if _, ok := r.states[t.Target]; !ok {
				errs = append(errs, fmt.Errorf("anim: %s: transition %q targets unknown state %q", name, t.Name, t.Target))
			}
			if t.FadeMs < 0 {
				errs = append(errs, fmt.Errorf("anim: %s: transition %q has negative fade", name, t.Name))
			}
			requestable[t.Name] = true
		}
	}

	for _, id := range StateIDs() {
		if !requestable[id.String()] {
			errs = append(errs, fmt.Errorf("anim: state id %q is neither a state nor a transition", id))
		}
	}
	return errors.Join(errs...)
}

// LoadClips loads every state's clip concurrently and marks each state ready
// as soon as its clip arrives. It waits for all loads and returns the joined
// failures; states whose clip failed stay not ready.
func (r *Registry) LoadClips(ctx context.Context, loader ClipLoader) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLoads)

	errs := make([]error, len(r.order))
	for i, name := range r.order {
		s := r.states[name]
		if s.Ready() {
			continue
		}
		g.Go(func() error {
			clip, err := loader.LoadClip(ctx, s.clipRef)
			if err != nil {
				errs[i] = fmt.Errorf("anim: load clip %q for %s: %w", s.clipRef, s.name, err)
				return nil
			}
			if clip.Name == "" {
				clip.Name = s.name
			}
			s.setClip(clip)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return errors.Join(errs...)
}

// LoadClipsAsync starts LoadClips in the background. The channel yields the
// result once and is then closed.
func (r *Registry) LoadClipsAsync(ctx context.Context, loader ClipLoader) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- r.LoadClips(ctx, loader)
	}()
	return done
}

// Ready reports whether every state has its clip.
func (r *Registry) Ready() bool {
	for _, s := range r.states {
		if !s.Ready() {
			return false
		}
	}
	return true
}

// NotReady lists the states still waiting on a clip, sorted by name.
func (r *Registry) NotReady() []string {
	var names []string
	for name, s := range r.states {
		if !s.Ready() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Close releases every state. Lookups on a closed registry miss.
func (r *Registry) Close() {
	if r == nil || r.closed {
		return
	}
	r.closed = true
	r.states = nil
	r.order = nil
}
