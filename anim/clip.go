package anim

import (
	"context"
	"fmt"
)

// Clip is a loaded animation clip. Only the root joint translation curve is
// kept; the rest of the skeleton is owned by the pose evaluator.
type Clip struct {
	Name       string
	DurationMs float64
	// Loop is carried from the clip source but playback always clamps.
	Loop             bool
	RemoveRootMotion bool
	Root             Curve
}

// EndMs is the clip end time, never shorter than the root curve.
func (c *Clip) EndMs() float64 {
	if end := c.Root.EndTimeMs(); end > c.DurationMs {
		return end
	}
	return c.DurationMs
}

// Sample writes the clip's pose at timeMs into pose. A clip that removes root
// motion keeps the root at its first keyframe.
func (c *Clip) Sample(timeMs float64, pose *Pose) {
	if pose == nil {
		return
	}
	if c.RemoveRootMotion {
		pose.Root = c.Root.First()
	} else {
		pose.Root = c.Root.Sample(timeMs)
	}
	pose.Clip = c.Name
	pose.TimeMs = timeMs
}

// Clone returns a deep copy that can be edited without touching c.
func (c *Clip) Clone() *Clip {
	cp := *c
	cp.Root = c.Root.Clone()
	return &cp
}

// ClipLoader resolves a clip reference from the state graph.
type ClipLoader interface {
	LoadClip(ctx context.Context, ref string) (*Clip, error)
}

type ClipLoaderFunc func(ctx context.Context, ref string) (*Clip, error)

func (f ClipLoaderFunc) LoadClip(ctx context.Context, ref string) (*Clip, error) {
	return f(ctx, ref)
}

// MapLoader serves clones of in-memory clips keyed by reference.
type MapLoader map[string]*Clip

func (m MapLoader) LoadClip(ctx context.Context, ref string) (*Clip, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	clip, ok := m[ref]
	if !ok {
		return nil, fmt.Errorf("anim: clip %q: %w", ref, ErrNotFound)
	}
	return clip.Clone(), nil
}
