package prefabs

import (
	"context"
	"fmt"
	"math"

	"github.com/milk9111/parkour/anim"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

// ClipSpec is the on-disk form of an animation clip. Only the root joint's
// translation track is stored.
type ClipSpec struct {
	Name             string    `yaml:"name"`
	DurationMs       float64   `yaml:"duration_ms"`
	Loop             bool      `yaml:"loop"`
	RemoveRootMotion bool      `yaml:"remove_root_motion"`
	Root             []KeySpec `yaml:"root"`
}

type KeySpec struct {
	T float64 `yaml:"t"`
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func ParseClip(data []byte) (*anim.Clip, error) {
	var spec ClipSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: decode clip: %w", err)
	}
	return spec.Build()
}

// Build checks the keyframes and turns the spec into a clip.
func (c ClipSpec) Build() (*anim.Clip, error) {
	if len(c.Root) == 0 {
		return nil, fmt.Errorf("prefabs: clip %q has no root keyframes", c.Name)
	}
	if c.DurationMs < 0 {
		return nil, fmt.Errorf("prefabs: clip %q has negative duration", c.Name)
	}

	keys := make([]anim.Keyframe, len(c.Root))
	for i, k := range c.Root {
		if k.T < 0 || math.IsNaN(k.T) {
			return nil, fmt.Errorf("prefabs: clip %q: keyframe %d has bad time %v", c.Name, i, k.T)
		}
		if i > 0 && k.T < c.Root[i-1].T {
			return nil, fmt.Errorf("prefabs: clip %q: keyframe %d goes back in time", c.Name, i)
		}
		keys[i] = anim.Keyframe{TimeMs: k.T, Value: r3.Vec{X: k.X, Y: k.Y, Z: k.Z}}
	}

	return &anim.Clip{
		Name:             c.Name,
		DurationMs:       c.DurationMs,
		Loop:             c.Loop,
		RemoveRootMotion: c.RemoveRootMotion,
		Root:             anim.NewCurve(keys...),
	}, nil
}

// LoadClip makes a Store an anim.ClipLoader. ref is the clip path the state
// graph names.
func (s *Store) LoadClip(ctx context.Context, ref string) (*anim.Clip, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := s.Load(ref)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", ref, err)
	}
	clip, err := ParseClip(data)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", ref, err)
	}
	return clip, nil
}
