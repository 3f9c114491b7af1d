package prefabs

import (
	"errors"
	"fmt"

	"github.com/milk9111/parkour/anim"
	"github.com/milk9111/parkour/character"
	"github.com/milk9111/parkour/sensor"
	"gopkg.in/yaml.v3"
)

const (
	TuningFile = "tuning.yaml"
	LevelFile  = "level.yaml"
)

func LoadSpec[T any](s *Store, filename string) (T, error) {
	var spec T
	if err := s.decodeInto(filename, &spec); err != nil {
		var zero T
		return zero, err
	}
	return spec, nil
}

// decodeInto unmarshals over out, so fields the file leaves out keep the
// values out already holds.
func (s *Store) decodeInto(filename string, out any) error {
	data, err := s.Load(filename)
	if err != nil {
		return fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return nil
}

// LoadTuning reads the character config on top of character.DefaultConfig.
func (s *Store) LoadTuning(filename string) (character.Config, error) {
	cfg := character.DefaultConfig()
	if err := s.decodeInto(filename, &cfg); err != nil {
		return character.Config{}, err
	}
	if cfg.Height <= 0 {
		return character.Config{}, fmt.Errorf("prefabs: %s: height must be positive", filename)
	}
	return cfg, nil
}

// LevelSpec is the static layout a session plays in.
type LevelSpec struct {
	Name      string            `yaml:"name"`
	Spawn     character.Spawn   `yaml:"spawn"`
	Obstacles []sensor.Obstacle `yaml:"obstacles"`
}

func (l LevelSpec) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(l.Obstacles))
	for i, o := range l.Obstacles {
		if o.Min.X > o.Max.X || o.Min.Y > o.Max.Y || o.Min.Z > o.Max.Z {
			errs = append(errs, fmt.Errorf("prefabs: level %s: obstacle %d (%s) has min above max", l.Name, i, o.Name))
		}
		if o.Name == "" {
			continue
		}
		if seen[o.Name] {
			errs = append(errs, fmt.Errorf("prefabs: level %s: duplicate obstacle %q", l.Name, o.Name))
		}
		seen[o.Name] = true
	}
	return errors.Join(errs...)
}

func (s *Store) LoadLevel(filename string) (LevelSpec, error) {
	level, err := LoadSpec[LevelSpec](s, filename)
	if err != nil {
		return LevelSpec{}, err
	}
	if err := level.Validate(); err != nil {
		return LevelSpec{}, err
	}
	return level, nil
}

// Bundle is everything a session is built from.
type Bundle struct {
	States    []anim.StateDef
	Character character.Config
	Level     LevelSpec
}

// LoadBundle reads the state graph, tuning and level from their standard
// files.
func (s *Store) LoadBundle() (Bundle, error) {
	states, err := s.LoadAnimConfig(AnimConfigFile)
	if err != nil {
		return Bundle{}, err
	}
	cfg, err := s.LoadTuning(TuningFile)
	if err != nil {
		return Bundle{}, err
	}
	level, err := s.LoadLevel(LevelFile)
	if err != nil {
		return Bundle{}, err
	}
	return Bundle{States: states, Character: cfg, Level: level}, nil
}
