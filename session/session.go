package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/milk9111/parkour/anim"
	"github.com/milk9111/parkour/character"
	"github.com/milk9111/parkour/common"
	"github.com/milk9111/parkour/input"
	"github.com/milk9111/parkour/prefabs"
	"github.com/milk9111/parkour/sensor"
)

// DefaultStepSeconds matches ebiten's default tick rate.
const DefaultStepSeconds = 1.0 / 60

type Config struct {
	Store *prefabs.Store
	// Loader overrides where clips come from. The store serves them when nil.
	Loader anim.ClipLoader
	// StepSeconds is the game clock's fixed frame length.
	StepSeconds float64
	// Watch follows the store's disk directory and reloads on edits.
	Watch bool
}

func DefaultConfig() Config {
	return Config{Store: prefabs.Embedded(), StepSeconds: DefaultStepSeconds}
}

// Clocks is the session's clock tree. Animation, Character and Camera are
// children of Game.
type Clocks struct {
	Game      *common.Clock
	Animation *common.Clock
	Character *common.Clock
	Camera    *common.Clock
}

func newClocks() Clocks {
	game := common.NewClock()
	return Clocks{
		Game:      game,
		Animation: common.NewChildClock(game),
		Character: common.NewChildClock(game),
		Camera:    common.NewChildClock(game),
	}
}

// Session owns everything one run of the simulation needs: the animation
// registry, the clocks, the obstacle world and the character. Nothing is
// shared between sessions.
type Session struct {
	cfg     Config
	loader  anim.ClipLoader
	watcher *prefabs.Watcher

	Clocks Clocks

	bundle    prefabs.Bundle
	registry  *anim.Registry
	world     *sensor.World
	character *character.Character

	scheduler       *Scheduler
	keys            input.Keys
	reloadRequested bool
	closed          bool
}

func New(ctx context.Context, cfg Config) (*Session, error) {
	if cfg.Store == nil {
		cfg.Store = prefabs.Embedded()
	}
	if cfg.StepSeconds <= 0 {
		cfg.StepSeconds = DefaultStepSeconds
	}
	s := &Session{cfg: cfg, loader: cfg.Loader, Clocks: newClocks()}
	if s.loader == nil {
		s.loader = cfg.Store
	}

	bundle, err := cfg.Store.LoadBundle()
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	reg, err := buildRegistry(ctx, bundle.States, s.loader)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	world := sensor.NewWorld(bundle.Level.Obstacles...)
	ch, err := character.New(bundle.Character, bundle.Level.Spawn, reg, world, character.Clocks{
		Character: s.Clocks.Character,
		Animation: s.Clocks.Animation,
		Camera:    s.Clocks.Camera,
	})
	if err != nil {
		reg.Close()
		return nil, fmt.Errorf("session: %w", err)
	}

	if cfg.Watch {
		if dirs := cfg.Store.WatchDirs(); len(dirs) > 0 {
			w, err := prefabs.NewWatcher(dirs...)
			if err != nil {
				reg.Close()
				return nil, fmt.Errorf("session: watch %v: %w", dirs, err)
			}
			s.watcher = w
		}
	}

	s.bundle = bundle
	s.registry = reg
	s.world = world
	s.character = ch
	s.scheduler = NewScheduler(reloadSystem{}, clockSystem{}, toggleSystem{}, characterSystem{})
	return s, nil
}

// buildRegistry validates the graph and loads every clip. A partially built
// registry is closed before returning an error.
func buildRegistry(ctx context.Context, defs []anim.StateDef, loader anim.ClipLoader) (*anim.Registry, error) {
	reg, err := anim.NewRegistry(defs)
	if err != nil {
		return nil, err
	}
	if err := reg.Validate(); err != nil {
		reg.Close()
		return nil, err
	}
	if err := reg.LoadClips(ctx, loader); err != nil {
		reg.Close()
		return nil, err
	}
	return reg, nil
}

// Update runs one frame with keys as the frame's input.
func (s *Session) Update(keys input.Keys) {
	if s.closed {
		return
	}
	s.keys = keys
	s.scheduler.Update(s)
}

// RequestReload asks for a reload at the start of the next frame.
func (s *Session) RequestReload() { s.reloadRequested = true }

// Reload rebuilds the animation registry from the store and moves the
// character onto it. The character restarts in idle where it stands. On
// failure the current registry stays in use. Level layout and controller
// settings are read once in New.
func (s *Session) Reload(ctx context.Context) error {
	if s.closed {
		return errors.New("session: reload: closed")
	}
	bundle, err := s.cfg.Store.LoadBundle()
	if err != nil {
		return fmt.Errorf("session: reload: %w", err)
	}
	reg, err := buildRegistry(ctx, bundle.States, s.loader)
	if err != nil {
		return fmt.Errorf("session: reload: %w", err)
	}
	if err := s.character.Rebind(reg, bundle.Character.Movement); err != nil {
		reg.Close()
		return fmt.Errorf("session: reload: %w", err)
	}

	old := s.registry
	s.registry = reg
	s.bundle.States = bundle.States
	s.bundle.Character.Movement = bundle.Character.Movement
	old.Close()
	return nil
}

// Close releases the watcher and the registry. The session cannot be used
// afterwards.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	var err error
	if s.watcher != nil {
		err = s.watcher.Close()
	}
	s.character.Anim.Shutdown()
	s.registry.Close()
	return err
}

func (s *Session) Character() *character.Character { return s.character }

func (s *Session) Registry() *anim.Registry { return s.registry }

func (s *Session) World() *sensor.World { return s.world }

func (s *Session) Level() prefabs.LevelSpec { return s.bundle.Level }

func (s *Session) Keys() input.Keys { return s.keys }

func (s *Session) Store() *prefabs.Store { return s.cfg.Store }
