package session

import (
	"context"
	"log"

	"github.com/milk9111/parkour/input"
)

// reloadSystem swaps in edited config before anything else runs, so a frame
// never mixes two graphs.
type reloadSystem struct{}

func (reloadSystem) Update(s *Session) {
	if s.watcher != nil {
		if names := s.watcher.Drain(); len(names) > 0 {
			log.Printf("session: config changed: %v", names)
			s.reloadRequested = true
		}
		select {
		case err, ok := <-s.watcher.Errors:
			if ok {
				log.Printf("session: watcher: %v", err)
			}
		default:
		}
	}
	if !s.reloadRequested {
		return
	}
	s.reloadRequested = false
	if err := s.Reload(context.Background()); err != nil {
		log.Printf("session: reload failed, keeping current graph: %v", err)
	}
}

// clockSystem handles P and O, then advances the game clock and every
// clock below it.
type clockSystem struct{}

func (clockSystem) Update(s *Session) {
	game := s.Clocks.Game
	if s.keys.JustPressed(input.KeyP) {
		game.TogglePause()
	}
	if s.keys.JustPressed(input.KeyO) {
		game.StepSingleFrame()
	}
	game.Tick(s.cfg.StepSeconds)
}

type toggleSystem struct{}

func (toggleSystem) Update(s *Session) {
	if s.keys.JustPressed(input.KeyL) {
		s.Clocks.Animation.TogglePause()
	}
	if s.keys.JustPressed(input.KeyF6) {
		s.character.Body.ToggleMode()
	}
}

type characterSystem struct{}

func (characterSystem) Update(s *Session) {
	s.character.Update(s.keys)
}
