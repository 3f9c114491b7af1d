package input

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// A key script defines keys(frame, time) returning the names of the keys
// held on that frame. An optional global `frames` bounds the run.
const keyScriptDispatch = `
__keys = keys(__frame, __time)
`

// ScriptSource replays a tengo key script one frame per Poll.
type ScriptSource struct {
	compiled *tengo.Compiled
	tracker  Tracker
	step     float64
	frame    int
	frames   int
}

// NewScriptSource compiles src. step is the simulated frame length in
// seconds and is exposed to the script as time.
func NewScriptSource(src []byte, step float64) (*ScriptSource, error) {
	script := tengo.NewScript([]byte(string(src) + "\n" + keyScriptDispatch))
	_ = script.Add("__frame", 0)
	_ = script.Add("__time", 0.0)
	_ = script.Add("__keys", []any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("input: compile key script: %w", err)
	}

	s := &ScriptSource{compiled: compiled, step: step}
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("input: run key script: %w", err)
	}
	if compiled.IsDefined("frames") {
		s.frames = compiled.Get("frames").Int()
	}
	return s, nil
}

// Frames is the script's declared length, 0 when it declares none.
func (s *ScriptSource) Frames() int { return s.frames }

// Frame is the index of the next frame Poll will produce.
func (s *ScriptSource) Frame() int { return s.frame }

func (s *ScriptSource) Poll() (Keys, error) {
	if err := s.compiled.Set("__frame", s.frame); err != nil {
		return Keys{}, err
	}
	if err := s.compiled.Set("__time", float64(s.frame)*s.step); err != nil {
		return Keys{}, err
	}
	if err := s.compiled.Run(); err != nil {
		return Keys{}, fmt.Errorf("input: key script frame %d: %w", s.frame, err)
	}

	var held []Key
	for _, v := range s.compiled.Get("__keys").Array() {
		name, ok := v.(string)
		if !ok {
			return Keys{}, fmt.Errorf("input: key script frame %d: key %v is not a string", s.frame, v)
		}
		key, err := ParseKey(name)
		if err != nil {
			return Keys{}, fmt.Errorf("input: key script frame %d: %w", s.frame, err)
		}
		held = append(held, key)
	}
	s.frame++
	return s.tracker.Next(held...), nil
}

// HeldNames is a convenience for logs.
func HeldNames(k Keys) string {
	return strings.Trim(k.String(), "[]")
}
