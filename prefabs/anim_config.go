package prefabs

import (
	"encoding/xml"
	"errors"
	"fmt"

	"github.com/milk9111/parkour/anim"
)

// AnimConfigFile is the state graph every session starts from.
const AnimConfigFile = "anim_config.xml"

type animConfigXML struct {
	XMLName xml.Name       `xml:"AnimationStates"`
	States  []animStateXML `xml:"AnimationState"`
}

type animStateXML struct {
	Name             string          `xml:"name,attr"`
	Clip             string          `xml:"clip,attr"`
	RemoveRootMotion bool            `xml:"removeRootMotion,attr"`
	Transitions      []transitionXML `xml:"Transitions>Transition"`
	End              *transitionXML  `xml:"Transitions>TransitionEnd"`
	PopOut           *transitionXML  `xml:"Transitions>PopOutTransition"`
}

type transitionXML struct {
	Name           string  `xml:"name,attr"`
	AnimationState string  `xml:"animationState,attr"`
	FadeDurationMs float64 `xml:"fadeDurationMs,attr"`
}

func (t transitionXML) toTransition(name string) anim.Transition {
	return anim.Transition{Name: name, Target: t.AnimationState, FadeMs: t.FadeDurationMs}
}

// ParseAnimConfig decodes an animation state graph. Every malformed entry is
// reported; graph-level checks such as dangling targets are left to
// anim.Registry.Validate.
func ParseAnimConfig(data []byte) ([]anim.StateDef, error) {
	var cfg animConfigXML
	if err := xml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("prefabs: decode anim config: %w", err)
	}

	var errs []error
	defs := make([]anim.StateDef, 0, len(cfg.States))
	for i, st := range cfg.States {
		if st.Name == "" {
			errs = append(errs, fmt.Errorf("prefabs: animation state %d has no name", i))
			continue
		}
		if st.Clip == "" {
			errs = append(errs, fmt.Errorf("prefabs: %s: no clip", st.Name))
		}

		def := anim.StateDef{
			Name:             st.Name,
			Clip:             st.Clip,
			RemoveRootMotion: st.RemoveRootMotion,
		}
		for _, t := range st.Transitions {
			if t.Name == "" || t.AnimationState == "" {
				errs = append(errs, fmt.Errorf("prefabs: %s: transition needs name and animationState", st.Name))
				continue
			}
			def.Transitions = append(def.Transitions, t.toTransition(t.Name))
		}
		if st.End != nil {
			if st.End.AnimationState == "" {
				errs = append(errs, fmt.Errorf("prefabs: %s: end transition needs animationState", st.Name))
			} else {
				end := st.End.toTransition(anim.EndTransitionName)
				def.End = &end
			}
		}
		if st.PopOut != nil {
			if st.PopOut.AnimationState == "" {
				errs = append(errs, fmt.Errorf("prefabs: %s: pop out transition needs animationState", st.Name))
			} else {
				pop := st.PopOut.toTransition(anim.PopOutTransitionName)
				def.PopOut = &pop
			}
		}
		defs = append(defs, def)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return defs, nil
}

func (s *Store) LoadAnimConfig(name string) ([]anim.StateDef, error) {
	data, err := s.Load(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", name, err)
	}
	defs, err := ParseAnimConfig(data)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return defs, nil
}
