package prefabs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/milk9111/parkour/anim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallGraph = `<AnimationStates>
	<AnimationState name="idle" clip="clips/idle.yaml" removeRootMotion="true">
		<Transitions>
			<Transition name="walk" animationState="walk" fadeDurationMs="250"/>
		</Transitions>
	</AnimationState>
	<AnimationState name="walk" clip="clips/walk.yaml">
		<Transitions>
			<Transition name="idle" animationState="idle" fadeDurationMs="62.5"/>
			<TransitionEnd animationState="idle" fadeDurationMs="0"/>
			<PopOutTransition animationState="idle" fadeDurationMs="125"/>
		</Transitions>
	</AnimationState>
</AnimationStates>`

func TestParseAnimConfig(t *testing.T) {
	defs, err := ParseAnimConfig([]byte(smallGraph))
	require.NoError(t, err)

	want := []anim.StateDef{
		{
			Name:             "idle",
			Clip:             "clips/idle.yaml",
			RemoveRootMotion: true,
			Transitions:      []anim.Transition{{Name: "walk", Target: "walk", FadeMs: 250}},
		},
		{
			Name:        "walk",
			Clip:        "clips/walk.yaml",
			Transitions: []anim.Transition{{Name: "idle", Target: "idle", FadeMs: 62.5}},
			End:         &anim.Transition{Name: anim.EndTransitionName, Target: "idle"},
			PopOut:      &anim.Transition{Name: anim.PopOutTransitionName, Target: "idle", FadeMs: 125},
		},
	}
	if diff := cmp.Diff(want, defs); diff != "" {
		t.Fatalf("state defs mismatch (-want +got):\n%s", diff)
	}
}

func TestParseAnimConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		xml  string
	}{
		{name: "malformed", xml: `<AnimationStates><AnimationState name="idle"`},
		{name: "unnamed state", xml: `<AnimationStates><AnimationState clip="a.yaml"/></AnimationStates>`},
		{name: "no clip", xml: `<AnimationStates><AnimationState name="idle"/></AnimationStates>`},
		{
			name: "transition without target",
			xml: `<AnimationStates><AnimationState name="idle" clip="a.yaml"><Transitions>
				<Transition name="walk"/></Transitions></AnimationState></AnimationStates>`,
		},
		{
			name: "end without target",
			xml: `<AnimationStates><AnimationState name="idle" clip="a.yaml"><Transitions>
				<TransitionEnd fadeDurationMs="10"/></Transitions></AnimationState></AnimationStates>`,
		},
		{name: "wrong root", xml: `<States><AnimationState name="idle" clip="a.yaml"/></States>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAnimConfig([]byte(tt.xml))
			assert.Error(t, err)
		})
	}
}

func TestEmbeddedAnimConfigValidates(t *testing.T) {
	defs, err := Embedded().LoadAnimConfig(AnimConfigFile)
	require.NoError(t, err)

	reg, err := anim.NewRegistry(defs)
	require.NoError(t, err)
	defer reg.Close()

	assert.NoError(t, reg.Validate())
	assert.Equal(t, 21, reg.Len())
}
