package anim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateIDRoundTrip(t *testing.T) {
	seen := make(map[string]bool)
	for _, id := range StateIDs() {
		name := id.String()
		require.False(t, seen[name], "duplicate name %q", name)
		seen[name] = true

		got, err := ParseStateID(name)
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
}

func TestStateIDUnknown(t *testing.T) {
	_, err := ParseStateID("unknown")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, StateUnknown.Valid())
	assert.Equal(t, "StateID(99)", StateID(99).String())
}
