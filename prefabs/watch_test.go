package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsConfigEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	target := filepath.Join(dir, LevelFile)
	require.NoError(t, os.WriteFile(target, []byte("name: a\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, target, name)
	case <-time.After(2 * time.Second):
		t.Fatal("no event for level edit")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestFileKinds(t *testing.T) {
	assert.True(t, isConfigFile("prefabs/anim_config.xml"))
	assert.True(t, isConfigFile("clips/idle.YAML"))
	assert.False(t, isConfigFile("main.go"))
	assert.True(t, isScriptFile("scripts/walk.tengo"))
	assert.False(t, isScriptFile("scripts/walk.lua"))
}
