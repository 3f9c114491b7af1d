package prefabs

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed *.xml *.yaml clips/*.yaml scripts/*.tengo
var files embed.FS

// Store reads config files. A file under dir on disk wins over the copy in
// the fallback filesystem, which lets a running session pick up edits.
type Store struct {
	dir      string
	fallback fs.FS
}

// NewStore reads from dir first and the embedded files second. An empty dir
// disables the disk override.
func NewStore(dir string) *Store {
	return NewStoreFS(dir, files)
}

func NewStoreFS(dir string, fallback fs.FS) *Store {
	return &Store{dir: dir, fallback: fallback}
}

// Embedded reads only the files compiled into the binary.
func Embedded() *Store { return NewStore("") }

// Dir is the disk override root, empty when there is none.
func (s *Store) Dir() string { return s.dir }

func (s *Store) Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if clean == "" {
		return nil, fmt.Errorf("prefabs: empty file name")
	}
	if s.dir != "" {
		if data, err := os.ReadFile(s.diskPath(clean)); err == nil {
			return data, nil
		}
	}
	return fs.ReadFile(s.fallback, clean)
}

func (s *Store) LoadScript(name string) ([]byte, error) {
	return s.Load(cleanScriptPath(name))
}

// ModTime reports the disk copy's modification time. ok is false when the
// file only exists in the fallback.
func (s *Store) ModTime(name string) (time.Time, bool) {
	if s.dir == "" {
		return time.Time{}, false
	}
	info, err := os.Stat(s.diskPath(cleanPrefabPath(name)))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// WatchDirs lists the disk directories a Watcher should follow.
func (s *Store) WatchDirs() []string {
	if s.dir == "" {
		return nil
	}
	var dirs []string
	for _, sub := range []string{"", "clips", "scripts"} {
		dir := filepath.Join(s.dir, sub)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}

	s := filepath.ToSlash(path)

	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}

	return fmt.Sprintf("scripts/%s", s)
}

func (s *Store) diskPath(clean string) string {
	return filepath.Join(s.dir, filepath.FromSlash(clean))
}
