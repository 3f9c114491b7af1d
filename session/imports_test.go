package session

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The simulation packages and the headless tools must build without a
// display, so only the root shell may import ebiten.
func TestHeadlessPackagesAvoidEbiten(t *testing.T) {
	dirs := []string{
		"../anim", "../common", "../sensor", "../input", "../movement",
		"../character", "../prefabs", ".", "../cmd/locosim", "../cmd/curveplot",
	}
	fset := token.NewFileSet()
	for _, dir := range dirs {
		files, err := filepath.Glob(filepath.Join(dir, "*.go"))
		require.NoError(t, err)
		require.NotEmpty(t, files, dir)

		for _, name := range files {
			if strings.HasSuffix(name, "_test.go") {
				continue
			}
			f, err := parser.ParseFile(fset, name, nil, parser.ImportsOnly)
			require.NoError(t, err)
			for _, imp := range f.Imports {
				path, err := strconv.Unquote(imp.Path.Value)
				require.NoError(t, err)
				assert.False(t, strings.HasPrefix(path, "github.com/hajimehoshi/ebiten"),
					"%s imports %s", name, path)
			}
		}
	}
}
