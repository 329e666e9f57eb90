package archive

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveMatching(t *testing.T) {
	src := t.TempDir()
	dest := filepath.Join(t.TempDir(), "dataset")
	writeFile(t, filepath.Join(src, "a.txt"), "a")
	writeFile(t, filepath.Join(src, "b.zip"), "b")
	writeFile(t, filepath.Join(src, "c.csv"), "c")

	counts, moved, err := MoveMatching([]string{"*.zip"}, src, dest)
	require.NoError(t, err)
	assert.Equal(t, 1, moved)
	assert.Equal(t, 1, counts["*.zip"])

	assert.ElementsMatch(t, []string{"b.zip"}, dirNames(t, dest))
	// Non-matching files stay behind in the source tree.
	assert.ElementsMatch(t, []string{"a.txt", "c.csv"}, dirNames(t, src))
}

func TestMoveMatching_PreservesRelativePath(t *testing.T) {
	src := t.TempDir()
	dest := filepath.Join(t.TempDir(), "dataset")
	writeFile(t, filepath.Join(src, "shp", "coast.shp"), "shp")
	writeFile(t, filepath.Join(src, "shp", "coast.dbf"), "dbf")
	writeFile(t, filepath.Join(src, "doc", "readme.txt"), "doc")

	counts, moved, err := MoveMatching([]string{"shp/*.shp", "shp/*.dbf"}, src, dest)
	require.NoError(t, err)
	assert.Equal(t, 2, moved)
	assert.Equal(t, 1, counts["shp/*.shp"])
	assert.Equal(t, 1, counts["shp/*.dbf"])

	assert.FileExists(t, filepath.Join(dest, "shp", "coast.shp"))
	assert.FileExists(t, filepath.Join(dest, "shp", "coast.dbf"))
	assert.FileExists(t, filepath.Join(src, "doc", "readme.txt"))
}

func TestMoveMatching_NoMatches(t *testing.T) {
	src := t.TempDir()
	dest := filepath.Join(t.TempDir(), "dataset")
	writeFile(t, filepath.Join(src, "a.txt"), "a")

	counts, moved, err := MoveMatching([]string{"*.zip"}, src, dest)
	require.NoError(t, err)
	assert.Equal(t, 0, moved)
	assert.Equal(t, 0, counts["*.zip"])

	// The destination directory is still created.
	assert.DirExists(t, dest)
}

func TestMoveMatching_OverlappingPatterns(t *testing.T) {
	src := t.TempDir()
	dest := filepath.Join(t.TempDir(), "dataset")
	writeFile(t, filepath.Join(src, "coast.shp"), "shp")

	counts, moved, err := MoveMatching([]string{"*.shp", "coast.*"}, src, dest)
	require.NoError(t, err)
	assert.Equal(t, 1, moved)
	assert.Equal(t, 1, counts["*.shp"])
	assert.Equal(t, 1, counts["coast.*"])
}

func TestMoveMatching_BadPattern(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a.txt"), "a")

	_, _, err := MoveMatching([]string{"["}, src, filepath.Join(t.TempDir(), "dataset"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad pattern")
}
