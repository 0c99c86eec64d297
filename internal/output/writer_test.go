package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCreatesDirectory(t *testing.T) {
	fs := memfs.New()
	w := NewWriter(fs)

	path, err := w.Write("/site/out", "manifest.json", []byte("[]"))
	require.NoError(t, err)
	assert.Equal(t, "/site/out/manifest.json", path)

	data, err := util.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	entries, err := fs.ReadDir("/site/out")
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestWriteOverwrites(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "manifest.json")
	require.NoError(t, os.WriteFile(target, []byte("a much longer old manifest"), 0o644))

	w := NewWriter(osfs.New(""))
	path, err := w.Write(dir, "manifest.json", []byte("new"))
	require.NoError(t, err)
	assert.Equal(t, target, path)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestWriteOnDiskCreatesDirectoryAndCleansUp(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "site", "out")
	w := NewWriter(osfs.New(""))

	for _, content := range []string{"[]", "[1]"} {
		path, err := w.Write(dir, "manifest.json", []byte(content))
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, content, string(data))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "manifest.json", entries[0].Name())
}

func TestWriteFailsWhenDirectoryIsAFile(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "/blocked", []byte("file"), 0o644))
	w := NewWriter(fs)

	_, err := w.Write("/blocked", "manifest.json", []byte("[]"))
	require.Error(t, err)

	_, statErr := fs.Stat("/blocked/manifest.json")
	assert.True(t, os.IsNotExist(statErr))
}

func TestEnsureDirIsIdempotent(t *testing.T) {
	fs := memfs.New()
	w := NewWriter(fs)

	require.NoError(t, w.EnsureDir("/a/b/c"))
	require.NoError(t, w.EnsureDir("/a/b/c"))

	info, err := fs.Stat("/a/b")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
