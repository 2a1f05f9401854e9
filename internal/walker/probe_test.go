package walker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeEntry_RegularFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	record, err := probeEntry(path, dir)
	require.NoError(t, err)

	assert.Equal(t, "note.txt", record.Name)
	assert.Equal(t, "txt", record.Extension)
	assert.Equal(t, TypeRegular, record.Type)
	assert.Equal(t, int64(5), record.Size)
	assert.Equal(t, dir, record.ParentPath)
	assert.Len(t, record.Permissions, 9)
}

func TestProbeEntry_NoExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "README")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	record, err := probeEntry(path, dir)
	require.NoError(t, err)
	assert.Empty(t, record.Extension)
}

func TestProbeEntry_DotfileHasNoExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, ".bashrc")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	record, err := probeEntry(path, dir)
	require.NoError(t, err)
	assert.Empty(t, record.Extension)
}

func TestProbeEntry_Symlink(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "target.txt")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))

	link := filepath.Join(dir, "link.txt")
	require.NoError(t, os.Symlink(target, link))

	record, err := probeEntry(link, dir)
	require.NoError(t, err)
	assert.Equal(t, TypeSymlink, record.Type)
}

func TestProbeEntry_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))

	record, err := probeEntry(sub, dir)
	require.NoError(t, err)
	assert.Equal(t, TypeDirectory, record.Type)
}

func TestProbeEntry_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := probeEntry("/nonexistent/path/for/test", "/nonexistent")
	require.Error(t, err)

	var statErr *StatError
	assert.ErrorAs(t, err, &statErr)
}

func TestPermissionString(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "perm.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o640))
	require.NoError(t, os.Chmod(path, 0o640))

	record, err := probeEntry(path, dir)
	require.NoError(t, err)
	assert.Equal(t, "rw-r-----", record.Permissions)
}
