package resolve

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"dirtree/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// canonicalTempDir returns a temp dir with symlinks already resolved
// (macOS puts t.TempDir under a symlinked /var).
func canonicalTempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

func TestResolveExplicitDirectory(t *testing.T) {
	root := canonicalTempDir(t)
	target := filepath.Join(root, "project")
	require.NoError(t, os.Mkdir(target, 0755))

	got, err := Resolve(target, true)
	require.NoError(t, err)
	assert.Equal(t, Root{Path: target, Name: "project"}, got)
}

func TestResolveCleansRelativeComponents(t *testing.T) {
	root := canonicalTempDir(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b"), 0755))

	got, err := Resolve(filepath.Join(root, "a", "b", "..", ".", "b", ".."), true)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "a"), got.Path)
	assert.Equal(t, "a", got.Name)
}

// symlinkedTree builds root/w/link -> root/x/y and returns root.
func symlinkedTree(t *testing.T) string {
	t.Helper()
	root := canonicalTempDir(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "w"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "x", "y"), 0755))
	if err := os.Symlink(filepath.Join(root, "x", "y"), filepath.Join(root, "w", "link")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	return root
}

func TestResolveParentOfSymlinkIsPhysical(t *testing.T) {
	root := symlinkedTree(t)

	got, err := Resolve(filepath.Join(root, "w", "link")+string(filepath.Separator)+"..", true)
	require.NoError(t, err)
	assert.Equal(t, Root{Path: filepath.Join(root, "x"), Name: "x"}, got)
}

func TestResolveRelativeParentFromSymlinkedWorkingDirectory(t *testing.T) {
	root := symlinkedTree(t)
	r := Default
	// Getwd reports the logical path the shell used to get there.
	r.Getwd = func() (string, error) { return filepath.Join(root, "w", "link"), nil }

	got, err := r.Resolve("..", true)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "x"), got.Path)

	got, err = r.Resolve(".", true)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "x", "y"), got.Path)
}

func TestResolveRelativePathWithoutWorkingDirectory(t *testing.T) {
	r := Default
	r.Getwd = func() (string, error) { return "", os.ErrNotExist }

	_, err := r.Resolve("some/dir", true)
	require.Error(t, err)
	assert.True(t, errors.IsPathResolution(err))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestResolveFollowsSymlinks(t *testing.T) {
	root := canonicalTempDir(t)
	target := filepath.Join(root, "real")
	require.NoError(t, os.Mkdir(target, 0755))
	link := filepath.Join(root, "alias")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	got, err := Resolve(link, true)
	require.NoError(t, err)
	assert.Equal(t, Root{Path: target, Name: "real"}, got)
}

func TestResolveErrors(t *testing.T) {
	root := canonicalTempDir(t)
	file := filepath.Join(root, "notes.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	broken := filepath.Join(root, "broken")
	symlinks := os.Symlink(filepath.Join(root, "gone"), broken) == nil

	tests := []struct {
		name  string
		raw   string
		check func(error) bool
		skip  bool
	}{
		{name: "missing path", raw: filepath.Join(root, "missing"), check: errors.IsPathResolution},
		{name: "empty path", raw: "", check: errors.IsPathResolution},
		{name: "broken symlink", raw: broken, check: errors.IsPathResolution, skip: !symlinks},
		{name: "regular file", raw: file, check: errors.IsNotADirectory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.skip {
				t.Skip("symlinks unavailable")
			}
			_, err := Resolve(tt.raw, true)
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error kind: %v", err)
		})
	}
}

func TestResolveNotADirectoryMessage(t *testing.T) {
	root := canonicalTempDir(t)
	file := filepath.Join(root, "notes.txt")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	_, err := Resolve(file, true)
	require.Error(t, err)
	assert.Equal(t, "path is not a directory: "+file, err.Error())
}

func TestResolveDefaultsToWorkingDirectory(t *testing.T) {
	root := canonicalTempDir(t)
	r := Default
	r.Getwd = func() (string, error) { return root, nil }

	got, err := r.Resolve("ignored", false)
	require.NoError(t, err)
	assert.Equal(t, root, got.Path)
	assert.Equal(t, filepath.Base(root), got.Name)
}

func TestResolveCwdUnavailable(t *testing.T) {
	r := Default
	r.Getwd = func() (string, error) { return "", fmt.Errorf("getwd: no such file or directory") }

	_, err := r.Resolve("", false)
	require.Error(t, err)
	assert.True(t, errors.IsCwdUnavailable(err))
	assert.Equal(t, "unable to get current directory (getwd: no such file or directory)", err.Error())
}

func TestResolveMetadataError(t *testing.T) {
	root := canonicalTempDir(t)
	r := Default
	r.Stat = func(string) (os.FileInfo, error) { return nil, os.ErrPermission }

	_, err := r.Resolve(root, true)
	require.Error(t, err)
	assert.True(t, errors.IsMetadata(err))
	assert.True(t, errors.Is(err, os.ErrPermission))

	var pathErr *errors.PathError
	require.True(t, errors.As(err, &pathErr))
	assert.Equal(t, root, pathErr.Path())
}

func TestDisplayName(t *testing.T) {
	sep := string(filepath.Separator)
	tests := []struct {
		path string
		want string
	}{
		{path: sep, want: sep},
		{path: filepath.Join(sep, "usr", "local"), want: "local"},
		{path: filepath.Join(sep, "srv", "a b"), want: "a b"},
		{path: "relative", want: "relative"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayName(tt.path))
		})
	}
}
