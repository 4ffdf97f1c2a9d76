package testutils

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// BuildTree creates paths under root on fs. A path ending in "/" is a
// directory; anything else is a file with a little content. Parents are
// created as needed.
func BuildTree(t *testing.T, fs afero.Fs, root string, paths ...string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(root, 0755))
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(strings.TrimSuffix(p, "/")))
		if strings.HasSuffix(p, "/") {
			require.NoError(t, fs.MkdirAll(full, 0755))
			continue
		}
		require.NoError(t, fs.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, afero.WriteFile(fs, full, []byte("content of "+p), 0644))
	}
}

// BuildOSTree is BuildTree on the real filesystem under a fresh temp dir
// with symlinks resolved. It returns that directory.
func BuildOSTree(t *testing.T, paths ...string) string {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	BuildTree(t, afero.NewOsFs(), root, paths...)
	return root
}

// Lines splits output into lines, dropping the trailing empty one.
func Lines(output string) []string {
	return strings.Split(strings.TrimSuffix(output, "\n"), "\n")
}

// FaultFs wraps an afero.Fs and injects failures for chosen paths.
type FaultFs struct {
	afero.Fs
	DenyOpen  map[string]bool // Open fails with a permission error
	DenyLstat map[string]bool // Stat and Lstat fail with a permission error
	Reverse   bool            // Readdirnames returns names in descending order
}

// NewFaultFs wraps base with no faults configured.
func NewFaultFs(base afero.Fs) *FaultFs {
	return &FaultFs{
		Fs:        base,
		DenyOpen:  map[string]bool{},
		DenyLstat: map[string]bool{},
	}
}

func (f *FaultFs) Open(name string) (afero.File, error) {
	if f.DenyOpen[filepath.Clean(name)] {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	file, err := f.Fs.Open(name)
	if err != nil {
		return nil, err
	}
	if f.Reverse {
		return reversedFile{File: file}, nil
	}
	return file, nil
}

func (f *FaultFs) Stat(name string) (os.FileInfo, error) {
	if f.DenyLstat[filepath.Clean(name)] {
		return nil, &os.PathError{Op: "stat", Path: name, Err: os.ErrPermission}
	}
	return f.Fs.Stat(name)
}

func (f *FaultFs) LstatIfPossible(name string) (os.FileInfo, bool, error) {
	if f.DenyLstat[filepath.Clean(name)] {
		return nil, true, &os.PathError{Op: "lstat", Path: name, Err: os.ErrPermission}
	}
	if l, ok := f.Fs.(afero.Lstater); ok {
		return l.LstatIfPossible(name)
	}
	info, err := f.Fs.Stat(name)
	return info, false, err
}

type reversedFile struct {
	afero.File
}

func (r reversedFile) Readdirnames(n int) ([]string, error) {
	names, err := r.File.Readdirnames(n)
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, err
}
