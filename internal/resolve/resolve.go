// Package resolve turns an optional user-supplied path into the canonical
// directory that the tree is printed from.
package resolve

import (
	"os"
	"path/filepath"

	"dirtree/internal/errors"
)

// Root is a canonical, symlink-free directory path and its display name.
type Root struct {
	Path string
	Name string
}

// Resolver holds the filesystem hooks used during resolution.
type Resolver struct {
	Getwd        func() (string, error)
	EvalSymlinks func(string) (string, error)
	Stat         func(string) (os.FileInfo, error)
}

// Default resolves against the operating system.
var Default = Resolver{
	Getwd:        os.Getwd,
	EvalSymlinks: filepath.EvalSymlinks,
	Stat:         os.Stat,
}

// Resolve resolves raw with the OS-backed resolver. When given is false the
// current working directory is used instead of raw.
func Resolve(raw string, given bool) (Root, error) {
	return Default.Resolve(raw, given)
}

// Resolve canonicalizes the target and checks that it is a directory.
func (r Resolver) Resolve(raw string, given bool) (Root, error) {
	path := raw
	if !given {
		cwd, err := r.Getwd()
		if err != nil {
			return Root{}, errors.NewPathError("unable to get current directory", "", errors.CwdUnavailable, err)
		}
		path = cwd
	}

	canonical, err := r.canonicalize(path)
	if err != nil {
		return Root{}, errors.NewPathError("unable to canonicalize path", path, errors.PathResolutionError, err)
	}

	info, err := r.Stat(canonical)
	if err != nil {
		return Root{}, errors.NewPathError("unable to get metadata", canonical, errors.MetadataError, err)
	}

	if !info.IsDir() {
		return Root{}, errors.NewPathError("path is not a directory", canonical, errors.NotADirectory, nil)
	}

	return Root{Path: canonical, Name: DisplayName(canonical)}, nil
}

// canonicalize makes path absolute and resolves every symlink, `.` and `..`.
// The target must exist. A relative path is joined to the working directory
// without lexical cleaning so that `..` after a symlink names the link
// target's parent.
func (r Resolver) canonicalize(path string) (string, error) {
	if path == "" {
		return "", &os.PathError{Op: "canonicalize", Path: path, Err: os.ErrNotExist}
	}
	if !filepath.IsAbs(path) {
		cwd, err := r.Getwd()
		if err != nil {
			return "", err
		}
		path = cwd + string(filepath.Separator) + path
	}
	return r.EvalSymlinks(path)
}

// DisplayName returns the final component of path, or the whole path when
// there is none (a filesystem root).
func DisplayName(path string) string {
	base := filepath.Base(path)
	switch base {
	case "", ".", "..", string(filepath.Separator):
		return path
	}
	if vol := filepath.VolumeName(path); vol != "" && base == vol+string(filepath.Separator) {
		return path
	}
	return base
}
