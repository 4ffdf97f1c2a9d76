package tree

import (
	"os"
	"path/filepath"
	"sort"

	"dirtree/internal/log"
	"dirtree/internal/resolve"

	"github.com/spf13/afero"
)

// Entry is one retained child of a directory listing.
type Entry struct {
	Path  string
	Name  string
	IsDir bool
}

// ListEntries reads dir, classifies each child from its own (non-following)
// metadata, drops what showFiles excludes and sorts by full path.
//
// An error is returned only when the directory itself cannot be opened or
// read. Children whose metadata cannot be read are skipped.
func ListEntries(fs afero.Fs, dir string, showFiles bool) ([]Entry, error) {
	f, err := fs.Open(dir)
	if err != nil {
		return nil, err
	}
	names, err := f.Readdirnames(-1)
	f.Close()
	if err != nil {
		if len(names) == 0 {
			return nil, err
		}
		log.LogWithFields(log.F("path", dir), log.F("error", err.Error())).
			Debug("directory listing incomplete")
	}

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		info, err := lstat(fs, path)
		if err != nil {
			log.LogWithFields(log.F("path", path), log.F("error", err.Error())).
				Debug("skipping entry without metadata")
			continue
		}

		dirLike, fileLike := classify(info.Mode())
		if !dirLike && !fileLike {
			continue
		}
		if !dirLike && !showFiles {
			continue
		}
		entries = append(entries, Entry{
			Path:  path,
			Name:  resolve.DisplayName(path),
			IsDir: dirLike,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
	return entries, nil
}

// classify reports whether mode describes a directory-like or file-like
// entry. The directory check wins; symlinks are always file-like because
// mode comes from Lstat and never carries the target's type.
func classify(mode os.FileMode) (dirLike, fileLike bool) {
	if mode.IsDir() {
		return true, false
	}
	if mode.IsRegular() || mode&os.ModeSymlink != 0 {
		return false, true
	}
	return false, false
}

func lstat(fs afero.Fs, path string) (os.FileInfo, error) {
	if l, ok := fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		return info, err
	}
	return fs.Stat(path)
}
