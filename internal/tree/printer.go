// Package tree prints a directory hierarchy as an indented diagram with
// connector glyphs marking sibling order and nesting depth.
//
// Traversal is depth-first and pre-order: a directory's whole subtree is
// printed before its next sibling. Directories that cannot be read add no
// lines below their own name and never abort the walk.
package tree

import (
	"io"

	"dirtree/internal/log"
	"dirtree/internal/resolve"

	"github.com/spf13/afero"
)

// Options controls what is printed and how.
type Options struct {
	ShowFiles bool     // include file-like entries
	Glyphs    GlyphSet // zero value means Unicode
	UseStack  bool     // walk with an explicit work stack instead of recursion
}

// Printer writes tree lines for directories on fs to out.
type Printer struct {
	fs   afero.Fs
	out  io.Writer
	opts Options
	err  error
}

// NewPrinter creates a printer. A nil fs means the OS filesystem.
func NewPrinter(fs afero.Fs, out io.Writer, opts Options) *Printer {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if opts.Glyphs == (GlyphSet{}) {
		opts.Glyphs = Unicode
	}
	return &Printer{fs: fs, out: out, opts: opts}
}

// PrintTree prints the root's display name on its own line, then every
// retained descendant. It returns the first write error, if any.
func (p *Printer) PrintTree(root resolve.Root) error {
	p.writeLine(nil, root.Name)
	if p.opts.UseStack {
		p.Walk(root.Path)
	} else {
		p.PrintSubtree(root.Path, nil)
	}
	return p.err
}

// PrintSubtree prints the children of path, recursing into directory-like
// children. prefix describes path's own ancestry; the starting directory
// itself is never printed.
func (p *Printer) PrintSubtree(path string, prefix Prefix) {
	entries, err := ListEntries(p.fs, path, p.opts.ShowFiles)
	if err != nil {
		log.LogWithFields(log.F("path", path), log.F("error", err.Error())).
			Debug("skipping unreadable directory")
		return
	}

	for i, entry := range entries {
		childPrefix := prefix.Extend(i == len(entries)-1)
		p.writeLine(childPrefix, entry.Name)
		if entry.IsDir {
			p.PrintSubtree(entry.Path, childPrefix)
		}
	}
}

// Err returns the first error hit while writing output.
func (p *Printer) Err() error {
	return p.err
}

func (p *Printer) writeLine(prefix Prefix, name string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.out, prefix.Render(p.opts.Glyphs)+name+"\n")
}

// PrintSubtree prints the children of path on the OS filesystem.
func PrintSubtree(out io.Writer, path string, showFiles bool, prefix Prefix, glyphs GlyphSet) {
	NewPrinter(nil, out, Options{ShowFiles: showFiles, Glyphs: glyphs}).PrintSubtree(path, prefix)
}
