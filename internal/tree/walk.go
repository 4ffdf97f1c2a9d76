package tree

import "dirtree/internal/log"

type workItem struct {
	entry  Entry
	prefix Prefix
}

// Walk prints the same lines as PrintSubtree using an explicit stack, so
// nesting depth is bounded by memory rather than the goroutine stack.
func (p *Printer) Walk(path string) {
	stack := p.children(path, nil)
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		p.writeLine(item.prefix, item.entry.Name)
		if item.entry.IsDir {
			stack = append(stack, p.children(item.entry.Path, item.prefix)...)
		}
	}
}

// children lists dir and returns work items in reverse display order, ready
// to be pushed so the first entry is popped first.
func (p *Printer) children(dir string, prefix Prefix) []workItem {
	entries, err := ListEntries(p.fs, dir, p.opts.ShowFiles)
	if err != nil {
		log.LogWithFields(log.F("path", dir), log.F("error", err.Error())).
			Debug("skipping unreadable directory")
		return nil
	}

	items := make([]workItem, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		items = append(items, workItem{
			entry:  entries[i],
			prefix: prefix.Extend(i == len(entries)-1),
		})
	}
	return items
}
