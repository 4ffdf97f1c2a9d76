package tree

import "strings"

// Prefix records, for each ancestor level below the root, whether that
// ancestor was the last of its siblings. The final element describes the
// entry itself.
type Prefix []bool

// Extend returns a new prefix with isLast appended. The receiver is never
// modified and the result never shares its backing array.
func (p Prefix) Extend(isLast bool) Prefix {
	next := make(Prefix, len(p)+1)
	copy(next, p)
	next[len(p)] = isLast
	return next
}

// Render draws the connector columns for an entry whose prefix is p.
func (p Prefix) Render(g GlyphSet) string {
	var sb strings.Builder
	own := len(p) - 1
	for i, wasLast := range p {
		switch {
		case i == own && wasLast:
			sb.WriteString(g.Corner())
		case i == own:
			sb.WriteString(g.Branch())
		case wasLast:
			sb.WriteString(g.Blank())
		default:
			sb.WriteString(g.Vertical())
		}
	}
	return sb.String()
}
