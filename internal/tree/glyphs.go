package tree

// GlyphSet holds the four connector strings in order:
// corner, branch, blank, vertical.
type GlyphSet [4]string

// Standard glyph sets.
var (
	Unicode = GlyphSet{"└───", "├───", "    ", "│   "}
	ASCII   = GlyphSet{`\---`, "+---", "    ", "|   "}
)

// Glyphs picks the ASCII set when ascii is true and the Unicode set otherwise.
func Glyphs(ascii bool) GlyphSet {
	if ascii {
		return ASCII
	}
	return Unicode
}

// Corner is drawn for the last child at its own depth.
func (g GlyphSet) Corner() string { return g[0] }

// Branch is drawn for a child that has later siblings.
func (g GlyphSet) Branch() string { return g[1] }

// Blank fills the column of an ancestor that was the last sibling.
func (g GlyphSet) Blank() string { return g[2] }

// Vertical fills the column of an ancestor that still has later siblings.
func (g GlyphSet) Vertical() string { return g[3] }
