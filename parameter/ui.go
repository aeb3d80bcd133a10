package parameter

// Board glyphs, each cell is two terminal columns wide
const (
	GlyphHead        = '@'
	GlyphHeadCrashed = 'X'
	GlyphBody        = 'o'
	GlyphOrb         = '*'
	GlyphEmpty       = '·'
	CellColumns      = 2
)
