package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/parameter"
)

// StatusInfo carries host state shown below the board
type StatusInfo struct {
	Muted      bool
	Spectators int
}

// Renderer draws snapshots onto a tcell screen
// The board is centred with a one-cell border and a status line underneath
type Renderer struct {
	screen tcell.Screen
	grid   engine.Grid
}

// NewRenderer creates a renderer for the given grid
func NewRenderer(screen tcell.Screen, grid engine.Grid) *Renderer {
	return &Renderer{
		screen: screen,
		grid:   grid,
	}
}

// BoardSize returns the terminal footprint of the board including border and status line
func (r *Renderer) BoardSize() (cols, rows int) {
	return r.grid.Width*parameter.CellColumns + 2, r.grid.Height + 3
}

// origin returns the top-left terminal cell of the board interior
func (r *Renderer) origin() (x, y int, fits bool) {
	sw, sh := r.screen.Size()
	cols, rows := r.BoardSize()
	if sw < cols || sh < rows {
		return 0, 0, false
	}
	return (sw-cols)/2 + 1, (sh-rows)/2 + 1, true
}

// CellAt returns the terminal position of a grid cell's first column
func (r *Renderer) CellAt(col, row int) (x, y int, ok bool) {
	ox, oy, fits := r.origin()
	if !fits {
		return 0, 0, false
	}
	return ox + col*parameter.CellColumns, oy + row, true
}

// Draw renders a full frame and shows it
func (r *Renderer) Draw(snap engine.Snapshot, info StatusInfo) {
	bg := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', bg)

	ox, oy, fits := r.origin()
	if !fits {
		cols, rows := r.BoardSize()
		r.drawText(0, 0, fmt.Sprintf("terminal too small, need %dx%d", cols, rows), bg.Foreground(RgbHeadCrashed))
		r.screen.Show()
		return
	}

	r.drawBorder(ox-1, oy-1, bg.Foreground(RgbBorder))

	dots := bg.Foreground(RgbGridDots)
	for row := 0; row < r.grid.Height; row++ {
		for col := 0; col < r.grid.Width; col++ {
			r.setCell(ox, oy, col, row, parameter.GlyphEmpty, dots)
		}
	}

	if col, row, ok := r.grid.ToCell(snap.Orb); ok {
		r.setCell(ox, oy, col, row, parameter.GlyphOrb, bg.Foreground(RgbOrb).Bold(true))
	}

	for i, p := range snap.Body {
		if col, row, ok := r.grid.ToCell(p); ok {
			r.setCell(ox, oy, col, row, parameter.GlyphBody, bg.Foreground(BodyColor(i, len(snap.Body))))
		}
	}

	// Head last so it stays visible over overlaps
	if col, row, ok := r.grid.ToCell(snap.Head); ok {
		glyph, color := rune(parameter.GlyphHead), RgbHead
		if snap.Crashed {
			glyph, color = parameter.GlyphHeadCrashed, RgbHeadCrashed
		}
		r.setCell(ox, oy, col, row, glyph, bg.Foreground(color).Bold(true))
	}

	r.drawStatus(ox-1, oy+r.grid.Height+1, snap, info)
	r.screen.Show()
}

func (r *Renderer) setCell(ox, oy, col, row int, glyph rune, style tcell.Style) {
	x := ox + col*parameter.CellColumns
	y := oy + row
	r.screen.SetContent(x, y, glyph, nil, style)
	for c := 1; c < parameter.CellColumns; c++ {
		r.screen.SetContent(x+c, y, ' ', nil, style)
	}
}

func (r *Renderer) drawBorder(x, y int, style tcell.Style) {
	w := r.grid.Width*parameter.CellColumns + 1
	h := r.grid.Height + 1

	for i := 1; i < w; i++ {
		r.screen.SetContent(x+i, y, tcell.RuneHLine, nil, style)
		r.screen.SetContent(x+i, y+h, tcell.RuneHLine, nil, style)
	}
	for j := 1; j < h; j++ {
		r.screen.SetContent(x, y+j, tcell.RuneVLine, nil, style)
		r.screen.SetContent(x+w, y+j, tcell.RuneVLine, nil, style)
	}
	r.screen.SetContent(x, y, tcell.RuneULCorner, nil, style)
	r.screen.SetContent(x+w, y, tcell.RuneURCorner, nil, style)
	r.screen.SetContent(x, y+h, tcell.RuneLLCorner, nil, style)
	r.screen.SetContent(x+w, y+h, tcell.RuneLRCorner, nil, style)
}

func (r *Renderer) drawStatus(x, y int, snap engine.Snapshot, info StatusInfo) {
	bg := RgbStatusBg
	state := "alive"
	if snap.Crashed {
		bg = RgbCrashedBg
		state = "crashed"
	}

	text := fmt.Sprintf(" %s  len %d  tick %d  heading %s ", state, snap.Length(), snap.Tick, snap.Heading)
	if info.Muted {
		text += " muted "
	}
	if info.Spectators > 0 {
		text += fmt.Sprintf(" spectators %d ", info.Spectators)
	}

	r.drawText(x, y, text, tcell.StyleDefault.Background(bg).Foreground(RgbStatusText))
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
