package snake

import (
	"fmt"

	"github.com/vovakirdan/snake-pwa/internal/core"
)

// Surface is a 2D drawing target measured in surface units (pixels on a
// canvas, two-column cells on a terminal).
type Surface interface {
	Width() int
	Height() int
	Clear()
	FillRect(r core.Rect, c core.Color)
	// Dim covers r with a semi-transparent panel.
	Dim(r core.Rect)
	// DrawLabel draws text centered on (cx, cy).
	DrawLabel(cx, cy int, text string, c core.Color)
}

// View is what a Session draws itself into.
type View interface {
	Resize(width, height int)
	Draw(st State)
}

// Renderer draws session state onto a Surface.
type Renderer struct {
	surface   Surface
	divisions int
	maxSide   int
	cellSize  int
}

// NewRenderer creates a renderer. The square board side is the smaller
// surface dimension (capped at maxSide when positive) split into divisions
// cells.
func NewRenderer(s Surface, divisions, maxSide int) *Renderer {
	r := &Renderer{
		surface:   s,
		divisions: max(divisions, 1),
		maxSide:   maxSide,
	}
	r.Resize(s.Width(), s.Height())
	return r
}

// Resize recomputes the cell size for a surface of the given dimensions.
func (r *Renderer) Resize(width, height int) {
	side := min(width, height)
	if r.maxSide > 0 {
		side = min(side, r.maxSide)
	}
	r.cellSize = max(side/r.divisions, 1)
}

// CellSize returns the side of one grid cell in surface units.
func (r *Renderer) CellSize() int {
	return r.cellSize
}

// Board returns the board rectangle for a grid of the given size.
func (r *Renderer) Board(gridW, gridH int) core.Rect {
	return core.NewRect(0, 0, gridW*r.cellSize, gridH*r.cellSize)
}

// Draw renders the full frame.
func (r *Renderer) Draw(st State) {
	r.surface.Clear()

	for i, seg := range st.Snake {
		color := core.ColorSnakeBody
		if i == 0 {
			color = core.ColorSnakeHead
		}
		r.drawCell(seg, color)
	}

	if st.Food != NoFood {
		r.drawCell(st.Food, core.ColorFood)
	}

	if st.GameOver {
		board := r.Board(st.Width, st.Height)
		r.surface.Dim(board)
		cx, cy := board.Center()
		r.surface.DrawLabel(cx, cy, "Game Over!", core.ColorOverlay)
		r.surface.DrawLabel(cx, cy+max(board.H/10, 1), fmt.Sprintf("Score: %d", st.Score), core.ColorOverlay)
	}
}

// drawCell fills one grid cell, leaving a gap of a tenth of the cell and at
// least one unit once cells are wider than two units.
func (r *Renderer) drawCell(c Cell, color core.Color) {
	gap := 0
	if r.cellSize > 2 {
		gap = max(r.cellSize/10, 1)
	}
	size := r.cellSize - gap
	r.surface.FillRect(core.NewRect(c.X*r.cellSize, c.Y*r.cellSize, size, size), color)
}
