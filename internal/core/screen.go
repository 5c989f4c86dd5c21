package core

import (
	"strings"
)

// Cell is a single character position in a Screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a 2D character buffer used as a drawing surface by terminal hosts.
// Each grid cell of the game is drawn as CellWidth columns by one row so the
// board keeps a roughly square aspect on typical terminal fonts.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// CellWidth is the number of terminal columns per logical surface unit.
const CellWidth = 2

// NewScreen creates a new screen buffer with the given dimensions in columns and rows.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Columns returns the screen width in terminal columns.
func (s *Screen) Columns() int {
	return s.width
}

// Rows returns the screen height in terminal rows.
func (s *Screen) Rows() int {
	return s.height
}

// Width returns the logical surface width (columns / CellWidth).
func (s *Screen) Width() int {
	return s.width / CellWidth
}

// Height returns the logical surface height.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

// SetCell places a cell at the given column/row.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Set places a rune with the default color at the given column/row.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, Cell{Rune: r, Color: ColorDefault})
}

// GetCell returns the cell at the given column/row.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blankCell
	}
	return s.cells[y][x]
}

// Get returns the rune at the given column/row.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// FillRect fills a rectangle given in logical units with solid blocks.
func (s *Screen) FillRect(r Rect, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X * CellWidth; x < r.Right()*CellWidth; x++ {
			s.SetCell(x, y, Cell{Rune: '█', Color: c})
		}
	}
}

// Dim shades a rectangle given in logical units, keeping what is underneath
// visible in gray.
func (s *Screen) Dim(r Rect) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X * CellWidth; x < r.Right()*CellWidth; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune == ' ' {
				cell.Rune = '░'
			} else {
				cell.Rune = '▒'
			}
			cell.Color = ColorDarkGray
			s.SetCell(x, y, cell)
		}
	}
}

// DrawLabel writes text centered on the logical point (cx, cy).
// Characters past the screen edges are clipped.
func (s *Screen) DrawLabel(cx, cy int, text string, c Color) {
	runes := []rune(text)
	col := cx*CellWidth - len(runes)/2
	for _, r := range runes {
		s.SetCell(col, cy, Cell{Rune: r, Color: c})
		col++
	}
}

// String converts the screen buffer to plain text, rows joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as plain text.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
