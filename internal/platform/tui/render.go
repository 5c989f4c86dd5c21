package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-pwa/internal/core"
	"github.com/vovakirdan/snake-pwa/internal/snake"
)

// colorStyles caches one lipgloss style per core.Color.
var colorStyles = map[core.Color]lipgloss.Style{}

func init() {
	for c := core.ColorDefault; c <= core.ColorDarkGray; c++ {
		style := lipgloss.NewStyle()
		if code := c.ANSI(); code != "" {
			style = style.Foreground(lipgloss.Color(code))
		}
		colorStyles[c] = style
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Columns()*s.Rows()*2 + s.Rows())

	for y := range s.Rows() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Columns() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Columns() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// boardView is the terminal snake.View: a Screen sized to the board and
// the renderer drawing on it. Sizes arrive in terminal columns and rows.
type boardView struct {
	screen   *core.Screen
	renderer *snake.Renderer
	gridW    int
	gridH    int
}

func newBoardView(gridW, gridH int) *boardView {
	screen := core.NewScreen(gridW*core.CellWidth, gridH)
	return &boardView{
		screen:   screen,
		renderer: snake.NewRenderer(screen, max(gridW, gridH), 0),
		gridW:    gridW,
		gridH:    gridH,
	}
}

// Resize implements snake.View. The board scales by whole cells to the
// largest size fitting in columns x rows, never below one cell per square.
func (v *boardView) Resize(columns, rows int) {
	v.renderer.Resize(columns/core.CellWidth, rows)
	board := v.renderer.Board(v.gridW, v.gridH)
	v.screen.Resize(board.W*core.CellWidth, board.H)
}

// Draw implements snake.View.
func (v *boardView) Draw(st snake.State) {
	v.renderer.Draw(st)
}

// Fits reports whether the smallest board fits in columns x rows.
func (v *boardView) Fits(columns, rows int) bool {
	return columns >= v.gridW*core.CellWidth && rows >= v.gridH
}

// String renders the board with colors.
func (v *boardView) String() string {
	return RenderScreen(v.screen)
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	textLen := lipgloss.Width(text)
	if textLen >= width {
		return text
	}
	padding := (width - textLen) / 2
	return strings.Repeat(" ", padding) + text
}
