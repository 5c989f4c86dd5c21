package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/snake-pwa/internal/core"
)

type fillCall struct {
	rect  core.Rect
	color core.Color
}

type recordingSurface struct {
	w, h   int
	clears int
	fills  []fillCall
	dims   []core.Rect
	labels []string
}

func (s *recordingSurface) Width() int  { return s.w }
func (s *recordingSurface) Height() int { return s.h }
func (s *recordingSurface) Clear()      { s.clears++ }

func (s *recordingSurface) FillRect(r core.Rect, c core.Color) {
	s.fills = append(s.fills, fillCall{r, c})
}

func (s *recordingSurface) Dim(r core.Rect) { s.dims = append(s.dims, r) }

func (s *recordingSurface) DrawLabel(_, _ int, text string, _ core.Color) {
	s.labels = append(s.labels, text)
}

func TestRendererCellSize(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		maxSide    int
		wantCell   int
		wantBoardW int
	}{
		{"capped", 800, 600, 400, 20, 400},
		{"narrow", 300, 600, 400, 15, 300},
		{"uncapped", 600, 900, 0, 30, 600},
		{"tiny", 5, 5, 400, 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRenderer(&recordingSurface{w: tt.w, h: tt.h}, 20, tt.maxSide)
			if r.CellSize() != tt.wantCell {
				t.Errorf("CellSize = %d, want %d", r.CellSize(), tt.wantCell)
			}
			if b := r.Board(20, 20); b.W != tt.wantBoardW {
				t.Errorf("Board width = %d, want %d", b.W, tt.wantBoardW)
			}
		})
	}
}

func TestRendererDrawsCells(t *testing.T) {
	surf := &recordingSurface{w: 400, h: 400}
	r := NewRenderer(surf, 20, 400)

	r.Draw(State{
		Width:  20,
		Height: 20,
		Snake:  []Cell{{2, 3}, {1, 3}},
		Food:   Cell{7, 7},
	})

	if surf.clears != 1 {
		t.Errorf("clears = %d, want 1", surf.clears)
	}
	want := []fillCall{
		{core.NewRect(40, 60, 18, 18), core.ColorSnakeHead},
		{core.NewRect(20, 60, 18, 18), core.ColorSnakeBody},
		{core.NewRect(140, 140, 18, 18), core.ColorFood},
	}
	if len(surf.fills) != len(want) {
		t.Fatalf("fills = %+v", surf.fills)
	}
	for i := range want {
		if surf.fills[i] != want[i] {
			t.Errorf("fill %d = %+v, want %+v", i, surf.fills[i], want[i])
		}
	}
	if len(surf.dims) != 0 || len(surf.labels) != 0 {
		t.Error("overlay drawn while running")
	}
}

func TestRendererCellGap(t *testing.T) {
	tests := []struct {
		name string
		side int
		want int // Drawn square side
	}{
		{"one unit", 20, 1},
		{"two units", 40, 2},
		{"small cells keep a gap", 160, 7},
		{"default", 400, 18},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surf := &recordingSurface{w: tt.side, h: tt.side}
			r := NewRenderer(surf, 20, 0)
			r.Draw(State{Width: 20, Height: 20, Snake: []Cell{{1, 1}}, Food: NoFood})

			if len(surf.fills) != 1 {
				t.Fatalf("fills = %+v", surf.fills)
			}
			if got := surf.fills[0].rect.W; got != tt.want {
				t.Errorf("square side = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRendererSkipsNoFood(t *testing.T) {
	surf := &recordingSurface{w: 400, h: 400}
	r := NewRenderer(surf, 20, 400)

	r.Draw(State{Width: 20, Height: 20, Snake: []Cell{{0, 0}}, Food: NoFood})

	if len(surf.fills) != 1 {
		t.Errorf("fills = %d, want only the head", len(surf.fills))
	}
}

func TestRendererGameOverOverlay(t *testing.T) {
	surf := &recordingSurface{w: 400, h: 400}
	r := NewRenderer(surf, 20, 400)

	r.Draw(State{
		Width:    20,
		Height:   20,
		Snake:    []Cell{{0, 0}},
		Food:     Cell{5, 5},
		Score:    30,
		GameOver: true,
	})

	if len(surf.dims) != 1 || surf.dims[0] != core.NewRect(0, 0, 400, 400) {
		t.Errorf("dims = %+v", surf.dims)
	}
	if len(surf.labels) != 2 || surf.labels[0] != "Game Over!" || surf.labels[1] != "Score: 30" {
		t.Errorf("labels = %q", surf.labels)
	}
}

func TestRendererOnScreen(t *testing.T) {
	screen := core.NewScreen(40, 20)
	r := NewRenderer(screen, 20, 0)

	r.Draw(State{
		Width:    20,
		Height:   20,
		Snake:    []Cell{{0, 0}, {1, 0}},
		Food:     Cell{3, 0},
		Score:    30,
		GameOver: true,
	})

	if got := screen.GetCell(0, 0).Color; got != core.ColorDarkGray {
		t.Errorf("dimmed head color = %v, want dark gray", got)
	}
	if got := screen.Get(0, 0); got != '▒' {
		t.Errorf("dimmed head rune = %q, want '▒'", got)
	}
	if got := screen.Get(6, 0); got != '▒' {
		t.Errorf("dimmed food rune = %q", got)
	}
	if !strings.Contains(screen.Row(10), "Game Over!") {
		t.Errorf("row 10 = %q", screen.Row(10))
	}
	if !strings.Contains(screen.Row(12), "Score: 30") {
		t.Errorf("row 12 = %q", screen.Row(12))
	}
}

func TestRendererOnScreenRunning(t *testing.T) {
	screen := core.NewScreen(40, 20)
	r := NewRenderer(screen, 20, 0)

	r.Draw(State{Width: 20, Height: 20, Snake: []Cell{{0, 0}, {1, 0}}, Food: Cell{3, 0}})

	if c := screen.GetCell(0, 0); c.Rune != '█' || c.Color != core.ColorSnakeHead {
		t.Errorf("head cell = %+v", c)
	}
	if c := screen.GetCell(2, 0); c.Color != core.ColorSnakeBody {
		t.Errorf("body cell = %+v", c)
	}
	if c := screen.GetCell(6, 0); c.Color != core.ColorFood {
		t.Errorf("food cell = %+v", c)
	}
}
