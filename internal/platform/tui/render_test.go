package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/snake-pwa/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.FillRect(core.NewRect(1, 0, 1, 1), core.ColorSnakeHead)
	s.DrawLabel(1, 1, "ok", core.ColorOverlay)

	plain := ansi.Strip(RenderScreen(s))
	want := "  ██  \n ok   "
	if plain != want {
		t.Errorf("RenderScreen = %q, want %q", plain, want)
	}
}

func TestBoardViewFits(t *testing.T) {
	v := newBoardView(20, 20)
	if !v.Fits(40, 20) {
		t.Error("exact size does not fit")
	}
	if v.Fits(39, 20) || v.Fits(40, 19) {
		t.Error("undersized terminal fits")
	}

	v.Resize(40, 20)
	if !strings.Contains(v.screen.String(), " ") {
		t.Error("blank board expected")
	}
	if v.screen.Columns() != 40 || v.screen.Rows() != 20 {
		t.Errorf("screen = %dx%d", v.screen.Columns(), v.screen.Rows())
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText overflow = %q", got)
	}
}
