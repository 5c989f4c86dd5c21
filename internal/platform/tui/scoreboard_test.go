package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-pwa/internal/storage"
)

type fakeLister struct {
	top    []storage.Play
	recent []storage.Play
	err    error
}

func (f *fakeLister) TopPlays(int) ([]storage.Play, error)    { return f.top, f.err }
func (f *fakeLister) RecentPlays(int) ([]storage.Play, error) { return f.recent, f.err }

func TestScoreboardSwitchesViews(t *testing.T) {
	lister := &fakeLister{
		top:    []storage.Play{{Score: 200, Player: "alice", Duration: time.Minute}, {Score: 50}},
		recent: []storage.Play{{Score: 50}},
	}
	m := NewScoreboardModel(lister, 100, 30)

	if m.Board() != BoardTop || len(m.Plays()) != 2 {
		t.Fatalf("initial board = %v with %d plays", m.Board(), len(m.Plays()))
	}
	if view := m.View(); !strings.Contains(view, "alice") || !strings.Contains(view, "200") {
		t.Errorf("top view missing rows:\n%s", view)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.Board() != BoardRecent || len(m.Plays()) != 1 {
		t.Errorf("after tab board = %v with %d plays", m.Board(), len(m.Plays()))
	}
}

func TestScoreboardEmptyAndErrors(t *testing.T) {
	m := NewScoreboardModel(&fakeLister{}, 100, 30)
	if !strings.Contains(m.View(), "No games recorded yet.") {
		t.Error("empty message missing")
	}

	m = NewScoreboardModel(&fakeLister{err: errors.New("db locked")}, 100, 30)
	if !strings.Contains(m.View(), "db locked") {
		t.Error("load error not shown")
	}

	m = NewScoreboardModel(nil, 100, 30)
	if len(m.Plays()) != 0 {
		t.Error("nil store produced plays")
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(&fakeLister{}, 100, 30)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = next.(ScoreboardModel)
	if !m.IsQuitting() || cmd == nil {
		t.Error("q did not quit")
	}
}
