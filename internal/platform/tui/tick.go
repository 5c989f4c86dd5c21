// Package tui provides the Bubble Tea hosts for the snake game: the local
// terminal program, the SSH server and the scoreboard screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game tick. Gen identifies the timer chain
// that produced it.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// teaClock implements snake.Clock on top of tea.Tick. Bubble Tea timers
// cannot be cancelled, so every Arm and Stop starts a new generation and
// ticks from older generations are dropped. Only the current generation
// re-schedules itself, so at most one chain is ever live.
type teaClock struct {
	gen      uint64
	interval time.Duration
	running  bool
	fresh    bool // Armed since the last Take
}

func newTeaClock() *teaClock {
	return &teaClock{}
}

// Arm implements snake.Clock.
func (c *teaClock) Arm(interval time.Duration) {
	c.gen++
	c.interval = interval
	c.running = true
	c.fresh = true
}

// Stop implements snake.Clock.
func (c *teaClock) Stop() {
	c.gen++
	c.running = false
	c.fresh = false
}

// Accept reports whether msg belongs to the live chain.
func (c *teaClock) Accept(msg TickMsg) bool {
	return c.running && msg.Gen == c.gen
}

// Take returns the command starting a chain armed since the last call, or
// nil.
func (c *teaClock) Take() tea.Cmd {
	if !c.fresh {
		return nil
	}
	c.fresh = false
	return c.next()
}

// Continue schedules the next tick of the live chain after an accepted tick.
// A chain re-armed during that tick is started by Take instead.
func (c *teaClock) Continue() tea.Cmd {
	if cmd := c.Take(); cmd != nil {
		return cmd
	}
	if !c.running {
		return nil
	}
	return c.next()
}

func (c *teaClock) next() tea.Cmd {
	return tickCmd(c.gen, c.interval)
}

// tickCmd returns a Bubble Tea command that sends one tick after interval.
func tickCmd(gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
