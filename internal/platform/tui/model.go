package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-pwa/internal/config"
	"github.com/vovakirdan/snake-pwa/internal/scores"
	"github.com/vovakirdan/snake-pwa/internal/snake"
	"github.com/vovakirdan/snake-pwa/internal/storage"
)

// Layout constants
const (
	panelWidth   = 26 // History panel incl. border
	chromeRows   = 3  // Status line and help footer
	panelGap     = 2
	minPanelRows = 9
)

// PlayRecorder receives finished games. *storage.Store implements it.
type PlayRecorder interface {
	RecordPlay(p storage.Play) (int64, error)
}

// ModelConfig holds everything a game screen needs.
type ModelConfig struct {
	Rules snake.Rules
	Speed config.SpeedConfig
	Seed  int64

	// Width and Height are the initial terminal size.
	Width  int
	Height int

	// History holds the recent scores; nil keeps them in memory only.
	History *scores.History

	// Plays, when set, logs every finished game under Player.
	Plays  PlayRecorder
	Player string

	// ScreenshotDir is where ctrl+s writes the board; empty uses ~/.snake/screenshots.
	ScreenshotDir string

	Logger *log.Logger
}

// Model is the Bubble Tea model for one snake game screen.
type Model struct {
	session  *snake.Session
	clock    *teaClock
	board    *boardView
	history  *scores.History
	speed    config.SpeedConfig
	keys     KeyMap
	help     help.Model
	shotDir  string
	logger   *log.Logger
	width    int
	height   int
	press    *tea.MouseMsg // Pending mouse press, the start of a swipe
	quitting bool
}

// NewModel creates a game screen in the idle state.
func NewModel(cfg ModelConfig) Model {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	history := cfg.History
	if history == nil {
		history = scores.Load(scores.NewMemoryKV(), scores.DefaultKey, scores.DefaultSize, logger)
	}

	clock := newTeaClock()
	board := newBoardView(cfg.Rules.Width, cfg.Rules.Height)

	opts := []snake.Option{
		snake.WithClock(clock),
		snake.WithView(board),
		snake.WithRecorder(history),
		snake.WithLogger(logger),
	}
	if cfg.Plays != nil {
		plays, player := cfg.Plays, cfg.Player
		opts = append(opts, snake.WithGameOverHook(func(r snake.Result) {
			_, err := plays.RecordPlay(storage.Play{
				Player:   player,
				Score:    r.Score,
				Length:   r.Length,
				Ticks:    r.Ticks,
				Duration: r.Duration,
			})
			if err != nil {
				logger.Warn("could not record play", "player", player, "error", err)
			}
		}))
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		session: snake.NewSession(cfg.Rules, cfg.Seed, opts...),
		clock:   clock,
		board:   board,
		history: history,
		speed:   cfg.Speed,
		keys:    DefaultKeyMap(),
		help:    h,
		shotDir: cfg.ScreenshotDir,
		logger:  logger,
	}
	m.resize(cfg.Width, cfg.Height)
	return m
}

// Init initializes the model. The game waits for the start key.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if !m.clock.Accept(msg) {
			return m, nil
		}
		m.session.Tick()
		return m, m.clock.Continue()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.session.Close()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Start):
		m.session.Start()
		return m, m.clock.Take()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
		return m, nil

	case key.Matches(msg, m.keys.Shot):
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
		}
		return m, nil

	case key.Matches(msg, m.keys.Steering()...):
		m.session.HandleKey(msg.String())
	}

	return m, nil
}

// handleMouse turns a left-button press and the following release into a
// swipe. Rows are about twice as tall as columns, so vertical movement is
// doubled.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			press := msg
			m.press = &press
		}
	case tea.MouseActionRelease:
		if m.press == nil {
			return m, nil
		}
		start := m.press
		m.press = nil
		m.session.HandleSwipe(snake.Swipe{
			StartX: start.X,
			StartY: start.Y * 2,
			EndX:   msg.X,
			EndY:   msg.Y * 2,
		})
	}
	return m, nil
}

// resize lays the board out for a terminal of the given size.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	cols, rows := m.boardArea()
	m.session.Resize(cols, rows)
}

// boardArea returns the columns and rows left for the board.
func (m Model) boardArea() (int, int) {
	cols := m.width
	if m.showPanel() {
		cols -= panelWidth + panelGap
	}
	rows := m.height - chromeRows
	if m.help.ShowAll {
		rows -= 2
	}
	return max(cols, 0), max(rows, 0)
}

func (m Model) showPanel() bool {
	return m.width >= m.session.Rules().Width*2+panelWidth+panelGap && m.height >= minPanelRows
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	cols, rows := m.boardArea()
	if !m.board.Fits(cols, rows) {
		rules := m.session.Rules()
		msg := fmt.Sprintf("Terminal too small\nneed %dx%d, have %dx%d",
			rules.Width*2, rules.Height+chromeRows, m.width, m.height)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
	}

	board := boardStyle.Render(m.board.String())
	if m.showPanel() {
		board = lipgloss.JoinHorizontal(lipgloss.Top, board, strings.Repeat(" ", panelGap), m.renderPanel())
	}

	var b strings.Builder
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(board)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

var (
	boardStyle = lipgloss.NewStyle()

	statusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Width(panelWidth-2).
			Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// renderStatus renders the score line.
func (m Model) renderStatus() string {
	st := m.session.State()
	status := statusStyle.Render(fmt.Sprintf("Score: %d", st.Score))

	speed := fmt.Sprintf("  Speed: %3.0f%%", config.SpeedLevel(m.speed, st.Interval)*100)

	var hint string
	switch st.Phase {
	case snake.PhaseIdle:
		hint = "  press enter to start"
	case snake.PhaseGameOver:
		hint = "  press enter to play again"
	}
	return status + hintStyle.Render(speed+hint)
}

// renderPanel renders the recent games list.
func (m Model) renderPanel() string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("Last 5 games"))
	b.WriteString("\n")
	b.WriteString(strings.Join(scores.Lines(m.history.Scores()), "\n"))
	return panelStyle.Render(b.String())
}

// saveScreenshot saves the plain-text board to a file.
func (m Model) saveScreenshot() error {
	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		dir = filepath.Join(home, ".snake", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", timestamp))
	return os.WriteFile(path, []byte(screenshotText(m.session.Snapshot(), m.board.screen.String())), 0o600)
}

// screenshotText prefixes the plain board with a one-line state summary.
func screenshotText(snap snake.Snapshot, board string) string {
	header := fmt.Sprintf("score=%d length=%d tick=%d phase=%s head=(%d,%d) food=(%d,%d) interval=%dms",
		snap.Score, snap.SnakeLen, snap.Tick, snap.Phase, snap.HeadX, snap.HeadY, snap.FoodX, snap.FoodY, snap.IntervalMS)
	return header + "\n" + board + "\n"
}

// Session returns the game session.
func (m Model) Session() *snake.Session {
	return m.session
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with a new game screen.
func Run(cfg ModelConfig) error {
	model := NewModel(cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse drags steer like swipes
	)

	_, err := p.Run()
	model.Session().Close()
	return err
}
