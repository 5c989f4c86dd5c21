package snake

import (
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"
)

// Phase is the session's state machine position.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// State is a copy of the session state handed to views and hosts.
type State struct {
	Width     int
	Height    int
	Snake     []Cell // Head at index 0
	Direction Direction
	Pending   Direction
	Food      Cell
	Score     int
	Interval  time.Duration
	Phase     Phase
	GameOver  bool
	Ticks     uint64
}

// Result summarizes a finished game.
type Result struct {
	Score    int
	Length   int
	Ticks    uint64
	Duration time.Duration
}

// Recorder persists finished scores. scores.History implements it.
type Recorder interface {
	Append(score int) error
	Scores() []int
}

// Option configures a Session.
type Option func(*Session)

// WithClock sets the timer the session arms while running.
func WithClock(c Clock) Option {
	return func(s *Session) { s.clock = c }
}

// WithView sets the view drawn after every state change.
func WithView(v View) Option {
	return func(s *Session) { s.view = v }
}

// WithRecorder sets where game-over scores are appended.
func WithRecorder(r Recorder) Option {
	return func(s *Session) { s.recorder = r }
}

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithGameOverHook registers a callback invoked when a game ends.
func WithGameOverHook(fn func(Result)) Option {
	return func(s *Session) { s.onGameOver = fn }
}

// WithNow overrides the wall clock used for game durations.
func WithNow(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// Session is one player's game. It is not safe for concurrent use; hosts
// call every method from a single goroutine.
type Session struct {
	rules   Rules
	rng     *rand.Rand
	spawner *FoodSpawner
	mapper  *InputMapper

	clock      Clock
	view       View
	recorder   Recorder
	logger     *log.Logger
	onGameOver func(Result)
	now        func() time.Time

	body      []Cell
	direction Direction
	pending   Direction
	food      Cell
	score     int
	interval  time.Duration
	phase     Phase
	gameOver  bool
	ticks     uint64
	startedAt time.Time
	closed    bool
}

// NewSession creates an idle session with the initial state already set up
// so it can be drawn before the first Start.
func NewSession(rules Rules, seed int64, opts ...Option) *Session {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	s := &Session{
		rules:   rules,
		rng:     rng,
		spawner: NewFoodSpawner(rng, rules.Width, rules.Height),
		mapper:  NewInputMapper(rules.SwipeThreshold),
		clock:   nopClock{},
		logger:  log.New(io.Discard),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.reset()
	s.phase = PhaseIdle
	return s
}

// reset restores the initial game values.
func (s *Session) reset() {
	s.body = []Cell{s.rules.Origin}
	s.direction = DirRight
	s.pending = DirRight
	s.score = 0
	s.interval = s.rules.InitialInterval
	s.gameOver = false
	s.ticks = 0
	s.food, _ = s.spawner.Spawn(s.body)
}

// Start begins a new game in place of whatever was running.
func (s *Session) Start() {
	if s.closed {
		return
	}
	s.clock.Stop()

	if s.phase == PhaseGameOver && s.score > 0 && s.rules.RecordOnRestart {
		s.record(s.score)
	}

	s.reset()
	s.phase = PhaseRunning
	s.startedAt = s.now()
	s.setInterval(s.rules.InitialInterval)
	s.logger.Debug("game started", "interval", s.interval, "food", s.food)
	s.draw()
}

// Tick advances a running game by one cell.
func (s *Session) Tick() {
	if s.closed || s.phase != PhaseRunning {
		return
	}
	s.ticks++
	s.direction = s.pending
	s.move()
	s.draw()
}

// move shifts the snake one cell in the current direction.
func (s *Session) move() {
	head := s.body[0].Add(s.direction)

	if CheckCollision(s.body, head, s.rules.Width, s.rules.Height) {
		s.endGame()
		return
	}

	s.body = append([]Cell{head}, s.body...)

	if head == s.food {
		s.feed()
		return
	}
	s.body = s.body[:len(s.body)-1]
}

// feed scores the eaten food, replaces it and speeds the game up.
func (s *Session) feed() {
	s.score += s.rules.PointsPerFood

	eaten := s.food
	for {
		food, ok := s.spawner.Spawn(s.body)
		if !ok {
			s.logger.Info("grid full, no room for food", "length", len(s.body))
			s.food = NoFood
			break
		}
		if food != eaten {
			s.food = food
			break
		}
	}

	s.speedUp()
}

// speedUp lowers the interval by one step down to the floor. Only a changed
// interval re-arms the clock.
func (s *Session) speedUp() {
	if s.interval <= s.rules.MinInterval {
		return
	}
	next := max(s.interval-s.rules.IntervalStep, s.rules.MinInterval)
	if next == s.interval {
		return
	}
	s.setInterval(next)
}

// setInterval is the speed-change transition: new interval, clock re-armed.
func (s *Session) setInterval(d time.Duration) {
	s.interval = d
	s.clock.Arm(d)
}

// endGame enters the GameOver phase.
func (s *Session) endGame() {
	s.clock.Stop()
	s.phase = PhaseGameOver
	s.gameOver = true
	s.record(s.score)

	res := Result{
		Score:    s.score,
		Length:   len(s.body),
		Ticks:    s.ticks,
		Duration: s.now().Sub(s.startedAt),
	}
	s.logger.Info("game over", "score", res.Score, "length", res.Length, "ticks", res.Ticks)
	if s.onGameOver != nil {
		s.onGameOver(res)
	}
}

func (s *Session) record(score int) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Append(score); err != nil {
		s.logger.Warn("could not save score", "score", score, "error", err)
	}
}

// HandleKey steers by key identifier. It returns whether the pending
// direction changed.
func (s *Session) HandleKey(key string) bool {
	d, ok := s.mapper.MapKey(key)
	if !ok {
		return false
	}
	return s.steer(d)
}

// HandleSwipe steers by swipe gesture.
func (s *Session) HandleSwipe(sw Swipe) bool {
	d, ok := s.mapper.MapSwipe(sw)
	if !ok {
		return false
	}
	return s.steer(d)
}

// Steer requests a direction directly.
func (s *Session) Steer(d Direction) bool {
	return s.steer(d)
}

func (s *Session) steer(d Direction) bool {
	pending, changed := Steer(s.direction, s.pending, d)
	s.pending = pending
	return changed
}

// Resize notifies the view of a new surface size and redraws.
func (s *Session) Resize(width, height int) {
	if s.view == nil {
		return
	}
	s.view.Resize(width, height)
	s.draw()
}

func (s *Session) draw() {
	if s.view != nil {
		s.view.Draw(s.State())
	}
}

// Close stops the clock. A closed session ignores Start and Tick.
func (s *Session) Close() {
	s.clock.Stop()
	s.closed = true
}

// Phase returns the state machine position.
func (s *Session) Phase() Phase {
	return s.phase
}

// History returns the recorded scores, most recent first.
func (s *Session) History() []int {
	if s.recorder == nil {
		return nil
	}
	return s.recorder.Scores()
}

// Rules returns the session rules.
func (s *Session) Rules() Rules {
	return s.rules
}

// State returns a copy of the current state.
func (s *Session) State() State {
	return State{
		Width:     s.rules.Width,
		Height:    s.rules.Height,
		Snake:     slices.Clone(s.body),
		Direction: s.direction,
		Pending:   s.pending,
		Food:      s.food,
		Score:     s.score,
		Interval:  s.interval,
		Phase:     s.phase,
		GameOver:  s.gameOver,
		Ticks:     s.ticks,
	}
}
