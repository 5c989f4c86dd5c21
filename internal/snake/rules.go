package snake

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRules is returned by Rules.Validate.
var ErrInvalidRules = errors.New("snake: invalid rules")

// Rules are the tunable constants of a session.
type Rules struct {
	Width           int           // Grid columns
	Height          int           // Grid rows
	Origin          Cell          // Spawn cell of the one-segment snake
	InitialInterval time.Duration // Tick interval at session start
	IntervalStep    time.Duration // Interval decrease per food eaten
	MinInterval     time.Duration // Interval floor
	PointsPerFood   int
	// RecordOnRestart appends the previous game's score again when a new
	// game starts after a game over with a nonzero score.
	RecordOnRestart bool
	SwipeThreshold  int
}

// DefaultRules returns the classic 20x20 rules.
func DefaultRules() Rules {
	return Rules{
		Width:           20,
		Height:          20,
		Origin:          Cell{X: 5, Y: 5},
		InitialInterval: 150 * time.Millisecond,
		IntervalStep:    2 * time.Millisecond,
		MinInterval:     50 * time.Millisecond,
		PointsPerFood:   10,
		RecordOnRestart: true,
	}
}

// Validate reports rules a session cannot run with.
func (r Rules) Validate() error {
	switch {
	case r.Width < 2 || r.Height < 2:
		return fmt.Errorf("%w: grid %dx%d is smaller than 2x2", ErrInvalidRules, r.Width, r.Height)
	case r.Origin.X < 0 || r.Origin.X >= r.Width || r.Origin.Y < 0 || r.Origin.Y >= r.Height:
		return fmt.Errorf("%w: origin %s outside the grid", ErrInvalidRules, r.Origin)
	case r.MinInterval <= 0:
		return fmt.Errorf("%w: minimum interval must be positive", ErrInvalidRules)
	case r.InitialInterval < r.MinInterval:
		return fmt.Errorf("%w: initial interval %s below minimum %s", ErrInvalidRules, r.InitialInterval, r.MinInterval)
	case r.IntervalStep < 0:
		return fmt.Errorf("%w: negative interval step", ErrInvalidRules)
	case r.PointsPerFood <= 0:
		return fmt.Errorf("%w: points per food must be positive", ErrInvalidRules)
	}
	return nil
}
