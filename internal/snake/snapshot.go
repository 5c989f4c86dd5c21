package snake

// Snapshot is a flat copy of the session for determinism tests and logs.
type Snapshot struct {
	Tick       uint64
	Phase      string
	Score      int
	SnakeLen   int
	HeadX      int
	HeadY      int
	Dir        Direction
	Pending    Direction
	FoodX      int
	FoodY      int
	IntervalMS int64
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	head := s.body[0]
	return Snapshot{
		Tick:       s.ticks,
		Phase:      s.phase.String(),
		Score:      s.score,
		SnakeLen:   len(s.body),
		HeadX:      head.X,
		HeadY:      head.Y,
		Dir:        s.direction,
		Pending:    s.pending,
		FoodX:      s.food.X,
		FoodY:      s.food.Y,
		IntervalMS: s.interval.Milliseconds(),
	}
}
