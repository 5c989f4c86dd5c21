package snake

import "time"

// Clock is the single periodic timer owned by a Session. Arm cancels any
// running timer before starting a new one at the given interval; Stop cancels
// it. Implementations deliver ticks to the host, which calls Session.Tick
// from the same goroutine that handles input.
type Clock interface {
	Arm(interval time.Duration)
	Stop()
}

// TickerClock is a Clock backed by time.Ticker. Hosts running their own
// select loop read from C, which is re-evaluated on every iteration since
// re-arming replaces the channel.
type TickerClock struct {
	ticker   *time.Ticker
	interval time.Duration
}

// NewTickerClock creates a stopped clock.
func NewTickerClock() *TickerClock {
	return &TickerClock{}
}

// Arm implements Clock.
func (c *TickerClock) Arm(interval time.Duration) {
	c.Stop()
	c.ticker = time.NewTicker(interval)
	c.interval = interval
}

// Stop implements Clock.
func (c *TickerClock) Stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// C returns the tick channel, or nil while stopped so a select on it blocks.
func (c *TickerClock) C() <-chan time.Time {
	if c.ticker == nil {
		return nil
	}
	return c.ticker.C
}

// Interval returns the interval of the last Arm.
func (c *TickerClock) Interval() time.Duration {
	return c.interval
}

// Running reports whether the clock is armed.
func (c *TickerClock) Running() bool {
	return c.ticker != nil
}

type nopClock struct{}

func (nopClock) Arm(time.Duration) {}
func (nopClock) Stop()             {}
