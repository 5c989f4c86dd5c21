package snake

import (
	"testing"
	"time"
)

func TestTickerClock(t *testing.T) {
	c := NewTickerClock()
	if c.Running() || c.C() != nil {
		t.Fatal("new clock is running")
	}

	c.Arm(time.Millisecond)
	if !c.Running() || c.Interval() != time.Millisecond {
		t.Fatalf("Running = %v, Interval = %v", c.Running(), c.Interval())
	}

	select {
	case <-c.C():
	case <-time.After(time.Second):
		t.Fatal("no tick within a second")
	}

	first := c.C()
	c.Arm(2 * time.Millisecond)
	if c.C() == first {
		t.Error("re-arm kept the old ticker")
	}

	c.Stop()
	if c.Running() || c.C() != nil {
		t.Error("clock still running after Stop")
	}
	c.Stop()
}
