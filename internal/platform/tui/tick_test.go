package tui

import (
	"testing"
	"time"
)

func TestTeaClockGenerations(t *testing.T) {
	c := newTeaClock()
	if c.Take() != nil || c.Continue() != nil {
		t.Fatal("stopped clock scheduled a tick")
	}

	c.Arm(150 * time.Millisecond)
	first := TickMsg{Gen: c.gen}
	if c.Take() == nil {
		t.Fatal("Take after Arm returned nil")
	}
	if c.Take() != nil {
		t.Error("second Take started another chain")
	}
	if !c.Accept(first) {
		t.Error("tick of the live chain rejected")
	}

	// Speed change during a tick: the old chain must die.
	c.Arm(148 * time.Millisecond)
	if c.Accept(first) {
		t.Error("stale tick accepted after re-arm")
	}
	if c.Continue() == nil {
		t.Error("Continue did not start the re-armed chain")
	}
	if c.interval != 148*time.Millisecond {
		t.Errorf("interval = %v", c.interval)
	}

	live := TickMsg{Gen: c.gen}
	c.Stop()
	if c.Accept(live) {
		t.Error("tick accepted after Stop")
	}
	if c.Continue() != nil {
		t.Error("Continue scheduled a tick after Stop")
	}
}

func TestTickCmdCarriesGeneration(t *testing.T) {
	msg := tickCmd(7, time.Millisecond)()
	tick, ok := msg.(TickMsg)
	if !ok {
		t.Fatalf("msg = %T, want TickMsg", msg)
	}
	if tick.Gen != 7 {
		t.Errorf("Gen = %d, want 7", tick.Gen)
	}
}
