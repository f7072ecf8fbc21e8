package game

import "testing"

func TestFixedClockAccumulates(t *testing.T) {
	c := NewFixedClock(0.01)
	if n := c.Advance(0.005); n != 0 {
		t.Errorf("Expected 0 ticks, got %d", n)
	}
	if n := c.Advance(0.016); n != 2 {
		t.Errorf("Expected 2 ticks, got %d", n)
	}
	if a := c.Alpha(); a < 0.09 || a > 0.11 {
		t.Errorf("Expected alpha near 0.1, got %v", a)
	}
}

func TestFixedClockCapsStalls(t *testing.T) {
	c := NewFixedClock(0.01)
	if n := c.Advance(10); n != c.MaxSteps {
		t.Errorf("Expected %d ticks, got %d", c.MaxSteps, n)
	}
	if c.Alpha() != 0 {
		t.Errorf("Expected the backlog dropped, got alpha %v", c.Alpha())
	}
	if n := c.Advance(-1); n != 0 {
		t.Errorf("Expected negative frame time ignored, got %d ticks", n)
	}
}
