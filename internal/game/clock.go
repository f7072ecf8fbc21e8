package game

// FixedClock turns variable frame times into a whole number of fixed
// simulation ticks.
type FixedClock struct {
	Step     float32
	MaxSteps int // cap per frame so a stall does not spiral

	acc float32
}

func NewFixedClock(step float32) *FixedClock {
	return &FixedClock{Step: step, MaxSteps: 5}
}

// Advance adds frameTime and returns how many ticks to run now.
func (c *FixedClock) Advance(frameTime float32) int {
	if frameTime < 0 {
		frameTime = 0
	}
	c.acc += frameTime
	n := 0
	for c.acc >= c.Step && n < c.MaxSteps {
		c.acc -= c.Step
		n++
	}
	if n == c.MaxSteps {
		c.acc = 0
	}
	return n
}

// Alpha is the fraction of a tick left in the accumulator.
func (c *FixedClock) Alpha() float32 {
	return c.acc / c.Step
}

func (c *FixedClock) Reset() {
	c.acc = 0
}
