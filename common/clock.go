package common

// Clock is a frame clock. A root clock is advanced explicitly with Tick and
// hands the scaled delta down to its children, so pausing a parent stalls
// every clock below it while siblings keep running.
type Clock struct {
	parent   *Clock
	children []*Clock

	paused    bool
	stepOnce  bool
	timeScale float64

	delta float64
	total float64
	frame uint64
}

func NewClock() *Clock {
	return &Clock{timeScale: 1}
}

// NewChildClock returns a clock driven by parent.
func NewChildClock(parent *Clock) *Clock {
	c := &Clock{parent: parent, timeScale: 1}
	if parent != nil {
		parent.children = append(parent.children, c)
	}
	return c
}

// Tick advances the clock by dt seconds of parent time and propagates the
// result to child clocks. Ticking a child directly is allowed and is how
// tests drive a single subsystem.
func (c *Clock) Tick(dt float64) {
	if dt < 0 {
		dt = 0
	}

	switch {
	case c.stepOnce:
		c.stepOnce = false
		c.paused = true
	case c.paused:
		dt = 0
	}

	c.delta = dt * c.timeScale
	c.total += c.delta
	c.frame++

	for _, child := range c.children {
		child.Tick(c.delta)
	}
}

func (c *Clock) Pause()         { c.paused = true }
func (c *Clock) Unpause()       { c.paused = false }
func (c *Clock) TogglePause()   { c.paused = !c.paused }
func (c *Clock) IsPaused() bool { return c.paused }

// StepSingleFrame lets exactly one more Tick through and then pauses again.
func (c *Clock) StepSingleFrame() {
	c.paused = false
	c.stepOnce = true
}

func (c *Clock) SetTimeScale(scale float64) {
	if scale < 0 {
		scale = 0
	}
	c.timeScale = scale
}

func (c *Clock) TimeScale() float64 { return c.timeScale }

// DeltaSeconds is the scaled delta of the last Tick.
func (c *Clock) DeltaSeconds() float64 { return c.delta }

func (c *Clock) DeltaMs() float64 { return c.delta * 1000 }

func (c *Clock) TotalSeconds() float64 { return c.total }

func (c *Clock) FrameCount() uint64 { return c.frame }
