package world

import "time"

const (
	DefaultTickStep   = 16 * time.Millisecond
	DefaultMaxCatchUp = 10 * time.Second
)

type ClockConfig struct {
	Step       time.Duration
	MaxCatchUp time.Duration
}

// Clock turns elapsed wall time into whole fixed-size simulation ticks.
// Time shorter than one step is carried into the next call.
type Clock struct {
	cfg   ClockConfig
	carry time.Duration
	ticks int64
}

func NewClock(cfg ClockConfig) Clock {
	if cfg.Step <= 0 {
		cfg.Step = DefaultTickStep
	}
	if cfg.MaxCatchUp <= 0 {
		cfg.MaxCatchUp = DefaultMaxCatchUp
	}
	if cfg.MaxCatchUp < cfg.Step {
		cfg.MaxCatchUp = cfg.Step
	}
	return Clock{cfg: cfg}
}

func DefaultClock() Clock {
	return NewClock(ClockConfig{})
}

func (c *Clock) Step() time.Duration { return c.cfg.Step }

// Ticks is the number of ticks handed out so far.
func (c *Clock) Ticks() int64 { return c.ticks }

// Advance accounts for elapsed time and returns how many ticks to run.
// Elapsed time beyond MaxCatchUp is dropped.
func (c *Clock) Advance(elapsed time.Duration) int {
	if elapsed <= 0 {
		return 0
	}
	total := c.carry + elapsed
	if total > c.cfg.MaxCatchUp {
		total = c.cfg.MaxCatchUp
	}
	n := total / c.cfg.Step
	c.carry = total - n*c.cfg.Step
	c.ticks += int64(n)
	return int(n)
}

// Tick accounts for exactly one step without consulting wall time.
func (c *Clock) Tick() {
	c.ticks++
}
