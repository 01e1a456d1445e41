package simulator

import (
	"math/rand"
	"time"
)

// Clock compresses time for the simulation: one real minute equals one
// simulated day.
type Clock struct {
	realStart time.Time
	simStart  time.Time
}

// NewClock starts a simulation clock at the given simulated date.
func NewClock(simStart time.Time) *Clock {
	return &Clock{
		realStart: time.Now(),
		simStart:  simStart,
	}
}

// Day returns the current simulation day, counted from zero.
func (c *Clock) Day() int {
	return int(time.Since(c.realStart).Minutes())
}

// Date returns the current simulated date at midnight.
func (c *Clock) Date() time.Time {
	return c.simStart.AddDate(0, 0, c.Day())
}

// DateTime returns the simulated date with a time of day inside business
// hours, matching how user activity clusters.
func (c *Clock) DateTime(rng *rand.Rand) time.Time {
	date := c.Date()
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		9+rng.Intn(10), rng.Intn(60), rng.Intn(60), 0,
		date.Location(),
	)
}
