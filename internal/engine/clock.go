package engine

import "time"

// Clock abstracts time.Now() so conversions and feed windows are reproducible
// in tests.
type Clock interface {
	Now() time.Time
}

// RealClock reads the local wall clock.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant. It backs the CLI --date flag.
type FixedClock struct {
	At time.Time
}

// Now returns At.
func (c FixedClock) Now() time.Time {
	return c.At
}
