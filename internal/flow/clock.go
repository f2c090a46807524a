package flow

import "time"

// Clock abstracts time observation so countdowns, drafting windows, and
// session expiry are testable without real waiting.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

// NewClock returns the wall-clock implementation.
func NewClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}
