package clock

import "time"

// Clock supplies the current time. Schedule classification and attendance
// dates are always derived from the server clock, never from anything the
// client sends.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// New returns a Clock backed by time.Now.
func New() Clock { return realClock{} }

// Fixed is a Clock pinned to a single instant, for tests.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }
