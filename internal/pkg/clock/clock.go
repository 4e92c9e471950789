// Package clock supplies the wall time stamped on reservations and status changes.
package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

// Func adapts an ordinary function to Clock.
type Func func() time.Time

func (f Func) Now() time.Time { return f() }

// NewRealClock reports UTC so stored timestamps never carry the host zone.
func NewRealClock() Clock {
	return Func(func() time.Time { return time.Now().UTC() })
}

// Frozen only moves when told to. Safe for concurrent use.
type Frozen struct {
	mu  sync.Mutex
	now time.Time
}

func NewFrozen(t time.Time) *Frozen {
	return &Frozen{now: t}
}

func (f *Frozen) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *Frozen) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}
