// Package clock lets booking rules ask for "now" without reading the wall
// clock directly.
package clock

import (
	"sync"
	"time"

	"party-rental/internal/pkg/calendar"
)

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now()
}

// Today is the current business day in loc. A booking made at 11pm in
// Chicago belongs to that Chicago day even though UTC has moved on.
func Today(c Clock, loc *time.Location) calendar.Date {
	return calendar.Today(c.Now(), loc)
}

// MockClock is safe to advance while scheduled jobs read it.
type MockClock struct {
	mu      sync.RWMutex
	current time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{current: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	c.current = t
	c.mu.Unlock()
}

func (c *MockClock) Add(d time.Duration) {
	c.mu.Lock()
	c.current = c.current.Add(d)
	c.mu.Unlock()
}
