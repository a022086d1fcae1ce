// Package scheduler fires notification callbacks when reminders come due.
// It is a plain in-process timer wheel: one timer per reminder id, no
// persistence, everything forgotten on process exit.
package scheduler

import (
	"sync"
	"time"

	"github.com/pockettasks/remind/internal/debug"
	"github.com/pockettasks/remind/internal/normalize"
	"github.com/pockettasks/remind/internal/types"
)

// DefaultMaxDelay caps how far out a timer may be scheduled. Anything
// further away is clamped; a long-running process will simply reschedule
// when the capped timer fires short.
const DefaultMaxDelay = 24 * time.Hour

const defaultFireTime = "09:00"

// Scheduler owns the pending timers. Safe for concurrent use.
type Scheduler struct {
	mu       sync.Mutex
	timers   map[string]*time.Timer
	maxDelay time.Duration
	now      func() time.Time
}

// New creates a scheduler. A non-positive maxDelay selects DefaultMaxDelay.
func New(maxDelay time.Duration) *Scheduler {
	if maxDelay <= 0 {
		maxDelay = DefaultMaxDelay
	}
	return &Scheduler{
		timers:   make(map[string]*time.Timer),
		maxDelay: maxDelay,
		now:      time.Now,
	}
}

// Schedule arms a timer for the reminder and invokes notify when it
// fires. Scheduling an id that already has a pending timer replaces it.
// Reminders whose due moment has already passed fire immediately.
func (s *Scheduler) Schedule(r types.Reminder, notify func(types.Reminder)) {
	delay := s.delayFor(r)

	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.timers[r.ID]; ok {
		prev.Stop()
	}
	debug.Logf("scheduler: %s fires in %s", r.ID, delay)
	s.timers[r.ID] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.timers, r.ID)
		s.mu.Unlock()
		notify(r)
	})
}

// Cancel stops the pending timer for a reminder id, if any.
func (s *Scheduler) Cancel(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
}

// CancelAll stops every pending timer.
func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}

// Pending returns the number of armed timers.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

func (s *Scheduler) delayFor(r types.Reminder) time.Duration {
	fireTime := defaultFireTime
	if r.Time != nil {
		fireTime = *r.Time
	}
	due, err := time.ParseInLocation(normalize.DateLayout+" 15:04", r.Date+" "+fireTime, time.Local)
	if err != nil {
		return 0
	}
	delay := due.Sub(s.now())
	if delay < 0 {
		return 0
	}
	return min(delay, s.maxDelay)
}
