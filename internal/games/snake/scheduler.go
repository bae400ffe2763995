package snake

import (
	"cmp"
	"slices"
	"time"
)

// TimerID identifies a scheduled effect. The zero value is never issued.
type TimerID uint64

type timer struct {
	id        TimerID
	fireAt    time.Duration
	action    func()
	cancelled bool
}

// Scheduler holds wall-clock delayed effects. It is polled from the frame
// loop rather than running its own goroutines, so effects run on the same
// thread as ticks and never interleave with them.
type Scheduler struct {
	nextID TimerID
	timers []*timer
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// At schedules action to run on the first Advance at or after fireAt.
func (s *Scheduler) At(fireAt time.Duration, action func()) TimerID {
	s.nextID++
	s.timers = append(s.timers, &timer{id: s.nextID, fireAt: fireAt, action: action})
	return s.nextID
}

// Cancel prevents a pending effect from running. It reports whether the
// timer was still pending; cancelling twice is harmless.
func (s *Scheduler) Cancel(id TimerID) bool {
	for _, t := range s.timers {
		if t.id == id && !t.cancelled {
			t.cancelled = true
			return true
		}
	}
	return false
}

// CancelAll drops every pending effect.
func (s *Scheduler) CancelAll() {
	for _, t := range s.timers {
		t.cancelled = true
	}
	s.timers = nil
}

// Pending returns the number of effects still waiting to fire.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Advance runs every effect due at now, earliest first (ties in scheduling
// order). Effects scheduled by a running action wait for the next Advance.
// An action may cancel other due effects; those are skipped.
func (s *Scheduler) Advance(now time.Duration) int {
	var due []*timer
	for _, t := range s.timers {
		if !t.cancelled && t.fireAt <= now {
			due = append(due, t)
		}
	}
	slices.SortStableFunc(due, func(a, b *timer) int {
		if c := cmp.Compare(a.fireAt, b.fireAt); c != 0 {
			return c
		}
		return cmp.Compare(a.id, b.id)
	})

	fired := 0
	for _, t := range due {
		if t.cancelled {
			continue
		}
		t.cancelled = true
		t.action()
		fired++
	}
	s.timers = slices.DeleteFunc(s.timers, func(t *timer) bool { return t.cancelled })
	return fired
}
