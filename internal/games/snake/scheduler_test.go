package snake

import (
	"slices"
	"testing"
	"time"
)

func TestSchedulerFiresInOrder(t *testing.T) {
	s := NewScheduler()
	var got []string
	s.At(200*time.Millisecond, func() { got = append(got, "b") })
	s.At(100*time.Millisecond, func() { got = append(got, "a") })
	s.At(100*time.Millisecond, func() { got = append(got, "c") })

	if n := s.Advance(99 * time.Millisecond); n != 0 {
		t.Fatalf("Advance(99ms) fired %d", n)
	}
	if n := s.Advance(150 * time.Millisecond); n != 2 {
		t.Fatalf("Advance(150ms) fired %d, want 2", n)
	}
	if n := s.Advance(time.Second); n != 1 {
		t.Fatalf("Advance(1s) fired %d, want 1", n)
	}
	if want := []string{"a", "c", "b"}; !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", s.Pending())
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	fired := false
	id := s.At(time.Second, func() { fired = true })

	if !s.Cancel(id) {
		t.Error("Cancel returned false for pending timer")
	}
	if s.Cancel(id) {
		t.Error("second Cancel returned true")
	}
	s.Advance(2 * time.Second)
	if fired {
		t.Error("cancelled timer fired")
	}
}

func TestSchedulerCancelFromAction(t *testing.T) {
	s := NewScheduler()
	var second TimerID
	secondFired := false
	s.At(100*time.Millisecond, func() { s.Cancel(second) })
	second = s.At(100*time.Millisecond, func() { secondFired = true })

	if n := s.Advance(100 * time.Millisecond); n != 1 {
		t.Errorf("fired %d, want 1", n)
	}
	if secondFired {
		t.Error("timer cancelled by an earlier action still fired")
	}
}

func TestSchedulerActionSchedulesForNextAdvance(t *testing.T) {
	s := NewScheduler()
	inner := false
	s.At(100*time.Millisecond, func() {
		s.At(50*time.Millisecond, func() { inner = true })
	})

	s.Advance(100 * time.Millisecond)
	if inner {
		t.Fatal("effect scheduled during Advance ran in the same Advance")
	}
	s.Advance(100 * time.Millisecond)
	if !inner {
		t.Error("effect scheduled during Advance did not run on the next one")
	}
}

func TestSchedulerCancelAll(t *testing.T) {
	s := NewScheduler()
	fired := 0
	for i := range 5 {
		s.At(time.Duration(i)*time.Millisecond, func() { fired++ })
	}
	s.CancelAll()
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d after CancelAll", s.Pending())
	}
	s.Advance(time.Second)
	if fired != 0 {
		t.Errorf("%d timers fired after CancelAll", fired)
	}
}
