package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/pockettasks/remind/internal/types"
)

func reminder(id, date string, at *string) types.Reminder {
	return types.Reminder{ID: id, Title: "t", Date: date, Time: at}
}

func TestScheduleFiresPastDueImmediately(t *testing.T) {
	s := New(0)
	fired := make(chan string, 1)

	s.Schedule(reminder("rem-001", "2020-01-01", nil), func(r types.Reminder) {
		fired <- r.ID
	})

	select {
	case id := <-fired:
		if id != "rem-001" {
			t.Errorf("fired id = %q, want rem-001", id)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("past-due reminder never fired")
	}
	if s.Pending() != 0 {
		t.Errorf("pending = %d after fire, want 0", s.Pending())
	}
}

func TestScheduleCapsDelay(t *testing.T) {
	// A reminder years away must still fire within the max delay.
	s := New(50 * time.Millisecond)
	fired := make(chan struct{}, 1)

	s.Schedule(reminder("rem-001", "2099-01-01", nil), func(types.Reminder) {
		fired <- struct{}{}
	})

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("capped timer never fired")
	}
}

func TestCancel(t *testing.T) {
	s := New(time.Hour)
	var count atomic.Int32

	s.Schedule(reminder("rem-001", "2099-01-01", nil), func(types.Reminder) {
		count.Add(1)
	})
	if s.Pending() != 1 {
		t.Fatalf("pending = %d, want 1", s.Pending())
	}

	s.Cancel("rem-001")
	if s.Pending() != 0 {
		t.Errorf("pending = %d after cancel, want 0", s.Pending())
	}
	time.Sleep(20 * time.Millisecond)
	if count.Load() != 0 {
		t.Error("canceled timer fired anyway")
	}
}

func TestCancelAll(t *testing.T) {
	s := New(time.Hour)
	for _, id := range []string{"rem-001", "rem-002", "rem-003"} {
		s.Schedule(reminder(id, "2099-01-01", nil), func(types.Reminder) {})
	}
	if s.Pending() != 3 {
		t.Fatalf("pending = %d, want 3", s.Pending())
	}
	s.CancelAll()
	if s.Pending() != 0 {
		t.Errorf("pending = %d after CancelAll, want 0", s.Pending())
	}
}

func TestRescheduleReplacesTimer(t *testing.T) {
	s := New(time.Hour)
	s.Schedule(reminder("rem-001", "2099-01-01", nil), func(types.Reminder) {})
	s.Schedule(reminder("rem-001", "2099-06-01", nil), func(types.Reminder) {})
	if s.Pending() != 1 {
		t.Errorf("pending = %d after reschedule of same id, want 1", s.Pending())
	}
}
