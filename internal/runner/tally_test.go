package runner

import (
	"testing"

	"lwos/internal/sched"
)

func TestTallyFollowsScheduler(t *testing.T) {
	t.Parallel()
	s, err := sched.New(4)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	tally := NewTally()
	s.SetObserver(tally.Observe)

	nop := sched.ExecutorFunc(func(sched.TaskID) {})
	for _, st := range []sched.TaskState{sched.Waiting, sched.Suspended, sched.Waiting} {
		if _, err := s.Add(nop, st); err != nil {
			t.Fatalf("Add error: %v", err)
		}
	}
	for i := 0; i < 3; i++ {
		_ = s.Process()
	}

	want := []Totals{
		{ID: 0, Dispatched: 3},
		{ID: 1, Skipped: 3},
		{ID: 2, Dispatched: 3},
	}
	rows := tally.Rows()
	if len(rows) != len(want) {
		t.Fatalf("rows = %+v, want %+v", rows, want)
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Fatalf("row %d = %+v, want %+v", i, rows[i], want[i])
		}
	}

	if err := s.Remove(0); err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if _, ok := tally.Get(0); ok {
		t.Fatal("totals kept for a removed task")
	}
	if _, err := s.Add(nop, sched.Waiting); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	_ = s.Process()
	if got, _ := tally.Get(0); got.Dispatched != 1 {
		t.Fatalf("reused id totals = %+v, want Dispatched=1", got)
	}
}

func TestTallyLateObserver(t *testing.T) {
	t.Parallel()
	tally := NewTally()
	tally.Observe(sched.StatusEvent{Kind: sched.StatusDispatch, TaskID: 9})
	tally.Observe(sched.StatusEvent{Kind: sched.StatusSkip, TaskID: 3})
	tally.Observe(sched.StatusEvent{Kind: sched.StatusPass})

	rows := tally.Rows()
	if len(rows) != 2 || rows[0].ID != 3 || rows[1].ID != 9 {
		t.Fatalf("rows = %+v, want ids [3 9]", rows)
	}
	if rows[0].Skipped != 1 || rows[1].Dispatched != 1 {
		t.Fatalf("rows = %+v", rows)
	}
}
