package job

import (
	"bytes"
	"testing"
	"time"

	"lwos/internal/sched"
)

func TestPrint(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	p := &Print{Msg: "Hello", Out: &buf}
	p.Execute(0)
	p.Execute(3)
	if got := buf.String(); got != "Hello\nHello\n" {
		t.Fatalf("output = %q, want %q", got, "Hello\nHello\n")
	}
}

func TestCounter(t *testing.T) {
	t.Parallel()
	c := &Counter{}
	c.Execute(2)
	c.Execute(5)
	if c.Runs != 2 || c.LastID != 5 {
		t.Fatalf("counter = %+v, want Runs=2 LastID=5", *c)
	}
}

func TestSleep(t *testing.T) {
	t.Parallel()
	start := time.Now()
	Sleep{D: 5 * time.Millisecond}.Execute(0)
	if time.Since(start) < 5*time.Millisecond {
		t.Fatal("Sleep returned early")
	}
	Sleep{}.Execute(0)
}

func TestExecutorsDriveScheduler(t *testing.T) {
	t.Parallel()
	s, err := sched.New(4)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	var buf bytes.Buffer
	hello := &Print{Msg: "Hello", Out: &buf}
	middle := &Print{Msg: "scheduler", Out: &buf}
	world := &Print{Msg: "world!", Out: &buf}
	for _, e := range []sched.Executor{hello, middle, world, Nop{}} {
		if _, err := s.Add(e, sched.Waiting); err != nil {
			t.Fatalf("Add error: %v", err)
		}
	}

	_ = s.Process()
	task, err := s.Get(1)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	task.Suspend()
	_ = s.Process()

	want := "Hello\nscheduler\nworld!\nHello\nworld!\n"
	if buf.String() != want {
		t.Fatalf("output = %q, want %q", buf.String(), want)
	}
}
