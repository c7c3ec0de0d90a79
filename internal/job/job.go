// Package job holds ready-made executors for the scheduler.
package job

import (
	"fmt"
	"io"
	"os"
	"time"

	"lwos/internal/sched"
)

// Print writes its message on every run.
type Print struct {
	Msg string
	Out io.Writer // os.Stdout when nil
}

func (p *Print) Execute(sched.TaskID) {
	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintln(out, p.Msg)
}

// Nop does nothing. Useful to exercise the scheduler on its own.
type Nop struct{}

func (Nop) Execute(sched.TaskID) {}

// Counter counts its runs and remembers the id of the last one.
type Counter struct {
	Runs   int
	LastID sched.TaskID
}

func (c *Counter) Execute(id sched.TaskID) {
	c.Runs++
	c.LastID = id
}

// Sleep blocks for the given duration on every run.
// The scheduler waits for it; nothing else runs meanwhile.
type Sleep struct {
	D time.Duration
}

func (s Sleep) Execute(sched.TaskID) {
	if s.D > 0 {
		time.Sleep(s.D)
	}
}
