package runner

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"lwos/internal/sched"
)

var csvHeader = []string{"timestamp", "pass", "event", "task_id", "dispatched", "skipped"}

// EventLog turns scheduler status events into log lines, a running tally
// and, optionally, CSV records.
type EventLog struct {
	log   zerolog.Logger
	tally *Tally
	now   func() time.Time

	// csv-related
	csvFile   io.Closer // nil unless opened by EnableCSVLogging
	csvWriter *csv.Writer
}

func NewEventLog(log zerolog.Logger) *EventLog {
	return &EventLog{
		log:   log,
		tally: NewTally(),
		now:   time.Now,
	}
}

// Tally exposes the per-task totals collected so far.
func (l *EventLog) Tally() *Tally { return l.tally }

// EnableCSVLogging creates the file at path and writes every following event to it.
// Must be called before the scheduler starts emitting events.
func (l *EventLog) EnableCSVLogging(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := l.EnableCSV(f); err != nil {
		_ = f.Close()
		return err
	}
	l.csvFile = f
	return nil
}

// EnableCSV writes the CSV header to w and every following event after it.
func (l *EventLog) EnableCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	l.csvWriter = cw
	return nil
}

// Handle records one event. It is meant to be installed with
// sched.Scheduler.SetObserver.
func (l *EventLog) Handle(ev sched.StatusEvent) {
	// a removed task's totals are dropped by the tally; report its final ones
	tot, _ := l.tally.Get(ev.TaskID)
	l.tally.Observe(ev)
	if ev.Kind != sched.StatusRemove {
		tot, _ = l.tally.Get(ev.TaskID)
	}

	// end-of-pass markers occur every pass; keep them out of the CSV
	// and below the usual log levels for the brevity of output.
	if ev.Kind == sched.StatusPass {
		l.log.Trace().Uint64("pass", ev.Pass).Msg("pass complete")
		return
	}

	var e *zerolog.Event
	switch ev.Kind {
	case sched.StatusEnqueue, sched.StatusRemove:
		e = l.log.Info()
	default:
		e = l.log.Debug()
	}
	e.Uint64("pass", ev.Pass).
		Uint8("task", uint8(ev.TaskID)).
		Str("state", ev.State.String()).
		Msg(ev.Kind.String())

	if l.csvWriter == nil {
		return
	}
	rec := []string{
		l.now().Format(time.RFC3339Nano),
		strconv.FormatUint(ev.Pass, 10),
		ev.Kind.String(),
		strconv.FormatUint(uint64(ev.TaskID), 10),
		strconv.FormatInt(tot.Dispatched, 10),
		strconv.FormatInt(tot.Skipped, 10),
	}
	if err := l.csvWriter.Write(rec); err != nil {
		l.log.Warn().Err(err).Msg("csv write failed")
		return
	}
	l.csvWriter.Flush()
}

// Close flushes the CSV output and closes the file opened by EnableCSVLogging.
func (l *EventLog) Close() error {
	if l.csvWriter == nil {
		return nil
	}
	l.csvWriter.Flush()
	err := l.csvWriter.Error()
	if l.csvFile != nil {
		if cerr := l.csvFile.Close(); err == nil {
			err = cerr
		}
		l.csvFile = nil
	}
	l.csvWriter = nil
	if err != nil {
		return fmt.Errorf("close csv log: %w", err)
	}
	return nil
}
