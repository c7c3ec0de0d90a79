// internal/sched/schedulerEvent.go

package sched

// StatusKind represents the type of scheduler event
type StatusKind int

const (
	StatusEnqueue StatusKind = iota
	StatusRemove
	StatusDispatch
	StatusSkip
	StatusPass
)

// StatusEvent is emitted on every key action and once at the end of each pass.
// Events are passed by value to the observer and never buffered by the scheduler.
type StatusEvent struct {
	Kind   StatusKind
	Pass   uint64 // most recent pass, starting at 1; 0 before the first pass
	TaskID TaskID
	State  TaskState // state of the task after the action; zero for StatusRemove and StatusPass
}

func (sk StatusKind) String() string {
	switch sk {
	case StatusEnqueue:
		return "Enqueued"
	case StatusRemove:
		return "Removed"
	case StatusDispatch:
		return "Dispatch"
	case StatusSkip:
		return "Skip"
	case StatusPass:
		return "Pass"
	default:
		return "Unknown"
	}
}
