package sched

// TaskID uniquely identifies a task in the scheduler.
// It is the index of the slot the task occupies.
type TaskID uint8

// TaskState describes whether a task is eligible for the next pass.
type TaskState uint8

const (
	Waiting TaskState = iota
	Suspended
	Running // only while the executor is being invoked
)

func (st TaskState) String() string {
	switch st {
	case Waiting:
		return "Waiting"
	case Suspended:
		return "Suspended"
	case Running:
		return "Running"
	default:
		return "Unknown"
	}
}

// Executor is the work bound to a task. Execute is called once per pass
// in which the task is Waiting, with the id of that task.
type Executor interface {
	Execute(id TaskID)
}

// ExecutorFunc adapts a plain function to an Executor.
type ExecutorFunc func(id TaskID)

func (f ExecutorFunc) Execute(id TaskID) { f(id) }

// Task represents one schedulable task unit.
// The executor is borrowed: the caller keeps it alive while the task is registered.
// Tasks are created by Scheduler.Add; a zero Task has no executor and never runs.
type Task struct {
	id    TaskID
	state TaskState
	exec  Executor
}

func (t *Task) ID() TaskID { return t.id }
func (t *Task) State() TaskState { return t.state }

// Process runs the executor if the task is Waiting and reports whether it ran.
// Suspended tasks are skipped. A Running task is being processed further up
// the call stack, so the call is refused.
// The task leaves Running even when the executor panics.
func (t *Task) Process(id TaskID) bool {
	if t.state != Waiting || t.exec == nil {
		return false
	}

	t.state = Running
	defer func() {
		// the executor may have suspended its own task; keep that
		if t.state == Running {
			t.state = Waiting
		}
	}()
	t.exec.Execute(id)
	return true
}

// Suspend stops the task from being run by later passes.
func (t *Task) Suspend() {
	t.state = Suspended
}

// Resume makes a suspended task eligible again.
// A Running task is left alone; it returns to Waiting when its executor returns.
func (t *Task) Resume() {
	if t.state == Suspended {
		t.state = Waiting
	}
}
