// internal/sched/scheduler.go

package sched

import "fmt"

// MaxCapacity is the largest number of tasks a TaskID can address.
const MaxCapacity = 1 << 8

// slot holds one task. An unoccupied slot is free for the next Add.
type slot struct {
	used bool
	task Task
}

// Scheduler runs its tasks cooperatively, one after another, in ascending id order.
// The task table is allocated once by New and never grows.
//
// A Scheduler is not safe for concurrent use. Executors may call Get and
// change task states during a pass, but Add, Remove and Process fail with
// ErrPassInProgress until the pass returns.
type Scheduler struct {
	slots    []slot
	count    int
	pass     uint64            // number of passes started
	inPass   bool              // set while Process walks the slots
	observer func(StatusEvent) // optional, nil means no events
}

// New creates a new Scheduler that holds up to capacity tasks.
func New(capacity int) (*Scheduler, error) {
	if capacity < 1 || capacity > MaxCapacity {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidCapacity, capacity, MaxCapacity)
	}
	return &Scheduler{slots: make([]slot, capacity)}, nil
}

// SetObserver installs fn to receive status events. Pass nil to disable.
func (s *Scheduler) SetObserver(fn func(StatusEvent)) { s.observer = fn }

// Capacity returns the maximum number of tasks.
func (s *Scheduler) Capacity() int { return len(s.slots) }

// Len returns the number of registered tasks.
func (s *Scheduler) Len() int { return s.count }

// Passes returns the number of passes started so far.
func (s *Scheduler) Passes() uint64 { return s.pass }

// Add registers exec under the lowest free id with the given initial state.
// Only Waiting and Suspended are accepted.
func (s *Scheduler) Add(exec Executor, state TaskState) (TaskID, error) {
	if s.inPass {
		return 0, ErrPassInProgress
	}
	if exec == nil {
		return 0, ErrNilExecutor
	}
	if state != Waiting && state != Suspended {
		return 0, fmt.Errorf("%w: %s", ErrInvalidState, state)
	}
	if s.count == len(s.slots) {
		return 0, fmt.Errorf("%w: capacity %d", ErrLimitExceeded, len(s.slots))
	}

	for i := range s.slots {
		sl := &s.slots[i]
		if sl.used {
			continue
		}
		id := TaskID(i)
		sl.used = true
		sl.task = Task{id: id, state: state, exec: exec}
		s.count++
		s.emit(StatusEnqueue, id, state)
		return id, nil
	}

	// unreachable while count matches the occupied slots
	return 0, fmt.Errorf("%w: capacity %d", ErrLimitExceeded, len(s.slots))
}

// Remove deregisters the task and frees its slot.
func (s *Scheduler) Remove(id TaskID) error {
	if s.inPass {
		return ErrPassInProgress
	}
	if _, err := s.Get(id); err != nil {
		return err
	}

	s.slots[id] = slot{}
	s.count--
	s.emit(StatusRemove, id, 0)
	return nil
}

// Get returns the registered task with the given id.
// The pointer refers to the task's slot: once the task is removed it must not
// be used, since a later Add reuses the slot for a different task.
func (s *Scheduler) Get(id TaskID) (*Task, error) {
	if int(id) >= len(s.slots) || !s.slots[id].used {
		return nil, fmt.Errorf("%w: id %d", ErrNoSuchTask, id)
	}
	return &s.slots[id].task, nil
}

// IDs appends the ids of all registered tasks to dst in ascending order.
func (s *Scheduler) IDs(dst []TaskID) []TaskID {
	for i := range s.slots {
		if s.slots[i].used {
			dst = append(dst, TaskID(i))
		}
	}
	return dst
}

// Process runs one scheduling pass: every registered task is visited in
// ascending id order and Waiting tasks get their executor invoked.
// Calling Process from inside an executor returns ErrPassInProgress.
func (s *Scheduler) Process() error {
	if s.inPass {
		return ErrPassInProgress
	}
	s.inPass = true
	defer func() { s.inPass = false }()

	s.pass++
	for i := range s.slots {
		sl := &s.slots[i]
		if !sl.used {
			continue
		}
		id := TaskID(i)
		if sl.task.Process(id) {
			s.emit(StatusDispatch, id, sl.task.state)
		} else {
			s.emit(StatusSkip, id, sl.task.state)
		}
	}
	s.emit(StatusPass, 0, 0)
	return nil
}

func (s *Scheduler) emit(kind StatusKind, id TaskID, state TaskState) {
	if s.observer == nil {
		return
	}
	s.observer(StatusEvent{Kind: kind, Pass: s.pass, TaskID: id, State: state})
}
