package runner

import (
	"github.com/emirpasic/gods/trees/redblacktree"

	"lwos/internal/sched"
)

// Totals counts how often a task was dispatched and skipped.
type Totals struct {
	ID         sched.TaskID
	Dispatched int64
	Skipped    int64
}

// Tally keeps Totals for every registered task, ordered by task id.
// Removing a task drops its totals, so a reused id starts from zero.
type Tally struct {
	rbt *redblacktree.Tree // sched.TaskID -> *Totals
}

func NewTally() *Tally {
	return &Tally{rbt: redblacktree.NewWith(cmpTaskID)}
}

// Observe folds one scheduler event into the tally.
func (t *Tally) Observe(ev sched.StatusEvent) {
	switch ev.Kind {
	case sched.StatusEnqueue:
		t.rbt.Put(ev.TaskID, &Totals{ID: ev.TaskID})
	case sched.StatusRemove:
		t.rbt.Remove(ev.TaskID)
	case sched.StatusDispatch:
		t.entry(ev.TaskID).Dispatched++
	case sched.StatusSkip:
		t.entry(ev.TaskID).Skipped++
	}
}

// Get returns the totals of one task.
func (t *Tally) Get(id sched.TaskID) (Totals, bool) {
	v, ok := t.rbt.Get(id)
	if !ok {
		return Totals{}, false
	}
	return *v.(*Totals), true
}

// Rows returns a copy of all totals in ascending id order.
func (t *Tally) Rows() []Totals {
	rows := make([]Totals, 0, t.rbt.Size())
	it := t.rbt.Iterator()
	for it.Next() {
		rows = append(rows, *it.Value().(*Totals))
	}
	return rows
}

// entry returns the totals for id, creating them for tasks that were
// registered before the tally started observing.
func (t *Tally) entry(id sched.TaskID) *Totals {
	if v, ok := t.rbt.Get(id); ok {
		return v.(*Totals)
	}
	tot := &Totals{ID: id}
	t.rbt.Put(id, tot)
	return tot
}

// cmpTaskID orders tree keys by task id.
func cmpTaskID(a, b any) int {
	ka, kb := a.(sched.TaskID), b.(sched.TaskID)
	switch {
	case ka < kb:
		return -1
	case ka > kb:
		return 1
	default:
		return 0
	}
}
