package cluster

import "fmt"

// Ledger owns all tasks for the lifetime of a simulation. Tasks are
// addressed by their integer ID and are never removed; assignment state
// is mutated only through Assign.
type Ledger struct {
	tasks []*Task
}

// NewLedger returns a Ledger holding the given tasks, in creation order.
func NewLedger(tasks []*Task) *Ledger {
	return &Ledger{tasks: tasks}
}

// Get returns the task with the given ID, or nil.
func (l *Ledger) Get(id int) *Task {
	for _, t := range l.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Tasks returns all tasks in creation order. The slice is shared;
// callers must not modify it.
func (l *Ledger) Tasks() []*Task {
	return l.tasks
}

// Len returns the number of tasks.
func (l *Ledger) Len() int {
	return len(l.tasks)
}

// Pending returns the tasks eligible for scheduling at the given time:
// unassigned, with a deadline at or after now. Creation order.
func (l *Ledger) Pending(now int) []*Task {
	var pending []*Task
	for _, t := range l.tasks {
		if t.Eligible(now) {
			pending = append(pending, t)
		}
	}
	return pending
}

// Assign records the placement of a task on a node at the given time.
// A task may be assigned at most once.
func (l *Ledger) Assign(taskID, nodeID, now int) (*Task, error) {
	t := l.Get(taskID)
	if t == nil {
		return nil, fmt.Errorf("assign: unknown task %d", taskID)
	}
	if t.Assigned() {
		return nil, fmt.Errorf("assign: task %d already assigned to node %d", taskID, t.AssignedNode)
	}
	t.assign(nodeID, now)
	return t, nil
}

// ExpireOverdue returns tasks which are past their deadline and were
// never assigned, marking them so each is returned only once. This is
// an observation hook only; Pending alone decides eligibility, so
// expiry reporting never changes scheduling outcomes.
func (l *Ledger) ExpireOverdue(now int) []*Task {
	var expired []*Task
	for _, t := range l.tasks {
		if !t.Assigned() && !t.expired && t.Deadline < now {
			t.expired = true
			expired = append(expired, t)
		}
	}
	return expired
}
