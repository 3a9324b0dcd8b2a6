// Package cluster holds the simulation state arena: the task ledger
// and the node registry, addressed by stable integer IDs.
package cluster

// Unset marks an assignment field (node, start, end) with no value.
const Unset = -1

// Task is one unit of schedulable work. Its resource requirement is
// held on the assigned node for the task's whole processing time.
type Task struct {
	ID             int
	Required       int
	Deadline       int
	ProcessingTime int

	// Assignment fields. All three are set together, exactly once,
	// when the scheduler places the task; Unset until then.
	AssignedNode int
	StartTime    int
	EndTime      int

	// expired records that the task was reported as expired, so the
	// driver only emits one expiry observation per task.
	expired bool
}

// NewTask returns an unassigned Task.
func NewTask(id, required, deadline, processingTime int) *Task {
	return &Task{
		ID:             id,
		Required:       required,
		Deadline:       deadline,
		ProcessingTime: processingTime,
		AssignedNode:   Unset,
		StartTime:      Unset,
		EndTime:        Unset,
	}
}

// Assigned returns true once the task has been placed on a node.
func (t *Task) Assigned() bool {
	return t.StartTime != Unset
}

// Eligible returns true if the task may still be scheduled at the
// given time: not yet assigned and its deadline has not passed.
// Scheduling exactly at the deadline step is allowed.
func (t *Task) Eligible(now int) bool {
	return !t.Assigned() && t.Deadline >= now
}

// assign sets the assignment fields. EndTime is derived from the
// processing time.
func (t *Task) assign(nodeID, now int) {
	t.AssignedNode = nodeID
	t.StartTime = now
	t.EndTime = now + t.ProcessingTime
}
