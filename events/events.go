// Package events provides the observation records emitted by a
// simulation run: task assignments, deadline expiries, policy updates,
// and the final per-node summaries.
package events

// Type tags the kind of an event.
type Type string

// Event types.
const (
	TypeAssigned     Type = "assigned"
	TypeExpired      Type = "expired"
	TypePolicyUpdate Type = "policy_update"
	TypeNodeSummary  Type = "node_summary"
)

// Event is one observation record. Which fields are meaningful depends
// on Type.
type Event struct {
	Type Type
	Step int

	// Assigned / Expired
	TaskID    int
	NodeID    int
	StartTime int
	EndTime   int
	Deadline  int

	// PolicyUpdate
	Alpha float64
	Beta  float64

	// NodeSummary
	Load     int
	Capacity int
	TaskIDs  []int
}

// Assigned returns an event recording a task placed on a node.
func Assigned(step, taskID, nodeID, start, end, deadline int) *Event {
	return &Event{
		Type:      TypeAssigned,
		Step:      step,
		TaskID:    taskID,
		NodeID:    nodeID,
		StartTime: start,
		EndTime:   end,
		Deadline:  deadline,
	}
}

// Expired returns an event recording a task whose deadline passed
// while it was still pending.
func Expired(step, taskID, deadline int) *Event {
	return &Event{
		Type:     TypeExpired,
		Step:     step,
		TaskID:   taskID,
		Deadline: deadline,
	}
}

// PolicyUpdate returns an event recording the policy parameters in
// effect after a step's adaptation.
func PolicyUpdate(step int, alpha, beta float64) *Event {
	return &Event{
		Type:  TypePolicyUpdate,
		Step:  step,
		Alpha: alpha,
		Beta:  beta,
	}
}

// NodeSummary returns an event recording a node's state at the end of
// the run: residual load and the tasks still scheduled on it.
func NodeSummary(nodeID, load, capacity int, taskIDs []int) *Event {
	return &Event{
		Type:     TypeNodeSummary,
		NodeID:   nodeID,
		Load:     load,
		Capacity: capacity,
		TaskIDs:  taskIDs,
	}
}
