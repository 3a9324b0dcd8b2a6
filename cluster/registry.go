package cluster

import "fmt"

// Registry owns the fixed set of nodes and their live capacity
// accounting. Nodes are addressed by their integer ID; all mutation of
// node load and schedules goes through Reserve and ReleaseFinished.
type Registry struct {
	nodes []*Node
}

// NewRegistry returns a Registry holding the given nodes, ordered by ID.
func NewRegistry(nodes []*Node) *Registry {
	return &Registry{nodes: nodes}
}

// Get returns the node with the given ID, or nil.
func (r *Registry) Get(id int) *Node {
	for _, n := range r.nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// Nodes returns all nodes in ID order. The slice is shared; callers
// must not modify it.
func (r *Registry) Nodes() []*Node {
	return r.nodes
}

// Len returns the number of nodes.
func (r *Registry) Len() int {
	return len(r.nodes)
}

// Available returns the unreserved capacity of the given node.
func (r *Registry) Available(id int) int {
	n := r.Get(id)
	if n == nil {
		return 0
	}
	return n.Available()
}

// Reserve adds the task to the node's schedule and reserves its
// required resources. The scheduler filters candidates by capacity
// before calling Reserve, but the capacity is re-validated here since
// that filter lives in another package.
func (r *Registry) Reserve(id int, t *Task) error {
	n := r.Get(id)
	if n == nil {
		return fmt.Errorf("reserve: unknown node %d", id)
	}
	if t.Required > n.Available() {
		return fmt.Errorf(
			"reserve: node %d oversubscribed: task %d requires %d, %d available",
			id, t.ID, t.Required, n.Available(),
		)
	}
	n.Schedule = append(n.Schedule, t)
	n.Load += t.Required
	return nil
}

// ReleaseFinished removes every task with EndTime <= now from every
// node's schedule and releases its resources. Returns the released
// tasks. Calling it again at the same time is a no-op.
func (r *Registry) ReleaseFinished(now int) []*Task {
	var released []*Task
	for _, n := range r.nodes {
		keep := n.Schedule[:0]
		for _, t := range n.Schedule {
			if t.EndTime != Unset && t.EndTime <= now {
				n.Load -= t.Required
				released = append(released, t)
			} else {
				keep = append(keep, t)
			}
		}
		n.Schedule = keep
	}
	return released
}

// AverageLoad returns the mean load across all nodes, or 0 if the
// registry is empty.
func (r *Registry) AverageLoad() float64 {
	if len(r.nodes) == 0 {
		return 0
	}
	var total int
	for _, n := range r.nodes {
		total += n.Load
	}
	return float64(total) / float64(len(r.nodes))
}
