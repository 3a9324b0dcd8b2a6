package cluster

// Node is one fixed-capacity resource pool hosting running tasks.
type Node struct {
	ID       int
	Capacity int

	// Load is the sum of Required over the tasks currently in
	// Schedule. Always <= Capacity.
	Load     int
	Schedule []*Task
}

// NewNode returns an empty Node with the given capacity.
func NewNode(id, capacity int) *Node {
	return &Node{ID: id, Capacity: capacity}
}

// Available returns the capacity not currently reserved by tasks.
func (n *Node) Available() int {
	return n.Capacity - n.Load
}

// TaskIDs returns the IDs of the tasks currently scheduled on the node.
func (n *Node) TaskIDs() []int {
	ids := make([]int, len(n.Schedule))
	for i, t := range n.Schedule {
		ids[i] = t.ID
	}
	return ids
}
