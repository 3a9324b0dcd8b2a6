package scheduler

// Offer describes a node offered by the scheduler for a task. The
// score describes how well the task fits this node under the current
// policy.
type Offer struct {
	TaskID int
	NodeID int
	Score  float64
}

// NewOffer returns a new Offer instance.
func NewOffer(taskID, nodeID int, score float64) *Offer {
	return &Offer{TaskID: taskID, NodeID: nodeID, Score: score}
}
