package scheduler

import (
	"fmt"

	"github.com/schedsim/schedsim/cluster"
)

// Predicate is a function that checks whether a task fits a node.
type Predicate func(*cluster.Task, *cluster.Node) error

// ResourcesFit determines whether a task's resource requirement fits a
// node's available capacity.
func ResourcesFit(t *cluster.Task, n *cluster.Node) error {
	if n.Available() < t.Required {
		return fmt.Errorf(
			"fail resources, required %d, available %d",
			t.Required, n.Available(),
		)
	}
	return nil
}

// DefaultPredicates is the list of Predicate functions checking whether
// a task fits a node.
var DefaultPredicates = []Predicate{
	ResourcesFit,
}

// Match checks whether a task fits a node using the given Predicate list.
func Match(n *cluster.Node, t *cluster.Task, predicates []Predicate) bool {
	for _, pred := range predicates {
		if err := pred(t, n); err != nil {
			return false
		}
	}
	return true
}
