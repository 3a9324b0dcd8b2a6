package scheduler

import (
	"testing"

	"github.com/schedsim/schedsim/cluster"
)

func TestResourcesFit(t *testing.T) {
	task := cluster.NewTask(0, 20, 5, 3)
	n := cluster.NewNode(0, 50)

	if ResourcesFit(task, n) != nil {
		t.Error("expected resources to fit")
	}

	// Exact fit passes.
	n.Load = 30
	if ResourcesFit(task, n) != nil {
		t.Error("expected exact fit to pass")
	}

	n.Load = 31
	if ResourcesFit(task, n) == nil {
		t.Error("expected resources NOT to fit")
	}
}

func TestMatch(t *testing.T) {
	task := cluster.NewTask(0, 20, 5, 3)

	if !Match(cluster.NewNode(0, 50), task, DefaultPredicates) {
		t.Error("expected match")
	}
	if Match(cluster.NewNode(0, 10), task, DefaultPredicates) {
		t.Error("expected no match")
	}
}
