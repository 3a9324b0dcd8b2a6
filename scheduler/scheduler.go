// Package scheduler implements the heuristic task placement algorithm:
// earliest-deadline-first over pending tasks, scoring candidate nodes
// by weighted available capacity and load.
package scheduler

import (
	"fmt"
	"sort"

	"github.com/schedsim/schedsim/cluster"
)

// Schedule runs one assignment pass over the pending tasks at the given
// time, applying assignments to the ledger and registry in place, and
// returns the applied offers in assignment order.
//
// Tasks are visited in order of ascending deadline (stable, so ties
// keep the pending order). A task with no candidate node is skipped and
// stays pending for a future step. Assignments made earlier in the pass
// consume capacity seen by later tasks; earlier deadlines get placement
// priority within the same step.
func Schedule(pending []*cluster.Task, reg *cluster.Registry, led *cluster.Ledger, now int, pol Policy) ([]*Offer, error) {
	sorted := make([]*cluster.Task, len(pending))
	copy(sorted, pending)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Deadline < sorted[j].Deadline
	})

	var applied []*Offer
	for _, task := range sorted {
		var offers []*Offer
		for _, n := range reg.Nodes() {
			if !Match(n, task, DefaultPredicates) {
				continue
			}
			offers = append(offers, NewOffer(task.ID, n.ID, Score(n, pol)))
		}

		// No node can hold the task right now. It stays pending,
		// subject to deadline expiry.
		best := BestOffer(offers)
		if best == nil {
			continue
		}

		if err := reg.Reserve(best.NodeID, task); err != nil {
			return applied, fmt.Errorf("schedule: %w", err)
		}
		if _, err := led.Assign(task.ID, best.NodeID, now); err != nil {
			return applied, fmt.Errorf("schedule: %w", err)
		}
		applied = append(applied, best)
	}
	return applied, nil
}
