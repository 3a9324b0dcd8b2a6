package scheduler

import (
	"github.com/schedsim/schedsim/cluster"
)

// Score rates how attractive a node is for placement under the given
// policy: nodes with more free capacity score higher, loaded nodes are
// penalized.
func Score(n *cluster.Node, p Policy) float64 {
	return p.Alpha*float64(n.Available()) - p.Beta*float64(n.Load)
}

// BestOffer returns the offer with the highest score. Ties are broken
// by the lowest node ID, so selection is deterministic regardless of
// candidate order. Returns nil for an empty list.
func BestOffer(offers []*Offer) *Offer {
	var best *Offer
	for _, o := range offers {
		switch {
		case best == nil:
			best = o
		case o.Score > best.Score:
			best = o
		case o.Score == best.Score && o.NodeID < best.NodeID:
			best = o
		}
	}
	return best
}
