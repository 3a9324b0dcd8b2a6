package scheduler

import (
	"testing"

	"github.com/schedsim/schedsim/cluster"
)

func TestScore(t *testing.T) {
	n := cluster.NewNode(0, 100)
	n.Load = 40

	pol := Policy{Alpha: 1.0, Beta: 0.5}
	// alpha*available - beta*load = 60 - 20
	if got := Score(n, pol); got != 40.0 {
		t.Errorf("expected score 40, got %f", got)
	}
}

func TestBestOffer(t *testing.T) {
	best := BestOffer([]*Offer{
		NewOffer(0, 0, 10),
		NewOffer(0, 1, 30),
		NewOffer(0, 2, 20),
	})
	if best.NodeID != 1 {
		t.Errorf("expected node 1, got %d", best.NodeID)
	}
}

func TestBestOfferTieBreak(t *testing.T) {
	// Equal scores: the lowest node ID wins, regardless of order.
	best := BestOffer([]*Offer{
		NewOffer(0, 2, 25),
		NewOffer(0, 1, 25),
		NewOffer(0, 3, 25),
	})
	if best.NodeID != 1 {
		t.Errorf("expected tie broken by lowest node ID, got %d", best.NodeID)
	}
}

func TestBestOfferEmpty(t *testing.T) {
	if BestOffer(nil) != nil {
		t.Error("expected nil for empty offers")
	}
}
