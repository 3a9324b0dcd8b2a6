package scheduler

import (
	"math"
	"testing"
)

func TestDefaultPolicy(t *testing.T) {
	pol := DefaultPolicy()
	if pol.Alpha != 1.0 || pol.Beta != 0.5 {
		t.Errorf("unexpected default policy %+v", pol)
	}
}

func TestAdapt(t *testing.T) {
	pol := DefaultPolicy()

	// Mean load 20 -> beta = 0.5 + 0.1*(20/50) = 0.54
	next := pol.Adapt(20)
	if math.Abs(next.Beta-0.54) > 1e-9 {
		t.Errorf("expected beta 0.54, got %f", next.Beta)
	}
	if next.Alpha != pol.Alpha {
		t.Error("alpha must not change")
	}

	// Adaptation is a function of the current load only, not of the
	// previous beta.
	again := next.Adapt(0)
	if again.Beta != 0.5 {
		t.Errorf("expected beta reset to 0.5 at zero load, got %f", again.Beta)
	}
}
