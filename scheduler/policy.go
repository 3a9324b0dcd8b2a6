package scheduler

// Policy holds the heuristic weights trading off available capacity
// against current load when scoring candidate nodes. A Policy value is
// passed explicitly into each Schedule call and updated by the driver
// after each step; there is no shared mutable policy state.
type Policy struct {
	Alpha float64
	Beta  float64
}

// Beta adaptation constants. Beta grows linearly with the mean node
// load, measured against a reference load of 50.
const (
	betaBase  = 0.5
	betaSlope = 0.1
	loadScale = 50.0
)

// DefaultPolicy returns the initial policy parameters.
func DefaultPolicy() Policy {
	return Policy{Alpha: 1.0, Beta: betaBase}
}

// Adapt returns the policy for the next step given the current mean
// node load. Higher load penalizes loaded nodes harder. Alpha is fixed
// for the run.
func (p Policy) Adapt(avgLoad float64) Policy {
	return Policy{
		Alpha: p.Alpha,
		Beta:  betaBase + betaSlope*(avgLoad/loadScale),
	}
}
