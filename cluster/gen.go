package cluster

import (
	"math/rand"
	"time"

	"github.com/schedsim/schedsim/config"
)

// NewRand returns a rand source for population generation. A zero seed
// draws one from the clock; any other seed reproduces the same
// population and therefore the same run.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Generate builds the node registry and task ledger from the configured
// ranges. All draws are uniform and inclusive.
func Generate(conf config.Config, rng *rand.Rand) (*Registry, *Ledger) {
	nodes := make([]*Node, 0, conf.Sim.NumNodes)
	for i := 0; i < conf.Sim.NumNodes; i++ {
		capacity := intBetween(rng, conf.Nodes.MinCapacity, conf.Nodes.MaxCapacity)
		nodes = append(nodes, NewNode(i, capacity))
	}

	tasks := make([]*Task, 0, conf.Sim.NumTasks)
	for i := 0; i < conf.Sim.NumTasks; i++ {
		required := intBetween(rng, conf.Tasks.MinRequired, conf.Tasks.MaxRequired)
		// Deadlines always land within the simulation horizon.
		deadline := intBetween(rng, conf.Tasks.MinDeadline, conf.Sim.SimulationTime)
		processing := intBetween(rng, conf.Tasks.MinProcessing, conf.Tasks.MaxProcessing)
		tasks = append(tasks, NewTask(i, required, deadline, processing))
	}

	return NewRegistry(nodes), NewLedger(tasks)
}

// intBetween returns a uniform draw from [min, max] inclusive.
func intBetween(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}
