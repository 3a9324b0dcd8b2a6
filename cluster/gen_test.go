package cluster

import (
	"testing"

	"github.com/go-test/deep"

	"github.com/schedsim/schedsim/config"
)

func TestGenerateRanges(t *testing.T) {
	conf := config.DefaultConfig()
	conf.Sim.NumNodes = 20
	conf.Sim.NumTasks = 200

	reg, led := Generate(conf, NewRand(1))

	if reg.Len() != 20 {
		t.Fatalf("expected 20 nodes, got %d", reg.Len())
	}
	if led.Len() != 200 {
		t.Fatalf("expected 200 tasks, got %d", led.Len())
	}

	for _, n := range reg.Nodes() {
		if n.Capacity < conf.Nodes.MinCapacity || n.Capacity > conf.Nodes.MaxCapacity {
			t.Errorf("node %d capacity %d outside [%d, %d]",
				n.ID, n.Capacity, conf.Nodes.MinCapacity, conf.Nodes.MaxCapacity)
		}
		if n.Load != 0 || len(n.Schedule) != 0 {
			t.Errorf("node %d not empty after generation", n.ID)
		}
	}

	for _, task := range led.Tasks() {
		if task.Required < conf.Tasks.MinRequired || task.Required > conf.Tasks.MaxRequired {
			t.Errorf("task %d required %d outside range", task.ID, task.Required)
		}
		if task.Deadline < conf.Tasks.MinDeadline || task.Deadline > conf.Sim.SimulationTime {
			t.Errorf("task %d deadline %d outside range", task.ID, task.Deadline)
		}
		if task.ProcessingTime < conf.Tasks.MinProcessing || task.ProcessingTime > conf.Tasks.MaxProcessing {
			t.Errorf("task %d processing time %d outside range", task.ID, task.ProcessingTime)
		}
		if task.Assigned() {
			t.Errorf("task %d assigned after generation", task.ID)
		}
	}
}

func TestGenerateReproducible(t *testing.T) {
	conf := config.DefaultConfig()

	regA, ledA := Generate(conf, NewRand(42))
	regB, ledB := Generate(conf, NewRand(42))

	if diff := deep.Equal(regA.Nodes(), regB.Nodes()); diff != nil {
		t.Error("same seed must generate the same nodes", diff)
	}
	if diff := deep.Equal(ledA.Tasks(), ledB.Tasks()); diff != nil {
		t.Error("same seed must generate the same tasks", diff)
	}
}
