// Package config describes configuration for schedsim.
package config

import (
	"fmt"

	"github.com/schedsim/schedsim/logger"
)

// Config describes configuration for a simulation run.
type Config struct {
	Sim    Sim
	Nodes  NodeGen
	Tasks  TaskGen
	Logger logger.Config
}

// Sim describes the simulation population sizes and horizon.
type Sim struct {
	NumNodes       int
	NumTasks       int
	SimulationTime int
	// Seed for population generation. Zero means seed from the clock;
	// any other value makes the run reproducible.
	Seed int64
}

// NodeGen describes the range node capacities are drawn from.
type NodeGen struct {
	MinCapacity int
	MaxCapacity int
}

// TaskGen describes the ranges task attributes are drawn from.
// Deadlines are drawn from [MinDeadline, Sim.SimulationTime].
type TaskGen struct {
	MinRequired   int
	MaxRequired   int
	MinDeadline   int
	MinProcessing int
	MaxProcessing int
}

// DefaultConfig returns configuration with simple defaults.
func DefaultConfig() Config {
	return Config{
		Sim: Sim{
			NumNodes:       3,
			NumTasks:       10,
			SimulationTime: 20,
		},
		Nodes: NodeGen{
			MinCapacity: 50,
			MaxCapacity: 100,
		},
		Tasks: TaskGen{
			MinRequired:   10,
			MaxRequired:   30,
			MinDeadline:   5,
			MinProcessing: 1,
			MaxProcessing: 5,
		},
		Logger: logger.DefaultConfig(),
	}
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if c.Sim.NumNodes < 1 {
		return fmt.Errorf("config: Sim.NumNodes must be at least 1, got %d", c.Sim.NumNodes)
	}
	if c.Sim.NumTasks < 0 {
		return fmt.Errorf("config: Sim.NumTasks may not be negative, got %d", c.Sim.NumTasks)
	}
	if c.Sim.SimulationTime < 1 {
		return fmt.Errorf("config: Sim.SimulationTime must be at least 1, got %d", c.Sim.SimulationTime)
	}
	if c.Nodes.MinCapacity < 1 || c.Nodes.MaxCapacity < c.Nodes.MinCapacity {
		return fmt.Errorf("config: invalid node capacity range [%d, %d]",
			c.Nodes.MinCapacity, c.Nodes.MaxCapacity)
	}
	if c.Tasks.MinRequired < 1 || c.Tasks.MaxRequired < c.Tasks.MinRequired {
		return fmt.Errorf("config: invalid task requirement range [%d, %d]",
			c.Tasks.MinRequired, c.Tasks.MaxRequired)
	}
	if c.Tasks.MinProcessing < 1 || c.Tasks.MaxProcessing < c.Tasks.MinProcessing {
		return fmt.Errorf("config: invalid processing time range [%d, %d]",
			c.Tasks.MinProcessing, c.Tasks.MaxProcessing)
	}
	if c.Tasks.MinDeadline < 0 || c.Tasks.MinDeadline > c.Sim.SimulationTime {
		return fmt.Errorf("config: Tasks.MinDeadline %d outside [0, %d]",
			c.Tasks.MinDeadline, c.Sim.SimulationTime)
	}
	return nil
}
