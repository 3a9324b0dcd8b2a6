package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-test/deep"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Error("default config must validate", err)
	}
}

func TestYamlRoundTrip(t *testing.T) {
	conf := DefaultConfig()
	conf.Sim.NumNodes = 7
	conf.Sim.Seed = 42
	conf.Logger.Level = "debug"

	b, err := ToYaml(conf)
	if err != nil {
		t.Fatal(err)
	}

	parsed := DefaultConfig()
	if err := Parse(b, &parsed); err != nil {
		t.Fatal(err)
	}

	if diff := deep.Equal(conf, parsed); diff != nil {
		t.Error("config changed in round trip", diff)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := []byte(`
Sim:
  NumNodes: 5
  SimulationTime: 40
Tasks:
  MaxRequired: 50
`)
	if err := os.WriteFile(path, raw, 0600); err != nil {
		t.Fatal(err)
	}

	conf := DefaultConfig()
	if err := ParseFile(path, &conf); err != nil {
		t.Fatal(err)
	}

	if conf.Sim.NumNodes != 5 {
		t.Errorf("expected NumNodes 5, got %d", conf.Sim.NumNodes)
	}
	if conf.Sim.SimulationTime != 40 {
		t.Errorf("expected SimulationTime 40, got %d", conf.Sim.SimulationTime)
	}
	if conf.Tasks.MaxRequired != 50 {
		t.Errorf("expected MaxRequired 50, got %d", conf.Tasks.MaxRequired)
	}
	// Untouched fields keep their defaults.
	if conf.Sim.NumTasks != 10 {
		t.Errorf("expected default NumTasks 10, got %d", conf.Sim.NumTasks)
	}
}

func TestParseFileMissing(t *testing.T) {
	conf := DefaultConfig()
	if err := ParseFile("/no/such/file.yaml", &conf); err == nil {
		t.Error("expected error for missing file")
	}
	// An empty path is a no-op.
	if err := ParseFile("", &conf); err != nil {
		t.Error("empty path must not error", err)
	}
}

func TestValidateErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero nodes", func(c *Config) { c.Sim.NumNodes = 0 }},
		{"negative tasks", func(c *Config) { c.Sim.NumTasks = -1 }},
		{"zero horizon", func(c *Config) { c.Sim.SimulationTime = 0 }},
		{"inverted capacity range", func(c *Config) { c.Nodes.MaxCapacity = c.Nodes.MinCapacity - 1 }},
		{"inverted requirement range", func(c *Config) { c.Tasks.MaxRequired = c.Tasks.MinRequired - 1 }},
		{"inverted processing range", func(c *Config) { c.Tasks.MaxProcessing = 0 }},
		{"deadline past horizon", func(c *Config) { c.Tasks.MinDeadline = c.Sim.SimulationTime + 1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			conf := DefaultConfig()
			tc.mutate(&conf)
			if err := conf.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
