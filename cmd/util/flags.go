package util

import (
	"github.com/spf13/pflag"

	"github.com/schedsim/schedsim/config"
)

// SimFlags returns a new flag set for configuring a simulation run.
func SimFlags(flagConf *config.Config, configFile *string) *pflag.FlagSet {
	f := pflag.NewFlagSet("", pflag.ContinueOnError)

	f.StringVarP(configFile, "config", "c", *configFile, "Config File")

	f.AddFlagSet(simFlags(flagConf))
	f.AddFlagSet(genFlags(flagConf))
	f.AddFlagSet(loggerFlags(flagConf))

	return f
}

func simFlags(flagConf *config.Config) *pflag.FlagSet {
	f := pflag.NewFlagSet("", pflag.ContinueOnError)

	f.IntVar(&flagConf.Sim.NumNodes, "Sim.NumNodes",
		flagConf.Sim.NumNodes, "Number of nodes in the pool.")
	f.IntVar(&flagConf.Sim.NumTasks, "Sim.NumTasks",
		flagConf.Sim.NumTasks, "Number of tasks to generate.")
	f.IntVar(&flagConf.Sim.SimulationTime, "Sim.SimulationTime",
		flagConf.Sim.SimulationTime, "Number of time steps to simulate.")
	f.Int64Var(&flagConf.Sim.Seed, "Sim.Seed",
		flagConf.Sim.Seed, "Random seed for population generation. 0 seeds from the clock.")

	return f
}

func genFlags(flagConf *config.Config) *pflag.FlagSet {
	f := pflag.NewFlagSet("", pflag.ContinueOnError)

	f.IntVar(&flagConf.Nodes.MinCapacity, "Nodes.MinCapacity",
		flagConf.Nodes.MinCapacity, "Minimum node capacity.")
	f.IntVar(&flagConf.Nodes.MaxCapacity, "Nodes.MaxCapacity",
		flagConf.Nodes.MaxCapacity, "Maximum node capacity.")
	f.IntVar(&flagConf.Tasks.MinRequired, "Tasks.MinRequired",
		flagConf.Tasks.MinRequired, "Minimum task resource requirement.")
	f.IntVar(&flagConf.Tasks.MaxRequired, "Tasks.MaxRequired",
		flagConf.Tasks.MaxRequired, "Maximum task resource requirement.")
	f.IntVar(&flagConf.Tasks.MinDeadline, "Tasks.MinDeadline",
		flagConf.Tasks.MinDeadline, "Earliest possible task deadline.")
	f.IntVar(&flagConf.Tasks.MinProcessing, "Tasks.MinProcessing",
		flagConf.Tasks.MinProcessing, "Minimum task processing time.")
	f.IntVar(&flagConf.Tasks.MaxProcessing, "Tasks.MaxProcessing",
		flagConf.Tasks.MaxProcessing, "Maximum task processing time.")

	return f
}

func loggerFlags(flagConf *config.Config) *pflag.FlagSet {
	f := pflag.NewFlagSet("", pflag.ContinueOnError)

	f.StringVar(&flagConf.Logger.Level, "Logger.Level",
		flagConf.Logger.Level, "Level of logging")
	f.StringVar(&flagConf.Logger.Formatter, "Logger.Formatter",
		flagConf.Logger.Formatter, "Logging format, either 'text' or 'json'")
	f.StringVar(&flagConf.Logger.OutputFile, "Logger.OutputFile",
		flagConf.Logger.OutputFile, "File path to write logs to")

	return f
}
