package run

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/cluster"
	"github.com/schedsim/schedsim/cmd/util"
	"github.com/schedsim/schedsim/config"
	"github.com/schedsim/schedsim/events"
	"github.com/schedsim/schedsim/logger"
	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/version"
)

// NewCommand returns the run command.
func NewCommand() *cobra.Command {
	cmd, _ := newCommandHooks()
	return cmd
}

type hooks struct {
	Run func(conf config.Config) error
}

func newCommandHooks() (*cobra.Command, *hooks) {
	hooks := &hooks{
		Run: Run,
	}

	var (
		configFile string
		conf       config.Config
		flagConf   config.Config
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a scheduling simulation.",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			var err error

			conf, err = util.MergeConfigFileWithFlags(configFile, flagConf)
			if err != nil {
				return fmt.Errorf("error processing config: %v", err)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return hooks.Run(conf)
		},
	}

	cmd.SetGlobalNormalizationFunc(util.NormalizeFlags)
	f := cmd.Flags()
	f.AddFlagSet(util.SimFlags(&flagConf, &configFile))

	return cmd, hooks
}

// Run generates a node and task population from the configuration and
// drives the simulation to its horizon, reporting observations to the
// log.
func Run(conf config.Config) error {
	if err := conf.Validate(); err != nil {
		return err
	}

	log := logger.NewLogger("schedsim", conf.Logger)
	log.Info("Simulation starting", version.LogFields()...)
	log.Info("Population",
		"numNodes", conf.Sim.NumNodes,
		"numTasks", conf.Sim.NumTasks,
		"simulationTime", conf.Sim.SimulationTime,
		"seed", conf.Sim.Seed,
	)

	rng := cluster.NewRand(conf.Sim.Seed)
	reg, led := cluster.Generate(conf, rng)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	driver := sim.NewDriver(conf, reg, led, events.NewEventLogger(log, "report"), log)
	res, err := driver.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	log.Info("Simulation complete",
		"assigned", res.Assigned,
		"expired", res.Expired,
		"alpha", res.FinalPolicy.Alpha,
		"beta", res.FinalPolicy.Beta,
	)
	return nil
}
