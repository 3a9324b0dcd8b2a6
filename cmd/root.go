// Package cmd contains the schedsim CLI commands.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/cmd/run"
	"github.com/schedsim/schedsim/cmd/version"
)

// RootCmd represents the root command.
var RootCmd = &cobra.Command{
	Use:           "schedsim",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	RootCmd.AddCommand(configCmd)
	RootCmd.AddCommand(run.NewCommand())
	RootCmd.AddCommand(version.Cmd)
}
