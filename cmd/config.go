package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/config"
)

// configCmd prints the default configuration as YAML, as a starting
// point for a config file.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration as YAML.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := config.ToYaml(config.DefaultConfig())
		if err != nil {
			return err
		}
		fmt.Print(string(b))
		return nil
	},
}
