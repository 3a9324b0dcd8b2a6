package main

import (
	"os"

	"github.com/schedsim/schedsim/cmd"
	"github.com/schedsim/schedsim/logger"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		logger.PrintSimpleError(err)
		os.Exit(1)
	}
}
