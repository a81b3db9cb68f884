package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:          "gravity_relayer",
	Short:        "Relays validator sets, transaction batches and arbitrary logic calls from Cosmos to Ethereum",
	SilenceUsage: true,
}

// Execute runs the root command. The error is already printed by cobra.
func Execute() error {
	return RootCmd.Execute()
}
