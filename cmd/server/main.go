package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "stylencms",
	Short:         "StylenSurface website and content backend",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE:          runServe,
}

func main() {
	rootCmd.AddCommand(serveCmd, seedCmd, initUserCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
