package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/abstree/internal/logging"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "abstree",
	Short: "Certify local robustness of tree-ensemble classifiers under adversarial perturbation",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Configure(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(runCmd)
}

// Execute runs the CLI and reports errors to stderr.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		return err
	}

	return nil
}
