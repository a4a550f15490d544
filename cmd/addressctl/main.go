package main

import (
	"fmt"
	"os"

	"address-resolver/internal/logging"

	"github.com/spf13/cobra"
)

func main() {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "addressctl",
		Short: "Address dataset tooling",
		Long:  `Import address datasets into PostgreSQL and run fuzzy lookups from the command line`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(logLevel, "console")
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(createImportCmd())
	rootCmd.AddCommand(createResolveCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
