// Package main provides the CLI entrypoint for example-upgrader.
//
// example-upgrader regenerates example documents for a versioned
// business-object model:
//   - upgrade: build a new example reusing a previously generated one
//   - show: display an existing example as a tree
//   - inspect: print the facet hierarchy of a model entity
//   - check: build a fresh example for every root of a model
//   - normalize: write a model file back with defaults filled in
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	log     = logrus.New()
	verbose bool
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "example-upgrader",
		Short:         "Upgrade example documents to a new model version",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			log.SetOutput(os.Stderr)

			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		newCmdUpgrade(),
		newCmdShow(),
		newCmdInspect(),
		newCmdCheck(),
		newCmdNormalize(),
	)

	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
