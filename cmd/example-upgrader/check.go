package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"example-upgrader/internal/modelfile"
	"example-upgrader/internal/upgrade"
)

func newCmdCheck() *cobra.Command {
	var modelPath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Build a fresh example for every root of a model and report the ones that fail",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := modelfile.LoadFile(modelPath)
			if err != nil {
				return err
			}

			roots := upgrade.ExampleRoots(loaded.Model)
			builder := upgrade.NewBuilder(upgrade.Options{Extensions: loaded.Model, Logger: log})

			diags := builder.Check(roots)

			out := cmd.OutOrStdout()
			for _, d := range diags.Errors {
				fmt.Fprintln(out, d.String())
			}

			if diags.HasErrors() {
				return fmt.Errorf("%d of %d example roots failed: %w", len(diags.Errors), len(roots), diags.Error())
			}

			fmt.Fprintf(out, "%d example roots ok\n", len(roots))

			return nil
		},
	}
	cmd.Flags().StringVarP(&modelPath, "model", "m", "", "YAML model file")
	_ = cmd.MarkFlagRequired("model")

	return cmd
}
