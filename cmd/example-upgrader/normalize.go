package main

import (
	"github.com/spf13/cobra"

	"example-upgrader/internal/modelfile"
)

func newCmdNormalize() *cobra.Command {
	var modelPath, outPath string

	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Resolve a model file and write it back with defaults filled in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := modelfile.LoadFile(modelPath)
			if err != nil {
				return err
			}

			if outPath != "" {
				return modelfile.WriteFile(loaded.File, outPath)
			}

			data, err := modelfile.Marshal(loaded.File)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
	cmd.Flags().StringVarP(&modelPath, "model", "m", "", "YAML model file")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default stdout)")
	_ = cmd.MarkFlagRequired("model")

	return cmd
}
