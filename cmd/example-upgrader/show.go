package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"example-upgrader/internal/present"
	"example-upgrader/internal/xmltree"
)

func newCmdShow() *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE",
		Short: "Display an example document as a tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := xmltree.ParseFile(args[0])
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), present.Render(present.Build(doc.Root)))

			return nil
		},
	}
}
