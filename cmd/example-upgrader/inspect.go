package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"example-upgrader/internal/hierarchy"
	"example-upgrader/internal/model"
	"example-upgrader/internal/modelfile"
)

func newCmdInspect() *cobra.Command {
	var modelPath string

	cmd := &cobra.Command{
		Use:   "inspect REF",
		Short: "Print the facet hierarchy and extension points of a model entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := modelfile.LoadFile(modelPath)
			if err != nil {
				return err
			}

			root, err := loaded.Root(args[0], hierarchy.PreferredFacet)
			if err != nil {
				return err
			}

			facet, ok := root.(*model.Facet)
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", model.Describe(root))
				return nil
			}

			levels, err := hierarchy.FacetHierarchy(facet)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "owner %s (%s)\n", model.QualifiedName(facet.Owner), facet.Owner.Kind)

			for _, level := range levels {
				fmt.Fprintf(out, "%s %s (%d attributes, %d indicators, %d elements)\n",
					model.QualifiedName(level), level.Key(),
					len(level.Attributes), len(level.Indicators), len(level.Elements))

				for _, ep := range loaded.Model.ExtensionPointsFor(level) {
					fmt.Fprintf(out, "  extension point %s\n", model.QualifiedName(ep))
				}
			}

			super, err := hierarchy.SuperFacet(facet)
			if err != nil {
				return err
			}

			if super != nil {
				fmt.Fprintf(out, "super facet: %s\n", model.QualifiedName(super))
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&modelPath, "model", "m", "", "YAML model file")
	_ = cmd.MarkFlagRequired("model")

	return cmd
}
