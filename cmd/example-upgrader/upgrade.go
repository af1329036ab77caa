package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"example-upgrader/internal/hierarchy"
	"example-upgrader/internal/modelfile"
	"example-upgrader/internal/navigate"
	"example-upgrader/internal/upgrade"
	"example-upgrader/internal/xmltree"
)

type upgradeParams struct {
	modelPath          string
	root               string
	legacyPath         string
	outPath            string
	reportPath         string
	maxRepeat          int
	matchUnmatchedRoot bool
	tree               bool
}

func newCmdUpgrade() *cobra.Command {
	var params upgradeParams

	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Build a new example, reusing content from a legacy example",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpgrade(cmd, &params)
		},
	}
	cmd.Flags().StringVarP(&params.modelPath, "model", "m", "", "YAML model file")
	cmd.Flags().StringVarP(&params.root, "root", "r", "", "Root entity reference, e.g. ord:Order#summary")
	cmd.Flags().StringVarP(&params.legacyPath, "legacy", "l", "", "Previously generated example (optional)")
	cmd.Flags().StringVarP(&params.outPath, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&params.reportPath, "report", "", "Write a YAML upgrade report to this file")
	cmd.Flags().IntVar(&params.maxRepeat, "max-repeat", navigate.DefaultMaxRepeat, "Maximum occurrences of repeating elements")
	cmd.Flags().BoolVar(&params.matchUnmatchedRoot, "match-unmatched-root", false,
		"Match members against the legacy root's children even when the root does not match")
	cmd.Flags().BoolVar(&params.tree, "tree", false, "Print the annotated upgrade tree to stderr")

	_ = cmd.MarkFlagRequired("model")
	_ = cmd.MarkFlagRequired("root")

	return cmd
}

func runUpgrade(cmd *cobra.Command, params *upgradeParams) error {
	loaded, err := modelfile.LoadFile(params.modelPath)
	if err != nil {
		return err
	}

	root, err := loaded.Root(params.root, hierarchy.PreferredFacet)
	if err != nil {
		return fmt.Errorf("invalid root %s: %w", params.root, err)
	}

	var legacy *xmltree.Element

	if params.legacyPath != "" {
		doc, err := xmltree.ParseFile(params.legacyPath)
		if err != nil {
			return err
		}

		legacy = doc.Root
	}

	builder := upgrade.NewBuilder(upgrade.Options{
		Extensions:         loaded.Model,
		Logger:             log,
		MaxRepeat:          params.maxRepeat,
		MatchUnmatchedRoot: params.matchUnmatchedRoot,
	})

	result, err := builder.Build(root, legacy)
	if err != nil {
		return err
	}

	if params.tree {
		fmt.Fprint(cmd.ErrOrStderr(), result.Root.Tree())
	}

	if err := writeDocument(cmd, params.outPath, result.Document); err != nil {
		return err
	}

	if params.reportPath == "" {
		return nil
	}

	data, err := upgrade.NewReport(result).YAML()
	if err != nil {
		return err
	}

	if err := os.WriteFile(params.reportPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", params.reportPath, err)
	}

	return nil
}

func writeDocument(cmd *cobra.Command, path string, doc *xmltree.Document) error {
	if path == "" {
		return xmltree.Write(cmd.OutOrStdout(), doc)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := xmltree.Write(f, doc); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
