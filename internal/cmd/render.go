// Copyright (c) 2026, Composite Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/compositekit/composite/internal/config"
	"github.com/compositekit/composite/tree"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Perform a tree, writing its output to stdout",
	Long: `Perform a tree: each leaf writes one line equal to its payload, in
depth-first insertion order, and each decorator frames its children's
output with its before and after markers.

Without -f, the built-in demonstration scene is performed: a decorator
around two composites of two leaves each.

Examples:
  # Perform the built-in demonstration scene
  composite render

  # Perform a scene described in a YAML file
  composite render -f scene.yaml`,
	RunE: runRender,
}

var renderScene string

func init() {
	renderCmd.Flags().StringVarP(&renderScene, "file", "f", "", "YAML scene file to perform instead of the built-in scene")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	root, err := sceneRoot(cfg, renderScene)
	if err != nil {
		return err
	}
	return root.Perform(cmd.OutOrStdout())
}

// sceneRoot returns the tree to operate on: the given file if any, then
// the configured default scene file, then the built-in demonstration
// scene.
func sceneRoot(cfg *config.Config, path string) (tree.Node, error) {
	if path == "" {
		path = cfg.Render.Scene
	}
	if path == "" {
		return demoScene(cfg)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading scene file %s", path)
	}
	return tree.UnmarshalYAML(b)
}

// demoScene builds the standard demonstration tree: a decorator framing
// two composites of two leaves each.
func demoScene(cfg *config.Config) (tree.Node, error) {
	p := &tree.Plan{
		Kind:   tree.KindDecorator,
		Name:   "scene",
		Before: cfg.Render.Before,
		After:  cfg.Render.After,
		Children: []*tree.Plan{
			{Kind: tree.KindComposite, Name: "first", Children: []*tree.Plan{
				{Kind: tree.KindLeaf, Text: "hello"},
				{Kind: tree.KindLeaf, Text: "world"},
			}},
			{Kind: tree.KindComposite, Name: "second", Children: []*tree.Plan{
				{Kind: tree.KindLeaf, Text: "lorem"},
				{Kind: tree.KindLeaf, Text: "ipsum"},
			}},
		},
	}
	return p.Build()
}
