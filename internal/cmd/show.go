// Copyright (c) 2026, Composite Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/compositekit/composite/internal/config"
	"github.com/compositekit/composite/tree"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the structure of a tree without performing it",
	Long: `Print an indented structural listing of a tree: one line per node with
its kind, name, and payload. Use --color (or show.color in the config
file) for styled output.`,
	RunE: runShow,
}

var (
	showScene string
	showColor bool
)

func init() {
	showCmd.Flags().StringVarP(&showScene, "file", "f", "", "YAML scene file to show instead of the built-in scene")
	showCmd.Flags().BoolVar(&showColor, "color", false, "style the listing")
	rootCmd.AddCommand(showCmd)
}

var (
	kindStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	payloadStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	root, err := sceneRoot(cfg, showScene)
	if err != nil {
		return err
	}
	styled := showColor || cfg.Show.Color
	return showNode(cmd.OutOrStdout(), root, 0, styled)
}

func showNode(w io.Writer, n tree.Node, depth int, styled bool) error {
	kind, payload := nodeLabel(n)
	if styled {
		kind = kindStyle.Render(kind)
		if payload != "" {
			payload = payloadStyle.Render(payload)
		}
	}
	line := strings.Repeat("  ", depth) + kind
	if name := n.AsTree().Name; name != "" {
		line += " " + name
	}
	if payload != "" {
		line += " " + payload
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}
	c, ok := n.(tree.Container)
	if !ok {
		return nil
	}
	for child := range c.ChildNodes() {
		if err := showNode(w, child, depth+1, styled); err != nil {
			return err
		}
	}
	return nil
}

// nodeLabel returns the kind label and payload description for a node.
func nodeLabel(n tree.Node) (kind, payload string) {
	if t := n.AsTree().This; t != nil {
		n = t
	}
	switch nt := n.(type) {
	case *tree.Leaf:
		return tree.KindLeaf, fmt.Sprintf("%q", nt.Text)
	case *tree.Decorator:
		return tree.KindDecorator, fmt.Sprintf("%q %q", nt.Before, nt.After)
	case *tree.Composite:
		return tree.KindComposite, ""
	default:
		return fmt.Sprintf("%T", n), ""
	}
}
