package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nextpress/blocktree.go/pkg/migrate"
	"github.com/nextpress/blocktree.go/pkg/models"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <page.json>",
	Short: "Print a page document as an indented outline",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		tree, _, err := migrate.Normalize(data)
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		out := cmd.OutOrStdout()
		for _, b := range tree {
			printOutline(out, b, 0)
		}
		fmt.Fprintf(out, "%d blocks\n", models.Count(tree))
		return nil
	},
}

func printOutline(w io.Writer, b *models.Block, depth int) {
	indent := strings.Repeat("  ", depth)
	label := b.Label
	if label == "" {
		label = b.Name
	}
	fmt.Fprintf(w, "%s%s [%s] id=%s\n", indent, label, b.Content.Kind(), b.ID)

	zones := b.Settings.Zones()
	if zones == nil {
		for _, child := range b.Children {
			printOutline(w, child, depth+1)
		}
		return
	}

	// Multi-zone containers print zone by zone, the way the builder lays
	// them out, rather than in flat children order.
	byID := make(map[models.BlockID]*models.Block, len(b.Children))
	for _, child := range b.Children {
		byID[child.ID] = child
	}
	for _, z := range zones {
		fmt.Fprintf(w, "%s  zone %s (%s)\n", indent, z.ID, z.Width)
		for _, member := range z.Members {
			if child, ok := byID[member]; ok {
				printOutline(w, child, depth+2)
			}
		}
	}
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
