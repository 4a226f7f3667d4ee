package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/nextpress/blocktree.go"
	"github.com/nextpress/blocktree.go/pkg/migrate"
	"github.com/nextpress/blocktree.go/pkg/models"
)

var replayCmd = &cobra.Command{
	Use:   "replay <page.json> <gestures.json>",
	Short: "Replay a recorded gesture log against a page document",
	Long: `Reads a page document and a JSON list of drag gestures, applies the
gestures in order through the editor and prints the resulting page.
Useful for reproducing builder sessions from a gesture log.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		pageData, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		tree, _, err := migrate.Normalize(pageData)
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		gestureData, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}
		var gestures []blocktree.Gesture
		if err := json.Unmarshal(gestureData, &gestures); err != nil {
			return fmt.Errorf("reading %s: %w", args[1], err)
		}

		editor := blocktree.NewEditor(tree, blocktree.WithLogger(log))
		applied := 0
		for i, g := range gestures {
			out := editor.ResolveDrag(g)
			if out.Applied() {
				applied++
				continue
			}
			log.Warn("gesture did not apply",
				"index", i,
				"source", g.Source.String(),
				"destination", g.Destination.String(),
				"resolution", out.Resolution.String(),
			)
		}
		log.Info("replay finished", "gestures", len(gestures), "applied", applied)

		encoded, err := models.MarshalTreeIndent(editor.Tree())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
}
