package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nextpress/blocktree.go/pkg/migrate"
	"github.com/nextpress/blocktree.go/pkg/models"
)

var validateCmd = &cobra.Command{
	Use:   "validate <page.json>...",
	Short: "Check page documents against the tree invariants",
	Long: `Checks each page document for the structural invariants the editor
relies on: globally unique block ids, children only under containers,
content on every block, and zone maps that partition their container's
children exactly. Legacy documents are converted before checking.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		var failed bool
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			tree, _, err := migrate.Normalize(data)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}

			if err := models.ValidateTree(tree); err != nil {
				failed = true
				log.Error("invalid page", "file", path)
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				continue
			}
			log.Info("page is valid", "file", path, "blocks", models.Count(tree))
		}

		if failed {
			return errors.New("one or more pages failed validation")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
