package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nextpress/blocktree.go/pkg/migrate"
	"github.com/nextpress/blocktree.go/pkg/models"
)

var migrateWrite bool

var migrateCmd = &cobra.Command{
	Use:   "migrate <page.json>",
	Short: "Convert a legacy page document to the canonical encoding",
	Long: `Reads a page document, converts any legacy nested-per-column containers
into the canonical form (flat children plus a zone map) and prints the
result. With --write the file is rewritten in place when a conversion
actually happened.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		tree, changed, err := migrate.Normalize(data)
		if err != nil {
			return fmt.Errorf("converting %s: %w", args[0], err)
		}

		out, err := models.MarshalTreeIndent(tree)
		if err != nil {
			return err
		}

		if !changed {
			log.Info("already canonical", "file", args[0], "blocks", models.Count(tree))
		} else {
			log.Info("converted legacy containers", "file", args[0], "blocks", models.Count(tree))
		}

		if migrateWrite {
			if !changed {
				return nil
			}
			return os.WriteFile(args[0], append(out, '\n'), 0o644)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVarP(&migrateWrite, "write", "w", false, "rewrite the file in place when converted")
	rootCmd.AddCommand(migrateCmd)
}
