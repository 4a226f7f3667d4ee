// Command blocktree works on the JSON page documents produced by the
// nextpress page builder: it migrates legacy encodings, validates structural
// invariants, prints page outlines, and replays editing gestures.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nextpress/blocktree.go/pkg/logger"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "blocktree",
	Short: "Inspect and maintain nextpress page documents",
	Long: `blocktree works on the JSON page documents produced by the nextpress
page builder.

Pages are block trees. Legacy documents may still store columns with
children nested per column; every command here reads both encodings and
works on the canonical form (flat children plus a zone map).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug details")
}

// newLogger builds the console logger shared by all subcommands.
func newLogger() logger.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	return logger.NewWithLogger(zl)
}
