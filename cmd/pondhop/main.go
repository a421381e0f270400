// pondhop is a terminal puzzle: hop a frog across a pond, sinking each
// lily pad behind you, until a single leaf is left.
//
// Usage:
//
//	pondhop play             - Play the campaign
//	pondhop levels           - List levels
//	pondhop progress         - Browse completion records
//	pondhop serve            - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Path to a config YAML
//	--db <path>      - Completions database path (default: ~/.pondhop/pondhop.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pondhop",
	Short: "pondhop - A frog-and-lily-pad puzzle in your terminal",
	Long: `pondhop is a terminal puzzle game. Jump your frog from leaf to leaf;
every leaf you leave behind sinks. Clear the pond down to a single leaf
to finish the level. Get stranded and the level restarts.

Available commands:
  play     - Play the campaign (or a custom level pack)
  levels   - List the levels in the catalog
  progress - Browse your completion records
  serve    - Start an SSH server for remote play

Examples:
  pondhop play
  pondhop play --level 3
  pondhop play --pack ./my-levels
  pondhop progress
  pondhop serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pondhop/pondhop.db", "Path to completions database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(serveCmd)
}
