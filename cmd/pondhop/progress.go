package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pondhop/pondhop/internal/levels"
	"github.com/pondhop/pondhop/internal/platform/tui"
	"github.com/pondhop/pondhop/internal/storage"
)

var flagPlain bool

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Browse completion records",
	Long: `Shows which levels you have cleared and your best runs.

By default this opens an interactive board; --plain prints the most
recent completions instead.

Examples:
  pondhop progress
  pondhop progress --plain`,
	Run: runProgress,
}

func init() {
	progressCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print records instead of the interactive board")
}

func runProgress(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening completions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	catalog := levels.Builtin()

	if flagPlain {
		printProgress(store, catalog)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunProgressBoard(catalog.Names(), store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printProgress(store *storage.Store, catalog *levels.Catalog) {
	entries, err := store.Completions(20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving completions: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No completions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pondhop play' to clear your first pond!")
		return
	}

	fmt.Println("Recent completions:")
	fmt.Println()
	fmt.Printf("  %-5s  %-20s  %-6s  %s\n", "Level", "Name", "Moves", "Date")
	fmt.Printf("  %-5s  %-20s  %-6s  %s\n", "-----", "----", "-----", "----")
	for _, e := range entries {
		fmt.Printf("  %-5d  %-20s  %-6d  %s\n",
			e.Level+1, e.LevelName, e.Moves, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	for i := 0; i < catalog.Len(); i++ {
		if best, err := store.BestMoves(i); err == nil && best > 0 {
			fmt.Printf("Best for level %d (%s): %d moves\n", i+1, catalog.At(i).Name, best)
		}
	}
}
