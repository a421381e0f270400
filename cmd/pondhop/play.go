package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pondhop/pondhop/internal/config"
	"github.com/pondhop/pondhop/internal/game"
	"github.com/pondhop/pondhop/internal/levels"
	"github.com/pondhop/pondhop/internal/platform/tui"
	"github.com/pondhop/pondhop/internal/storage"
)

var (
	flagLevel int
	flagPack  string
	flagPick  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing from the first level, a chosen level, or the picker.

Controls:
  Arrows/wasd       - Hop one leaf
  Shift+arrows      - Leap two cells (over a gap or a sunken leaf)
  Mouse click       - Jump to a highlighted leaf
  Enter/Space       - Continue after clearing a pond or getting stuck
  R                 - Restart the level
  Q/Ctrl+C          - Quit

Examples:
  pondhop play
  pondhop play --level 3
  pondhop play --pick
  pondhop play --pack ./my-levels`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Starting level (1-based, 0 = first)")
	playCmd.Flags().StringVar(&flagPack, "pack", "", "Directory of custom YAML levels")
	playCmd.Flags().BoolVar(&flagPick, "pick", false, "Choose the starting level interactively")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	catalog, err := loadCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open completions database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	startLevel := flagLevel - 1
	if flagPick {
		picked, pickErr := tui.RunLevelPicker(catalog.Names(), store, width, height)
		if pickErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", pickErr)
			os.Exit(1)
		}
		if picked < 0 {
			return
		}
		startLevel = picked
	}

	engine := game.NewEngine(catalog, cfg.Rules.LeapDistance)
	if err := tui.Run(engine, startLevel, store, cfg.Theme, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// loadCatalog returns the custom pack if one was requested, otherwise the
// built-in campaign.
func loadCatalog() (*levels.Catalog, error) {
	if flagPack != "" {
		return levels.NewLoader(flagPack).LoadAll()
	}
	return levels.Builtin(), nil
}
