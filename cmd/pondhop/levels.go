package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels in the catalog",
	Long: `Shows every level in the built-in campaign, or in a custom pack
when --pack is given.`,
	Run: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagPack, "pack", "", "Directory of custom YAML levels")
}

func runLevels(cmd *cobra.Command, args []string) {
	catalog, err := loadCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Levels:")
	fmt.Println()

	for i := 0; i < catalog.Len(); i++ {
		level := catalog.At(i)
		leaves := 0
		for _, row := range level.Rows {
			for _, hasLeaf := range row {
				if hasLeaf {
					leaves++
				}
			}
		}
		fmt.Printf("  %2d  %-20s %2dx%-2d  %d leaves\n",
			i+1, level.Name, level.Width(), level.Height(), leaves)
	}

	fmt.Println()
	fmt.Println("Run 'pondhop play --level <n>' to start at a specific level.")
}
