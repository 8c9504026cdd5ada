package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/shape"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List all shape kinds",
	Long:  `Shows every shape kind a maze can be carved into.`,
	Run:   runKinds,
}

func runKinds(_ *cobra.Command, _ []string) {
	kinds := registry.List()

	if len(kinds) == 0 {
		fmt.Println("No shape kinds available.")
		return
	}

	fmt.Println("Available shape kinds:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, k := range kinds {
		if len(k.ID) > maxIDLen {
			maxIDLen = len(k.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, k := range kinds {
		fmt.Printf("  %-*s  %s\n", maxIDLen, k.ID, k.Title)
	}

	fmt.Println()
	fmt.Printf("Run 'maze generate --kind <id>' to use one (default: random, e.g. %s).\n", shape.KindBlob)
}
