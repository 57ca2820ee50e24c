package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neontype/internal/registry"
	"github.com/vovakirdan/neontype/internal/wordpacks"
)

var packsCmd = &cobra.Command{
	Use:   "packs",
	Short: "List all word packs",
	Long:  `Shows the built-in word packs. Custom lists are played with --words.`,
	Args:  cobra.NoArgs,
	Run:   runPacks,
}

func runPacks(_ *cobra.Command, _ []string) {
	packs := registry.List()

	if len(packs) == 0 {
		fmt.Println("No packs available.")
		return
	}

	colorTitle.Println("Available packs:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range packs {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	id := color.New(color.FgHiCyan)
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Words", "Title")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "-----", "-----")
	for _, p := range packs {
		marker := ""
		if p.ID == wordpacks.DefaultPack {
			marker = colorDim.Sprint(" (default)")
		}
		fmt.Printf("  %s  %-6d  %s%s\n", id.Sprintf("%-*s", maxIDLen, p.ID), p.Size, p.Title, marker)
	}

	fmt.Println()
	fmt.Println("Run 'neontype play --pack <id>' to play a pack.")
}
