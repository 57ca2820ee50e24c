package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neontype/internal/core"
	"github.com/vovakirdan/neontype/internal/platform/tui"
	"github.com/vovakirdan/neontype/internal/registry"
	"github.com/vovakirdan/neontype/internal/storage"
)

var (
	flagLimit       int
	flagTop         bool
	flagHistoryPack string
	flagClear       bool
	flagBrowse      bool
)

var (
	colorTitle = color.New(color.FgMagenta, color.Bold)
	colorScore = color.New(color.FgHiCyan)
	colorDim   = color.New(color.FgHiBlack)
	colorBest  = color.New(color.FgGreen, color.Bold)
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past runs",
	Long: `Print the score history. Only runs that scored points are recorded.

Examples:
  neontype history                 # Most recent runs
  neontype history --top           # Best runs
  neontype history --pack short    # One pack only
  neontype history --browse        # Interactive table
  neontype history --clear         # Delete all records`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	historyCmd.Flags().BoolVar(&flagTop, "top", false, "Sort by score instead of date")
	historyCmd.Flags().StringVar(&flagHistoryPack, "pack", "", "Only show runs of this pack")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the whole history")
	historyCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive history view")
}

func runHistory(_ *cobra.Command, _ []string) error {
	if flagHistoryPack != "" && !registry.Exists(flagHistoryPack) {
		return fmt.Errorf("unknown pack %q, run 'neontype packs' to see available packs", flagHistoryPack)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.Clear(); err != nil {
			return fmt.Errorf("clearing history: %w", err)
		}
		color.Yellow("History cleared.")
		return nil
	}

	if flagBrowse {
		rc := runtimeConfig()
		return tui.RunHistory(store, nil, rc.ScreenW, rc.ScreenH)
	}

	records, err := loadRecords(store)
	if err != nil {
		return fmt.Errorf("retrieving history: %w", err)
	}

	title := "Recent runs"
	if flagTop {
		title = "Best runs"
	}
	if flagHistoryPack != "" {
		title += " - " + flagHistoryPack
	}
	colorTitle.Println(title)
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'neontype play' to set the first score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-10s  %-8s  %s\n", "#", "Score", "Pack", "Level", "Date")
	fmt.Printf("  %-4s  %-8s  %-10s  %-8s  %s\n", "-", "-----", "----", "-----", "----")
	for i, r := range records {
		fmt.Printf("  %-4d  %s  %-10s  %-8s  %s\n",
			i+1,
			colorScore.Sprintf("%-8d", r.Score),
			r.Pack,
			r.Difficulty,
			colorDim.Sprint(r.At.Local().Format("2006-01-02 15:04")),
		)
	}

	stats, err := store.Stats(flagHistoryPack)
	if err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d  Average: %.0f  ", stats.Runs, stats.Average)
		colorBest.Printf("Best: %d\n", stats.Best)
	}
	return nil
}

// loadRecords returns the runs to print: best first with --top, otherwise newest first.
func loadRecords(store *storage.Store) ([]storage.ScoreRecord, error) {
	limit := core.Max(flagLimit, 1)
	if flagTop {
		return store.TopScores(flagHistoryPack, limit)
	}

	all, err := store.History(0)
	if err != nil {
		return nil, err
	}
	var out []storage.ScoreRecord
	for i := len(all) - 1; i >= 0 && len(out) < limit; i-- {
		if flagHistoryPack == "" || all[i].Pack == flagHistoryPack {
			out = append(out, all[i])
		}
	}
	return out, nil
}
