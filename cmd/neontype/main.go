// neontype is a falling-words typing arcade for the terminal.
//
// Usage:
//
//	neontype play              - Pick a pack and play
//	neontype serve             - Start SSH server for remote play
//	neontype history           - Show past runs
//	neontype packs             - List word packs
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.neontype/history.db)
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neontype/internal/storage"
	_ "github.com/vovakirdan/neontype/internal/wordpacks" // Registers the built-in packs
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neontype",
	Short: "Neon Type - a falling-words typing arcade",
	Long: `Neon Type drops words down the screen. Type them before they
reach the bottom line. Completed words may drop power-ups; type their
activation word or press 1/2/3 to use them.

Available commands:
  play     - Play (pack menu, or straight into --pack)
  serve    - Start SSH server for remote play
  history  - Show past runs
  packs    - List word packs

Examples:
  neontype play
  neontype play --pack short --difficulty hard
  neontype play --words ./my-words.txt
  neontype serve --ssh :2222
  neontype history --top`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to history database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(packsCmd)
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
