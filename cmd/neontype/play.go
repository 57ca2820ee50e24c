package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neontype/internal/config"
	"github.com/vovakirdan/neontype/internal/core"
	"github.com/vovakirdan/neontype/internal/platform/tui"
	"github.com/vovakirdan/neontype/internal/registry"
	"github.com/vovakirdan/neontype/internal/storage"
	"github.com/vovakirdan/neontype/internal/wordpacks"
)

// logPath is where play mode logs; the terminal belongs to the game.
const logPath = "~/.neontype/neontype.log"

var (
	flagConfig     string
	flagDifficulty string
	flagPack       string
	flagWords      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Neon Type",
	Long: `Start a game. Without --pack or --words a menu lets you pick the
word pack and difficulty.

Controls:
  Letters    - Type the falling word
  1/2/3      - Use Time Warp / Score Surge / System Shock
  Ctrl+R     - Restart
  Esc        - Back to menu
  Tab        - History (title and game over screens)
  Ctrl+C     - Quit

Difficulty options:
  easy   - Slower start, gentle ramp
  normal - Config as written
  hard   - Faster start, steeper ramp
  fixed  - No progression, stays at the initial speed

Examples:
  neontype play
  neontype play --pack long --difficulty hard
  neontype play --words ./words.txt
  neontype play --config ./my-neontype.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagPack, "pack", "", "Word pack ID (see 'neontype packs')")
	playCmd.Flags().StringVar(&flagWords, "words", "", "Custom word list file, one word per line")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	opts := tui.SessionOptions{
		Config:     cfg,
		Difficulty: preset,
		Runtime:    runtimeConfig(),
	}

	if flagPack != "" || flagWords != "" {
		if flagPack != "" && !registry.Exists(flagPack) {
			return fmt.Errorf("unknown pack %q, run 'neontype packs' to see available packs", flagPack)
		}
		pack, err := wordpacks.Resolve(flagPack, flagWords)
		if err != nil {
			return err
		}
		opts.Pack = &pack
		if flagWords != "" {
			opts.Extra = []registry.Pack{pack}
		}
	}

	logger, closeLog := openPlayLog()
	defer closeLog()
	opts.Logger = logger

	// The game still works without a history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		logger.Warn("history disabled", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("session start", "difficulty", preset, "pack", flagPack, "seed", flagSeed)
	if err := tui.Run(store, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// runtimeConfig reads the terminal size, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = flagFPS
	rc.Seed = flagSeed
	return rc
}

// openPlayLog opens the play-mode log file. Logging is dropped if it cannot be opened.
func openPlayLog() (*log.Logger, func()) {
	path := expandHome(logPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "neontype",
	})
	return logger, func() { f.Close() }
}
