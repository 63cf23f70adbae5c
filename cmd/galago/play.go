package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/galago-arcade/galago/internal/core"
	"github.com/galago-arcade/galago/internal/games/galaga"
	"github.com/galago-arcade/galago/internal/platform/tui"
	"github.com/galago-arcade/galago/internal/registry"
	"github.com/galago-arcade/galago/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a run in the current terminal.

Controls:
  A/Left     - Move left
  D/Right    - Move right
  Space/W    - Fire
  P          - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - More lives, fewer simultaneous divers
  normal - Default balance
  hard   - Fewer lives, more aggressive dives
  fixed  - No in-run difficulty progression

Examples:
  galago play
  galago play --difficulty easy
  galago play --seed 12345
  galago play --config ./my-galaga.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, _ []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before creation
	galaga.SetConfigPath(flagConfig)
	galaga.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create("galaga")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
