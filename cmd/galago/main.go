// galago is a terminal remake of the classic fixed-shooter arcade game.
//
// Usage:
//
//	galago play              - Play in the current terminal
//	galago serve             - Start SSH server for remote play
//	galago scores            - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.galago/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/galago-arcade/galago/internal/games/galaga"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "galago",
	Short: "Galago - a formation shooter in your terminal",
	Long: `Galago is a terminal remake of the classic fixed-shooter arcade game:
hold the line at the bottom of the screen while waves of enemies swoop
in, dock into formation, and peel off to dive at your ship.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  galago play
  galago play --difficulty hard
  galago serve --ssh :2222
  galago scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.galago/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
