// shift2048 is a terminal 2048 puzzle with persistent high scores.
//
// Usage:
//
//	shift2048 play            - Play in the current terminal
//	shift2048 scores          - Show high scores
//	shift2048 serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.shift2048/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
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
	Use:   "shift2048",
	Short: "2048 - Merge tiles in your terminal",
	Long: `shift2048 is a terminal rendition of the 2048 sliding-tile puzzle.

Slide tiles with the arrow keys. Tiles with equal values merge when
they collide, doubling their value and adding it to your score. Reach
the 2048 tile to win, or keep going for a higher score.

Available commands:
  play     - Play in the current terminal
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  shift2048 play
  shift2048 play --seed 42
  shift2048 scores
  shift2048 serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.shift2048/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
