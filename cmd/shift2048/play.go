package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/KhushveerS/shift2048/internal/config"
	"github.com/KhushveerS/shift2048/internal/core"
	"github.com/KhushveerS/shift2048/internal/engine"
	"github.com/KhushveerS/shift2048/internal/platform/tui"
	"github.com/KhushveerS/shift2048/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD/HJKL - Move tiles
  Enter/Space      - Dismiss win banner, keep playing
  R                - Restart
  Q/Ctrl+C         - Quit

Examples:
  shift2048 play
  shift2048 play --seed 42
  shift2048 play --config ./my-config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(_ *cobra.Command, _ []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	opts := []engine.Option{
		engine.WithSpawn4Probability(gameCfg.Spawn.FourProbability),
	}
	if store != nil {
		opts = append(opts, engine.WithBestStore(store.ForGame(storage.GameID)))
	}
	game := engine.NewGame(engine.NewTable(), seed, opts...)

	runErr := tui.Run(game, store, cfg, gameCfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
