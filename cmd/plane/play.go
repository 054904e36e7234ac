package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-plane/internal/config"
	"github.com/vovakirdan/flappy-plane/internal/core"
	"github.com/vovakirdan/flappy-plane/internal/plane"
	"github.com/vovakirdan/flappy-plane/internal/platform/tui"
	"github.com/vovakirdan/flappy-plane/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Flappy Plane",
	Long: `Start the game on the intro screen.

Controls:
  Space/Up/W/Mouse - Lift
  Left/Right, 1-3  - Pick difficulty (intro and game over)
  Enter            - Take off
  P/Esc            - Pause
  R                - Restart (after game over)
  B                - Back to intro (after game over)
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slow obstacles, enemies from level 4, frequent powerups
  normal - Faster obstacles, enemies from level 3
  hard   - Fast obstacles, enemies from level 2, rare powerups

Examples:
  plane play
  plane play --difficulty hard
  plane play --config ./my-plane.yaml
  plane play --seed 42 --log-file plane.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty: easy, normal, hard")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger("plane", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	opts := []plane.Option{plane.WithLogger(logger)}
	if flagDifficulty != "" {
		d, parseErr := config.ParseDifficulty(flagDifficulty)
		if parseErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", parseErr)
			os.Exit(1)
		}
		opts = append(opts, plane.WithDifficulty(d))
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		opts = append(opts, plane.WithStore(store))
	}

	// Run the game
	runErr := tui.Run(cfg, rc, opts...)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
