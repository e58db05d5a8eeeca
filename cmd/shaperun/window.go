package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shaperun/internal/platform/window"
	"github.com/vovakirdan/shaperun/internal/registry"
	"github.com/vovakirdan/shaperun/internal/storage"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window [mode]",
	Short: "Play in a desktop window",
	Long: `Open an 800x600 game window. Requires a binary built with -tags ebiten.

Controls:
  Enter          - Start
  Space/Up/W     - Jump
  P              - Pause
  R/Enter        - Restart (after game over)
  Esc            - Quit

Examples:
  go build -tags ebiten ./cmd/shaperun
  shaperun window
  shaperun window --scale 1.5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size as a multiple of 800x600")
}

func runWindow(_ *cobra.Command, args []string) {
	logger := newLogger("shaperun")
	gameID := gameArg(args)

	game, err := registry.Create(gameID)
	if err != nil {
		logger.Error("cannot create game", "game", gameID, "error", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		store = nil
	}

	opts := window.DefaultOptions()
	opts.Title = game.Title()
	opts.Scale = flagScale
	opts.TickRate = flagFPS
	opts.Seed = flagSeed
	opts.Store = store
	opts.Logger = logger

	runErr := window.Run(game, opts)

	if store != nil {
		store.Close()
	}

	if errors.Is(runErr, window.ErrUnavailable) {
		logger.Error("window mode is not compiled in", "hint", "rebuild with -tags ebiten")
		os.Exit(1)
	}
	if runErr != nil {
		logger.Error("window closed with error", "error", runErr)
		os.Exit(1)
	}
}
