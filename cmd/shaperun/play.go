package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/shaperun/internal/core"
	"github.com/vovakirdan/shaperun/internal/platform/tui"
	"github.com/vovakirdan/shaperun/internal/registry"
	"github.com/vovakirdan/shaperun/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. The mode defaults to "shaperun".

Controls:
  Enter          - Start
  Space/Up/W     - Jump
  P              - Pause
  R/Enter        - Restart (after game over)
  Ctrl+S         - Save a screenshot
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Slower obstacles with wider gaps
  normal - Default settings
  hard   - Faster obstacles, tighter spacing
  fixed  - Exactly the configured values

Examples:
  shaperun play
  shaperun play shaperun_endless
  shaperun play --difficulty hard
  shaperun play --seed 42
  shaperun play --config ./my-shaperun.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := gameArg(args)

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'shaperun list' to see available modes.")
		os.Exit(1)
	}

	cfg := terminalConfig()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	_, runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
