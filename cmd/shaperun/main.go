// shaperun is a side-scrolling jump game for the terminal, SSH and desktop.
//
// Usage:
//
//	shaperun list               - List game modes
//	shaperun play [mode]        - Play in the terminal
//	shaperun menu               - Pick a mode interactively
//	shaperun window [mode]      - Play in a desktop window (ebiten builds)
//	shaperun serve              - Start SSH server for remote play
//	shaperun scores [mode]      - Show high scores
//	shaperun config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.shaperun/scores.db)
//	--config <path>       - Load game settings from a YAML file
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/shaperun/internal/config"
	"github.com/vovakirdan/shaperun/internal/games/shaperun"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shaperun",
	Short: "Shape Run - jump a rotating shape over scrolling blocks",
	Long: `Shape Run is a one-button side-scroller. A rotating shape falls under
gravity while rectangles scroll in from the right. Jump over them for as
long as you can; every tick survived is a point.

Available commands:
  list     - Show the game modes
  play     - Play in the terminal
  menu     - Interactive mode picker
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  shaperun play
  shaperun play shaperun_endless --difficulty hard
  shaperun menu
  shaperun serve --ssh :2222
  shaperun scores`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: applyGlobalFlags,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.shaperun/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// applyGlobalFlags validates flags shared by every command and hands the
// game settings to the game package before any instance is created.
func applyGlobalFlags(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	shaperun.SetConfigPath(flagConfig)
	shaperun.SetDifficultyPreset(flagDifficulty)

	if flagConfig != "" {
		// Surface config errors up front; the game itself falls back to defaults.
		if _, err := shaperun.LoadConfig(); err != nil {
			return err
		}
	}
	return nil
}

// newLogger returns the command-line logger.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// gameArg returns the mode named on the command line, or the default mode.
func gameArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return shaperun.GameID
}
