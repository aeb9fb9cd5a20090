// frogger is a Frogger-style arcade game for the terminal.
//
// Usage:
//
//	frogger play             - Play a layout
//	frogger menu             - Pick layout and difficulty interactively
//	frogger list             - List available layouts
//	frogger simulate         - Run the engine headless with scripted moves
//	frogger config           - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Driver tick rate (default: 30)
//	--config <path>       - Custom config YAML
//	--layout <name>       - Layout to play (default: classic)
//	--difficulty <name>   - easy, normal or hard
//	--log-file <path>     - Write logs to a file
//	--debug               - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagLayout     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "frogger",
	Short: "Frogger - cross the road and the river in your terminal",
	Long: `Frogger is a terminal remake of the arcade classic. Guide the frog
across five lanes of traffic and a river of logs and diving turtles into
the goal slots at the top, before the time runs out.

Available commands:
  play      - Play a layout directly
  menu      - Pick layout and difficulty interactively
  list      - Show all layouts
  simulate  - Run the engine without a terminal
  config    - Print the default configuration

Examples:
  frogger play
  frogger play --layout express --difficulty hard
  frogger menu
  frogger simulate --frames 600 --moves u,u,u,l
  frogger config > ~/.frogger/configs/frogger.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLayout, "layout", config.DefaultLayout, "Layout to play")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the CLI logger. Logs go to --log-file when set, else to
// fallback. The returned close function must be called when done.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "frogger",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// loadConfig loads the config and applies the preset named by name.
func loadConfig(preset string) (config.FroggerConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	p, err := config.ParsePreset(preset)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, p)
	return cfg, nil
}

// runtimeConfig reads the terminal size, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	return cfg
}
