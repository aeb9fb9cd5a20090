package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick layout and difficulty, then play",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select. Pick a layout first,
then a difficulty. After a game ends you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Esc/B        - Back to layouts
  Q            - Quit

Examples:
  frogger menu
  frogger menu --fps 60
  frogger menu --log-file ./frogger.log`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	base, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	rt := runtimeConfig()

	for {
		result, err := tui.RunMenu(base, rt)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		rt = result.Config

		if result.Quit {
			return nil
		}

		cfg, err := loadConfig(string(result.Preset))
		if err != nil {
			return err
		}
		if err := playSession(cfg, result.Layout, rt, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		// Loop back to menu
	}
}
