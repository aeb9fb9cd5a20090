package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a layout",
	Long: `Start playing. Without --difficulty the layout and difficulty
picker is shown first.

Controls:
  Arrows/WASD  - Move
  P/Esc        - Pause
  R            - Restart (after game over or win)
  ?            - More keys
  Q/Ctrl+C     - Quit
  Ctrl+S       - Save a screenshot to ~/.frogger/screenshots

Difficulty options:
  easy   - More lives, more time, slower traffic
  normal - Arcade rules
  hard   - Fewer lives, less time, faster traffic

Examples:
  frogger play --difficulty normal
  frogger play --layout express --difficulty hard
  frogger play --config ./my-frogger.yaml --difficulty easy`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	rt := runtimeConfig()
	layout, preset := flagLayout, flagDifficulty

	if !cmd.Flags().Changed("difficulty") {
		base, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		result, err := tui.RunMenu(base, rt)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		if result.Quit {
			return nil
		}
		rt = result.Config
		layout, preset = result.Layout, string(result.Preset)
	}

	cfg, err := loadConfig(preset)
	if err != nil {
		return err
	}
	return playSession(cfg, layout, rt, logger)
}

// playSession runs one game until the player quits, then shows the attempt
// report when at least one attempt was made.
func playSession(cfg config.FroggerConfig, layout string, rt core.RuntimeConfig, logger *log.Logger) error {
	game, err := frogger.NewGame(cfg, layout, frogger.WithLogger(logger))
	if err != nil {
		return err
	}

	state, err := tui.Run(game, rt, logger)
	if err != nil {
		return fmt.Errorf("run game: %w", err)
	}

	attempts := game.Attempts()
	logger.Info("session ended", "layout", game.Layout(), "attempts", len(attempts), "score", state.Score)
	if len(attempts) == 0 {
		return nil
	}
	if err := tui.RunReport(game.Title(), state, attempts, rt); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}
