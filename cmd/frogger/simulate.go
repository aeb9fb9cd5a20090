package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/event"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
)

var (
	flagFrames    int
	flagMoves     string
	flagEvery     int
	flagRender    bool
	flagStopOnEnd bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the engine headless with scripted moves",
	Long: `Runs the engine without a terminal for a number of frames. Moves are
given as a comma-separated list of u, d, l and r; one move is applied every
--every frames. Every bus event is logged to stderr (per-frame events at
debug level) and the final snapshot is printed to stdout.

Examples:
  frogger simulate --frames 300
  frogger simulate --moves u,u,u,u,u --every 10 --debug
  frogger simulate --layout express --difficulty hard --render`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 600, "Number of frames to run")
	simulateCmd.Flags().StringVar(&flagMoves, "moves", "", "Scripted moves, e.g. u,u,l,r")
	simulateCmd.Flags().IntVar(&flagEvery, "every", 15, "Frames between scripted moves")
	simulateCmd.Flags().BoolVar(&flagRender, "render", false, "Print the final frame")
	simulateCmd.Flags().BoolVar(&flagStopOnEnd, "stop-on-end", true, "Stop when the game is over or won")
}

// simOptions configures a headless run.
type simOptions struct {
	Frames    int
	Every     int
	Moves     []core.Direction
	StopOnEnd bool
}

// simResult is the outcome of a headless run.
type simResult struct {
	Snapshot frogger.Snapshot
	Attempts []frogger.Attempt
	Screen   *core.Screen
}

func runSimulate(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	moves, err := parseMoves(flagMoves)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flagDifficulty)
	if err != nil {
		return err
	}

	res, err := simulate(cfg, flagLayout, simOptions{
		Frames:    flagFrames,
		Every:     flagEvery,
		Moves:     moves,
		StopOnEnd: flagStopOnEnd,
	}, logger)
	if err != nil {
		return err
	}

	printSnapshot(os.Stdout, res)
	if flagRender {
		fmt.Println()
		fmt.Println(res.Screen.String())
	}
	return nil
}

// simulate runs the engine frame by frame, tracing every event to logger.
func simulate(cfg config.FroggerConfig, layout string, opts simOptions, logger *log.Logger) (simResult, error) {
	bus := event.NewBus()
	bus.SubscribeAll(traceEvents(logger))

	e, err := frogger.New(cfg, layout, frogger.WithBus(bus), frogger.WithLogger(logger))
	if err != nil {
		return simResult{}, err
	}
	renderer := frogger.NewRenderer(e.Bus(), e.Board(), e.Character(), cfg)
	attempts := frogger.NewAttemptLog(e.Bus(), e.State())
	e.Load()

	next := 0
	for f := 0; f < opts.Frames; f++ {
		if opts.Every > 0 && f%opts.Every == 0 && next < len(opts.Moves) {
			e.Move(opts.Moves[next])
			next++
		}
		e.Frame()
		if opts.StopOnEnd && e.Phase().Terminal() {
			logger.Info("simulation ended early", "frame", e.Frames(), "phase", e.Phase())
			break
		}
	}

	return simResult{
		Snapshot: e.Snapshot(),
		Attempts: attempts.Attempts(),
		Screen:   renderer.Frame(),
	}, nil
}

// traceEvents logs every event. Events published once per frame go to the
// debug level so a default run stays readable.
func traceEvents(logger *log.Logger) event.Handler {
	return func(ev event.Event) {
		switch ev.Topic() {
		case event.TopicRenderObstacles, event.TopicRenderCharacter,
			event.TopicCheckCollisions, event.TopicTimeRemainingChanged:
			logger.Debug("event", "topic", ev.Topic(), "payload", fmt.Sprintf("%+v", ev))
		default:
			logger.Info("event", "topic", ev.Topic(), "payload", fmt.Sprintf("%+v", ev))
		}
	}
}

// parseMoves parses a comma-separated move script.
func parseMoves(script string) ([]core.Direction, error) {
	script = strings.TrimSpace(script)
	if script == "" {
		return nil, nil
	}
	parts := strings.Split(script, ",")
	moves := make([]core.Direction, 0, len(parts))
	for i, p := range parts {
		dir, err := core.ParseDirection(p)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, dir)
	}
	return moves, nil
}

func printSnapshot(w io.Writer, res simResult) {
	s := res.Snapshot
	goals := make([]string, len(s.GoalsMet))
	for i, met := range s.GoalsMet {
		goals[i] = "."
		if met {
			goals[i] = "@"
		}
	}

	fmt.Fprintf(w, "layout:         %s\n", s.Layout)
	fmt.Fprintf(w, "frames:         %d\n", s.Frame)
	fmt.Fprintf(w, "phase:          %s\n", s.Phase)
	fmt.Fprintf(w, "score:          %d\n", s.Score)
	fmt.Fprintf(w, "high score:     %d\n", s.HighScore)
	fmt.Fprintf(w, "lives:          %d\n", s.Lives)
	fmt.Fprintf(w, "goals:          %s (%d)\n", strings.Join(goals, ""), s.TimesAtGoal)
	fmt.Fprintf(w, "time remaining: %s (%.0f%%)\n", s.TimeRemaining, s.TimeFraction*100)
	fmt.Fprintf(w, "character:      row %d, left %d\n", s.CharacterRow, s.CharacterLeft)
	fmt.Fprintf(w, "frozen:         %t\n", s.Frozen)
	fmt.Fprintf(w, "reset pending:  %t\n", s.ResetPending)
	fmt.Fprintf(w, "attempts:       %d\n", len(res.Attempts))
	for _, a := range res.Attempts {
		fmt.Fprintf(w, "  #%-3d %-8s score %-6d %.1fs\n", a.Number, a.Outcome, a.Score, a.TimeUsed.Seconds())
	}
}
