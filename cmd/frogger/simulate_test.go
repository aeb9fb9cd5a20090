package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
)

func TestParseMoves(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		want    []core.Direction
		wantErr bool
	}{
		{"empty", "", nil, false},
		{"blank", "   ", nil, false},
		{"short names", "u,d,l,r", []core.Direction{core.DirUp, core.DirDown, core.DirLeft, core.DirRight}, false},
		{"long names and spaces", "up, left ,RIGHT", []core.Direction{core.DirUp, core.DirLeft, core.DirRight}, false},
		{"unknown", "u,x", nil, true},
		{"empty item", "u,,d", nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseMoves(tc.script)
			if (err != nil) != tc.wantErr {
				t.Fatalf("parseMoves(%q) error = %v, wantErr %v", tc.script, err, tc.wantErr)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("parseMoves(%q) = %v, expected %v", tc.script, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("move %d = %v, expected %v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestSimulateTracesEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	res, err := simulate(config.DefaultConfig(), "", simOptions{
		Frames: 10,
		Every:  1,
		Moves:  []core.Direction{core.DirDown},
	}, logger)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}

	if res.Snapshot.Frame != 10 {
		t.Errorf("frames = %d, expected 10", res.Snapshot.Frame)
	}
	// One clamped move at the start row still scores.
	if res.Snapshot.Score != 20 {
		t.Errorf("score = %d, expected 20", res.Snapshot.Score)
	}
	out := buf.String()
	for _, topic := range []string{"game-load", "game-board-initialize", "player-moved"} {
		if !strings.Contains(out, topic) {
			t.Errorf("trace missing %s:\n%s", topic, out)
		}
	}
	if res.Screen == nil || res.Screen.Width() == 0 {
		t.Error("expected a rendered frame")
	}
}

func TestSimulateStopsOnEnd(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Rules.Lives = 1

	res, err := simulate(cfg, "", simOptions{
		Frames:    10000,
		StopOnEnd: true,
	}, log.New(io.Discard))
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}

	if res.Snapshot.Phase != frogger.PhaseGameOver {
		t.Fatalf("phase = %v, expected game over", res.Snapshot.Phase)
	}
	if res.Snapshot.Frame >= 10000 {
		t.Error("simulation did not stop at game over")
	}
	if len(res.Attempts) != 1 || res.Attempts[0].Outcome != "timeout" {
		t.Errorf("attempts = %+v, expected one timeout", res.Attempts)
	}
}

func TestSimulateUnknownLayout(t *testing.T) {
	_, err := simulate(config.DefaultConfig(), "nope", simOptions{Frames: 1}, log.New(io.Discard))
	if err == nil {
		t.Fatal("expected error for unknown layout")
	}
}

func TestPrintSnapshot(t *testing.T) {
	var buf bytes.Buffer
	printSnapshot(&buf, simResult{
		Snapshot: frogger.Snapshot{Layout: "classic", GoalsMet: []bool{true, false}, TimesAtGoal: 1},
		Attempts: []frogger.Attempt{{Number: 1, Outcome: "goal", Score: 1000}},
	})
	out := buf.String()
	for _, want := range []string{"layout:         classic", "goals:          @. (1)", "#1   goal"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
