package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded config invalid: %v", err)
	}
	def := DefaultConfig()
	if cfg.Board != def.Board {
		t.Errorf("board = %+v, want %+v", cfg.Board, def.Board)
	}
	if cfg.Rules != def.Rules {
		t.Errorf("rules = %+v, want %+v", cfg.Rules, def.Rules)
	}
	if cfg.Rules.RefreshRate != 33333*time.Microsecond {
		t.Errorf("refresh = %v", cfg.Rules.RefreshRate)
	}
	classic, ok := cfg.Layout(DefaultLayout)
	if !ok {
		t.Fatal("classic layout missing")
	}
	if len(classic.Rows) != len(def.Layouts[DefaultLayout].Rows) {
		t.Errorf("classic rows = %d, want %d", len(classic.Rows), len(def.Layouts[DefaultLayout].Rows))
	}
	for i, r := range classic.Rows {
		want := def.Layouts[DefaultLayout].Rows[i]
		if r.Kind != want.Kind || r.Lane != want.Lane || r.Speed != want.Speed || len(r.Obstacles) != len(want.Obstacles) {
			t.Errorf("row %d = %+v, want %+v", i, r, want)
		}
	}
	if got := classic.GoalSlots(); got != 5 {
		t.Errorf("goal slots = %d, want 5", got)
	}
}

func TestMoveAnimationsHopThenSettle(t *testing.T) {
	embedded, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatal(err)
	}
	sources := map[string]FroggerConfig{"embedded": embedded, "hardcoded": DefaultConfig()}
	for src, cfg := range sources {
		for _, name := range []string{"move-up", "move-down", "move-left", "move-right"} {
			a, ok := cfg.Character.Animations[name]
			if !ok {
				t.Errorf("%s: %s missing", src, name)
				continue
			}
			if len(a.Sequence) != 2 || a.Sequence[0] != 1 || a.Sequence[1] != 0 {
				t.Errorf("%s: %s sequence = %v, want [1 0]", src, name, a.Sequence)
			}
			if a.Rate != 50*time.Millisecond {
				t.Errorf("%s: %s rate = %v, want 50ms", src, name, a.Rate)
			}
		}
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig invalid: %v", err)
	}
}

func TestLayoutNamesSorted(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatal(err)
	}
	got := strings.Join(cfg.LayoutNames(), ",")
	if got != "classic,express" {
		t.Errorf("LayoutNames = %s", got)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("rules:\n  lives: 3\n  time_total: 30s\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Rules.Lives != 3 || cfg.Rules.TimeTotal != 30*time.Second {
		t.Errorf("rules = %+v", cfg.Rules)
	}
	if cfg.Rules.GoalBonus != 1000 {
		t.Errorf("goal bonus not kept from defaults: %d", cfg.Rules.GoalBonus)
	}
	if _, ok := cfg.Layout(DefaultLayout); !ok {
		t.Error("default layout lost")
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"zero lives", "rules: {lives: 0}", "lives"},
		{"zero time", "rules: {time_total: 0s}", "time_total"},
		{"zero grid", "board: {grid_width: 0}", "grid size"},
		{"bad start", "board: {start_row: 1}", "start row"},
		{"unknown obstacle", `layouts: {x: {rows: [{kind: goal, lane: 2, obstacles: [{type: goal, left: 0}]}, {kind: road, lane: 9, obstacles: [{type: tank}]}]}}`, "unknown obstacle"},
		{"unknown kind", `layouts: {x: {rows: [{kind: lava, lane: 9}]}}`, "unknown kind"},
		{"vertical direction", `layouts: {x: {rows: [{kind: road, lane: 9, direction: up}]}}`, "not horizontal"},
		{"bad direction", `layouts: {x: {rows: [{kind: road, lane: 9, direction: sideways}]}}`, "unknown direction"},
		{"lane outside", `layouts: {x: {rows: [{kind: road, lane: 40}]}}`, "outside board"},
		{"duplicate lane", `layouts: {x: {rows: [{kind: goal, lane: 2, obstacles: [{type: goal, left: 0}]}, {kind: road, lane: 9}, {kind: log, lane: 9}]}}`, "duplicate lane"},
		{"no goals", `layouts: {x: {rows: [{kind: road, lane: 9}]}}`, "no goal slots"},
		{"unreachable win", "rules: {max_times_at_goal: 6}", "exceeds 5 goal slots"},
		{"win beyond custom layout", `layouts: {x: {rows: [{kind: goal, lane: 2, obstacles: [{type: goal, left: 0}, {type: goal, left: 300}]}]}}`, "exceeds 2 goal slots"},
		{"moving goal", `layouts: {x: {rows: [{kind: goal, lane: 2, obstacles: [{type: truck}]}]}}`, "moving obstacle"},
		{"bad color", "obstacles: {truck: {width: 10, color: plaid}}", "unknown color"},
		{"bad animation", "obstacles: {truck: {width: 10, animation: {sequence: [], rate: 1s}}}", "empty sequence"},
		{"submerge without animation", "obstacles: {truck: {width: 10, submerges: true}}", "submerges"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatalf("expected error containing %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestValidateLayoutMissing(t *testing.T) {
	if err := DefaultConfig().ValidateLayout("nope"); err == nil {
		t.Error("expected error for missing layout")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frogger.yaml")
	if err := os.WriteFile(path, []byte("rules:\n  lives: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Rules.Lives != 7 {
		t.Errorf("lives = %d, want 7", cfg.Rules.Lives)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected read error")
	}
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("rules: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("err = %v, want parse failure", err)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := cfg.Layout("express"); !ok {
		t.Error("embedded config not used")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
		err  bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"normal", DifficultyNormal, false},
		{"nightmare", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if (err != nil) != tt.err || got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultConfig()

	easy := DefaultConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Rules.Lives <= base.Rules.Lives || easy.Rules.TimeTotal <= base.Rules.TimeTotal || easy.Rules.SpeedScale >= 1 {
		t.Errorf("easy rules = %+v", easy.Rules)
	}

	hard := DefaultConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Rules.Lives >= base.Rules.Lives || hard.Rules.TimeTotal >= base.Rules.TimeTotal || hard.Rules.SpeedScale <= 1 {
		t.Errorf("hard rules = %+v", hard.Rules)
	}

	normal := DefaultConfig()
	ApplyPreset(&normal, DifficultyNormal)
	if normal.Rules != base.Rules {
		t.Errorf("normal changed rules: %+v", normal.Rules)
	}
}
