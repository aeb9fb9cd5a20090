package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/frogger.yaml
var defaultFroggerYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFroggerYAML
}

// DefaultConfig returns the hard-coded configuration with the classic layout only.
func DefaultConfig() FroggerConfig {
	return FroggerConfig{
		Board: BoardConfig{
			GridWidth:   80,
			GridHeight:  80,
			Rows:        16,
			Columns:     11,
			TopRow:      2,
			BottomRow:   14,
			StartRow:    14,
			StartColumn: 6,
		},
		Rules: RulesConfig{
			Lives:          5,
			HighScore:      1000,
			TimeTotal:      60 * time.Second,
			RefreshRate:    33333 * time.Microsecond,
			ResetDelay:     2 * time.Second,
			GoalBonus:      1000,
			MoveBonus:      20,
			MaxTimesAtGoal: 5,
			SpeedScale:     1,
		},
		Character: CharacterConfig{
			Width: 80,
			Glyph: "@",
			Color: "green",
			Animations: map[string]AnimationConfig{
				"lose-life":  {Sequence: []int{0, 1, 2}, Rate: 350 * time.Millisecond},
				"move-up":    {Sequence: []int{1, 0}, Rate: 50 * time.Millisecond},
				"move-down":  {Sequence: []int{1, 0}, Rate: 50 * time.Millisecond},
				"move-left":  {Sequence: []int{1, 0}, Rate: 50 * time.Millisecond},
				"move-right": {Sequence: []int{1, 0}, Rate: 50 * time.Millisecond},
			},
		},
		Obstacles: map[string]ObstacleConfig{
			"race_car":       {Width: 80, Glyph: "<", Color: "magenta"},
			"bulldozer":      {Width: 80, Glyph: "#", Color: "yellow"},
			"road_car":       {Width: 80, Glyph: "o", Color: "white"},
			"turbo_race_car": {Width: 80, Glyph: ">", Color: "red"},
			"truck":          {Width: 122, Glyph: "=", Color: "white"},
			"short_log":      {Width: 190, Glyph: "~", Color: "brown"},
			"medium_log":     {Width: 254, Glyph: "~", Color: "brown"},
			"long_log":       {Width: 392, Glyph: "~", Color: "brown"},
			"two_turtles": {
				Width: 130, Glyph: "O", Color: "red", Submerges: true,
				Animation: &AnimationConfig{
					Sequence: []int{0, 1, 2, 3, 3, 2, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
					Rate:     200 * time.Millisecond,
					Loop:     true,
				},
			},
			"three_turtles": {
				Width: 200, Glyph: "O", Color: "red", Submerges: true,
				Animation: &AnimationConfig{
					Sequence: []int{0, 1, 2, 3, 3, 3, 2, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
					Rate:     300 * time.Millisecond,
					Loop:     true,
				},
			},
			"goal":         {Width: 78, Glyph: " ", Color: "green", Fixed: true},
			GoalMarkerType: {Width: 78, Glyph: "@", Color: "bright_green", Fixed: true},
		},
		Layouts: map[string]LayoutConfig{
			DefaultLayout: classicLayout(),
		},
		Render: RenderConfig{
			CellWidth:  6,
			WaterColor: "blue",
			RoadColor:  "gray",
			SafeColor:  "magenta",
		},
	}
}

func classicLayout() LayoutConfig {
	goal := func(left int) PlacementConfig {
		return PlacementConfig{Type: "goal", Left: &left}
	}
	at := func(kind string, cols ...int) []PlacementConfig {
		out := make([]PlacementConfig, 0, len(cols))
		for _, c := range cols {
			out = append(out, PlacementConfig{Type: kind, Column: c})
		}
		return out
	}
	return LayoutConfig{
		Description: "the arcade field: five lanes of traffic, five of river",
		Rows: []RowConfig{
			{Kind: KindGoal, Lane: 2, Obstacles: []PlacementConfig{goal(33), goal(237), goal(441), goal(645), goal(849)}},
			{Kind: KindLog, Lane: 3, Direction: "right", Speed: 5, Obstacles: at("medium_log", 1, 6, 10)},
			{Kind: KindTurtle, Lane: 4, Direction: "left", Speed: 6, Obstacles: at("two_turtles", 0, 3, 6, 9)},
			{Kind: KindLog, Lane: 5, Direction: "right", Speed: 7, Obstacles: at("long_log", 1, 10)},
			{Kind: KindLog, Lane: 6, Direction: "right", Speed: 3, Obstacles: at("short_log", 1, 6, 10)},
			{Kind: KindTurtle, Lane: 7, Direction: "left", Speed: 5, Obstacles: at("three_turtles", 0, 3, 7, 10)},
			{Kind: KindRoad, Lane: 9, Direction: "left", Speed: 3, Obstacles: at("truck", 1, 7)},
			{Kind: KindRoad, Lane: 10, Direction: "right", Speed: 12, Obstacles: at("turbo_race_car", 1, 7)},
			{Kind: KindRoad, Lane: 11, Direction: "left", Speed: 4, Obstacles: at("road_car", 1, 7)},
			{Kind: KindRoad, Lane: 12, Direction: "right", Speed: 3, Obstacles: at("bulldozer", 1, 7)},
			{Kind: KindRoad, Lane: 13, Direction: "left", Speed: 4, Obstacles: at("race_car", 2, 6)},
		},
	}
}
