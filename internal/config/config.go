// Package config provides YAML-based configuration loading, validation and
// difficulty presets for the game.
package config

import (
	"sort"
	"time"
)

// FroggerConfig contains all configuration for the game.
type FroggerConfig struct {
	Board     BoardConfig               `yaml:"board"`
	Rules     RulesConfig               `yaml:"rules"`
	Character CharacterConfig           `yaml:"character"`
	Obstacles map[string]ObstacleConfig `yaml:"obstacles"`
	Layouts   map[string]LayoutConfig   `yaml:"layouts"`
	Render    RenderConfig              `yaml:"render"`
}

// BoardConfig defines the grid. Bounds and start position are row/column indices.
type BoardConfig struct {
	GridWidth   int `yaml:"grid_width"`
	GridHeight  int `yaml:"grid_height"`
	Rows        int `yaml:"rows"`
	Columns     int `yaml:"columns"`
	TopRow      int `yaml:"top_row"`    // highest row the character may reach
	BottomRow   int `yaml:"bottom_row"` // lowest row the character may reach
	StartRow    int `yaml:"start_row"`
	StartColumn int `yaml:"start_column"`
}

// RulesConfig defines scoring, lives and timing.
type RulesConfig struct {
	Lives          int           `yaml:"lives"`
	HighScore      int           `yaml:"high_score"` // initial high score shown on load
	TimeTotal      time.Duration `yaml:"time_total"`
	RefreshRate    time.Duration `yaml:"refresh_rate"` // engine frame interval and countdown step
	ResetDelay     time.Duration `yaml:"reset_delay"`  // pause after a lost life or a goal
	GoalBonus      int           `yaml:"goal_bonus"`
	MoveBonus      int           `yaml:"move_bonus"`
	MaxTimesAtGoal int           `yaml:"max_times_at_goal"`
	SpeedScale     float64       `yaml:"speed_scale"` // multiplier applied to every row speed
}

// AnimationConfig describes a frame sequence.
type AnimationConfig struct {
	Sequence []int         `yaml:"sequence"`
	Rate     time.Duration `yaml:"rate"`
	Loop     bool          `yaml:"loop"`
}

// CharacterConfig defines the player character.
type CharacterConfig struct {
	Width      int                        `yaml:"width"`
	Glyph      string                     `yaml:"glyph"`
	Color      string                     `yaml:"color"`
	Animations map[string]AnimationConfig `yaml:"animations"`
}

// ObstacleConfig describes an obstacle kind as data.
type ObstacleConfig struct {
	Width     int              `yaml:"width"`
	Glyph     string           `yaml:"glyph"`
	Color     string           `yaml:"color"`
	Fixed     bool             `yaml:"fixed"`     // never moves (goal slots and markers)
	Submerges bool             `yaml:"submerges"` // dives on the last frame of its animation
	Animation *AnimationConfig `yaml:"animation"`
}

// LayoutConfig is an ordered set of rows forming the hazard field.
type LayoutConfig struct {
	Description string      `yaml:"description"`
	Rows        []RowConfig `yaml:"rows"`
}

// RowConfig describes one lane.
type RowConfig struct {
	Kind      string            `yaml:"kind"` // road, log, turtle, goal
	Lane      int               `yaml:"lane"` // board row index
	Direction string            `yaml:"direction"`
	Speed     int               `yaml:"speed"` // pixels per frame
	Obstacles []PlacementConfig `yaml:"obstacles"`
}

// PlacementConfig positions one obstacle. Left (pixels) wins over Column.
type PlacementConfig struct {
	Type   string `yaml:"type"`
	Column int    `yaml:"column"`
	Left   *int   `yaml:"left"`
}

// RenderConfig controls the text renderer.
type RenderConfig struct {
	CellWidth  int    `yaml:"cell_width"` // characters per grid column
	WaterColor string `yaml:"water_color"`
	RoadColor  string `yaml:"road_color"`
	SafeColor  string `yaml:"safe_color"`
}

// Row kinds accepted in layouts.
const (
	KindRoad   = "road"
	KindLog    = "log"
	KindTurtle = "turtle"
	KindGoal   = "goal"
)

// GoalMarkerType is the obstacle kind placed on a claimed goal slot.
const GoalMarkerType = "goal_marker"

// DefaultLayout is used when no layout is requested.
const DefaultLayout = "classic"

// LayoutNames returns the configured layout names, sorted.
func (c FroggerConfig) LayoutNames() []string {
	names := make([]string, 0, len(c.Layouts))
	for name := range c.Layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Layout returns the named layout.
func (c FroggerConfig) Layout(name string) (LayoutConfig, bool) {
	l, ok := c.Layouts[name]
	return l, ok
}

// GoalSlots counts the goal obstacles of a layout.
func (l LayoutConfig) GoalSlots() int {
	n := 0
	for _, r := range l.Rows {
		if r.Kind == KindGoal {
			n += len(r.Obstacles)
		}
	}
	return n
}
