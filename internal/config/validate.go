package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Validate checks the configuration for values the engine cannot run with.
func (c FroggerConfig) Validate() error {
	if err := c.Board.validate(); err != nil {
		return fmt.Errorf("board: %w", err)
	}
	if err := c.Rules.validate(); err != nil {
		return fmt.Errorf("rules: %w", err)
	}
	if c.Character.Width <= 0 {
		return errors.New("character: width must be positive")
	}
	for name, a := range c.Character.Animations {
		if err := a.validate(); err != nil {
			return fmt.Errorf("character animation %s: %w", name, err)
		}
	}
	for name, o := range c.Obstacles {
		if err := o.validate(); err != nil {
			return fmt.Errorf("obstacle %s: %w", name, err)
		}
	}
	if _, ok := c.Obstacles[GoalMarkerType]; !ok {
		return fmt.Errorf("obstacle %s: missing", GoalMarkerType)
	}
	if len(c.Layouts) == 0 {
		return errors.New("no layouts defined")
	}
	for _, name := range c.LayoutNames() {
		if err := c.ValidateLayout(name); err != nil {
			return err
		}
	}
	if c.Render.CellWidth <= 0 {
		return errors.New("render: cell_width must be positive")
	}
	return nil
}

// ValidateLayout checks one layout against the board and obstacle kinds.
func (c FroggerConfig) ValidateLayout(name string) error {
	l, ok := c.Layouts[name]
	if !ok {
		return fmt.Errorf("layout %q not found", name)
	}
	seen := make(map[int]bool, len(l.Rows))
	for i, r := range l.Rows {
		if err := c.validateRow(r); err != nil {
			return fmt.Errorf("layout %s: row %d: %w", name, i, err)
		}
		if seen[r.Lane] {
			return fmt.Errorf("layout %s: row %d: duplicate lane %d", name, i, r.Lane)
		}
		seen[r.Lane] = true
	}
	if l.GoalSlots() == 0 {
		return fmt.Errorf("layout %s: no goal slots", name)
	}
	if c.Rules.MaxTimesAtGoal > l.GoalSlots() {
		return fmt.Errorf("layout %s: max_times_at_goal %d exceeds %d goal slots", name, c.Rules.MaxTimesAtGoal, l.GoalSlots())
	}
	return nil
}

func (c FroggerConfig) validateRow(r RowConfig) error {
	switch r.Kind {
	case KindRoad, KindLog, KindTurtle, KindGoal:
	default:
		return fmt.Errorf("unknown kind %q", r.Kind)
	}
	d, err := core.ParseDirection(r.directionOrDefault())
	if err != nil {
		return err
	}
	if d.Vertical() {
		return fmt.Errorf("direction %q is not horizontal", r.Direction)
	}
	if r.Lane < 0 || r.Lane >= c.Board.Rows {
		return fmt.Errorf("lane %d outside board (0..%d)", r.Lane, c.Board.Rows-1)
	}
	if r.Speed < 0 {
		return fmt.Errorf("negative speed %d", r.Speed)
	}
	for _, p := range r.Obstacles {
		kind, ok := c.Obstacles[p.Type]
		if !ok {
			return fmt.Errorf("unknown obstacle %q", p.Type)
		}
		if r.Kind == KindGoal && !kind.Fixed {
			return fmt.Errorf("goal row holds moving obstacle %q", p.Type)
		}
		if p.Left == nil && (p.Column < 0 || p.Column >= c.Board.Columns) {
			return fmt.Errorf("obstacle %s: column %d outside board", p.Type, p.Column)
		}
	}
	return nil
}

// DirectionName returns the row direction, defaulting to left.
func (r RowConfig) DirectionName() string { return r.directionOrDefault() }

func (r RowConfig) directionOrDefault() string {
	if r.Direction == "" {
		return "left"
	}
	return r.Direction
}

func (b BoardConfig) validate() error {
	switch {
	case b.GridWidth <= 0 || b.GridHeight <= 0:
		return errors.New("grid size must be positive")
	case b.Rows <= 0 || b.Columns <= 0:
		return errors.New("rows and columns must be positive")
	case b.TopRow < 0 || b.BottomRow >= b.Rows || b.TopRow > b.BottomRow:
		return fmt.Errorf("bounds rows %d..%d outside board", b.TopRow, b.BottomRow)
	case b.StartRow < b.TopRow || b.StartRow > b.BottomRow:
		return fmt.Errorf("start row %d outside bounds", b.StartRow)
	case b.StartColumn < 0 || b.StartColumn >= b.Columns:
		return fmt.Errorf("start column %d outside board", b.StartColumn)
	}
	return nil
}

func (r RulesConfig) validate() error {
	switch {
	case r.Lives <= 0:
		return errors.New("lives must be positive")
	case r.TimeTotal <= 0:
		return errors.New("time_total must be positive")
	case r.RefreshRate <= 0:
		return errors.New("refresh_rate must be positive")
	case r.ResetDelay < 0:
		return errors.New("reset_delay must not be negative")
	case r.MaxTimesAtGoal <= 0:
		return errors.New("max_times_at_goal must be positive")
	case r.SpeedScale < 0:
		return errors.New("speed_scale must not be negative")
	}
	return nil
}

func (a AnimationConfig) validate() error {
	if len(a.Sequence) == 0 {
		return errors.New("empty sequence")
	}
	if a.Rate <= 0 {
		return errors.New("rate must be positive")
	}
	return nil
}

func (o ObstacleConfig) validate() error {
	if o.Width <= 0 {
		return errors.New("width must be positive")
	}
	if o.Color != "" {
		if _, ok := core.ParseColor(o.Color); !ok {
			return fmt.Errorf("unknown color %q", o.Color)
		}
	}
	if o.Animation != nil {
		if err := o.Animation.validate(); err != nil {
			return fmt.Errorf("animation: %w", err)
		}
	}
	if o.Submerges && o.Animation == nil {
		return errors.New("submerges without animation")
	}
	return nil
}
