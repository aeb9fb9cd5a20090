package frogger

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Plan is a resolved layout: kinds looked up, speeds scaled and placements in
// pixels. The board builds fresh rows from it on load and on restart.
type Plan struct {
	Name   string
	Rows   []RowPlan
	Marker *ObstacleKind
}

// RowPlan describes one row of a plan.
type RowPlan struct {
	Kind       RowKind
	Lane       int
	Direction  core.Direction
	Speed      int
	Placements []Placement
}

// Placement is one obstacle's kind and start position.
type Placement struct {
	Kind *ObstacleKind
	Left int
}

// NewPlan resolves a named layout from the configuration.
func NewPlan(cfg config.FroggerConfig, name string, geom core.Geometry) (*Plan, error) {
	layout, ok := cfg.Layout(name)
	if !ok {
		return nil, fmt.Errorf("layout %q not found (have %v)", name, cfg.LayoutNames())
	}
	kinds := KindsFromConfig(cfg.Obstacles)
	plan := &Plan{Name: name, Marker: kinds[config.GoalMarkerType]}
	scale := cfg.Rules.SpeedScale
	if scale <= 0 {
		scale = 1
	}

	lanes := make(map[int]bool, len(layout.Rows))
	for i, rc := range layout.Rows {
		kind, err := ParseRowKind(rc.Kind)
		if err != nil {
			return nil, fmt.Errorf("layout %s: row %d: %w", name, i, err)
		}
		if rc.Lane < 0 || rc.Lane >= geom.NumRows {
			return nil, fmt.Errorf("layout %s: row %d: lane %d outside board", name, i, rc.Lane)
		}
		if lanes[rc.Lane] {
			return nil, fmt.Errorf("layout %s: row %d: duplicate lane %d", name, i, rc.Lane)
		}
		lanes[rc.Lane] = true

		dir, err := core.ParseDirection(rc.DirectionName())
		if err != nil {
			return nil, fmt.Errorf("layout %s: row %d: %w", name, i, err)
		}
		// A moving row keeps moving however small the scale.
		speed := int(math.Round(float64(rc.Speed) * scale))
		if rc.Speed > 0 && speed < 1 {
			speed = 1
		}
		rp := RowPlan{
			Kind:      kind,
			Lane:      rc.Lane,
			Direction: dir,
			Speed:     speed,
		}
		for _, p := range rc.Obstacles {
			okind := kinds[p.Type]
			if okind == nil {
				return nil, fmt.Errorf("layout %s: row %d: unknown obstacle %q", name, i, p.Type)
			}
			var left int
			switch {
			case p.Left != nil:
				left = *p.Left
			case p.Column < 0 || p.Column >= geom.NumColumns:
				return nil, fmt.Errorf("layout %s: row %d: column %d outside board", name, i, p.Column)
			default:
				left = geom.ColumnLeft(p.Column)
			}
			rp.Placements = append(rp.Placements, Placement{Kind: okind, Left: left})
		}
		plan.Rows = append(plan.Rows, rp)
	}
	return plan, nil
}

// Build creates live rows for the plan, top to bottom in plan order.
func (p *Plan) Build(geom core.Geometry) []*Row {
	rows := make([]*Row, 0, len(p.Rows))
	for _, rp := range p.Rows {
		top := geom.RowTop(rp.Lane)
		obstacles := make([]*Obstacle, 0, len(rp.Placements))
		for _, pl := range rp.Placements {
			obstacles = append(obstacles, NewObstacle(pl.Kind, pl.Left, top))
		}
		row := NewRow(rp.Kind, rp.Lane, top, rp.Direction, rp.Speed, obstacles)
		if rp.Kind == RowGoal {
			row.marker = p.Marker
		}
		rows = append(rows, row)
	}
	return rows
}

// GeometryFromConfig builds the board geometry from the board config.
func GeometryFromConfig(b config.BoardConfig) core.Geometry {
	return core.NewGeometry(core.Size{Width: b.GridWidth, Height: b.GridHeight},
		b.Rows, b.Columns, b.TopRow, b.BottomRow, b.StartRow, b.StartColumn)
}
