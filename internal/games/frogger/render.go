package frogger

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/event"
)

const (
	waterRune = '≈'
	hedgeRune = '▒'
	safeRune  = '░'
)

var (
	diveRunes     = []rune{'O', 'o', '.'}
	loseLifeRunes = []rune{'X', 'x', '+'}
)

// Renderer draws the board into a text frame. It listens on the bus for the
// per-frame render notifications and the HUD values, and only reads the board
// and character.
type Renderer struct {
	board     *Board
	character *Character
	cellW     int
	water     core.Color
	road      core.Color
	safe      core.Color
	lives     int

	geom   core.Geometry
	frame  *core.Screen
	score  int
	high   int
	time   float64
	banner string
}

// NewRenderer creates a renderer and subscribes it to the bus. Subscribe it
// after the board so rows have moved before they are drawn.
func NewRenderer(bus *event.Bus, board *Board, character *Character, cfg config.FroggerConfig) *Renderer {
	r := &Renderer{
		board:     board,
		character: character,
		cellW:     cfg.Render.CellWidth,
		lives:     cfg.Rules.Lives,
		time:      1,
	}
	r.water, _ = core.ParseColor(cfg.Render.WaterColor)
	r.road, _ = core.ParseColor(cfg.Render.RoadColor)
	r.safe, _ = core.ParseColor(cfg.Render.SafeColor)
	if r.cellW <= 0 {
		r.cellW = 1
	}

	event.On(bus, func(ev event.BoardInitialized) {
		r.geom = ev.Geometry
		r.frame = core.NewScreen(ev.Geometry.NumColumns*r.cellW, ev.Geometry.NumRows)
	})
	event.On(bus, func(event.RenderObstacles) { r.drawBase() })
	event.On(bus, func(event.RenderCharacter) { r.drawCharacter() })
	event.On(bus, func(ev event.ScoreChanged) { r.score = ev.Score })
	event.On(bus, func(ev event.HighScoreChanged) { r.high = ev.HighScore })
	event.On(bus, func(ev event.TimeRemainingChanged) { r.time = ev.Fraction })
	event.On(bus, func(ev event.PlayerLostLife) { r.lives = ev.Lives })
	event.On(bus, func(event.GameOver) { r.banner = "GAME OVER" })
	event.On(bus, func(event.GameWon) { r.banner = "YOU WIN!" })
	event.On(bus, func(event.Restart) {
		r.lives = cfg.Rules.Lives
		r.banner = ""
		r.time = 1
	})
	return r
}

// Size returns the frame size in characters.
func (r *Renderer) Size() (int, int) {
	if r.frame == nil {
		return 0, 0
	}
	return r.frame.Width(), r.frame.Height()
}

// Frame returns the last drawn frame, or nil before the board is initialized.
func (r *Renderer) Frame() *core.Screen { return r.frame }

// Render copies the last frame onto dst, centered horizontally.
func (r *Renderer) Render(dst *core.Screen) {
	if r.frame == nil {
		return
	}
	x := (dst.Width() - r.frame.Width()) / 2
	if x < 0 {
		x = 0
	}
	dst.Blit(r.frame, x, 0)
}

// col converts a pixel x coordinate to a frame column.
func (r *Renderer) col(px int) int {
	return floorDiv(px*r.cellW, r.geom.Grid.Width)
}

func (r *Renderer) drawBase() {
	if r.frame == nil {
		return
	}
	r.frame.Clear()
	w := r.frame.Width()

	for lane := 0; lane < r.geom.NumRows; lane++ {
		switch row := r.board.RowAt(lane); {
		case row == nil:
			if lane >= r.geom.MinRow() && lane <= r.geom.MaxRow() {
				r.frame.DrawHLine(0, lane, w, safeRune, r.safe)
			}
		case row.Kind() == RowGoal:
			r.frame.DrawHLine(0, lane, w, hedgeRune, core.ColorGreen)
		case row.Kind().Carries():
			r.frame.DrawHLine(0, lane, w, waterRune, r.water)
		default:
			r.frame.DrawHLine(0, lane, w, ' ', r.road)
		}
	}

	for _, row := range r.board.Rows() {
		y := row.Lane()
		for _, o := range row.Obstacles() {
			if o.Submerged() {
				continue
			}
			glyph := o.Kind().Glyph
			if o.Kind().Submerges && o.Frame() > 0 {
				glyph = diveRunes[min(o.Frame(), len(diveRunes)-1)]
			}
			r.span(o.Left(), o.Width(), y, glyph, o.Kind().Color)
		}
	}
}

func (r *Renderer) span(left, width, y int, glyph rune, c core.Color) {
	x0, x1 := r.col(left), r.col(left+width)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	r.frame.DrawHLine(x0, y, x1-x0, glyph, c)
}

func (r *Renderer) drawCharacter() {
	if r.frame == nil {
		return
	}
	ch := r.character
	if !ch.Hidden() {
		glyph, color := ch.Glyph()
		if name, v := ch.Animation(); name == AnimLoseLife {
			glyph = loseLifeRunes[min(v, len(loseLifeRunes)-1)]
			color = core.ColorBrightRed
		}
		x0, x1 := r.col(ch.Left()), r.col(ch.Left()+ch.Width())
		sprite := []rune(strings.Repeat(string(glyph), max(1, x1-x0)))
		if len(sprite) > 2 {
			sprite[0], sprite[len(sprite)-1] = '(', ')'
		}
		r.frame.DrawText(x0, ch.Row(), string(sprite), color)
	}
	r.drawHUD()
}

func (r *Renderer) drawHUD() {
	w := r.frame.Width()
	r.frame.DrawText(1, 0, fmt.Sprintf("SCORE %d", r.score), core.ColorBrightWhite)
	r.frame.DrawTextRight(w-1, 0, fmt.Sprintf("HI %d", r.high), core.ColorBrightYellow)

	bottom := r.geom.NumRows - 1
	lives := strings.Repeat("@ ", r.lives)
	r.frame.DrawText(1, bottom, lives, core.ColorGreen)

	barW := w / 2
	filled := int(r.time*float64(barW) + 0.5)
	filled = core.Clamp(filled, 0, barW)
	barColor := core.ColorGreen
	if r.time < 0.25 {
		barColor = core.ColorRed
	}
	r.frame.DrawTextRight(w-6, bottom, strings.Repeat(" ", barW-filled), core.ColorDefault)
	r.frame.DrawHLine(w-6-filled, bottom, filled, '█', barColor)
	r.frame.DrawText(w-5, bottom, "TIME", core.ColorYellow)

	if r.banner != "" {
		text := " " + r.banner + " "
		r.frame.DrawTextCentered(r.geom.NumRows/2, text, core.ColorBrightWhite)
	}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
