package frogger

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/event"
)

// Phase is the state machine's current state.
type Phase int

const (
	PhaseRunning  Phase = iota // countdown and collisions active
	PhaseFrozen                // paused after a lost life or a goal, reset pending
	PhaseGameOver              // no lives left
	PhaseWon                   // every goal reached
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseFrozen:
		return "frozen"
	case PhaseGameOver:
		return "game_over"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether only Restart can leave the phase.
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseWon
}

// State owns score, lives and the countdown. All changes go through its
// methods and are announced on the bus.
type State struct {
	bus    *event.Bus
	rules  config.RulesConfig
	logger *log.Logger

	phase         Phase
	score         int
	highScore     int
	lives         int
	timesAtGoal   int
	timeRemaining time.Duration
	pending       Deferred
}

// NewState creates the state machine and subscribes it to the bus.
func NewState(bus *event.Bus, rules config.RulesConfig, logger *log.Logger) *State {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &State{
		bus:           bus,
		rules:         rules,
		logger:        logger,
		highScore:     rules.HighScore,
		lives:         rules.Lives,
		timeRemaining: rules.TimeTotal,
	}
	event.On(bus, func(event.GameLoad) {
		bus.Publish(event.HighScoreChanged{HighScore: s.highScore})
	})
	event.On(bus, func(ev event.Collision) { s.loseLife(ev.Cause) })
	event.On(bus, func(ev event.PlayerAtGoal) { s.playerAtGoal(ev) })
	event.On(bus, func(event.PlayerMoved) { s.playerMoved() })
	return s
}

func (s *State) Phase() Phase                 { return s.phase }
func (s *State) Score() int                   { return s.score }
func (s *State) HighScore() int               { return s.highScore }
func (s *State) Lives() int                   { return s.lives }
func (s *State) TimesAtGoal() int             { return s.timesAtGoal }
func (s *State) TimeRemaining() time.Duration { return s.timeRemaining }
func (s *State) Rules() config.RulesConfig    { return s.rules }

// Frozen reports whether movement and the countdown are suspended.
func (s *State) Frozen() bool { return s.phase != PhaseRunning }

// ResetPending reports whether an automatic reset is scheduled.
func (s *State) ResetPending() bool { return s.pending.Pending() }

// TimeFraction is the remaining share of the time budget.
func (s *State) TimeFraction() float64 {
	if s.rules.TimeTotal <= 0 {
		return 0
	}
	return float64(s.timeRemaining) / float64(s.rules.TimeTotal)
}

// CountDown spends one refresh step of the time budget. Running out costs a life.
func (s *State) CountDown() {
	if s.phase != PhaseRunning {
		return
	}
	s.timeRemaining -= s.rules.RefreshRate
	if s.timeRemaining < 0 {
		s.timeRemaining = 0
	}
	s.bus.Publish(event.TimeRemainingChanged{Fraction: s.TimeFraction()})
	if s.timeRemaining == 0 {
		s.loseLife(event.CauseTimeout)
	}
}

// Advance moves the pending reset forward by dt of engine time.
func (s *State) Advance(dt time.Duration) {
	s.pending.Advance(dt)
}

func (s *State) loseLife(cause event.Cause) {
	if s.phase != PhaseRunning {
		return
	}
	if s.lives <= 0 {
		panic(fmt.Sprintf("frogger: losing a life with %d lives", s.lives))
	}
	s.lives--
	s.freeze()
	s.logger.Info("life lost", "cause", cause, "lives", s.lives, "score", s.score)
	s.bus.Publish(event.PlayerLostLife{Lives: s.lives, Cause: cause})
	if s.lives == 0 {
		s.gameOver()
		return
	}
	s.scheduleReset()
}

func (s *State) playerAtGoal(ev event.PlayerAtGoal) {
	if s.phase.Terminal() {
		return
	}
	s.increaseScore(s.rules.GoalBonus)
	s.timesAtGoal++
	s.freeze()
	s.logger.Info("goal reached", "slot", ev.Slot.Left, "goals", s.timesAtGoal, "score", s.score)
	if s.timesAtGoal < s.rules.MaxTimesAtGoal {
		s.scheduleReset()
		return
	}
	s.gameWon()
}

func (s *State) playerMoved() {
	if s.phase.Terminal() {
		return
	}
	s.increaseScore(s.rules.MoveBonus)
}

func (s *State) increaseScore(by int) {
	s.score += by
	s.bus.Publish(event.ScoreChanged{Score: s.score})
	if s.score > s.highScore {
		s.highScore = s.score
		s.bus.Publish(event.HighScoreChanged{HighScore: s.highScore})
	}
}

func (s *State) freeze() {
	if s.phase == PhaseRunning {
		s.phase = PhaseFrozen
	}
	s.bus.Publish(event.PlayerFrozen{})
}

func (s *State) unfreeze() {
	s.phase = PhaseRunning
	s.bus.Publish(event.PlayerUnfrozen{})
}

func (s *State) scheduleReset() {
	if s.pending.Schedule(s.rules.ResetDelay, s.Reset) {
		s.logger.Debug("pending reset superseded")
	}
}

func (s *State) gameOver() {
	s.pending.Cancel()
	s.phase = PhaseGameOver
	s.freeze()
	s.logger.Info("game over", "score", s.score, "high_score", s.highScore)
	s.bus.Publish(event.GameOver{Score: s.score})
}

func (s *State) gameWon() {
	s.pending.Cancel()
	s.phase = PhaseWon
	s.logger.Info("game won", "score", s.score, "high_score", s.highScore)
	s.bus.Publish(event.GameWon{Score: s.score})
}

// Reset refills the timer, unfreezes and publishes Reset. It is ignored once
// the game is over or won.
func (s *State) Reset() {
	if s.phase.Terminal() {
		s.logger.Debug("reset ignored", "phase", s.phase)
		return
	}
	s.timeRemaining = s.rules.TimeTotal
	s.unfreeze()
	s.logger.Debug("reset", "lives", s.lives, "score", s.score)
	s.bus.Publish(event.Reset{})
	s.bus.Publish(event.TimeRemainingChanged{Fraction: 1})
}

// Restart begins a new game: score, lives and goals are restored and the
// board is rebuilt. The high score is kept.
func (s *State) Restart() {
	s.pending.Cancel()
	s.score = 0
	s.lives = s.rules.Lives
	s.timesAtGoal = 0
	s.phase = PhaseFrozen
	s.logger.Info("restart", "high_score", s.highScore)
	s.bus.Publish(event.Restart{})
	s.bus.Publish(event.ScoreChanged{Score: s.score})
	s.Reset()
}
