package frogger

import "time"

// Snapshot captures the game state for tests, the simulate command and reports.
type Snapshot struct {
	Frame         uint64
	Layout        string
	Phase         Phase
	Score         int
	HighScore     int
	Lives         int
	TimesAtGoal   int
	TimeRemaining time.Duration
	TimeFraction  float64
	CharacterRow  int
	CharacterLeft int
	Frozen        bool
	Hidden        bool
	ResetPending  bool
	GoalsMet      []bool
}

// Snapshot returns the current game snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Frame:         e.frame,
		Layout:        e.plan.Name,
		Phase:         e.state.Phase(),
		Score:         e.state.Score(),
		HighScore:     e.state.HighScore(),
		Lives:         e.state.Lives(),
		TimesAtGoal:   e.state.TimesAtGoal(),
		TimeRemaining: e.state.TimeRemaining(),
		TimeFraction:  e.state.TimeFraction(),
		CharacterRow:  e.character.Row(),
		CharacterLeft: e.character.Left(),
		Frozen:        e.character.Frozen(),
		Hidden:        e.character.Hidden(),
		ResetPending:  e.state.ResetPending(),
		GoalsMet:      e.board.GoalsMet(),
	}
}
