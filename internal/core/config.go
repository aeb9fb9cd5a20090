package core

// RuntimeConfig contains the platform settings passed to the game at start.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Driver ticks per second (default 30)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState is the summary the game reports to the platform after each step.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Session high score
	Lives     int  // Remaining lives
	GameOver  bool // Lives exhausted
	Won       bool // All goals reached
	Paused    bool // Whether the game is paused
}

// Finished reports whether the game reached a terminal state.
func (s GameState) Finished() bool {
	return s.GameOver || s.Won
}

// StepResult is returned by Game.Step() after each driver tick.
type StepResult struct {
	State GameState
	// Ran is false when the engine dropped the tick (driver fired early).
	Ran bool
}
