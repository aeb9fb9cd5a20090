package core

// Game is the contract between a game and the platform.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game for a new session.
	Reset(cfg RuntimeConfig)

	// Step is called on every driver tick with the actions gathered since the
	// previous one. The game decides whether the tick runs a frame.
	Step(in InputFrame) StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *Screen)

	// State returns the current game state (score, game over, paused).
	State() GameState
}
