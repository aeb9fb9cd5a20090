package event

import "github.com/vovakirdan/tui-frogger/internal/core"

// Topic names a kind of event. The set is closed; every topic has exactly one
// payload type below.
type Topic int

const (
	// TopicGameLoad starts the game. Payload: GameLoad
	TopicGameLoad Topic = iota

	// TopicBoardInitialized carries the immutable board geometry.
	// Trigger: game load | Consumers: board, character, renderer
	TopicBoardInitialized

	// TopicCheckCollisions asks the board to test the character's row.
	// Trigger: driver, only while the player is not frozen
	TopicCheckCollisions

	// TopicRenderObstacles is published once per frame. The board advances
	// its rows first, then renderers draw them.
	TopicRenderObstacles

	// TopicRenderCharacter is published once per frame after the obstacles.
	TopicRenderCharacter

	// TopicCollision reports that the character was hit, drowned or missed a goal.
	TopicCollision

	// TopicPlayerMoved is published for every accepted movement command.
	TopicPlayerMoved

	// TopicPlayerAtGoal is published when the character claims a goal slot.
	TopicPlayerAtGoal

	TopicPlayerLostLife
	TopicPlayerFrozen
	TopicPlayerUnfrozen

	// HUD data
	TopicScoreChanged
	TopicHighScoreChanged
	TopicTimeRemainingChanged

	// TopicReset restores positions and the timer after a pause window.
	TopicReset

	// TopicRestart starts a brand new game (fresh goals, score and lives).
	TopicRestart

	TopicGameOver
	TopicGameWon

	topicCount
)

var topicNames = [...]string{
	TopicGameLoad:             "game-load",
	TopicBoardInitialized:     "game-board-initialize",
	TopicCheckCollisions:      "check-collisions",
	TopicRenderObstacles:      "render-base-layer",
	TopicRenderCharacter:      "render-character",
	TopicCollision:            "collision",
	TopicPlayerMoved:          "player-moved",
	TopicPlayerAtGoal:         "player-at-goal",
	TopicPlayerLostLife:       "player-lost-life",
	TopicPlayerFrozen:         "player-freeze",
	TopicPlayerUnfrozen:       "player-unfreeze",
	TopicScoreChanged:         "score-change",
	TopicHighScoreChanged:     "high-score-change",
	TopicTimeRemainingChanged: "time-remaining-change",
	TopicReset:                "reset",
	TopicRestart:              "restart",
	TopicGameOver:             "game-over",
	TopicGameWon:              "game-won",
}

// String returns the lifecycle name of the topic.
func (t Topic) String() string {
	if t >= 0 && int(t) < len(topicNames) {
		return topicNames[t]
	}
	return "unknown"
}

// Event is implemented by every payload struct.
type Event interface {
	Topic() Topic
}

// Cause describes why a life was lost.
type Cause int

const (
	CauseHit      Cause = iota // run over on a road row
	CauseDrowned               // fell in the water or rode a diving turtle
	CauseGoalMiss              // landed between goal slots or on a claimed slot
	CauseTimeout               // countdown reached zero
)

func (c Cause) String() string {
	switch c {
	case CauseHit:
		return "hit"
	case CauseDrowned:
		return "drowned"
	case CauseGoalMiss:
		return "missed goal"
	case CauseTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

type GameLoad struct{}

func (GameLoad) Topic() Topic { return TopicGameLoad }

// BoardInitialized carries the board geometry published once at load.
type BoardInitialized struct {
	Geometry core.Geometry
}

func (BoardInitialized) Topic() Topic { return TopicBoardInitialized }

type CheckCollisions struct{}

func (CheckCollisions) Topic() Topic { return TopicCheckCollisions }

// RenderObstacles carries the frame number of the engine clock.
type RenderObstacles struct {
	Frame uint64
}

func (RenderObstacles) Topic() Topic { return TopicRenderObstacles }

type RenderCharacter struct {
	Frame uint64
}

func (RenderCharacter) Topic() Topic { return TopicRenderCharacter }

// Collision is published by the board when the character's row reports a hit.
type Collision struct {
	Lane  int
	Cause Cause
}

func (Collision) Topic() Topic { return TopicCollision }

type PlayerMoved struct {
	Direction core.Direction
}

func (PlayerMoved) Topic() Topic { return TopicPlayerMoved }

// PlayerAtGoal identifies the claimed slot.
type PlayerAtGoal struct {
	Lane int
	Slot core.Interval
}

func (PlayerAtGoal) Topic() Topic { return TopicPlayerAtGoal }

type PlayerLostLife struct {
	Lives int
	Cause Cause
}

func (PlayerLostLife) Topic() Topic { return TopicPlayerLostLife }

type PlayerFrozen struct{}

func (PlayerFrozen) Topic() Topic { return TopicPlayerFrozen }

type PlayerUnfrozen struct{}

func (PlayerUnfrozen) Topic() Topic { return TopicPlayerUnfrozen }

type ScoreChanged struct {
	Score int
}

func (ScoreChanged) Topic() Topic { return TopicScoreChanged }

type HighScoreChanged struct {
	HighScore int
}

func (HighScoreChanged) Topic() Topic { return TopicHighScoreChanged }

// TimeRemainingChanged carries the remaining time as a fraction in [0, 1].
type TimeRemainingChanged struct {
	Fraction float64
}

func (TimeRemainingChanged) Topic() Topic { return TopicTimeRemainingChanged }

type Reset struct{}

func (Reset) Topic() Topic { return TopicReset }

type Restart struct{}

func (Restart) Topic() Topic { return TopicRestart }

type GameOver struct {
	Score int
}

func (GameOver) Topic() Topic { return TopicGameOver }

type GameWon struct {
	Score int
}

func (GameWon) Topic() Topic { return TopicGameWon }
