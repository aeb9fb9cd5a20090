package frogger

import (
	"time"

	"github.com/vovakirdan/tui-frogger/internal/event"
)

// Attempt is one crossing, ended by a goal or a lost life.
type Attempt struct {
	Number   int
	Outcome  string
	Score    int
	TimeUsed time.Duration
}

// AttemptLog records every attempt of the session. Nothing is persisted.
type AttemptLog struct {
	state    *State
	attempts []Attempt
}

// NewAttemptLog subscribes to the events that end an attempt. Subscribe it
// after the state so scores include the attempt's bonus.
func NewAttemptLog(bus *event.Bus, state *State) *AttemptLog {
	l := &AttemptLog{state: state}
	event.On(bus, func(event.PlayerAtGoal) { l.add("goal") })
	event.On(bus, func(ev event.PlayerLostLife) { l.add(ev.Cause.String()) })
	return l
}

func (l *AttemptLog) add(outcome string) {
	l.attempts = append(l.attempts, Attempt{
		Number:   len(l.attempts) + 1,
		Outcome:  outcome,
		Score:    l.state.Score(),
		TimeUsed: l.state.Rules().TimeTotal - l.state.TimeRemaining(),
	})
}

// Attempts returns a copy of the recorded attempts.
func (l *AttemptLog) Attempts() []Attempt {
	return append([]Attempt(nil), l.attempts...)
}
