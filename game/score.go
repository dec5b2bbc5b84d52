// File: game/score.go
package game

import (
	"github.com/arnozoon/haxgo/stadium"
	"github.com/arnozoon/haxgo/utils"
)

// Score tracks goals, elapsed time, and the animation countdowns that
// gate GOAL/END state transitions.
type Score struct {
	Red, Blue int

	Ticks      int
	TimeLimit  float64 // minutes; 0 = unlimited
	ScoreLimit int     // 0 = unlimited

	AnimationTimeout int

	tickRate int
}

// NewScore builds a Score with the given limits at the configured tick
// rate. A negative time_limit or score_limit is a ConfigInvalidError,
// fatal at construction.
func NewScore(timeLimit float64, scoreLimit, tickRate int) (*Score, error) {
	if timeLimit < 0 || scoreLimit < 0 {
		return nil, &ConfigInvalidError{Reason: "time_limit and score_limit must be non-negative"}
	}
	return &Score{
		TimeLimit:  timeLimit,
		ScoreLimit: scoreLimit,
		tickRate:   tickRate,
	}, nil
}

// Time returns elapsed seconds.
func (s *Score) Time() float64 {
	return float64(s.Ticks) / float64(s.tickRate)
}

// Step advances the clock while state is KICKOFF or PLAYING; the GOAL
// and END animations don't count as playing time.
func (s *Score) Step(state GameState) {
	if state == StateKickoff || state == StatePlaying {
		s.Ticks++
	}
}

// IsGameOver reports whether the score limit is reached, or the time
// limit (minutes, matched against elapsed seconds) is exceeded while one
// team leads. A tied game plays on past the clock, golden-goal style.
func (s *Score) IsGameOver() bool {
	if s.ScoreLimit > 0 && utils.MaxInt(s.Red, s.Blue) >= s.ScoreLimit {
		return true
	}
	if s.TimeLimit > 0 && s.Time() >= s.TimeLimit*60 && s.Red != s.Blue {
		return true
	}
	return false
}

// IsAnimation reports whether the GOAL/END countdown is still running.
func (s *Score) IsAnimation() bool {
	return s.AnimationTimeout > 0
}

// DecrementAnimation ticks the GOAL/END countdown down by one.
func (s *Score) DecrementAnimation() {
	s.AnimationTimeout--
}

// UpdateScore increments the scoring team's tally.
func (s *Score) UpdateScore(team stadium.TeamID) {
	switch team {
	case stadium.TeamRed:
		s.Red++
	case stadium.TeamBlue:
		s.Blue++
	}
}

// EndAnimation arms the animation countdown, the shared mechanism
// behind both the GOAL and END state entry effects; the caller picks
// the duration (goal vs end) per state.
func (s *Score) EndAnimation(ticks int) {
	s.AnimationTimeout = ticks
}

// Stop resets ticks/state counters for a fresh game, leaving the configured limits untouched.
func (s *Score) Stop() {
	s.Red = 0
	s.Blue = 0
	s.Ticks = 0
	s.AnimationTimeout = 0
}
