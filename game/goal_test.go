// File: game/goal_test.go
package game

import (
	"testing"

	"github.com/arnozoon/haxgo/stadium"
	"github.com/arnozoon/haxgo/utils"
	"github.com/stretchr/testify/assert"
)

// TestCheckGoalDetectsCrossing: a disc starting at -spawn_distance/2
// with velocity (-1000, 0) crosses a red goal at x = -900 in one tick;
// the detector must return the goal's own team tag.
func TestCheckGoalDetectsCrossing(t *testing.T) {
	const spawnDistance = 200.0

	goal := &stadium.Goal{
		P0:   utils.Vector{X: -900, Y: -100},
		P1:   utils.Vector{X: -900, Y: 100},
		Team: stadium.TeamRed,
	}

	prevBall := &stadium.Disc{
		Position: utils.Vector{X: -spawnDistance / 2, Y: 0},
		CGroup:   utils.FlagScore,
	}
	currentBall := &stadium.Disc{
		Position: utils.Vector{X: -spawnDistance/2 - 1000, Y: 0},
		CGroup:   utils.FlagScore,
	}

	s := &stadium.Stadium{
		Discs: []*stadium.Disc{currentBall},
		Goals: []*stadium.Goal{goal},
	}

	team := checkGoal(s, []*stadium.Disc{prevBall})
	assert.Equal(t, stadium.TeamRed, team)
}

// TestCheckGoalIgnoresNonScoringDiscs confirms the detector only iterates
// discs carrying the `score` flag.
func TestCheckGoalIgnoresNonScoringDiscs(t *testing.T) {
	goal := &stadium.Goal{
		P0:   utils.Vector{X: -900, Y: -100},
		P1:   utils.Vector{X: -900, Y: 100},
		Team: stadium.TeamRed,
	}

	prev := &stadium.Disc{Position: utils.Vector{X: -100, Y: 0}}
	cur := &stadium.Disc{Position: utils.Vector{X: -1100, Y: 0}}

	s := &stadium.Stadium{Discs: []*stadium.Disc{cur}, Goals: []*stadium.Goal{goal}}

	team := checkGoal(s, []*stadium.Disc{prev})
	assert.Equal(t, stadium.TeamSpectator, team)
}

// TestCheckGoalMissesWideCrossing confirms a disc crossing the goal's
// line outside its endpoints does not score.
func TestCheckGoalMissesWideCrossing(t *testing.T) {
	goal := &stadium.Goal{
		P0:   utils.Vector{X: -900, Y: -100},
		P1:   utils.Vector{X: -900, Y: 100},
		Team: stadium.TeamRed,
	}

	prev := &stadium.Disc{Position: utils.Vector{X: -100, Y: 500}, CGroup: utils.FlagScore}
	cur := &stadium.Disc{Position: utils.Vector{X: -1100, Y: 500}, CGroup: utils.FlagScore}

	s := &stadium.Stadium{Discs: []*stadium.Disc{cur}, Goals: []*stadium.Goal{goal}}

	team := checkGoal(s, []*stadium.Disc{prev})
	assert.Equal(t, stadium.TeamSpectator, team)
}
