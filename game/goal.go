// File: game/goal.go
package game

import (
	"github.com/arnozoon/haxgo/stadium"
	"github.com/arnozoon/haxgo/utils"
)

// checkGoal detects a scoring crossing: for each disc carrying the
// `score` flag, test its motion vector against every goal's
// segment-crossing condition; return the scoring team. The returned
// team is the goal's own team tag, not its opponent -- the caller
// decides what to do with it.
func checkGoal(s *stadium.Stadium, previous []*stadium.Disc) stadium.TeamID {
	current := scoringDiscs(s)

	for i, prev := range previous {
		if i >= len(current) {
			break
		}
		cur := current[i]

		v := cur.Position.Sub(prev.Position)
		for _, goal := range s.Goals {
			a := cur.Position.Sub(goal.P0)
			b := cur.Position.Sub(goal.P1)
			g := goal.P1.Sub(goal.P0)
			prevP0 := prev.Position.Sub(goal.P0)

			if a.Cross(v)*b.Cross(v) <= 0 && prevP0.Cross(g)*a.Cross(g) <= 0 {
				return goal.Team
			}
		}
	}

	return stadium.TeamSpectator
}

// scoringDiscs returns, in stadium order, every disc whose collision
// group carries the `score` flag.
func scoringDiscs(s *stadium.Stadium) []*stadium.Disc {
	var out []*stadium.Disc
	for _, d := range s.Discs {
		if d.CGroup.Has(utils.FlagScore) {
			out = append(out, d)
		}
	}
	return out
}

// snapshotScoringDiscs deep-copies the current scoring discs before
// integration and collision resolution run, so checkGoal can compare
// each disc's motion across the tick.
func snapshotScoringDiscs(s *stadium.Stadium) []*stadium.Disc {
	discs := scoringDiscs(s)
	out := make([]*stadium.Disc, len(discs))
	for i, d := range discs {
		out[i] = d.Clone()
	}
	return out
}
