// File: game/state_machine.go
package game

import (
	"github.com/arnozoon/haxgo/stadium"
	"github.com/arnozoon/haxgo/utils"
)

// handleGameState advances the clock and dispatches to the current
// state's handler. Returns true exactly on the tick after END's
// animation completes.
func (g *Game) handleGameState(previous []*stadium.Disc) bool {
	g.Score.Step(g.State)

	switch g.State {
	case StateKickoff:
		g.handleKickoffState()
	case StatePlaying:
		g.handlePlayingState(previous)
	case StateGoal:
		g.handleGoalState()
	case StateEnd:
		return g.handleEndState()
	}

	return false
}

// handleKickoffState enforces the kickoff barrier: every player disc not
// on the kicking team additionally masks against REDKO/BLUEKO so it
// cannot cross midfield. The transition to PLAYING fires
// the instant the ball moves.
func (g *Game) handleKickoffState() {
	for _, p := range g.Players {
		if p.Disc == nil {
			continue
		}
		mask := p.BaseCMask
		if p.Team != g.TeamKickoff {
			if g.TeamKickoff == stadium.TeamRed {
				mask |= utils.FlagRedKO
			} else {
				mask |= utils.FlagBlueKO
			}
		}
		p.Disc.CMask = mask
	}

	ball := g.stadium.Ball()
	if ball != nil && !ball.Velocity.IsZero() {
		g.State = StatePlaying
	}
}

// handlePlayingState clears the kickoff barrier, runs goal detection,
// and transitions to GOAL on a crossing or to END when the game is
// over without one.
func (g *Game) handlePlayingState(previous []*stadium.Disc) {
	for _, p := range g.Players {
		if p.Disc != nil {
			p.Disc.CMask = p.BaseCMask
		}
	}

	teamGoal := checkGoal(g.stadium, previous)
	if teamGoal != stadium.TeamSpectator {
		g.State = StateGoal
		g.Score.UpdateScore(teamGoal)
		g.Score.EndAnimation(g.Config.GoalAnimationTicks)
		if !g.Score.IsGameOver() {
			// The goal's own team kicks off next: blue if the crossed
			// goal was blue's, red in every other case.
			if teamGoal == stadium.TeamBlue {
				g.TeamKickoff = stadium.TeamBlue
			} else {
				g.TeamKickoff = stadium.TeamRed
			}
		}
	} else if g.Score.IsGameOver() {
		g.State = StateEnd
		g.Score.EndAnimation(g.Config.EndAnimationTicks)
	}
}

// handleGoalState counts down the goal animation, then either ends the
// game or resets for the next kickoff.
func (g *Game) handleGoalState() {
	g.Score.DecrementAnimation()
	if !g.Score.IsAnimation() {
		if g.Score.IsGameOver() {
			g.State = StateEnd
			g.Score.EndAnimation(g.Config.EndAnimationTicks)
		} else {
			g.resetDiscsPositions()
			g.State = StateKickoff
		}
	}
}

// handleEndState counts down the end animation and reports done on its
// last tick.
func (g *Game) handleEndState() bool {
	g.Score.DecrementAnimation()
	return !g.Score.IsAnimation()
}

// resetDiscsPositions restores world discs from the stored template
// (all of them, or just the ball, depending on the kickoff-reset mode)
// and places every player disc back at its team's spawn point, falling
// back to the procedural `(count+1) >> 1` layout when a team has no
// spawn list.
func (g *Game) resetDiscsPositions() {
	gameDiscs := g.stadium.Discs
	storeDiscs := g.stadiumStore.Discs
	if g.stadium.KickoffReset != stadium.KickoffResetFull {
		gameDiscs = gameDiscs[:1]
		storeDiscs = storeDiscs[:1]
	}
	n := utils.MinInt(len(gameDiscs), len(storeDiscs))
	for i := 0; i < n; i++ {
		gameDiscs[i].CopyFrom(storeDiscs[i])
	}

	redCount, blueCount := 0, 0
	redSpawns := g.stadiumStore.RedSpawnPoints
	blueSpawns := g.stadiumStore.BlueSpawnPoints

	for _, p := range g.Players {
		if p.Disc == nil {
			continue
		}
		p.Disc.CopyFrom(&g.stadiumStore.PlayerPhysics.Disc)
		switch p.Team {
		case stadium.TeamRed:
			p.Disc.CGroup |= utils.FlagPlayer | utils.FlagRed
		case stadium.TeamBlue:
			p.Disc.CGroup |= utils.FlagPlayer | utils.FlagBlue
		}
		p.Disc.PlayerID = &p.ID
		// The KO barrier bits are transient state-machine flags, never
		// part of a player's resting mask: the template's default mask
		// (`all`) carries them, so they are stripped here and only the
		// kickoff handler ORs the active one back in.
		p.Disc.CMask &^= utils.FlagRedKO | utils.FlagBlueKO
		p.BaseCMask = p.Disc.CMask

		switch p.Team {
		case stadium.TeamRed:
			p.Disc.Position = spawnPosition(redSpawns, redCount, -g.stadium.SpawnDistance)
			redCount++
		case stadium.TeamBlue:
			p.Disc.Position = spawnPosition(blueSpawns, blueCount, g.stadium.SpawnDistance)
			blueCount++
		}
	}
}

// spawnPosition returns the index-th explicit spawn point for a team, or
// the procedural fallback along x = side with y alternating sign in
// steps of 55 by `(count+1) >> 1`.
func spawnPosition(spawns []utils.Vector, count int, side float64) utils.Vector {
	if len(spawns) > 0 {
		idx := count
		if idx >= len(spawns) {
			idx = len(spawns) - 1
		}
		return spawns[idx]
	}

	y := float64(55 * ((count + 1) >> 1))
	if count%2 == 1 {
		y = -y
	}
	return utils.Vector{X: side, Y: y}
}
