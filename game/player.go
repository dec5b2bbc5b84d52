// File: game/player.go
package game

import (
	"github.com/arnozoon/haxgo/stadium"
	"github.com/arnozoon/haxgo/utils"
)

// PlayerHandler owns a player's identity, disc and transient input
// state, and turns the per-tick action triple into a movement force and
// kick impulse on the disc.
type PlayerHandler struct {
	Name string
	ID   int
	Team stadium.TeamID

	// Disc is the player's own disc. It is the same pointer the live
	// stadium's Discs slice holds from Game.Start to Game.Stop --
	// never copied, never reassigned independently of the stadium.
	Disc *stadium.Disc

	// BaseCMask is the disc's resolved collision mask from the stadium's
	// player_physics template with the transient REDKO/BLUEKO bits
	// stripped, captured whenever the disc is (re)placed. The state
	// machine ORs the active KO barrier bit onto this baseline instead
	// of replacing the mask outright, so a player's normal ball/wall
	// collisions survive the kickoff barrier toggling and no KO bit
	// lingers outside KICKOFF.
	BaseCMask utils.CollisionFlag

	Action Action

	Kicking    bool
	KickCancel bool

	Bot Bot
}

// NewPlayerHandler builds a handler with no disc yet; Game.Start
// injects one.
func NewPlayerHandler(name string, id int, team stadium.TeamID, bot Bot) *PlayerHandler {
	return &PlayerHandler{Name: name, ID: id, Team: team, Bot: bot}
}

// Step delegates to the attached bot, or returns the zero action if none
// is attached.
func (p *PlayerHandler) Step(g *Game) Action {
	if p.Bot == nil {
		return Action{}
	}
	return p.Bot.Step(g)
}

// normalizeAction clamps an externally supplied action to the legal
// ranges: dx, dy in {-1,0,1}, kick in {0,1}. Out-of-range input is
// clamped, never rejected; the zero value stands in for a missing
// action.
func normalizeAction(a Action) Action {
	return Action{
		Dx:   clamp(a.Dx, -1, 1),
		Dy:   clamp(a.Dy, -1, 1),
		Kick: clamp(a.Kick, 0, 1),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// resolveMovement applies the player's current action to its disc's
// velocity. Movement force is the unit-normalized (dx,dy)
// scaled by the player_physics acceleration (kicking_acceleration while a
// kick is in progress), and a kick impulse is applied once per successful
// kick against the nearest kick-eligible disc within kick_reach.
func (p *PlayerHandler) resolveMovement(s *stadium.Stadium, pp *stadium.PlayerPhysics) {
	if p.Disc == nil {
		return
	}

	move := utils.Vector{X: float64(p.Action.Dx), Y: float64(p.Action.Dy)}
	if !move.IsZero() {
		accel := pp.Acceleration
		if p.Kicking {
			accel = pp.KickingAcceleration
		}
		p.Disc.Velocity = p.Disc.Velocity.Add(move.Normalized().Scale(accel))
	}

	if p.Action.Kick == 1 {
		if !p.KickCancel {
			target := p.findKickTarget(s, pp.KickReach)
			if target != nil {
				p.Kicking = true
				direction := target.Position.Sub(p.Disc.Position).Normalized()
				target.Velocity = target.Velocity.Add(direction.Scale(pp.KickStrength))
			}
		}
		if !p.Kicking {
			p.KickCancel = true
		}
	} else {
		p.Kicking = false
		p.KickCancel = false
	}
}

// findKickTarget returns the nearest disc carrying the `kick` collision
// flag within reach of p's disc, or nil. Ties are broken by stadium disc
// order, keeping resolution deterministic.
func (p *PlayerHandler) findKickTarget(s *stadium.Stadium, reach float64) *stadium.Disc {
	var best *stadium.Disc
	bestDist := reach + p.Disc.Radius
	for _, d := range s.Discs {
		if d == p.Disc {
			continue
		}
		if !d.CGroup.Has(utils.FlagKick) {
			continue
		}
		dist := utils.Distance(p.Disc.Position, d.Position) - d.Radius
		if dist < bestDist {
			best = d
			bestDist = dist
		}
	}
	return best
}
