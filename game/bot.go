// File: game/bot.go
package game

// Action is the per-tick input triple a PlayerHandler resolves into
// movement/kick: Dx, Dy in {-1,0,1}, Kick in {0,1}.
type Action struct {
	Dx, Dy, Kick int
}

// Bot is the policy contract a player's decision logic must satisfy:
// step(game) -> action triple. Any implementation (user-supplied or one
// of the two below) can be attached to a PlayerHandler.
type Bot interface {
	Step(g *Game) Action
}

// ConstantActionBot always returns the same action, optionally mirrored
// for the blue side.
type ConstantActionBot struct {
	Action   Action
	Symmetry bool
}

// NewConstantActionBot builds a bot that plays action every tick.
func NewConstantActionBot(action Action, symmetry bool) *ConstantActionBot {
	return &ConstantActionBot{Action: action, Symmetry: symmetry}
}

// Step returns the configured action, mirroring Dx when Symmetry is set
// so the same bot definition can drive either side of a symmetric
// stadium.
func (b *ConstantActionBot) Step(g *Game) Action {
	a := b.Action
	if b.Symmetry {
		a.Dx = -a.Dx
	}
	return a
}

// ChaseBot drives its player directly toward the ball and kicks whenever
// the ball is within kick reach, the simplest non-trivial policy worth shipping
// alongside ConstantActionBot for manual testing and example harnesses.
type ChaseBot struct {
	PlayerID int
}

func NewChaseBot(playerID int) *ChaseBot {
	return &ChaseBot{PlayerID: playerID}
}

func (b *ChaseBot) Step(g *Game) Action {
	player := g.GetPlayerByID(b.PlayerID)
	ball := g.stadium.Ball()
	if player == nil || player.Disc == nil || ball == nil {
		return Action{}
	}

	delta := ball.Position.Sub(player.Disc.Position)

	action := Action{}
	// Kick only with the ball in reach: a kick held from out of range sets
	// KickCancel, which blocks every later kick until the kick is released.
	reach := g.stadiumStore.PlayerPhysics.KickReach + player.Disc.Radius + ball.Radius
	if delta.Length() < reach {
		action.Kick = 1
	}
	const deadZone = 1.0
	switch {
	case delta.X > deadZone:
		action.Dx = 1
	case delta.X < -deadZone:
		action.Dx = -1
	}
	switch {
	case delta.Y > deadZone:
		action.Dy = 1
	case delta.Y < -deadZone:
		action.Dy = -1
	}
	return action
}
