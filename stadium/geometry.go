// File: stadium/geometry.go
package stadium

import (
	"github.com/arnozoon/haxgo/utils"
)

// TeamID identifies a side, mirroring the three-value team enum used
// throughout the simulation (spectator, red, blue).
type TeamID int

const (
	TeamSpectator TeamID = iota
	TeamRed
	TeamBlue
)

func (t TeamID) String() string {
	switch t {
	case TeamRed:
		return "red"
	case TeamBlue:
		return "blue"
	default:
		return "spectator"
	}
}

// Disc is a mobile circular rigid body. The ball and every player both
// resolve to a Disc; there is no separate ball type.
type Disc struct {
	Position utils.Vector
	Velocity utils.Vector
	Gravity  utils.Vector

	Radius   float64
	InvMass  float64 // 0 => immovable
	Damping  float64
	BCoef    float64 // restitution, composed multiplicatively across contacts

	CGroup utils.CollisionFlag
	CMask  utils.CollisionFlag

	Color utils.Color

	// PlayerID is an identity-only back-reference; nil for discs with no owning player (the ball, loose
	// stadium discs).
	PlayerID *int
}

// Clone returns a deep copy of d (Vector/Color are value types, PlayerID
// needs its own allocation since it is a pointer).
func (d *Disc) Clone() *Disc {
	clone := *d
	if d.PlayerID != nil {
		id := *d.PlayerID
		clone.PlayerID = &id
	}
	return &clone
}

// CopyFrom overwrites d's physical state from src, used by the kickoff
// reset. The reset re-applies collision group and player identity
// itself right after copying the rest of the disc.
func (d *Disc) CopyFrom(src *Disc) {
	d.Position = src.Position
	d.Velocity = src.Velocity
	d.Gravity = src.Gravity
	d.Radius = src.Radius
	d.InvMass = src.InvMass
	d.Damping = src.Damping
	d.BCoef = src.BCoef
	d.CGroup = src.CGroup
	d.CMask = src.CMask
	d.Color = src.Color
}

// PlayerPhysics is the template every player's disc is instantiated
// from, plus the movement/kick tunables the player handler reads. These
// are not part of the generic Disc data model since they are
// meaningless for the ball or static stadium discs.
type PlayerPhysics struct {
	Disc

	Acceleration        float64
	KickingAcceleration float64
	KickStrength        float64
	KickReach           float64
}

// Clone returns a deep copy.
func (p *PlayerPhysics) Clone() *PlayerPhysics {
	clone := *p
	clone.Disc = *p.Disc.Clone()
	return &clone
}

// Vertex is a point obstacle; discs collide with it as a zero-radius
// immovable disc.
type Vertex struct {
	Position utils.Vector
	BCoef    float64
	CGroup   utils.CollisionFlag
	CMask    utils.CollisionFlag
}

// Segment is a boundary edge between two Vertex endpoints, straight or
// arced.
type Segment struct {
	V0, V1 *Vertex
	Curve  float64 // signed curvature in degrees; 0 => straight line
	BCoef  float64
	CGroup utils.CollisionFlag
	CMask  utils.CollisionFlag
	Bias   float64 // one-sided collision when non-zero
}

// IsArc reports whether the segment curves.
func (s *Segment) IsArc() bool {
	return s.Curve != 0
}

// Plane is an infinite half-space.
type Plane struct {
	Normal utils.Vector // unit normal
	Dist   float64      // signed distance from origin
	BCoef  float64
	CGroup utils.CollisionFlag
	CMask  utils.CollisionFlag
}

// Goal is a scoring trigger between two endpoints, not a physics body:
// it carries no physical fields and nothing ever collides with it.
type Goal struct {
	P0, P1 utils.Vector
	Team   TeamID
}
