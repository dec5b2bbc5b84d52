// File: utils/flags.go
package utils

import "strings"

// CollisionFlag is a bitmask over the fixed flag set a disc/segment/plane/
// vertex carries as its collision group and mask. Contact between two
// bodies a, b is admitted iff (a.Group & b.Mask) != 0 && (b.Group & a.Mask) != 0.
// A single disc belongs to several groups at once (e.g. ball|kick|score).
type CollisionFlag uint32

const (
	FlagBall CollisionFlag = 1 << iota
	FlagRed
	FlagBlue
	FlagRedKO
	FlagBlueKO
	FlagWall
	flagAllBit // placeholder bit position; FlagAll below is composite, not this bit
	FlagKick
	FlagScore
	FlagC0
	FlagC1
	FlagC2
	FlagC3
	FlagPlayer
)

// FlagAll is a composite mask, not its own bit: the union of every
// "everyday" flag a piece of wall/disc geometry collides against by
// default. KICK/SCORE/C0-C3/PLAYER are deliberately excluded, so a
// stadium's default cMask:["all"] does not implicitly admit kick/score
// contacts that a disc's own explicit flags must opt into.
const FlagAll = FlagBall | FlagRed | FlagBlue | FlagRedKO | FlagBlueKO | FlagWall

// namedFlags is the string vocabulary accepted by stadium description
// files for c_group/c_mask lists.
var namedFlags = map[string]CollisionFlag{
	"ball":   FlagBall,
	"red":    FlagRed,
	"blue":   FlagBlue,
	"redKO":  FlagRedKO,
	"blueKO": FlagBlueKO,
	"wall":   FlagWall,
	"all":    FlagAll,
	"kick":   FlagKick,
	"score":  FlagScore,
	"c0":     FlagC0,
	"c1":     FlagC1,
	"c2":     FlagC2,
	"c3":     FlagC3,
	"player": FlagPlayer,
}

// FlagsFromNames ORs together the flags named in names, silently
// ignoring unknown names; the loader does not report them either.
func FlagsFromNames(names []string) CollisionFlag {
	var f CollisionFlag
	for _, n := range names {
		if flag, ok := namedFlags[n]; ok {
			f |= flag
		}
	}
	return f
}

// Has reports whether f carries every bit in other.
func (f CollisionFlag) Has(other CollisionFlag) bool {
	return f&other == other
}

// Intersects reports whether f and other share any bit.
func (f CollisionFlag) Intersects(other CollisionFlag) bool {
	return f&other != 0
}

func (f CollisionFlag) String() string {
	if f == 0 {
		return "none"
	}
	var names []string
	for name, flag := range namedFlags {
		if f&flag != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}

// CanCollide is the admission test: contact between a and b is
// considered iff each side's group intersects the other's mask.
func CanCollide(groupA, maskA, groupB, maskB CollisionFlag) bool {
	return groupA.Intersects(maskB) && groupB.Intersects(maskA)
}
