// File: stadium/raw.go
package stadium

import (
	"encoding/json"

	"github.com/arnozoon/haxgo/utils"
)

// The raw* types are the `.hbs` wire schema: camelCase JSON, optional
// fields left unresolved until trait/default resolution runs. Pointers
// distinguish "absent" from an explicit zero.
type rawVec [2]float64

type rawTrait struct {
	BCoef   *float64  `json:"bCoef,omitempty"`
	CGroup  []string  `json:"cGroup,omitempty"`
	CMask   []string  `json:"cMask,omitempty"`
	Radius  *float64  `json:"radius,omitempty"`
	InvMass *float64  `json:"invMass,omitempty"`
	Damping *float64  `json:"damping,omitempty"`
	Bias    *float64  `json:"bias,omitempty"`
	Curve   *float64  `json:"curve,omitempty"`
	Color   []int     `json:"color,omitempty"`
}

func (rt rawTrait) toTrait() Trait {
	return Trait{
		BCoef:   rt.BCoef,
		CGroup:  rt.CGroup,
		CMask:   rt.CMask,
		Radius:  rt.Radius,
		InvMass: rt.InvMass,
		Damping: rt.Damping,
		Bias:    rt.Bias,
		Curve:   rt.Curve,
		Color:   rt.Color,
	}
}

type rawVertex struct {
	X      float64  `json:"x"`
	Y      float64  `json:"y"`
	BCoef  *float64 `json:"bCoef,omitempty"`
	CGroup []string `json:"cGroup,omitempty"`
	CMask  []string `json:"cMask,omitempty"`
	Trait  *string  `json:"trait,omitempty"`
}

type rawSegment struct {
	V0     int      `json:"v0"`
	V1     int      `json:"v1"`
	Curve  *float64 `json:"curve,omitempty"`
	BCoef  *float64 `json:"bCoef,omitempty"`
	CGroup []string `json:"cGroup,omitempty"`
	CMask  []string `json:"cMask,omitempty"`
	Bias   *float64 `json:"bias,omitempty"`
	Trait  *string  `json:"trait,omitempty"`
}

type rawPlane struct {
	Normal rawVec   `json:"normal"`
	Dist   float64  `json:"dist"`
	BCoef  *float64 `json:"bCoef,omitempty"`
	CGroup []string `json:"cGroup,omitempty"`
	CMask  []string `json:"cMask,omitempty"`
	Trait  *string  `json:"trait,omitempty"`
}

type rawDisc struct {
	Pos      *rawVec  `json:"pos,omitempty"`
	X        *float64 `json:"x,omitempty"`
	Y        *float64 `json:"y,omitempty"`
	Speed    *rawVec  `json:"speed,omitempty"`
	Gravity  *rawVec  `json:"gravity,omitempty"`
	Radius   *float64 `json:"radius,omitempty"`
	InvMass  *float64 `json:"invMass,omitempty"`
	Damping  *float64 `json:"damping,omitempty"`
	BCoef    *float64 `json:"bCoef,omitempty"`
	CGroup   []string `json:"cGroup,omitempty"`
	CMask    []string `json:"cMask,omitempty"`
	Color    []int    `json:"color,omitempty"`
	Trait    *string  `json:"trait,omitempty"`

	// Movement/kick tunables, meaningful only on the playerPhysics object.
	Acceleration        *float64 `json:"acceleration,omitempty"`
	KickingAcceleration *float64 `json:"kickingAcceleration,omitempty"`
	KickStrength        *float64 `json:"kickStrength,omitempty"`
	KickReach           *float64 `json:"kickReach,omitempty"`
}

func (rd rawDisc) position() utils.Vector {
	if rd.Pos != nil {
		return utils.Vector{X: rd.Pos[0], Y: rd.Pos[1]}
	}
	var x, y float64
	if rd.X != nil {
		x = *rd.X
	}
	if rd.Y != nil {
		y = *rd.Y
	}
	return utils.Vector{X: x, Y: y}
}

type rawGoal struct {
	P0    rawVec  `json:"p0"`
	P1    rawVec  `json:"p1"`
	Team  string  `json:"team"`
	Trait *string `json:"trait,omitempty"`
}

// rawBall handles the three forms the wire schema allows: absent, the
// literal string "disc0", or an inline disc object.
type rawBall struct {
	isString bool
	str      string
	disc     rawDisc
	present  bool
}

func (b *rawBall) UnmarshalJSON(data []byte) error {
	b.present = true
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		b.isString = true
		b.str = s
		return nil
	}
	var d rawDisc
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	b.disc = d
	return nil
}

type rawStadium struct {
	Name            string              `json:"name"`
	SpawnDistance   *float64            `json:"spawnDistance,omitempty"`
	KickoffReset    string              `json:"kickoffReset,omitempty"`
	Traits          map[string]rawTrait `json:"traits,omitempty"`
	Vertexes        []rawVertex         `json:"vertexes"`
	Segments        []rawSegment        `json:"segments"`
	Planes          []rawPlane          `json:"planes"`
	Discs           []rawDisc           `json:"discs"`
	Goals           []rawGoal           `json:"goals"`
	RedSpawnPoints  []rawVec            `json:"redSpawnPoints,omitempty"`
	BlueSpawnPoints []rawVec            `json:"blueSpawnPoints,omitempty"`
	PlayerPhysics   rawDisc             `json:"playerPhysics"`
	Ball            *rawBall            `json:"ball,omitempty"`
}
