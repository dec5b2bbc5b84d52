// File: stadium/loader.go
package stadium

import (
	"encoding/json"

	"github.com/arnozoon/haxgo/utils"
)

// Load parses a `.hbs` stadium description and resolves it into a ready
// Stadium template. Resolution runs in a fixed order: decode raw JSON,
// resolve vertices, resolve segments/planes against those vertices,
// resolve discs and the ball, then spawn points. Every field follows a
// three-step lookup -- explicit value, named trait, hard default.
func Load(data []byte, cfg utils.Config) (*Stadium, error) {
	var raw rawStadium
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, newInvalidError("malformed json: %v", err)
	}

	traits := make(map[string]Trait, len(raw.Traits))
	for name, rt := range raw.Traits {
		traits[name] = rt.toTrait()
	}

	s := &Stadium{
		Name:   raw.Name,
		Traits: traits,
	}

	s.SpawnDistance = cfg.DefaultSpawnDistance
	if raw.SpawnDistance != nil {
		s.SpawnDistance = *raw.SpawnDistance
	}

	switch raw.KickoffReset {
	case "", string(KickoffResetFull):
		s.KickoffReset = KickoffResetFull
	case string(KickoffResetPartial):
		s.KickoffReset = KickoffResetPartial
	default:
		return nil, newInvalidError("unknown kickoffReset %q", raw.KickoffReset)
	}

	vertices, err := resolveVertices(raw.Vertexes, traits)
	if err != nil {
		return nil, err
	}
	s.Vertices = vertices

	segments, err := resolveSegments(raw.Segments, vertices, traits)
	if err != nil {
		return nil, err
	}
	s.Segments = segments

	s.Planes = resolvePlanes(raw.Planes, traits)

	goals, err := resolveGoals(raw.Goals)
	if err != nil {
		return nil, err
	}
	s.Goals = goals

	ball, staticDiscRaws, err := resolveBall(raw.Ball, raw.Discs, traits, cfg)
	if err != nil {
		return nil, err
	}

	s.Discs = make([]*Disc, 0, len(staticDiscRaws)+1)
	s.Discs = append(s.Discs, ball)
	for _, rd := range staticDiscRaws {
		s.Discs = append(s.Discs, resolveDisc(rd, traits, genericDiscDefaults(cfg)))
	}

	s.PlayerPhysics = resolvePlayerPhysics(raw.PlayerPhysics, traits, cfg)

	s.RedSpawnPoints = toVectors(raw.RedSpawnPoints)
	s.BlueSpawnPoints = toVectors(raw.BlueSpawnPoints)

	return s, nil
}

func toVectors(vs []rawVec) []utils.Vector {
	out := make([]utils.Vector, len(vs))
	for i, v := range vs {
		out[i] = utils.Vector{X: v[0], Y: v[1]}
	}
	return out
}

// discDefaults bundles the hard-coded fallback values used when neither
// the raw object nor its trait specifies a field. Ball, static stadium
// discs and player discs each carry their own defaults.
type discDefaults struct {
	radius  float64
	invMass float64
	damping float64
	bCoef   float64
	cGroup  utils.CollisionFlag
	cMask   utils.CollisionFlag
}

func ballDiscDefaults(cfg utils.Config) discDefaults {
	return discDefaults{
		radius:  cfg.DefaultBallRadius,
		invMass: cfg.DefaultBallInvMass,
		damping: cfg.DefaultBallDamping,
		bCoef:   cfg.DefaultBallBCoef,
		cGroup:  utils.FlagBall,
		cMask:   utils.FlagAll,
	}
}

func playerDiscDefaults(cfg utils.Config) discDefaults {
	return discDefaults{
		radius:  15,
		invMass: 1,
		damping: 0.96,
		bCoef:   0.5,
		cGroup:  utils.FlagPlayer,
		cMask:   utils.FlagAll,
	}
}

func genericDiscDefaults(cfg utils.Config) discDefaults {
	return discDefaults{
		radius:  cfg.DefaultBallRadius,
		invMass: 1,
		damping: 1,
		bCoef:   1,
		cGroup:  utils.FlagC0,
		cMask:   utils.FlagAll,
	}
}

// resolveBall implements the three forms allowed for the top-level
// "ball" key: absent (hard defaults only), the string "disc0" (reuse
// discs[0]'s raw definition and drop it from the static disc list), or
// an inline disc object.
func resolveBall(raw *rawBall, discs []rawDisc, traits map[string]Trait, cfg utils.Config) (*Disc, []rawDisc, error) {
	defaults := ballDiscDefaults(cfg)

	// Invariant: whatever form the ball resolves from, its
	// collision group always includes ball|kick|score so the goal
	// detector and kick-eligibility check can rely on it unconditionally.
	finish := func(d *Disc) *Disc {
		d.CGroup |= utils.FlagBall | utils.FlagKick | utils.FlagScore
		return d
	}

	if raw == nil || !raw.present {
		return finish(resolveDisc(rawDisc{}, nil, defaults)), discs, nil
	}

	if raw.isString {
		if raw.str != "disc0" {
			return nil, nil, newInvalidError("unknown ball reference %q", raw.str)
		}
		if len(discs) == 0 {
			return nil, nil, newInvalidError("ball references disc0 but no discs are defined")
		}
		return finish(resolveDisc(discs[0], traits, defaults)), discs[1:], nil
	}

	d := resolveDisc(raw.disc, traits, defaults)
	d.Position = utils.Vector{} // inline ball form: position is always forced to origin
	return finish(d), discs, nil
}

func resolveDisc(rd rawDisc, traits map[string]Trait, def discDefaults) *Disc {
	t := applyTraitToFields(rd.Trait, traits)

	d := &Disc{
		Position: rd.position(),
		Radius:   resolveFloat(rd.Radius, t.Radius, def.radius),
		InvMass:  resolveFloat(rd.InvMass, t.InvMass, def.invMass),
		Damping:  resolveFloat(rd.Damping, t.Damping, def.damping),
		BCoef:    resolveFloat(rd.BCoef, t.BCoef, def.bCoef),
		CGroup:   resolveFlags(rd.CGroup, t.CGroup, def.cGroup),
		CMask:    resolveFlags(rd.CMask, t.CMask, def.cMask),
		Color:    resolveColor(rd.Color, t.Color),
	}

	if rd.Speed != nil {
		d.Velocity = utils.Vector{X: rd.Speed[0], Y: rd.Speed[1]}
	}
	if rd.Gravity != nil {
		d.Gravity = utils.Vector{X: rd.Gravity[0], Y: rd.Gravity[1]}
	}

	return d
}

func resolvePlayerPhysics(rd rawDisc, traits map[string]Trait, cfg utils.Config) *PlayerPhysics {
	disc := resolveDisc(rd, traits, playerDiscDefaults(cfg))
	return &PlayerPhysics{
		Disc:                *disc,
		Acceleration:        resolveFloat(rd.Acceleration, nil, cfg.DefaultPlayerAcceleration),
		KickingAcceleration: resolveFloat(rd.KickingAcceleration, nil, cfg.DefaultKickingAcceleration),
		KickStrength:        resolveFloat(rd.KickStrength, nil, cfg.DefaultKickStrength),
		KickReach:           resolveFloat(rd.KickReach, nil, cfg.DefaultKickReach),
	}
}

func resolveVertices(raw []rawVertex, traits map[string]Trait) ([]*Vertex, error) {
	out := make([]*Vertex, len(raw))
	for i, rv := range raw {
		t := applyTraitToFields(rv.Trait, traits)
		out[i] = &Vertex{
			Position: utils.Vector{X: rv.X, Y: rv.Y},
			BCoef:    resolveFloat(rv.BCoef, t.BCoef, 1),
			CGroup:   resolveFlags(rv.CGroup, t.CGroup, utils.FlagWall),
			CMask:    resolveFlags(rv.CMask, t.CMask, utils.FlagAll),
		}
	}
	return out, nil
}

func resolveSegments(raw []rawSegment, vertices []*Vertex, traits map[string]Trait) ([]*Segment, error) {
	out := make([]*Segment, len(raw))
	for i, rs := range raw {
		if rs.V0 < 0 || rs.V0 >= len(vertices) || rs.V1 < 0 || rs.V1 >= len(vertices) {
			return nil, newInvalidError("segment %d references out-of-range vertex", i)
		}
		t := applyTraitToFields(rs.Trait, traits)
		out[i] = &Segment{
			V0:     vertices[rs.V0],
			V1:     vertices[rs.V1],
			Curve:  resolveFloat(rs.Curve, t.Curve, 0),
			BCoef:  resolveFloat(rs.BCoef, t.BCoef, 1),
			CGroup: resolveFlags(rs.CGroup, t.CGroup, utils.FlagWall),
			CMask:  resolveFlags(rs.CMask, t.CMask, utils.FlagAll),
			Bias:   resolveFloat(rs.Bias, t.Bias, 0),
		}
	}
	return out, nil
}

func resolvePlanes(raw []rawPlane, traits map[string]Trait) []*Plane {
	out := make([]*Plane, len(raw))
	for i, rp := range raw {
		t := applyTraitToFields(rp.Trait, traits)
		out[i] = &Plane{
			Normal: utils.Vector{X: rp.Normal[0], Y: rp.Normal[1]}.Normalized(),
			Dist:   rp.Dist,
			BCoef:  resolveFloat(rp.BCoef, t.BCoef, 1),
			CGroup: resolveFlags(rp.CGroup, t.CGroup, utils.FlagWall),
			CMask:  resolveFlags(rp.CMask, t.CMask, utils.FlagAll),
		}
	}
	return out
}

func resolveGoals(raw []rawGoal) ([]*Goal, error) {
	out := make([]*Goal, len(raw))
	for i, rg := range raw {
		var team TeamID
		switch rg.Team {
		case "red":
			team = TeamRed
		case "blue":
			team = TeamBlue
		default:
			return nil, newInvalidError("goal %d has unknown team %q", i, rg.Team)
		}
		out[i] = &Goal{
			P0:   utils.Vector{X: rg.P0[0], Y: rg.P0[1]},
			P1:   utils.Vector{X: rg.P1[0], Y: rg.P1[1]},
			Team: team,
		}
	}
	return out, nil
}

func resolveFloat(explicit, trait *float64, def float64) float64 {
	if explicit != nil {
		return *explicit
	}
	if trait != nil {
		return *trait
	}
	return def
}

func resolveFlags(explicit, trait []string, def utils.CollisionFlag) utils.CollisionFlag {
	if explicit != nil {
		return utils.FlagsFromNames(explicit)
	}
	if trait != nil {
		return utils.FlagsFromNames(trait)
	}
	return def
}

func resolveColor(explicit, trait []int) utils.Color {
	vals := explicit
	if vals == nil {
		vals = trait
	}
	if len(vals) < 3 {
		return utils.NewRandomColor()
	}
	c := utils.Color{R: uint8(vals[0]), G: uint8(vals[1]), B: uint8(vals[2]), A: 255}
	if len(vals) >= 4 {
		c.A = uint8(vals[3])
	}
	return c
}
