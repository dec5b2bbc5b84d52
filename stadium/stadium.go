// File: stadium/stadium.go
package stadium

import "github.com/arnozoon/haxgo/utils"

// KickoffReset selects how much of the world resets after a goal:
// every disc, or only the ball.
type KickoffReset string

const (
	KickoffResetFull    KickoffReset = "full"
	KickoffResetPartial KickoffReset = "partial"
)

// Stadium owns every physics entity and the spawn/goal configuration of a
// map. The template instance is loaded once and never
// mutated; the live instance used by a running game is produced by Clone.
type Stadium struct {
	Name string

	Discs    []*Disc
	Segments []*Segment
	Planes   []*Plane
	Vertices []*Vertex
	Goals    []*Goal

	RedSpawnPoints  []utils.Vector
	BlueSpawnPoints []utils.Vector

	// PlayerPhysics is the template disc every player's disc is (re)created
	// from.
	PlayerPhysics *PlayerPhysics

	SpawnDistance float64
	KickoffReset  KickoffReset

	Traits map[string]Trait
}

// Clone performs the deep copy required between the stored stadium
// template and the live game instance. No slice, pointer or map is
// shared with the receiver, except the Traits table, which is read-only
// after load.
func (s *Stadium) Clone() *Stadium {
	clone := &Stadium{
		Name:          s.Name,
		SpawnDistance: s.SpawnDistance,
		KickoffReset:  s.KickoffReset,
	}

	clone.Discs = make([]*Disc, len(s.Discs))
	for i, d := range s.Discs {
		clone.Discs[i] = d.Clone()
	}

	vertexIndex := make(map[*Vertex]*Vertex, len(s.Vertices))
	clone.Vertices = make([]*Vertex, len(s.Vertices))
	for i, v := range s.Vertices {
		nv := *v
		clone.Vertices[i] = &nv
		vertexIndex[v] = &nv
	}

	clone.Segments = make([]*Segment, len(s.Segments))
	for i, seg := range s.Segments {
		nseg := *seg
		nseg.V0 = vertexIndex[seg.V0]
		nseg.V1 = vertexIndex[seg.V1]
		clone.Segments[i] = &nseg
	}

	clone.Planes = make([]*Plane, len(s.Planes))
	for i, p := range s.Planes {
		np := *p
		clone.Planes[i] = &np
	}

	clone.Goals = make([]*Goal, len(s.Goals))
	for i, g := range s.Goals {
		ng := *g
		clone.Goals[i] = &ng
	}

	clone.RedSpawnPoints = append([]utils.Vector(nil), s.RedSpawnPoints...)
	clone.BlueSpawnPoints = append([]utils.Vector(nil), s.BlueSpawnPoints...)

	if s.PlayerPhysics != nil {
		clone.PlayerPhysics = s.PlayerPhysics.Clone()
	}

	clone.Traits = s.Traits // traits are read-only after load, safe to share

	return clone
}

// Ball returns discs[0], the reserved ball slot.
func (s *Stadium) Ball() *Disc {
	if len(s.Discs) == 0 {
		return nil
	}
	return s.Discs[0]
}
