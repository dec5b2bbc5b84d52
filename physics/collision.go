// File: physics/collision.go
package physics

import (
	"math"

	"github.com/arnozoon/haxgo/stadium"
	"github.com/arnozoon/haxgo/utils"
)

// Resolve runs one full contact pass over s. Enumeration
// order is fixed and deterministic -- discs against discs in ascending
// index-pair order, then every disc against segments, planes and
// vertices in their stadium order -- so two runs over the same state
// always produce the same result, the property replay test
// leans on.
func Resolve(s *stadium.Stadium) {
	discs := s.Discs

	for i := 0; i < len(discs); i++ {
		for j := i + 1; j < len(discs); j++ {
			resolveDiscDisc(discs[i], discs[j])
		}
	}

	for _, d := range discs {
		for _, seg := range s.Segments {
			resolveDiscSegment(d, seg)
		}
		for _, p := range s.Planes {
			resolveDiscPlane(d, p)
		}
		for _, v := range s.Vertices {
			resolveDiscVertex(d, v)
		}
	}
}

// separate pushes two discs apart along normal by penetration, weighted
// by their relative inverse masses, and applies the restitution impulse
// along the same axis. invMass == 0 on either side makes it immovable;
// both zero is a no-op (for example an immovable stadium disc against a
// wall, a vertex or another immovable disc).
func separate(a, b *stadium.Disc, normal utils.Vector, penetration, bCoef float64) {
	totalInv := a.InvMass + b.InvMass
	if totalInv == 0 {
		return
	}

	correction := normal.Scale(penetration / totalInv)
	a.Position = a.Position.Sub(correction.Scale(a.InvMass))
	b.Position = b.Position.Add(correction.Scale(b.InvMass))

	relVel := b.Velocity.Sub(a.Velocity)
	closingSpeed := relVel.Dot(normal)
	if closingSpeed >= 0 {
		return // already separating
	}

	impulseMag := -(1 + bCoef) * closingSpeed / totalInv
	impulse := normal.Scale(impulseMag)
	a.Velocity = a.Velocity.Sub(impulse.Scale(a.InvMass))
	b.Velocity = b.Velocity.Add(impulse.Scale(b.InvMass))
}

func resolveDiscDisc(a, b *stadium.Disc) {
	if !utils.CanCollide(a.CGroup, a.CMask, b.CGroup, b.CMask) {
		return
	}

	delta := b.Position.Sub(a.Position)
	distSq := delta.LengthSquared()
	minDist := a.Radius + b.Radius
	if distSq >= minDist*minDist {
		return
	}

	if distSq < 1e-18 {
		return // coincident centers: no usable normal, skip the contact
	}

	dist := math.Sqrt(distSq)
	normal := delta.Scale(1 / dist)

	penetration := minDist - dist
	separate(a, b, normal, penetration, a.BCoef*b.BCoef)
}

// resolveDiscVertexLike treats a fixed point (a segment endpoint, a
// vertex, or the closest point on a segment/arc) as a zero-radius,
// infinite-mass obstacle -- disc-vertex collision, also
// reused by the segment/arc resolvers once they've found their closest
// point.
func resolveDiscVertexLike(d *stadium.Disc, point utils.Vector, bCoef float64) {
	delta := d.Position.Sub(point)
	distSq := delta.LengthSquared()
	if distSq >= d.Radius*d.Radius {
		return
	}
	if distSq < 1e-18 {
		return // disc centre coincident with the fixed point: no usable normal
	}

	dist := math.Sqrt(distSq)
	normal := delta.Scale(1 / dist)

	penetration := d.Radius - dist
	fixed := &stadium.Disc{InvMass: 0}
	separate(fixed, d, normal, penetration, bCoef)
}

func resolveDiscVertex(d *stadium.Disc, v *stadium.Vertex) {
	if !utils.CanCollide(d.CGroup, d.CMask, v.CGroup, v.CMask) {
		return
	}
	resolveDiscVertexLike(d, v.Position, d.BCoef*v.BCoef)
}

func resolveDiscPlane(d *stadium.Disc, p *stadium.Plane) {
	if !utils.CanCollide(d.CGroup, d.CMask, p.CGroup, p.CMask) {
		return
	}

	signedDist := p.Normal.Dot(d.Position) - p.Dist
	if signedDist >= d.Radius {
		return
	}
	if d.Velocity.Dot(p.Normal) >= 0 {
		return // resting on or leaving the plane: no correction
	}

	penetration := d.Radius - signedDist
	fixed := &stadium.Disc{InvMass: 0}
	separate(fixed, d, p.Normal, penetration, d.BCoef*p.BCoef)
}

func resolveDiscSegment(d *stadium.Disc, seg *stadium.Segment) {
	if !utils.CanCollide(d.CGroup, d.CMask, seg.CGroup, seg.CMask) {
		return
	}

	var closest utils.Vector
	if seg.IsArc() {
		closest = closestPointOnArc(d.Position, seg)
	} else {
		closest = closestPointOnLine(d.Position, seg.V0.Position, seg.V1.Position)
	}

	if seg.Bias != 0 {
		// One-sided segment: contact is admitted only when the sign of
		// (disc - v0) x (v1 - v0) matches the bias sign; a disc
		// approaching from the other side passes through.
		edge := seg.V1.Position.Sub(seg.V0.Position)
		side := d.Position.Sub(seg.V0.Position).Cross(edge)
		if (seg.Bias > 0) != (side > 0) {
			return
		}
	}

	resolveDiscVertexLike(d, closest, d.BCoef*seg.BCoef)
}

// closestPointOnLine returns the point on segment [v0,v1] nearest to p.
func closestPointOnLine(p, v0, v1 utils.Vector) utils.Vector {
	edge := v1.Sub(v0)
	lenSq := edge.LengthSquared()
	if lenSq < 1e-12 {
		return v0
	}
	t := p.Sub(v0).Dot(edge) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return v0.Add(edge.Scale(t))
}

// arcGeometry computes the center and radius of the circle that passes
// through a segment's two endpoints subtending the segment's curve angle
// (degrees), the construction the stadium editor's curved walls use. The
// center offset from the chord midpoint is (chord/2)/tan(curve/2), whose
// sign flips on its own both for negative curves and for reflex arcs
// past 180 degrees.
func arcGeometry(seg *stadium.Segment) (center utils.Vector, radius float64, ok bool) {
	v0, v1 := seg.V0.Position, seg.V1.Position
	chord := v1.Sub(v0)
	chordLen := chord.Length()
	if chordLen < 1e-9 {
		return utils.Vector{}, 0, false
	}

	angle := seg.Curve * math.Pi / 180
	sinHalf := math.Sin(angle / 2)
	if math.Abs(sinHalf) < 1e-9 {
		return utils.Vector{}, 0, false
	}

	radius = math.Abs(chordLen / (2 * sinHalf))
	mid := v0.Add(v1).Scale(0.5)
	perp := utils.Vector{X: -chord.Y, Y: chord.X}.Normalized()
	offset := (chordLen / 2) / math.Tan(angle/2)
	center = mid.Add(perp.Scale(offset))
	return center, radius, true
}

// closestPointOnArc finds, for a disc at p, the point on seg's circular
// arc closest to p: the radial projection onto the circle if p's angle
// falls within the arc's sweep between its two endpoints, otherwise the
// nearer endpoint. For a reflex arc (|curve| > 180) the sweep is the
// whole circle minus the minor span between the endpoints.
func closestPointOnArc(p utils.Vector, seg *stadium.Segment) utils.Vector {
	center, radius, ok := arcGeometry(seg)
	if !ok {
		return closestPointOnLine(p, seg.V0.Position, seg.V1.Position)
	}

	toP := p.Sub(center)
	if toP.IsZero() {
		return seg.V0.Position
	}

	v0a := seg.V0.Position.Sub(center).Normalized()
	v1a := seg.V1.Position.Sub(center).Normalized()
	pa := toP.Normalized()

	spanCross := v0a.Cross(v1a)
	inMinorSpan := (v0a.Cross(pa) >= 0) == (spanCross >= 0) && (pa.Cross(v1a) >= 0) == (spanCross >= 0)
	reflex := math.Abs(seg.Curve) > 180
	if inMinorSpan == reflex {
		return closestEndpoint(p, seg)
	}

	return center.Add(pa.Scale(radius))
}

func closestEndpoint(p utils.Vector, seg *stadium.Segment) utils.Vector {
	if utils.Distance(p, seg.V0.Position) <= utils.Distance(p, seg.V1.Position) {
		return seg.V0.Position
	}
	return seg.V1.Position
}
