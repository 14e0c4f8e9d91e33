package parts

import (
	"github.com/chewxy/math32"

	"botforge/internal/placement"
	"botforge/internal/resolution"
	"botforge/internal/seedstream"
)

// BuildLocomotion emits one locomotion-unit subtree. The local origin is the
// unit's attachment point on the underside of the torso; units extend down
// -Y. Wheel-style units have their axle along X so they roll along Z.
//
// LocoBipedal is the delegation entry: it emits a mirrored pair of legs with
// a stream-picked leg tag, sized from d. The assembly engine normally builds
// bipedal robots from the leg catalog directly (the blueprint carries the leg
// tag); this entry keeps the catalog total on its own.
func BuildLocomotion(tag LocoTag, d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	switch tag {
	case LocoBipedal:
		return locoBipedal(d, c, rs, p, solid)
	case LocoTracked:
		return locoTracked(d, c, rs, p, solid)
	case LocoHover:
		return locoHover(d, c, rs, p, solid)
	case LocoWheel:
		return locoWheel(d, c, rs, p, solid)
	case LocoHubWheel:
		return locoHubWheel(d, c, rs, p, solid)
	case LocoSpokeWheel:
		return locoSpokeWheel(d, c, rs, p, solid)
	}
	panic("parts: unregistered locomotion tag " + tag.String())
}

func locoBipedal(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	legTag := seedstream.Pick(rs, LegTags())
	legDims := Dims{W: d.W * 0.35, H: d.W * 1.6}
	g := placement.NewGroup()
	left := BuildLeg(legTag, legDims, c, rs, p, solid)
	left.Position = [3]float32{-d.W * 0.45, 0, 0}
	right := BuildLeg(legTag, legDims, c, rs, p, solid)
	right.Position = [3]float32{d.W * 0.45, 0, 0}
	return g.Add(left, right)
}

// locoTracked: track slab with 3..5 road wheels along its length.
func locoTracked(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	u := d.W
	wheels := rs.IntInclusive(3, 5)
	g := placement.NewGroup()
	g.Add(placement.PrimAt(placement.Box(u*0.5, u*0.55, u*1.9, p), c, solid, 0, -u*0.3, 0))
	for i := 0; i < wheels; i++ {
		z := u * (-0.7 + 1.4*float32(i)/float32(wheels-1))
		wheel := placement.NewGroup().At(0, -u*0.45, z).Rotated(0, 0, math32.Pi/2)
		wheel.Add(placement.Prim(placement.Cylinder(u*0.22, u*0.22, u*0.56, p), c, solid))
		g.Add(wheel)
	}
	return g
}

// locoHover: flattened pod with a thruster cone; sometimes a skirt ring.
func locoHover(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	u := d.W
	g := placement.NewGroup()
	pod := placement.NewGroup().At(0, -u*0.25, 0).Scaled(1, 0.45, 1)
	pod.Add(placement.Prim(placement.Sphere(u*0.55, p), c, solid))
	g.Add(pod)
	g.Add(placement.PrimAt(placement.Cylinder(u*0.28, 0, u*0.4, p), c, solid, 0, -u*0.6, 0))
	if rs.Chance(0.5) {
		g.Add(placement.PrimAt(placement.Torus(u*0.5, u*0.07, p), c, solid, 0, -u*0.25, 0))
	}
	return g
}

// locoWheel: plain disc wheel with a hub sphere.
func locoWheel(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	u := d.W
	r := u * float32(rs.Range(0.4, 0.55))
	g := placement.NewGroup()
	wheel := placement.NewGroup().At(0, -r, 0).Rotated(0, 0, math32.Pi/2)
	wheel.Add(placement.Prim(placement.Cylinder(r, r, u*0.3, p), c, solid))
	g.Add(wheel, placement.PrimAt(placement.Sphere(u*0.14, p), c, solid, 0, -r, 0))
	return g
}

// locoHubWheel: torus tire around a boxy hub, cluster style one.
func locoHubWheel(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	u := d.W
	r := u * float32(rs.Range(0.38, 0.5))
	g := placement.NewGroup()
	wheel := placement.NewGroup().At(0, -r, 0).Rotated(0, 0, math32.Pi/2)
	wheel.Add(
		placement.Prim(placement.Torus(r, u*0.12, p), c, solid),
		placement.Prim(placement.Box(u*0.26, r*1.1, r*1.1, p), c, solid),
	)
	return g.Add(wheel)
}

// locoSpokeWheel: torus tire with 3..6 radial spokes, cluster style two.
func locoSpokeWheel(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	u := d.W
	r := u * float32(rs.Range(0.42, 0.55))
	spokes := rs.IntInclusive(3, 6)
	g := placement.NewGroup()
	wheel := placement.NewGroup().At(0, -r, 0).Rotated(0, 0, math32.Pi/2)
	wheel.Add(placement.Prim(placement.Torus(r, u*0.09, p), c, solid))
	for i := 0; i < spokes; i++ {
		ang := math32.Pi * 2 * float32(i) / float32(spokes)
		spoke := placement.NewGroup().Rotated(0, ang, 0)
		spoke.Add(placement.PrimAt(placement.Box(u*0.08, u*0.08, r, p), c, solid, 0, 0, r*0.5))
		wheel.Add(spoke)
	}
	return g.Add(wheel)
}
