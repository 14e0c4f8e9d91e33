package parts

import (
	"botforge/internal/placement"
	"botforge/internal/resolution"
	"botforge/internal/seedstream"
)

// BuildAntenna emits the optional antenna accessory. The local origin is the
// mast base, sitting on top of the head.
func BuildAntenna(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	s := d.W
	mast := s * float32(rs.Range(0.8, 1.6))
	g := placement.NewGroup()
	g.Add(
		placement.PrimAt(placement.Cylinder(s*0.04, s*0.06, mast, p), c, solid, 0, mast*0.5, 0),
		placement.PrimAt(placement.Sphere(s*0.1, p), c, solid, 0, mast, 0),
	)
	if rs.Chance(0.4) {
		// side whisker
		g.Add(placement.PrimAt(placement.Cylinder(s*0.03, s*0.03, mast*0.5, p), c, solid, s*0.12, mast*0.6, 0))
	}
	return g
}

// BuildBackpack emits the optional backpack accessory. The local origin is
// the pack center, sitting against the torso's back face.
func BuildBackpack(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	g := placement.NewGroup()
	g.Add(placement.Prim(placement.Box(d.W, d.H, d.D, p), c, solid))
	tanks := rs.IntInclusive(1, 3)
	span := d.W * 0.6
	for i := 0; i < tanks; i++ {
		x := float32(0)
		if tanks > 1 {
			x = -span/2 + span*float32(i)/float32(tanks-1)
		}
		g.Add(placement.PrimAt(placement.Cylinder(d.W*0.14, d.W*0.14, d.H*0.85, p), c, solid, x, 0, -d.D*0.6))
	}
	return g
}
