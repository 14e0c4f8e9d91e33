package parts

import (
	"botforge/internal/placement"
	"botforge/internal/resolution"
	"botforge/internal/seedstream"
)

// BuildTorso emits the torso subtree for the given tag. The local origin is
// the torso center; the body spans [-H/2, H/2] vertically so the assembly
// engine can attach the head and legs at the half-height line.
func BuildTorso(tag TorsoTag, d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	switch tag {
	case TorsoBlock:
		return torsoBlock(d, c, rs, p, solid)
	case TorsoBarrel:
		return torsoBarrel(d, c, rs, p, solid)
	case TorsoCage:
		return torsoCage(d, c, rs, p, solid)
	case TorsoTaper:
		return torsoTaper(d, c, rs, p, solid)
	case TorsoSphere:
		return torsoSphere(d, c, rs, p, solid)
	case TorsoVented:
		return torsoVented(d, c, rs, p, solid)
	case TorsoPlated:
		return torsoPlated(d, c, rs, p, solid)
	case TorsoCapsule:
		return torsoCapsule(d, c, rs, p, solid)
	case TorsoCore:
		return torsoCore(d, c, rs, p, solid)
	case TorsoTwin:
		return torsoTwin(d, c, rs, p, solid)
	case TorsoAngular:
		return torsoAngular(d, c, rs, p, solid)
	}
	panic("parts: unregistered torso tag " + tag.String())
}

// torsoBlock: plain box with 1..3 horizontal panel seams.
func torsoBlock(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	g := placement.NewGroup()
	g.Add(placement.Prim(placement.Box(d.W, d.H, d.D, p), c, solid))
	seams := rs.IntInclusive(1, 3)
	for i := 0; i < seams; i++ {
		y := d.H * (-0.3 + 0.6*float32(i)/float32(seams))
		g.Add(placement.PrimAt(placement.Box(d.W*1.02, d.H*0.04, d.D*0.2, p), c, solid, 0, y, d.D*0.42))
	}
	return g
}

// torsoBarrel: cylinder with 2..4 band rings along the height.
func torsoBarrel(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	r := d.W * 0.5
	g := placement.NewGroup()
	g.Add(placement.Prim(placement.Cylinder(r, r, d.H, p), c, solid))
	bands := rs.IntInclusive(2, 4)
	for i := 0; i < bands; i++ {
		y := d.H * (-0.38 + 0.76*float32(i)/float32(bands-1))
		g.Add(placement.PrimAt(placement.Torus(r*1.02, r*0.07, p), c, solid, 0, y, 0))
	}
	return g
}

// torsoCage: open rib cage of 3..6 torus ribs around a spine column.
func torsoCage(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	g := placement.NewGroup()
	g.Add(placement.Prim(placement.Cylinder(d.W*0.12, d.W*0.12, d.H, p), c, solid))
	ribs := rs.IntInclusive(3, 6)
	for i := 0; i < ribs; i++ {
		y := d.H * (-0.42 + 0.84*float32(i)/float32(ribs-1))
		g.Add(placement.PrimAt(placement.Torus(d.W*0.5, d.W*0.05, p), c, solid, 0, y, 0))
	}
	// top and bottom caps close the cage
	g.Add(
		placement.PrimAt(placement.Box(d.W*0.8, d.H*0.08, d.D*0.8, p), c, solid, 0, d.H*0.5, 0),
		placement.PrimAt(placement.Box(d.W*0.8, d.H*0.08, d.D*0.8, p), c, solid, 0, -d.H*0.5, 0),
	)
	return g
}

// torsoTaper: frustum, wide hips to narrow shoulders or the reverse, 50/50.
func torsoTaper(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	top, bottom := d.W*0.35, d.W*0.55
	if rs.Chance(0.5) {
		top, bottom = bottom, top
	}
	g := placement.NewGroup()
	g.Add(placement.Prim(placement.Cylinder(top, bottom, d.H, p), c, solid))
	return g
}

// torsoSphere: sphere stretched to the rolled extents via group scale.
func torsoSphere(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	g := placement.NewGroup()
	body := placement.NewGroup().Scaled(1, d.H/d.W, d.D/d.W)
	body.Add(placement.Prim(placement.Sphere(d.W*0.5, p), c, solid))
	g.Add(body)
	if rs.Chance(0.4) {
		g.Add(placement.PrimAt(placement.Torus(d.W*0.52, d.W*0.04, p), c, solid, 0, 0, 0))
	}
	return g
}

// torsoVented: box with a column of 2..5 vent slots on the front panel.
func torsoVented(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	g := placement.NewGroup()
	g.Add(placement.Prim(placement.Box(d.W, d.H, d.D, p), c, solid))
	vents := rs.IntInclusive(2, 5)
	for i := 0; i < vents; i++ {
		y := d.H * (0.3 - 0.55*float32(i)/float32(vents-1))
		g.Add(placement.PrimAt(placement.Box(d.W*0.55, d.H*0.05, d.D*0.1, p), c, solid, 0, y, d.D*0.48))
	}
	return g
}

// torsoPlated: box with shoulder pauldrons and a raised chest plate.
func torsoPlated(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	g := placement.NewGroup()
	g.Add(placement.Prim(placement.Box(d.W, d.H, d.D, p), c, solid))
	pw := d.W * float32(rs.Range(0.22, 0.32))
	g.Add(
		placement.PrimAt(placement.Box(pw, d.H*0.18, d.D*1.05, p), c, solid, -d.W*0.5-pw*0.3, d.H*0.42, 0),
		placement.PrimAt(placement.Box(pw, d.H*0.18, d.D*1.05, p), c, solid, d.W*0.5+pw*0.3, d.H*0.42, 0),
		placement.PrimAt(placement.Box(d.W*0.6, d.H*0.4, d.D*0.12, p), c, solid, 0, d.H*0.15, d.D*0.5),
	)
	return g
}

// torsoCapsule: cylinder with sphere caps top and bottom.
func torsoCapsule(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	r := d.W * 0.5
	mid := d.H - 2*r
	if mid < d.H*0.2 {
		mid = d.H * 0.2
	}
	g := placement.NewGroup()
	g.Add(
		placement.Prim(placement.Cylinder(r, r, mid, p), c, solid),
		placement.PrimAt(placement.Sphere(r, p), c, solid, 0, mid*0.5, 0),
		placement.PrimAt(placement.Sphere(r, p), c, solid, 0, -mid*0.5, 0),
	)
	if rs.Chance(0.3) {
		g.Add(placement.PrimAt(placement.Torus(r*1.05, r*0.06, p), c, solid, 0, 0, 0))
	}
	return g
}

// torsoCore: exposed octahedron reactor between top and bottom frame slabs.
func torsoCore(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	spin := float32(rs.Range(0, 0.8))
	g := placement.NewGroup()
	core := placement.NewGroup().Rotated(0, spin, 0)
	core.Add(placement.Prim(placement.Polyhedron(placement.KindOctahedron, d.W*0.42, p), c, solid))
	g.Add(
		core,
		placement.PrimAt(placement.Box(d.W, d.H*0.18, d.D, p), c, solid, 0, d.H*0.41, 0),
		placement.PrimAt(placement.Box(d.W, d.H*0.18, d.D, p), c, solid, 0, -d.H*0.41, 0),
		placement.PrimAt(placement.Cylinder(d.W*0.08, d.W*0.08, d.H*0.82, p), c, solid, -d.W*0.42, 0, 0),
		placement.PrimAt(placement.Cylinder(d.W*0.08, d.W*0.08, d.H*0.82, p), c, solid, d.W*0.42, 0, 0),
	)
	return g
}

// torsoTwin: chest and pelvis boxes joined by a waist column; split ratio
// rolls per robot.
func torsoTwin(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	split := float32(rs.Range(0.45, 0.6))
	upper := d.H * split
	lower := d.H * (1 - split) * 0.75
	g := placement.NewGroup()
	g.Add(
		placement.PrimAt(placement.Box(d.W, upper, d.D, p), c, solid, 0, d.H*0.5-upper*0.5, 0),
		placement.PrimAt(placement.Box(d.W*0.85, lower, d.D*0.9, p), c, solid, 0, -d.H*0.5+lower*0.5, 0),
		placement.PrimAt(placement.Cylinder(d.W*0.18, d.W*0.18, d.H*0.3, p), c, solid, 0, d.H*0.5-upper-d.H*0.1, 0),
	)
	return g
}

// torsoAngular: central box with two side slabs canted outward.
func torsoAngular(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	cant := float32(rs.Range(0.2, 0.35))
	g := placement.NewGroup()
	g.Add(placement.Prim(placement.Box(d.W*0.7, d.H, d.D, p), c, solid))
	left := placement.NewGroup().At(-d.W*0.42, 0, 0).Rotated(0, 0, cant)
	left.Add(placement.Prim(placement.Box(d.W*0.22, d.H*0.92, d.D*0.92, p), c, solid))
	right := placement.NewGroup().At(d.W*0.42, 0, 0).Rotated(0, 0, -cant)
	right.Add(placement.Prim(placement.Box(d.W*0.22, d.H*0.92, d.D*0.92, p), c, solid))
	g.Add(left, right)
	return g
}
