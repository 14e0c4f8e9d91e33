package parts

import (
	"botforge/internal/placement"
	"botforge/internal/resolution"
	"botforge/internal/seedstream"
)

// BuildHead emits the head subtree for the given tag. The returned group's
// local origin is the head's attachment point (its vertical center).
// An out-of-enum tag is a programming error and panics.
func BuildHead(tag HeadTag, d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	switch tag {
	case HeadCube:
		return headCube(d, c, rs, p, solid)
	case HeadDome:
		return headDome(d, c, rs, p, solid)
	case HeadDrum:
		return headDrum(d, c, rs, p, solid)
	case HeadCone:
		return headCone(d, c, rs, p, solid)
	case HeadOrb:
		return headOrb(d, c, rs, p, solid)
	case HeadVisor:
		return headVisor(d, c, rs, p, solid)
	case HeadBucket:
		return headBucket(d, c, rs, p, solid)
	case HeadPrism:
		return headPrism(d, c, rs, p, solid)
	case HeadCrystal:
		return headCrystal(d, c, rs, p, solid)
	case HeadGem:
		return headGem(d, c, rs, p, solid)
	case HeadSpike:
		return headSpike(d, c, rs, p, solid)
	}
	panic("parts: unregistered head tag " + tag.String())
}

// headCube: box head with either two eye studs or a single slit, 50/50.
func headCube(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	s := d.W
	g := placement.NewGroup()
	g.Add(placement.Prim(placement.Box(s, s, s, p), c, solid))
	if rs.Chance(0.5) {
		eye := placement.Box(s*0.14, s*0.14, s*0.08, p)
		g.Add(
			placement.PrimAt(eye, c, solid, -s*0.2, s*0.12, s*0.5),
			placement.PrimAt(eye, c, solid, s*0.2, s*0.12, s*0.5),
		)
	} else {
		g.Add(placement.PrimAt(placement.Box(s*0.6, s*0.1, s*0.08, p), c, solid, 0, s*0.12, s*0.5))
	}
	return g
}

// headDome: hemispherical cap on a short cylindrical base, with 2..5 vent
// studs across the front.
func headDome(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	s := d.W
	g := placement.NewGroup()
	base := placement.Cylinder(s*0.5, s*0.5, s*0.45, p)
	g.Add(placement.PrimAt(base, c, solid, 0, -s*0.2, 0))
	dome := placement.NewGroup().At(0, 0, 0).Scaled(1, 0.72, 1)
	dome.Add(placement.Prim(placement.Sphere(s*0.52, p), c, solid))
	g.Add(dome)
	vents := rs.IntInclusive(2, 5)
	span := s * 0.55
	for i := 0; i < vents; i++ {
		x := -span/2 + span*float32(i)/float32(vents-1)
		g.Add(placement.PrimAt(placement.Box(s*0.06, s*0.12, s*0.05, p), c, solid, x, -s*0.22, s*0.5))
	}
	return g
}

// headDrum: squat cylinder with a rim ring; sometimes a sensor nub on top.
func headDrum(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	s := d.W
	g := placement.NewGroup()
	g.Add(placement.Prim(placement.Cylinder(s*0.5, s*0.5, s*0.8, p), c, solid))
	g.Add(placement.PrimAt(placement.Torus(s*0.5, s*0.05, p), c, solid, 0, s*0.32, 0))
	if rs.Chance(0.4) {
		g.Add(placement.PrimAt(placement.Sphere(s*0.12, p), c, solid, 0, s*0.5, 0))
	}
	return g
}

// headCone: a single cone; taper ratio varies per robot.
func headCone(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	s := d.W
	top := s * float32(rs.Range(0, 0.18))
	g := placement.NewGroup()
	g.Add(placement.PrimAt(placement.Cylinder(top, s*0.55, s*1.05, p), c, solid, 0, s*0.1, 0))
	return g
}

// headOrb: sphere with a tilted orbit ring.
func headOrb(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	s := d.W
	tilt := float32(rs.Range(0.2, 0.7))
	g := placement.NewGroup()
	g.Add(placement.Prim(placement.Sphere(s*0.55, p), c, solid))
	ring := placement.NewGroup().Rotated(tilt, 0, 0)
	ring.Add(placement.Prim(placement.Torus(s*0.68, s*0.04, p), c, solid))
	g.Add(ring)
	return g
}

// headVisor: box head with a wide visor slab at a rolled height.
func headVisor(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	s := d.W
	y := s * float32(rs.Range(0, 0.3))
	g := placement.NewGroup()
	g.Add(placement.Prim(placement.Box(s, s*0.9, s*0.9, p), c, solid))
	g.Add(placement.PrimAt(placement.Box(s*1.08, s*0.22, s*0.18, p), c, solid, 0, y, s*0.42))
	return g
}

// headBucket: upside-down frustum pail; sometimes with a handle arc.
func headBucket(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	s := d.W
	g := placement.NewGroup()
	g.Add(placement.Prim(placement.Cylinder(s*0.55, s*0.4, s*0.95, p), c, solid))
	if rs.Chance(0.5) {
		handle := placement.NewGroup().At(0, s*0.45, 0).Rotated(0, 0, 0).Scaled(1, 0.55, 1)
		handle.Add(placement.Prim(placement.Torus(s*0.5, s*0.04, p), c, solid))
		g.Add(handle)
	}
	return g
}

func headPrism(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	s := d.W
	spin := float32(rs.Range(0, 0.8))
	g := placement.NewGroup().Rotated(0, spin, 0)
	g.Add(placement.Prim(placement.Polyhedron(placement.KindOctahedron, s*0.62, p), c, solid))
	return g
}

// headCrystal: icosahedron, sometimes with a tetrahedral spike on top.
func headCrystal(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	s := d.W
	g := placement.NewGroup()
	g.Add(placement.Prim(placement.Polyhedron(placement.KindIcosahedron, s*0.58, p), c, solid))
	if rs.Chance(0.35) {
		g.Add(placement.PrimAt(placement.Polyhedron(placement.KindTetrahedron, s*0.2, p), c, solid, 0, s*0.6, 0))
	}
	return g
}

func headGem(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	s := d.W
	spin := float32(rs.Range(0, 0.8))
	g := placement.NewGroup().Rotated(0, spin, 0)
	g.Add(placement.Prim(placement.Polyhedron(placement.KindDodecahedron, s*0.6, p), c, solid))
	return g
}

// headSpike: tetrahedron on a narrow neck box.
func headSpike(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	s := d.W
	spin := float32(rs.Range(0, 1.0))
	g := placement.NewGroup()
	g.Add(placement.PrimAt(placement.Box(s*0.3, s*0.3, s*0.3, p), c, solid, 0, -s*0.3, 0))
	tip := placement.NewGroup().At(0, s*0.15, 0).Rotated(0, spin, 0)
	tip.Add(placement.Prim(placement.Polyhedron(placement.KindTetrahedron, s*0.62, p), c, solid))
	g.Add(tip)
	return g
}
