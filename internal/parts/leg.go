package parts

import (
	"botforge/internal/placement"
	"botforge/internal/resolution"
	"botforge/internal/seedstream"
)

// BuildLeg emits one leg subtree. The local origin is the hip; the leg runs
// down -Y with length d.H and thickness d.W, ending at the ground plane of
// the robot.
func BuildLeg(tag LegTag, d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	switch tag {
	case LegTube:
		return legTube(d, c, rs, p, solid)
	case LegJointed:
		return legJointed(d, c, rs, p, solid)
	case LegPiston:
		return legPiston(d, c, rs, p, solid)
	case LegBlocky:
		return legBlocky(d, c, rs, p, solid)
	case LegSpring:
		return legSpring(d, c, rs, p, solid)
	case LegBallJoint:
		return legBallJoint(d, c, rs, p, solid)
	case LegTaper:
		return legTaper(d, c, rs, p, solid)
	case LegPeg:
		return legPeg(d, c, rs, p, solid)
	}
	panic("parts: unregistered leg tag " + tag.String())
}

// foot emits the standard foot box used by most leg styles.
func foot(l, t float32, c placement.Color, p resolution.Profile, solid bool) *placement.Group {
	return placement.PrimAt(placement.Box(t*1.4, t*0.5, t*2.0, p), c, solid, 0, -l, t*0.3)
}

func legTube(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	l, t := d.H, d.W
	g := placement.NewGroup()
	g.Add(placement.PrimAt(placement.Cylinder(t*0.5, t*0.5, l, p), c, solid, 0, -l*0.5, 0))
	if rs.Chance(0.6) {
		g.Add(foot(l, t, c, p, solid))
	}
	return g
}

// legJointed: thigh, knee ball, shin, foot.
func legJointed(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	l, t := d.H, d.W
	split := float32(rs.Range(0.42, 0.55))
	thigh := l * split
	shin := l - thigh
	g := placement.NewGroup()
	g.Add(
		placement.PrimAt(placement.Cylinder(t*0.55, t*0.5, thigh, p), c, solid, 0, -thigh*0.5, 0),
		placement.PrimAt(placement.Sphere(t*0.6, p), c, solid, 0, -thigh, 0),
		placement.PrimAt(placement.Cylinder(t*0.45, t*0.42, shin, p), c, solid, 0, -thigh-shin*0.5, 0),
		foot(l, t, c, p, solid),
	)
	return g
}

// legPiston: two parallel piston shafts into a foot plate.
func legPiston(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	l, t := d.H, d.W
	sep := t * float32(rs.Range(0.35, 0.55))
	g := placement.NewGroup()
	g.Add(
		placement.PrimAt(placement.Cylinder(t*0.3, t*0.3, l*0.9, p), c, solid, -sep, -l*0.45, 0),
		placement.PrimAt(placement.Cylinder(t*0.3, t*0.3, l*0.9, p), c, solid, sep, -l*0.45, 0),
		placement.PrimAt(placement.Box(t*1.6, t*0.4, t*2.0, p), c, solid, 0, -l, t*0.25),
	)
	return g
}

func legBlocky(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	l, t := d.H, d.W
	split := float32(rs.Range(0.45, 0.55))
	thigh := l * split
	shin := l - thigh
	g := placement.NewGroup()
	g.Add(
		placement.PrimAt(placement.Box(t*1.15, thigh, t*1.15, p), c, solid, 0, -thigh*0.5, 0),
		placement.PrimAt(placement.Box(t*0.9, shin, t*0.9, p), c, solid, 0, -thigh-shin*0.5, 0),
		foot(l, t, c, p, solid),
	)
	return g
}

// legSpring: 3..6 coil rings over a core shaft, with a foot pad.
func legSpring(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	l, t := d.H, d.W
	coils := rs.IntInclusive(3, 6)
	g := placement.NewGroup()
	g.Add(placement.PrimAt(placement.Cylinder(t*0.22, t*0.22, l, p), c, solid, 0, -l*0.5, 0))
	for i := 0; i < coils; i++ {
		y := -l * (0.1 + 0.75*float32(i)/float32(coils-1))
		g.Add(placement.PrimAt(placement.Torus(t*0.6, t*0.14, p), c, solid, 0, y, 0))
	}
	g.Add(placement.PrimAt(placement.Cylinder(t*0.8, t*0.9, t*0.35, p), c, solid, 0, -l, 0))
	return g
}

func legBallJoint(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	l, t := d.H, d.W
	seg := l * 0.45
	swing := float32(rs.Range(-0.2, 0.2))
	g := placement.NewGroup()
	g.Add(
		placement.PrimAt(placement.Sphere(t*0.65, p), c, solid, 0, 0, 0),
		placement.PrimAt(placement.Cylinder(t*0.42, t*0.42, seg, p), c, solid, 0, -seg*0.5, 0),
		placement.PrimAt(placement.Sphere(t*0.55, p), c, solid, 0, -seg, 0),
	)
	lower := placement.NewGroup().At(0, -seg, 0).Rotated(swing, 0, 0)
	lower.Add(
		placement.PrimAt(placement.Cylinder(t*0.4, t*0.4, seg, p), c, solid, 0, -seg*0.5, 0),
		foot(seg, t, c, p, solid),
	)
	g.Add(lower)
	return g
}

// legTaper: single frustum thickening toward the ground.
func legTaper(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	l, t := d.H, d.W
	flare := float32(rs.Range(0.7, 1.0))
	g := placement.NewGroup()
	g.Add(
		placement.PrimAt(placement.Cylinder(t*0.4, t*flare, l, p), c, solid, 0, -l*0.5, 0),
		foot(l, t, c, p, solid),
	)
	return g
}

// legPeg: pirate peg, a cone down to a near-point. No foot.
func legPeg(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	l, t := d.H, d.W
	tip := t * float32(rs.Range(0.08, 0.2))
	g := placement.NewGroup()
	g.Add(placement.PrimAt(placement.Cylinder(t*0.55, tip, l, p), c, solid, 0, -l*0.5, 0))
	return g
}
