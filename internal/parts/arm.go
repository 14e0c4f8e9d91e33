package parts

import (
	"botforge/internal/placement"
	"botforge/internal/resolution"
	"botforge/internal/seedstream"
)

// BuildArm emits one arm subtree. The local origin is the shoulder; the arm
// hangs down the -Y axis with length d.H and thickness d.W. The assembly
// engine calls this twice per robot and mirror-places the results, so any
// stream draws here make the two arms near-twins rather than exact copies.
func BuildArm(tag ArmTag, d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	switch tag {
	case ArmTube:
		return armTube(d, c, rs, p, solid)
	case ArmJointed:
		return armJointed(d, c, rs, p, solid)
	case ArmPiston:
		return armPiston(d, c, rs, p, solid)
	case ArmClaw:
		return armClaw(d, c, rs, p, solid)
	case ArmBlocky:
		return armBlocky(d, c, rs, p, solid)
	case ArmRod:
		return armRod(d, c, rs, p, solid)
	case ArmBallJoint:
		return armBallJoint(d, c, rs, p, solid)
	case ArmBlade:
		return armBlade(d, c, rs, p, solid)
	case ArmCoil:
		return armCoil(d, c, rs, p, solid)
	}
	panic("parts: unregistered arm tag " + tag.String())
}

func armTube(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	l, t := d.H, d.W
	g := placement.NewGroup()
	g.Add(placement.PrimAt(placement.Cylinder(t*0.5, t*0.5, l, p), c, solid, 0, -l*0.5, 0))
	if rs.Chance(0.5) {
		g.Add(placement.PrimAt(placement.Sphere(t*0.65, p), c, solid, 0, -l, 0))
	}
	return g
}

// armJointed: upper arm, elbow ball, and a forearm bent forward by a rolled
// angle.
func armJointed(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	l, t := d.H, d.W
	bend := float32(rs.Range(0.15, 0.45))
	upper := l * 0.48
	fore := l * 0.45
	g := placement.NewGroup()
	g.Add(
		placement.PrimAt(placement.Cylinder(t*0.5, t*0.5, upper, p), c, solid, 0, -upper*0.5, 0),
		placement.PrimAt(placement.Sphere(t*0.6, p), c, solid, 0, -upper, 0),
	)
	foreGrp := placement.NewGroup().At(0, -upper, 0).Rotated(bend, 0, 0)
	foreGrp.Add(placement.PrimAt(placement.Cylinder(t*0.42, t*0.42, fore, p), c, solid, 0, -fore*0.5, 0))
	g.Add(foreGrp)
	return g
}

// armPiston: wide outer sleeve over a thinner inner shaft; extension rolls.
func armPiston(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	l, t := d.H, d.W
	ext := float32(rs.Range(0.35, 0.55))
	sleeve := l * 0.55
	shaft := l * ext
	g := placement.NewGroup()
	g.Add(
		placement.PrimAt(placement.Cylinder(t*0.6, t*0.6, sleeve, p), c, solid, 0, -sleeve*0.5, 0),
		placement.PrimAt(placement.Cylinder(t*0.32, t*0.32, shaft, p), c, solid, 0, -sleeve-shaft*0.5, 0),
	)
	return g
}

// armClaw: tube arm ending in two angled gripper fingers.
func armClaw(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	l, t := d.H, d.W
	gap := float32(rs.Range(0.25, 0.5))
	g := placement.NewGroup()
	g.Add(placement.PrimAt(placement.Cylinder(t*0.5, t*0.5, l*0.85, p), c, solid, 0, -l*0.425, 0))
	finger := placement.Box(t*0.3, l*0.22, t*0.3, p)
	fl := placement.NewGroup().At(-t*0.35, -l*0.9, 0).Rotated(0, 0, gap)
	fl.Add(placement.Prim(finger, c, solid))
	fr := placement.NewGroup().At(t*0.35, -l*0.9, 0).Rotated(0, 0, -gap)
	fr.Add(placement.Prim(finger, c, solid))
	g.Add(fl, fr)
	return g
}

func armBlocky(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	l, t := d.H, d.W
	split := float32(rs.Range(0.4, 0.55))
	upper := l * split
	fore := l - upper
	g := placement.NewGroup()
	g.Add(
		placement.PrimAt(placement.Box(t*1.1, upper, t*1.1, p), c, solid, 0, -upper*0.5, 0),
		placement.PrimAt(placement.Box(t*0.85, fore, t*0.85, p), c, solid, 0, -upper-fore*0.5, 0),
	)
	return g
}

// armRod: thin rod with a sphere hand.
func armRod(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	l, t := d.H, d.W
	hand := t * float32(rs.Range(0.5, 0.85))
	g := placement.NewGroup()
	g.Add(
		placement.PrimAt(placement.Cylinder(t*0.25, t*0.25, l, p), c, solid, 0, -l*0.5, 0),
		placement.PrimAt(placement.Sphere(hand, p), c, solid, 0, -l, 0),
	)
	return g
}

// armBallJoint: alternating spheres and tube segments.
func armBallJoint(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	l, t := d.H, d.W
	seg := l * 0.44
	swing := float32(rs.Range(-0.25, 0.25))
	g := placement.NewGroup()
	g.Add(
		placement.PrimAt(placement.Sphere(t*0.6, p), c, solid, 0, 0, 0),
		placement.PrimAt(placement.Cylinder(t*0.4, t*0.4, seg, p), c, solid, 0, -seg*0.5, 0),
		placement.PrimAt(placement.Sphere(t*0.55, p), c, solid, 0, -seg, 0),
	)
	lower := placement.NewGroup().At(0, -seg, 0).Rotated(swing, 0, 0)
	lower.Add(placement.PrimAt(placement.Cylinder(t*0.38, t*0.38, seg, p), c, solid, 0, -seg*0.5, 0))
	g.Add(lower)
	return g
}

// armBlade: short upper tube flowing into a flat blade slab.
func armBlade(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	l, t := d.H, d.W
	bladeLen := l * float32(rs.Range(0.5, 0.7))
	g := placement.NewGroup()
	g.Add(
		placement.PrimAt(placement.Cylinder(t*0.5, t*0.5, l*0.4, p), c, solid, 0, -l*0.2, 0),
		placement.PrimAt(placement.Box(t*0.25, bladeLen, t*1.6, p), c, solid, 0, -l*0.4-bladeLen*0.5, 0),
	)
	return g
}

// armCoil: 3..5 torus coils stacked along a thin core.
func armCoil(d Dims, c placement.Color, rs *seedstream.Stream, p resolution.Profile, solid bool) *placement.Group {
	l, t := d.H, d.W
	coils := rs.IntInclusive(3, 5)
	g := placement.NewGroup()
	g.Add(placement.PrimAt(placement.Cylinder(t*0.2, t*0.2, l, p), c, solid, 0, -l*0.5, 0))
	for i := 0; i < coils; i++ {
		y := -l * (0.12 + 0.76*float32(i)/float32(coils-1))
		g.Add(placement.PrimAt(placement.Torus(t*0.55, t*0.16, p), c, solid, 0, y, 0))
	}
	g.Add(placement.PrimAt(placement.Sphere(t*0.5, p), c, solid, 0, -l, 0))
	return g
}
