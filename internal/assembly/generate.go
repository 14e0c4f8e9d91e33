package assembly

import (
	"botforge/internal/parts"
	"botforge/internal/placement"
	"botforge/internal/resolution"
	"botforge/internal/seedstream"
)

// Generate builds one robot tree from a seed string. The same
// (seed, detail, solid) triple always yields a structurally identical tree.
// Detail outside {1,2,3} clamps. The direct children of the returned root are,
// in order: torso, head, 0 or 2 arms, 2 or 4 locomotion subtrees, then the
// optional antenna and backpack.
//
// Generation is pure computation over one owned stream: no I/O, no shared
// state, so callers may generate many robots concurrently as long as each
// call has its own seed string (one internal stream per call).
func Generate(seed string, detail int, solid bool) *placement.Group {
	prof := resolution.ForDetail(detail)
	rs := seedstream.New(seed)
	bp := Roll(rs)
	return build(bp, rs, prof, solid)
}

// build composes the tree from a rolled blueprint. Generators run in fixed
// order (torso, head, arm L/R, locomotion, antenna, backpack) because they
// consume the same stream the blueprint was rolled from.
func build(bp Blueprint, rs *seedstream.Stream, prof resolution.Profile, solid bool) *placement.Group {
	root := placement.NewGroup()
	torsoW, torsoH, torsoD := bp.TorsoDims.W, bp.TorsoDims.H, bp.TorsoDims.D

	torso := parts.BuildTorso(bp.TorsoTag, bp.TorsoDims, bp.Primary, rs, prof, solid)
	root.Add(torso)

	headY := torsoH*0.5 + bp.HeadSize*0.4
	head := parts.BuildHead(bp.HeadTag, parts.Dims{W: bp.HeadSize}, bp.Secondary, rs, prof, solid)
	head.Position = [3]float32{0, headY, 0}
	root.Add(head)

	if bp.HasArms {
		shoulderX := torsoW*0.5 + bp.ArmDims.W*0.6
		shoulderY := torsoH * 0.30
		left := parts.BuildArm(bp.ArmTag, bp.ArmDims, bp.Primary, rs, prof, solid)
		left.Position = [3]float32{-shoulderX, shoulderY, 0}
		left.Rotation = [3]float32{0, 0, armTiltRad}
		right := parts.BuildArm(bp.ArmTag, bp.ArmDims, bp.Primary, rs, prof, solid)
		right.Position = [3]float32{shoulderX, shoulderY, 0}
		right.Rotation = [3]float32{0, 0, -armTiltRad}
		root.Add(left, right)
	}

	switch bp.Variant {
	case VariantBipedal:
		hipY := -torsoH * 0.5
		hipX := torsoW * 0.22
		left := parts.BuildLeg(bp.LegTag, bp.LegDims, bp.Primary, rs, prof, solid)
		left.Position = [3]float32{-hipX, hipY, 0}
		right := parts.BuildLeg(bp.LegTag, bp.LegDims, bp.Primary, rs, prof, solid)
		right.Position = [3]float32{hipX, hipY, 0}
		root.Add(left, right)
	case VariantTracked:
		x := torsoW*0.5 + bp.UnitSize*0.35
		y := -torsoH * 0.5
		for _, sx := range [2]float32{-1, 1} {
			unit := parts.BuildLocomotion(parts.LocoTracked, parts.Dims{W: bp.UnitSize}, bp.Primary, rs, prof, solid)
			unit.Position = [3]float32{sx * x, y, 0}
			root.Add(unit)
		}
	case VariantWheeled, VariantHover:
		tag := bp.WheelTag
		if bp.Variant == VariantHover {
			tag = parts.LocoHover
		}
		x := torsoW * 0.42
		y := -torsoH*0.5 - bp.UnitSize*0.15
		z := torsoD * 0.38
		for _, off := range [4][2]float32{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}} {
			unit := parts.BuildLocomotion(tag, parts.Dims{W: bp.UnitSize}, bp.Primary, rs, prof, solid)
			unit.Position = [3]float32{off[0] * x, y, off[1] * z}
			root.Add(unit)
		}
	}

	if bp.HasAntenna {
		antenna := parts.BuildAntenna(parts.Dims{W: bp.HeadSize}, bp.Secondary, rs, prof, solid)
		antenna.Position = [3]float32{0, headY + bp.HeadSize*0.55, 0}
		root.Add(antenna)
	}
	if bp.HasBackpack {
		packD := torsoD * 0.45
		pack := parts.BuildBackpack(parts.Dims{W: torsoW * 0.6, H: torsoH * 0.55, D: packD}, bp.Secondary, rs, prof, solid)
		pack.Position = [3]float32{0, torsoH * 0.1, -(torsoD*0.5 + packD*0.5)}
		root.Add(pack)
	}
	return root
}
