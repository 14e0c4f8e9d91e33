// Package assembly rolls per-robot parameters from a seeded stream and
// composes the chosen part subtrees into one robot tree.
package assembly

import (
	"botforge/internal/parts"
	"botforge/internal/placement"
	"botforge/internal/seedstream"
)

// Variant is the lower-body category.
type Variant uint8

const (
	VariantBipedal Variant = iota
	VariantTracked
	VariantWheeled
	VariantHover
)

var variantNames = [...]string{"bipedal", "tracked", "wheeled", "hover"}

func (v Variant) String() string {
	if int(v) < len(variantNames) {
		return variantNames[v]
	}
	return "unknown"
}

// variantPool is the weighted candidate list for the locomotion roll: bipedal
// appears three times among four distinct values, so a uniform pick lands on
// bipedal half the time and on each other variant a sixth of the time.
var variantPool = []Variant{
	VariantBipedal, VariantBipedal, VariantBipedal,
	VariantTracked, VariantWheeled, VariantHover,
}

// Region base ratios and jitter bounds. These are design constants tuned for
// the body proportions, not a general layout policy.
const (
	torsoBaseW = 1.0
	torsoBaseH = 1.35
	torsoBaseD = 0.7
	headBase   = 0.55

	armTiltRad = 0.1
)

// Blueprint is the full set of rolled parameters for one robot. It is rolled
// in one pass before any part generator runs and is immutable afterwards.
type Blueprint struct {
	Primary   placement.Color
	Secondary placement.Color
	Scale     float32

	TorsoTag  parts.TorsoTag
	TorsoDims parts.Dims

	HeadTag  parts.HeadTag
	HeadSize float32

	HasArms bool
	ArmTag  parts.ArmTag
	ArmDims parts.Dims

	Variant  Variant
	LegTag   parts.LegTag
	LegDims  parts.Dims
	WheelTag parts.LocoTag
	UnitSize float32

	HasAntenna  bool
	HasBackpack bool
}

// Roll draws every engine-level parameter from the stream in the fixed
// documented order. Reordering any draw changes every robot, so additions go
// strictly at the end of their step.
//
//  1. hue, primary saturation/lightness, secondary hue offset and
//     saturation/lightness
//  2. overall scale
//  3. torso tag, then width/height/depth jitter
//  4. head tag, then size jitter
//  5. arm presence; when present: tag, length jitter, thickness jitter
//  6. locomotion variant from the weighted pool; bipedal: leg tag, length,
//     thickness; wheeled: wheel style, unit size; tracked/hover: unit size
//  7. antenna chance, backpack chance
func Roll(rs *seedstream.Stream) Blueprint {
	var bp Blueprint

	hue := rs.Next()
	bp.Primary = placement.FromHSL(hue, rs.Range(0.6, 1.0), rs.Range(0.45, 0.65))
	hueOff := rs.Range(0.08, 0.17)
	bp.Secondary = placement.FromHSL(hue+hueOff, rs.Range(0.5, 0.9), rs.Range(0.35, 0.55))

	bp.Scale = float32(rs.Range(0.7, 1.3))

	bp.TorsoTag = seedstream.Pick(rs, parts.TorsoTags())
	bp.TorsoDims = parts.Dims{
		W: bp.Scale * torsoBaseW * float32(rs.Range(0.8, 1.3)),
		H: bp.Scale * torsoBaseH * float32(rs.Range(0.8, 1.2)),
		D: bp.Scale * torsoBaseD * float32(rs.Range(0.8, 1.3)),
	}

	bp.HeadTag = seedstream.Pick(rs, parts.HeadTags())
	bp.HeadSize = bp.Scale * headBase * float32(rs.Range(0.8, 1.2))

	bp.HasArms = rs.Chance(0.85)
	if bp.HasArms {
		bp.ArmTag = seedstream.Pick(rs, parts.ArmTags())
		bp.ArmDims = parts.Dims{
			H: bp.TorsoDims.H * float32(rs.Range(0.7, 1.1)),
			W: bp.Scale * float32(rs.Range(0.12, 0.22)),
		}
	}

	bp.Variant = seedstream.Pick(rs, variantPool)
	switch bp.Variant {
	case VariantBipedal:
		bp.LegTag = seedstream.Pick(rs, parts.LegTags())
		bp.LegDims = parts.Dims{
			H: bp.TorsoDims.H * float32(rs.Range(0.75, 1.05)),
			W: bp.Scale * float32(rs.Range(0.16, 0.26)),
		}
	case VariantWheeled:
		bp.WheelTag = seedstream.Pick(rs, parts.WheelTags())
		bp.UnitSize = bp.Scale * float32(rs.Range(0.45, 0.75))
	default:
		bp.UnitSize = bp.Scale * float32(rs.Range(0.45, 0.75))
	}

	bp.HasAntenna = rs.Chance(0.4)
	bp.HasBackpack = rs.Chance(0.35)
	return bp
}
