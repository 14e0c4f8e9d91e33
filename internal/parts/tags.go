// Package parts holds the five catalogs of interchangeable body-part
// generators (head, torso, arm, leg, locomotion unit) plus the antenna and
// backpack accessory builders. Each generator maps rolled dimensions, a
// resolved color, the robot's stream, and the tessellation profile to one
// subtree of placements. Generators draw from the stream in a fixed order per
// tag, so the same stream state always reproduces the same part.
package parts

// Dims carries the rolled extent of a part. Torsos use all three axes; heads
// are cubic (W only); arms and legs read H as length and W as thickness;
// locomotion units read W as the unit size.
type Dims struct {
	W, H, D float32
}

// HeadTag selects a head generator. Tag order is the catalog pick order.
type HeadTag uint8

const (
	HeadCube HeadTag = iota
	HeadDome
	HeadDrum
	HeadCone
	HeadOrb
	HeadVisor
	HeadBucket
	HeadPrism
	HeadCrystal
	HeadGem
	HeadSpike
)

var headTagNames = [...]string{
	"cube", "dome", "drum", "cone", "orb", "visor",
	"bucket", "prism", "crystal", "gem", "spike",
}

func (t HeadTag) String() string { return regionTagName(headTagNames[:], int(t)) }

// HeadTags returns the full head catalog in pick order.
func HeadTags() []HeadTag {
	return []HeadTag{
		HeadCube, HeadDome, HeadDrum, HeadCone, HeadOrb, HeadVisor,
		HeadBucket, HeadPrism, HeadCrystal, HeadGem, HeadSpike,
	}
}

// TorsoTag selects a torso generator.
type TorsoTag uint8

const (
	TorsoBlock TorsoTag = iota
	TorsoBarrel
	TorsoCage
	TorsoTaper
	TorsoSphere
	TorsoVented
	TorsoPlated
	TorsoCapsule
	TorsoCore
	TorsoTwin
	TorsoAngular
)

var torsoTagNames = [...]string{
	"block", "barrel", "cage", "taper", "sphere", "vented",
	"plated", "capsule", "core", "twin", "angular",
}

func (t TorsoTag) String() string { return regionTagName(torsoTagNames[:], int(t)) }

// TorsoTags returns the full torso catalog in pick order.
func TorsoTags() []TorsoTag {
	return []TorsoTag{
		TorsoBlock, TorsoBarrel, TorsoCage, TorsoTaper, TorsoSphere, TorsoVented,
		TorsoPlated, TorsoCapsule, TorsoCore, TorsoTwin, TorsoAngular,
	}
}

// ArmTag selects an arm generator. Both arms of one robot share a tag.
type ArmTag uint8

const (
	ArmTube ArmTag = iota
	ArmJointed
	ArmPiston
	ArmClaw
	ArmBlocky
	ArmRod
	ArmBallJoint
	ArmBlade
	ArmCoil
)

var armTagNames = [...]string{
	"tube", "jointed", "piston", "claw", "blocky", "rod", "balljoint", "blade", "coil",
}

func (t ArmTag) String() string { return regionTagName(armTagNames[:], int(t)) }

// ArmTags returns the full arm catalog in pick order.
func ArmTags() []ArmTag {
	return []ArmTag{
		ArmTube, ArmJointed, ArmPiston, ArmClaw, ArmBlocky, ArmRod,
		ArmBallJoint, ArmBlade, ArmCoil,
	}
}

// LegTag selects a leg generator. Both legs of one robot share a tag.
type LegTag uint8

const (
	LegTube LegTag = iota
	LegJointed
	LegPiston
	LegBlocky
	LegSpring
	LegBallJoint
	LegTaper
	LegPeg
)

var legTagNames = [...]string{
	"tube", "jointed", "piston", "blocky", "spring", "balljoint", "taper", "peg",
}

func (t LegTag) String() string { return regionTagName(legTagNames[:], int(t)) }

// LegTags returns the full leg catalog in pick order.
func LegTags() []LegTag {
	return []LegTag{
		LegTube, LegJointed, LegPiston, LegBlocky, LegSpring, LegBallJoint,
		LegTaper, LegPeg,
	}
}

// LocoTag selects a locomotion-unit generator. Bipedal delegates to a
// mirrored leg pair; the other five are genuinely distinct unit types, three
// of them wheel styles.
type LocoTag uint8

const (
	LocoBipedal LocoTag = iota
	LocoTracked
	LocoHover
	LocoWheel
	LocoHubWheel
	LocoSpokeWheel
)

var locoTagNames = [...]string{
	"bipedal", "tracked", "hover", "wheel", "hubwheel", "spokewheel",
}

func (t LocoTag) String() string { return regionTagName(locoTagNames[:], int(t)) }

// LocoTags returns the full locomotion catalog in pick order.
func LocoTags() []LocoTag {
	return []LocoTag{
		LocoBipedal, LocoTracked, LocoHover, LocoWheel, LocoHubWheel, LocoSpokeWheel,
	}
}

// WheelTags returns the wheel-style subset used when the wheeled variant is
// rolled.
func WheelTags() []LocoTag {
	return []LocoTag{LocoWheel, LocoHubWheel, LocoSpokeWheel}
}

func regionTagName(names []string, i int) string {
	if i < len(names) {
		return names[i]
	}
	return "unknown"
}
