// Package resolution maps an integer detail level to the tessellation
// parameters used when emitting primitives. Higher detail means equal-or-more
// segments on every curved shape; the wireframe edge threshold is the one
// non-monotonic knob (level 1 shows nearly every edge, levels 2/3 suppress
// near-flat seams).
package resolution

// Profile is the tessellation configuration for one detail level.
type Profile struct {
	BoxSubdivisions    int
	RadialSegments     int
	HeightSegments     int
	SphereWidthSegs    int
	SphereHeightSegs   int
	TorusRadialSegs    int
	TorusTubularSegs   int
	ConeRadialSegments int
	EdgeAngleDegrees   float32
}

// profiles is indexed by detail-1. Display-quality table only; values are not
// meant to be tuned per robot.
var profiles = [3]Profile{
	{
		BoxSubdivisions:    1,
		RadialSegments:     8,
		HeightSegments:     1,
		SphereWidthSegs:    8,
		SphereHeightSegs:   6,
		TorusRadialSegs:    6,
		TorusTubularSegs:   12,
		ConeRadialSegments: 8,
		EdgeAngleDegrees:   1,
	},
	{
		BoxSubdivisions:    2,
		RadialSegments:     12,
		HeightSegments:     2,
		SphereWidthSegs:    12,
		SphereHeightSegs:   9,
		TorusRadialSegs:    8,
		TorusTubularSegs:   16,
		ConeRadialSegments: 12,
		EdgeAngleDegrees:   15,
	},
	{
		BoxSubdivisions:    2,
		RadialSegments:     16,
		HeightSegments:     3,
		SphereWidthSegs:    16,
		SphereHeightSegs:   12,
		TorusRadialSegs:    10,
		TorusTubularSegs:   20,
		ConeRadialSegments: 16,
		EdgeAngleDegrees:   25,
	},
}

// ForDetail returns the profile for a detail level. Out-of-range levels clamp
// to {1,3}: detail is a display-quality control, not a correctness boundary.
func ForDetail(detail int) Profile {
	if detail < 1 {
		detail = 1
	}
	if detail > 3 {
		detail = 3
	}
	return profiles[detail-1]
}
