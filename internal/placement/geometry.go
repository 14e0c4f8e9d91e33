package placement

import "botforge/internal/resolution"

// Kind identifies one of the base shapes part generators may emit.
type Kind uint8

const (
	KindBox Kind = iota
	KindCylinder
	KindSphere
	KindTorus
	KindOctahedron
	KindTetrahedron
	KindIcosahedron
	KindDodecahedron
)

var kindNames = [...]string{
	KindBox:          "box",
	KindCylinder:     "cylinder",
	KindSphere:       "sphere",
	KindTorus:        "torus",
	KindOctahedron:   "octahedron",
	KindTetrahedron:  "tetrahedron",
	KindIcosahedron:  "icosahedron",
	KindDodecahedron: "dodecahedron",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Geometry fully describes one primitive's shape: size parameters plus the
// tessellation resolved from the active profile at build time. A tree is
// self-contained; the renderer never needs the profile again.
type Geometry struct {
	Kind Kind

	// Box extents on X/Y/Z.
	Width, Height, Depth float32

	// Cylinder radii; RadiusTop 0 emits a cone, unequal radii a frustum.
	// Radius is the sphere/torus/polyhedron radius, Tube the torus tube radius.
	RadiusTop, RadiusBottom float32
	Radius, Tube            float32

	// Resolved tessellation.
	Subdivisions     int
	RadialSegments   int
	HeightSegments   int
	WidthSegs        int
	HeightSegs       int
	TorusRadialSegs  int
	TorusTubularSegs int
	EdgeAngleDegrees float32
}

// Box returns a rectangular prism geometry.
func Box(w, h, d float32, p resolution.Profile) Geometry {
	return Geometry{
		Kind: KindBox, Width: w, Height: h, Depth: d,
		Subdivisions:     p.BoxSubdivisions,
		EdgeAngleDegrees: p.EdgeAngleDegrees,
	}
}

// Cylinder returns a cylinder, cone (top radius 0), or frustum geometry.
func Cylinder(radiusTop, radiusBottom, height float32, p resolution.Profile) Geometry {
	radial := p.RadialSegments
	if radiusTop == 0 || radiusBottom == 0 {
		radial = p.ConeRadialSegments
	}
	return Geometry{
		Kind: KindCylinder, RadiusTop: radiusTop, RadiusBottom: radiusBottom, Height: height,
		RadialSegments:   radial,
		HeightSegments:   p.HeightSegments,
		EdgeAngleDegrees: p.EdgeAngleDegrees,
	}
}

// Sphere returns a UV sphere geometry.
func Sphere(radius float32, p resolution.Profile) Geometry {
	return Geometry{
		Kind: KindSphere, Radius: radius,
		WidthSegs: p.SphereWidthSegs, HeightSegs: p.SphereHeightSegs,
		EdgeAngleDegrees: p.EdgeAngleDegrees,
	}
}

// Torus returns a torus geometry.
func Torus(radius, tube float32, p resolution.Profile) Geometry {
	return Geometry{
		Kind: KindTorus, Radius: radius, Tube: tube,
		TorusRadialSegs: p.TorusRadialSegs, TorusTubularSegs: p.TorusTubularSegs,
		EdgeAngleDegrees: p.EdgeAngleDegrees,
	}
}

// Polyhedron returns one of the four Platonic solids. One level of
// subdivision is applied when the profile's box subdivision exceeds 1.
func Polyhedron(kind Kind, radius float32, p resolution.Profile) Geometry {
	sub := 0
	if p.BoxSubdivisions > 1 {
		sub = 1
	}
	switch kind {
	case KindOctahedron, KindTetrahedron, KindIcosahedron, KindDodecahedron:
	default:
		panic("placement: Polyhedron called with non-polyhedron kind " + kind.String())
	}
	return Geometry{
		Kind: kind, Radius: radius,
		Subdivisions:     sub,
		EdgeAngleDegrees: p.EdgeAngleDegrees,
	}
}
