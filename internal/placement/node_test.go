package placement_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"botforge/internal/placement"
	"botforge/internal/resolution"
)

func TestPrimMaterialRoles(t *testing.T) {
	require := require.New(t)
	p := resolution.ForDetail(1)
	c := placement.Color{R: 200, G: 120, B: 40}

	wire := placement.Prim(placement.Box(1, 1, 1, p), c, false)
	require.Equal(c, wire.Wire)
	require.Nil(wire.Face, "wireframe-only primitive must not carry a face role")

	solid := placement.Prim(placement.Box(1, 1, 1, p), c, true)
	require.NotNil(solid.Face)
	require.Equal(c.Scaled(0.18), *solid.Face)
}

func TestGroupBuilders(t *testing.T) {
	require := require.New(t)
	g := placement.NewGroup().At(1, 2, 3).Rotated(0.1, 0.2, 0.3).Scaled(2, 1, 2)
	require.Equal([3]float32{1, 2, 3}, g.Position)
	require.Equal([3]float32{0.1, 0.2, 0.3}, g.Rotation)
	require.Equal([3]float32{2, 1, 2}, g.Scale)
	require.Equal([3]float32{1, 1, 1}, placement.NewGroup().Scale)
}

func TestWalkVisitsDepthFirstInChildOrder(t *testing.T) {
	require := require.New(t)
	p := resolution.ForDetail(1)
	c := placement.Color{R: 1}

	inner := placement.NewGroup().Add(placement.Prim(placement.Sphere(1, p), c, false))
	root := placement.NewGroup().Add(
		placement.Prim(placement.Box(1, 1, 1, p), c, false),
		inner,
		placement.Prim(placement.Torus(1, 0.2, p), c, false),
	)

	var kinds []placement.Kind
	placement.Walk(root, func(n placement.Node) {
		if prim, ok := n.(*placement.Primitive); ok {
			kinds = append(kinds, prim.Geometry.Kind)
		}
	})
	require.Equal([]placement.Kind{placement.KindBox, placement.KindSphere, placement.KindTorus}, kinds)

	prims := placement.Primitives(root)
	require.Len(prims, 3)
	require.Equal(placement.KindSphere, prims[1].Geometry.Kind)
}

func TestGeometryResolution(t *testing.T) {
	require := require.New(t)
	p1 := resolution.ForDetail(1)
	p3 := resolution.ForDetail(3)

	cyl := placement.Cylinder(0.5, 0.5, 2, p1)
	require.Equal(8, cyl.RadialSegments)
	cone := placement.Cylinder(0, 0.5, 2, p3)
	require.Equal(16, cone.RadialSegments)
	inverted := placement.Cylinder(0.5, 0, 2, p3)
	require.Equal(16, inverted.RadialSegments)

	sph := placement.Sphere(1, p3)
	require.Equal(16, sph.WidthSegs)
	require.Equal(12, sph.HeightSegs)

	poly1 := placement.Polyhedron(placement.KindIcosahedron, 1, p1)
	require.Equal(0, poly1.Subdivisions)
	poly3 := placement.Polyhedron(placement.KindIcosahedron, 1, p3)
	require.Equal(1, poly3.Subdivisions)

	require.Panics(func() {
		placement.Polyhedron(placement.KindBox, 1, p1)
	})
}
