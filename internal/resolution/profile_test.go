package resolution_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"botforge/internal/resolution"
)

func TestTableValues(t *testing.T) {
	require := require.New(t)

	p1 := resolution.ForDetail(1)
	require.Equal(8, p1.RadialSegments)
	require.Equal(8, p1.SphereWidthSegs)
	require.Equal(6, p1.SphereHeightSegs)
	require.Equal(6, p1.TorusRadialSegs)
	require.Equal(12, p1.TorusTubularSegs)
	require.Equal(8, p1.ConeRadialSegments)
	require.InDelta(1, p1.EdgeAngleDegrees, 0.01)

	p2 := resolution.ForDetail(2)
	require.Equal(12, p2.RadialSegments)
	require.Equal(12, p2.SphereWidthSegs)
	require.Equal(9, p2.SphereHeightSegs)
	require.Equal(8, p2.TorusRadialSegs)
	require.Equal(16, p2.TorusTubularSegs)
	require.InDelta(15, p2.EdgeAngleDegrees, 0.01)

	p3 := resolution.ForDetail(3)
	require.Equal(16, p3.RadialSegments)
	require.Equal(16, p3.SphereWidthSegs)
	require.Equal(12, p3.SphereHeightSegs)
	require.Equal(10, p3.TorusRadialSegs)
	require.Equal(20, p3.TorusTubularSegs)
	require.InDelta(25, p3.EdgeAngleDegrees, 0.01)
}

// Segment counts must never decrease as detail rises; the edge threshold is
// deliberately exempt (level 1 shows nearly all edges).
func TestMonotonicSegments(t *testing.T) {
	require := require.New(t)
	lo := resolution.ForDetail(1)
	for d := 2; d <= 3; d++ {
		hi := resolution.ForDetail(d)
		require.GreaterOrEqual(hi.BoxSubdivisions, lo.BoxSubdivisions)
		require.GreaterOrEqual(hi.RadialSegments, lo.RadialSegments)
		require.GreaterOrEqual(hi.HeightSegments, lo.HeightSegments)
		require.GreaterOrEqual(hi.SphereWidthSegs, lo.SphereWidthSegs)
		require.GreaterOrEqual(hi.SphereHeightSegs, lo.SphereHeightSegs)
		require.GreaterOrEqual(hi.TorusRadialSegs, lo.TorusRadialSegs)
		require.GreaterOrEqual(hi.TorusTubularSegs, lo.TorusTubularSegs)
		require.GreaterOrEqual(hi.ConeRadialSegments, lo.ConeRadialSegments)
		lo = hi
	}
}

func TestClamping(t *testing.T) {
	require := require.New(t)
	require.Equal(resolution.ForDetail(1), resolution.ForDetail(0))
	require.Equal(resolution.ForDetail(1), resolution.ForDetail(-5))
	require.Equal(resolution.ForDetail(3), resolution.ForDetail(4))
	require.Equal(resolution.ForDetail(3), resolution.ForDetail(99))
}
