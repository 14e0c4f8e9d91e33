package placement_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"botforge/internal/placement"
)

func TestFromHSLPrimaries(t *testing.T) {
	require := require.New(t)
	require.Equal("#ff0000", placement.FromHSL(0, 1, 0.5).Hex())
	require.Equal("#00ff00", placement.FromHSL(1.0/3.0, 1, 0.5).Hex())
	require.Equal("#0000ff", placement.FromHSL(2.0/3.0, 1, 0.5).Hex())
	require.Equal("#000000", placement.FromHSL(0.25, 1, 0).Hex())
	require.Equal("#ffffff", placement.FromHSL(0.25, 1, 1).Hex())
}

func TestFromHSLZeroSaturationIsGray(t *testing.T) {
	require := require.New(t)
	c := placement.FromHSL(0.7, 0, 0.5)
	require.Equal(c.R, c.G)
	require.Equal(c.G, c.B)
	require.Equal("#808080", c.Hex())
}

func TestFromHSLHueWraps(t *testing.T) {
	require := require.New(t)
	require.Equal(placement.FromHSL(0.2, 0.8, 0.5), placement.FromHSL(1.2, 0.8, 0.5))
	require.Equal(placement.FromHSL(0.9, 0.8, 0.5), placement.FromHSL(-0.1, 0.8, 0.5))
}

func TestScaled(t *testing.T) {
	require := require.New(t)
	c := placement.Color{R: 200, G: 100, B: 50}
	half := c.Scaled(0.5)
	require.Equal(placement.Color{R: 100, G: 50, B: 25}, half)
	require.Equal(c, c.Scaled(2)) // clamps to 1
	require.Equal(placement.Color{}, c.Scaled(-1))
}
