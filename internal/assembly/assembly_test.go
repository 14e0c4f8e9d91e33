package assembly_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"botforge/internal/assembly"
	"botforge/internal/parts"
	"botforge/internal/placement"
	"botforge/internal/seedstream"
)

func TestDeterminism(t *testing.T) {
	require := require.New(t)
	seeds := []string{"robot-001-0", "robot-001-7", "xyzzy", "", "日本語シード"}
	for _, seed := range seeds {
		for detail := 1; detail <= 3; detail++ {
			for _, solid := range []bool{false, true} {
				a := assembly.Generate(seed, detail, solid)
				b := assembly.Generate(seed, detail, solid)
				require.Equal(a, b, "seed=%q detail=%d solid=%v", seed, detail, solid)
				require.NotSame(a, b, "trees must be distinct values, never shared")
			}
		}
	}
}

// Golden fixture: the documented hash and mix algorithm pins every roll for
// this seed. Expected values were derived by hand-evaluating the draw
// sequence, independently of the code under test.
func TestGoldenFixtureRobot001_0(t *testing.T) {
	require := require.New(t)
	bp := assembly.Roll(seedstream.New("robot-001-0"))

	require.Equal("#56c3f4", bp.Primary.Hex())
	require.Equal("#222298", bp.Secondary.Hex())
	require.InDelta(0.8856708784587681, float64(bp.Scale), 1e-7)
	require.Equal(parts.TorsoCage, bp.TorsoTag)
	require.Equal(parts.HeadGem, bp.HeadTag)
	require.True(bp.HasArms)
	require.Equal(parts.ArmPiston, bp.ArmTag)
	require.Equal(assembly.VariantBipedal, bp.Variant)
	require.Equal(parts.LegBlocky, bp.LegTag)
	require.False(bp.HasAntenna)
	require.False(bp.HasBackpack)
}

func TestSeedSensitivity(t *testing.T) {
	require := require.New(t)
	a := assembly.Roll(seedstream.New("robot-001-0"))
	b := assembly.Roll(seedstream.New("robot-001-1"))
	require.NotEqual(a.TorsoTag, b.TorsoTag, "adjacent seeds should disagree on at least one part choice")

	// one-character edits must change the stream state for a sample of seeds
	changed := 0
	for i := 0; i < 50; i++ {
		s1 := fmt.Sprintf("sensitivity-%d-a", i)
		s2 := fmt.Sprintf("sensitivity-%d-b", i)
		if seedstream.New(s1).State() != seedstream.New(s2).State() {
			changed++
		}
	}
	require.Equal(50, changed)
}

// expectedChildren derives the root child count the tree must have for a
// blueprint: torso + head, plus arms, locomotion, and accessories.
func expectedChildren(bp assembly.Blueprint) int {
	n := 2
	if bp.HasArms {
		n += 2
	}
	switch bp.Variant {
	case assembly.VariantBipedal, assembly.VariantTracked:
		n += 2
	default:
		n += 4
	}
	if bp.HasAntenna {
		n++
	}
	if bp.HasBackpack {
		n++
	}
	return n
}

func TestTreeShapeInvariant(t *testing.T) {
	require := require.New(t)
	for i := 0; i < 300; i++ {
		seed := fmt.Sprintf("shape-%d", i)
		bp := assembly.Roll(seedstream.New(seed))
		root := assembly.Generate(seed, 1, false)

		require.Len(root.Children, expectedChildren(bp), "seed %q", seed)
		for _, child := range root.Children {
			g, ok := child.(*placement.Group)
			require.True(ok, "root children must be groups")
			require.NotEmpty(placement.Primitives(g))
		}
		// torso sits at the origin, head above it
		torso := root.Children[0].(*placement.Group)
		head := root.Children[1].(*placement.Group)
		require.Equal([3]float32{0, 0, 0}, torso.Position)
		require.Greater(head.Position[1], float32(0))
	}
}

func TestDistributionSanity(t *testing.T) {
	if testing.Short() {
		t.Skip("10k rolls")
	}
	require := require.New(t)
	const n = 10000
	variants := map[assembly.Variant]int{}
	arms, antenna, backpack := 0, 0, 0
	for i := 0; i < n; i++ {
		bp := assembly.Roll(seedstream.New(fmt.Sprintf("dist-%d", i)))
		variants[bp.Variant]++
		if bp.HasArms {
			arms++
		}
		if bp.HasAntenna {
			antenna++
		}
		if bp.HasBackpack {
			backpack++
		}
	}
	frac := func(c int) float64 { return float64(c) / n }

	require.InDelta(0.50, frac(variants[assembly.VariantBipedal]), 0.05)
	require.InDelta(1.0/6.0, frac(variants[assembly.VariantTracked]), 0.05)
	require.InDelta(1.0/6.0, frac(variants[assembly.VariantWheeled]), 0.05)
	require.InDelta(1.0/6.0, frac(variants[assembly.VariantHover]), 0.05)
	require.InDelta(0.85, frac(arms), 0.03)
	require.InDelta(0.40, frac(antenna), 0.03)
	require.InDelta(0.35, frac(backpack), 0.03)
}

// Detail changes tessellation only: same structure, same choices, segment
// counts never decreasing.
func TestMonotonicTessellationAcrossDetails(t *testing.T) {
	require := require.New(t)
	for i := 0; i < 20; i++ {
		seed := fmt.Sprintf("tess-%d", i)
		lo := placement.Primitives(assembly.Generate(seed, 1, false))
		for d := 2; d <= 3; d++ {
			hi := placement.Primitives(assembly.Generate(seed, d, false))
			require.Len(hi, len(lo), "seed %q: structure changed with detail", seed)
			for j := range hi {
				require.Equal(lo[j].Geometry.Kind, hi[j].Geometry.Kind)
				require.GreaterOrEqual(hi[j].Geometry.RadialSegments, lo[j].Geometry.RadialSegments)
				require.GreaterOrEqual(hi[j].Geometry.WidthSegs, lo[j].Geometry.WidthSegs)
				require.GreaterOrEqual(hi[j].Geometry.HeightSegs, lo[j].Geometry.HeightSegs)
				require.GreaterOrEqual(hi[j].Geometry.TorusRadialSegs, lo[j].Geometry.TorusRadialSegs)
				require.GreaterOrEqual(hi[j].Geometry.TorusTubularSegs, lo[j].Geometry.TorusTubularSegs)
				require.GreaterOrEqual(hi[j].Geometry.Subdivisions, lo[j].Geometry.Subdivisions)
			}
			lo = hi
		}
	}
}

func TestDetailClamps(t *testing.T) {
	require := require.New(t)
	require.Equal(assembly.Generate("clamp", 1, false), assembly.Generate("clamp", 0, false))
	require.Equal(assembly.Generate("clamp", 1, false), assembly.Generate("clamp", -3, false))
	require.Equal(assembly.Generate("clamp", 3, false), assembly.Generate("clamp", 7, false))
}

func TestSolidMaterialRoles(t *testing.T) {
	require := require.New(t)
	for _, prim := range placement.Primitives(assembly.Generate("roles", 2, true)) {
		require.NotNil(prim.Face)
		require.Equal(prim.Wire.Scaled(0.18), *prim.Face)
	}
	for _, prim := range placement.Primitives(assembly.Generate("roles", 2, false)) {
		require.Nil(prim.Face)
	}
}

// Generation must not depend on state left by earlier calls: interleaving and
// discarding trees changes nothing.
func TestIdempotentRederivation(t *testing.T) {
	require := require.New(t)
	first := assembly.Generate("rederive", 2, false)
	_ = assembly.Generate("other-seed", 3, true) // unrelated interleaved work
	first.Children = append(first.Children, placement.NewGroup())
	again := assembly.Generate("rederive", 2, false)
	fresh := assembly.Generate("rederive", 2, false)
	require.Equal(fresh, again)
	require.Len(again.Children, len(first.Children)-1)
}

// Empty and pathological seeds still produce complete robots.
func TestPathologicalSeeds(t *testing.T) {
	require := require.New(t)
	for _, seed := range []string{"", " ", "\x00", "🤖🤖🤖", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"} {
		root := assembly.Generate(seed, 1, false)
		require.NotEmpty(root.Children)
		require.NotEmpty(placement.Primitives(root))
	}
}
