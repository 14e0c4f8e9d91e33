// Package placement defines the output of robot generation: a tree of
// transform groups and leaf primitives. Every robot owns its tree exclusively;
// values are deterministic per seed but never shared between robots.
package placement

// Node is either a *Group or a *Primitive.
type Node interface {
	isNode()
}

// Group is an interior node: a local transform applied to an ordered list of
// children. Rotation is XYZ euler angles in radians; Scale is non-uniform.
type Group struct {
	Position [3]float32
	Rotation [3]float32
	Scale    [3]float32
	Children []Node
}

// Primitive is a leaf: a geometry plus its material roles. Wire is always
// present (wireframe edges); Face is set only when solid render mode was
// requested at generation time.
type Primitive struct {
	Geometry Geometry
	Wire     Color
	Face     *Color
}

func (*Group) isNode()     {}
func (*Primitive) isNode() {}

// NewGroup returns an identity-transform group.
func NewGroup() *Group {
	return &Group{Scale: [3]float32{1, 1, 1}}
}

// At sets the group position and returns the group.
func (g *Group) At(x, y, z float32) *Group {
	g.Position = [3]float32{x, y, z}
	return g
}

// Rotated sets the euler rotation (radians) and returns the group.
func (g *Group) Rotated(x, y, z float32) *Group {
	g.Rotation = [3]float32{x, y, z}
	return g
}

// Scaled sets the non-uniform scale and returns the group.
func (g *Group) Scaled(x, y, z float32) *Group {
	g.Scale = [3]float32{x, y, z}
	return g
}

// Add appends children in order and returns the group.
func (g *Group) Add(children ...Node) *Group {
	g.Children = append(g.Children, children...)
	return g
}

// solidFaceValue is the per-channel factor for the solid fill color.
const solidFaceValue = 0.18

// Prim builds a primitive leaf for the given geometry and wire color. When
// solid is set the face role is resolved to a darkened fill of the same hue.
func Prim(geo Geometry, wire Color, solid bool) *Primitive {
	p := &Primitive{Geometry: geo, Wire: wire}
	if solid {
		face := wire.Scaled(solidFaceValue)
		p.Face = &face
	}
	return p
}

// PrimAt wraps a primitive in its own positioned group. Most part generators
// place each primitive relative to the part's local origin this way.
func PrimAt(geo Geometry, wire Color, solid bool, x, y, z float32) *Group {
	return NewGroup().At(x, y, z).Add(Prim(geo, wire, solid))
}

// Walk visits every node of the subtree rooted at n in depth-first child
// order, calling fn for each.
func Walk(n Node, fn func(Node)) {
	fn(n)
	if g, ok := n.(*Group); ok {
		for _, c := range g.Children {
			Walk(c, fn)
		}
	}
}

// Primitives returns all primitive leaves under n in visit order.
func Primitives(n Node) []*Primitive {
	var out []*Primitive
	Walk(n, func(m Node) {
		if p, ok := m.(*Primitive); ok {
			out = append(out, p)
		}
	})
	return out
}
