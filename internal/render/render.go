// Package render realizes placement trees as raylib models. It owns the only
// shared graphics resource in the program: a cache of generated meshes keyed
// by geometry, uploaded lazily after the window/OpenGL context exists and
// released in one sweep on teardown. The generation core never touches it.
package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"botforge/internal/placement"
)

// cached holds a model plus the model-space Y offset that centers it. raylib
// cylinders and cones have their base at Y=0 while the placement convention
// is center-at-origin, so those meshes carry an offset of -height/2.
type cached struct {
	model rl.Model
	yOff  float32
}

// Renderer caches one raylib model per distinct geometry. Robots with the
// same seed reuse cache entries; the placement trees themselves stay unshared.
type Renderer struct {
	cache map[placement.Geometry]cached
}

// New returns an empty renderer. Models are created on first draw so GPU
// uploads happen after the window exists.
func New() *Renderer {
	return &Renderer{cache: make(map[placement.Geometry]cached)}
}

// Draw renders a robot tree between BeginMode3D and EndMode3D. The base
// transform carries the robot's gallery placement plus the cosmetic bob/spin.
func (r *Renderer) Draw(root *placement.Group, base rl.Matrix) {
	r.drawNode(root, base)
}

func (r *Renderer) drawNode(n placement.Node, parent rl.Matrix) {
	switch node := n.(type) {
	case *placement.Group:
		world := rl.MatrixMultiply(localMatrix(node), parent)
		for _, c := range node.Children {
			r.drawNode(c, world)
		}
	case *placement.Primitive:
		c := r.ensure(node.Geometry)
		transform := parent
		if c.yOff != 0 {
			transform = rl.MatrixMultiply(rl.MatrixTranslate(0, c.yOff, 0), parent)
		}
		c.model.Transform = transform
		if node.Face != nil {
			f := node.Face
			rl.DrawModel(c.model, rl.Vector3{}, 1, rl.NewColor(f.R, f.G, f.B, 255))
		}
		w := node.Wire
		rl.DrawModelWires(c.model, rl.Vector3{}, 1, rl.NewColor(w.R, w.G, w.B, 255))
	}
}

// localMatrix composes scale, then XYZ euler rotation, then translation,
// matching the transform order the placement tree is built with.
func localMatrix(g *placement.Group) rl.Matrix {
	s := rl.MatrixScale(g.Scale[0], g.Scale[1], g.Scale[2])
	rot := rl.MatrixRotateXYZ(rl.NewVector3(g.Rotation[0], g.Rotation[1], g.Rotation[2]))
	t := rl.MatrixTranslate(g.Position[0], g.Position[1], g.Position[2])
	return rl.MatrixMultiply(rl.MatrixMultiply(s, rot), t)
}

// ensure returns the cached entry for geo, generating the mesh on first use.
func (r *Renderer) ensure(geo placement.Geometry) cached {
	if c, ok := r.cache[geo]; ok {
		return c
	}
	mesh, yOff := genMesh(geo)
	c := cached{model: rl.LoadModelFromMesh(mesh), yOff: yOff}
	r.cache[geo] = c
	return c
}

// genMesh maps a geometry to the closest raylib mesh, returning the mesh and
// the centering offset. Frustums fall back to the mean radius and the
// Platonic solids to coarse spheres; that only affects on-screen shape, the
// generated tree data stays exact.
func genMesh(geo placement.Geometry) (rl.Mesh, float32) {
	switch geo.Kind {
	case placement.KindBox:
		return rl.GenMeshCube(geo.Width, geo.Height, geo.Depth), 0
	case placement.KindCylinder:
		slices := int(geo.RadialSegments)
		yOff := -geo.Height * 0.5
		switch {
		case geo.RadiusTop == 0:
			return rl.GenMeshCone(geo.RadiusBottom, geo.Height, slices), yOff
		case geo.RadiusBottom == 0:
			// apex-down cone drawn apex-up; close enough for the gallery
			return rl.GenMeshCone(geo.RadiusTop, geo.Height, slices), yOff
		case geo.RadiusTop == geo.RadiusBottom:
			return rl.GenMeshCylinder(geo.RadiusTop, geo.Height, slices), yOff
		default:
			mean := (geo.RadiusTop + geo.RadiusBottom) * 0.5
			return rl.GenMeshCylinder(mean, geo.Height, slices), yOff
		}
	case placement.KindSphere:
		return rl.GenMeshSphere(geo.Radius, int(geo.HeightSegs), int(geo.WidthSegs)), 0
	case placement.KindTorus:
		return rl.GenMeshTorus(geo.Radius, geo.Tube*2, int(geo.TorusRadialSegs), int(geo.TorusTubularSegs)), 0
	case placement.KindOctahedron:
		return rl.GenMeshSphere(geo.Radius, 2, 4), 0
	case placement.KindTetrahedron:
		return rl.GenMeshSphere(geo.Radius, 2, 3), 0
	case placement.KindIcosahedron:
		return rl.GenMeshSphere(geo.Radius, 3, 5), 0
	case placement.KindDodecahedron:
		return rl.GenMeshSphere(geo.Radius, 3, 6), 0
	}
	return rl.GenMeshCube(0.1, 0.1, 0.1), 0
}

// Unload releases every cached model. Call when the gallery is torn down or
// regenerated wholesale; the trees themselves need no disposal.
func (r *Renderer) Unload() {
	for geo, c := range r.cache {
		rl.UnloadModel(c.model)
		delete(r.cache, geo)
	}
}
