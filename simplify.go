package meshtool

import "github.com/fogleman/simplify"

// Decimate reduces the mesh to roughly factor times its current triangle
// count using quadric edge-collapse simplification, with factor in (0, 1].
// The result is a welded mesh; vertex order is not preserved, so decimation
// is meant as a step before analysis or export, not a lossless rewrite.
func Decimate(m *Mesh, factor float64) (*Mesh, error) {
	if !(factor > 0) || factor > 1 {
		return nil, ErrInvalidFactor
	}
	if len(m.Vertices) == 0 {
		return nil, ErrEmptyMesh
	}

	triangles := make([]*simplify.Triangle, 0, len(m.Faces))
	for i := range m.Faces {
		v1, v2, v3 := m.Triangle(i)
		triangles = append(triangles, simplify.NewTriangle(
			simplify.Vector{X: v1.X, Y: v1.Y, Z: v1.Z},
			simplify.Vector{X: v2.X, Y: v2.Y, Z: v2.Z},
			simplify.Vector{X: v3.X, Y: v3.Y, Z: v3.Z},
		))
	}
	simplified := simplify.NewMesh(triangles).Simplify(factor)

	b := &meshBuilder{}
	for _, t := range simplified.Triangles {
		b.addTriangle(
			Vector{t.V1.X, t.V1.Y, t.V1.Z},
			Vector{t.V2.X, t.V2.Y, t.V2.Z},
			Vector{t.V3.X, t.V3.Y, t.V3.Z},
		)
	}
	return b.mesh().Weld(), nil
}
