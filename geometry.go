package meshtool

// Diagonal returns the length of the mesh's bounding-box diagonal.
// Fails with ErrEmptyMesh when the mesh has no vertices.
func Diagonal(m *Mesh) (float64, error) {
	if len(m.Vertices) == 0 {
		return 0, ErrEmptyMesh
	}
	return m.BoundingBox().Diagonal(), nil
}

// Volume returns the signed volume enclosed by the mesh, summing the
// signed tetrahedron volumes spanned by each triangle and the origin.
// The result is exact for closed, consistently outward-wound meshes and
// flips sign when the winding is reversed. For open or non-manifold
// meshes the formula still evaluates but the magnitude carries no
// meaning; no validation is attempted.
func Volume(m *Mesh) float64 {
	// Kahan-compensated summation keeps large meshes from drifting.
	var sum, comp float64
	for i := range m.Faces {
		v1, v2, v3 := m.Triangle(i)
		y := v1.Dot(v2.Cross(v3))/6 - comp
		t := sum + y
		comp = (t - sum) - y
		sum = t
	}
	return sum
}

// Scale returns a new mesh whose bounding-box diagonal equals target.
// Every vertex is multiplied by target/current; face indices and vertex
// order are untouched, so re-encoding preserves the source file's
// structure. Fails with ErrInvalidTarget for a non-positive target,
// ErrEmptyMesh for a vertexless mesh, and ErrDegenerateMesh when the
// current diagonal is zero.
func Scale(m *Mesh, target float64) (*Mesh, error) {
	if !(target > 0) {
		return nil, ErrInvalidTarget
	}
	current, err := Diagonal(m)
	if err != nil {
		return nil, err
	}
	if current == 0 {
		return nil, ErrDegenerateMesh
	}
	factor := target / current

	vertices := make([]Vector, len(m.Vertices))
	for i, v := range m.Vertices {
		vertices[i] = v.MulScalar(factor)
	}
	faces := make([][3]int, len(m.Faces))
	copy(faces, m.Faces)
	return NewMesh(vertices, faces), nil
}
