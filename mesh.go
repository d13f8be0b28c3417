package meshtool

// Mesh is an indexed triangle mesh: a vertex pool plus faces holding
// three 0-based indices into it. Decoders preserve the structure of the
// source file — STL input yields three fresh vertices per triangle, OBJ
// input keeps the declared pool — so that re-encoding round-trips.
type Mesh struct {
	Vertices []Vector
	Faces    [][3]int
}

func NewMesh(vertices []Vector, faces [][3]int) *Mesh {
	return &Mesh{Vertices: vertices, Faces: faces}
}

func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// Triangle returns the corner positions of face i.
func (m *Mesh) Triangle(i int) (v1, v2, v3 Vector) {
	f := m.Faces[i]
	return m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
}

func (m *Mesh) BoundingBox() Box {
	return BoxForVectors(m.Vertices)
}

// Weld returns a copy of the mesh with coordinate-identical vertices merged
// into a single pool entry and faces remapped accordingly. Vertices keep
// their order of first appearance. Faces that collapse onto fewer than
// three distinct vertices are dropped.
func (m *Mesh) Weld() *Mesh {
	vertices := make([]Vector, 0, len(m.Vertices))
	faces := make([][3]int, 0, len(m.Faces))
	lookup := make(map[Vector]int, len(m.Vertices))

	for _, f := range m.Faces {
		var face [3]int
		for i, vi := range f {
			v := m.Vertices[vi]
			idx, ok := lookup[v]
			if !ok {
				idx = len(vertices)
				vertices = append(vertices, v)
				lookup[v] = idx
			}
			face[i] = idx
		}
		if face[0] == face[1] || face[1] == face[2] || face[2] == face[0] {
			continue
		}
		faces = append(faces, face)
	}
	return &Mesh{Vertices: vertices, Faces: faces}
}

const minTriangleAreaSq = 1e-12

// validTriangle reports whether three corners form a usable triangle:
// finite coordinates, pairwise distinct, and non-vanishing area.
// Decoders skip triangles that fail this test.
func validTriangle(v1, v2, v3 Vector) bool {
	if !v1.IsFinite() || !v2.IsFinite() || !v3.IsFinite() {
		return false
	}
	if v1 == v2 || v2 == v3 || v3 == v1 {
		return false
	}
	cross := v2.Sub(v1).Cross(v3.Sub(v1))
	return cross.Dot(cross) > minTriangleAreaSq
}

// meshBuilder accumulates triangle-soup input, where every triangle owns
// its three vertex copies.
type meshBuilder struct {
	vertices []Vector
	faces    [][3]int
}

func (b *meshBuilder) addTriangle(v1, v2, v3 Vector) {
	if !validTriangle(v1, v2, v3) {
		return
	}
	n := len(b.vertices)
	b.vertices = append(b.vertices, v1, v2, v3)
	b.faces = append(b.faces, [3]int{n, n + 1, n + 2})
}

func (b *meshBuilder) mesh() *Mesh {
	return NewMesh(b.vertices, b.faces)
}
