package meshtool

import "testing"

// unitCube returns an indexed unit cube: 8 vertices, 12 triangles with
// consistent outward winding.
func unitCube() *Mesh {
	vertices := []Vector{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
	}
	faces := [][3]int{
		{0, 3, 2}, {0, 2, 1}, // bottom
		{4, 5, 6}, {4, 6, 7}, // top
		{0, 1, 5}, {0, 5, 4}, // front
		{2, 3, 7}, {2, 7, 6}, // back
		{0, 4, 7}, {0, 7, 3}, // left
		{1, 2, 6}, {1, 6, 5}, // right
	}
	return NewMesh(vertices, faces)
}

func TestWeldMergesDuplicateVertices(t *testing.T) {
	// A cube decoded from STL carries three fresh vertices per triangle.
	soup, err := decodeBinarySTL(encodeBinarySTL(unitCube()))
	if err != nil {
		t.Fatal(err)
	}
	if len(soup.Vertices) != 36 {
		t.Fatalf("expected 36 soup vertices, got %d", len(soup.Vertices))
	}

	welded := soup.Weld()
	if len(welded.Vertices) != 8 {
		t.Errorf("expected 8 unique vertices, got %d", len(welded.Vertices))
	}
	if welded.TriangleCount() != 12 {
		t.Errorf("expected 12 triangles, got %d", welded.TriangleCount())
	}
	if v := Volume(welded); v < 0.999 || v > 1.001 {
		t.Errorf("welding changed the volume: %v", v)
	}
}

func TestWeldKeepsFirstAppearanceOrder(t *testing.T) {
	m := NewMesh(
		[]Vector{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 0, 0}, {0, 0, 0}, {0, 0, 1}},
		[][3]int{{0, 1, 2}, {3, 4, 5}},
	)
	welded := m.Weld()
	want := []Vector{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	if len(welded.Vertices) != len(want) {
		t.Fatalf("expected %d vertices, got %d", len(want), len(welded.Vertices))
	}
	for i, v := range want {
		if welded.Vertices[i] != v {
			t.Errorf("vertex %d: expected %v, got %v", i, v, welded.Vertices[i])
		}
	}
	if welded.Faces[1] != [3]int{1, 0, 3} {
		t.Errorf("face 1 remapped to %v", welded.Faces[1])
	}
}

func TestBuilderSkipsDegenerateTriangles(t *testing.T) {
	b := &meshBuilder{}
	b.addTriangle(Vector{0, 0, 0}, Vector{0, 0, 0}, Vector{1, 0, 0})  // repeated corner
	b.addTriangle(Vector{0, 0, 0}, Vector{1, 0, 0}, Vector{2, 0, 0})  // collinear
	b.addTriangle(Vector{0, 0, 0}, Vector{1, 0, 0}, Vector{0, 1, 0})  // valid
	m := b.mesh()
	if m.TriangleCount() != 1 {
		t.Errorf("expected 1 triangle, got %d", m.TriangleCount())
	}
}
