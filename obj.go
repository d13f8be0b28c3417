package meshtool

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// decodeOBJ parses the face-indexed Wavefront dialect: "v x y z" lines
// accumulate a vertex pool in file order, "f" lines reference it with
// 1-based indices. Negative indices count back from the end of the pool
// as declared so far, so "-1" is the most recent vertex. Faces with more
// than three corners are fan-triangulated from the first corner, which is
// only correct for convex polygons; that limitation is kept deliberately.
// Unknown leading tokens are skipped.
func decodeOBJ(data []byte) (*Mesh, error) {
	var vertices []Vector
	var faces [][3]int

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if len(text) < 2 || text[0] == '#' {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, &StructureError{Line: line, Context: "vertex needs three coordinates"}
			}
			v, err := parseVertex(fields[1:4], line)
			if err != nil {
				return nil, err
			}
			vertices = append(vertices, v)
		case "f":
			idxs, err := resolveFace(fields[1:], len(vertices), line)
			if err != nil {
				return nil, err
			}
			// Fan triangulation anchored at the first corner.
			for i := 1; i < len(idxs)-1; i++ {
				f := [3]int{idxs[0], idxs[i], idxs[i+1]}
				if validTriangle(vertices[f[0]], vertices[f[1]], vertices[f[2]]) {
					faces = append(faces, f)
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewMesh(vertices, faces), nil
}

// resolveFace turns the index tokens of a face line into 0-based pool
// positions. A token may be a bare index or the v/vt/vn slash form, of
// which only the position index is used.
func resolveFace(args []string, poolLen, line int) ([]int, error) {
	idxs := make([]int, len(args))
	for i, arg := range args {
		tok, _, _ := strings.Cut(arg, "/")
		idx, err := strconv.Atoi(tok)
		if err != nil {
			return nil, &NumberError{Line: line, Token: arg}
		}
		switch {
		case idx > 0 && idx <= poolLen:
			idxs[i] = idx - 1
		case idx < 0 && -idx <= poolLen:
			idxs[i] = poolLen + idx
		default:
			// Zero, forward, or out-of-range reference.
			return nil, &IndexError{Line: line, Index: idx}
		}
	}
	return idxs, nil
}

func encodeOBJ(m *Mesh) []byte {
	buf := &bytes.Buffer{}
	for _, v := range m.Vertices {
		fmt.Fprintf(buf, "v %g %g %g\n", v.X, v.Y, v.Z)
	}
	for _, f := range m.Faces {
		fmt.Fprintf(buf, "f %d %d %d\n", f[0]+1, f[1]+1, f[2]+1)
	}
	return buf.Bytes()
}
