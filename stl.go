package meshtool

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Binary STL layout: an 80-byte free-form header, a little-endian uint32
// triangle count, then one 50-byte record per triangle (normal and three
// vertices as float32 triples, plus a 2-byte attribute field).
const (
	stlHeaderLen = 80
	stlRecordLen = 50
)

func decodeBinarySTL(data []byte) (*Mesh, error) {
	if len(data) < stlHeaderLen+4 {
		return nil, &TruncatedError{Expected: stlHeaderLen + 4, Actual: len(data)}
	}
	count := int(binary.LittleEndian.Uint32(data[stlHeaderLen:]))
	expected := stlHeaderLen + 4 + count*stlRecordLen
	if len(data) < expected {
		return nil, &TruncatedError{Expected: expected, Actual: len(data)}
	}

	b := &meshBuilder{}
	off := stlHeaderLen + 4
	for i := 0; i < count; i++ {
		rec := data[off : off+stlRecordLen]
		// The stored normal (bytes 0-11) is not trusted; geometry is
		// recomputed from the vertices when needed.
		b.addTriangle(stlVertex(rec, 12), stlVertex(rec, 24), stlVertex(rec, 36))
		off += stlRecordLen
	}
	return b.mesh(), nil
}

func stlVertex(rec []byte, off int) Vector {
	f := func(o int) float64 {
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(rec[o:])))
	}
	return Vector{f(off), f(off + 4), f(off + 8)}
}

func encodeBinarySTL(m *Mesh) []byte {
	buf := &bytes.Buffer{}
	var header [stlHeaderLen]byte
	copy(header[:], "exported by meshtool")
	buf.Write(header[:])
	binary.Write(buf, binary.LittleEndian, uint32(len(m.Faces)))
	for i := range m.Faces {
		v1, v2, v3 := m.Triangle(i)
		writeSTLVector(buf, faceNormal(v1, v2, v3))
		writeSTLVector(buf, v1)
		writeSTLVector(buf, v2)
		writeSTLVector(buf, v3)
		binary.Write(buf, binary.LittleEndian, uint16(0))
	}
	return buf.Bytes()
}

func writeSTLVector(buf *bytes.Buffer, v Vector) {
	binary.Write(buf, binary.LittleEndian, float32(v.X))
	binary.Write(buf, binary.LittleEndian, float32(v.Y))
	binary.Write(buf, binary.LittleEndian, float32(v.Z))
}

func faceNormal(v1, v2, v3 Vector) Vector {
	return v2.Sub(v1).Cross(v3.Sub(v1)).Normalize()
}

// stlLiner yields non-blank lines of an ASCII STL body one at a time,
// tracking line numbers for error reporting.
type stlLiner struct {
	scanner *bufio.Scanner
	line    int
}

// next returns the fields of the next non-blank line. ok is false at
// end of input.
func (l *stlLiner) next() (fields []string, ok bool) {
	for l.scanner.Scan() {
		l.line++
		fields = strings.Fields(l.scanner.Text())
		if len(fields) > 0 {
			return fields, true
		}
	}
	return nil, false
}

// decodeASCIISTL parses the block grammar
//
//	solid <name>
//	  facet normal nx ny nz
//	    outer loop
//	      vertex x y z   (exactly three)
//	    endloop
//	  endfacet
//	endsolid <name>
//
// Keywords are case-insensitive. An unmatched block is a StructureError,
// a bad numeric token a NumberError.
func decodeASCIISTL(data []byte) (*Mesh, error) {
	l := &stlLiner{scanner: bufio.NewScanner(bytes.NewReader(data))}
	l.scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	fields, ok := l.next()
	if !ok || !keyword(fields[0], "solid") {
		return nil, &StructureError{Line: l.line, Context: "expected solid"}
	}

	b := &meshBuilder{}
	for {
		fields, ok = l.next()
		if !ok {
			return nil, &StructureError{Line: l.line, Context: "missing endsolid"}
		}
		if keyword(fields[0], "endsolid") {
			return b.mesh(), nil
		}
		if !keyword(fields[0], "facet") {
			return nil, &StructureError{Line: l.line, Context: fmt.Sprintf("expected facet or endsolid, found %q", fields[0])}
		}
		// facet normal nx ny nz: the values are validated as numbers but
		// otherwise ignored, like the binary variant's stored normal.
		if len(fields) != 5 || !keyword(fields[1], "normal") {
			return nil, &StructureError{Line: l.line, Context: "malformed facet normal line"}
		}
		for _, tok := range fields[2:] {
			if _, err := strconv.ParseFloat(tok, 64); err != nil {
				return nil, &NumberError{Line: l.line, Token: tok}
			}
		}

		fields, ok = l.next()
		if !ok || len(fields) != 2 || !keyword(fields[0], "outer") || !keyword(fields[1], "loop") {
			return nil, &StructureError{Line: l.line, Context: "expected outer loop"}
		}

		var verts [3]Vector
		for i := 0; i < 3; i++ {
			fields, ok = l.next()
			if !ok || !keyword(fields[0], "vertex") {
				return nil, &StructureError{Line: l.line, Context: "expected vertex"}
			}
			if len(fields) != 4 {
				return nil, &StructureError{Line: l.line, Context: "vertex needs three coordinates"}
			}
			v, err := parseVertex(fields[1:], l.line)
			if err != nil {
				return nil, err
			}
			verts[i] = v
		}

		fields, ok = l.next()
		if !ok || !keyword(fields[0], "endloop") {
			return nil, &StructureError{Line: l.line, Context: "expected endloop"}
		}
		fields, ok = l.next()
		if !ok || !keyword(fields[0], "endfacet") {
			return nil, &StructureError{Line: l.line, Context: "expected endfacet"}
		}

		b.addTriangle(verts[0], verts[1], verts[2])
	}
}

func keyword(tok, want string) bool {
	return strings.EqualFold(tok, want)
}

func parseVertex(fields []string, line int) (Vector, error) {
	var c [3]float64
	for i, tok := range fields {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return Vector{}, &NumberError{Line: line, Token: tok}
		}
		c[i] = f
	}
	return Vector{c[0], c[1], c[2]}, nil
}

func encodeASCIISTL(m *Mesh) []byte {
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "solid meshtool\n")
	for i := range m.Faces {
		v1, v2, v3 := m.Triangle(i)
		n := faceNormal(v1, v2, v3)
		fmt.Fprintf(buf, "  facet normal %g %g %g\n", n.X, n.Y, n.Z)
		fmt.Fprintf(buf, "    outer loop\n")
		for _, v := range []Vector{v1, v2, v3} {
			fmt.Fprintf(buf, "      vertex %g %g %g\n", v.X, v.Y, v.Z)
		}
		fmt.Fprintf(buf, "    endloop\n")
		fmt.Fprintf(buf, "  endfacet\n")
	}
	fmt.Fprintf(buf, "endsolid meshtool\n")
	return buf.Bytes()
}
