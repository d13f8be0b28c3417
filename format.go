package meshtool

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies one of the supported on-disk mesh encodings.
type Format int

const (
	FormatUnknown Format = iota
	FormatBinarySTL
	FormatASCIISTL
	FormatOBJ
)

func (f Format) String() string {
	switch f {
	case FormatBinarySTL:
		return "binary STL"
	case FormatASCIISTL:
		return "ASCII STL"
	case FormatOBJ:
		return "OBJ"
	}
	return "unknown"
}

// Ext returns the conventional file extension for the format.
func (f Format) Ext() string {
	if f == FormatOBJ {
		return ".obj"
	}
	return ".stl"
}

// maxDeclaredTriangles caps how large a triangle count at offset 80 is
// trusted during sniffing, so that arbitrary text is not misread as a
// plausible binary header.
const maxDeclaredTriangles = 1_000_000

// sniffWindow limits how much of the input the text heuristics look at.
const sniffWindow = 4096

// objTags are the leading tokens that mark a line as OBJ content.
var objTags = []string{"v", "vt", "vn", "f", "o", "g", "s", "mtllib", "usemtl"}

// DetectFormat decides which decoder can handle data. The extension hint
// (with or without the leading dot, case-insensitive) is consulted only
// when the content itself is inconclusive. Returns ErrUnrecognizedFormat
// when neither signal decides.
func DetectFormat(data []byte, ext string) (Format, error) {
	// The binary size rule is the strongest signal: file length must be
	// exactly header + count*record for the count stored at offset 80.
	if len(data) >= stlHeaderLen+4 {
		n := binary.LittleEndian.Uint32(data[stlHeaderLen:])
		if n <= maxDeclaredTriangles && len(data) == stlHeaderLen+4+int(n)*stlRecordLen {
			return FormatBinarySTL, nil
		}
	}

	head := data
	if len(head) > sniffWindow {
		head = head[:sniffWindow]
	}
	trimmed := bytes.TrimLeft(head, " \t\r\n")
	if len(trimmed) >= 5 && strings.EqualFold(string(trimmed[:5]), "solid") {
		return FormatASCIISTL, nil
	}
	if looksLikeOBJ(head) {
		return FormatOBJ, nil
	}

	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "stl":
		return FormatBinarySTL, nil
	case "obj":
		return FormatOBJ, nil
	}
	return FormatUnknown, ErrUnrecognizedFormat
}

// looksLikeOBJ scans the first few non-empty lines for OBJ record tags.
func looksLikeOBJ(head []byte) bool {
	lines := strings.Split(string(head), "\n")
	seen := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if seen++; seen > 50 {
			break
		}
		if line[0] == '#' {
			continue
		}
		tag, _, _ := strings.Cut(line, " ")
		for _, t := range objTags {
			if tag == t {
				return true
			}
		}
	}
	return false
}

// Decode sniffs data and runs the matching decoder. The extension hint may
// be empty. The resolved format is returned alongside the mesh so callers
// can re-encode output in kind.
func Decode(data []byte, ext string) (*Mesh, Format, error) {
	format, err := DetectFormat(data, ext)
	if err != nil {
		return nil, FormatUnknown, err
	}
	var mesh *Mesh
	switch format {
	case FormatBinarySTL:
		mesh, err = decodeBinarySTL(data)
	case FormatASCIISTL:
		mesh, err = decodeASCIISTL(data)
	case FormatOBJ:
		mesh, err = decodeOBJ(data)
	}
	if err != nil {
		return nil, format, err
	}
	return mesh, format, nil
}

// DecodeFile reads and decodes a single mesh file.
func DecodeFile(path string) (*Mesh, Format, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, FormatUnknown, err
	}
	return Decode(data, filepath.Ext(path))
}
