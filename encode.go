package meshtool

import "os"

// Encode serializes the mesh in the given format, mirroring the layout
// rules the decoders accept. STL output expands each face into its own
// three vertex records; OBJ output emits the vertex pool in order followed
// by 1-based face lines, so decode(Encode(m)) reproduces m's topology.
func Encode(m *Mesh, format Format) ([]byte, error) {
	switch format {
	case FormatBinarySTL:
		return encodeBinarySTL(m), nil
	case FormatASCIISTL:
		return encodeASCIISTL(m), nil
	case FormatOBJ:
		return encodeOBJ(m), nil
	}
	return nil, ErrUnrecognizedFormat
}

// WriteFile encodes the mesh and writes it to path.
func WriteFile(path string, m *Mesh, format Format) error {
	data, err := Encode(m, format)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
