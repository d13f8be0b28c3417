package meshtool

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDetectBinarySTL(t *testing.T) {
	data := encodeBinarySTL(unitCube())
	format, err := DetectFormat(data, "")
	if err != nil {
		t.Fatal(err)
	}
	if format != FormatBinarySTL {
		t.Errorf("expected binary STL, got %v", format)
	}
}

func TestDetectBinarySTLWithSolidHeader(t *testing.T) {
	// A binary file whose free-form header happens to start with "solid"
	// must still classify as binary: the size rule is checked first.
	data := encodeBinarySTL(unitCube())
	copy(data, "solid comment")
	format, err := DetectFormat(data, "")
	if err != nil {
		t.Fatal(err)
	}
	if format != FormatBinarySTL {
		t.Errorf("expected binary STL, got %v", format)
	}
}

func TestDetectASCIISTL(t *testing.T) {
	for _, prefix := range []string{"solid cube\n", "  \n\tSOLID cube\n"} {
		format, err := DetectFormat([]byte(prefix+"endsolid cube\n"), "")
		if err != nil {
			t.Fatal(err)
		}
		if format != FormatASCIISTL {
			t.Errorf("%q: expected ASCII STL, got %v", prefix, format)
		}
	}
}

func TestDetectOBJ(t *testing.T) {
	inputs := []string{
		"v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n",
		"# comment\nmtllib cube.mtl\nv 0 0 0\n",
		"o cube\n",
	}
	for _, in := range inputs {
		format, err := DetectFormat([]byte(in), "")
		if err != nil {
			t.Fatal(err)
		}
		if format != FormatOBJ {
			t.Errorf("%q: expected OBJ, got %v", in, format)
		}
	}
}

func TestDetectExtensionFallback(t *testing.T) {
	garbage := []byte{0xde, 0xad, 0xbe, 0xef}
	if format, err := DetectFormat(garbage, ".stl"); err != nil || format != FormatBinarySTL {
		t.Errorf("stl hint: got %v, %v", format, err)
	}
	if format, err := DetectFormat(garbage, ".OBJ"); err != nil || format != FormatOBJ {
		t.Errorf("obj hint: got %v, %v", format, err)
	}
}

func TestDetectUnrecognized(t *testing.T) {
	_, err := DetectFormat([]byte{0xde, 0xad, 0xbe, 0xef}, ".dat")
	if !errors.Is(err, ErrUnrecognizedFormat) {
		t.Errorf("expected ErrUnrecognizedFormat, got %v", err)
	}
}

func TestDecodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.stl")
	if err := os.WriteFile(path, encodeBinarySTL(unitCube()), 0o644); err != nil {
		t.Fatal(err)
	}
	mesh, format, err := DecodeFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if format != FormatBinarySTL {
		t.Errorf("expected binary STL, got %v", format)
	}
	if mesh.TriangleCount() != 12 {
		t.Errorf("expected 12 triangles, got %d", mesh.TriangleCount())
	}
}

func TestDecodeDispatch(t *testing.T) {
	for _, format := range []Format{FormatBinarySTL, FormatASCIISTL, FormatOBJ} {
		data, err := Encode(unitCube(), format)
		if err != nil {
			t.Fatal(err)
		}
		mesh, got, err := Decode(data, "")
		if err != nil {
			t.Fatalf("%v: %v", format, err)
		}
		if got != format {
			t.Errorf("expected %v, got %v", format, got)
		}
		if mesh.TriangleCount() != 12 {
			t.Errorf("%v: expected 12 triangles, got %d", format, mesh.TriangleCount())
		}
	}
}
