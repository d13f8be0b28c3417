package meshtool

import (
	"errors"
	"testing"

	floats "gonum.org/v1/gonum/floats/scalar"
)

func TestDecimateValidation(t *testing.T) {
	cube := unitCube()
	for _, factor := range []float64{0, -0.5, 1.5} {
		if _, err := Decimate(cube, factor); !errors.Is(err, ErrInvalidFactor) {
			t.Errorf("factor %v: expected ErrInvalidFactor, got %v", factor, err)
		}
	}
	if _, err := Decimate(NewMesh(nil, nil), 0.5); !errors.Is(err, ErrEmptyMesh) {
		t.Errorf("empty mesh: %v", err)
	}
}

func TestDecimateKeepAll(t *testing.T) {
	cube := unitCube()
	out, err := Decimate(cube, 1)
	if err != nil {
		t.Fatal(err)
	}
	if out.TriangleCount() == 0 || out.TriangleCount() > 12 {
		t.Fatalf("unexpected triangle count %d", out.TriangleCount())
	}
	// A cube has no redundant geometry, so keeping every triangle must
	// preserve the enclosed volume.
	if !floats.EqualWithinAbs(Volume(out), 1, 1e-6) {
		t.Errorf("volume after decimation: %v", Volume(out))
	}
}
