package meshtool

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrecognizedFormat is returned when neither the file content nor
	// the extension identifies a supported mesh format.
	ErrUnrecognizedFormat = errors.New("meshtool: unrecognized mesh format")

	// ErrEmptyMesh is returned for operations that are undefined on a mesh
	// with no vertices.
	ErrEmptyMesh = errors.New("meshtool: mesh has no vertices")

	// ErrDegenerateMesh is returned when a mesh has zero spatial extent.
	ErrDegenerateMesh = errors.New("meshtool: mesh has zero extent")

	// ErrInvalidTarget is returned for a non-positive target diagonal.
	ErrInvalidTarget = errors.New("meshtool: target diagonal must be positive")

	// ErrInvalidFactor is returned for a decimation factor outside (0, 1].
	ErrInvalidFactor = errors.New("meshtool: decimation factor must be in (0, 1]")
)

// TruncatedError reports a binary file shorter than its header declares.
type TruncatedError struct {
	Expected int
	Actual   int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("meshtool: truncated input: expected %d bytes, have %d", e.Expected, e.Actual)
}

// NumberError reports a token that failed to parse as a number.
type NumberError struct {
	Line  int
	Token string
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("meshtool: line %d: malformed number %q", e.Line, e.Token)
}

// StructureError reports a grammar violation in a text format, such as an
// unmatched facet or loop block.
type StructureError struct {
	Line    int
	Context string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("meshtool: line %d: %s", e.Line, e.Context)
}

// IndexError reports a vertex index that cannot be resolved: zero,
// out of range, or referencing a vertex not yet declared.
type IndexError struct {
	Line  int
	Index int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("meshtool: line %d: unresolvable vertex index %d", e.Line, e.Index)
}
