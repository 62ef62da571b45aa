package hex

import (
	"errors"
	"fmt"
	"strings"
)

// ShapeKind names one of the grid shapes Generate knows about.
type ShapeKind int

const (
	KindParallelogram ShapeKind = iota
	KindTriangle
	KindHexagon
	KindRectangle
	KindOrientedRectangle
	KindRing
	KindSpiral
)

var shapeKindNames = [...]string{
	KindParallelogram:     "parallelogram",
	KindTriangle:          "triangle",
	KindHexagon:           "hexagon",
	KindRectangle:         "rectangle",
	KindOrientedRectangle: "oriented_rectangle",
	KindRing:              "ring",
	KindSpiral:            "spiral",
}

// ErrUnknownShape is returned by ParseShapeKind for unrecognised names.
var ErrUnknownShape = errors.New("unknown shape kind")

func (k ShapeKind) String() string {
	if k < 0 || int(k) >= len(shapeKindNames) {
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
	return shapeKindNames[k]
}

// ParseShapeKind maps a name such as "hexagon" or "orientedRectangle" to
// its kind. Matching ignores case, '-' and '_'.
func ParseShapeKind(name string) (ShapeKind, error) {
	want := normalizeKind(name)
	for i, n := range shapeKindNames {
		if normalizeKind(n) == want {
			return ShapeKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

func normalizeKind(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", "")
	return strings.ReplaceAll(s, "-", "")
}

// Shape is one of the concrete shape parameter structs below. The set is
// closed; only this package can add variants.
type Shape interface {
	Kind() ShapeKind
	shape()
}

type ParallelogramShape struct{ Q1, Q2, R1, R2 int }

type TriangleShape struct{ Size int }

type HexagonShape struct{ Radius int }

type RectangleShape struct{ Width, Height int }

type OrientedRectangleShape struct{ Width, Height int }

type RingShape struct {
	Center Hex
	Radius int
}

type SpiralShape struct {
	Center Hex
	Radius int
}

func (ParallelogramShape) Kind() ShapeKind     { return KindParallelogram }
func (TriangleShape) Kind() ShapeKind          { return KindTriangle }
func (HexagonShape) Kind() ShapeKind           { return KindHexagon }
func (RectangleShape) Kind() ShapeKind         { return KindRectangle }
func (OrientedRectangleShape) Kind() ShapeKind { return KindOrientedRectangle }
func (RingShape) Kind() ShapeKind              { return KindRing }
func (SpiralShape) Kind() ShapeKind            { return KindSpiral }

func (ParallelogramShape) shape()     {}
func (TriangleShape) shape()          {}
func (HexagonShape) shape()           {}
func (RectangleShape) shape()         {}
func (OrientedRectangleShape) shape() {}
func (RingShape) shape()              {}
func (SpiralShape) shape()            {}

// Generate returns the coordinates of s. A nil shape yields nothing.
func Generate(s Shape) []Hex {
	switch v := s.(type) {
	case ParallelogramShape:
		return Parallelogram(v.Q1, v.Q2, v.R1, v.R2)
	case TriangleShape:
		return Triangle(v.Size)
	case HexagonShape:
		return Hexagon(v.Radius)
	case RectangleShape:
		return Rectangle(v.Width, v.Height)
	case OrientedRectangleShape:
		return OrientedRectangle(v.Width, v.Height)
	case RingShape:
		return Ring(v.Center, v.Radius)
	case SpiralShape:
		return Spiral(v.Center, v.Radius)
	}
	return []Hex{}
}
