package hex

import "math"

// Point is a position in pixel space.
type Point struct {
	X float64
	Y float64
}

// Orientation holds the forward (F) and inverse (B) axial<->pixel matrices
// and the angle of the first corner in units of 60 degrees.
type Orientation struct {
	F0, F1, F2, F3 float64
	B0, B1, B2, B3 float64
	StartAngle     float64
}

var (
	// Pointy is the pointy-top orientation.
	Pointy = Orientation{
		F0: math.Sqrt(3), F1: math.Sqrt(3) / 2, F2: 0, F3: 3.0 / 2,
		B0: math.Sqrt(3) / 3, B1: -1.0 / 3, B2: 0, B3: 2.0 / 3,
		StartAngle: 0.5,
	}
	// Flat is the flat-top orientation.
	Flat = Orientation{
		F0: 3.0 / 2, F1: 0, F2: math.Sqrt(3) / 2, F3: math.Sqrt(3),
		B0: 2.0 / 3, B1: 0, B2: -1.0 / 3, B3: math.Sqrt(3) / 3,
		StartAngle: 0,
	}
)

// Layout places hexes in pixel space. Size is the corner radius along
// each axis, Origin the pixel position of hex (0,0), and Spacing a
// multiplier on the distance between hex centres.
type Layout struct {
	Orientation Orientation
	Size        Point
	Origin      Point
	Spacing     float64
}

// NewLayout builds a layout. A zero spacing is treated as 1.
func NewLayout(size Point, flat bool, spacing float64, origin Point) Layout {
	o := Pointy
	if flat {
		o = Flat
	}
	if spacing == 0 {
		spacing = 1
	}
	return Layout{Orientation: o, Size: size, Origin: origin, Spacing: spacing}
}

// HexToPixel returns the pixel centre of h.
func HexToPixel(h Hex, l Layout) Point {
	m := l.Orientation
	q, r := float64(h.Q), float64(h.R)
	x := (m.F0*q + m.F1*r) * l.Size.X * l.Spacing
	y := (m.F2*q + m.F3*r) * l.Size.Y * l.Spacing
	return Point{X: x + l.Origin.X, Y: y + l.Origin.Y}
}

// PixelToFractional inverts HexToPixel without rounding.
func PixelToFractional(p Point, l Layout) FractionalHex {
	m := l.Orientation
	x := (p.X - l.Origin.X) / (l.Size.X * l.Spacing)
	y := (p.Y - l.Origin.Y) / (l.Size.Y * l.Spacing)
	q := m.B0*x + m.B1*y
	r := m.B2*x + m.B3*y
	return FractionalHex{Q: q, R: r, S: -q - r}
}

// PixelToHex returns the hex containing p.
func PixelToHex(p Point, l Layout) Hex {
	return Round(PixelToFractional(p, l))
}

// CornerOffset returns the offset of corner i from a hex centre.
func CornerOffset(i int, l Layout) Point {
	angle := 2 * math.Pi * (l.Orientation.StartAngle + float64(i)) / 6
	return Point{X: l.Size.X * math.Cos(angle), Y: l.Size.Y * math.Sin(angle)}
}

// Corners returns the six polygon corners of h. Spacing moves centres
// apart but does not grow the polygons.
func Corners(h Hex, l Layout) [6]Point {
	var out [6]Point
	c := HexToPixel(h, l)
	for i := range out {
		off := CornerOffset(i, l)
		out[i] = Point{X: c.X + off.X, Y: c.Y + off.Y}
	}
	return out
}
