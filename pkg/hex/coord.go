package hex

import (
	"math"
	"strconv"
)

// Hex is a resolved cube coordinate. S is derived from Q and R so the
// q+r+s == 0 invariant always holds.
type Hex struct {
	Q int
	R int
}

// New returns the hex at axial (q, r).
func New(q, r int) Hex { return Hex{Q: q, R: r} }

// S returns the third cube component.
func (h Hex) S() int { return -h.Q - h.R }

// Directions holds the six unit vectors in fixed order. Ring and spiral
// traversal depend on this order.
var Directions = [6]Hex{
	{+1, 0}, {+1, -1}, {0, -1}, {-1, 0}, {-1, +1}, {0, +1},
}

// Equal reports whether a and b are the same hex.
func (h Hex) Equal(b Hex) bool { return h.Q == b.Q && h.R == b.R }

// Add returns h+b.
func (h Hex) Add(b Hex) Hex { return Hex{h.Q + b.Q, h.R + b.R} }

// Subtract returns h-b.
func (h Hex) Subtract(b Hex) Hex { return Hex{h.Q - b.Q, h.R - b.R} }

// Scale multiplies every component by k.
func (h Hex) Scale(k int) Hex { return Hex{h.Q * k, h.R * k} }

// Length is the number of steps from the origin.
func (h Hex) Length() int {
	return (abs(h.Q) + abs(h.R) + abs(h.S())) / 2
}

// Distance returns the hex distance between a and b.
func Distance(a, b Hex) int { return a.Subtract(b).Length() }

// Direction returns the unit vector for d. Any integer is accepted; it is
// reduced into [0,6) so Direction(-1) == Direction(5).
func Direction(d int) Hex { return Directions[(6+d%6)%6] }

// Neighbor returns the adjacent hex in direction d.
func (h Hex) Neighbor(d int) Hex { return h.Add(Direction(d)) }

// Neighbors returns all six adjacent hexes in direction order.
func (h Hex) Neighbors() [6]Hex {
	var out [6]Hex
	for i := range Directions {
		out[i] = h.Neighbor(i)
	}
	return out
}

// ID returns the canonical "q,r,s" key.
func (h Hex) ID() string {
	return strconv.Itoa(h.Q) + "," + strconv.Itoa(h.R) + "," + strconv.Itoa(h.S())
}

func (h Hex) String() string { return h.ID() }

// Fractional converts h for use in interpolation.
func (h Hex) Fractional() FractionalHex {
	return FractionalHex{float64(h.Q), float64(h.R), float64(h.S())}
}

// FractionalHex is an unresolved cube coordinate, the result of pixel
// inversion or interpolation. Its components may drift off q+r+s == 0
// and NaN/Inf propagate unchecked. Pass it through Round to get a Hex.
type FractionalHex struct {
	Q float64
	R float64
	S float64
}

// Equal compares all three components exactly.
func (f FractionalHex) Equal(b FractionalHex) bool {
	return f.Q == b.Q && f.R == b.R && f.S == b.S
}

func (f FractionalHex) Add(b FractionalHex) FractionalHex {
	return FractionalHex{f.Q + b.Q, f.R + b.R, f.S + b.S}
}

func (f FractionalHex) Subtract(b FractionalHex) FractionalHex {
	return FractionalHex{f.Q - b.Q, f.R - b.R, f.S - b.S}
}

func (f FractionalHex) Scale(k float64) FractionalHex {
	return FractionalHex{f.Q * k, f.R * k, f.S * k}
}

func (f FractionalHex) Length() float64 {
	return (math.Abs(f.Q) + math.Abs(f.R) + math.Abs(f.S)) / 2
}

// ID formats the components verbatim, without rounding.
func (f FractionalHex) ID() string {
	return formatFloat(f.Q) + "," + formatFloat(f.R) + "," + formatFloat(f.S)
}

// Round snaps f to the nearest hex. Each axis is rounded half-up on its
// own, then the axis with the largest residual is recomputed from the
// other two. Ties resolve q first, then r, then s.
func Round(f FractionalHex) Hex {
	rq := roundHalfUp(f.Q)
	rr := roundHalfUp(f.R)
	rs := roundHalfUp(f.S)

	dq := math.Abs(rq - f.Q)
	dr := math.Abs(rr - f.R)
	ds := math.Abs(rs - f.S)

	if dq > dr && dq > ds {
		rq = -rr - rs
	} else if dr > ds {
		rr = -rq - rs
	}
	// s is derived, nothing to fix in the last branch.
	return Hex{Q: int(rq), R: int(rr)}
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 { return a + (b-a)*t }

// HexLerp interpolates each component. The result is not rounded so
// callers can sample continuous paths.
func HexLerp(a, b FractionalHex, t float64) FractionalHex {
	return FractionalHex{
		Q: Lerp(a.Q, b.Q, t),
		R: Lerp(a.R, b.R, t),
		S: Lerp(a.S, b.S, t),
	}
}

// roundHalfUp rounds .5 towards +Inf, so -0.5 becomes 0.
func roundHalfUp(x float64) float64 { return math.Floor(x + 0.5) }

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
