package path

import "github.com/gravitas-games/hexgrid/pkg/hex"

// nudge keeps sample points off hex edges so rounding is consistent
// along the line.
var nudge = hex.FractionalHex{Q: 1e-6, R: 2e-6, S: -3e-6}

// Line returns the hexes on the straight line from a to b, inclusive,
// one per step.
func Line(a, b hex.Hex) []hex.Hex {
	n := hex.Distance(a, b)
	if n == 0 {
		return []hex.Hex{a}
	}
	fa := a.Fractional().Add(nudge)
	fb := b.Fractional().Add(nudge)
	res := make([]hex.Hex, 0, n+1)
	step := 1.0 / float64(n)
	for i := 0; i <= n; i++ {
		res = append(res, hex.Round(hex.HexLerp(fa, fb, step*float64(i))))
	}
	return res
}
