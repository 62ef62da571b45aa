package hex

// Parallelogram returns every (q, r) with q in [q1,q2] and r in [r1,r2],
// q-major.
func Parallelogram(q1, q2, r1, r2 int) []Hex {
	res := make([]Hex, 0, span(q1, q2)*span(r1, r2))
	for q := q1; q <= q2; q++ {
		for r := r1; r <= r2; r++ {
			res = append(res, Hex{q, r})
		}
	}
	return res
}

// Triangle returns the right triangle with q in [0,size] and r in [0,size-q].
func Triangle(size int) []Hex {
	res := make([]Hex, 0, max(0, (size+1)*(size+2)/2))
	for q := 0; q <= size; q++ {
		for r := 0; r <= size-q; r++ {
			res = append(res, Hex{q, r})
		}
	}
	return res
}

// Hexagon returns the filled hexagon of the given radius around the origin.
func Hexagon(radius int) []Hex { return Disk(Hex{}, radius) }

// Disk returns all coordinates at distance <= radius from c, q-major.
func Disk(c Hex, radius int) []Hex {
	if radius < 0 {
		return []Hex{}
	}
	res := make([]Hex, 0, 1+3*radius*(radius+1))
	for q := -radius; q <= radius; q++ {
		for r := max(-radius, -q-radius); r <= min(radius, -q+radius); r++ {
			res = append(res, c.Add(Hex{q, r}))
		}
	}
	return res
}

// Rectangle returns a width x height block whose rows are shifted by
// floor(r/2) so it renders as a rectangle with pointy-top hexes.
func Rectangle(width, height int) []Hex {
	res := make([]Hex, 0, max(0, width)*max(0, height))
	for r := 0; r < height; r++ {
		offset := floorHalf(r)
		for q := -offset; q < width-offset; q++ {
			res = append(res, Hex{q, r})
		}
	}
	return res
}

// OrientedRectangle is Rectangle with the roles of q and r swapped, for
// flat-top hexes.
func OrientedRectangle(width, height int) []Hex {
	res := make([]Hex, 0, max(0, width)*max(0, height))
	for q := 0; q < width; q++ {
		offset := floorHalf(q)
		for r := -offset; r < height-offset; r++ {
			res = append(res, Hex{q, r})
		}
	}
	return res
}

// Ring returns the hexes at exactly distance radius from c, starting at
// c + Direction(4)*radius and walking the six sides in direction order.
// Ring(c, 0) is [c]; a negative radius yields nothing.
func Ring(c Hex, radius int) []Hex {
	if radius < 0 {
		return []Hex{}
	}
	if radius == 0 {
		return []Hex{c}
	}
	res := make([]Hex, 0, 6*radius)
	cur := c.Add(Direction(4).Scale(radius))
	for side := 0; side < 6; side++ {
		for step := 0; step < radius; step++ {
			res = append(res, cur)
			cur = cur.Neighbor(side)
		}
	}
	return res
}

// Spiral returns c followed by Ring(c, 1) .. Ring(c, radius).
func Spiral(c Hex, radius int) []Hex {
	if radius < 0 {
		return []Hex{}
	}
	res := make([]Hex, 0, 1+3*radius*(radius+1))
	res = append(res, c)
	for k := 1; k <= radius; k++ {
		res = append(res, Ring(c, k)...)
	}
	return res
}

func span(lo, hi int) int { return max(0, hi-lo+1) }

// floorHalf is floor(n/2), also for negative n.
func floorHalf(n int) int { return n >> 1 }
