package path

import "github.com/gravitas-games/hexgrid/pkg/hex"

// BFSPath finds a shortest path by breadth-first search. Neighbours are
// expanded in the order the callback returns them, so ties resolve the
// same way on every call. Returns nil if goal is unreachable.
func BFSPath(start, goal hex.Hex, neighbors func(a hex.Hex) []hex.Hex) []hex.Hex {
	if start == goal {
		return []hex.Hex{start}
	}
	prev := make(map[hex.Hex]hex.Hex)
	visited := map[hex.Hex]bool{start: true}
	q := []hex.Hex{start}
	for len(q) > 0 {
		cur := q[0]
		q = q[1:]
		for _, nxt := range neighbors(cur) {
			if visited[nxt] {
				continue
			}
			visited[nxt] = true
			prev[nxt] = cur
			if nxt == goal {
				return reconstruct(prev, start, goal)
			}
			q = append(q, nxt)
		}
	}
	return nil
}

// Reachable returns every hex that can be reached from start in at most
// steps moves, grouped by distance: out[k] holds the hexes first reached
// after k moves. out[0] is [start]. A negative steps yields nil.
func Reachable(start hex.Hex, steps int, neighbors func(a hex.Hex) []hex.Hex) [][]hex.Hex {
	if steps < 0 {
		return nil
	}
	visited := map[hex.Hex]bool{start: true}
	fringes := [][]hex.Hex{{start}}
	for k := 1; k <= steps; k++ {
		var next []hex.Hex
		for _, cur := range fringes[k-1] {
			for _, nb := range neighbors(cur) {
				if visited[nb] {
					continue
				}
				visited[nb] = true
				next = append(next, nb)
			}
		}
		if len(next) == 0 {
			break
		}
		fringes = append(fringes, next)
	}
	return fringes
}
