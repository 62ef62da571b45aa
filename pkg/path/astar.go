package path

import (
	"container/heap"
	"math"

	"github.com/gravitas-games/hexgrid/pkg/hex"
)

// AStar computes a shortest path using the A* algorithm.
// - start, goal: hex coordinates
// - h: admissible heuristic (e.g., hex.Distance to goal)
// - neighbors: returns adjacent hexes to explore
// - cost: edge cost between two adjacent hexes (values below 1 count as 1)
// Returns the path including start and goal, or nil if no path exists.
func AStar(start, goal hex.Hex,
	h func(a hex.Hex) int,
	neighbors func(a hex.Hex) []hex.Hex,
	cost func(a, b hex.Hex) int,
) []hex.Hex {
	if start == goal {
		return []hex.Hex{start}
	}
	open := &nodePQ{}
	heap.Init(open)
	push := func(a hex.Hex, f float64) { heap.Push(open, &pqNode{a: a, f: f}) }

	g := map[hex.Hex]int{start: 0}
	came := map[hex.Hex]hex.Hex{}
	closed := map[hex.Hex]bool{}
	push(start, float64(h(start)))

	for open.Len() > 0 {
		cur := heap.Pop(open).(*pqNode).a
		if closed[cur] {
			continue
		}
		closed[cur] = true
		if cur == goal {
			return reconstruct(came, start, goal)
		}
		for _, nb := range neighbors(cur) {
			if closed[nb] {
				continue
			}
			step := 1
			if cost != nil {
				step = max(cost(cur, nb), 1)
			}
			tentative := g[cur] + step
			if old, ok := g[nb]; !ok || tentative < old {
				g[nb] = tentative
				came[nb] = cur
				f := float64(tentative + h(nb))
				// guard against NaN/Inf
				if math.IsNaN(f) || math.IsInf(f, 0) {
					f = float64(tentative)
				}
				push(nb, f)
			}
		}
	}
	return nil
}

// reconstruct walks came back from goal to start and returns the path in
// forward order.
func reconstruct(came map[hex.Hex]hex.Hex, start, goal hex.Hex) []hex.Hex {
	path := []hex.Hex{goal}
	for k := goal; k != start; {
		k = came[k]
		path = append(path, k)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

type pqNode struct {
	a   hex.Hex
	f   float64
	idx int
}

type nodePQ []*pqNode

func (p nodePQ) Len() int           { return len(p) }
func (p nodePQ) Less(i, j int) bool { return p[i].f < p[j].f }
func (p nodePQ) Swap(i, j int)      { p[i], p[j] = p[j], p[i]; p[i].idx = i; p[j].idx = j }
func (p *nodePQ) Push(x any)        { *p = append(*p, x.(*pqNode)) }
func (p *nodePQ) Pop() any {
	old := *p
	n := len(old)
	x := old[n-1]
	*p = old[:n-1]
	return x
}

// HeuristicTo returns the hex distance heuristic towards goal.
func HeuristicTo(goal hex.Hex) func(a hex.Hex) int {
	return func(a hex.Hex) int { return hex.Distance(a, goal) }
}

// NeighborsWithinDisc limits neighbours to the disc of radius R around center.
func NeighborsWithinDisc(center hex.Hex, R int) func(a hex.Hex) []hex.Hex {
	return func(a hex.Hex) []hex.Hex {
		out := make([]hex.Hex, 0, 6)
		for _, b := range a.Neighbors() {
			if hex.Distance(center, b) <= R {
				out = append(out, b)
			}
		}
		return out
	}
}

// NeighborsFromSet returns the neighbours that are in set and passable.
// A nil passable accepts every member of set.
func NeighborsFromSet(set map[hex.Hex]bool, passable func(a hex.Hex) bool) func(a hex.Hex) []hex.Hex {
	return func(a hex.Hex) []hex.Hex {
		out := make([]hex.Hex, 0, 6)
		for _, b := range a.Neighbors() {
			if set[b] && (passable == nil || passable(b)) {
				out = append(out, b)
			}
		}
		return out
	}
}
