package gamemap

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/gravitas-games/hexgrid/pkg/hex"
	"github.com/gravitas-games/hexgrid/pkg/models"
	"github.com/gravitas-games/hexgrid/pkg/path"
)

var (
	// ErrOutOfBoard is returned when a hex is not part of the board.
	ErrOutOfBoard = errors.New("hex is not on the board")
	// ErrNoPath is returned when no passable route joins two hexes.
	ErrNoPath = errors.New("no path between hexes")
)

// Board holds the cells of one generated grid shape, keyed by hex ID,
// together with the layout used to place them in pixel space.
type Board struct {
	Layout hex.Layout
	Shape  hex.Shape

	cells map[string]*Cell
	order []*Cell // generation order
}

// New generates the cells of shape and returns a board with empty
// attributes on every cell.
func New(shape hex.Shape, layout hex.Layout) *Board {
	kind := "empty"
	if shape != nil {
		kind = shape.Kind().String()
	}
	log.Printf("Generating %s board", kind)

	hexes := hex.Generate(shape)
	b := &Board{
		Layout: layout,
		Shape:  shape,
		cells:  make(map[string]*Cell, len(hexes)),
		order:  make([]*Cell, 0, len(hexes)),
	}
	for _, h := range hexes {
		id := h.ID()
		if _, exists := b.cells[id]; exists {
			continue
		}
		c := &Cell{Hex: h}
		b.cells[id] = c
		b.order = append(b.order, c)
	}

	log.Printf("Board generated with %d cells", len(b.order))
	return b
}

// Get retrieves the cell at h.
func (b *Board) Get(h hex.Hex) (*Cell, bool) {
	c, exists := b.cells[h.ID()]
	return c, exists
}

// Lookup retrieves a cell by its "q,r,s" ID.
func (b *Board) Lookup(id string) (*Cell, bool) {
	c, exists := b.cells[id]
	return c, exists
}

// Contains reports whether h is on the board.
func (b *Board) Contains(h hex.Hex) bool {
	_, ok := b.cells[h.ID()]
	return ok
}

// Len returns the number of cells.
func (b *Board) Len() int { return len(b.order) }

// Cells returns the cells in generation order.
func (b *Board) Cells() []*Cell {
	out := make([]*Cell, len(b.order))
	copy(out, b.order)
	return out
}

// Hexes returns the coordinates in generation order.
func (b *Board) Hexes() []hex.Hex {
	out := make([]hex.Hex, len(b.order))
	for i, c := range b.order {
		out[i] = c.Hex
	}
	return out
}

// Set replaces the attributes of the cell at h.
func (b *Board) Set(h hex.Hex, attrs models.Attributes) error {
	c, ok := b.Get(h)
	if !ok {
		return fmt.Errorf("set %s: %w", h.ID(), ErrOutOfBoard)
	}
	c.Attrs = attrs
	return nil
}

// Update merges attrs into the cell at h.
func (b *Board) Update(h hex.Hex, attrs models.Attributes) error {
	c, ok := b.Get(h)
	if !ok {
		return fmt.Errorf("update %s: %w", h.ID(), ErrOutOfBoard)
	}
	c.Attrs = c.Attrs.Merge(attrs)
	return nil
}

// At returns the cell under pixel p.
func (b *Board) At(p hex.Point) (*Cell, bool) {
	return b.Get(hex.PixelToHex(p, b.Layout))
}

// Passable reports whether h is on the board and not blocked.
func (b *Board) Passable(h hex.Hex) bool {
	c, ok := b.Get(h)
	return ok && !c.Attrs.IsBlocked()
}

// Neighbors returns the passable neighbours of h in direction order.
func (b *Board) Neighbors(h hex.Hex) []hex.Hex {
	out := make([]hex.Hex, 0, 6)
	for _, n := range h.Neighbors() {
		if b.Passable(n) {
			out = append(out, n)
		}
	}
	return out
}

// Path returns a shortest passable route from one hex to another,
// both inclusive.
func (b *Board) Path(from, to hex.Hex) ([]hex.Hex, error) {
	if !b.Contains(from) {
		return nil, fmt.Errorf("path from %s: %w", from.ID(), ErrOutOfBoard)
	}
	if !b.Contains(to) {
		return nil, fmt.Errorf("path to %s: %w", to.ID(), ErrOutOfBoard)
	}
	p := path.AStar(from, to, path.HeuristicTo(to), b.Neighbors, nil)
	if p == nil {
		return nil, fmt.Errorf("path %s -> %s: %w", from.ID(), to.ID(), ErrNoPath)
	}
	return p, nil
}

// Reachable returns the passable hexes within steps moves of from,
// grouped by move count.
func (b *Board) Reachable(from hex.Hex, steps int) ([][]hex.Hex, error) {
	if !b.Contains(from) {
		return nil, fmt.Errorf("reachable from %s: %w", from.ID(), ErrOutOfBoard)
	}
	return path.Reachable(from, steps, b.Neighbors), nil
}

// Bounds returns the pixel bounding box of every cell polygon. An empty
// board yields two zero points.
func (b *Board) Bounds() (lo, hi hex.Point) {
	if len(b.order) == 0 {
		return hex.Point{}, hex.Point{}
	}
	lo = hex.Point{X: math.Inf(1), Y: math.Inf(1)}
	hi = hex.Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, c := range b.order {
		for _, p := range c.Corners(b.Layout) {
			lo.X = math.Min(lo.X, p.X)
			lo.Y = math.Min(lo.Y, p.Y)
			hi.X = math.Max(hi.X, p.X)
			hi.Y = math.Max(hi.Y, p.Y)
		}
	}
	return lo, hi
}
