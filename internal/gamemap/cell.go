package gamemap

import (
	"github.com/gravitas-games/hexgrid/pkg/hex"
	"github.com/gravitas-games/hexgrid/pkg/models"
)

// Cell is one hex on the board with its presentation payload.
type Cell struct {
	Hex   hex.Hex
	Attrs models.Attributes
}

// ID returns the lookup key of the cell.
func (c *Cell) ID() string { return c.Hex.ID() }

// Center returns the pixel centre of the cell under l.
func (c *Cell) Center(l hex.Layout) hex.Point { return hex.HexToPixel(c.Hex, l) }

// Corners returns the polygon of the cell under l.
func (c *Cell) Corners(l hex.Layout) [6]hex.Point { return hex.Corners(c.Hex, l) }
