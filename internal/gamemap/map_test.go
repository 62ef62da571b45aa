package gamemap

import (
	"errors"
	"math"
	"testing"

	"github.com/gravitas-games/hexgrid/pkg/hex"
	"github.com/gravitas-games/hexgrid/pkg/models"
)

func newTestBoard() *Board {
	return New(hex.HexagonShape{Radius: 2}, hex.NewLayout(hex.Point{X: 10, Y: 10}, false, 1, hex.Point{}))
}

func TestNewBoardFollowsShape(t *testing.T) {
	b := newTestBoard()
	if b.Len() != 19 {
		t.Fatalf("expected 19 cells, got %d", b.Len())
	}
	want := hex.Hexagon(2)
	for i, h := range b.Hexes() {
		if h != want[i] {
			t.Fatalf("cell %d is %v, want %v", i, h, want[i])
		}
	}
	c, ok := b.Lookup("1,-1,0")
	if !ok || c.Hex != hex.New(1, -1) || c.ID() != "1,-1,0" {
		t.Fatalf("lookup by ID failed: %v %v", c, ok)
	}
	if b.Contains(hex.New(3, 0)) {
		t.Fatalf("board should not contain (3,0)")
	}
	if empty := New(nil, b.Layout); empty.Len() != 0 {
		t.Fatalf("nil shape should give an empty board")
	}
}

func TestSetAndUpdate(t *testing.T) {
	b := newTestBoard()
	h := hex.New(0, 1)
	if err := b.Set(h, models.Attributes{Fill: "red", Text: "x"}); err != nil {
		t.Fatalf("unexpected set error: %v", err)
	}
	if err := b.Update(h, models.Attributes{Text: "y"}); err != nil {
		t.Fatalf("unexpected update error: %v", err)
	}
	c, _ := b.Get(h)
	if c.Attrs.Fill != "red" || c.Attrs.Text != "y" {
		t.Fatalf("unexpected attrs: %+v", c.Attrs)
	}
	if err := b.Set(hex.New(9, 9), models.Attributes{}); !errors.Is(err, ErrOutOfBoard) {
		t.Fatalf("expected ErrOutOfBoard, got %v", err)
	}
	if err := b.Update(hex.New(9, 9), models.Attributes{}); !errors.Is(err, ErrOutOfBoard) {
		t.Fatalf("expected ErrOutOfBoard, got %v", err)
	}
}

func TestAtPicksCell(t *testing.T) {
	b := newTestBoard()
	for _, c := range b.Cells() {
		p := c.Center(b.Layout)
		got, ok := b.At(hex.Point{X: p.X + 1, Y: p.Y - 1})
		if !ok || got != c {
			t.Fatalf("At near %v returned %v", c.Hex, got)
		}
	}
	if _, ok := b.At(hex.Point{X: 500, Y: 500}); ok {
		t.Fatalf("expected no cell far outside the board")
	}
}

func TestPathAvoidsBlocked(t *testing.T) {
	b := newTestBoard()
	for _, h := range []hex.Hex{hex.New(1, 0), hex.New(1, -1)} {
		if err := b.Set(h, models.Attributes{Blocked: true}); err != nil {
			t.Fatalf("unexpected set error: %v", err)
		}
	}
	p, err := b.Path(hex.New(0, 0), hex.New(2, -1))
	if err != nil {
		t.Fatalf("unexpected path error: %v", err)
	}
	if len(p) != 5 {
		t.Fatalf("expected 5-hex detour, got %v", p)
	}
	for _, h := range p {
		if !b.Passable(h) {
			t.Fatalf("path crosses %v", h)
		}
	}

	if _, err := b.Path(hex.New(0, 0), hex.New(5, 0)); !errors.Is(err, ErrOutOfBoard) {
		t.Fatalf("expected ErrOutOfBoard, got %v", err)
	}
	if _, err := b.Path(hex.New(0, 0), hex.New(1, 0)); !errors.Is(err, ErrNoPath) {
		t.Fatalf("expected ErrNoPath into a blocked hex, got %v", err)
	}
}

func TestReachable(t *testing.T) {
	b := newTestBoard()
	fr, err := b.Reachable(hex.New(0, 0), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	total := 0
	for _, f := range fr {
		total += len(f)
	}
	if len(fr) != 3 || total != b.Len() {
		t.Fatalf("expected 3 fringes covering %d cells, got %d fringes, %d cells", b.Len(), len(fr), total)
	}
	if _, err := b.Reachable(hex.New(7, 0), 1); !errors.Is(err, ErrOutOfBoard) {
		t.Fatalf("expected ErrOutOfBoard, got %v", err)
	}
}

func TestBounds(t *testing.T) {
	b := New(hex.HexagonShape{Radius: 0}, hex.NewLayout(hex.Point{X: 10, Y: 10}, true, 1, hex.Point{}))
	lo, hi := b.Bounds()
	if math.Abs(lo.X+10) > 1e-9 || math.Abs(hi.X-10) > 1e-9 {
		t.Fatalf("flat hex x bounds: %v %v", lo, hi)
	}
	h := 10 * math.Sqrt(3) / 2
	if math.Abs(lo.Y+h) > 1e-9 || math.Abs(hi.Y-h) > 1e-9 {
		t.Fatalf("flat hex y bounds: %v %v", lo, hi)
	}
}
