package hex

import (
	"reflect"
	"testing"
)

func TestParallelogram(t *testing.T) {
	if got := Parallelogram(0, 0, 0, 0); !reflect.DeepEqual(got, []Hex{{0, 0}}) {
		t.Fatalf("single cell: got %v", got)
	}
	got := Parallelogram(-1, 1, 0, 2)
	if len(got) != 9 {
		t.Fatalf("expected 9 hexes, got %d", len(got))
	}
	if got[0] != New(-1, 0) || got[1] != New(-1, 1) || got[8] != New(1, 2) {
		t.Fatalf("unexpected order: %v", got)
	}
	if got := Parallelogram(2, 1, 0, 0); len(got) != 0 {
		t.Fatalf("inverted range should be empty, got %v", got)
	}
}

func TestTriangle(t *testing.T) {
	want := []Hex{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {2, 0}}
	if got := Triangle(2); !reflect.DeepEqual(got, want) {
		t.Fatalf("Triangle(2): got %v, want %v", got, want)
	}
	for size := 0; size <= 6; size++ {
		if n := len(Triangle(size)); n != (size+1)*(size+2)/2 {
			t.Fatalf("Triangle(%d) has %d hexes", size, n)
		}
	}
	if got := Triangle(-1); len(got) != 0 {
		t.Fatalf("Triangle(-1): got %v", got)
	}
}

func TestHexagon(t *testing.T) {
	if got := Hexagon(0); !reflect.DeepEqual(got, []Hex{{0, 0}}) {
		t.Fatalf("Hexagon(0): got %v", got)
	}
	one := Hexagon(1)
	if len(one) != 7 {
		t.Fatalf("Hexagon(1) has %d hexes", len(one))
	}
	set := toSet(one)
	if !set[Hex{}] {
		t.Fatalf("Hexagon(1) missing centre")
	}
	for _, n := range (Hex{}).Neighbors() {
		if !set[n] {
			t.Fatalf("Hexagon(1) missing neighbor %v", n)
		}
	}
	for r := 0; r <= 6; r++ {
		hs := Hexagon(r)
		if len(hs) != 3*r*(r+1)+1 {
			t.Fatalf("Hexagon(%d) has %d hexes", r, len(hs))
		}
		for _, h := range hs {
			if h.Length() > r {
				t.Fatalf("Hexagon(%d) contains %v", r, h)
			}
		}
	}
	if got := Hexagon(-1); len(got) != 0 {
		t.Fatalf("Hexagon(-1): got %v", got)
	}
}

func TestRectangle(t *testing.T) {
	got := Rectangle(3, 4)
	if len(got) != 12 {
		t.Fatalf("expected 12 hexes, got %d", len(got))
	}
	want := []Hex{
		{0, 0}, {1, 0}, {2, 0},
		{0, 1}, {1, 1}, {2, 1},
		{-1, 2}, {0, 2}, {1, 2},
		{-1, 3}, {0, 3}, {1, 3},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Rectangle(3,4): got %v", got)
	}
	if got := Rectangle(0, 5); len(got) != 0 {
		t.Fatalf("zero width: got %v", got)
	}
	if got := Rectangle(-2, 3); len(got) != 0 {
		t.Fatalf("negative width: got %v", got)
	}
}

func TestOrientedRectangle(t *testing.T) {
	want := []Hex{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, -1}, {2, 0}}
	if got := OrientedRectangle(3, 2); !reflect.DeepEqual(got, want) {
		t.Fatalf("OrientedRectangle(3,2): got %v", got)
	}
}

func TestRing(t *testing.T) {
	want := []Hex{{-1, 1}, {0, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, 0}}
	if got := Ring(Hex{}, 1); !reflect.DeepEqual(got, want) {
		t.Fatalf("Ring(origin,1): got %v", got)
	}
	c := New(2, -1)
	for r := 1; r <= 5; r++ {
		ring := Ring(c, r)
		if len(ring) != 6*r {
			t.Fatalf("Ring radius %d has %d hexes", r, len(ring))
		}
		if ring[0] != c.Add(Direction(4).Scale(r)) {
			t.Fatalf("Ring radius %d starts at %v", r, ring[0])
		}
		if len(toSet(ring)) != len(ring) {
			t.Fatalf("Ring radius %d has duplicates", r)
		}
		for _, h := range ring {
			if Distance(c, h) != r {
				t.Fatalf("Ring radius %d contains %v at distance %d", r, h, Distance(c, h))
			}
		}
	}
	if got := Ring(c, 0); !reflect.DeepEqual(got, []Hex{c}) {
		t.Fatalf("Ring radius 0: got %v", got)
	}
	if got := Ring(c, -2); len(got) != 0 {
		t.Fatalf("Ring radius -2: got %v", got)
	}
}

func TestSpiral(t *testing.T) {
	c := New(-3, 4)
	for r := 0; r <= 5; r++ {
		sp := Spiral(c, r)
		want := []Hex{c}
		for k := 1; k <= r; k++ {
			want = append(want, Ring(c, k)...)
		}
		if !reflect.DeepEqual(sp, want) {
			t.Fatalf("Spiral radius %d is not centre plus rings", r)
		}
		if len(sp) != 1+3*r*(r+1) {
			t.Fatalf("Spiral radius %d has %d hexes", r, len(sp))
		}
		set := toSet(sp)
		if len(set) != len(sp) {
			t.Fatalf("Spiral radius %d has duplicates", r)
		}
		for _, h := range Disk(c, r) {
			if !set[h] {
				t.Fatalf("Spiral radius %d missing %v", r, h)
			}
		}
	}
	if got := Spiral(c, -1); len(got) != 0 {
		t.Fatalf("Spiral radius -1: got %v", got)
	}
}

func toSet(hs []Hex) map[Hex]bool {
	set := make(map[Hex]bool, len(hs))
	for _, h := range hs {
		set[h] = true
	}
	return set
}
