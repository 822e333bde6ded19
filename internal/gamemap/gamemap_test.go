package gamemap

import "testing"

func TestInBounds(t *testing.T) {
	m := New(1, 10, 8)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 8, false},
	}
	for _, c := range cases {
		got := m.InBounds(c.x, c.y)
		if got != c.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestBordered(t *testing.T) {
	m := Bordered(1, 6, 4)
	cases := []struct {
		name string
		x, y int
		want TileKind
	}{
		{"top-left corner", 0, 0, TileWall},
		{"bottom edge", 3, 3, TileWall},
		{"right edge", 5, 1, TileWall},
		{"interior", 2, 1, TileFloor},
		{"interior far", 4, 2, TileFloor},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.At(tc.x, tc.y).Kind; got != tc.want {
				t.Errorf("At(%d,%d).Kind = %v; want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestIsWalkable(t *testing.T) {
	m := New(1, 5, 5)
	if !m.IsWalkable(2, 2) {
		t.Error("floor tile should be walkable")
	}
	m.Set(2, 2, MakeWall())
	if m.IsWalkable(2, 2) {
		t.Error("wall tile should not be walkable")
	}
	if m.IsWalkable(-1, 0) {
		t.Error("out-of-bounds should not be walkable")
	}
}

func TestBorderedDegenerate(t *testing.T) {
	m := Bordered(1, 0, 0)
	if len(m.Tiles) != 0 {
		t.Fatalf("expected empty tile slice, got %d", len(m.Tiles))
	}
}
