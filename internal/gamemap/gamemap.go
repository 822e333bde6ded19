package gamemap

// ID names one map. Entities point at their map through a MapIndex component.
type ID uint32

// GameMap holds the tile grid for one map.
type GameMap struct {
	ID            ID
	Width, Height uint16
	Tiles         []Tile // row-major, len == Width*Height
}

// New creates a GameMap filled with floor.
func New(id ID, width, height uint16) *GameMap {
	tiles := make([]Tile, int(width)*int(height))
	for i := range tiles {
		tiles[i] = MakeFloor()
	}
	return &GameMap{ID: id, Width: width, Height: height, Tiles: tiles}
}

// Bordered creates a map with walls along its edge and floor inside.
func Bordered(id ID, width, height uint16) *GameMap {
	m := New(id, width, height)
	if width == 0 || height == 0 {
		return m
	}
	xMax, yMax := int(width)-1, int(height)-1
	for y := 0; y <= yMax; y++ {
		for x := 0; x <= xMax; x++ {
			if y == 0 || y == yMax || x == 0 || x == xMax {
				m.Set(x, y, MakeWall())
			}
		}
	}
	return m
}

// InBounds reports whether (x, y) is within [0, Width) x [0, Height).
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < int(m.Width) && y >= 0 && y < int(m.Height)
}

// At returns a pointer to the tile at (x, y). Panics if out of bounds.
func (m *GameMap) At(x, y int) *Tile {
	return &m.Tiles[y*int(m.Width)+x]
}

// Set replaces the tile at (x, y).
func (m *GameMap) Set(x, y int, t Tile) {
	m.Tiles[y*int(m.Width)+x] = t
}

// IsWalkable returns true when (x, y) is in bounds and walkable.
func (m *GameMap) IsWalkable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.At(x, y).Walkable
}
