package gamemap

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileFloor TileKind = iota
	TileWall
)

// Tile holds the kind and passability of one map cell.
type Tile struct {
	Kind     TileKind
	Walkable bool
}

// MakeWall returns a blocking wall tile.
func MakeWall() Tile {
	return Tile{Kind: TileWall, Walkable: false}
}

// MakeFloor returns a passable floor tile.
func MakeFloor() Tile {
	return Tile{Kind: TileFloor, Walkable: true}
}
