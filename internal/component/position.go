package component

// Position is a map cell. Coordinates are bounded by the owning map's size.
type Position struct {
	X, Y uint16
}
