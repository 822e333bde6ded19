package component

// Alive is the liveness flag. Entities are never removed; consumers filter on it.
type Alive struct {
	Alive bool
}
