package model

// Cell is the state of a single grid position.
type Cell uint8

const (
	// Dead is the zero value so freshly allocated grids start dead.
	Dead Cell = iota
	Alive
)
