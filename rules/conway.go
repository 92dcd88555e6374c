package rules

import (
	"go-life/model"
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// NextState computes the next state of interior cell (r, c) reading only the
// snapshot taken before the generation step. A live cell with fewer than 2 or
// more than 3 live neighbors dies; a dead cell with exactly 3 live neighbors
// is born; everything else is unchanged. Total over interior coordinates.
func NextState(snapshot *model.Grid, r, c int) model.Cell {
	neighbors := snapshot.CountNeighbors(r, c)
	if ApplyConwayRules(neighbors, snapshot.Get(r, c) == model.Alive) {
		return model.Alive
	}
	return model.Dead
}
