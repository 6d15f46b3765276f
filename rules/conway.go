package rules

import "github.com/sheikhrachel/go-life/model"

// neighbourOffsets is the Moore neighbourhood as (row, column) deltas
var neighbourOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// CountAliveNeighbours counts the live cells around (row, column). Positions
// past the edge are skipped, never wrapped.
func CountAliveNeighbours(row, column int, board *model.Board) int {
	count := 0
	for _, offset := range neighbourOffsets {
		r, c := row+offset[0], column+offset[1]
		if r < 0 || c < 0 || r >= board.Rows() || c >= board.Columns() {
			continue
		}
		count += int(board.Get(r, c))
	}
	return count
}

// EvolveCell returns the next state of the cell at (row, column)
func EvolveCell(row, column int, board *model.Board) uint8 {
	alive := board.Get(row, column) == model.Alive
	if ApplyConwayRules(CountAliveNeighbours(row, column, board), alive) {
		return model.Alive
	}
	return model.Dead
}

// EvolveBoard computes the next generation into a new board taken from pool
// (nil allocates). board is only read, so every cell sees the same generation.
func EvolveBoard(board *model.Board, pool *model.BoardPool) *model.Board {
	next := pool.Get(board.Rows(), board.Columns())
	for row := range board.Rows() {
		for column := range board.Columns() {
			next.Set(row, column, EvolveCell(row, column, board))
		}
	}
	return next
}
