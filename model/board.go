package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"

	"github.com/pkg/errors"
)

const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

// ErrTooManyCells is returned when more alive cells are requested than the board holds
var ErrTooManyCells = errors.New("alive cell count exceeds board capacity")

// Board is a finite, non-wrapping grid of cells, each either Dead or Alive
type Board struct {
	rows    int
	columns int
	cells   [][]uint8
}

// NewBoard creates an all-dead board with the specified dimensions
func NewBoard(rows, columns int) *Board {
	cells := make([][]uint8, rows)
	for i := range cells {
		cells[i] = make([]uint8, columns)
	}
	return &Board{
		rows:    rows,
		columns: columns,
		cells:   cells,
	}
}

// NewBoardFromCells builds a board from literal rows, copying them
func NewBoardFromCells(cells [][]uint8) (*Board, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, errors.New("[NewBoardFromCells] board must have at least one row and one column")
	}

	b := NewBoard(len(cells), len(cells[0]))
	for row, values := range cells {
		if len(values) != b.columns {
			return nil, errors.Errorf("[NewBoardFromCells] row %d has %d columns, expected %d", row, len(values), b.columns)
		}
		for column, v := range values {
			if v != Dead && v != Alive {
				return nil, errors.Errorf("[NewBoardFromCells] cell (%d, %d) has value %d", row, column, v)
			}
			b.cells[row][column] = v
		}
	}
	return b, nil
}

// Rows returns the number of rows
func (b *Board) Rows() int {
	return b.rows
}

// Columns returns the number of columns
func (b *Board) Columns() int {
	return b.columns
}

// Get returns the value of a cell; out-of-range positions read as Dead
func (b *Board) Get(row, column int) uint8 {
	if row < 0 || row >= b.rows || column < 0 || column >= b.columns {
		return Dead
	}
	return b.cells[row][column]
}

// Set sets a cell to Alive for any non-zero value and Dead otherwise
func (b *Board) Set(row, column int, value uint8) {
	if row < 0 || row >= b.rows || column < 0 || column >= b.columns {
		return
	}
	if value != Dead {
		value = Alive
	}
	b.cells[row][column] = value
}

// Cells returns a copy of the cell matrix
func (b *Board) Cells() [][]uint8 {
	out := make([][]uint8, b.rows)
	for i, row := range b.cells {
		out[i] = append([]uint8(nil), row...)
	}
	return out
}

// Reset resizes the board and clears every cell
func (b *Board) Reset(rows, columns int) {
	b.rows = rows
	b.columns = columns

	if len(b.cells) != rows {
		b.cells = make([][]uint8, rows)
	}
	for i := range b.cells {
		if len(b.cells[i]) != columns {
			b.cells[i] = make([]uint8, columns)
		} else {
			clear(b.cells[i])
		}
	}
}

// Clear sets every cell to Dead
func (b *Board) Clear() {
	for i := range b.cells {
		clear(b.cells[i])
	}
}

// SeedRandom flips exactly count dead cells to alive, picking positions from a
// ChaCha8 stream keyed by seed. Draws that land on a live cell are discarded.
func (b *Board) SeedRandom(count int, seed uint8) error {
	if count < 0 {
		return errors.Errorf("[SeedRandom] alive cell count must not be negative, got %d", count)
	}
	capacity := b.rows * b.columns
	if count > capacity {
		return errors.Wrapf(ErrTooManyCells, "[SeedRandom] requested %d alive cells on a %dx%d board (capacity %d)",
			count, b.rows, b.columns, capacity)
	}

	var key [32]byte
	for i := range key {
		key[i] = seed
	}
	rng := rand.New(rand.NewChaCha8(key))

	for flipped := 0; flipped < count; {
		row := rng.IntN(b.rows)
		column := rng.IntN(b.columns)
		if b.cells[row][column] == Dead {
			b.cells[row][column] = Alive
			flipped++
		}
	}
	return nil
}

// CountAlive returns the total number of alive cells
func (b *Board) CountAlive() (count int) {
	for _, row := range b.cells {
		for _, v := range row {
			count += int(v)
		}
	}
	return
}

// Hash returns an MD5 hash of the board state
func (b *Board) Hash() string {
	h := md5.New()
	for _, row := range b.cells {
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
