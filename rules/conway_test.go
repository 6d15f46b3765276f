package rules

import (
	"reflect"
	"testing"

	"github.com/sheikhrachel/go-life/model"
)

func mustBoard(t *testing.T, cells [][]uint8) *model.Board {
	t.Helper()
	b, err := model.NewBoardFromCells(cells)
	if err != nil {
		t.Fatalf("NewBoardFromCells: %v", err)
	}
	return b
}

func TestApplyConwayRules(t *testing.T) {
	for neighbors := 0; neighbors <= 8; neighbors++ {
		if got, want := ApplyConwayRules(neighbors, true), neighbors == 2 || neighbors == 3; got != want {
			t.Errorf("alive with %d neighbours = %v, want %v", neighbors, got, want)
		}
		if got, want := ApplyConwayRules(neighbors, false), neighbors == 3; got != want {
			t.Errorf("dead with %d neighbours = %v, want %v", neighbors, got, want)
		}
	}
}

func TestCountAliveNeighbours(t *testing.T) {
	board := mustBoard(t, [][]uint8{
		{0, 0, 1, 0},
		{0, 1, 1, 0},
		{0, 0, 1, 1},
		{0, 0, 0, 0},
	})

	for _, tc := range []struct {
		name        string
		row, column int
		want        int
	}{
		{"interior", 1, 2, 4},
		{"bottom edge", 3, 2, 2},
		{"top left corner", 0, 0, 1},
		{"bottom right corner", 3, 3, 2},
		{"top edge", 0, 2, 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := CountAliveNeighbours(tc.row, tc.column, board); got != tc.want {
				t.Fatalf("CountAliveNeighbours(%d, %d) = %d, want %d", tc.row, tc.column, got, tc.want)
			}
		})
	}
}

func TestCountAliveNeighboursDoesNotWrap(t *testing.T) {
	// Every live cell sits on the opposite edge from (0, 0)
	board := mustBoard(t, [][]uint8{
		{0, 0, 1},
		{0, 0, 1},
		{1, 1, 1},
	})
	if got := CountAliveNeighbours(0, 0, board); got != 0 {
		t.Fatalf("corner counted %d wrapped neighbours", got)
	}

	full := mustBoard(t, [][]uint8{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	})
	if got := CountAliveNeighbours(1, 1, full); got != 8 {
		t.Fatalf("centre of a full board = %d, want 8", got)
	}
	if got := CountAliveNeighbours(0, 0, full); got != 3 {
		t.Fatalf("corner of a full board = %d, want 3", got)
	}
}

func TestEvolveCell(t *testing.T) {
	for _, tc := range []struct {
		name  string
		cells [][]uint8
		want  uint8
	}{
		{"underpopulation", [][]uint8{{0, 1, 0}, {0, 1, 0}, {0, 0, 0}}, 0},
		{"overpopulation", [][]uint8{{0, 1, 0}, {1, 1, 1}, {0, 1, 0}}, 0},
		{"survival", [][]uint8{{0, 1, 0}, {0, 1, 1}, {0, 1, 0}}, 1},
		{"reproduction", [][]uint8{{0, 1, 0}, {0, 0, 1}, {0, 1, 0}}, 1},
		{"stays dead", [][]uint8{{0, 1, 0}, {0, 0, 1}, {0, 0, 0}}, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := EvolveCell(1, 1, mustBoard(t, tc.cells)); got != tc.want {
				t.Fatalf("EvolveCell(1, 1) = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestEvolveBoard(t *testing.T) {
	initial := [][]uint8{
		{1, 0, 0, 0, 1},
		{0, 1, 1, 0, 1},
		{0, 1, 1, 0, 0},
		{0, 1, 1, 0, 1},
		{1, 1, 0, 1, 1},
	}
	generations := [][][]uint8{
		{
			{0, 1, 0, 1, 0},
			{1, 0, 1, 0, 0},
			{1, 0, 0, 0, 0},
			{0, 0, 0, 0, 1},
			{1, 1, 0, 1, 1},
		},
		{
			{0, 1, 1, 0, 0},
			{1, 0, 1, 0, 0},
			{0, 1, 0, 0, 0},
			{1, 1, 0, 1, 1},
			{0, 0, 0, 1, 1},
		},
		{
			{0, 1, 1, 0, 0},
			{1, 0, 1, 0, 0},
			{0, 0, 0, 1, 0},
			{1, 1, 0, 1, 1},
			{0, 0, 1, 1, 1},
		},
	}

	for _, pool := range []*model.BoardPool{nil, model.NewBoardPool()} {
		board := mustBoard(t, initial)
		for i, want := range generations {
			before := board.Cells()
			next := EvolveBoard(board, pool)
			if !reflect.DeepEqual(board.Cells(), before) {
				t.Fatalf("generation %d: input board was modified", i+1)
			}
			if next == board {
				t.Fatalf("generation %d: EvolveBoard returned its input", i+1)
			}
			if got := next.Cells(); !reflect.DeepEqual(got, want) {
				t.Fatalf("generation %d = %v, want %v", i+1, got, want)
			}
			model.BoardToPool(board, pool)
			board = next
		}
	}
}

func TestEvolveBoardBlinker(t *testing.T) {
	horizontal := [][]uint8{
		{0, 0, 0},
		{1, 1, 1},
		{0, 0, 0},
	}
	vertical := [][]uint8{
		{0, 1, 0},
		{0, 1, 0},
		{0, 1, 0},
	}

	board := EvolveBoard(mustBoard(t, horizontal), nil)
	if !reflect.DeepEqual(board.Cells(), vertical) {
		t.Fatalf("blinker phase 1 = %v", board.Cells())
	}
	board = EvolveBoard(board, nil)
	if !reflect.DeepEqual(board.Cells(), horizontal) {
		t.Fatalf("blinker phase 2 = %v", board.Cells())
	}
}

func TestEvolveBoardRectangular(t *testing.T) {
	board := mustBoard(t, [][]uint8{{1, 1, 1, 1, 1}})
	next := EvolveBoard(board, nil)
	if next.Rows() != 1 || next.Columns() != 5 {
		t.Fatalf("EvolveBoard changed size to %dx%d", next.Rows(), next.Columns())
	}
	// A single row can never have three neighbours, so only the inner cells survive
	if want := [][]uint8{{0, 1, 1, 1, 0}}; !reflect.DeepEqual(next.Cells(), want) {
		t.Fatalf("EvolveBoard = %v, want %v", next.Cells(), want)
	}
}
