package model

import "sync"

// BoardToPool returns a board to the pool for reuse
func BoardToPool(board *Board, pool *BoardPool) {
	if pool == nil || board == nil {
		return
	}

	pool.Put(board)
}

// BoardPool recycles discarded generations
type BoardPool struct {
	pool sync.Pool
}

func NewBoardPool() *BoardPool {
	return &BoardPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Board{}
			},
		},
	}
}

// Get retrieves a cleared board of the given size. A nil pool allocates a fresh one.
func (p *BoardPool) Get(rows, columns int) *Board {
	if p == nil {
		return NewBoard(rows, columns)
	}
	b := p.pool.Get().(*Board)
	b.Reset(rows, columns)
	return b
}

// Put returns a board to the pool, clearing its state
func (p *BoardPool) Put(b *Board) {
	b.Clear()
	p.pool.Put(b)
}
