package model

import "sync"

// SetToPool returns a discarded generation to the pool for reuse
func SetToPool(set *AliveSet, pool *SetPool) {
	if pool == nil || set == nil {
		return
	}

	pool.Put(set)
}

// SetPool recycles the backing maps of discarded generations
type SetPool struct {
	pool sync.Pool
}

func NewSetPool() *SetPool {
	return &SetPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &AliveSet{cells: make(map[Cell]struct{})}
			},
		},
	}
}

// Get retrieves an empty set from the pool
func (p *SetPool) Get() *AliveSet {
	return p.pool.Get().(*AliveSet)
}

// Put returns a set to the pool, clearing its state
func (p *SetPool) Put(s *AliveSet) {
	// Clear the set before returning to pool
	s.Clear()
	p.pool.Put(s)
}
