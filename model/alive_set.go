package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"slices"
)

// AliveSet is the deduplicated collection of living cells for one generation
type AliveSet struct {
	cells map[Cell]struct{}
}

// NewAliveSet creates a set holding the given cells
func NewAliveSet(cells ...Cell) *AliveSet {
	s := &AliveSet{cells: make(map[Cell]struct{}, len(cells))}
	s.Union(cells...)
	return s
}

// Len returns the number of living cells
func (s *AliveSet) Len() int {
	return len(s.cells)
}

// Contains reports whether c is alive
func (s *AliveSet) Contains(c Cell) bool {
	_, ok := s.cells[c]
	return ok
}

// Add marks c as alive
func (s *AliveSet) Add(c Cell) {
	s.cells[c] = struct{}{}
}

// Union adds every cell in cells
func (s *AliveSet) Union(cells ...Cell) {
	for _, c := range cells {
		s.cells[c] = struct{}{}
	}
}

// RemoveAll drops every cell in cells
func (s *AliveSet) RemoveAll(cells ...Cell) {
	for _, c := range cells {
		delete(s.cells, c)
	}
}

// Clear empties the set, keeping its backing storage
func (s *AliveSet) Clear() {
	clear(s.cells)
}

// Cells returns the living cells sorted by row, then column
func (s *AliveSet) Cells() []Cell {
	out := make([]Cell, 0, len(s.cells))
	for c := range s.cells {
		out = append(out, c)
	}
	slices.SortFunc(out, compareCells)
	return out
}

// Clone returns an independent copy of the set
func (s *AliveSet) Clone() *AliveSet {
	out := &AliveSet{cells: make(map[Cell]struct{}, len(s.cells))}
	for c := range s.cells {
		out.cells[c] = struct{}{}
	}
	return out
}

// Equal reports whether both sets hold the same cells
func (s *AliveSet) Equal(other *AliveSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for c := range s.cells {
		if !other.Contains(c) {
			return false
		}
	}
	return true
}

// Hash returns an MD5 digest of the set contents, independent of insertion order
func (s *AliveSet) Hash() string {
	h := md5.New()
	var buf [16]byte
	for _, c := range s.Cells() {
		binary.LittleEndian.PutUint64(buf[:8], uint64(c.X))
		binary.LittleEndian.PutUint64(buf[8:], uint64(c.Y))
		h.Write(buf[:])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

func compareCells(a, b Cell) int {
	switch {
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	}
	return 0
}
