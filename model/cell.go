package model

import "fmt"

// Cell is a coordinate on the unbounded grid. Y grows downward.
type Cell struct {
	X int64
	Y int64
}

// Direction is one of the eight compass offsets around a cell
type Direction int

const (
	NW Direction = iota
	N
	NE
	E
	SE
	S
	SW
	W
)

// Directions lists every direction in neighbor iteration order
var Directions = [8]Direction{NW, N, NE, E, SE, S, SW, W}

var directionOffsets = [8][2]int64{
	NW: {-1, -1},
	N:  {0, -1},
	NE: {1, -1},
	E:  {1, 0},
	SE: {1, 1},
	S:  {0, 1},
	SW: {-1, 1},
	W:  {-1, 0},
}

var directionNames = [8]string{"NW", "N", "NE", "E", "SE", "S", "SW", "W"}

// Offset returns the (dx, dy) step of the direction
func (d Direction) Offset() (dx, dy int64) {
	o := directionOffsets[d]
	return o[0], o[1]
}

func (d Direction) String() string {
	if d < NW || d > W {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Offset returns the cell shifted by (dx, dy)
func (c Cell) Offset(dx, dy int64) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Neighbor returns the adjacent cell in direction d
func (c Cell) Neighbor(d Direction) Cell {
	return c.Offset(d.Offset())
}

// Neighbors returns all eight adjacent cells, ordered NW, N, NE, E, SE, S, SW, W
func (c Cell) Neighbors() [8]Cell {
	var out [8]Cell
	for i, d := range Directions {
		out[i] = c.Neighbor(d)
	}
	return out
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
