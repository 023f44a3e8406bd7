package model

// WindowRadius is the distance from the target to the window edge
const WindowRadius = 2

// WindowSize is the side length of a sampled window
const WindowSize = 2*WindowRadius + 1

// Window holds alive/dead status around a target cell. window[row][col]
// describes the cell at offset (col-2, row-2), so [2][2] is the target.
type Window [WindowSize][WindowSize]bool

// SampleWindow reads the 5x5 neighborhood of target from set
func SampleWindow(set *AliveSet, target Cell) Window {
	var w Window
	for row := range WindowSize {
		for col := range WindowSize {
			w[row][col] = set.Contains(target.Offset(int64(col-WindowRadius), int64(row-WindowRadius)))
		}
	}
	return w
}

// Alive counts the living cells in the window
func (w Window) Alive() (count int) {
	for _, row := range w {
		for _, alive := range row {
			if alive {
				count++
			}
		}
	}
	return
}

// Result is the final summary of a simulation run
type Result struct {
	AliveCount int    `json:"alive_count"`
	Window     Window `json:"window"`
}

// NewResult summarizes the final generation around target
func NewResult(final *AliveSet, target Cell) Result {
	return Result{
		AliveCount: final.Len(),
		Window:     SampleWindow(final, target),
	}
}
