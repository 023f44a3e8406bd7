package ingest

import "github.com/sheikhrachel/sparse-life/model"

// LineState lists the alive X coordinates given for one row of input
type LineState struct {
	Y  int64
	Xs []int64
}

// MergeLineStates folds rows sharing a Y into one LineState per distinct Y.
// Duplicate X values are carried forward; they collapse once the cells enter
// an AliveSet. Output order follows the first appearance of each Y.
func MergeLineStates(lines []LineState) []LineState {
	index := make(map[int64]int, len(lines))
	merged := make([]LineState, 0, len(lines))

	for _, line := range lines {
		if i, ok := index[line.Y]; ok {
			merged[i].Xs = append(merged[i].Xs, line.Xs...)
			continue
		}
		index[line.Y] = len(merged)
		merged = append(merged, LineState{Y: line.Y, Xs: append([]int64(nil), line.Xs...)})
	}

	return merged
}

// BuildAliveSet merges lines and flattens them into the initial AliveSet
func BuildAliveSet(lines []LineState) *model.AliveSet {
	set := model.NewAliveSet()
	for _, line := range MergeLineStates(lines) {
		for _, x := range line.Xs {
			set.Add(model.Cell{X: x, Y: line.Y})
		}
	}
	return set
}
