package model

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/sparse-life/rules"
)

// minCellsPerWorker keeps tiny generations on the sequential path
const minCellsPerWorker = 512

// Stepper advances an AliveSet by one generation
type Stepper struct {
	Policy  rules.RevivalPolicy
	Workers int // values below 2 step sequentially
	Pool    *SetPool
}

// transition holds the cells leaving and joining the alive set during one step
type transition struct {
	dying   []Cell
	revived []Cell
}

// Step computes the generation following current. current is read as an
// immutable snapshot and is never modified.
func (s *Stepper) Step(ctx context.Context, current *AliveSet) (*AliveSet, error) {
	alive := make([]Cell, 0, current.Len())
	for c := range current.cells {
		alive = append(alive, c)
	}

	var (
		parts []transition
		err   error
	)
	if workers := s.workerCount(len(alive)); workers > 1 {
		parts, err = s.classifyParallel(ctx, current, alive, workers)
	} else {
		if err = ctx.Err(); err == nil {
			parts = []transition{s.classify(current, alive)}
		}
	}
	if err != nil {
		return nil, err
	}

	next := s.newSet()
	for c := range current.cells {
		next.Add(c)
	}
	for _, p := range parts {
		next.RemoveAll(p.dying...)
	}
	for _, p := range parts {
		next.Union(p.revived...)
	}
	return next, nil
}

func (s *Stepper) newSet() *AliveSet {
	if s.Pool != nil {
		return s.Pool.Get()
	}
	return NewAliveSet()
}

func (s *Stepper) workerCount(cells int) int {
	return min(s.Workers, cells/minCellsPerWorker)
}

// classifyParallel splits the alive cells across workers reading the same snapshot
func (s *Stepper) classifyParallel(ctx context.Context, current *AliveSet, alive []Cell, numWorkers int) ([]transition, error) {
	var (
		eg, egCtx      = errgroup.WithContext(ctx)
		parts          = make([]transition, numWorkers)
		cellsPerWorker = (len(alive) + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			start = i * cellsPerWorker
			end   = min(start+cellsPerWorker, len(alive))
		)
		if start >= len(alive) {
			break
		}

		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			parts[i] = s.classify(current, alive[start:end])
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return parts, nil
}

// classify decides which of the given alive cells die and which of their dead
// neighbors are revived
func (s *Stepper) classify(current *AliveSet, alive []Cell) transition {
	var t transition
	dead := make([]Cell, 0, 8)

	for _, cell := range alive {
		dead = dead[:0]
		neighborsAlive := 0
		for _, n := range cell.Neighbors() {
			if current.Contains(n) {
				neighborsAlive++
			} else {
				dead = append(dead, n)
			}
		}

		survives := rules.Survives(neighborsAlive)
		if !survives {
			t.dying = append(t.dying, cell)
		}
		if !s.Policy.CountsCandidates(survives) {
			continue
		}

		for _, candidate := range dead {
			if rules.Revives(s.countCandidate(current, candidate, cell)) {
				t.revived = append(t.revived, candidate)
			}
		}
	}
	return t
}

// countCandidate tallies the living neighbors of a dead candidate found next to discoverer
func (s *Stepper) countCandidate(current *AliveSet, candidate, discoverer Cell) int {
	count := 0
	skip := s.Policy.SkipsDiscoverer()
	for _, n := range candidate.Neighbors() {
		if skip && n == discoverer {
			continue
		}
		if current.Contains(n) {
			count++
		}
	}
	return count
}
