package model

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-life/rules"
	"github.com/sheikhrachel/sparse-life/utils"
)

// Simulation drives a Stepper across a fixed number of generations
type Simulation struct {
	stepper       *Stepper
	detectCycles  bool
	historySize   int
	progressEvery int
	logger        *slog.Logger

	Stats *utils.Stats
}

// snapshot is a generation retained for cycle detection
type snapshot struct {
	generation int
	hash       string
	set        *AliveSet
}

// NewSimulation builds a simulation from the configuration
func NewSimulation(config utils.Config, logger *slog.Logger) (*Simulation, error) {
	policy, err := rules.ParseRevivalPolicy(config.RevivalPolicy)
	if err != nil {
		return nil, errors.Wrap(err, "[NewSimulation] invalid configuration")
	}
	if logger == nil {
		logger = utils.DiscardLogger()
	}

	var pool *SetPool
	if config.UseMemoryPool {
		pool = NewSetPool()
	}

	return &Simulation{
		stepper: &Stepper{
			Policy:  policy,
			Workers: config.WorkerCount(),
			Pool:    pool,
		},
		detectCycles:  config.DetectCycles && config.HistorySize > 0,
		historySize:   config.HistorySize,
		progressEvery: config.ProgressEvery,
		logger:        logger,
		Stats:         utils.NewStats(),
	}, nil
}

// Run applies the stepper generations times to a copy of initial and returns
// the final generation. Counts of zero or less return the initial cells.
// Cancellation is checked between generations.
func (s *Simulation) Run(ctx context.Context, initial *AliveSet, generations int) (*AliveSet, error) {
	s.Stats = utils.NewStats()
	current := initial.Clone()
	s.logger.Info("simulation started",
		"alive", current.Len(),
		"generations", generations,
		"policy", s.stepper.Policy.String(),
		"workers", s.stepper.Workers)

	var (
		detect  = s.detectCycles
		history []snapshot
	)
	record := func(gen int, set *AliveSet) {
		history = append(history, snapshot{generation: gen, hash: set.Hash(), set: set})
		if len(history) > s.historySize {
			SetToPool(history[0].set, s.stepper.Pool)
			history = history[1:]
		}
	}
	if detect {
		record(0, current)
	}

	target := generations
	for gen := 0; gen < target; {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "[Simulation.Run] stopped at generation %d", gen)
		}

		stepStart := time.Now()
		next, err := s.stepper.Step(ctx, current)
		if err != nil {
			return nil, errors.Wrapf(err, "[Simulation.Run] step failed at generation %d", gen)
		}
		gen++
		if !detect {
			SetToPool(current, s.stepper.Pool)
		}
		current = next

		s.Stats.Update(gen, current.Len(), time.Since(stepStart))
		s.logProgress(gen, current)

		if !detect {
			continue
		}
		if prev, ok := findRepeat(history, current); ok {
			period := gen - prev
			remaining := (target - gen) % period
			s.Stats.CyclePeriod = period
			s.Stats.SkippedGenerations = target - gen - remaining
			s.logger.Debug("cycle detected",
				"generation", gen,
				"period", period,
				"skipped", s.Stats.SkippedGenerations)
			target = gen + remaining
			detect = false
			continue
		}
		record(gen, current)
	}

	s.logger.Info("simulation finished",
		"alive", current.Len(),
		"generations", s.Stats.TotalGenerations+s.Stats.SkippedGenerations,
		"elapsed", s.Stats.Elapsed())
	return current, nil
}

func (s *Simulation) logProgress(gen int, current *AliveSet) {
	s.logger.Log(context.Background(), utils.LevelTrace, "generation stepped",
		"generation", gen, "alive", current.Len())
	if s.progressEvery > 0 && gen%s.progressEvery == 0 {
		s.logger.Debug("simulation progress",
			"generation", gen,
			"alive", current.Len(),
			"gen_per_sec", s.Stats.GenerationsPerSecond,
			"avg_population", s.Stats.AveragePopulation)
	}
}

// findRepeat returns the generation of a retained snapshot equal to set
func findRepeat(history []snapshot, set *AliveSet) (int, bool) {
	hash := set.Hash()
	for i := len(history) - 1; i >= 0; i-- {
		h := history[i]
		if h.hash == hash && h.set.Equal(set) {
			return h.generation, true
		}
	}
	return 0, false
}
