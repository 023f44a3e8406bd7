package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sheikhrachel/sparse-life/ingest"
	"github.com/sheikhrachel/sparse-life/model"
	"github.com/sheikhrachel/sparse-life/utils"
)

// runSimulation parses the problem, runs it and renders the result
func runSimulation(cmd *cobra.Command, _ []string) error {
	config, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}
	logger := utils.NewLogger(config.LogLevel, cmd.ErrOrStderr())

	problem, err := readProblem(cmd)
	if errors.Is(err, ingest.ErrNoInput) {
		logger.Debug("empty input, nothing to simulate")
		return nil
	}
	if err != nil {
		return err
	}
	if n, _ := cmd.Flags().GetInt("generations"); n >= 0 {
		problem.Generations = n
	}

	result, err := solve(cmd, config, logger, problem)
	if err != nil {
		return err
	}

	var renderer model.Renderer = model.TextRenderer{}
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		renderer = model.JSONRenderer{}
	}
	return renderer.Render(cmd.OutOrStdout(), result)
}

// solve runs the simulation for a parsed problem
func solve(cmd *cobra.Command, config utils.Config, logger *slog.Logger, problem ingest.Problem) (model.Result, error) {
	sim, err := model.NewSimulation(config, logger)
	if err != nil {
		return model.Result{}, err
	}

	final, err := sim.Run(cmd.Context(), problem.AliveSet(), problem.Generations)
	if err != nil {
		return model.Result{}, err
	}
	return model.NewResult(final, problem.Target), nil
}

// loadRunConfig starts from defaults or the config file and applies flag overrides
func loadRunConfig(cmd *cobra.Command) (utils.Config, error) {
	flags := cmd.Flags()
	config := utils.DefaultConfig()

	if path, _ := flags.GetString("config"); path != "" {
		var err error
		if config, err = utils.LoadConfig(path); err != nil {
			return config, err
		}
	}

	if flags.Changed("policy") {
		config.RevivalPolicy, _ = flags.GetString("policy")
	}
	if flags.Changed("parallel") {
		config.UseParallel, _ = flags.GetBool("parallel")
	}
	if flags.Changed("workers") {
		config.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("detect-cycles") {
		config.DetectCycles, _ = flags.GetBool("detect-cycles")
	}
	if flags.Changed("log-level") {
		config.LogLevel, _ = flags.GetString("log-level")
	}

	return config, nil
}

// readProblem parses the problem from --input or the command's stdin
func readProblem(cmd *cobra.Command) (ingest.Problem, error) {
	var in io.Reader = cmd.InOrStdin()
	if path, _ := cmd.Flags().GetString("input"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return ingest.Problem{}, errors.Wrapf(err, "[readProblem] failed to open input: %+v", path)
		}
		defer f.Close()
		in = f
	}

	problem, err := ingest.Parse(in)
	if err != nil && !errors.Is(err, ingest.ErrNoInput) {
		return problem, errors.Wrap(err, "[readProblem] invalid input")
	}
	return problem, err
}
