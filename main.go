package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sparse-life",
		Short: "Advance a sparse Game of Life pattern and report the cells around a target",
		Long: `sparse-life reads a pattern on an unbounded grid, advances it a fixed
number of generations and prints the number of living cells followed by
the 5x5 neighborhood of the target cell ('0' alive, '.' dead).

Input (stdin or --input):
  r t _ x y        initial alive count, generations, unused, target x, target y
  y x1 x2 ...      one line per row of alive cells, until EOF or an empty line`,
		SilenceUsage: true,
		RunE:         runSimulation,
	}

	flags := cmd.Flags()
	flags.String("config", "", "Path to a JSON or YAML config file")
	flags.String("input", "", "Read the problem from a file instead of stdin")
	flags.Int("generations", -1, "Override the generation count from the input")
	flags.String("policy", "", "Revival policy: discovery, exclude-discoverer or classic")
	flags.Bool("parallel", true, "Step generations with parallel workers")
	flags.Int("workers", 0, "Number of stepping workers (default: number of CPUs)")
	flags.Bool("detect-cycles", true, "Fast-forward once the pattern repeats")
	flags.String("log-level", "", "Log level: error, warn, info, debug or trace")
	flags.Bool("json", false, "Print the result as JSON")

	return cmd
}
