package commands

import (
	"flag"
	"fmt"
	"strings"

	"github.com/maksimkurb/debug-tools/src/internal/benchmark"
	"github.com/maksimkurb/debug-tools/src/internal/log"
)

func CreateBenchCommand() *BenchCommand {
	gc := &BenchCommand{
		fs: flag.NewFlagSet("bench", flag.ExitOnError),
	}
	gc.fs.IntVar(&gc.rounds, "rounds", 10, "Number of rounds to average")
	gc.fs.IntVar(&gc.iterations, "iterations", 5000000, "Logging calls per round")
	gc.fs.StringVar(&gc.firstName, "first", "debuglog-disabled", "First case ("+strings.Join(benchmark.Names(), ", ")+")")
	gc.fs.StringVar(&gc.secondName, "second", "slog-disabled", "Second case")
	return gc
}

type BenchCommand struct {
	fs         *flag.FlagSet
	ctx        *AppContext
	rounds     int
	iterations int
	firstName  string
	secondName string
	first      benchmark.Case
	second     benchmark.Case
}

func (g *BenchCommand) Name() string {
	return g.fs.Name()
}

func (g *BenchCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	var ok bool
	if g.first, ok = benchmark.Lookup(g.firstName); !ok {
		return fmt.Errorf("unknown benchmark case: %s", g.firstName)
	}
	if g.second, ok = benchmark.Lookup(g.secondName); !ok {
		return fmt.Errorf("unknown benchmark case: %s", g.secondName)
	}

	return nil
}

func (g *BenchCommand) Run() error {
	ctx, cancel := interruptContext()
	defer cancel()

	log.Infof("Benchmarking %s against %s: %d rounds of %d calls", g.first.Name, g.second.Name, g.rounds, g.iterations)

	comparison, err := benchmark.Compare(ctx, g.first, g.second, g.rounds, g.iterations)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(g.ctx.stdout(), comparison.Render())
	return err
}
