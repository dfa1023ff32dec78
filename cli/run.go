package cli

// This file contains the run command: generate the input, sum it, print it.

import (
	"fmt"
	"time"

	"github.com/perfgo/branchsum/dataset"
	"github.com/perfgo/branchsum/kernel"
	"github.com/perfgo/branchsum/model"
	"github.com/urfave/cli/v2"
)

// flagContext returns the innermost context in which name was set. The run
// flags are registered on the app and on the run command, so they may appear
// on either side of the command name.
func flagContext(ctx *cli.Context, name string) *cli.Context {
	for _, c := range ctx.Lineage() {
		if c.IsSet(name) {
			return c
		}
	}
	return ctx
}

func (a *App) run(ctx *cli.Context) error {
	run := &model.Run{
		Size:    flagContext(ctx, "size").Int("size"),
		Repeat:  flagContext(ctx, "repeat").Int("repeat"),
		Workers: flagContext(ctx, "workers").Int("workers"),
	}

	// Reject bad parameters before drawing a seed or allocating the input.
	if err := kernel.ValidateParams(run.Size, run.Repeat); err != nil {
		return err
	}
	if run.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", kernel.ErrInvalidInput, run.Workers)
	}

	seedCtx := flagContext(ctx, "seed")
	if seedCtx.IsSet("seed") {
		run.Seed = seedCtx.Int64("seed")
	} else {
		seed, err := dataset.NewSeed()
		if err != nil {
			return err
		}
		run.Seed = seed
	}
	run.Target = model.DetectTarget()

	a.logger.Info().Int64("seed", run.Seed).Msg("Generating input")
	data := dataset.Generate(run.Size, run.Seed)

	if err := kernel.Validate(data, run.Repeat); err != nil {
		return err
	}

	a.logger.Debug().
		Int("size", run.Size).
		Int("repeat", run.Repeat).
		Int("workers", run.Workers).
		Msg("Running kernel")

	startTime := time.Now()
	if run.Workers == 1 {
		run.Sum = kernel.Sum(data, run.Repeat)
	} else {
		sum, err := kernel.SumParallel(ctx.Context, data, run.Repeat, run.Workers)
		if err != nil {
			return fmt.Errorf("failed to run kernel: %w", err)
		}
		run.Sum = sum
	}
	run.Duration = time.Since(startTime)

	a.logger.Debug().Object("run", run).Msg("Kernel finished")

	_, err := fmt.Fprintf(ctx.App.Writer, "sum = %d\n", run.Sum)
	return err
}
