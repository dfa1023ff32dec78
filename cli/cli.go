package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/perfgo/branchsum/dataset"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

const AppName = "branchsum"

const (
	defaultRepeat  = 100_000
	defaultWorkers = 1
)

type App struct {
	logger zerolog.Logger
	cli    *cli.App
}

func New() *App {

	// Set default log level to info
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger :=
		log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339Nano,
		})

	app := &App{
		logger: logger,
		cli: &cli.App{
			Name:  AppName,
			Usage: "Sum the elements >= 128 of a random byte array without branching on the data",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "verbose",
					Usage: "Enable verbose (debug) logging",
				},
			},
			Before: func(ctx *cli.Context) error {
				if ctx.Bool("verbose") {
					zerolog.SetGlobalLevel(zerolog.DebugLevel)
				}
				return nil
			},
		},
	}

	app.cli.Commands = append(app.cli.Commands, &cli.Command{
		Name:   "run",
		Usage:  "Generate the array, run the branchless kernel and print the sum",
		Action: app.run,
		Flags:  runFlags(),
	})

	// Default action when no command is specified
	app.cli.Action = app.run
	app.cli.Flags = append(app.cli.Flags, runFlags()...)

	return app
}

func runFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "size",
			Aliases: []string{"n"},
			Usage:   "Number of elements in the generated array",
			Value:   dataset.DefaultSize,
		},
		&cli.IntFlag{
			Name:    "repeat",
			Aliases: []string{"r"},
			Usage:   "Number of full passes over the array",
			Value:   defaultRepeat,
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "Seed for the pseudo-random generator (default: random, logged at startup)",
		},
		&cli.IntFlag{
			Name:    "workers",
			Aliases: []string{"w"},
			Usage:   "Split the repeat loop across this many goroutines",
			Value:   defaultWorkers,
		},
	}
}

func (a *App) Run(args []string) error {
	return a.cli.Run(args)
}

// SetOutput redirects the result line and the log output.
func (a *App) SetOutput(stdout, stderr io.Writer) {
	a.cli.Writer = stdout
	a.cli.ErrWriter = stderr
	a.logger = a.logger.Output(zerolog.ConsoleWriter{
		Out:        stderr,
		TimeFormat: time.RFC3339Nano,
		NoColor:    true,
	})
}

// SetVersion sets the version information for the CLI application
func (a *App) SetVersion(version, commit, date string) {
	a.cli.Version = version
	if commit != "none" && commit != "" {
		if len(commit) > 8 {
			commit = commit[:8]
		}
		a.cli.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	}
}
