package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/indaco/pomsync/internal/config"
	"github.com/indaco/pomsync/internal/core"
	"github.com/indaco/pomsync/internal/params"
	"github.com/indaco/pomsync/internal/printer"
	"github.com/indaco/pomsync/internal/runner"
	urfavecli "github.com/urfave/cli/v3"
)

func init() {
	// The root command declares its own help flag and answers it in the
	// Action, so help ends the run with ErrHelpRequested instead of nil.
	urfavecli.HelpFlag = nil
}

// New builds and returns the root CLI command. Flags and positional
// arguments are parsed by urfave/cli and validated by params.Resolve.
func New(cfg *config.Config, version string) *urfavecli.Command {
	if cfg == nil {
		cfg = config.Default()
	}

	var noColorFlag bool

	return &urfavecli.Command{
		Name:        "pomsync",
		Version:     version,
		Usage:       "Copy the package.json version into a Pom.xml <version> tag",
		UsageText:   "pomsync [-n] [-p <dir>] [-i <index>]\npomsync [-n] [--] <source> <target> <index>",
		HideHelp:    true,
		HideVersion: true,
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:        "path",
				Aliases:     []string{"p"},
				Usage:       "Directory to search for the manifests",
				DefaultText: "current directory",
			},
			&urfavecli.UintFlag{
				Name:    "index",
				Aliases: []string{"i"},
				Usage:   "Zero-based <version> occurrence to replace (0-255)",
				Config:  urfavecli.IntegerConfig{Base: 10},
			},
			&urfavecli.BoolFlag{
				Name:    "dry-run",
				Aliases: []string{"n"},
				Usage:   "Show the change without writing the target file",
			},
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColorFlag,
			},
			&urfavecli.BoolFlag{
				Name:    "help",
				Aliases: []string{"h", "H"},
				Usage:   "Show this help",
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(noColorFlag)
			return ctx, nil
		},
		OnUsageError: func(ctx context.Context, cmd *urfavecli.Command, err error, isSubcommand bool) error {
			params.PrintUsage(cmd.Root().Writer)
			return fmt.Errorf("%w: %w", core.ErrBadParams, err)
		},
		Action: func(ctx context.Context, cmd *urfavecli.Command) error {
			out := cmd.Root().Writer
			if cmd.Bool("help") {
				params.PrintUsage(out)
				return core.ErrHelpRequested
			}

			p, err := params.Resolve(params.Input{
				Path:     cmd.String("path"),
				PathSet:  cmd.IsSet("path"),
				Index:    uint64(cmd.Uint("index")),
				IndexSet: cmd.IsSet("index"),
				DryRun:   cmd.Bool("dry-run"),
				Args:     cmd.Args().Slice(),
			}, out, os.Getwd)
			if err != nil {
				return err
			}

			_, err = runner.New(core.NewOSFileSystem(), cfg).Run(ctx, p)
			return err
		},
	}
}
