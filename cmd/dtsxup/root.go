package main

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/dtsxup/pkg/config"
	"github.com/walteh/dtsxup/pkg/log"
	"github.com/walteh/dtsxup/pkg/status"
	"github.com/walteh/dtsxup/pkg/upgrade"
	"github.com/walteh/dtsxup/pkg/walker"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	debug bool
)

// NewRootCmd creates the dtsxup command
func NewRootCmd() *cobra.Command {
	opts := &config.Options{}

	cmd := &cobra.Command{
		Use:   "dtsxup [flags] <path>",
		Short: "Modernize SSIS .dtsx packages",
		Long: `dtsxup upgrades SSIS .dtsx packages to the modern format by:
1. Simplifying ExecutableType and CreationName attributes
2. Upgrading component class IDs from legacy DTS to Microsoft format

The target path may be a single .dtsx file or a directory of packages.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Path = args[0]
			return run(cmd.Context(), *opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVarP(&opts.Backup, "backup", "b", false, "create .bak backup files before modifying")
	cmd.Flags().BoolVarP(&opts.DryRun, "dry-run", "n", false, "show what would be changed without making modifications")
	cmd.Flags().BoolVarP(&opts.Recursive, "recursive", "r", false, "process all .dtsx files in subdirectories")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "show detailed processing information")
	cmd.Flags().BoolVar(&opts.ExecutableOnly, "executable-only", false, "only upgrade ExecutableType/CreationName attributes")
	cmd.Flags().BoolVar(&opts.ClassIDOnly, "classid-only", false, "only upgrade component class IDs")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")

	return cmd
}

// run executes a full upgrade pass: validate options, walk the target path,
// render the summary. Only pre-flight errors and a missing path come back as
// errors; per-file failures are counted in the summary.
func run(ctx context.Context, opts config.Options, console io.Writer) error {
	if err := opts.Validate(); err != nil {
		return errors.Errorf("validating options: %w", err)
	}

	if debug {
		zlog := zerolog.Ctx(ctx).Level(zerolog.DebugLevel)
		ctx = zlog.WithContext(ctx)
	}

	ui := log.NewUserLogger(ctx, console, opts.Verbose)
	ui.Banner(opts.Mode(), opts.DryRun, opts.Backup)

	stats := &status.RunStats{}
	proc := upgrade.NewProcessor(opts, ui)

	if err := walker.New(opts, proc, ui, stats).Run(ctx); err != nil {
		return err
	}

	stats.RenderSummary(console, opts)
	ui.Successf("all operations completed")
	return nil
}
