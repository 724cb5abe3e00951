package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/orayew2002/rainfall-spi/config"
	"github.com/orayew2002/rainfall-spi/logging"
	"github.com/orayew2002/rainfall-spi/pipeline"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// app carries what the subcommands share once flags are parsed.
type app struct {
	configPath string
	runner     *pipeline.Runner
	logger     *slog.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "rainfall-spi",
		Short:         "Monthly precipitation tables and SPI charts from Jalali-dated Excel sheets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.logger = logging.New(cfg.Logging, cmd.ErrOrStderr())
			a.runner = pipeline.New(cfg, a.logger)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file (SPI_* environment variables override it)")

	root.AddCommand(
		a.jobCommand("matrix", "Build the year × month precipitation matrix from daily records",
			func(r *pipeline.Runner) job { return r.BuildMonthlyMatrix }),
		a.jobCommand("spiprep", "Build completeness-adjusted monthly totals for SPI computation",
			func(r *pipeline.Runner) job { return r.BuildSPIPrep }),
		a.jobCommand("charts", "Render one SPI chart per month column into a workbook",
			func(r *pipeline.Runner) job { return r.GenerateCharts }),
	)
	return root
}

type job func(ctx context.Context, in, out string) error

func (a *app) jobCommand(name, short string, pick func(*pipeline.Runner) job) *cobra.Command {
	return &cobra.Command{
		Use:   name + " INPUT OUTPUT",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pick(a.runner)(cmd.Context(), args[0], args[1]); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "done:", args[1])
			return nil
		},
	}
}
