// Package pipeline runs the three batch jobs: the monthly matrix, the SPI
// preparation table and the SPI chart workbook. Each job loads one sheet,
// computes its result in memory and writes the output only on success.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/orayew2002/rainfall-spi/aggregate"
	"github.com/orayew2002/rainfall-spi/config"
	"github.com/orayew2002/rainfall-spi/domain"
	"github.com/orayew2002/rainfall-spi/jalali"
	"github.com/orayew2002/rainfall-spi/workbook"
)

// Column keys used with the registry.
const (
	colDate          = "date"
	colPrecipitation = "precipitation"
	colYear          = "year"
)

// Runner executes the jobs with one configuration.
type Runner struct {
	cfg      *config.Config
	logger   *slog.Logger
	registry *workbook.Registry
}

// New creates a Runner. A nil logger discards output.
func New(cfg *config.Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{
		cfg:      cfg,
		logger:   logger,
		registry: NewRegistry(cfg.Columns),
	}
}

// NewRegistry maps the configured column names to matchers. Precipitation
// falls back to a fixed column letter when no header matches.
func NewRegistry(cols config.Columns) *workbook.Registry {
	reg := workbook.NewRegistry().
		Register(colDate, workbook.ByName(cols.Date)).
		Register(colYear, workbook.ByName(cols.Year))
	if cols.Precipitation != "" {
		reg.Register(colPrecipitation, workbook.ByName(cols.Precipitation))
	}
	if cols.PrecipitationFallback != "" {
		reg.Register(colPrecipitation, workbook.ByLetter(cols.PrecipitationFallback))
	}
	return reg
}

// ReadDaily converts a loaded sheet into daily records. Every date must parse;
// the first bad one fails the read with a *domain.ParseError naming its sheet
// row. Precipitation cells that are not numbers become missing.
func ReadDaily(t *workbook.Table, reg *workbook.Registry) ([]domain.DailyRecord, error) {
	dateCol, err := reg.Resolve(t, colDate)
	if err != nil {
		return nil, err
	}
	precipCol, err := reg.Resolve(t, colPrecipitation)
	if err != nil {
		return nil, err
	}

	dates := t.Strings(dateCol)
	values := t.Values(precipCol)

	records := make([]domain.DailyRecord, 0, len(dates))
	for i, s := range dates {
		d, err := jalali.ParseDate(s)
		if err != nil {
			var pe *domain.ParseError
			if errors.As(err, &pe) {
				pe.Row = t.RowNumber(i)
			}
			return nil, err
		}
		records = append(records, domain.DailyRecord{Date: d, Precipitation: values[i]})
	}
	return records, nil
}

// BuildMonthlyMatrix writes the year × month precipitation totals of in to out.
func (r *Runner) BuildMonthlyMatrix(ctx context.Context, in, out string) error {
	start := time.Now()
	log := r.logger.With("job", "matrix", "input", in, "output", out)
	log.Info("job started")

	records, err := r.loadDaily(ctx, in)
	if err != nil {
		return r.fail(log, err)
	}

	m := aggregate.BuildMatrix(aggregate.Monthly(records))
	log.Debug("matrix built", "records", len(records), "years", len(m.Rows))

	if err := ctx.Err(); err != nil {
		return r.fail(log, err)
	}
	if err := workbook.WriteMatrix(m, out); err != nil {
		return r.fail(log, fmt.Errorf("write matrix: %w", err))
	}

	log.Info("job finished", "years", len(m.Rows), "duration", time.Since(start))
	return nil
}

// BuildSPIPrep writes the completeness-adjusted monthly totals of in to out
// for the configured year range.
func (r *Runner) BuildSPIPrep(ctx context.Context, in, out string) error {
	start := time.Now()
	log := r.logger.With("job", "spiprep", "input", in, "output", out)
	log.Info("job started")

	records, err := r.loadDaily(ctx, in)
	if err != nil {
		return r.fail(log, err)
	}

	rows, err := aggregate.BuildSPIPrep(records, r.cfg.SPIPrepOptions())
	if err != nil {
		return r.fail(log, fmt.Errorf("build spi prep: %w", err))
	}
	log.Debug("spi prep built", "records", len(records), "years", len(rows), "below_threshold", countMissing(rows))

	if err := ctx.Err(); err != nil {
		return r.fail(log, err)
	}
	if err := workbook.WriteSPIPrep(rows, out); err != nil {
		return r.fail(log, fmt.Errorf("write spi prep: %w", err))
	}

	log.Info("job finished", "years", len(rows), "duration", time.Since(start))
	return nil
}

func (r *Runner) loadDaily(ctx context.Context, in string) ([]domain.DailyRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t, err := workbook.Load(in, workbook.LoadOptions{})
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	r.logger.Debug("sheet loaded", "input", in, "sheet", t.Sheet, "rows", t.Len())

	records, err := ReadDaily(t, r.registry)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", in, err)
	}
	return records, nil
}

func (r *Runner) fail(log *slog.Logger, err error) error {
	log.Error("job failed", "error", err)
	return err
}

func countMissing(rows []domain.SPIPrepRow) int {
	n := 0
	for _, row := range rows {
		for _, m := range row.Months {
			if !m.Adjusted.Valid {
				n++
			}
		}
	}
	return n
}
