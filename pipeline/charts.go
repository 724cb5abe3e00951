package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/orayew2002/rainfall-spi/chart"
	"github.com/orayew2002/rainfall-spi/workbook"
)

// GenerateCharts renders one chart per month column of the SPI matrix in in
// and writes them to out, one sheet per month.
func (r *Runner) GenerateCharts(ctx context.Context, in, out string) error {
	start := time.Now()
	log := r.logger.With("job", "charts", "input", in, "output", out)
	log.Info("job started")

	if err := ctx.Err(); err != nil {
		return r.fail(log, err)
	}

	t, err := workbook.Load(in, workbook.LoadOptions{})
	if err != nil {
		return r.fail(log, fmt.Errorf("load: %w", err))
	}

	images, err := ChartImages(ctx, t, r.registry, r.cfg.ChartOptions(), log)
	if err != nil {
		return r.fail(log, fmt.Errorf("%s: %w", in, err))
	}

	if err := workbook.WriteCharts(images, out); err != nil {
		return r.fail(log, fmt.Errorf("write charts: %w", err))
	}

	log.Info("job finished", "charts", len(images), "duration", time.Since(start))
	return nil
}

// ChartImages renders every column other than the year column as a chart.
// Columns with an empty header are skipped; rows where the year or the value
// is not a number are dropped from that month's series.
func ChartImages(ctx context.Context, t *workbook.Table, reg *workbook.Registry, opts chart.Options, log *slog.Logger) ([]workbook.ChartImage, error) {
	yearCol, err := reg.Resolve(t, colYear)
	if err != nil {
		return nil, err
	}
	years := t.Values(yearCol)

	var images []workbook.ChartImage
	for col, header := range t.Headers() {
		if col == yearCol || header == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		label := chart.MonthLabel(header)
		s := chart.DropMissing(label, years, t.Values(col))

		png, err := chart.Render(s, opts)
		if err != nil {
			return nil, err
		}
		if log != nil {
			log.Debug("chart rendered", "month", label, "points", len(s.Values), "bytes", len(png))
		}

		images = append(images, workbook.ChartImage{
			Label: label,
			Name:  chart.ImageName(label),
			PNG:   png,
		})
	}
	return images, nil
}
