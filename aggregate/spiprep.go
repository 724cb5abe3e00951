package aggregate

import (
	"fmt"

	"github.com/orayew2002/rainfall-spi/domain"
	"github.com/orayew2002/rainfall-spi/jalali"
)

// Defaults for SPI preparation.
const (
	DefaultFromYear  = 1359
	DefaultToYear    = 1396
	DefaultThreshold = 0.75
)

// SPIPrepOptions selects the inclusive year range to emit and the completeness
// fraction a month needs before its total is rescaled.
type SPIPrepOptions struct {
	FromYear  int
	ToYear    int
	Threshold float64
}

// DefaultSPIPrepOptions returns the 1359-1396 range with a 0.75 threshold.
func DefaultSPIPrepOptions() SPIPrepOptions {
	return SPIPrepOptions{
		FromYear:  DefaultFromYear,
		ToYear:    DefaultToYear,
		Threshold: DefaultThreshold,
	}
}

// Validate rejects an empty year range or a threshold outside (0, 1].
func (o SPIPrepOptions) Validate() error {
	if o.FromYear > o.ToYear {
		return fmt.Errorf("%w: year range %d..%d is empty", domain.ErrInvalidArgument, o.FromYear, o.ToYear)
	}
	if o.Threshold <= 0 || o.Threshold > 1 {
		return fmt.Errorf("%w: threshold %g not in (0, 1]", domain.ErrInvalidArgument, o.Threshold)
	}
	return nil
}

// BuildSPIPrep emits one row per year in the configured range, whether or not
// the input has data for it. For every month the completeness fraction is the
// number of valid days over the true Jalali month length; the adjusted total
// RawTotal/Completeness is only defined once completeness reaches the threshold.
func BuildSPIPrep(records []domain.DailyRecord, opts SPIPrepOptions) ([]domain.SPIPrepRow, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	byKey := make(map[yearMonth]domain.MonthlyAggregate)
	for _, a := range Monthly(records) {
		byKey[yearMonth{a.Year, a.Month}] = a
	}

	rows := make([]domain.SPIPrepRow, 0, opts.ToYear-opts.FromYear+1)
	for year := opts.FromYear; year <= opts.ToYear; year++ {
		row := domain.SPIPrepRow{Year: year}
		for month := 1; month <= domain.MonthsPerYear; month++ {
			length, err := jalali.DaysInMonth(year, month)
			if err != nil {
				return nil, err
			}
			row.Months[month-1] = adjust(byKey[yearMonth{year, month}], length, opts.Threshold)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func adjust(agg domain.MonthlyAggregate, monthLength int, threshold float64) domain.MonthSPI {
	out := domain.MonthSPI{
		RawTotal:    agg.Sum,
		ValidCount:  agg.ValidCount,
		MonthLength: monthLength,
	}
	if monthLength <= 0 {
		return out
	}

	fraction := float64(agg.ValidCount) / float64(monthLength)
	out.Completeness = domain.Some(fraction)
	if fraction >= threshold {
		out.Adjusted = domain.Some(agg.Sum / fraction)
	}
	return out
}
