// Package aggregate groups daily precipitation records into monthly totals and
// shapes them into the year × month matrix and the SPI preparation rows.
package aggregate

import (
	"sort"

	"github.com/orayew2002/rainfall-spi/domain"
)

type yearMonth struct {
	year, month int
}

// Monthly groups records by (year, month). Sum and ValidCount only look at
// non-missing precipitation, so a group of missing days has ValidCount 0.
// The result is ordered by year, then month.
func Monthly(records []domain.DailyRecord) []domain.MonthlyAggregate {
	groups := make(map[yearMonth]*domain.MonthlyAggregate)

	for _, r := range records {
		key := yearMonth{r.Date.Year, r.Date.Month}
		agg, ok := groups[key]
		if !ok {
			agg = &domain.MonthlyAggregate{Year: key.year, Month: key.month}
			groups[key] = agg
		}
		if v, ok := r.Precipitation.Float(); ok {
			agg.Sum += v
			agg.ValidCount++
		}
	}

	out := make([]domain.MonthlyAggregate, 0, len(groups))
	for _, agg := range groups {
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out
}

// BuildMatrix pivots aggregates into one row per year present, ascending, with
// twelve month columns. Months with no aggregate, or only missing days, are
// left missing rather than zero.
func BuildMatrix(aggs []domain.MonthlyAggregate) domain.Matrix {
	rows := make(map[int]*domain.MatrixRow)
	var years []int

	for _, a := range aggs {
		if a.Month < 1 || a.Month > domain.MonthsPerYear {
			continue
		}
		row, ok := rows[a.Year]
		if !ok {
			row = &domain.MatrixRow{Year: a.Year}
			rows[a.Year] = row
			years = append(years, a.Year)
		}
		if a.ValidCount > 0 {
			row.Months[a.Month-1] = domain.Some(a.Sum)
		}
	}

	sort.Ints(years)
	m := domain.Matrix{Rows: make([]domain.MatrixRow, 0, len(years))}
	for _, y := range years {
		m.Rows = append(m.Rows, *rows[y])
	}
	return m
}
