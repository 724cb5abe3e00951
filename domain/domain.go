package domain

import "fmt"

// MonthsPerYear is the number of months in a Jalali year.
const MonthsPerYear = 12

// Date is a Jalali calendar date. Use jalali.ParseDate to build a validated one.
type Date struct {
	Year  int
	Month int
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, d.Month, d.Day)
}

// Value is a number that may be missing. The zero Value is missing.
type Value struct {
	V     float64
	Valid bool
}

// Missing is the explicit "no data" marker.
var Missing = Value{}

// Some wraps a present number.
func Some(v float64) Value {
	return Value{V: v, Valid: true}
}

// Float returns the number and whether it is present.
func (v Value) Float() (float64, bool) {
	return v.V, v.Valid
}

func (v Value) String() string {
	if !v.Valid {
		return "NaN"
	}
	return fmt.Sprintf("%g", v.V)
}

// DailyRecord is one observation day.
type DailyRecord struct {
	Date          Date
	Precipitation Value
}

// MonthlyAggregate holds the observations of one (year, month) group.
// Sum covers the non-missing values only; ValidCount is how many there were.
type MonthlyAggregate struct {
	Year       int
	Month      int
	Sum        float64
	ValidCount int
}

// MatrixRow is one year of a year × month matrix. Months[0] is month 1.
type MatrixRow struct {
	Year   int
	Months [MonthsPerYear]Value
}

// Matrix is a year × month table with rows in ascending year order.
type Matrix struct {
	Rows []MatrixRow
}

// Row returns the row for year, if present.
func (m Matrix) Row(year int) (MatrixRow, bool) {
	for _, r := range m.Rows {
		if r.Year == year {
			return r, true
		}
	}
	return MatrixRow{}, false
}

// MonthSPI is the SPI preparation result for a single (year, month).
type MonthSPI struct {
	RawTotal     float64
	ValidCount   int
	MonthLength  int
	Completeness Value
	Adjusted     Value
}

// SPIPrepRow is one year of SPI preparation output. Months[0] is month 1.
type SPIPrepRow struct {
	Year   int
	Months [MonthsPerYear]MonthSPI
}
