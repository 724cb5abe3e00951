// Package jalali implements the Persian (Jalali) calendar arithmetic needed to
// aggregate daily observations: the 2820-year leap cycle, month lengths,
// date parsing and the canonical month names.
package jalali

import (
	"fmt"

	"github.com/orayew2002/rainfall-spi/domain"
)

const (
	cycleYears = 2820
	epochShift = 474
)

// IsLeapYear reports whether year is a leap year under the 2820-year cycle
// approximation.
func IsLeapYear(year int) bool {
	a := year - epochShift
	b := floorMod(a, cycleYears) + epochShift
	return floorMod((b+38)*682, 2816) < 682
}

// DaysInMonth returns the length of month in year: 31 days for months 1-6,
// 30 for months 7-11, and 30 or 29 for month 12 depending on the leap year.
func DaysInMonth(year, month int) (int, error) {
	switch {
	case month < 1 || month > domain.MonthsPerYear:
		return 0, fmt.Errorf("%w: month %d out of range 1..12", domain.ErrInvalidArgument, month)
	case month <= 6:
		return 31, nil
	case month <= 11:
		return 30, nil
	case IsLeapYear(year):
		return 30, nil
	default:
		return 29, nil
	}
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// floorMod returns a mod n in [0, n) for positive n, including negative a.
func floorMod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
