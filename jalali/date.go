package jalali

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/orayew2002/rainfall-spi/domain"
)

var (
	errDateFormat = errors.New("want year/month/day")
	errDayRange   = errors.New("day out of range")
)

// ParseDate parses a "year/month/day" string such as "1400/1/2" or "1400/01/02".
// Parsing is strict: exactly three integer components, a valid month, and a day
// that exists in that month. Failures are *domain.ParseError.
func ParseDate(s string) (domain.Date, error) {
	raw := s
	s = strings.TrimSpace(s)

	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return domain.Date{}, &domain.ParseError{Value: raw, Err: errDateFormat}
	}

	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return domain.Date{}, &domain.ParseError{Value: raw, Err: errDateFormat}
		}
		nums[i] = n
	}

	d := domain.Date{Year: nums[0], Month: nums[1], Day: nums[2]}
	if err := Validate(d); err != nil {
		return domain.Date{}, &domain.ParseError{Value: raw, Err: err}
	}
	return d, nil
}

// Validate checks that d names a real day of the Jalali calendar.
func Validate(d domain.Date) error {
	days, err := DaysInMonth(d.Year, d.Month)
	if err != nil {
		return err
	}
	if d.Day < 1 || d.Day > days {
		return fmt.Errorf("%w: %d (month %d has %d days)", errDayRange, d.Day, d.Month, days)
	}
	return nil
}

// MustParseDate is like ParseDate but panics on error. Intended for fixtures.
func MustParseDate(s string) domain.Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}
