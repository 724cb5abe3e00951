package jalali

import (
	"fmt"

	"github.com/orayew2002/rainfall-spi/domain"
)

var monthNames = [domain.MonthsPerYear]string{
	"فروردین",
	"اردیبهشت",
	"خرداد",
	"تیر",
	"مرداد",
	"شهریور",
	"مهر",
	"آبان",
	"آذر",
	"دی",
	"بهمن",
	"اسفند",
}

// MonthName returns the Persian name of month (1-12).
func MonthName(month int) (string, error) {
	if month < 1 || month > domain.MonthsPerYear {
		return "", fmt.Errorf("%w: month %d out of range 1..12", domain.ErrInvalidArgument, month)
	}
	return monthNames[month-1], nil
}

// MonthNames returns the twelve month names in calendar order.
func MonthNames() []string {
	out := make([]string, len(monthNames))
	copy(out, monthNames[:])
	return out
}
