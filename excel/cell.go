// Package excel holds small helpers shared by the workbook readers and writers.
package excel

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// CellName converts 0-based row and column indices to an Excel cell reference (e.g. 0,0 → "A1").
func CellName(row, col int) string {
	return fmt.Sprintf("%s%d", IndexToColumn(col), row+1)
}

// IndexToColumn converts a 0-based column index to Excel column letters (0→A, 25→Z, 26→AA).
func IndexToColumn(n int) string {
	result := ""
	for n >= 0 {
		result = string(rune('A'+(n%26))) + result
		n = n/26 - 1
	}
	return result
}

// ColumnToIndex converts Excel column letters to a 0-based index (A→0, AA→26).
// It reports false for anything that is not a run of ASCII letters.
func ColumnToIndex(letters string) (int, bool) {
	letters = strings.ToUpper(strings.TrimSpace(letters))
	if letters == "" {
		return 0, false
	}
	n := 0
	for _, r := range letters {
		if r < 'A' || r > 'Z' {
			return 0, false
		}
		n = n*26 + int(r-'A') + 1
	}
	return n - 1, true
}

// maxSheetName is Excel's limit on sheet title length.
const maxSheetName = 31

// SheetName makes label usable as a sheet title: characters Excel rejects
// are replaced with "_", and the result is cut to 31 runes.
func SheetName(label string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, strings.TrimSpace(label))
	name = strings.Trim(name, "'")

	if name == "" {
		name = "Sheet"
	}
	if utf8.RuneCountInString(name) > maxSheetName {
		name = string([]rune(name)[:maxSheetName])
	}
	return name
}
