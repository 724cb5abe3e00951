// Package workbook reads input sheets into an in-memory table and writes the
// matrix, SPI preparation and chart workbooks.
package workbook

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"

	"github.com/orayew2002/rainfall-spi/domain"
)

// nanValues are the cell texts treated as empty when loading a sheet.
var nanValues = []string{"", "NA", "NaN", "nan", "<nil>", "#N/A"}

// Table is a loaded sheet: a header row plus string columns. Blank rows are
// dropped; RowNumber maps a data row back to its 1-based sheet row.
type Table struct {
	Sheet   string
	headers []string
	rowNums []int
	df      dataframe.DataFrame
}

// LoadOptions selects the sheet to read. An empty Sheet means the first one.
type LoadOptions struct {
	Sheet string
}

// Load opens the workbook at path and reads one sheet. The file is closed
// before Load returns.
func Load(path string, opts LoadOptions) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", domain.ErrIO, path, err)
	}
	t, err := LoadReader(bytes.NewReader(data), opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// LoadReader is Load for an in-memory workbook.
func LoadReader(r io.Reader, opts LoadOptions) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: open workbook: %w", domain.ErrIO, err)
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: workbook has no sheets", domain.ErrSchema)
		}
		sheet = sheets[0]
	}

	idx, err := f.GetSheetIndex(sheet)
	if err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: sheet %q not found", domain.ErrSchema, sheet)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: get rows: %w", domain.ErrIO, sheet, err)
	}

	return FromRows(sheet, rows)
}

// FromRows builds a Table from raw sheet rows. The first non-blank row is the
// header; ragged rows are padded to the widest row.
func FromRows(sheet string, rows [][]string) (*Table, error) {
	start := -1
	width := 0
	for i, row := range rows {
		if start < 0 && !blank(row) {
			start = i
		}
		width = max(width, len(row))
	}
	if start < 0 {
		return nil, fmt.Errorf("%w: sheet %q is empty", domain.ErrSchema, sheet)
	}

	headers := make([]string, width)
	for i := range headers {
		if i < len(rows[start]) {
			headers[i] = NormalizeHeader(rows[start][i])
		}
	}

	t := &Table{Sheet: sheet, headers: headers}

	records := [][]string{headers}
	for i := start + 1; i < len(rows); i++ {
		if blank(rows[i]) {
			continue
		}
		rec := make([]string, width)
		copy(rec, rows[i])
		records = append(records, rec)
		t.rowNums = append(t.rowNums, i+1)
	}

	if len(records) == 1 {
		cols := make([]series.Series, width)
		for i, h := range headers {
			cols[i] = series.New([]string{}, series.String, h)
		}
		t.df = dataframe.New(cols...)
	} else {
		t.df = dataframe.LoadRecords(records,
			dataframe.DetectTypes(false),
			dataframe.DefaultType(series.String),
			dataframe.HasHeader(true),
			dataframe.NaNValues(nanValues),
		)
	}
	if t.df.Err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %w", domain.ErrSchema, sheet, t.df.Err)
	}
	return t, nil
}

// Headers returns the normalised header of every column.
func (t *Table) Headers() []string {
	return append([]string(nil), t.headers...)
}

// Len is the number of data rows.
func (t *Table) Len() int {
	return len(t.rowNums)
}

// RowNumber returns the 1-based sheet row of data row i.
func (t *Table) RowNumber(i int) int {
	return t.rowNums[i]
}

func (t *Table) column(col int) series.Series {
	return t.df.Col(t.df.Names()[col])
}

// Strings returns the cells of column col, with empty cells as "".
func (t *Table) Strings(col int) []string {
	s := t.column(col)
	recs := s.Records()
	nan := s.IsNaN()

	out := make([]string, len(recs))
	for i, v := range recs {
		if !nan[i] {
			out[i] = strings.TrimSpace(v)
		}
	}
	return out
}

// Values returns the cells of column col as numbers. Empty or non-numeric
// cells are missing, never zero.
func (t *Table) Values(col int) []domain.Value {
	cells := t.Strings(col)
	out := make([]domain.Value, len(cells))
	for i, c := range cells {
		out[i] = ParseValue(c)
	}
	return out
}

// ParseValue converts a cell to a number, coercing anything that is not a
// finite number to missing.
func ParseValue(cell string) domain.Value {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return domain.Missing
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return domain.Missing
	}
	return domain.Some(v)
}

// NormalizeHeader NFC-normalises a header and trims surrounding whitespace,
// so headers typed with different Unicode forms compare equal.
func NormalizeHeader(h string) string {
	return strings.TrimSpace(norm.NFC.String(h))
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
