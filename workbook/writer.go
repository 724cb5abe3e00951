package workbook

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/orayew2002/rainfall-spi/domain"
	"github.com/orayew2002/rainfall-spi/excel"
	"github.com/orayew2002/rainfall-spi/jalali"
)

const (
	defaultSheet = "Sheet1"

	matrixYearHeader = "Year"
	spiYearHeader    = "سال"
)

// WriteMatrix writes m to path as a single-sheet workbook: a Year column and
// months 1..12, with missing months left blank.
func WriteMatrix(m domain.Matrix, path string) error {
	data, err := MatrixToBytes(m)
	if err != nil {
		return err
	}
	return SaveBytes(path, data)
}

// MatrixToBytes is WriteMatrix without touching the filesystem.
func MatrixToBytes(m domain.Matrix) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headers := make([]string, 0, 1+domain.MonthsPerYear)
	headers = append(headers, matrixYearHeader)
	for month := 1; month <= domain.MonthsPerYear; month++ {
		headers = append(headers, strconv.Itoa(month))
	}

	sm := excel.NewStyleManager(f)
	if err := writeHeaders(f, sm, defaultSheet, headers); err != nil {
		return nil, fmt.Errorf("write headers: %w", err)
	}

	for i, row := range m.Rows {
		r := i + 1 // row 0 is headers
		if err := writeYear(f, sm, defaultSheet, r, row.Year); err != nil {
			return nil, fmt.Errorf("year %d: %w", row.Year, err)
		}
		for month, v := range row.Months {
			if err := writeValue(f, sm, defaultSheet, r, 1+month, v, (*excel.StyleManager).Number); err != nil {
				return nil, fmt.Errorf("year %d, month %d: %w", row.Year, month+1, err)
			}
		}
	}

	if err := setWidths(f, defaultSheet, 0, 1, 8); err != nil {
		return nil, fmt.Errorf("set widths: %w", err)
	}
	if err := setWidths(f, defaultSheet, 1, domain.MonthsPerYear, 10); err != nil {
		return nil, fmt.Errorf("set widths: %w", err)
	}
	if err := f.SetPanes(defaultSheet, frozenHeader()); err != nil {
		return nil, fmt.Errorf("freeze header: %w", err)
	}

	return toBytes(f)
}

// SPIPrepHeaders returns the column titles of the SPI preparation sheet:
// the year, then per month its total, completeness and adjusted total.
func SPIPrepHeaders() []string {
	headers := []string{spiYearHeader}
	for _, name := range jalali.MonthNames() {
		headers = append(headers,
			name,
			"درصد داده‌های "+name,
			"بارش اصلاح‌شده "+name,
		)
	}
	return headers
}

// WriteSPIPrep writes rows to path, one row per year.
func WriteSPIPrep(rows []domain.SPIPrepRow, path string) error {
	data, err := SPIPrepToBytes(rows)
	if err != nil {
		return err
	}
	return SaveBytes(path, data)
}

// SPIPrepToBytes is WriteSPIPrep without touching the filesystem.
func SPIPrepToBytes(rows []domain.SPIPrepRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sm := excel.NewStyleManager(f)
	if err := writeHeaders(f, sm, defaultSheet, SPIPrepHeaders()); err != nil {
		return nil, fmt.Errorf("write headers: %w", err)
	}

	for i, row := range rows {
		r := i + 1
		if err := writeYear(f, sm, defaultSheet, r, row.Year); err != nil {
			return nil, fmt.Errorf("year %d: %w", row.Year, err)
		}
		for month, m := range row.Months {
			col := 1 + month*3
			if err := writeValue(f, sm, defaultSheet, r, col, domain.Some(m.RawTotal), (*excel.StyleManager).Number); err != nil {
				return nil, fmt.Errorf("year %d, month %d total: %w", row.Year, month+1, err)
			}
			if err := writeValue(f, sm, defaultSheet, r, col+1, m.Completeness, (*excel.StyleManager).Percent); err != nil {
				return nil, fmt.Errorf("year %d, month %d completeness: %w", row.Year, month+1, err)
			}
			if err := writeValue(f, sm, defaultSheet, r, col+2, m.Adjusted, (*excel.StyleManager).Number); err != nil {
				return nil, fmt.Errorf("year %d, month %d adjusted: %w", row.Year, month+1, err)
			}
		}
	}

	if err := setWidths(f, defaultSheet, 0, 1, 8); err != nil {
		return nil, fmt.Errorf("set widths: %w", err)
	}
	if err := setWidths(f, defaultSheet, 1, domain.MonthsPerYear*3, 14); err != nil {
		return nil, fmt.Errorf("set widths: %w", err)
	}
	if err := f.SetPanes(defaultSheet, frozenHeader()); err != nil {
		return nil, fmt.Errorf("freeze header: %w", err)
	}

	return toBytes(f)
}

// SaveBytes writes data to path through a temporary file in the same
// directory, so a failed run never leaves a truncated workbook behind.
func SaveBytes(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: save %s: %w", domain.ErrIO, path, err)
	}
	tmpName := tmp.Name()

	_, werr := tmp.Write(data)
	cerr := tmp.Close()
	if werr == nil {
		werr = cerr
	}
	if werr == nil {
		werr = os.Chmod(tmpName, 0o644)
	}
	if werr == nil {
		werr = os.Rename(tmpName, path)
	}
	if werr != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: save %s: %w", domain.ErrIO, path, werr)
	}
	return nil
}

func toBytes(f *excelize.File) ([]byte, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write to buffer: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHeaders(f *excelize.File, sm *excel.StyleManager, sheet string, headers []string) error {
	style, err := sm.Header()
	if err != nil {
		return err
	}

	for col, header := range headers {
		cell := excel.CellName(0, col)
		if err := f.SetCellStr(sheet, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}
	return nil
}

func writeYear(f *excelize.File, sm *excel.StyleManager, sheet string, row, year int) error {
	style, err := sm.Year()
	if err != nil {
		return err
	}
	cell := excel.CellName(row, 0)
	if err := f.SetCellValue(sheet, cell, year); err != nil {
		return err
	}
	return f.SetCellStyle(sheet, cell, cell, style)
}

// writeValue writes v at (row, col); a missing v leaves the cell blank but styled.
func writeValue(f *excelize.File, sm *excel.StyleManager, sheet string, row, col int, v domain.Value, styleFn func(*excel.StyleManager) (int, error)) error {
	cell := excel.CellName(row, col)
	if x, ok := v.Float(); ok {
		if err := f.SetCellFloat(sheet, cell, x, -1, 64); err != nil {
			return err
		}
	}

	style, err := styleFn(sm)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, cell, cell, style)
}

func setWidths(f *excelize.File, sheet string, fromCol, n int, width float64) error {
	start := excel.IndexToColumn(fromCol)
	end := excel.IndexToColumn(fromCol + n - 1)
	return f.SetColWidth(sheet, start, end, width)
}

func frozenHeader() *excelize.Panes {
	return &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}
}
