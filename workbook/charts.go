package workbook

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/orayew2002/rainfall-spi/domain"
	"github.com/orayew2002/rainfall-spi/excel"
)

// ChartImage is a rendered chart destined for its own sheet.
type ChartImage struct {
	Label string
	Name  string // image file name, used as alt text
	PNG   []byte
}

// WriteCharts writes one sheet per image, titled with the image label, with
// the picture anchored at A1.
func WriteCharts(images []ChartImage, path string) error {
	data, err := ChartsToBytes(images)
	if err != nil {
		return err
	}
	return SaveBytes(path, data)
}

// ChartsToBytes is WriteCharts without touching the filesystem. The default
// sheet of a new workbook is removed unless a label claims it.
func ChartsToBytes(images []ChartImage) ([]byte, error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("%w: no charts to write", domain.ErrInvalidArgument)
	}

	f := excelize.NewFile()
	defer f.Close()

	placeholder := f.GetSheetName(0)
	placeholderUsed := false
	used := make(map[string]struct{})
	var first string

	for i, img := range images {
		name := uniqueSheetName(excel.SheetName(img.Label), used)
		if i == 0 {
			first = name
		}

		if strings.EqualFold(name, placeholder) {
			placeholderUsed = true
			if err := f.SetSheetName(placeholder, name); err != nil {
				return nil, fmt.Errorf("sheet %q: %w", name, err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}

		if err := f.AddPictureFromBytes(name, "A1", &excelize.Picture{
			Extension: ".png",
			File:      img.PNG,
			Format:    &excelize.GraphicOptions{AltText: img.Name},
		}); err != nil {
			return nil, fmt.Errorf("sheet %q: add picture: %w", name, err)
		}
	}

	if !placeholderUsed {
		if err := f.DeleteSheet(placeholder); err != nil {
			return nil, fmt.Errorf("remove default sheet: %w", err)
		}
	}

	idx, err := f.GetSheetIndex(first)
	if err != nil {
		return nil, fmt.Errorf("activate %q: %w", first, err)
	}
	f.SetActiveSheet(idx)

	return toBytes(f)
}

// uniqueSheetName appends " (2)", " (3)", ... until name is unused. Excel
// compares sheet names case-insensitively.
func uniqueSheetName(name string, used map[string]struct{}) string {
	candidate := name
	for n := 2; ; n++ {
		key := strings.ToLower(candidate)
		if _, taken := used[key]; !taken {
			used[key] = struct{}{}
			return candidate
		}
		suffix := fmt.Sprintf(" (%d)", n)
		runes := []rune(name)
		if limit := 31 - len(suffix); len(runes) > limit {
			runes = runes[:limit]
		}
		candidate = string(runes) + suffix
	}
}
