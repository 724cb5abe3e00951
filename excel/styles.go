package excel

import "github.com/xuri/excelize/v2"

// Built-in number formats used by the report sheets.
const (
	numFmtGeneral = 0
	numFmtInteger = 1
	numFmtDecimal = 2  // 0.00
	numFmtPercent = 10 // 0.00%
)

// StyleManager caches Excel styles so each style is created only once per file.
type StyleManager struct {
	file  *excelize.File
	cache map[string]int
}

// NewStyleManager creates a style manager bound to the given file.
func NewStyleManager(f *excelize.File) *StyleManager {
	return &StyleManager{file: f, cache: make(map[string]int)}
}

// Header returns a bold, centered, bordered header style (cached).
func (sm *StyleManager) Header() (int, error) {
	return sm.getOrCreate("header", &excelize.Style{
		Font:      &excelize.Font{Family: defaultFamily, Size: defaultSize, Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    defaultBorder(),
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
		NumFmt:    numFmtGeneral,
	})
}

// Year returns a centered integer style for the year column (cached).
func (sm *StyleManager) Year() (int, error) {
	return sm.getOrCreate("year", &excelize.Style{
		Font:      defaultFont(),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    defaultBorder(),
		NumFmt:    numFmtInteger,
	})
}

// Number returns a two-decimal bordered style for totals (cached).
func (sm *StyleManager) Number() (int, error) {
	return sm.getOrCreate("number", &excelize.Style{
		Font:      defaultFont(),
		Alignment: &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		Border:    defaultBorder(),
		NumFmt:    numFmtDecimal,
	})
}

// Percent returns a percentage bordered style for completeness fractions (cached).
func (sm *StyleManager) Percent() (int, error) {
	return sm.getOrCreate("percent", &excelize.Style{
		Font:      defaultFont(),
		Alignment: &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		Border:    defaultBorder(),
		NumFmt:    numFmtPercent,
	})
}

func (sm *StyleManager) getOrCreate(key string, style *excelize.Style) (int, error) {
	if id, ok := sm.cache[key]; ok {
		return id, nil
	}

	id, err := sm.file.NewStyle(style)
	if err != nil {
		return 0, err
	}

	sm.cache[key] = id
	return id, nil
}

const (
	defaultFamily = "Tahoma"
	defaultSize   = 10
)

func defaultFont() *excelize.Font {
	return &excelize.Font{Family: defaultFamily, Size: defaultSize}
}

func defaultBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}
