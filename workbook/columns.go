package workbook

import (
	"strings"

	"github.com/orayew2002/rainfall-spi/domain"
	"github.com/orayew2002/rainfall-spi/excel"
)

// Matcher reports whether the column at 0-based index with the given
// normalised header is the one being looked for.
type Matcher func(index int, header string) bool

// ByName matches a header case-insensitively after normalisation.
func ByName(name string) Matcher {
	want := NormalizeHeader(name)
	return func(_ int, header string) bool {
		return strings.EqualFold(header, want)
	}
}

// ByLetter matches the column at a sheet position such as "F".
func ByLetter(letters string) Matcher {
	idx, ok := excel.ColumnToIndex(letters)
	return func(index int, _ string) bool {
		return ok && index == idx
	}
}

// Registry holds column name → matcher mappings.
type Registry struct {
	entries []entry
}

type entry struct {
	column  string
	matcher Matcher
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a matcher for column. Matchers for the same column are tried
// in registration order; the first one that matches any header wins.
func (r *Registry) Register(column string, m Matcher) *Registry {
	r.entries = append(r.entries, entry{column: column, matcher: m})
	return r
}

// Resolve returns the index of column in t, or a *domain.SchemaError.
func (r *Registry) Resolve(t *Table, column string) (int, error) {
	headers := t.Headers()
	for _, e := range r.entries {
		if e.column != column {
			continue
		}
		for i, h := range headers {
			if e.matcher(i, h) {
				return i, nil
			}
		}
	}
	return -1, &domain.SchemaError{Column: column, Available: nonEmpty(headers)}
}

func nonEmpty(headers []string) []string {
	out := make([]string, 0, len(headers))
	for _, h := range headers {
		if h != "" {
			out = append(out, h)
		}
	}
	return out
}
