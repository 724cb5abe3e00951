package jalali

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orayew2002/rainfall-spi/domain"
)

func TestParseDate(t *testing.T) {
	t.Run("unpadded", func(t *testing.T) {
		d, err := ParseDate("1400/1/2")
		require.NoError(t, err)
		assert.Equal(t, domain.Date{Year: 1400, Month: 1, Day: 2}, d)
	})

	t.Run("padded with surrounding space", func(t *testing.T) {
		d, err := ParseDate("  1399/12/30 ")
		require.NoError(t, err)
		assert.Equal(t, domain.Date{Year: 1399, Month: 12, Day: 30}, d)
		assert.Equal(t, "1399/12/30", d.String())
	})

	t.Run("esfand 30 in common year", func(t *testing.T) {
		_, err := ParseDate("1400/12/30")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrParse)
	})

	t.Run("month 13", func(t *testing.T) {
		_, err := ParseDate("1400/13/1")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrParse)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	malformed := []string{"", "1400", "1400/01", "1400/01/01/01", "1400-01-01", "1400/a/01", "NaN", "1400/1/0"}
	for _, in := range malformed {
		t.Run("malformed "+in, func(t *testing.T) {
			_, err := ParseDate(in)
			require.Error(t, err)

			var pe *domain.ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, in, pe.Value)
		})
	}
}

func TestMustParseDate_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParseDate("bad") })
	assert.NotPanics(t, func() { MustParseDate("1400/7/30") })
}
