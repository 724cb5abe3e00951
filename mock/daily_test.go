package mock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orayew2002/rainfall-spi/domain"
	"github.com/orayew2002/rainfall-spi/jalali"
)

func TestGenerateDaily(t *testing.T) {
	opts := DefaultOptions()
	opts.FromYear, opts.ToYear = 1398, 1400

	records, err := GenerateDaily(opts)
	require.NoError(t, err)
	assert.Len(t, records, jalali.DaysInYear(1398)+jalali.DaysInYear(1399)+jalali.DaysInYear(1400))

	var missing int
	for i, r := range records {
		require.NoError(t, jalali.Validate(r.Date))
		if i > 0 {
			prev := records[i-1].Date
			assert.True(t, prev.Year < r.Date.Year ||
				(prev.Year == r.Date.Year && (prev.Month < r.Date.Month ||
					(prev.Month == r.Date.Month && prev.Day < r.Date.Day))), "%s after %s", r.Date, prev)
		}
		v, ok := r.Precipitation.Float()
		if !ok {
			missing++
			continue
		}
		assert.GreaterOrEqual(t, v, 0.0)
	}
	assert.Positive(t, missing)
	assert.Less(t, missing, len(records)/2)
}

func TestGenerateDaily_Deterministic(t *testing.T) {
	opts := DefaultOptions()
	opts.FromYear, opts.ToYear = 1390, 1390

	a, err := GenerateDaily(opts)
	require.NoError(t, err)
	b, err := GenerateDaily(opts)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	opts.Seed++
	c, err := GenerateDaily(opts)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestGenerateDaily_NoMissing(t *testing.T) {
	opts := DefaultOptions()
	opts.FromYear, opts.ToYear = 1390, 1390
	opts.MissingRate = 0

	records, err := GenerateDaily(opts)
	require.NoError(t, err)
	for _, r := range records {
		assert.NotEqual(t, domain.Missing, r.Precipitation, r.Date.String())
	}
}

func TestGenerateDaily_EmptyRange(t *testing.T) {
	opts := DefaultOptions()
	opts.FromYear, opts.ToYear = 1400, 1399
	_, err := GenerateDaily(opts)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestGenerateStation(t *testing.T) {
	s := GenerateStation()
	assert.NotEmpty(t, s.Name)
	assert.GreaterOrEqual(t, s.Latitude, -90.0)
	assert.LessOrEqual(t, s.Latitude, 90.0)
	assert.GreaterOrEqual(t, s.Longitude, -180.0)
	assert.LessOrEqual(t, s.Longitude, 180.0)
}
