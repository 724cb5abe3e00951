package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orayew2002/rainfall-spi/domain"
	"github.com/orayew2002/rainfall-spi/jalali"
)

func day(date string, mm float64) domain.DailyRecord {
	return domain.DailyRecord{Date: jalali.MustParseDate(date), Precipitation: domain.Some(mm)}
}

func missingDay(date string) domain.DailyRecord {
	return domain.DailyRecord{Date: jalali.MustParseDate(date), Precipitation: domain.Missing}
}

func TestMonthly(t *testing.T) {
	records := []domain.DailyRecord{
		day("1401/2/1", 1.5),
		day("1400/1/1", 5),
		missingDay("1400/1/3"),
		day("1400/1/2", 3),
		day("1400/2/10", 0),
	}

	got := Monthly(records)
	require.Len(t, got, 3)

	assert.Equal(t, domain.MonthlyAggregate{Year: 1400, Month: 1, Sum: 8, ValidCount: 2}, got[0])
	assert.Equal(t, domain.MonthlyAggregate{Year: 1400, Month: 2, Sum: 0, ValidCount: 1}, got[1])
	assert.Equal(t, domain.MonthlyAggregate{Year: 1401, Month: 2, Sum: 1.5, ValidCount: 1}, got[2])
}

func TestMonthly_Empty(t *testing.T) {
	assert.Empty(t, Monthly(nil))
}

func TestBuildMatrix_PresentMonthsOnly(t *testing.T) {
	records := []domain.DailyRecord{
		day("1400/1/1", 2),
		day("1400/1/5", 4),
		day("1400/2/1", 1),
	}

	m := BuildMatrix(Monthly(records))
	require.Len(t, m.Rows, 1)

	row := m.Rows[0]
	assert.Equal(t, 1400, row.Year)
	assert.Equal(t, domain.Some(6), row.Months[0])
	assert.Equal(t, domain.Some(1), row.Months[1])
	for m := 3; m <= 12; m++ {
		assert.False(t, row.Months[m-1].Valid, "month %d should be missing", m)
	}
}

func TestBuildMatrix_AllMissingGroupIsMissing(t *testing.T) {
	records := []domain.DailyRecord{
		day("1400/1/1", 5),
		day("1400/1/2", 3),
		missingDay("1400/2/1"),
	}

	m := BuildMatrix(Monthly(records))
	row, ok := m.Row(1400)
	require.True(t, ok)

	assert.Equal(t, domain.Some(8), row.Months[0])
	assert.Equal(t, domain.Missing, row.Months[1])
}

func TestBuildMatrix_ZeroRainIsNotMissing(t *testing.T) {
	m := BuildMatrix(Monthly([]domain.DailyRecord{day("1400/5/1", 0)}))
	row, ok := m.Row(1400)
	require.True(t, ok)
	assert.Equal(t, domain.Some(0), row.Months[4])
}

func TestBuildMatrix_YearsAscendingWithGaps(t *testing.T) {
	records := []domain.DailyRecord{
		day("1390/1/1", 1),
		day("1370/1/1", 1),
		day("1380/12/29", 1),
	}

	m := BuildMatrix(Monthly(records))
	require.Len(t, m.Rows, 3)
	assert.Equal(t, 1370, m.Rows[0].Year)
	assert.Equal(t, 1380, m.Rows[1].Year)
	assert.Equal(t, 1390, m.Rows[2].Year)

	_, ok := m.Row(1375)
	assert.False(t, ok)
}
