package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orayew2002/rainfall-spi/config"
	"github.com/orayew2002/rainfall-spi/mock"
	"github.com/orayew2002/rainfall-spi/pipeline"
	"github.com/orayew2002/rainfall-spi/workbook"
)

func TestRender_ReadsBackAsDaily(t *testing.T) {
	opts := mock.DefaultOptions()
	opts.FromYear, opts.ToYear = 1399, 1400

	records, err := mock.GenerateDaily(opts)
	require.NoError(t, err)

	data, err := render(mock.GenerateStation(), records)
	require.NoError(t, err)

	tbl, err := workbook.LoadReader(bytes.NewReader(data), workbook.LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, sheet, tbl.Sheet)
	assert.Equal(t, headers, tbl.Headers())

	got, err := pipeline.ReadDaily(tbl, pipeline.NewRegistry(config.Default().Columns))
	require.NoError(t, err)
	require.Len(t, got, len(records))
	// 1399 is a leap year.
	assert.Len(t, got, 366+365)

	for i := range records {
		assert.Equal(t, records[i].Date, got[i].Date)
		assert.Equal(t, records[i].Precipitation, got[i].Precipitation)
	}
}
