package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orayew2002/rainfall-spi/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)

	assert.Equal(t, "Persian Date", cfg.Columns.Date)
	assert.Equal(t, "F", cfg.Columns.PrecipitationFallback)
	assert.Equal(t, 1359, cfg.SPIPrep.FromYear)
	assert.Equal(t, 1396, cfg.SPIPrep.ToYear)
	assert.InDelta(t, 0.75, cfg.SPIPrep.Threshold, 1e-12)
	assert.InDelta(t, 8, cfg.Chart.WidthInches, 1e-12)
	assert.InDelta(t, 4, cfg.Chart.HeightInches, 1e-12)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
  format: json
spi_prep:
  from_year: 1380
  to_year: 1390
columns:
  precipitation: rain
`)
	t.Setenv("SPI_SPI_PREP_TO_YEAR", "1395")
	t.Setenv("SPI_CHART_WIDTH_INCHES", "10")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "rain", cfg.Columns.Precipitation)
	assert.Equal(t, "Persian Date", cfg.Columns.Date)
	assert.Equal(t, 1380, cfg.SPIPrep.FromYear)
	assert.Equal(t, 1395, cfg.SPIPrep.ToYear)
	assert.InDelta(t, 10, cfg.Chart.WidthInches, 1e-12)

	opts := cfg.SPIPrepOptions()
	assert.Equal(t, 1380, opts.FromYear)
	assert.Equal(t, 1395, opts.ToYear)
	assert.InDelta(t, 10, cfg.ChartOptions().WidthInches, 1e-12)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		env     map[string]string
		wantErr error
	}{
		{name: "unknown key", body: "colour: blue\n", wantErr: domain.ErrInvalidArgument},
		{name: "reversed range", body: "spi_prep:\n  from_year: 1400\n  to_year: 1390\n", wantErr: domain.ErrInvalidArgument},
		{name: "threshold above one", body: "spi_prep:\n  threshold: 1.5\n", wantErr: domain.ErrInvalidArgument},
		{name: "bad format", body: "logging:\n  format: xml\n", wantErr: domain.ErrInvalidArgument},
		{name: "empty date column", body: "columns:\n  date: \" \"\n", wantErr: domain.ErrInvalidArgument},
		{name: "zero chart height", env: map[string]string{"SPI_CHART_HEIGHT_INCHES": "0"}, wantErr: domain.ErrInvalidArgument},
		{name: "malformed env", env: map[string]string{"SPI_SPI_PREP_FROM_YEAR": "soon"}, wantErr: domain.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.body != "" {
				path = writeConfig(t, tt.body)
			}
			_, err := Load(path)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, domain.ErrIO)
}
