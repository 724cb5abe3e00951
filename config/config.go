// Package config loads run settings from an optional YAML file and SPI_*
// environment variables. Environment values win over the file, which wins
// over the built-in defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"github.com/orayew2002/rainfall-spi/aggregate"
	"github.com/orayew2002/rainfall-spi/chart"
	"github.com/orayew2002/rainfall-spi/domain"
)

// EnvPrefix is prepended to every environment variable, e.g. SPI_LOGGING_LEVEL.
const EnvPrefix = "SPI"

// Config is the complete run configuration.
type Config struct {
	Logging Logging `yaml:"logging" envconfig:"LOGGING"`
	Columns Columns `yaml:"columns" envconfig:"COLUMNS"`
	SPIPrep SPIPrep `yaml:"spi_prep" envconfig:"SPI_PREP"`
	Chart   Chart   `yaml:"chart" envconfig:"CHART"`
}

// Logging selects the log level and handler format ("json" or "text").
type Logging struct {
	Level  string `yaml:"level" envconfig:"LEVEL"`
	Format string `yaml:"format" envconfig:"FORMAT"`
}

// Columns names the input columns. PrecipitationFallback is a column letter
// used when no header matches Precipitation.
type Columns struct {
	Date                  string `yaml:"date" envconfig:"DATE"`
	Precipitation         string `yaml:"precipitation" envconfig:"PRECIPITATION"`
	PrecipitationFallback string `yaml:"precipitation_fallback" envconfig:"PRECIPITATION_FALLBACK"`
	Year                  string `yaml:"year" envconfig:"YEAR"`
}

// SPIPrep bounds the SPI preparation table.
type SPIPrep struct {
	FromYear  int     `yaml:"from_year" envconfig:"FROM_YEAR"`
	ToYear    int     `yaml:"to_year" envconfig:"TO_YEAR"`
	Threshold float64 `yaml:"threshold" envconfig:"THRESHOLD"`
}

// Chart sizes the rendered images.
type Chart struct {
	WidthInches  float64 `yaml:"width_inches" envconfig:"WIDTH_INCHES"`
	HeightInches float64 `yaml:"height_inches" envconfig:"HEIGHT_INCHES"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	spi := aggregate.DefaultSPIPrepOptions()
	ch := chart.DefaultOptions()
	return Config{
		Logging: Logging{Level: "info", Format: "text"},
		Columns: Columns{
			Date:                  "Persian Date",
			Precipitation:         "precipitation",
			PrecipitationFallback: "F",
			Year:                  "year",
		},
		SPIPrep: SPIPrep{FromYear: spi.FromYear, ToYear: spi.ToYear, Threshold: spi.Threshold},
		Chart:   Chart{WidthInches: ch.WidthInches, HeightInches: ch.HeightInches},
	}
}

// Load builds the configuration from defaults, the YAML file at path (skipped
// when path is empty) and the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("%w: load config from env: %w", domain.ErrInvalidArgument, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: read config %s: %w", domain.ErrIO, path, err)
	}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return fmt.Errorf("%w: parse config %s: %w", domain.ErrInvalidArgument, path, err)
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("%w: logging format %q", domain.ErrInvalidArgument, c.Logging.Format)
	}

	if strings.TrimSpace(c.Columns.Date) == "" {
		return fmt.Errorf("%w: date column is empty", domain.ErrInvalidArgument)
	}
	if strings.TrimSpace(c.Columns.Precipitation) == "" && strings.TrimSpace(c.Columns.PrecipitationFallback) == "" {
		return fmt.Errorf("%w: no precipitation column", domain.ErrInvalidArgument)
	}
	if strings.TrimSpace(c.Columns.Year) == "" {
		return fmt.Errorf("%w: year column is empty", domain.ErrInvalidArgument)
	}

	if err := c.SPIPrepOptions().Validate(); err != nil {
		return err
	}
	if c.Chart.WidthInches <= 0 || c.Chart.HeightInches <= 0 {
		return fmt.Errorf("%w: chart size %gx%g", domain.ErrInvalidArgument, c.Chart.WidthInches, c.Chart.HeightInches)
	}
	return nil
}

// SPIPrepOptions converts the SPI section for the aggregate package.
func (c *Config) SPIPrepOptions() aggregate.SPIPrepOptions {
	return aggregate.SPIPrepOptions{
		FromYear:  c.SPIPrep.FromYear,
		ToYear:    c.SPIPrep.ToYear,
		Threshold: c.SPIPrep.Threshold,
	}
}

// ChartOptions converts the chart section for the chart package.
func (c *Config) ChartOptions() chart.Options {
	return chart.Options{WidthInches: c.Chart.WidthInches, HeightInches: c.Chart.HeightInches}
}
