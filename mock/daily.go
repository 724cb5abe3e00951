// Package mock generates synthetic daily precipitation series for fixtures and demos.
package mock

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/bxcodec/faker/v4"

	"github.com/orayew2002/rainfall-spi/domain"
	"github.com/orayew2002/rainfall-spi/jalali"
)

// Station describes the gauge a synthetic series is attributed to.
type Station struct {
	Name      string
	Latitude  float64
	Longitude float64
}

// Options controls series generation. MissingRate is the probability that a
// day has no observation; WetRate the probability that an observed day rains.
type Options struct {
	FromYear    int
	ToYear      int
	MissingRate float64
	WetRate     float64
	Seed        uint64
}

// DefaultOptions covers 1359-1396 with 10% missing days.
func DefaultOptions() Options {
	return Options{
		FromYear:    1359,
		ToYear:      1396,
		MissingRate: 0.1,
		WetRate:     0.3,
		Seed:        1,
	}
}

// GenerateStation returns a station with a fake name and coordinates.
func GenerateStation() Station {
	return Station{
		Name:      faker.FirstName() + " " + faker.Word(),
		Latitude:  faker.Latitude(),
		Longitude: faker.Longitude(),
	}
}

// GenerateDaily returns one record per calendar day of every year in range.
// Output is deterministic for a given Seed.
func GenerateDaily(opts Options) ([]domain.DailyRecord, error) {
	if opts.FromYear > opts.ToYear {
		return nil, fmt.Errorf("%w: year range %d..%d is empty", domain.ErrInvalidArgument, opts.FromYear, opts.ToYear)
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))

	var records []domain.DailyRecord
	for year := opts.FromYear; year <= opts.ToYear; year++ {
		for month := 1; month <= domain.MonthsPerYear; month++ {
			days, err := jalali.DaysInMonth(year, month)
			if err != nil {
				return nil, err
			}
			for day := 1; day <= days; day++ {
				records = append(records, domain.DailyRecord{
					Date:          domain.Date{Year: year, Month: month, Day: day},
					Precipitation: observe(rng, opts, month),
				})
			}
		}
	}
	return records, nil
}

func observe(rng *rand.Rand, opts Options, month int) domain.Value {
	if rng.Float64() < opts.MissingRate {
		return domain.Missing
	}
	// Dry summers: months 3-6 rain far less often.
	wet := opts.WetRate
	if month >= 3 && month <= 6 {
		wet /= 5
	}
	if rng.Float64() >= wet {
		return domain.Some(0)
	}
	mm := rng.ExpFloat64() * 6
	return domain.Some(math.Round(mm*10) / 10)
}
