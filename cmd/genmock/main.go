// Command genmock writes a synthetic daily precipitation workbook that the
// matrix and spiprep commands accept as input.
//
// Usage:
//
//	go run ./cmd/genmock -out daily.xlsx -from 1359 -to 1396 -missing 0.1
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/xuri/excelize/v2"

	"github.com/orayew2002/rainfall-spi/domain"
	"github.com/orayew2002/rainfall-spi/excel"
	"github.com/orayew2002/rainfall-spi/mock"
	"github.com/orayew2002/rainfall-spi/workbook"
)

const sheet = "daily"

var headers = []string{"station", "latitude", "longitude", "Persian Date", "precipitation"}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	defaults := mock.DefaultOptions()

	out := flag.String("out", "daily.xlsx", "output workbook path")
	from := flag.Int("from", defaults.FromYear, "first Jalali year")
	to := flag.Int("to", defaults.ToYear, "last Jalali year")
	missing := flag.Float64("missing", defaults.MissingRate, "probability that a day has no observation")
	wet := flag.Float64("wet", defaults.WetRate, "probability that an observed day has rain")
	seed := flag.Uint64("seed", defaults.Seed, "random seed")
	flag.Parse()

	records, err := mock.GenerateDaily(mock.Options{
		FromYear:    *from,
		ToYear:      *to,
		MissingRate: *missing,
		WetRate:     *wet,
		Seed:        *seed,
	})
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	station := mock.GenerateStation()
	data, err := render(station, records)
	if err != nil {
		return err
	}
	if err := workbook.SaveBytes(*out, data); err != nil {
		return err
	}

	log.Printf("%s: %d days for station %q (%d..%d)", *out, len(records), station.Name, *from, *to)
	return nil
}

func render(station mock.Station, records []domain.DailyRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return nil, fmt.Errorf("stream writer: %w", err)
	}

	head := make([]any, len(headers))
	for i, h := range headers {
		head[i] = h
	}
	if err := sw.SetRow(excel.CellName(0, 0), head); err != nil {
		return nil, fmt.Errorf("write headers: %w", err)
	}

	for i, r := range records {
		var rain any
		if v, ok := r.Precipitation.Float(); ok {
			rain = v
		}
		row := []any{station.Name, station.Latitude, station.Longitude, r.Date.String(), rain}
		if err := sw.SetRow(excel.CellName(i+1, 0), row); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return nil, fmt.Errorf("flush: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write to buffer: %w", err)
	}
	return buf.Bytes(), nil
}
