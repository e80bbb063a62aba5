package analysis

import (
	"strconv"
	"strings"

	"github.com/rishwanthvallala/train-data-analyser/internal/models"
)

// Fixed export column order: date, time, distance increment, speed. Extra
// columns are ignored.
const (
	colDate = iota
	colTime
	colDistance
	colSpeed
	minColumns
)

// BuildSeries converts raw rows from the data start index onward into an
// ordered sample sequence. A row is dropped whenever its date, time,
// distance, or speed cell fails to parse; there is no imputation. Output
// keeps the original row order after filtering, and cumulative distance is
// the running sum of increments divided by 1000.
func BuildSeries(table [][]string, start int) ([]models.TelemetrySample, error) {
	samples := make([]models.TelemetrySample, 0, len(table)-start)
	var cumulativeM float64

	for _, row := range table[start:] {
		if len(row) < minColumns {
			continue
		}
		date, ok := parseDayFirstDate(row[colDate])
		if !ok {
			continue
		}
		clock, ok := parseClock(row[colTime])
		if !ok {
			continue
		}
		increment, err := strconv.ParseFloat(strings.TrimSpace(row[colDistance]), 64)
		if err != nil {
			continue
		}
		speed, err := strconv.ParseFloat(strings.TrimSpace(row[colSpeed]), 64)
		if err != nil {
			continue
		}

		cumulativeM += increment
		samples = append(samples, models.TelemetrySample{
			Timestamp:            combine(date, clock),
			DistanceIncrementM:   increment,
			Speed:                speed,
			CumulativeDistanceKM: cumulativeM / 1000,
		})
	}

	if len(samples) == 0 {
		return nil, ErrEmptyAfterCleaning
	}
	return samples, nil
}
