package analysis

import (
	"strconv"
	"time"

	"github.com/rishwanthvallala/train-data-analyser/internal/models"
)

var testBase = time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)

// tripTable builds a raw table with a two-row header block followed by data
// rows at one-second intervals, in the day-first export format.
func tripTable(speeds, increments []float64) [][]string {
	table := [][]string{
		{"Device Export", "", "", ""},
		{"DATE", "TIME", "DISTANCE", "SPEED"},
	}
	for i := range speeds {
		ts := testBase.Add(time.Duration(i) * time.Second)
		table = append(table, []string{
			ts.Format("02/01/2006"),
			ts.Format("15:04:05"),
			strconv.FormatFloat(increments[i], 'f', -1, 64),
			strconv.FormatFloat(speeds[i], 'f', -1, 64),
		})
	}
	return table
}

// sampleSeries builds a cleaned sample sequence directly, one second apart.
func sampleSeries(speeds, increments []float64) []models.TelemetrySample {
	samples := make([]models.TelemetrySample, len(speeds))
	var cumulativeM float64
	for i := range speeds {
		cumulativeM += increments[i]
		samples[i] = models.TelemetrySample{
			Timestamp:            testBase.Add(time.Duration(i) * time.Second),
			DistanceIncrementM:   increments[i],
			Speed:                speeds[i],
			CumulativeDistanceKM: cumulativeM / 1000,
		}
	}
	return samples
}

func ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
