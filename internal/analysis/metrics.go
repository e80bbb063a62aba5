package analysis

import "github.com/rishwanthvallala/train-data-analyser/internal/models"

// Summarize computes aggregate trip metrics. Total distance is the last
// sample's cumulative distance; max speed binds to the first index attaining
// the maximum.
func Summarize(samples []models.TelemetrySample) models.TripMetrics {
	best := 0
	for i, s := range samples {
		if s.Speed > samples[best].Speed {
			best = i
		}
	}
	return models.TripMetrics{
		TotalDistanceKM:    samples[len(samples)-1].CumulativeDistanceKM,
		MaxSpeed:           samples[best].Speed,
		MaxSpeedDistanceKM: samples[best].CumulativeDistanceKM,
		MaxSpeedTimestamp:  samples[best].Timestamp,
	}
}
