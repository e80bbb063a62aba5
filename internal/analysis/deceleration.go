package analysis

import "github.com/rishwanthvallala/train-data-analyser/internal/models"

// ExtractDeceleration extracts the sample window from windowKM before the
// stop (or trip start, whichever is closer) through the stop itself.
// Relative distance is re-based so the window's minimum cumulative distance
// maps to zero.
func ExtractDeceleration(samples []models.TelemetrySample, stop models.StopEvent, windowKM float64) models.DecelerationProfile {
	pre := samples[:stop.Index+1]
	window := pre[nearestIndex(pre, stop.DistanceKM-windowKM):]

	minKM := window[0].CumulativeDistanceKM
	for _, s := range window[1:] {
		if s.CumulativeDistanceKM < minKM {
			minKM = s.CumulativeDistanceKM
		}
	}

	points := make([]models.DecelerationPoint, len(window))
	for i, s := range window {
		points[i] = models.DecelerationPoint{
			RelativeDistanceM: (s.CumulativeDistanceKM - minKM) * 1000,
			Speed:             s.Speed,
		}
	}
	return models.DecelerationProfile{Stop: stop, Points: points}
}
