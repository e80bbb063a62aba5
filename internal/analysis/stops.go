package analysis

import "github.com/rishwanthvallala/train-data-analyser/internal/models"

// DetectStops returns one event per motion-to-stop transition: any index
// i > 0 where speed[i] == 0 and speed[i-1] > 0. Only the falling edge is
// recorded; consecutive zero-speed samples add no further events. A trip
// with no transition yields an empty slice.
func DetectStops(samples []models.TelemetrySample) []models.StopEvent {
	var stops []models.StopEvent
	for i := 1; i < len(samples); i++ {
		if samples[i].Speed == 0 && samples[i-1].Speed > 0 {
			stops = append(stops, models.StopEvent{
				Index:      i,
				DistanceKM: samples[i].CumulativeDistanceKM,
				Timestamp:  samples[i].Timestamp,
			})
		}
	}
	return stops
}
