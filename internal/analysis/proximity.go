package analysis

import "github.com/rishwanthvallala/train-data-analyser/internal/models"

// SampleProximity finds, for each offset, the pre-stop sample nearest to the
// stop distance minus the offset. Offsets whose target distance is not
// positive are skipped: the stop happened too early in the trip to look that
// far back. Offsets must be given in the order results should carry.
func SampleProximity(samples []models.TelemetrySample, stop models.StopEvent, offsetsM []int) []models.ProximitySample {
	pre := samples[:stop.Index+1]
	var out []models.ProximitySample
	for _, offset := range offsetsM {
		targetKM := stop.DistanceKM - float64(offset)/1000
		if targetKM <= 0 {
			continue
		}
		s := pre[nearestIndex(pre, targetKM)]
		out = append(out, models.ProximitySample{
			OffsetM:           offset,
			MatchedDistanceKM: s.CumulativeDistanceKM,
			MatchedSpeed:      s.Speed,
			MatchedTimestamp:  s.Timestamp,
		})
	}
	return out
}
