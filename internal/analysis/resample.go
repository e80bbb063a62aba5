package analysis

import (
	"sort"
	"time"

	"github.com/rishwanthvallala/train-data-analyser/internal/models"
)

// Resample groups samples into fixed-width time buckets and averages the
// numeric fields per bucket. Buckets with no contributing samples are
// dropped; output is ordered by bucket start. Display thinning only.
func Resample(samples []models.TelemetrySample, bucket time.Duration) []models.ResampledPoint {
	type agg struct {
		n                int
		increment, speed float64
		cumulative       float64
	}
	buckets := make(map[time.Time]*agg)
	for _, s := range samples {
		start := s.Timestamp.Truncate(bucket)
		a := buckets[start]
		if a == nil {
			a = &agg{}
			buckets[start] = a
		}
		a.n++
		a.increment += s.DistanceIncrementM
		a.speed += s.Speed
		a.cumulative += s.CumulativeDistanceKM
	}

	starts := make([]time.Time, 0, len(buckets))
	for start := range buckets {
		starts = append(starts, start)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })

	out := make([]models.ResampledPoint, len(starts))
	for i, start := range starts {
		a := buckets[start]
		n := float64(a.n)
		out[i] = models.ResampledPoint{
			BucketStart:      start,
			MeanIncrementM:   a.increment / n,
			MeanSpeed:        a.speed / n,
			MeanCumulativeKM: a.cumulative / n,
		}
	}
	return out
}
