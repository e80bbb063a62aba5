package analysis

import (
	"sort"

	"github.com/rishwanthvallala/train-data-analyser/internal/models"
)

// nearestIndex returns the index of the sample whose cumulative distance is
// closest to targetKM. Cumulative distance is non-decreasing whenever all
// increments are non-negative, so a binary search applies; ties and runs of
// equal distances resolve to the earliest index.
//
// A negative increment breaks the monotonic key. The search then settles on
// the nearest of the two samples bracketing the binary-search insertion
// point, which may not be the globally closest sample. Accepted consequence
// of keeping negative increments lenient.
func nearestIndex(samples []models.TelemetrySample, targetKM float64) int {
	i := sort.Search(len(samples), func(j int) bool {
		return samples[j].CumulativeDistanceKM >= targetKM
	})

	best := i
	switch {
	case i == len(samples):
		best = len(samples) - 1
	case i > 0:
		below := targetKM - samples[i-1].CumulativeDistanceKM
		above := samples[i].CumulativeDistanceKM - targetKM
		if below <= above {
			best = i - 1
		}
	}
	for best > 0 && samples[best-1].CumulativeDistanceKM == samples[best].CumulativeDistanceKM {
		best--
	}
	return best
}
