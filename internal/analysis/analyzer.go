package analysis

import (
	"sort"
	"time"

	"github.com/rishwanthvallala/train-data-analyser/internal/models"
)

// Options configures the tunable parts of the pipeline. Zero values are
// replaced by defaults.
type Options struct {
	// ProximityOffsetsM are the backward distance offsets sampled before
	// each stop. {1, 10, 50, 100} gives the deceleration-context variant.
	ProximityOffsetsM []int

	// DecelWindowKM is the length of the pre-stop window extracted for
	// deceleration profiles.
	DecelWindowKM float64

	// ResampleBucket is the time bucket width of the display series.
	ResampleBucket time.Duration
}

// DefaultOptions returns the standard report parameters.
func DefaultOptions() Options {
	return Options{
		ProximityOffsetsM: []int{50, 100},
		DecelWindowKM:     1.0,
		ResampleBucket:    10 * time.Second,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if len(o.ProximityOffsetsM) == 0 {
		o.ProximityOffsetsM = def.ProximityOffsetsM
	}
	if o.DecelWindowKM <= 0 {
		o.DecelWindowKM = def.DecelWindowKM
	}
	if o.ResampleBucket <= 0 {
		o.ResampleBucket = def.ResampleBucket
	}
	return o
}

// Analyze runs the full pipeline over one raw table: locate the data start,
// build the cleaned sample series, then derive stop analyses, deceleration
// profiles, trip metrics, and the resampled display series. One invocation
// per uploaded file; no state is shared across calls. Work is bounded by the
// input row count, so either a complete result or a terminal error comes
// back deterministically.
func Analyze(table [][]string, opts Options) (*models.AnalysisResult, error) {
	opts = opts.withDefaults()

	start, err := FindDataStart(table)
	if err != nil {
		return nil, err
	}
	samples, err := BuildSeries(table, start)
	if err != nil {
		return nil, err
	}

	offsets := append([]int(nil), opts.ProximityOffsetsM...)
	sort.Ints(offsets)

	result := &models.AnalysisResult{
		SampleCount: len(samples),
		Metrics:     Summarize(samples),
		Resampled:   Resample(samples, opts.ResampleBucket),
	}
	for _, stop := range DetectStops(samples) {
		result.Stops = append(result.Stops, models.StopAnalysis{
			Stop:      stop,
			Proximity: SampleProximity(samples, stop, offsets),
		})
		result.Profiles = append(result.Profiles, ExtractDeceleration(samples, stop, opts.DecelWindowKM))
	}
	return result, nil
}
