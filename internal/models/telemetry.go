package models

import "time"

// TelemetrySample is one cleaned reading from a device export. Samples keep
// their original file order; timestamps are never re-sorted.
//
// CumulativeDistanceKM is the running sum of DistanceIncrementM divided by
// 1000. A negative increment (sensor glitch) lowers the cumulative value;
// that is deliberate lenient behaviour, not corrected here.
type TelemetrySample struct {
	Timestamp            time.Time `json:"timestamp"`
	DistanceIncrementM   float64   `json:"distance_increment_m"`
	Speed                float64   `json:"speed"` // km/h
	CumulativeDistanceKM float64   `json:"cumulative_distance_km"`
}

// StopEvent marks a falling-edge transition from positive speed to zero.
type StopEvent struct {
	Index      int       `json:"index"`
	DistanceKM float64   `json:"distance_km"`
	Timestamp  time.Time `json:"timestamp"`
}

// ProximitySample is the sample nearest a target distance measured backward
// from a stop.
type ProximitySample struct {
	OffsetM           int       `json:"offset_m"`
	MatchedDistanceKM float64   `json:"matched_distance_km"`
	MatchedSpeed      float64   `json:"matched_speed"`
	MatchedTimestamp  time.Time `json:"matched_timestamp"`
}

// StopAnalysis groups a stop event with its proximity samples, in ascending
// offset order.
type StopAnalysis struct {
	Stop      StopEvent         `json:"stop"`
	Proximity []ProximitySample `json:"proximity"`
}

// DecelerationPoint is one point of a re-based speed-vs-distance curve.
type DecelerationPoint struct {
	RelativeDistanceM float64 `json:"relative_distance_m"`
	Speed             float64 `json:"speed"`
}

// DecelerationProfile covers the window leading up to a stop, re-based so
// the window's minimum cumulative distance maps to zero.
type DecelerationProfile struct {
	Stop   StopEvent           `json:"stop"`
	Points []DecelerationPoint `json:"points"`
}

// TripMetrics provides aggregate statistics for one trip.
type TripMetrics struct {
	TotalDistanceKM    float64   `json:"total_distance_km"`
	MaxSpeed           float64   `json:"max_speed"`
	MaxSpeedDistanceKM float64   `json:"max_speed_distance_km"`
	MaxSpeedTimestamp  time.Time `json:"max_speed_timestamp"`
}

// ResampledPoint is a time-bucketed display aggregate. It never feeds back
// into analysis.
type ResampledPoint struct {
	BucketStart      time.Time `json:"bucket_start"`
	MeanIncrementM   float64   `json:"mean_increment_m"`
	MeanSpeed        float64   `json:"mean_speed"`
	MeanCumulativeKM float64   `json:"mean_cumulative_km"`
}

// AnalysisResult aggregates everything derived from one uploaded file. Built
// once per upload, held only while the response renders; not persisted.
type AnalysisResult struct {
	SampleCount int                   `json:"sample_count"`
	Metrics     TripMetrics           `json:"metrics"`
	Stops       []StopAnalysis        `json:"stops"`
	Profiles    []DecelerationProfile `json:"deceleration_profiles"`
	Resampled   []ResampledPoint      `json:"resampled"`
}

// UploadRecord is ingest bookkeeping for one uploaded file. Analysis output
// is not stored, only what arrived and whether processing succeeded.
type UploadRecord struct {
	ID          int64     `json:"id"`
	Filename    string    `json:"filename"`
	SizeBytes   int64     `json:"size_bytes"`
	UploadedAt  time.Time `json:"uploaded_at"`
	SampleCount int       `json:"sample_count"`
	Status      string    `json:"status"`
}
