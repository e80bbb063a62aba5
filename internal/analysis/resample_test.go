package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishwanthvallala/train-data-analyser/internal/models"
)

func TestResampleBucketsAndMeans(t *testing.T) {
	// Samples at +0s, +1s, +11s, +45s: three occupied 10 s buckets; the
	// gaps in between produce no points.
	samples := []models.TelemetrySample{
		{Timestamp: testBase, DistanceIncrementM: 100, Speed: 10, CumulativeDistanceKM: 0.1},
		{Timestamp: testBase.Add(1 * time.Second), DistanceIncrementM: 100, Speed: 20, CumulativeDistanceKM: 0.2},
		{Timestamp: testBase.Add(11 * time.Second), DistanceIncrementM: 100, Speed: 30, CumulativeDistanceKM: 0.3},
		{Timestamp: testBase.Add(45 * time.Second), DistanceIncrementM: 100, Speed: 40, CumulativeDistanceKM: 0.4},
	}

	points := Resample(samples, 10*time.Second)
	require.Len(t, points, 3)

	assert.True(t, points[0].BucketStart.Equal(testBase))
	assert.Equal(t, 15.0, points[0].MeanSpeed)
	assert.InDelta(t, 0.15, points[0].MeanCumulativeKM, 1e-9)
	assert.Equal(t, 100.0, points[0].MeanIncrementM)

	assert.True(t, points[1].BucketStart.Equal(testBase.Add(10*time.Second)))
	assert.Equal(t, 30.0, points[1].MeanSpeed)

	assert.True(t, points[2].BucketStart.Equal(testBase.Add(40*time.Second)))
	assert.Equal(t, 40.0, points[2].MeanSpeed)
}

func TestResampleOrderedByBucketStart(t *testing.T) {
	samples := sampleSeries(ones(120), ones(120))

	points := Resample(samples, 30*time.Second)
	require.Len(t, points, 4)
	for i := 1; i < len(points); i++ {
		assert.True(t, points[i-1].BucketStart.Before(points[i].BucketStart))
	}
}

func TestResampleEmptyInput(t *testing.T) {
	assert.Empty(t, Resample(nil, 10*time.Second))
}
