package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishwanthvallala/train-data-analyser/internal/models"
)

func TestFormatMetrics(t *testing.T) {
	m := models.TripMetrics{
		TotalDistanceKM:    12.3456,
		MaxSpeed:           87.5,
		MaxSpeedDistanceKM: 4.5,
		MaxSpeedTimestamp:  time.Date(2024, 2, 1, 10, 32, 7, 0, time.UTC),
	}

	got := FormatMetrics(m)
	assert.Equal(t, "12.35 km", got.TotalDistance)
	assert.Equal(t, "87.5 Kmph", got.MaxSpeed)
	assert.Equal(t, "(at 4.50 km, time 10:32:07)", got.MaxSpeedDetails)
}

func TestFormatMetricsWholeSpeed(t *testing.T) {
	// Whole-number speeds render without a trailing ".0".
	got := FormatMetrics(models.TripMetrics{MaxSpeed: 90})
	assert.Equal(t, "90 Kmph", got.MaxSpeed)
}

func TestStopAnalysisLines(t *testing.T) {
	stops := []models.StopAnalysis{
		{
			Stop: models.StopEvent{Index: 2, DistanceKM: 0.2},
			Proximity: []models.ProximitySample{
				{OffsetM: 50, MatchedDistanceKM: 0.1, MatchedSpeed: 10},
				{OffsetM: 100, MatchedDistanceKM: 0.1, MatchedSpeed: 10},
			},
		},
	}

	lines := StopAnalysisLines(stops)
	require.Len(t, lines, 3)
	assert.Equal(t, "Stop detected at 0.20 km.", lines[0])
	assert.Equal(t, "  - Speed ~50m before: 10 Kmph (at 0.10 km)", lines[1])
	assert.Equal(t, "  - Speed ~100m before: 10 Kmph (at 0.10 km)", lines[2])
}

func TestStopAnalysisLinesEmpty(t *testing.T) {
	assert.Empty(t, StopAnalysisLines(nil))
}
