// Package report renders an AnalysisResult for display: the metric strings
// and stop-analysis lines shown to the user, and the chart page built with
// go-echarts.
package report

import (
	"fmt"
	"strconv"

	"github.com/rishwanthvallala/train-data-analyser/internal/models"
)

// MetricStrings are the three display strings derived from TripMetrics.
type MetricStrings struct {
	TotalDistance   string `json:"total_distance"`
	MaxSpeed        string `json:"max_speed"`
	MaxSpeedDetails string `json:"max_speed_details"`
}

// FormatMetrics renders trip metrics for display: two-decimal kilometres,
// a Kmph max speed, and a parenthetical locating the maximum.
func FormatMetrics(m models.TripMetrics) MetricStrings {
	return MetricStrings{
		TotalDistance:   fmt.Sprintf("%.2f km", m.TotalDistanceKM),
		MaxSpeed:        formatSpeed(m.MaxSpeed) + " Kmph",
		MaxSpeedDetails: fmt.Sprintf("(at %.2f km, time %s)", m.MaxSpeedDistanceKM, m.MaxSpeedTimestamp.Format("15:04:05")),
	}
}

// StopAnalysisLines renders the stop analyses as human-readable lines: one
// "Stop detected" line per stop followed by one line per proximity sample.
func StopAnalysisLines(stops []models.StopAnalysis) []string {
	var lines []string
	for _, sa := range stops {
		lines = append(lines, fmt.Sprintf("Stop detected at %.2f km.", sa.Stop.DistanceKM))
		for _, p := range sa.Proximity {
			lines = append(lines, fmt.Sprintf("  - Speed ~%dm before: %s Kmph (at %.2f km)",
				p.OffsetM, formatSpeed(p.MatchedSpeed), p.MatchedDistanceKM))
		}
	}
	return lines
}

func formatSpeed(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
