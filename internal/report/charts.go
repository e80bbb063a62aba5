package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/rishwanthvallala/train-data-analyser/internal/models"
)

// WriteCharts renders the full chart page for one analysis result: speed vs
// time (resampled), speed vs cumulative distance with the proximity samples
// overlaid, and the per-stop deceleration profiles.
func WriteCharts(w io.Writer, result *models.AnalysisResult) error {
	page := components.NewPage()
	page.SetPageTitle("Train Data Analysis")
	page.AddCharts(
		speedTimeChart(result),
		speedDistanceChart(result),
		decelerationChart(result.Profiles),
	)
	return page.Render(w)
}

func speedTimeChart(result *models.AnalysisResult) *charts.Line {
	m := FormatMetrics(result.Metrics)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Speed vs. Time",
			Subtitle: fmt.Sprintf("total distance %s, max speed %s %s", m.TotalDistance, m.MaxSpeed, m.MaxSpeedDetails),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Time"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Speed (Kmph)"}),
	)

	x := make([]string, len(result.Resampled))
	y := make([]opts.LineData, len(result.Resampled))
	for i, p := range result.Resampled {
		x[i] = p.BucketStart.Format("15:04:05")
		y[i] = opts.LineData{Value: p.MeanSpeed}
	}
	line.SetXAxis(x).AddSeries("speed", y)
	return line
}

func speedDistanceChart(result *models.AnalysisResult) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Speed vs. Cumulative Distance",
			Subtitle: fmt.Sprintf("%d stops detected", len(result.Stops)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "Cumulative Distance (Km)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Speed (Kmph)"}),
	)

	data := make([]opts.LineData, len(result.Resampled))
	for i, p := range result.Resampled {
		data[i] = opts.LineData{Value: []interface{}{p.MeanCumulativeKM, p.MeanSpeed}}
	}
	line.AddSeries("speed", data)

	var points []opts.ScatterData
	for _, sa := range result.Stops {
		for _, p := range sa.Proximity {
			points = append(points, opts.ScatterData{Value: []interface{}{p.MatchedDistanceKM, p.MatchedSpeed}})
		}
	}
	if len(points) > 0 {
		scatter := charts.NewScatter()
		scatter.AddSeries("Speed Before Stop", points,
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 8}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "#ff5252"}),
		)
		line.Overlap(scatter)
	}
	return line
}

func decelerationChart(profiles []models.DecelerationProfile) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Deceleration Profiles",
			Subtitle: "speed over the final window before each stop",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "Distance into window (m)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Speed (Kmph)"}),
	)

	for _, profile := range profiles {
		data := make([]opts.LineData, len(profile.Points))
		for i, p := range profile.Points {
			data[i] = opts.LineData{Value: []interface{}{p.RelativeDistanceM, p.Speed}}
		}
		line.AddSeries("Stop at "+profile.Stop.Timestamp.Format("15:04:05"), data)
	}
	return line
}
