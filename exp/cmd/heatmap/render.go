package main

import (
	"fmt"
	"os"
	"strconv"

	"exp/internal/db"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// renderHeatmap draws one run's frequency table with position on the X axis
// and value on the Y axis.
func renderHeatmap(database *db.DB, run *db.Run, outputPath string) error {
	counts, err := database.LoadCounts(run.ID)
	if err != nil {
		return err
	}
	if len(counts) == 0 {
		return fmt.Errorf("run %s has no position counts", run.ID)
	}

	labels := make([]string, run.DeckSize)
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}

	var heatmapData []opts.HeatMapData
	var maxCount int64
	for _, c := range counts {
		if c.Count > maxCount {
			maxCount = c.Count
		}
		heatmapData = append(heatmapData, opts.HeatMapData{
			Value: [3]any{c.Position, c.Value, c.Count},
		})
	}

	expected := float64(run.Trials) / float64(run.DeckSize)

	heatmap := charts.NewHeatMap()
	heatmap.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s: value x position counts", run.Algorithm),
			Subtitle: fmt.Sprintf("deck=%d trials=%d expected=%.1f/cell chi2=%.1f p=%.4f",
				run.DeckSize, run.Trials, expected, run.ChiSquare, run.PValue),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "position",
			Type:      "category",
			Data:      labels,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "value",
			Type:      "category",
			Data:      labels,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxCount),
			InRange:    &opts.VisualMapInRange{Color: []string{"#313695", "#74add1", "#fee090", "#f46d43", "#a50026"}},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	heatmap.AddSeries("count", heatmapData)

	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return heatmap.Render(f)
}

// renderChiSquareChart plots every recorded run's statistic next to its
// acceptance threshold, with the p-value on a second axis.
func renderChiSquareChart(database *db.DB, outputPath string) error {
	details, err := database.QueryDetailed("SELECT * FROM runs_detailed ORDER BY created_at, id")
	if err != nil {
		return err
	}
	if len(details) == 0 {
		return fmt.Errorf("no runs recorded")
	}

	var xAxisData []string
	var chiData, thresholdData, pData []opts.LineData
	for _, d := range details {
		xAxisData = append(xAxisData, fmt.Sprintf("%s/%d", d.Algorithm, d.DeckSize))
		chiData = append(chiData, opts.LineData{
			Value: d.ChiSquare,
			Name:  fmt.Sprintf("%s deck=%d trials=%d", d.Algorithm, d.DeckSize, d.Trials),
		})
		thresholdData = append(thresholdData, opts.LineData{
			Value: 2 * d.DegreesOfFreedom,
		})
		pData = append(pData, opts.LineData{
			Value: d.PValue,
		})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Chi-square by run",
			Subtitle: "Runs at or above twice the degrees of freedom are not uniform",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "run",
			Type: "category",
			Data: xAxisData,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "chi-square",
			Type: "value",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Top:  "5%",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
	)

	line.SetXAxis(xAxisData)
	line.AddSeries("chi-square", chiData)
	line.AddSeries("threshold", thresholdData)

	// Extend Y-axis for dual axis (must be done before adding the p-value series)
	line.ExtendYAxis(opts.YAxis{
		Name: "p-value",
		Type: "value",
		Min:  0,
		Max:  1,
	})
	line.AddSeries("p-value", pData,
		charts.WithLineChartOpts(opts.LineChart{
			Smooth:     opts.Bool(true),
			YAxisIndex: 1,
		}),
	)

	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return line.Render(f)
}
