// Copyright 2026 Lumetric
// This file is part of Deviate, the random-sampling library of the
// Lumetric image simulation toolkit.
//
// Deviate is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Deviate is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Deviate. If not, see <http://www.gnu.org/licenses/>.

// Package visualizer renders the internal tables of a sampler as line
// charts for visual inspection of a distribution before a long
// simulation run.
package visualizer

import (
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/lumetric/deviate/dist"
)

// convertPoints converts (x, y) pairs to chart points.
func convertPoints(xs, ys []float64) []opts.LineData {
	items := []opts.LineData{}
	for i := range xs {
		items = append(items, opts.LineData{Value: [2]float64{xs[i], ys[i]}})
	}
	return items
}

// newChart creates a line chart with the house theme and toolbox.
func newChart(title, subtitle string) *charts.Line {
	chart := charts.NewLine()
	chart.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme: types.ThemeChalk,
	}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}))
	return chart
}

// RenderHTML writes the sampler's cumulative table, and the density
// table when available, as a self-contained HTML page.
func RenderHTML(s *dist.Sampler, title, path string) error {
	page := components.NewPage()
	page.PageTitle = title

	xs, cdf := s.Points()
	cdfChart := newChart(title, "Cumulative Distribution")
	cdfChart.AddSeries("CDF", convertPoints(xs, cdf))
	page.AddCharts(cdfChart)

	if dx, dp, ok := s.DensityPoints(); ok {
		densityChart := newChart(title, "Density")
		densityChart.AddSeries("Density", convertPoints(dx, dp))
		page.AddCharts(densityChart)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return page.Render(file)
}
