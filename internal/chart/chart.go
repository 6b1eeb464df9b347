// Package chart renders a PNG line chart of the yearly growth series.
package chart

import (
	"errors"
	"fmt"
	"strconv"

	"compound-calc/internal/model"

	"github.com/vicanso/go-charts/v2"
)

// RenderGrowth draws the accumulated balance per year, with year 0 anchored
// at the principal.
func RenderGrowth(params model.CalculationParams, result model.CalculationResult) ([]byte, error) {
	if len(result.YearlyBreakdown) == 0 {
		return nil, errors.New("empty breakdown")
	}

	values := make([]float64, 0, len(result.YearlyBreakdown)+1)
	labels := make([]string, 0, len(result.YearlyBreakdown)+1)
	values = append(values, params.Principal)
	labels = append(labels, "0")
	for _, row := range result.YearlyBreakdown {
		values = append(values, row.Amount)
		if row.Date != nil {
			labels = append(labels, row.Date.String())
		} else {
			labels = append(labels, strconv.Itoa(row.Year))
		}
	}

	yMin, yMax := values[0], values[0]
	for _, v := range values {
		if v < yMin {
			yMin = v
		}
		if v > yMax {
			yMax = v
		}
	}
	pad := (yMax - yMin) * 0.05
	if pad < yMax*0.002 {
		pad = yMax * 0.002
	}
	yMin -= pad
	if yMin < 0 {
		yMin = 0
	}
	yMax += pad

	title := fmt.Sprintf("%.2f @ %.2f%% • %s • %d years", params.Principal, params.Rate, params.Frequency, params.Time)
	painter, err := charts.LineRender([][]float64{values},
		charts.TitleTextOptionFunc(title),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels, BoundaryGap: charts.FalseFlag()}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}
