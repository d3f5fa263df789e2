package service

import (
	"encoding/json"
	"strconv"

	models "acdoc-dashboard/app/models/dataset"
)

const (
	barColor        = "#1f2c51"
	barOrientation  = "h"
	barTextPosition = "inside"
	coursesAxis     = "Cursos"
)

// BuildBarChart maps one row of t to one horizontal bar. Bars keep the row order of t;
// the page draws the first row at the top of the category axis for every chart.
func BuildBarChart(id string, t *models.Table, labelCol, valueCol, title string) models.ChartSpec {
	spec := models.ChartSpec{
		ID:           id,
		Title:        title,
		YAxis:        coursesAxis,
		Orientation:  barOrientation,
		Color:        barColor,
		TextPosition: barTextPosition,
		Points:       make([]models.ChartPoint, 0, t.Len()),
	}
	for _, rec := range t.Rows {
		label, _ := rec.String(labelCol)
		spec.Points = append(spec.Points, models.ChartPoint{
			Label: label,
			Value: numericValue(rec[valueCol]),
		})
	}
	return spec
}

// numericValue returns 0 for anything that is not a number.
func numericValue(v any) float64 {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}
