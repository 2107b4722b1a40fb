package render

import (
	"fmt"
	"sort"

	"autoviz/domain/chart"
	"autoviz/domain/table"
)

// Renderer extracts render-ready series from a Table for a given
// suggestion. Implements ports.ChartRenderer; the Table is read-only.
type Renderer struct{}

// NewRenderer creates a renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render builds the chart artifact for a suggestion. Rows whose mapped
// cells are null or of the wrong kind are dropped from the series.
func (r *Renderer) Render(t *table.Table, s chart.Suggestion) (*chart.Artifact, error) {
	xCol, ok := t.Column(s.X)
	if !ok {
		return nil, fmt.Errorf("x column %q not found", s.X)
	}

	var yCol table.Column
	if s.Y != "" {
		yCol, ok = t.Column(s.Y)
		if !ok {
			return nil, fmt.Errorf("y column %q not found", s.Y)
		}
	}

	artifact := &chart.Artifact{
		Suggestion: s,
		Title:      s.Title(),
	}

	switch s.Kind {
	case chart.KindLine:
		if s.Y == "" {
			return nil, fmt.Errorf("line chart requires a y column")
		}
		artifact.Points = extractPoints(xCol, yCol)
	case chart.KindBar:
		labels, values := aggregate(xCol, yCol, s.Y != "")
		artifact.Labels, artifact.Values = labels, values
	case chart.KindPie:
		labels, values := aggregate(xCol, yCol, s.Y != "")
		sortByValue(labels, values)
		artifact.Labels, artifact.Values = labels, values
	default:
		return nil, fmt.Errorf("unsupported chart kind %q", s.Kind)
	}

	return artifact, nil
}

// extractPoints pairs datetime x cells with numeric y cells, sorted
// ascending by time
func extractPoints(xCol, yCol table.Column) []chart.Point {
	points := make([]chart.Point, 0, len(xCol.Values))
	for i := range xCol.Values {
		x, okX := xCol.Values[i].Time()
		y, okY := yCol.Values[i].Number()
		if okX && okY {
			points = append(points, chart.Point{X: x, Y: y})
		}
	}
	sort.Slice(points, func(i, j int) bool { return points[i].X.Before(points[j].X) })
	return points
}

// aggregate groups rows by the x label. With a y column the values are
// per-label sums; without one they are label frequencies. Labels keep
// first-appearance order.
func aggregate(xCol, yCol table.Column, hasY bool) ([]string, []float64) {
	sums := make(map[string]float64)
	var labels []string

	for i := range xCol.Values {
		if xCol.Values[i].IsNull {
			continue
		}
		label := xCol.Values[i].String()

		delta := 1.0
		if hasY {
			n, ok := yCol.Values[i].Number()
			if !ok {
				continue
			}
			delta = n
		}

		if _, seen := sums[label]; !seen {
			labels = append(labels, label)
		}
		sums[label] += delta
	}

	values := make([]float64, len(labels))
	for i, label := range labels {
		values[i] = sums[label]
	}
	return labels, values
}

// sortByValue orders labels and values together, descending by value
func sortByValue(labels []string, values []float64) {
	idx := make([]int, len(labels))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return values[idx[i]] > values[idx[j]] })

	sortedLabels := make([]string, len(labels))
	sortedValues := make([]float64, len(values))
	for i, j := range idx {
		sortedLabels[i] = labels[j]
		sortedValues[i] = values[j]
	}
	copy(labels, sortedLabels)
	copy(values, sortedValues)
}
