package ports

import (
	"autoviz/domain/chart"
	"autoviz/domain/table"
)

// ChartRenderer turns a suggestion plus the Table into a render-ready
// chart artifact. Rendering never mutates the Table.
type ChartRenderer interface {
	Render(t *table.Table, s chart.Suggestion) (*chart.Artifact, error)
}
