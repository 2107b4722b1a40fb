package ports

import (
	"context"

	"autoviz/domain/report"
)

// ReportBuilder composes the report sections into a single exportable
// PDF document and returns its bytes.
type ReportBuilder interface {
	Build(ctx context.Context, r *report.Report) ([]byte, error)
}
