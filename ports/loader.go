package ports

import (
	"context"
	"io"

	"autoviz/domain/table"
)

// TableLoader parses raw input into an immutable Table. Failure modes are
// reported through the application error codes: LOAD_ERROR for malformed
// or empty input, UNSUPPORTED_FORMAT for unrecognized file types and
// NETWORK_ERROR for unreachable sheet URLs. No partial Table is ever
// returned.
type TableLoader interface {
	// ReadFile loads a CSV or XLSX file from disk
	ReadFile(path string) (*table.Table, error)

	// Read loads from a byte stream; filename decides the format
	Read(r io.Reader, filename string) (*table.Table, error)

	// FetchSheet loads a Google Sheets CSV export URL
	FetchSheet(ctx context.Context, url string) (*table.Table, error)
}
