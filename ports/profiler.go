package ports

import (
	"autoviz/domain/profile"
	"autoviz/domain/table"
)

// SchemaProfiler derives one ColumnProfile per column, in column order.
// Profiling is deterministic: no I/O, no randomness. A table with zero
// rows yields profiles with nil statistics blocks rather than an error.
type SchemaProfiler interface {
	Profile(t *table.Table) ([]profile.ColumnProfile, error)
}
