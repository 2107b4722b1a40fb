package ports

import (
	"context"

	"autoviz/domain/chart"
	"autoviz/domain/profile"
)

// InsightGenerator produces short natural-language summaries of profiled
// data. It consumes column profiles and the chosen chart mappings, never
// raw rows. Without an API credential it returns deterministic fallback
// text instead of an error; a failed or timed-out call likewise degrades
// to the fallback so report export is never blocked.
type InsightGenerator interface {
	Generate(ctx context.Context, profiles []profile.ColumnProfile, chosen []chart.Suggestion, language string) (string, error)
}
