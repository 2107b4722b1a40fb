package ports

import (
	"autoviz/domain/chart"
	"autoviz/domain/profile"
)

// ChartSuggester maps column profiles to a ranked list of applicable
// chart suggestions, highest-confidence first. It is a pure function of
// its input: every suggestion references only columns present in the
// profiles, and an empty list means no heuristic matched.
type ChartSuggester interface {
	Suggest(profiles []profile.ColumnProfile) []chart.Suggestion
}
