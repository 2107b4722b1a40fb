package suggest

import (
	"fmt"

	"autoviz/domain/chart"
	"autoviz/domain/profile"
)

// Cardinality bounds for the categorical rules. A bar chart stays
// readable up to a dozen categories; a pie degrades faster.
const (
	barMinCategories = 2
	barMaxCategories = 12
	pieMinCategories = 2
	pieMaxCategories = 8
)

// Config enables or disables individual chart kinds. The heuristics
// themselves are a fixed ordered rule list, not a strategy system.
type Config struct {
	DisableLine bool
	DisableBar  bool
	DisablePie  bool
}

// Suggester maps column profiles to a ranked suggestion list.
// Implements ports.ChartSuggester as a pure function of its input.
type Suggester struct {
	cfg Config
}

// NewSuggester creates a suggester; the zero Config enables all kinds
func NewSuggester(cfg Config) *Suggester {
	return &Suggester{cfg: cfg}
}

// Suggest applies the fixed rule list, highest confidence first:
//
//  1. datetime + numeric     -> line per numeric column
//  2. small categorical + numeric -> bar per numeric column
//  3. small categorical, no bar produced -> pie (frequency-based)
//
// Numeric columns keep their original Table order throughout. An empty
// result means no rule matched; callers fall back to a generic default.
func (s *Suggester) Suggest(profiles []profile.ColumnProfile) []chart.Suggestion {
	var (
		datetimeCol *profile.ColumnProfile
		numericCols []profile.ColumnProfile
		barCatCol   *profile.ColumnProfile
		pieCatCol   *profile.ColumnProfile
	)

	for i := range profiles {
		p := profiles[i]
		switch p.Type {
		case profile.TypeDatetime:
			if datetimeCol == nil {
				datetimeCol = &profiles[i]
			}
		case profile.TypeNumeric:
			numericCols = append(numericCols, p)
		case profile.TypeCategorical:
			if barCatCol == nil && p.DistinctCount >= barMinCategories && p.DistinctCount <= barMaxCategories {
				barCatCol = &profiles[i]
			}
			if pieCatCol == nil && p.DistinctCount >= pieMinCategories && p.DistinctCount <= pieMaxCategories {
				pieCatCol = &profiles[i]
			}
		}
	}

	var suggestions []chart.Suggestion

	// Rule 1: time series lines, one per numeric column
	if !s.cfg.DisableLine && datetimeCol != nil {
		for _, num := range numericCols {
			suggestions = append(suggestions, chart.Suggestion{
				Kind:      chart.KindLine,
				X:         datetimeCol.Name,
				Y:         num.Name,
				Rationale: fmt.Sprintf("%s is a datetime column and %s is numeric: plot the trend over time", datetimeCol.Name, num.Name),
			})
		}
	}

	// Rule 2: category vs numeric bars, ordered by numeric column position
	barProduced := false
	if !s.cfg.DisableBar && barCatCol != nil {
		for _, num := range numericCols {
			suggestions = append(suggestions, chart.Suggestion{
				Kind:      chart.KindBar,
				X:         barCatCol.Name,
				Y:         num.Name,
				Rationale: fmt.Sprintf("%s has %d categories: compare %s across them", barCatCol.Name, barCatCol.DistinctCount, num.Name),
			})
			barProduced = true
		}
	}

	// Rule 3: category share pie, only when no numeric pairing was found
	if !s.cfg.DisablePie && pieCatCol != nil && !barProduced {
		suggestions = append(suggestions, chart.Suggestion{
			Kind:      chart.KindPie,
			X:         pieCatCol.Name,
			Rationale: fmt.Sprintf("%s has %d categories and no numeric pairing: show the value share", pieCatCol.Name, pieCatCol.DistinctCount),
		})
	}

	return suggestions
}

// Fallback returns the generic default used when no rule matched: a bar
// of the first two columns. Returns false when the profiles cannot
// support even that.
func Fallback(profiles []profile.ColumnProfile) (chart.Suggestion, bool) {
	if len(profiles) < 2 {
		return chart.Suggestion{}, false
	}
	return chart.Suggestion{
		Kind:      chart.KindBar,
		X:         profiles[0].Name,
		Y:         profiles[1].Name,
		Rationale: "no heuristic matched: generic bar of the first two columns",
	}, true
}
