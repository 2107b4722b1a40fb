package ai

import (
	"fmt"
	"strings"

	"autoviz/domain/chart"
	"autoviz/domain/profile"
)

// BuildPrompt compiles a compact profile digest for the LLM. Only
// derived statistics cross the boundary; raw cell data never does.
func BuildPrompt(profiles []profile.ColumnProfile, chosen []chart.Suggestion, language string) string {
	if language == "" {
		language = "English"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a data analyst. Write a short bullet list of insights in %s. ", language)
	b.WriteString("Be precise with numbers and trends. No fluff. ")
	b.WriteString("If time-series data is present, mention peaks and trends.\n\n")

	b.WriteString("Column profiles:\n")
	for _, p := range profiles {
		fmt.Fprintf(&b, "- %s (%s): %d rows, %d nulls, %d distinct",
			p.Name, p.Type, p.RowCount, p.NullCount, p.DistinctCount)
		if p.IsNumeric() {
			fmt.Fprintf(&b, ", min=%.4g, max=%.4g, mean=%.4g, stddev=%.4g",
				p.Numeric.Min, p.Numeric.Max, p.Numeric.Mean, p.Numeric.StdDev)
		}
		if len(p.TopValues) > 0 {
			tops := make([]string, 0, len(p.TopValues))
			for _, tv := range p.TopValues {
				tops = append(tops, fmt.Sprintf("%s(%d)", tv.Value, tv.Count))
			}
			fmt.Fprintf(&b, ", top: %s", strings.Join(tops, " "))
		}
		b.WriteString("\n")
	}

	if len(chosen) > 0 {
		b.WriteString("\nCharts included in the report:\n")
		limit := len(chosen)
		if limit > 5 {
			limit = 5
		}
		for _, s := range chosen[:limit] {
			if s.Y != "" {
				fmt.Fprintf(&b, "- %s of %s by %s\n", s.Kind, s.Y, s.X)
			} else {
				fmt.Fprintf(&b, "- %s of %s\n", s.Kind, s.X)
			}
		}
	}

	return b.String()
}
