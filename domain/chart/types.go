package chart

import "fmt"

// Kind identifies a supported chart type
type Kind string

const (
	KindLine Kind = "line"
	KindBar  Kind = "bar"
	KindPie  Kind = "pie"
)

// Suggestion is a recommended chart type with its column mapping. The
// ranked suggestion list is advisory; the user may override it.
type Suggestion struct {
	Kind Kind `json:"kind"`
	// X is the x-axis column (datetime for line, categorical for bar/pie)
	X string `json:"x"`
	// Y is the value column; empty for frequency-based pie charts
	Y string `json:"y,omitempty"`
	// Rationale explains which heuristic produced the suggestion
	Rationale string `json:"rationale"`
}

// Title derives a display title from the column mapping
func (s Suggestion) Title() string {
	switch {
	case s.Kind == KindLine:
		return fmt.Sprintf("%s over %s", s.Y, s.X)
	case s.Y != "":
		return fmt.Sprintf("%s by %s", s.Y, s.X)
	default:
		return fmt.Sprintf("Share of %s", s.X)
	}
}
