package chart

import "time"

// Point is one x/y pair of a time-series line
type Point struct {
	X time.Time `json:"x"`
	Y float64   `json:"y"`
}

// Artifact is a render-ready chart: the suggestion it came from plus the
// series extracted from the Table. Null cells are dropped during
// extraction, so consumers never see gaps.
type Artifact struct {
	Suggestion Suggestion `json:"suggestion"`
	Title      string     `json:"title"`

	// Points carries line-chart series, sorted ascending by X
	Points []Point `json:"points,omitempty"`

	// Labels/Values carry bar and pie series; Values are sums per label
	// for bar charts with a Y column and frequencies otherwise
	Labels []string  `json:"labels,omitempty"`
	Values []float64 `json:"values,omitempty"`
}
