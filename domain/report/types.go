package report

import (
	"autoviz/domain/chart"
	"autoviz/domain/core"
)

// SectionKind distinguishes the two section payloads
type SectionKind string

const (
	SectionChart SectionKind = "chart"
	SectionText  SectionKind = "text"
)

// Section is one ordered element of a report: a rendered chart or a
// block of text
type Section struct {
	Kind  SectionKind     `json:"kind"`
	Chart *chart.Artifact `json:"chart,omitempty"`
	Text  string          `json:"text,omitempty"`
}

// NewChartSection wraps a chart artifact as a section
func NewChartSection(a *chart.Artifact) Section {
	return Section{Kind: SectionChart, Chart: a}
}

// NewTextSection wraps a text block as a section
func NewTextSection(text string) Section {
	return Section{Kind: SectionText, Text: text}
}

// Report is the final exportable document, assembled in caller-specified
// section order. The builder owns it only for the duration of export.
type Report struct {
	ID       core.ReportID  `json:"id"`
	Title    string         `json:"title"`
	Author   string         `json:"author"`
	Source   string         `json:"source"`
	Rows     int            `json:"rows"`
	Cols     int            `json:"cols"`
	Created  core.Timestamp `json:"created"`
	Sections []Section      `json:"sections"`
}
