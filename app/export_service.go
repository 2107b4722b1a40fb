package app

import (
	"context"
	"log"
	"strings"

	"autoviz/domain/chart"
	"autoviz/domain/core"
	"autoviz/domain/report"
	"autoviz/internal/pdfreport"
	"autoviz/internal/render"
	"autoviz/ports"

	"golang.org/x/sync/errgroup"
)

// ExportRequest describes one PDF export: which charts to include, the
// title block and whether insight text should be generated
type ExportRequest struct {
	Title    string
	Author   string
	Theme    string
	Language string
	Insights bool
	Charts   []chart.Suggestion
}

// ExportService assembles and builds PDF reports. Chart rendering and
// the single insight call fan out concurrently; an insight failure only
// degrades the text, it never blocks the export.
type ExportService struct {
	renderer ports.ChartRenderer
	insights ports.InsightGenerator
}

// NewExportService wires the export pipeline
func NewExportService(renderer ports.ChartRenderer, insights ports.InsightGenerator) *ExportService {
	return &ExportService{renderer: renderer, insights: insights}
}

// InsightText generates standalone insight text for the current
// dataset, outside of a PDF export
func (s *ExportService) InsightText(ctx context.Context, ds *Dataset, charts []chart.Suggestion, language string) (string, error) {
	return s.insights.Generate(ctx, ds.Profiles, charts, language)
}

// Export renders the requested charts, generates insight text and
// returns the finished PDF bytes
func (s *ExportService) Export(ctx context.Context, ds *Dataset, req ExportRequest) ([]byte, error) {
	artifacts := make([]*chart.Artifact, len(req.Charts))
	var insightText string

	g, gctx := errgroup.WithContext(ctx)

	for i, suggestion := range req.Charts {
		g.Go(func() error {
			a, err := s.renderer.Render(ds.Table, suggestion)
			if err != nil {
				return err
			}
			artifacts[i] = a
			return nil
		})
	}

	if req.Insights {
		g.Go(func() error {
			text, err := s.insights.Generate(gctx, ds.Profiles, req.Charts, req.Language)
			if err != nil {
				// Generator degrades internally; a hard error here still
				// only costs the text block
				log.Printf("[ExportService] Insight generation failed: %v", err)
				return nil
			}
			insightText = text
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	rep := &report.Report{
		ID:      core.NewReportID(),
		Title:   req.Title,
		Author:  req.Author,
		Source:  ds.Table.SourceName,
		Rows:    ds.Table.NumRows(),
		Cols:    ds.Table.NumCols(),
		Created: core.Now(),
	}
	for _, a := range artifacts {
		rep.Sections = append(rep.Sections, report.NewChartSection(a))
	}
	if strings.TrimSpace(insightText) != "" {
		rep.Sections = append(rep.Sections, report.NewTextSection(insightText))
	}

	builder := pdfreport.NewBuilder(render.ThemeOrDefault(req.Theme))
	return builder.Build(ctx, rep)
}
