package app

import (
	"context"
	"io"
	"log"

	"autoviz/domain/chart"
	"autoviz/domain/core"
	"autoviz/domain/profile"
	"autoviz/domain/table"
	"autoviz/internal/suggest"
	"autoviz/ports"
)

// Dataset is the analyzed state of one loaded table: the immutable Table
// plus everything derived from it. A new upload replaces the whole
// Dataset; profiles are never patched in place.
type Dataset struct {
	ID          core.DatasetID
	Table       *table.Table
	Profiles    []profile.ColumnProfile
	Suggestions []chart.Suggestion
	LoadedAt    core.Timestamp
}

// AnalysisService runs the load -> profile -> suggest pipeline
type AnalysisService struct {
	loader    ports.TableLoader
	profiler  ports.SchemaProfiler
	suggester ports.ChartSuggester
}

// NewAnalysisService wires the pipeline stages
func NewAnalysisService(loader ports.TableLoader, profiler ports.SchemaProfiler, suggester ports.ChartSuggester) *AnalysisService {
	return &AnalysisService{
		loader:    loader,
		profiler:  profiler,
		suggester: suggester,
	}
}

// LoadFile analyzes a file from disk
func (s *AnalysisService) LoadFile(path string) (*Dataset, error) {
	t, err := s.loader.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return s.analyze(t)
}

// LoadReader analyzes an uploaded byte stream
func (s *AnalysisService) LoadReader(r io.Reader, filename string) (*Dataset, error) {
	t, err := s.loader.Read(r, filename)
	if err != nil {
		return nil, err
	}
	return s.analyze(t)
}

// LoadSheet analyzes a remote Google Sheets CSV export
func (s *AnalysisService) LoadSheet(ctx context.Context, url string) (*Dataset, error) {
	t, err := s.loader.FetchSheet(ctx, url)
	if err != nil {
		return nil, err
	}
	return s.analyze(t)
}

// analyze profiles the table and ranks chart suggestions. When no
// heuristic matches, the generic fallback chart is substituted so the
// UI always has something to show.
func (s *AnalysisService) analyze(t *table.Table) (*Dataset, error) {
	profiles, err := s.profiler.Profile(t)
	if err != nil {
		return nil, err
	}

	suggestions := s.suggester.Suggest(profiles)
	if len(suggestions) == 0 {
		if fb, ok := suggest.Fallback(profiles); ok {
			suggestions = []chart.Suggestion{fb}
		}
	}

	ds := &Dataset{
		ID:          core.NewDatasetID(),
		Table:       t,
		Profiles:    profiles,
		Suggestions: suggestions,
		LoadedAt:    core.Now(),
	}

	log.Printf("[AnalysisService] Dataset %s analyzed: %d columns, %d rows, %d suggestions",
		ds.ID, t.NumCols(), t.NumRows(), len(suggestions))
	return ds, nil
}
