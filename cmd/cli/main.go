// Command cli runs the full pipeline once without the web UI: load a
// file or sheet URL, profile it, render every suggested chart and write
// a PDF report.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"autoviz/adapters/llm"
	"autoviz/adapters/tabular"
	"autoviz/ai"
	"autoviz/app"
	"autoviz/internal/config"
	"autoviz/internal/profiling"
	"autoviz/internal/render"
	"autoviz/internal/suggest"

	"github.com/joho/godotenv"
)

func main() {
	var (
		filePath = flag.String("file", "", "path to a .csv or .xlsx file")
		sheetURL = flag.String("url", "", "Google Sheets CSV export URL")
		outPath  = flag.String("out", "report.pdf", "output PDF path")
		title    = flag.String("title", "", "report title (defaults to configuration)")
		theme    = flag.String("theme", "Default", "chart theme: Default, Dark or Brand Blue")
		language = flag.String("lang", "English", "insight language")
		insights = flag.Bool("insights", true, "include insight text")
	)
	flag.Parse()

	if (*filePath == "") == (*sheetURL == "") {
		fmt.Fprintln(os.Stderr, "exactly one of -file or -url is required")
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg := config.Load()

	loader := tabular.NewLoader(cfg.Loader.FetchTimeout)
	analysis := app.NewAnalysisService(
		loader,
		profiling.NewProfiler(cfg.Profiler),
		suggest.NewSuggester(suggest.Config{}),
	)
	export := app.NewExportService(
		render.NewRenderer(),
		ai.NewInsightGenerator(llm.NewOpenAIClient(cfg.AI), cfg.AI),
	)

	ctx := context.Background()

	var (
		ds  *app.Dataset
		err error
	)
	if *filePath != "" {
		ds, err = analysis.LoadFile(*filePath)
	} else {
		ds, err = analysis.LoadSheet(ctx, *sheetURL)
	}
	if err != nil {
		log.Fatalf("Failed to load data: %v", err)
	}

	fmt.Printf("Loaded %s: %d rows x %d columns\n", ds.Table.SourceName, ds.Table.NumRows(), ds.Table.NumCols())
	for _, p := range ds.Profiles {
		fmt.Printf("  %-24s %-12s nulls=%d distinct=%d\n", p.Name, p.Type, p.NullCount, p.DistinctCount)
	}
	for _, s := range ds.Suggestions {
		fmt.Printf("  suggestion: %s (%s)\n", s.Title(), s.Kind)
	}

	reportTitle := *title
	if reportTitle == "" {
		reportTitle = cfg.Report.DefaultTitle
	}

	pdfBytes, err := export.Export(ctx, ds, app.ExportRequest{
		Title:    reportTitle,
		Author:   cfg.Report.DefaultAuthor,
		Theme:    *theme,
		Language: *language,
		Insights: *insights,
		Charts:   ds.Suggestions,
	})
	if err != nil {
		log.Fatalf("Report export failed: %v", err)
	}

	if err := os.WriteFile(*outPath, pdfBytes, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *outPath, err)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", *outPath, len(pdfBytes))
}
