package main

import (
	"log"

	"autoviz/adapters/llm"
	"autoviz/adapters/tabular"
	"autoviz/ai"
	"autoviz/app"
	"autoviz/internal/config"
	"autoviz/internal/profiling"
	"autoviz/internal/render"
	"autoviz/internal/suggest"
	"autoviz/ui"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; missing file is fine
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg := config.Load()
	if cfg.AI.Enabled() {
		log.Printf("AI insights enabled (model %s)", cfg.AI.Model)
	} else {
		log.Println("No OPENAI_API_KEY configured; insight text falls back to basic statistics")
	}

	loader := tabular.NewLoader(cfg.Loader.FetchTimeout)
	profiler := profiling.NewProfiler(cfg.Profiler)
	suggester := suggest.NewSuggester(suggest.Config{})
	renderer := render.NewRenderer()
	insights := ai.NewInsightGenerator(llm.NewOpenAIClient(cfg.AI), cfg.AI)

	analysis := app.NewAnalysisService(loader, profiler, suggester)
	export := app.NewExportService(renderer, insights)

	server, err := ui.NewServer(cfg, analysis, export)
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	if err := server.Run(); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
