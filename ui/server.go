package ui

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"sync"

	"autoviz/app"
	"autoviz/internal/config"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

// Server is the web application shell. It wires user interaction to the
// analysis pipeline and owns no business logic. One dataset is held in
// memory at a time; a new upload replaces it.
type Server struct {
	router   *gin.Engine
	analysis *app.AnalysisService
	export   *app.ExportService
	cfg      *config.Config

	datasetMutex sync.RWMutex
	dataset      *app.Dataset
}

// NewServer creates the server and registers routes
func NewServer(cfg *config.Config, analysis *app.AnalysisService, export *app.ExportService) (*Server, error) {
	gin.SetMode(cfg.Server.GinMode)

	s := &Server{
		router:   gin.Default(),
		analysis: analysis,
		export:   export,
		cfg:      cfg,
	}

	tmpl, err := template.New("").Funcs(template.FuncMap{
		"pct": func(v float64) string { return fmt.Sprintf("%.1f%%", v*100) },
	}).ParseFS(embeddedTemplates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	s.router.SetHTMLTemplate(tmpl)

	maxBytes := int64(cfg.Loader.MaxUploadMB) << 20
	s.router.MaxMultipartMemory = maxBytes

	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.POST("/upload", s.handleUpload)
	s.router.POST("/sheets", s.handleSheets)

	api := s.router.Group("/api")
	{
		api.GET("/profiles", s.handleProfiles)
		api.GET("/charts/:idx", s.handleChartOption)
		api.POST("/insights", s.handleInsights)
	}

	s.router.POST("/report", s.handleReport)
}

// Run starts the HTTP listener
func (s *Server) Run() error {
	addr := ":" + s.cfg.Server.Port
	log.Printf("[Server] Listening on %s", addr)
	return s.router.Run(addr)
}

// currentDataset returns the active dataset, if any
func (s *Server) currentDataset() *app.Dataset {
	s.datasetMutex.RLock()
	defer s.datasetMutex.RUnlock()
	return s.dataset
}

// setDataset replaces the active dataset; the previous one is discarded
func (s *Server) setDataset(ds *app.Dataset) {
	s.datasetMutex.Lock()
	defer s.datasetMutex.Unlock()
	s.dataset = ds
}
