package ui

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"autoviz/app"
	"autoviz/domain/chart"
	"autoviz/internal/errors"
	"autoviz/internal/render"

	"github.com/gin-gonic/gin"
)

// pageData is the index template payload
type pageData struct {
	Dataset   *app.Dataset
	Themes    []string
	AIEnabled bool
	Error     string
}

func (s *Server) handleIndex(c *gin.Context) {
	s.renderIndex(c, "")
}

func (s *Server) renderIndex(c *gin.Context, errMsg string) {
	c.HTML(http.StatusOK, "index.html", pageData{
		Dataset:   s.currentDataset(),
		Themes:    render.ThemeNames(),
		AIEnabled: s.cfg.AI.Enabled(),
		Error:     errMsg,
	})
}

func (s *Server) handleUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		s.renderIndex(c, "No file selected")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		s.renderIndex(c, fmt.Sprintf("Failed to read upload: %v", err))
		return
	}
	defer f.Close()

	log.Printf("[Server] Upload received: %s (%d bytes)", fileHeader.Filename, fileHeader.Size)
	ds, err := s.analysis.LoadReader(f, fileHeader.Filename)
	if err != nil {
		s.renderIndex(c, loadErrorMessage(err))
		return
	}

	s.setDataset(ds)
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleSheets(c *gin.Context) {
	url := c.PostForm("url")
	if url == "" {
		s.renderIndex(c, "No sheet URL provided")
		return
	}

	ds, err := s.analysis.LoadSheet(c.Request.Context(), url)
	if err != nil {
		s.renderIndex(c, loadErrorMessage(err))
		return
	}

	s.setDataset(ds)
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleProfiles(c *gin.Context) {
	ds := s.currentDataset()
	if ds == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no dataset loaded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"dataset_id": ds.ID,
		"source":     ds.Table.SourceName,
		"rows":       ds.Table.NumRows(),
		"profiles":   ds.Profiles,
	})
}

func (s *Server) handleChartOption(c *gin.Context) {
	ds := s.currentDataset()
	if ds == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no dataset loaded"})
		return
	}

	idx, err := strconv.Atoi(c.Param("idx"))
	if err != nil || idx < 0 || idx >= len(ds.Suggestions) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chart index"})
		return
	}

	renderer := render.NewRenderer()
	artifact, err := renderer.Render(ds.Table, ds.Suggestions[idx])
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	theme := render.ThemeOrDefault(c.Query("theme"))
	c.JSON(http.StatusOK, gin.H{
		"suggestion": ds.Suggestions[idx],
		"option":     render.EChartsOption(artifact, theme),
	})
}

func (s *Server) handleInsights(c *gin.Context) {
	ds := s.currentDataset()
	if ds == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no dataset loaded"})
		return
	}

	text, err := s.export.InsightText(c.Request.Context(), ds, ds.Suggestions, c.PostForm("language"))
	if err != nil {
		// Insight failures degrade, they never surface as HTTP errors
		log.Printf("[Server] Insight generation degraded: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"text": text,
		"html": markdownToHTML(text),
	})
}

func (s *Server) handleReport(c *gin.Context) {
	ds := s.currentDataset()
	if ds == nil {
		s.renderIndex(c, "Load a dataset before exporting a report")
		return
	}

	req := app.ExportRequest{
		Title:    c.DefaultPostForm("title", s.cfg.Report.DefaultTitle),
		Author:   c.DefaultPostForm("author", s.cfg.Report.DefaultAuthor),
		Theme:    c.PostForm("theme"),
		Language: c.PostForm("language"),
		Insights: c.PostForm("insights") == "on",
		Charts:   s.selectedCharts(c, ds),
	}

	pdfBytes, err := s.export.Export(c.Request.Context(), ds, req)
	if err != nil {
		s.renderIndex(c, fmt.Sprintf("Report export failed: %v", err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="autoviz_report.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// selectedCharts resolves the chart checkboxes; with none checked the
// full suggestion list is exported
func (s *Server) selectedCharts(c *gin.Context, ds *app.Dataset) []chart.Suggestion {
	picked := c.PostFormArray("charts")
	if len(picked) == 0 {
		return ds.Suggestions
	}

	var charts []chart.Suggestion
	for _, raw := range picked {
		idx, err := strconv.Atoi(raw)
		if err == nil && idx >= 0 && idx < len(ds.Suggestions) {
			charts = append(charts, ds.Suggestions[idx])
		}
	}
	if len(charts) == 0 {
		return ds.Suggestions
	}
	return charts
}

// loadErrorMessage maps loader error codes to user-facing messages
func loadErrorMessage(err error) string {
	switch errors.GetCode(err) {
	case errors.CodeUnsupportedFormat:
		return "Unsupported file type. Use .csv or .xlsx"
	case errors.CodeNetworkError:
		return fmt.Sprintf("Failed to load Google Sheets: %v", err)
	case errors.CodeLoadError:
		return fmt.Sprintf("Failed to parse the dataset: %v", err)
	default:
		return fmt.Sprintf("Failed to load data: %v", err)
	}
}
