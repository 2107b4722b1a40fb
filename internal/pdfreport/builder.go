// Package pdfreport assembles rendered charts and text blocks into a
// single downloadable PDF document. Charts are drawn with native PDF
// primitives, so the export has no dependency on the web UI's chart
// runtime.
package pdfreport

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"autoviz/domain/chart"
	"autoviz/domain/report"
	"autoviz/internal/errors"
	"autoviz/internal/render"

	"github.com/go-pdf/fpdf"
)

// Page geometry in millimeters (A4 portrait)
const (
	pageMargin  = 15.0
	plotWidth   = 180.0
	plotHeight  = 90.0
	axisPadding = 12.0
)

// Builder renders a Report into PDF bytes. Implements
// ports.ReportBuilder.
type Builder struct {
	theme render.Theme
}

// NewBuilder creates a builder styled with the given theme
func NewBuilder(theme render.Theme) *Builder {
	return &Builder{theme: theme}
}

// Build composes the report sections, in caller-specified order, into
// one PDF document
func (b *Builder) Build(ctx context.Context, r *report.Report) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Printf("[ReportBuilder] Building PDF report %q (%d sections)", r.Title, len(r.Sections))

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)

	b.titlePage(pdf, r)

	for _, section := range r.Sections {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		switch section.Kind {
		case report.SectionChart:
			if section.Chart != nil {
				b.chartPage(pdf, section.Chart)
			}
		case report.SectionText:
			b.textSection(pdf, section.Text)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to write PDF output")
	}
	return buf.Bytes(), nil
}

func (b *Builder) titlePage(pdf *fpdf.Fpdf, r *report.Report) {
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.MultiCell(0, 10, r.Title, "", "C", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, r.Author, "", "C", false)
	pdf.MultiCell(0, 6, r.Created.Time().Format("2006-01-02 15:04"), "", "C", false)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, fmt.Sprintf("Source: %s", r.Source), "", "C", false)
	pdf.MultiCell(0, 5, fmt.Sprintf("%d rows x %d columns", r.Rows, r.Cols), "", "C", false)
}

func (b *Builder) textSection(pdf *fpdf.Fpdf, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Insights", "", 1, "L", false, 0, "")
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, text, "", "L", false)
}

func (b *Builder) chartPage(pdf *fpdf.Fpdf, a *chart.Artifact) {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, a.Title, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	switch a.Suggestion.Kind {
	case chart.KindLine:
		b.drawLine(pdf, a)
	case chart.KindBar:
		b.drawBar(pdf, a)
	case chart.KindPie:
		b.drawPie(pdf, a)
	}
}

// drawLine plots the time series as a polyline in a framed plot area
// with min/max axis annotations
func (b *Builder) drawLine(pdf *fpdf.Fpdf, a *chart.Artifact) {
	if len(a.Points) < 2 {
		b.emptyNote(pdf)
		return
	}

	x0 := pageMargin + axisPadding
	y0 := pdf.GetY()
	w := plotWidth - axisPadding
	h := plotHeight

	minY, maxY := a.Points[0].Y, a.Points[0].Y
	for _, p := range a.Points {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	spanY := maxY - minY
	if spanY == 0 {
		spanY = 1
	}
	minX := a.Points[0].X
	spanX := a.Points[len(a.Points)-1].X.Sub(minX)
	if spanX == 0 {
		spanX = time.Second
	}

	b.plotFrame(pdf, x0, y0, w, h)

	primary := b.theme.Palette[0]
	red, green, blue := hexToRGB(primary)
	pdf.SetDrawColor(red, green, blue)
	pdf.SetLineWidth(0.5)

	toCanvas := func(p chart.Point) (float64, float64) {
		fx := float64(p.X.Sub(minX)) / float64(spanX)
		fy := (p.Y - minY) / spanY
		return x0 + fx*w, y0 + h - fy*h
	}

	prevX, prevY := toCanvas(a.Points[0])
	for _, p := range a.Points[1:] {
		cx, cy := toCanvas(p)
		pdf.Line(prevX, prevY, cx, cy)
		prevX, prevY = cx, cy
	}

	// Axis annotations
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(80, 80, 80)
	pdf.Text(x0-axisPadding, y0+3, formatValue(maxY))
	pdf.Text(x0-axisPadding, y0+h, formatValue(minY))
	pdf.Text(x0, y0+h+4, minX.Format("2006-01-02"))
	endLabel := a.Points[len(a.Points)-1].X.Format("2006-01-02")
	pdf.Text(x0+w-pdf.GetStringWidth(endLabel), y0+h+4, endLabel)
	pdf.SetTextColor(0, 0, 0)
}

// drawBar draws vertical bars with category labels beneath and value
// labels above
func (b *Builder) drawBar(pdf *fpdf.Fpdf, a *chart.Artifact) {
	if len(a.Values) == 0 {
		b.emptyNote(pdf)
		return
	}

	x0 := pageMargin + axisPadding
	y0 := pdf.GetY()
	w := plotWidth - axisPadding
	h := plotHeight

	maxV := a.Values[0]
	minV := 0.0
	for _, v := range a.Values {
		if v > maxV {
			maxV = v
		}
		if v < minV {
			minV = v
		}
	}
	span := maxV - minV
	if span == 0 {
		span = 1
	}

	b.plotFrame(pdf, x0, y0, w, h)

	n := float64(len(a.Values))
	slot := w / n
	barW := slot * 0.7

	red, green, blue := hexToRGB(b.theme.Palette[0])
	pdf.SetFillColor(red, green, blue)
	pdf.SetFont("Helvetica", "", 7)

	baseline := y0 + h - ((0 - minV) / span * h)
	for i, v := range a.Values {
		bx := x0 + float64(i)*slot + (slot-barW)/2
		top := y0 + h - ((v - minV) / span * h)
		if v >= 0 {
			pdf.Rect(bx, top, barW, baseline-top, "F")
		} else {
			pdf.Rect(bx, baseline, barW, top-baseline, "F")
		}

		label := truncate(a.Labels[i], 12)
		pdf.SetTextColor(60, 60, 60)
		pdf.Text(bx+barW/2-pdf.GetStringWidth(label)/2, y0+h+4, label)
		valText := formatValue(v)
		pdf.Text(bx+barW/2-pdf.GetStringWidth(valText)/2, top-1, valText)
	}
	pdf.SetTextColor(0, 0, 0)
}

// drawPie draws sectors as filled polygons with a color legend
func (b *Builder) drawPie(pdf *fpdf.Fpdf, a *chart.Artifact) {
	if len(a.Values) == 0 {
		b.emptyNote(pdf)
		return
	}

	total := 0.0
	for _, v := range a.Values {
		if v > 0 {
			total += v
		}
	}
	if total == 0 {
		b.emptyNote(pdf)
		return
	}

	cx := pageMargin + 55.0
	cy := pdf.GetY() + plotHeight/2
	radius := 38.0

	angle := -90.0 // start at twelve o'clock
	for i, v := range a.Values {
		if v <= 0 {
			continue
		}
		sweep := v / total * 360.0
		red, green, blue := hexToRGB(b.theme.Palette[i%len(b.theme.Palette)])
		pdf.SetFillColor(red, green, blue)
		sectorPolygon(pdf, cx, cy, radius, angle, angle+sweep)
		angle += sweep
	}

	// Legend
	lx := cx + radius + 18
	ly := pdf.GetY() + 10
	pdf.SetFont("Helvetica", "", 8)
	for i, label := range a.Labels {
		red, green, blue := hexToRGB(b.theme.Palette[i%len(b.theme.Palette)])
		pdf.SetFillColor(red, green, blue)
		pdf.Rect(lx, ly, 4, 4, "F")
		share := a.Values[i] / total * 100
		pdf.Text(lx+6, ly+3.5, fmt.Sprintf("%s (%.1f%%)", truncate(label, 24), share))
		ly += 6
	}
	pdf.SetY(cy + plotHeight/2 + 6)
}

// sectorPolygon approximates a pie sector with a polygon fan
func sectorPolygon(pdf *fpdf.Fpdf, cx, cy, r, startDeg, endDeg float64) {
	steps := int((endDeg-startDeg)/3) + 2
	points := make([]fpdf.PointType, 0, steps+2)
	points = append(points, fpdf.PointType{X: cx, Y: cy})
	for i := 0; i <= steps; i++ {
		deg := startDeg + (endDeg-startDeg)*float64(i)/float64(steps)
		rad := deg * math.Pi / 180.0
		points = append(points, fpdf.PointType{
			X: cx + r*math.Cos(rad),
			Y: cy + r*math.Sin(rad),
		})
	}
	pdf.Polygon(points, "F")
}

func (b *Builder) plotFrame(pdf *fpdf.Fpdf, x, y, w, h float64) {
	red, green, blue := hexToRGB(b.theme.ColorBorder)
	pdf.SetDrawColor(red, green, blue)
	pdf.SetLineWidth(0.2)
	pdf.Rect(x, y, w, h, "D")
}

func (b *Builder) emptyNote(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 8, "Not enough data to draw this chart.", "", 1, "C", false, 0, "")
}

func formatValue(v float64) string {
	switch {
	case v != 0 && (v >= 100000 || v <= -100000):
		return fmt.Sprintf("%.3g", v)
	case v == float64(int64(v)):
		return fmt.Sprintf("%d", int64(v))
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

// hexToRGB converts "#rrggbb" to components; unparseable input maps to
// mid-gray
func hexToRGB(hex string) (int, int, int) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 128, 128, 128
	}
	var r, g, b int
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return 128, 128, 128
	}
	return r, g, b
}
