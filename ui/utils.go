package ui

import (
	"html/template"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// markdownToHTML renders insight text (markdown-ish bullet lists from
// the LLM or the fallback) into sanitizable HTML for the insight panel
func markdownToHTML(text string) template.HTML {
	if text == "" {
		return ""
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.SkipHTML,
	})
	out := markdown.ToHTML([]byte(text), p, renderer)
	return template.HTML(out)
}
