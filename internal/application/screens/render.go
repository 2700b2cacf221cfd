package screens

import (
	"strings"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

// mdRenderer is a goldmark instance configured for safe HTML output.
// Hard wraps keep the line breaks authors type into descriptions.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// RenderDescricaoHTML converts an evento description from markdown to HTML
// for the host's detail view. On conversion failure the raw text comes back
// so the description is never lost.
func RenderDescricaoHTML(descricao string) string {
	var buf strings.Builder
	if err := mdRenderer.Convert([]byte(descricao), &buf); err != nil {
		return descricao
	}
	return buf.String()
}
