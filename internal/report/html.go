package report

import (
	"bytes"
	"fmt"
	"html"

	"github.com/IvanShishkin/filehound/pkg/models"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const htmlHead = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
        body { font-family: sans-serif; margin: 2rem auto; max-width: 1100px; color: #222; }
        table { border-collapse: collapse; margin-bottom: 1.5rem; }
        th, td { border: 1px solid #ccc; padding: 4px 10px; text-align: left; }
        th { background: #f3f3f3; }
        td:nth-child(4) { text-align: right; }
        blockquote { border-left: 4px solid #d97706; margin: 0; padding-left: 1rem; color: #555; }
    </style>
</head>
<body>
`

const htmlFoot = `</body>
</html>
`

// renderHTML converts the Markdown report to a standalone HTML page
func (g *Generator) renderHTML(results *models.SearchResults) ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))

	var body bytes.Buffer
	if err := md.Convert(g.renderMarkdown(results), &body); err != nil {
		return nil, fmt.Errorf("failed to render markdown: %w", err)
	}

	var buf bytes.Buffer
	title := fmt.Sprintf("Filehound Search Report: %s", results.Query.Root)
	fmt.Fprintf(&buf, htmlHead, html.EscapeString(title))
	buf.Write(body.Bytes())
	buf.WriteString(htmlFoot)

	return buf.Bytes(), nil
}
