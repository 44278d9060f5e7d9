package renderer

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/etnz/exposure"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	md   = goldmark.New(goldmark.WithExtensions(extension.GFM))
	page = template.Must(template.ParseFS(templates, "page.html"))
)

// HTML converts markdown to a standalone HTML page titled title.
func HTML(title, markdown string) (string, error) {
	var body bytes.Buffer
	if err := md.Convert([]byte(markdown), &body); err != nil {
		return "", fmt.Errorf("cannot convert markdown to HTML: %w", err)
	}
	var b bytes.Buffer
	err := page.Execute(&b, struct {
		Title string
		Body  template.HTML
	}{title, template.HTML(body.String())})
	if err != nil {
		return "", fmt.Errorf("cannot render HTML page: %w", err)
	}
	return b.String(), nil
}

// DashboardHTML renders the whole report as an HTML page.
func DashboardHTML(r *exposure.Report, opts Options) (string, error) {
	return HTML(opts.adviser(), DashboardMarkdown(r, opts))
}
