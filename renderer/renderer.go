// Package renderer formats exposure reports as markdown and HTML.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/Rhymond/go-money"
	"github.com/etnz/exposure"
	"github.com/etnz/exposure/date"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.md templates/*.html
var files embed.FS

var templates, _ = fs.Sub(files, "templates")

// DefaultAdviser is the dashboard heading when none is configured.
const DefaultAdviser = "Exposure Dashboard"

// Options configures the rendering.
type Options struct {
	Adviser  string // Heading of the dashboard.
	Currency string // ISO 4217 code of the amounts, "USD" when empty.
	// Charts maps a chart name ("current", "future", "timeline" or "scatter")
	// to the URL of its image. Charts without a URL are not linked.
	Charts map[string]string
}

func (o Options) currency() string {
	if o.Currency == "" {
		return "USD"
	}
	return o.Currency
}

func (o Options) adviser() string {
	if o.Adviser == "" {
		return DefaultAdviser
	}
	return o.Adviser
}

// FormatAmount formats d in the currency code, with its symbol and thousands
// separators.
func FormatAmount(d decimal.Decimal, currency string) string {
	// Currency() is never nil, unknown codes get a bare formatter.
	cur := money.New(0, currency).Currency()
	minor := d.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

type heatmapView struct {
	Title   string
	Heatmap *exposure.Heatmap
}

type timelineView struct {
	Timeline *exposure.Timeline
}

type maturitiesView struct {
	Window   date.Range
	Maturing []string
	Included map[string]bool
}

type dashboardView struct {
	Adviser    string
	Report     *exposure.Report
	Maturities maturitiesView
	Current    heatmapView
	Future     heatmapView
	Timeline   timelineView
}

func newMaturitiesView(window date.Range, maturing, included []string) maturitiesView {
	v := maturitiesView{Window: window, Maturing: maturing, Included: make(map[string]bool)}
	for _, p := range included {
		v.Included[p] = true
	}
	return v
}

// ExposureMarkdown renders the exposure table of a report.
func ExposureMarkdown(r *exposure.Report) string {
	return renderTemplate("exposure", "exposure.md", nil, Options{}, r)
}

// HeatmapMarkdown renders a heatmap as a stock by client table.
func HeatmapMarkdown(title string, h *exposure.Heatmap) string {
	return renderTemplate("heatmap", "heatmap.md", nil, Options{}, heatmapView{Title: title, Heatmap: h})
}

// TimelineMarkdown renders the maturity timeline as a stock by period table.
func TimelineMarkdown(t *exposure.Timeline, opts Options) string {
	return renderTemplate("timeline", "timeline.md", nil, opts, timelineView{Timeline: t})
}

// ScatterMarkdown renders the scatter points as a table.
func ScatterMarkdown(points []exposure.ScatterPoint, opts Options) string {
	return renderTemplate("scatter", "scatter.md", nil, opts, points)
}

// MaturitiesMarkdown renders the products maturing in window as a checklist,
// included products being checked.
func MaturitiesMarkdown(window date.Range, maturing, included []string) string {
	return renderTemplate("maturities", "maturities.md", nil, Options{}, newMaturitiesView(window, maturing, included))
}

// DashboardMarkdown renders the whole report under the adviser heading.
func DashboardMarkdown(r *exposure.Report, opts Options) string {
	partials := map[string]string{
		"exposure":   "exposure.md",
		"maturities": "maturities.md",
		"heatmap":    "heatmap.md",
		"timeline":   "timeline.md",
		"scatter":    "scatter.md",
	}
	v := dashboardView{
		Adviser:  opts.adviser(),
		Report:   r,
		Current:  heatmapView{Title: "Current Exposure", Heatmap: r.Current},
		Future:   heatmapView{Title: "Future Exposure", Heatmap: r.Future},
		Timeline: timelineView{Timeline: r.Timeline},
	}
	if f := r.Filtered; f != nil {
		v.Maturities = newMaturitiesView(r.Window, f.Maturing, f.Included)
	} else {
		v.Maturities = newMaturitiesView(r.Window, nil, nil)
	}
	return renderTemplate("dashboard", "dashboard.md", partials, opts, v)
}

func funcs(opts Options) template.FuncMap {
	return template.FuncMap{
		"amount": func(d decimal.Decimal) string { return FormatAmount(d, opts.currency()) },
		"chart":  func(name string) string { return opts.Charts[name] },
	}
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, opts Options, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs(opts)).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
