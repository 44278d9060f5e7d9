package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/etnz/exposure/chart"
	"github.com/etnz/exposure/renderer"
	"github.com/google/subcommands"
)

type heatmapCmd struct {
	filterFlags
	kind string
	png  string
}

func (*heatmapCmd) Name() string     { return "heatmap" }
func (*heatmapCmd) Synopsis() string { return "display the exposure heatmap, stocks by clients" }
func (*heatmapCmd) Usage() string {
	return `expo heatmap [-kind current|future] [-png <file>] [filters]

  Displays the current or future exposure of every selected client to every
  stock.
`
}

func (c *heatmapCmd) SetFlags(f *flag.FlagSet) {
	c.filterFlags.SetFlags(f)
	f.StringVar(&c.kind, "kind", "current", "Exposure to display: current or future.")
	f.StringVar(&c.png, "png", "", "Also draw the heatmap as a PNG image to this file.")
}

func (c *heatmapCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var title string
	switch c.kind {
	case "current":
		title = "Current Exposure"
	case "future":
		title = "Future Exposure"
	default:
		fmt.Fprintf(stderr, "Error: unknown heatmap kind %q, want current or future\n", c.kind)
		return subcommands.ExitUsageError
	}

	r, s, status := c.report(ctx)
	if r == nil {
		return status
	}
	defer s.close()

	h := r.Current
	if c.kind == "future" {
		h = r.Future
	}
	printMarkdown(renderer.HeatmapMarkdown(title, h))
	return writePNG(c.png, func(w io.Writer) error { return chart.Heatmap(w, title, h) })
}

// writePNG draws a chart to path, if any.
func writePNG(path string, draw func(io.Writer) error) subcommands.ExitStatus {
	if path == "" {
		return subcommands.ExitSuccess
	}
	if err := writeFile(path, draw); err != nil {
		fmt.Fprintf(stderr, "Error drawing chart: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stderr, "Successfully drew chart to %s\n", path)
	return subcommands.ExitSuccess
}
