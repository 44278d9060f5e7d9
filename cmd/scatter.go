package cmd

import (
	"context"
	"flag"
	"io"

	"github.com/etnz/exposure/chart"
	"github.com/etnz/exposure/renderer"
	"github.com/google/subcommands"
)

type scatterCmd struct {
	filterFlags
	png string
}

func (*scatterCmd) Name() string     { return "scatter" }
func (*scatterCmd) Synopsis() string { return "display every client, stock and maturity date" }
func (*scatterCmd) Usage() string {
	return `expo scatter [-png <file>] [filters]

  Displays a point for every selected client, stock and maturity date, with
  the amount maturing and the exposure percentages.
`
}

func (c *scatterCmd) SetFlags(f *flag.FlagSet) {
	c.filterFlags.SetFlags(f)
	f.StringVar(&c.png, "png", "", "Also draw the scatter as a PNG image to this file.")
}

func (c *scatterCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, s, status := c.report(ctx)
	if r == nil {
		return status
	}
	defer s.close()

	printMarkdown(renderer.ScatterMarkdown(r.Scatter, renderer.Options{Currency: s.cfg.Currency}))
	return writePNG(c.png, func(w io.Writer) error { return chart.Scatter(w, r.Scatter) })
}
