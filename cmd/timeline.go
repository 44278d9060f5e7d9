package cmd

import (
	"context"
	"flag"
	"io"

	"github.com/etnz/exposure/chart"
	"github.com/etnz/exposure/renderer"
	"github.com/google/subcommands"
)

type timelineCmd struct {
	filterFlags
	png string
}

func (*timelineCmd) Name() string     { return "timeline" }
func (*timelineCmd) Synopsis() string { return "display the amounts maturing per stock and period" }
func (*timelineCmd) Usage() string {
	return `expo timeline [-period weekly] [-png <file>] [filters]

  Displays the selected amounts by stock and by period of maturity, from the
  first to the last selected maturity.
`
}

func (c *timelineCmd) SetFlags(f *flag.FlagSet) {
	c.filterFlags.SetFlags(f)
	f.StringVar(&c.png, "png", "", "Also draw the timeline as a PNG image to this file.")
}

func (c *timelineCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, s, status := c.report(ctx)
	if r == nil {
		return status
	}
	defer s.close()

	opts := renderer.Options{Currency: s.cfg.Currency}
	printMarkdown(renderer.TimelineMarkdown(r.Timeline, opts))
	return writePNG(c.png, func(w io.Writer) error { return chart.Timeline(w, r.Timeline, s.cfg.Currency) })
}
