package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/etnz/exposure/renderer"
	"github.com/google/subcommands"
)

type dashboardCmd struct {
	filterFlags
	html string
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display every view of the selection at once" }
func (*dashboardCmd) Usage() string {
	return `expo dashboard [-html <file>] [filters]

  Displays the exposure table, both heatmaps, the timeline and the scatter of
  the selection. With -html, writes a standalone HTML page instead.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	c.filterFlags.SetFlags(f)
	f.StringVar(&c.html, "html", "", "Write the dashboard as an HTML page to this file.")
}

func (c *dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, s, status := c.report(ctx)
	if r == nil {
		return status
	}
	defer s.close()

	opts := renderer.Options{Adviser: s.cfg.Adviser, Currency: s.cfg.Currency}
	if c.html == "" {
		printMarkdown(renderer.DashboardMarkdown(r, opts))
		return subcommands.ExitSuccess
	}

	page, err := renderer.DashboardHTML(r, opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error rendering dashboard: %v\n", err)
		return subcommands.ExitFailure
	}
	err = writeFile(c.html, func(w io.Writer) error {
		_, err := io.WriteString(w, page)
		return err
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error writing dashboard: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stderr, "Successfully wrote dashboard to %s\n", c.html)
	return subcommands.ExitSuccess
}
