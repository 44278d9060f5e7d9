package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/exposure"
	"github.com/etnz/exposure/date"
	"github.com/etnz/exposure/renderer"
	"github.com/google/subcommands"
)

type maturitiesCmd struct {
	filterFlags
}

func (*maturitiesCmd) Name() string     { return "maturities" }
func (*maturitiesCmd) Synopsis() string { return "list the products maturing in the window" }
func (*maturitiesCmd) Usage() string {
	return `expo maturities [-from <date>] [-to <date>] [-products <list>]

  Lists the products maturing in the window, checking the ones selected with
  -products.
`
}

func (c *maturitiesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := newSession()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.close()

	sel, err := c.query(s.cfg).Parse(date.Today())
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing the selection: %v\n", err)
		return subcommands.ExitUsageError
	}
	if !sel.Window.IsValid() {
		fmt.Fprintf(stderr, "Error: %v: %s\n", exposure.ErrInvalidWindow, sel.Window)
		return subcommands.ExitUsageError
	}
	d, err := s.open(c.period)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading exposures: %v\n", err)
		return subcommands.ExitFailure
	}

	maturing := d.Maturities(sel.Window)
	printMarkdown(renderer.MaturitiesMarkdown(sel.Window, maturing, sel.Products.Resolve(maturing)))
	if len(maturing) == 0 {
		empty := &exposure.EmptySelectionError{What: "maturities"}
		fmt.Fprintf(stderr, "Warning: %s\n", empty.Prompt())
	}
	return subcommands.ExitSuccess
}
