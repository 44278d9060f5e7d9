package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/etnz/exposure"
	"github.com/etnz/exposure/renderer"
	"github.com/google/subcommands"
)

type exposureCmd struct {
	filterFlags
	output string
}

func (*exposureCmd) Name() string     { return "exposure" }
func (*exposureCmd) Synopsis() string { return "display current and future exposure per stock" }
func (*exposureCmd) Usage() string {
	return `expo exposure [-clients <list>] [-stocks <list>] [-from <date>] [-to <date>] [-products <list>] [-o <file.csv>]

  Displays the exposure table: for each stock, its share of the client's
  portfolio now and once the selected maturities have rolled off.
`
}

func (c *exposureCmd) SetFlags(f *flag.FlagSet) {
	c.filterFlags.SetFlags(f)
	f.StringVar(&c.output, "o", "", "Also write the table as CSV to this file.")
}

func (c *exposureCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, s, status := c.report(ctx)
	if r == nil {
		return status
	}
	defer s.close()

	printMarkdown(renderer.ExposureMarkdown(r))

	if c.output != "" {
		err := writeFile(c.output, func(w io.Writer) error { return exposure.EncodeCSV(w, r.Exposures) })
		if err != nil {
			fmt.Fprintf(stderr, "Error writing CSV: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(stderr, "Successfully wrote exposure table to %s\n", c.output)
	}
	return subcommands.ExitSuccess
}
