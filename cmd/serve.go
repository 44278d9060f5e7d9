package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/etnz/exposure/server"
	"github.com/google/subcommands"
)

type serveCmd struct {
	addr   string
	period string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the interactive dashboard over HTTP" }
func (*serveCmd) Usage() string {
	return `expo serve [-addr :8080]

  Loads the exposure file once and serves the dashboard, its charts and a JSON
  API until interrupted. See the 'server' topic for the routes.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", "", "Address to listen on. Defaults to the config file entry.")
	f.StringVar(&c.period, "period", "", "Timeline period (daily, weekly, monthly, quarterly). Overrides the config file.")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := newSession()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.close()

	d, err := s.open(c.period)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading exposures: %v\n", err)
		return subcommands.ExitFailure
	}
	addr := c.addr
	if addr == "" {
		addr = s.cfg.Server.Addr
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(stderr, "Serving %s on %s\n", s.cfg.File, addr)
	if err := server.New(d, s.cfg, s.log).Run(ctx, addr); err != nil {
		fmt.Fprintf(stderr, "Error serving: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
