// Package cmd implements the CLI application of the exposure dashboard.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/exposure"
	"github.com/etnz/exposure/config"
	"github.com/etnz/exposure/date"
	"github.com/etnz/exposure/telemetry"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&exposureCmd{}, "reports")
	c.Register(&maturitiesCmd{}, "reports")
	c.Register(&heatmapCmd{}, "reports")
	c.Register(&timelineCmd{}, "reports")
	c.Register(&scatterCmd{}, "reports")
	c.Register(&dashboardCmd{}, "reports")

	c.Register(&serveCmd{}, "web")

	c.Register(&initCmd{}, "")
	c.Register(&topicCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataFile = flag.String("file", "", "Path to the exposure spreadsheet (.xlsx or .csv). Defaults to the config file entry.")
var configFile = flag.String("config", "expo.yaml", "Path to the optional YAML configuration file")
var logMode = flag.String("log", "", "Logging mode (dev, prod, off). Overrides the config file.")
var tracing = flag.Bool("trace", false, "Print OpenTelemetry spans on stderr")

// output streams, swapped by tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// session is the state shared by a command run: configuration, logger and tracer.
type session struct {
	cfg      *config.Config
	log      *zap.Logger
	shutdown func(context.Context) error
}

// newSession loads the configuration and applies the global flags on top of it.
func newSession() (*session, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	if *dataFile != "" {
		cfg.File = *dataFile
	}
	if *logMode != "" {
		cfg.Log.Mode = *logMode
	}
	if *tracing {
		cfg.Log.Tracing = true
	}

	s := &session{cfg: cfg}
	if s.log, err = telemetry.NewLogger(cfg.Log.Mode); err != nil {
		return nil, err
	}
	if cfg.Log.Tracing {
		if s.shutdown, err = telemetry.InitTracer(stderr); err != nil {
			return nil, fmt.Errorf("cannot start tracing: %w", err)
		}
	}
	return s, nil
}

// close flushes the logs and the spans.
func (s *session) close() {
	_ = s.log.Sync()
	if s.shutdown != nil {
		_ = s.shutdown(context.Background())
	}
}

// open loads the configured file. A non-empty period overrides the configured timeline period.
func (s *session) open(period string) (*exposure.Dashboard, error) {
	opts := append(s.cfg.Options(), exposure.WithLogger(s.log))
	if period != "" {
		p, err := date.ParsePeriod(period)
		if err != nil {
			return nil, err
		}
		opts = append(opts, exposure.WithTimelinePeriod(p))
	}
	return exposure.Open(s.cfg.File, opts...)
}

// printMarkdown renders md for the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

// filterFlags are the selection flags shared by the report commands.
type filterFlags struct {
	clients  string
	stocks   string
	products string
	from     string
	to       string
	today    string
	period   string
}

func (f *filterFlags) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&f.clients, "clients", "all", "Clients to report on: 'all', 'none' or a comma separated list.")
	fs.StringVar(&f.stocks, "stocks", "all", "Stocks to report on: 'all', 'none' or a comma separated list.")
	fs.StringVar(&f.products, "products", "all", "Products maturing in the window assumed to roll off: 'all', 'none' or a comma separated list.")
	fs.StringVar(&f.from, "from", "", "Start of the maturity window (defaults to today). See the 'dates' topic for supported formats.")
	fs.StringVar(&f.to, "to", "", "End of the maturity window (defaults to the configured window after -from).")
	fs.StringVar(&f.today, "today", "", "Reference day of relative dates (defaults to the current day).")
	fs.StringVar(&f.period, "period", "", "Timeline period (daily, weekly, monthly, quarterly). Overrides the config file.")
}

func (f *filterFlags) query(cfg *config.Config) exposure.SelectionQuery {
	return exposure.SelectionQuery{
		Clients:    f.clients,
		Stocks:     f.stocks,
		Products:   f.products,
		From:       f.from,
		To:         f.to,
		Today:      f.today,
		WindowDays: cfg.WindowDays,
	}
}

// run opens the dashboard and computes the report of the selection.
//
// On failure it prints the error and returns a nil report with the exit status.
func (f *filterFlags) run(ctx context.Context, s *session) (*exposure.Report, subcommands.ExitStatus) {
	sel, err := f.query(s.cfg).Parse(date.Today())
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing the selection: %v\n", err)
		return nil, subcommands.ExitUsageError
	}
	d, err := s.open(f.period)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading exposures: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	r, err := d.Report(ctx, sel)
	var empty *exposure.EmptySelectionError
	switch {
	case errors.As(err, &empty):
		fmt.Fprintf(stderr, "Warning: %s\n", empty.Prompt())
		return nil, subcommands.ExitUsageError
	case errors.Is(err, exposure.ErrInvalidWindow):
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return nil, subcommands.ExitUsageError
	case err != nil:
		fmt.Fprintf(stderr, "Error computing the report: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	return r, subcommands.ExitSuccess
}

// report is run within a session.
func (f *filterFlags) report(ctx context.Context) (*exposure.Report, *session, subcommands.ExitStatus) {
	s, err := newSession()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return nil, nil, subcommands.ExitFailure
	}
	r, status := f.run(ctx, s)
	if r == nil {
		s.close()
		return nil, nil, status
	}
	return r, s, status
}

// writeFile creates path and writes into it with write.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %q: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("cannot write %q: %w", path, err)
	}
	return f.Close()
}
