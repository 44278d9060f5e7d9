package exposure

import (
	"github.com/etnz/exposure/date"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentationName = "github.com/etnz/exposure"

// Option configures Load and NewDashboard.
type Option func(*options)

type options struct {
	log    *zap.Logger
	tracer trace.Tracer
	period date.Period
	sheet  string
}

func newOptions(opts []Option) options {
	o := options{
		log:    zap.NewNop(),
		tracer: otel.Tracer(instrumentationName),
		period: date.Weekly,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger, a no-op logger by default.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithTracer sets the tracer, the global provider's by default.
func WithTracer(t trace.Tracer) Option {
	return func(o *options) {
		if t != nil {
			o.tracer = t
		}
	}
}

// WithTimelinePeriod sets the bucket size of the maturity timeline. Weekly by default.
func WithTimelinePeriod(p date.Period) Option {
	return func(o *options) { o.period = p }
}

// WithSheet selects the spreadsheet sheet to read, the first one by default.
func WithSheet(name string) Option {
	return func(o *options) { o.sheet = name }
}
