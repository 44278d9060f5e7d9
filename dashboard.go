package exposure

import (
	"context"
	"errors"

	"github.com/etnz/exposure/date"
	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Dashboard answers selections over a loaded dataset.
//
// The records are never modified, so a Dashboard can serve concurrent reports.
type Dashboard struct {
	records []Record
	clients []string
	stocks  []string
	opts    options
}

// NewDashboard returns a dashboard over records.
func NewDashboard(records []Record, opts ...Option) *Dashboard {
	return &Dashboard{
		records: records,
		clients: Clients(records),
		stocks:  Stocks(records),
		opts:    newOptions(opts),
	}
}

// Open loads path and returns a dashboard over its records.
func Open(path string, opts ...Option) (*Dashboard, error) {
	records, err := Load(path, opts...)
	if err != nil {
		return nil, err
	}
	return NewDashboard(records, opts...), nil
}

// Records returns the loaded records.
func (d *Dashboard) Records() []Record { return d.records }

// Clients returns every client, in order of first appearance.
func (d *Dashboard) Clients() []string { return d.clients }

// Stocks returns every stock, in order of first appearance.
func (d *Dashboard) Stocks() []string { return d.stocks }

// MaturityRange returns the earliest and latest maturities of the dataset.
func (d *Dashboard) MaturityRange() date.Range { return MaturityRange(d.records) }

// Maturities returns the products maturing in window.
func (d *Dashboard) Maturities(window date.Range) []string {
	return MaturingProducts(d.records, window)
}

// Report is everything derived from one selection.
type Report struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Window    date.Range     `json:"window"`
	Filtered  *Filtered      `json:"-"`
	Exposures []Exposure     `json:"exposures"`
	Current   *Heatmap       `json:"current"`
	Future    *Heatmap       `json:"future"`
	Timeline  *Timeline      `json:"timeline"`
	Scatter   []ScatterPoint `json:"scatter"`
}

// Report runs the whole pipeline for sel.
//
// A selection that resolves to nothing returns an EmptySelectionError and no
// report: no aggregation is attempted.
func (d *Dashboard) Report(ctx context.Context, sel Selection) (*Report, error) {
	id := ulid.Make().String()
	log := d.opts.log.With(zap.String("run", id))
	ctx, span := d.opts.tracer.Start(ctx, "exposure.Report", trace.WithAttributes(
		attribute.String("run.id", id),
		attribute.String("selection.clients", sel.Clients.String()),
		attribute.String("selection.stocks", sel.Stocks.String()),
		attribute.String("selection.window", sel.Window.String()),
		attribute.String("selection.products", sel.Products.String()),
	))
	defer span.End()

	var f *Filtered
	err := d.stage(ctx, "filter", func() (err error) {
		f, err = Filter(d.records, sel)
		return err
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if errors.Is(err, ErrEmptySelection) {
			log.Debug("selection halted", zap.Error(err))
		} else {
			log.Warn("invalid selection", zap.Error(err))
		}
		return nil, err
	}

	r := &Report{
		ID:       id,
		Title:    f.Title(),
		Window:   sel.Window,
		Filtered: f,
	}
	d.stage(ctx, "exposures", func() error {
		r.Exposures = Exposures(f)
		return nil
	})
	d.stage(ctx, "heatmaps", func() error {
		r.Current = NewHeatmap(r.Exposures, CurrentPercent)
		r.Future = NewHeatmap(r.Exposures, FuturePercent)
		return nil
	})
	d.stage(ctx, "timeline", func() error {
		r.Timeline = NewTimeline(d.records, f.Records, d.opts.period)
		return nil
	})
	d.stage(ctx, "scatter", func() error {
		r.Scatter = NewScatter(f, r.Exposures)
		return nil
	})

	span.SetAttributes(
		attribute.Int("records.filtered", len(f.Records)),
		attribute.Int("products.included", len(f.Included)),
	)
	log.Info("report computed",
		zap.Int("records", len(f.Records)),
		zap.Int("clients", len(f.Clients)),
		zap.Int("stocks", len(f.Stocks)),
		zap.Int("included", len(f.Included)),
		zap.Int("exposures", len(r.Exposures)),
	)
	return r, nil
}

// stage runs fn in a child span named after the stage.
func (d *Dashboard) stage(ctx context.Context, name string, fn func() error) error {
	_, span := d.opts.tracer.Start(ctx, "exposure."+name)
	defer span.End()
	if err := fn(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
