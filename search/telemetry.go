package search

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridpath/gridgraph"
)

const instrumentationName = "github.com/katalvlaran/gridpath/search"

// Metrics for search operations.
var (
	searchLatency metric.Float64Histogram
	searchTotal   metric.Int64Counter
	cellsExpanded metric.Int64Histogram
	pathCost      metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the instruments against the global MeterProvider.
// Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		meter := otel.Meter(instrumentationName)
		var err error

		searchLatency, err = meter.Float64Histogram(
			"gridpath_search_duration_seconds",
			metric.WithDescription("Duration of grid searches"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		searchTotal, err = meter.Int64Counter(
			"gridpath_search_total",
			metric.WithDescription("Total number of grid searches"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		cellsExpanded, err = meter.Int64Histogram(
			"gridpath_cells_expanded",
			metric.WithDescription("Cells popped from the frontier per search"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		pathCost, err = meter.Int64Histogram(
			"gridpath_path_cost",
			metric.WithDescription("Edge count of found paths"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// RecordMetrics records one finished search for engine.
func RecordMetrics(ctx context.Context, engine string, duration time.Duration, o Outcome) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("engine", engine),
		attribute.String("reason", o.Reason.String()),
	)

	searchLatency.Record(ctx, duration.Seconds(), attrs)
	searchTotal.Add(ctx, 1, attrs)
	cellsExpanded.Record(ctx, int64(o.Expanded), attrs)
	if o.Found {
		pathCost.Record(ctx, int64(o.Cost()), metric.WithAttributes(attribute.String("engine", engine)))
	}
}

// StartSpan creates a span for one search. The tracer is resolved from the
// global TracerProvider on every call so tests can swap providers.
func StartSpan(ctx context.Context, engine string, start, goal gridgraph.Cell) (context.Context, trace.Span) {
	return otel.Tracer(instrumentationName).Start(ctx, "search."+engine,
		trace.WithAttributes(
			attribute.String("search.engine", engine),
			attribute.String("search.start", start.String()),
			attribute.String("search.goal", goal.String()),
		),
	)
}

// EndSpan sets the result attributes on span and ends it.
func EndSpan(span trace.Span, o Outcome, err error) {
	span.SetAttributes(
		attribute.Bool("search.found", o.Found),
		attribute.String("search.reason", o.Reason.String()),
		attribute.Int("search.cost", o.Cost()),
		attribute.Int("search.expanded", o.Expanded),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
