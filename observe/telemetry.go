// SPDX-License-Identifier: MIT

package observe

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/floydpaths/floyd"
)

// Instrument names.
const (
	SpanBuild        = "floyd.build"
	EventStep        = "floyd.step"
	MetricRelaxed    = "floyd.relaxations"
	MetricBuildMilli = "floyd.build.duration"
)

// Instruments holds the tracer and metric instruments shared by every
// Telemetry observer. Create it once per process.
type Instruments struct {
	tracer      trace.Tracer
	relaxations metric.Int64Counter
	duration    metric.Float64Histogram
}

// NewInstruments creates the metric instruments on meter.
func NewInstruments(tracer trace.Tracer, meter metric.Meter) (*Instruments, error) {
	in := &Instruments{tracer: tracer}
	var err error

	in.relaxations, err = meter.Int64Counter(
		MetricRelaxed,
		metric.WithDescription("Distance cells improved by elimination steps"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create relaxation counter: %w", err)
	}

	in.duration, err = meter.Float64Histogram(
		MetricBuildMilli,
		metric.WithDescription("Wall time of a full snapshot build in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("create duration histogram: %w", err)
	}

	return in, nil
}

// Observer returns a Telemetry bound to ctx. attrs are attached to the span
// and to every measurement.
func (in *Instruments) Observer(ctx context.Context, attrs ...attribute.KeyValue) *Telemetry {
	return &Telemetry{in: in, ctx: ctx, attrs: attrs}
}

// Telemetry reports one snapshot build as a span with step events.
// It is not safe for concurrent use; give each Solver its own.
type Telemetry struct {
	in    *Instruments
	ctx   context.Context
	attrs []attribute.KeyValue
	span  trace.Span // open between the first event and OnComplete
}

func (t *Telemetry) begin(order int) {
	if t.span != nil {
		return
	}
	_, t.span = t.in.tracer.Start(t.ctx, SpanBuild,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(t.attrs...),
		trace.WithAttributes(attribute.Int("floyd.order", order)),
	)
}

// OnStep records one elimination step.
func (t *Telemetry) OnStep(ev floyd.StepEvent) {
	t.begin(ev.Order)
	t.span.AddEvent(EventStep, trace.WithAttributes(
		attribute.Int("floyd.step", ev.Step),
		attribute.Int("floyd.node", ev.Node),
		attribute.Int("floyd.relaxed", ev.Relaxed),
	))
	t.in.relaxations.Add(t.ctx, int64(ev.Relaxed), metric.WithAttributes(t.attrs...))
}

// OnComplete closes the build span and records its duration.
func (t *Telemetry) OnComplete(ev floyd.CompleteEvent) {
	t.begin(ev.Order)
	t.span.SetAttributes(
		attribute.Int("floyd.snapshots", ev.Snapshots),
		attribute.Int64("floyd.elapsed_ms", ev.Elapsed.Milliseconds()),
	)
	t.span.SetStatus(codes.Ok, "")
	t.span.End()
	t.span = nil

	ms := float64(ev.Elapsed.Microseconds()) / 1000
	t.in.duration.Record(t.ctx, ms, metric.WithAttributes(t.attrs...))
}

// RecordAnswer annotates span with a query result.
// Failed answers mark the span as an error.
func RecordAnswer(span trace.Span, a floyd.Answer) {
	span.SetAttributes(
		attribute.Int("floyd.start", a.Start),
		attribute.Int("floyd.end", a.End),
		attribute.String("floyd.outcome", a.Outcome.String()),
		attribute.Int("floyd.paths", len(a.Paths)),
	)
	if a.Complete() {
		span.SetAttributes(attribute.Float64("floyd.weight", a.Weight))
		return
	}
	span.SetStatus(codes.Error, a.Message)
}

var _ floyd.Observer = (*Telemetry)(nil)
