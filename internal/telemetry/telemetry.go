// Package telemetry wires OpenTelemetry tracing for the floyd CLI.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName names the tracer and meter.
const InstrumentationName = "github.com/katalvlaran/floydpaths"

// Config configures tracing.
type Config struct {
	// ServiceName is the name of the service (default: "floyd")
	ServiceName string

	// ServiceVersion is the version of the service
	ServiceVersion string

	// OTLPEndpoint is the OTLP gRPC endpoint (e.g., "localhost:4317")
	// If empty, tracing is disabled.
	OTLPEndpoint string

	// SampleRate is the trace sampling rate (0.0 to 1.0, default: 1.0)
	SampleRate float64

	// MeterProvider supplies the floyd meter. When nil the global provider
	// is used, which records nothing until the embedding program installs
	// one with otel.SetMeterProvider.
	MeterProvider metric.MeterProvider
}

// DefaultConfig returns a default tracing configuration.
func DefaultConfig() *Config {
	return &Config{
		ServiceName:    "floyd",
		ServiceVersion: "dev",
		SampleRate:     1.0,
	}
}

// Provider bundles the tracer and meter handed to the solver observers.
type Provider struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
	meter    metric.Meter
}

// Init initializes OpenTelemetry tracing.
// Returns a provider backed by the global no-op tracer if OTLPEndpoint is empty.
func Init(ctx context.Context, cfg *Config) (*Provider, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if cfg.OTLPEndpoint == "" {
		return &Provider{
			tracer: otel.Tracer(InstrumentationName),
			meter:  meterFor(cfg),
		}, nil
	}

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(cfg.OTLPEndpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("create OTLP exporter: %w", err)
	}

	res, err := serviceResource(cfg)
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(Sampler(cfg.SampleRate)),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return &Provider{
		provider: provider,
		tracer:   provider.Tracer(InstrumentationName),
		meter:    meterFor(cfg),
	}, nil
}

// serviceResource merges the SDK default resource with the service identity.
// The semconv import must match the schema the SDK stamps on
// resource.Default, otherwise Merge rejects the conflicting schema URLs.
func serviceResource(cfg *Config) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
		),
	)
}

func meterFor(cfg *Config) metric.Meter {
	if cfg.MeterProvider != nil {
		return cfg.MeterProvider.Meter(InstrumentationName)
	}

	return otel.Meter(InstrumentationName)
}

// Sampler maps a sampling rate onto an SDK sampler.
func Sampler(rate float64) sdktrace.Sampler {
	switch {
	case rate >= 1.0:
		return sdktrace.AlwaysSample()
	case rate <= 0:
		return sdktrace.NeverSample()
	default:
		return sdktrace.TraceIDRatioBased(rate)
	}
}

// Shutdown flushes and stops the exporter, if any.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.provider != nil {
		return p.provider.Shutdown(ctx)
	}

	return nil
}

// Tracer returns the tracer.
func (p *Provider) Tracer() trace.Tracer { return p.tracer }

// Meter returns the meter from Config.MeterProvider, or from the global
// provider when none was given. Init never installs a MeterProvider, so the
// floyd.relaxations and floyd.build.duration instruments stay no-ops unless
// the caller supplies one.
func (p *Provider) Meter() metric.Meter { return p.meter }

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool { return p.provider != nil }
