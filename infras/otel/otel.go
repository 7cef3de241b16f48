package otel

import (
	"context"
	"paroisse/config"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"google.golang.org/grpc/credentials/insecure"
)

type Otel interface {
	NewScope(ctx context.Context, scopeName, spanName string) (context.Context, Scope)
	Shutdown(ctx context.Context) error
}

type tracing struct {
	provider *trace.TracerProvider
}

// New builds the tracer provider for the service. Without an OTLP endpoint
// spans are still created but never exported.
func New(cfg *config.Config) Otel {
	options := []trace.TracerProviderOption{
		trace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(cfg.App.Name),
			semconv.DeploymentEnvironmentKey.String(cfg.Server.Env),
		)),
	}

	endpoint := cfg.External.Otel.Endpoint
	if endpoint == "" {
		log.Warn().Msg("No OTLP endpoint configured, spans will not be exported")

		return NewFromProvider(trace.NewTracerProvider(options...))
	}

	exporter, err := otlptracegrpc.New(context.Background(),
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithTLSCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		log.Fatal().Err(err).Str("endpoint", endpoint).Msg("Failed to create OTLP exporter")
	}

	provider := trace.NewTracerProvider(append(options, trace.WithBatcher(exporter))...)
	otel.SetTracerProvider(provider)

	log.Info().Str("endpoint", endpoint).Msg("OTLP trace exporter initialized")

	return NewFromProvider(provider)
}

// NewFromProvider wraps an already configured tracer provider.
func NewFromProvider(provider *trace.TracerProvider) Otel {
	return &tracing{provider: provider}
}

func (t *tracing) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, Scope) {
	ctx, span := t.provider.Tracer(scopeName).Start(ctx, spanName)

	return ctx, NewScope(span)
}

// Shutdown flushes pending spans.
func (t *tracing) Shutdown(ctx context.Context) error {
	return t.provider.Shutdown(ctx) //nolint:wrapcheck
}
