package mocks

import (
	"paroisse/infras/otel"

	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// NewRecorder returns an Otel whose ended spans are kept by the recorder.
func NewRecorder() (otel.Otel, *tracetest.SpanRecorder) {
	recorder := tracetest.NewSpanRecorder()

	return otel.NewFromProvider(trace.NewTracerProvider(trace.WithSpanProcessor(recorder))), recorder
}
