package otel

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestScope_RecordsOnSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "service.Book")
	scope := NewScope(span)

	scope.SetAttributes(map[string]any{
		"parish.id":   int64(4),
		"occurrences": 3,
		"skipped":     []int{2, 5},
		"issued_at":   time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC),
	})
	scope.TraceIfError(nil)
	scope.TraceError(errors.New("lead time not met"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range spans[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}

	assert.Equal(t, int64(4), attrs["parish.id"].AsInt64())
	assert.Equal(t, int64(3), attrs["occurrences"].AsInt64())
	assert.Equal(t, []int64{2, 5}, attrs["skipped"].AsInt64Slice())
	assert.Equal(t, "2026-03-15T09:00:00Z", attrs["issued_at"].AsString())

	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "lead time not met", spans[0].Status().Description)
}
