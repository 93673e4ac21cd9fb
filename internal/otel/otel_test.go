package otel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestControllerRecordsSpansWithServiceName(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	ctrl := newController(sdktrace.WithSpanProcessor(rec))

	_, span := otel.Tracer("test").Start(context.Background(), "op")
	span.End()

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "op", spans[0].Name())
	assert.Contains(t, spans[0].Resource().Attributes(), attribute.String("service.name", ServiceName))

	require.NoError(t, ctrl.Shutdown(context.Background()))
}
