package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/brabant-dados/app-vergunningen-search/internal/config"
)

func TestSetupTracingDisabled(t *testing.T) {
	tr, err := SetupTracing(context.Background(), &config.Config{TracingEnabled: false})
	require.NoError(t, err)
	assert.Nil(t, tr)

	assert.NoError(t, tr.Shutdown(context.Background()))
}

func TestTracingExportsSpansWithResource(t *testing.T) {
	ctx := context.Background()
	exporter := tracetest.NewInMemoryExporter()

	tr, err := newTracing(ctx, exporter, "1.2.3", 1)
	require.NoError(t, err)

	_, span := tr.provider.Tracer("search").Start(ctx, "Search.Service")
	span.End()
	require.NoError(t, tr.Shutdown(ctx))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "Search.Service", spans[0].Name)

	attrs := map[string]string{}
	for _, kv := range spans[0].Resource.Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, ServiceName, attrs["service.name"])
	assert.Equal(t, "1.2.3", attrs["service.version"])
}

func TestTracingZeroRatioDropsRootSpans(t *testing.T) {
	ctx := context.Background()
	exporter := tracetest.NewInMemoryExporter()

	tr, err := newTracing(ctx, exporter, "dev", 0)
	require.NoError(t, err)

	_, span := tr.provider.Tracer("search").Start(ctx, "Search.Service")
	assert.False(t, span.SpanContext().IsSampled())
	span.End()
	require.NoError(t, tr.Shutdown(ctx))

	assert.Empty(t, exporter.GetSpans())
}

func TestSampler(t *testing.T) {
	assert.Contains(t, sampler(1).Description(), "root:AlwaysOnSampler")
	assert.Contains(t, sampler(0).Description(), "root:AlwaysOffSampler")
	assert.Contains(t, sampler(0.25).Description(), "root:TraceIDRatioBased{0.25}")
}
