package observability_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaysms/vault/internal/observability"
)

func TestInitTracer_NoEndpoint(t *testing.T) {
	cfg := observability.TracerConfig{
		ServiceName:    "vault-test",
		ServiceVersion: "0.0.1",
		Mode:           "development",
		OTLPEndpoint:   "",
	}

	tp, err := observability.InitTracer(context.Background(), cfg)

	require.NoError(t, err)
	require.NotNil(t, tp)
	assert.NoError(t, tp.Shutdown(context.Background()))
}

func TestTracerProvider_ShutdownNilProvider(t *testing.T) {
	tp := &observability.TracerProvider{}

	assert.NoError(t, tp.Shutdown(context.Background()))
}

func TestTraceIDFromContext(t *testing.T) {
	t.Run("empty without an active span", func(t *testing.T) {
		assert.Empty(t, observability.TraceIDFromContext(context.Background()))
	})

	t.Run("present inside a span", func(t *testing.T) {
		tp, err := observability.InitTracer(context.Background(), observability.TracerConfig{
			ServiceName: "vault-test",
		})
		require.NoError(t, err)
		defer tp.Shutdown(context.Background())

		ctx, span := observability.Tracer("vault-test").Start(context.Background(), "op")
		defer span.End()

		assert.NotEmpty(t, observability.TraceIDFromContext(ctx))
	})
}
