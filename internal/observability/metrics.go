package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

// MetricsConfig holds configuration for the metrics provider.
type MetricsConfig struct {
	ServiceName    string
	ServiceVersion string
	Mode           string
	OTLPEndpoint   string // Empty string disables OTLP export
}

// MetricsProvider wraps the OpenTelemetry meter provider with shutdown capabilities.
type MetricsProvider struct {
	provider *sdkmetric.MeterProvider
}

// InitMetrics initializes the OpenTelemetry meter provider.
// Returns a MetricsProvider that must be shut down on application exit.
func InitMetrics(ctx context.Context, cfg MetricsConfig) (*MetricsProvider, error) {
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.ServiceVersion),
		semconv.DeploymentEnvironment(cfg.Mode),
	)

	var opts []sdkmetric.Option
	opts = append(opts, sdkmetric.WithResource(res))

	if cfg.OTLPEndpoint != "" {
		exporter, err := otlpmetricgrpc.New(ctx,
			otlpmetricgrpc.WithEndpoint(cfg.OTLPEndpoint),
			otlpmetricgrpc.WithInsecure(),
		)
		if err != nil {
			return nil, fmt.Errorf("create OTLP metric exporter: %w", err)
		}
		opts = append(opts, sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)))
	}

	provider := sdkmetric.NewMeterProvider(opts...)

	otel.SetMeterProvider(provider)

	return &MetricsProvider{provider: provider}, nil
}

// Shutdown flushes any remaining metrics and shuts down the provider.
func (mp *MetricsProvider) Shutdown(ctx context.Context) error {
	if mp.provider == nil {
		return nil
	}
	return mp.provider.Shutdown(ctx)
}

// Meter returns a meter for the given instrumentation name.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// VaultMetrics bundles the service's counters. A nil *VaultMetrics is valid
// and drops every recording, which keeps tests free of meter setup.
type VaultMetrics struct {
	entitiesCreated metric.Int64Counter
	authentications metric.Int64Counter
	authFailures    metric.Int64Counter
	tokenOps        metric.Int64Counter
	payloadOps      metric.Int64Counter
}

// NewVaultMetrics registers the vault counters on the given meter.
func NewVaultMetrics(meter metric.Meter) (*VaultMetrics, error) {
	m := &VaultMetrics{}
	var err error

	if m.entitiesCreated, err = meter.Int64Counter("vault.entities.created",
		metric.WithDescription("Entities created")); err != nil {
		return nil, fmt.Errorf("register counter: %w", err)
	}
	if m.authentications, err = meter.Int64Counter("vault.authentications",
		metric.WithDescription("Successful entity authentications")); err != nil {
		return nil, fmt.Errorf("register counter: %w", err)
	}
	if m.authFailures, err = meter.Int64Counter("vault.auth.failures",
		metric.WithDescription("Rejected authentications, by reason")); err != nil {
		return nil, fmt.Errorf("register counter: %w", err)
	}
	if m.tokenOps, err = meter.Int64Counter("vault.token.operations",
		metric.WithDescription("Stored-token operations, by kind")); err != nil {
		return nil, fmt.Errorf("register counter: %w", err)
	}
	if m.payloadOps, err = meter.Int64Counter("vault.payload.operations",
		metric.WithDescription("Payload channel operations, by direction")); err != nil {
		return nil, fmt.Errorf("register counter: %w", err)
	}
	return m, nil
}

// EntityCreated records one entity creation.
func (m *VaultMetrics) EntityCreated(ctx context.Context) {
	if m == nil {
		return
	}
	m.entitiesCreated.Add(ctx, 1)
}

// Authenticated records one successful authentication.
func (m *VaultMetrics) Authenticated(ctx context.Context) {
	if m == nil {
		return
	}
	m.authentications.Add(ctx, 1)
}

// AuthFailed records a rejected authentication with its reason.
func (m *VaultMetrics) AuthFailed(ctx context.Context, reason string) {
	if m == nil {
		return
	}
	m.authFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}

// TokenOp records a stored-token operation ("store", "list", "get", "update", "delete").
func (m *VaultMetrics) TokenOp(ctx context.Context, kind string) {
	if m == nil {
		return
	}
	m.tokenOps.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

// PayloadOp records a payload operation ("decrypt" or "encrypt").
func (m *VaultMetrics) PayloadOp(ctx context.Context, direction string) {
	if m == nil {
		return
	}
	m.payloadOps.Add(ctx, 1, metric.WithAttributes(attribute.String("direction", direction)))
}
