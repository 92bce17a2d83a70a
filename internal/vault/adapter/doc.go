package adapter

import "go.opentelemetry.io/otel"

var tracer = otel.Tracer("vault/adapter")
