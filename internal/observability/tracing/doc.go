// Package tracing provides OpenTelemetry tracing helpers.
//
// Spans are created from the global tracer provider. Nothing is exported
// unless the embedding program installs a provider with an exporter;
// otherwise the default no-op provider is used.
//
// Example usage:
//
//	import "magazine-catalog/internal/observability/tracing"
//
//	func load(ctx context.Context) error {
//	    ctx, span := tracing.StartSpan(ctx, "catalog.load")
//	    defer span.End()
//	    // ... load the catalog ...
//	}
package tracing
