// Package observability groups the logging, metrics and tracing helpers
// used by the catalog.
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - metrics: Prometheus collectors, also usable as a registry observer
//   - tracing: OpenTelemetry span helpers
//
// Example usage:
//
//	import (
//	    "magazine-catalog/internal/observability/logging"
//	    "magazine-catalog/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.NewLogger(os.Stderr, slog.LevelInfo)
//	    m := metrics.New(prometheus.NewRegistry())
//	    reg := entity.NewRegistry(
//	        entity.WithObserver(logging.NewRegistryObserver(logger)),
//	        entity.WithObserver(m),
//	    )
//	    logger.Info("registry ready", slog.Int("articles", reg.Len()))
//	}
package observability
