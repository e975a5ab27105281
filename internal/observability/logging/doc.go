// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package with helper functions
// for common logging patterns used throughout the application.
//
// Key features:
//   - JSON and text output formats
//   - Context-aware logging
//   - Configurable log levels
//   - A registry observer that logs article registrations and rejections
//
// Example usage:
//
//	import "magazine-catalog/internal/observability/logging"
//
//	func main() {
//	    logger := logging.New(os.Stderr, "json", logging.ParseLevel("info"))
//	    reg := entity.NewRegistry(entity.WithObserver(logging.NewRegistryObserver(logger)))
//	    logger.Info("registry ready", slog.Int("articles", reg.Len()))
//	}
package logging
