// Package metrics provides Prometheus collectors and recording utilities.
//
// This package centralizes the catalog metrics:
//   - Article registrations and rejections (via entity.RegistryObserver)
//   - Current registry size
//   - Catalog load count and duration
//
// Collectors are registered on the prometheus.Registerer given to New.
//
// Example usage:
//
//	import "magazine-catalog/internal/observability/metrics"
//
//	func main() {
//	    m := metrics.New(prometheus.DefaultRegisterer)
//	    reg := entity.NewRegistry(entity.WithObserver(m))
//	    // ... build the graph ...
//	}
package metrics
