// Package metrics provides Prometheus metrics for the catalog.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "magazine_catalog"

// Metrics holds the catalog's Prometheus collectors. Collectors are registered
// on the Registerer passed to New, so tests can use an isolated registry.
type Metrics struct {
	// ArticlesRegisteredTotal counts successful article constructions
	ArticlesRegisteredTotal prometheus.Counter

	// ArticleRejectionsTotal counts failed article constructions by reason
	// Labels: reason (invalid_reference, invalid_value, other)
	ArticleRejectionsTotal *prometheus.CounterVec

	// RegistryArticles tracks the current number of registered articles
	RegistryArticles prometheus.Gauge

	// CatalogLoadsTotal counts catalog loads by status
	// Labels: status (success, failure)
	CatalogLoadsTotal *prometheus.CounterVec

	// CatalogLoadDuration measures catalog load duration in seconds
	CatalogLoadDuration prometheus.Histogram
}

// New creates the collectors and registers them on reg.
// A nil reg falls back to prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		ArticlesRegisteredTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "articles_registered_total",
				Help:      "Total number of articles registered",
			},
		),
		ArticleRejectionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "article_rejections_total",
				Help:      "Total number of rejected article constructions",
			},
			[]string{"reason"},
		),
		RegistryArticles: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "registry_articles",
				Help:      "Current number of articles in the registry",
			},
		),
		CatalogLoadsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "catalog_loads_total",
				Help:      "Total number of catalog loads",
			},
			[]string{"status"},
		),
		CatalogLoadDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "catalog_load_duration_seconds",
				Help:      "Catalog load duration in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
		),
	}
}
