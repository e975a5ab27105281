package metrics

import (
	"errors"
	"time"

	"magazine-catalog/internal/domain/entity"
)

// ArticleRegistered implements entity.RegistryObserver.
// The gauge is incremented since totals may arrive out of order.
func (m *Metrics) ArticleRegistered(_ *entity.Article, _ int) {
	m.ArticlesRegisteredTotal.Inc()
	m.RegistryArticles.Inc()
}

// ArticleRejected implements entity.RegistryObserver.
func (m *Metrics) ArticleRejected(err error) {
	m.ArticleRejectionsTotal.WithLabelValues(rejectionReason(err)).Inc()
}

// RecordCatalogLoad records the outcome and duration of a catalog load.
func (m *Metrics) RecordCatalogLoad(duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	m.CatalogLoadsTotal.WithLabelValues(status).Inc()
	m.CatalogLoadDuration.Observe(duration.Seconds())
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, entity.ErrInvalidReference):
		return "invalid_reference"
	case errors.Is(err, entity.ErrInvalidValue):
		return "invalid_value"
	default:
		return "other"
	}
}
