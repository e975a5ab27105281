package logging

import (
	"log/slog"

	"magazine-catalog/internal/domain/entity"
)

// RegistryObserver logs article registrations at debug level and rejected
// constructions at warn level.
type RegistryObserver struct {
	Logger *slog.Logger
}

// NewRegistryObserver returns an observer writing to logger.
func NewRegistryObserver(logger *slog.Logger) *RegistryObserver {
	return &RegistryObserver{Logger: logger}
}

// ArticleRegistered implements entity.RegistryObserver.
func (o *RegistryObserver) ArticleRegistered(a *entity.Article, total int) {
	o.Logger.Debug("article registered",
		slog.String("article_id", a.ID.String()),
		slog.String("title", a.Title()),
		slog.String("author", a.Author().Name()),
		slog.String("magazine", a.Magazine().Name()),
		slog.Int("registry_size", total))
}

// ArticleRejected implements entity.RegistryObserver.
func (o *RegistryObserver) ArticleRejected(err error) {
	o.Logger.Warn("article rejected", slog.String("error", err.Error()))
}
