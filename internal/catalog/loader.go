package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"gopkg.in/yaml.v3"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/tracing"
)

// Recorder receives the outcome of each load. *metrics.Metrics implements it.
type Recorder interface {
	RecordCatalogLoad(duration time.Duration, err error)
}

// Loader decodes catalog documents into a Registry.
type Loader struct {
	Registry *entity.Registry
	Recorder Recorder // optional
}

// Load decodes a catalog document from r into reg using a Loader without a Recorder.
func Load(ctx context.Context, r io.Reader, reg *entity.Registry) (*Catalog, error) {
	l := &Loader{Registry: reg}
	return l.Load(ctx, r)
}

// Load decodes a catalog document from r and builds its graph.
//
// Authors and magazines are created first, then every article is checked
// before any of them is registered, so a failed load leaves the registry
// unchanged. Errors name the offending list entry, e.g. "articles[2]: ...".
// A cancelled or expired ctx fails the load before any article is registered.
func (l *Loader) Load(ctx context.Context, r io.Reader) (cat *Catalog, err error) {
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, "catalog.Load")
	defer func() {
		tracing.RecordError(span, err)
		span.End()
		if l.Recorder != nil {
			l.Recorder.RecordCatalogLoad(time.Since(start), err)
		}
	}()

	if l.Registry == nil {
		return nil, &entity.TypeError{Field: "registry", Want: entity.KindRegistry}
	}

	doc, err := decode(r)
	if err != nil {
		return nil, err
	}

	cat, err = l.build(ctx, doc)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("catalog.authors", len(cat.authors)),
		attribute.Int("catalog.magazines", len(cat.magazines)),
		attribute.Int("catalog.articles", len(cat.articles)),
	)
	logger := logging.WithFields(logging.FromContext(ctx), map[string]interface{}{
		"authors":   len(cat.authors),
		"magazines": len(cat.magazines),
		"articles":  len(cat.articles),
	})
	logger.Info("catalog loaded",
		slog.Int("registry_size", l.Registry.Len()),
		slog.Duration("duration", time.Since(start)))

	return cat, nil
}

func decode(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return &doc, nil
}

type pendingArticle struct {
	author   *entity.Author
	magazine *entity.Magazine
	title    string
}

func (l *Loader) build(ctx context.Context, doc *Document) (*Catalog, error) {
	cat := newCatalog(l.Registry)

	for i, ad := range doc.Authors {
		a, err := entity.NewAuthor(l.Registry, ad.Name)
		if err != nil {
			return nil, fmt.Errorf("authors[%d]: %w", i, err)
		}
		if err := cat.addAuthor(a); err != nil {
			return nil, fmt.Errorf("authors[%d]: %w", i, err)
		}
	}

	for i, md := range doc.Magazines {
		m, err := entity.NewMagazine(l.Registry, md.Name, md.Category)
		if err != nil {
			return nil, fmt.Errorf("magazines[%d]: %w", i, err)
		}
		if err := cat.addMagazine(m); err != nil {
			return nil, fmt.Errorf("magazines[%d]: %w", i, err)
		}
	}

	pending := make([]pendingArticle, 0, len(doc.Articles))
	for i, ad := range doc.Articles {
		a, err := cat.Author(ad.Author)
		if err != nil {
			return nil, fmt.Errorf("articles[%d]: %w", i, err)
		}
		m, err := cat.Magazine(ad.Magazine)
		if err != nil {
			return nil, fmt.Errorf("articles[%d]: %w", i, err)
		}
		if err := entity.ValidateTitle(ad.Title); err != nil {
			return nil, fmt.Errorf("articles[%d]: %w", i, err)
		}
		pending = append(pending, pendingArticle{author: a, magazine: m, title: ad.Title})
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load aborted before registering articles: %w", err)
	}

	for i, p := range pending {
		art, err := p.author.AddArticle(p.magazine, p.title)
		if err != nil {
			return nil, fmt.Errorf("articles[%d]: %w", i, err)
		}
		cat.articles = append(cat.articles, art)
	}

	return cat, nil
}
