package catalog

import (
	"fmt"

	"magazine-catalog/internal/domain/entity"
)

// Catalog is the graph produced by a load. Authors and magazines are kept in
// document order and can be looked up by name.
type Catalog struct {
	registry    *entity.Registry
	authors     []*entity.Author
	magazines   []*entity.Magazine
	articles    []*entity.Article
	authorIdx   map[string]*entity.Author
	magazineIdx map[string]*entity.Magazine
}

func newCatalog(reg *entity.Registry) *Catalog {
	return &Catalog{
		registry:    reg,
		authors:     []*entity.Author{},
		magazines:   []*entity.Magazine{},
		articles:    []*entity.Article{},
		authorIdx:   make(map[string]*entity.Author),
		magazineIdx: make(map[string]*entity.Magazine),
	}
}

// Registry returns the registry the catalog's articles were registered in.
func (c *Catalog) Registry() *entity.Registry {
	return c.registry
}

// Authors returns the catalog's authors in document order.
func (c *Catalog) Authors() []*entity.Author {
	out := make([]*entity.Author, len(c.authors))
	copy(out, c.authors)
	return out
}

// Magazines returns the catalog's magazines in document order.
func (c *Catalog) Magazines() []*entity.Magazine {
	out := make([]*entity.Magazine, len(c.magazines))
	copy(out, c.magazines)
	return out
}

// Articles returns the articles created by the load, in document order.
func (c *Catalog) Articles() []*entity.Article {
	out := make([]*entity.Article, len(c.articles))
	copy(out, c.articles)
	return out
}

// Author looks up an author by name.
// Returns an error wrapping entity.ErrNotFound if there is none.
func (c *Catalog) Author(name string) (*entity.Author, error) {
	a, ok := c.authorIdx[name]
	if !ok {
		return nil, fmt.Errorf("author %q: %w", name, entity.ErrNotFound)
	}
	return a, nil
}

// Magazine looks up a magazine by name.
// Returns an error wrapping entity.ErrNotFound if there is none.
func (c *Catalog) Magazine(name string) (*entity.Magazine, error) {
	m, ok := c.magazineIdx[name]
	if !ok {
		return nil, fmt.Errorf("magazine %q: %w", name, entity.ErrNotFound)
	}
	return m, nil
}

func (c *Catalog) addAuthor(a *entity.Author) error {
	if _, ok := c.authorIdx[a.Name()]; ok {
		return fmt.Errorf("author %q: %w", a.Name(), ErrDuplicateName)
	}
	c.authorIdx[a.Name()] = a
	c.authors = append(c.authors, a)
	return nil
}

func (c *Catalog) addMagazine(m *entity.Magazine) error {
	if _, ok := c.magazineIdx[m.Name()]; ok {
		return fmt.Errorf("magazine %q: %w", m.Name(), ErrDuplicateName)
	}
	c.magazineIdx[m.Name()] = m
	c.magazines = append(c.magazines, m)
	return nil
}
