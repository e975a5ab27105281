package entity

import "github.com/google/uuid"

// Author is a writer of articles. The name is fixed at construction.
type Author struct {
	ID uuid.UUID

	registry *Registry
	name     string
}

// NewAuthor creates an Author bound to reg.
// Returns a *ValidationError if name is empty.
func NewAuthor(reg *Registry, name string) (*Author, error) {
	if reg == nil {
		return nil, &TypeError{Field: "registry", Want: KindRegistry}
	}
	if err := ValidateAuthorName(name); err != nil {
		return nil, err
	}
	return &Author{ID: newID(), registry: reg, name: name}, nil
}

// Name returns the author's name.
func (a *Author) Name() string {
	return a.name
}

// SetName never changes the name and always reports false.
func (a *Author) SetName(string) bool {
	return false
}

// Articles returns the articles written by a, in registry order.
// The result is empty, never nil, when a has no articles.
func (a *Author) Articles() []*Article {
	return a.registry.filter(func(art *Article) bool {
		return art.author == a
	})
}

// Magazines returns the distinct magazines a has written for.
// Order is not guaranteed. The result is empty, never nil, when a has no articles.
func (a *Author) Magazines() []*Magazine {
	seen := make(map[*Magazine]struct{})
	out := []*Magazine{}
	for _, art := range a.Articles() {
		if _, ok := seen[art.magazine]; ok {
			continue
		}
		seen[art.magazine] = struct{}{}
		out = append(out, art.magazine)
	}
	return out
}

// AddArticle creates and registers a new Article by a for magazine.
// It applies the same validation as Registry.NewArticle.
func (a *Author) AddArticle(magazine *Magazine, title string) (*Article, error) {
	return a.registry.NewArticle(a, magazine, title)
}

// TopicAreas returns the distinct categories of the magazines a has written for.
// It returns nil when a has not written for any magazine.
func (a *Author) TopicAreas() []string {
	mags := a.Magazines()
	if len(mags) == 0 {
		return nil
	}
	return distinctCategories(mags)
}
