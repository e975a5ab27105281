package entity

import "github.com/google/uuid"

// contributingThreshold is the article count a contributor must exceed to be
// reported by ContributingAuthors.
const contributingThreshold = 2

// Magazine is a publication that articles appear in.
// Name and category stay valid for the lifetime of the value: invalid
// assignments are discarded.
type Magazine struct {
	ID uuid.UUID

	registry *Registry
	name     string
	category string
}

// NewMagazine creates a Magazine bound to reg.
// Unlike SetName and SetCategory, invalid initial values are rejected with a
// *ValidationError so a Magazine never exists with an unset field.
func NewMagazine(reg *Registry, name, category string) (*Magazine, error) {
	if reg == nil {
		return nil, &TypeError{Field: "registry", Want: KindRegistry}
	}
	if err := ValidateMagazineName(name); err != nil {
		return nil, err
	}
	if err := ValidateCategory(category); err != nil {
		return nil, err
	}
	return &Magazine{ID: newID(), registry: reg, name: name, category: category}, nil
}

// Name returns the magazine name.
func (m *Magazine) Name() string {
	return m.name
}

// SetName updates the name if it is 2 to 16 characters long.
// It reports whether the value was accepted.
func (m *Magazine) SetName(name string) bool {
	if ValidateMagazineName(name) != nil {
		return false
	}
	m.name = name
	return true
}

// Category returns the magazine category.
func (m *Magazine) Category() string {
	return m.category
}

// SetCategory updates the category if it is non-empty.
// It reports whether the value was accepted.
func (m *Magazine) SetCategory(category string) bool {
	if ValidateCategory(category) != nil {
		return false
	}
	m.category = category
	return true
}

// Articles returns the articles published in m, in registry order.
// The result is empty, never nil, when m has no articles.
func (m *Magazine) Articles() []*Article {
	return m.registry.filter(func(art *Article) bool {
		return art.magazine == m
	})
}

// Contributors returns the distinct authors of m's articles, in no particular order.
// It returns nil when m has no articles.
func (m *Magazine) Contributors() []*Author {
	return distinctAuthors(m.Articles())
}

// ArticleTitles returns the titles of m's articles in registry order.
// It returns nil when m has no articles.
func (m *Magazine) ArticleTitles() []string {
	articles := m.Articles()
	if len(articles) == 0 {
		return nil
	}
	titles := make([]string, 0, len(articles))
	for _, art := range articles {
		titles = append(titles, art.title)
	}
	return titles
}

// ContributingAuthors returns the authors with more than two articles in m.
// It returns nil when m has no articles or when no author qualifies.
func (m *Magazine) ContributingAuthors() []*Author {
	articles := m.Articles()
	if len(articles) == 0 {
		return nil
	}

	counts := make(map[*Author]int)
	for _, art := range articles {
		counts[art.author]++
	}

	var out []*Author
	for _, au := range distinctAuthors(articles) {
		if counts[au] > contributingThreshold {
			out = append(out, au)
		}
	}
	return out
}

// distinctAuthors returns the authors of articles without duplicates, or nil
// when articles is empty.
func distinctAuthors(articles []*Article) []*Author {
	if len(articles) == 0 {
		return nil
	}
	seen := make(map[*Author]struct{}, len(articles))
	out := make([]*Author, 0, len(articles))
	for _, art := range articles {
		if _, ok := seen[art.author]; ok {
			continue
		}
		seen[art.author] = struct{}{}
		out = append(out, art.author)
	}
	return out
}

func distinctCategories(mags []*Magazine) []string {
	seen := make(map[string]struct{}, len(mags))
	out := make([]string, 0, len(mags))
	for _, m := range mags {
		if _, ok := seen[m.category]; ok {
			continue
		}
		seen[m.category] = struct{}{}
		out = append(out, m.category)
	}
	return out
}
