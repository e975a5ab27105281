// Package fixtures provides reusable test data for the catalog packages.
// It keeps sample documents and entity builders in one place so tests across
// packages exercise the same graph.
package fixtures

import (
	"strings"

	"magazine-catalog/internal/domain/entity"
)

// SampleCatalogYAML is a small catalog with one frequent contributor.
//
// Jane Doe writes three Vogue articles and one Wired article; John Roe writes
// two Vogue articles. Vogue's contributing authors are therefore [Jane Doe],
// and GQ has no articles.
const SampleCatalogYAML = `
authors:
  - name: Jane Doe
  - name: John Roe
  - name: Idle Writer
magazines:
  - name: Vogue
    category: Fashion
  - name: Wired
    category: Technology
  - name: GQ
    category: Fashion
articles:
  - author: Jane Doe
    magazine: Vogue
    title: How to Wear a Scarf
  - author: Jane Doe
    magazine: Vogue
    title: Autumn Colour Palettes
  - author: John Roe
    magazine: Vogue
    title: The Return of Tailoring
  - author: Jane Doe
    magazine: Vogue
    title: Street Style in Milan
  - author: John Roe
    magazine: Vogue
    title: Shoes for Every Season
  - author: Jane Doe
    magazine: Wired
    title: Wearable Tech Goes Mainstream
`

// GenerateTitle returns an ASCII title of exactly n characters.
//
// Example:
//
//	title := GenerateTitle(entity.MaxTitleLength) // longest valid title
func GenerateTitle(n int) string {
	if n <= 0 {
		return ""
	}
	const word = "Scarf "
	s := strings.Repeat(word, n/len(word)+1)
	return s[:n]
}

// MagazineOption is a functional option for customizing test magazines.
type MagazineOption func(name, category *string)

// WithMagazineName overrides the default magazine name.
func WithMagazineName(name string) MagazineOption {
	return func(n, _ *string) { *n = name }
}

// WithCategory overrides the default magazine category.
func WithCategory(category string) MagazineOption {
	return func(_, c *string) { *c = category }
}

// NewTestMagazine creates a valid Magazine in reg with sensible defaults.
// It panics if the options produce an invalid magazine.
//
// Example:
//
//	mag := NewTestMagazine(reg, WithCategory("Technology"))
func NewTestMagazine(reg *entity.Registry, opts ...MagazineOption) *entity.Magazine {
	name, category := "Vogue", "Fashion"
	for _, opt := range opts {
		opt(&name, &category)
	}
	m, err := entity.NewMagazine(reg, name, category)
	if err != nil {
		panic(err)
	}
	return m
}

// NewTestAuthor creates an Author in reg. It panics if name is empty.
func NewTestAuthor(reg *entity.Registry, name string) *entity.Author {
	a, err := entity.NewAuthor(reg, name)
	if err != nil {
		panic(err)
	}
	return a
}
