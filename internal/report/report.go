// Package report summarises every derived query of a catalog in a form that
// serialises deterministically. Queries whose results are unordered are
// sorted by name, and absent results stay nil so they encode as JSON null.
package report

import (
	"sort"

	"magazine-catalog/internal/catalog"
	"magazine-catalog/internal/domain/entity"
)

// Report is the summary of one catalog.
type Report struct {
	RegistrySize int               `json:"registry_size"`
	Authors      []AuthorSummary   `json:"authors"`
	Magazines    []MagazineSummary `json:"magazines"`
}

// AuthorSummary holds the derived queries of one author.
type AuthorSummary struct {
	Name       string   `json:"name"`
	Articles   []string `json:"articles"`
	Magazines  []string `json:"magazines"`
	TopicAreas []string `json:"topic_areas"`
}

// MagazineSummary holds the derived queries of one magazine.
type MagazineSummary struct {
	Name                string   `json:"name"`
	Category            string   `json:"category"`
	ArticleTitles       []string `json:"article_titles"`
	Contributors        []string `json:"contributors"`
	ContributingAuthors []string `json:"contributing_authors"`
}

// Build summarises c. Authors and magazines keep catalog order.
func Build(c *catalog.Catalog) Report {
	r := Report{
		RegistrySize: c.Registry().Len(),
		Authors:      []AuthorSummary{},
		Magazines:    []MagazineSummary{},
	}
	for _, a := range c.Authors() {
		r.Authors = append(r.Authors, SummarizeAuthor(a))
	}
	for _, m := range c.Magazines() {
		r.Magazines = append(r.Magazines, SummarizeMagazine(m))
	}
	return r
}

// SummarizeAuthor runs every author query.
func SummarizeAuthor(a *entity.Author) AuthorSummary {
	articles := a.Articles()
	titles := make([]string, 0, len(articles))
	for _, art := range articles {
		titles = append(titles, art.Title())
	}

	return AuthorSummary{
		Name:       a.Name(),
		Articles:   titles,
		Magazines:  sorted(magazineNames(a.Magazines())),
		TopicAreas: sorted(a.TopicAreas()),
	}
}

// SummarizeMagazine runs every magazine query.
func SummarizeMagazine(m *entity.Magazine) MagazineSummary {
	return MagazineSummary{
		Name:                m.Name(),
		Category:            m.Category(),
		ArticleTitles:       m.ArticleTitles(),
		Contributors:        sorted(authorNames(m.Contributors())),
		ContributingAuthors: sorted(authorNames(m.ContributingAuthors())),
	}
}

func magazineNames(mags []*entity.Magazine) []string {
	if mags == nil {
		return nil
	}
	out := make([]string, 0, len(mags))
	for _, m := range mags {
		out = append(out, m.Name())
	}
	return out
}

func authorNames(authors []*entity.Author) []string {
	if authors == nil {
		return nil
	}
	out := make([]string, 0, len(authors))
	for _, a := range authors {
		out = append(out, a.Name())
	}
	return out
}

// sorted sorts s in place and returns it; nil stays nil.
func sorted(s []string) []string {
	sort.Strings(s)
	return s
}
