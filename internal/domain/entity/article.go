// Package entity defines the core domain entities of the catalog: authors,
// magazines and the articles that connect them. Articles are registered in
// an explicit Registry, and every relationship query on Author and Magazine
// is derived by scanning that registry.
//
// Construction validates its input and returns a *ValidationError or
// *TypeError. Mutation after construction never fails loudly: each Set*
// method reports whether the new value was accepted and otherwise leaves
// the previous value in place.
package entity

import "github.com/google/uuid"

// Article is the edge between one Author and one Magazine.
// Its title is fixed at construction; author and magazine may be replaced
// by another entity of the same kind bound to the same registry.
type Article struct {
	ID uuid.UUID

	registry *Registry
	title    string
	author   *Author
	magazine *Magazine
}

// NewArticle constructs an Article in the registry the author is bound to.
// It is equivalent to author.AddArticle(magazine, title).
func NewArticle(author *Author, magazine *Magazine, title string) (*Article, error) {
	if author == nil || author.registry == nil {
		return nil, &TypeError{Field: "author", Want: KindAuthor}
	}
	return author.registry.NewArticle(author, magazine, title)
}

// Title returns the article title.
func (a *Article) Title() string {
	return a.title
}

// SetTitle never changes the title and always reports false.
func (a *Article) SetTitle(string) bool {
	return false
}

// Author returns the article's author.
func (a *Article) Author() *Author {
	return a.author
}

// SetAuthor replaces the author when au is a non-nil Author of the same registry.
func (a *Article) SetAuthor(au *Author) bool {
	if au == nil || au.registry != a.registry {
		return false
	}
	a.author = au
	return true
}

// Magazine returns the magazine the article appears in.
func (a *Article) Magazine() *Magazine {
	return a.magazine
}

// SetMagazine replaces the magazine when m is a non-nil Magazine of the same registry.
func (a *Article) SetMagazine(m *Magazine) bool {
	if m == nil || m.registry != a.registry {
		return false
	}
	a.magazine = m
	return true
}

func newID() uuid.UUID {
	return uuid.New()
}
