package entity

import (
	"sync"
)

// Kind names one of the entity variants that can be referenced by an Article.
type Kind string

const (
	KindAuthor   Kind = "Author"
	KindMagazine Kind = "Magazine"
	KindRegistry Kind = "Registry"
)

func (k Kind) describe() string {
	if k == KindAuthor {
		return "an Author instance"
	}
	return "a " + string(k) + " instance"
}

// RegistryObserver receives notifications about article construction.
// Notifications are delivered outside the registry lock, so concurrent
// registrations may be reported with totals out of order.
type RegistryObserver interface {
	// ArticleRegistered is called after a successful append with the new registry length.
	ArticleRegistered(a *Article, total int)
	// ArticleRejected is called when construction fails validation.
	ArticleRejected(err error)
}

// Registry is the ordered collection of every Article constructed against it.
// It only grows; there is no removal. All reads and appends are serialized
// by a single lock, so a reader never observes a partially appended article.
type Registry struct {
	mu       sync.RWMutex
	articles []*Article
	observer RegistryObserver
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithObserver attaches an observer to the registry. Passing several
// WithObserver options fans notifications out to all of them.
func WithObserver(o RegistryObserver) RegistryOption {
	return func(r *Registry) {
		if o == nil {
			return
		}
		if r.observer == nil {
			r.observer = o
			return
		}
		r.observer = Observers{r.observer, o}
	}
}

// NewRegistry creates a new empty Registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{articles: []*Article{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Len returns the number of registered articles. A nil Registry is empty.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.articles)
}

// Articles returns a snapshot of all registered articles in registration order.
// A nil Registry yields an empty slice.
func (r *Registry) Articles() []*Article {
	if r == nil {
		return []*Article{}
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Article, len(r.articles))
	copy(out, r.articles)
	return out
}

// NewArticle validates the references and title, then appends the new
// Article to the registry. Nothing is registered when validation fails.
//
// Returns a *TypeError if author or magazine is nil or bound to another
// registry, and a *ValidationError if the title length is out of range.
func (r *Registry) NewArticle(author *Author, magazine *Magazine, title string) (*Article, error) {
	if r == nil {
		return nil, &TypeError{Field: "registry", Want: KindRegistry}
	}
	if err := r.checkArticle(author, magazine, title); err != nil {
		if r.observer != nil {
			r.observer.ArticleRejected(err)
		}
		return nil, err
	}

	a := &Article{
		ID:       newID(),
		registry: r,
		title:    title,
		author:   author,
		magazine: magazine,
	}

	r.mu.Lock()
	r.articles = append(r.articles, a)
	total := len(r.articles)
	r.mu.Unlock()

	if r.observer != nil {
		r.observer.ArticleRegistered(a, total)
	}
	return a, nil
}

func (r *Registry) checkArticle(author *Author, magazine *Magazine, title string) error {
	if author == nil || author.registry != r {
		return &TypeError{Field: "author", Want: KindAuthor}
	}
	if magazine == nil || magazine.registry != r {
		return &TypeError{Field: "magazine", Want: KindMagazine}
	}
	return ValidateTitle(title)
}

// filter returns the registered articles matching keep, in registry order.
// The result is never nil.
func (r *Registry) filter(keep func(*Article) bool) []*Article {
	out := []*Article{}
	for _, a := range r.Articles() {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

// Observers fans registry notifications out to several observers in order.
type Observers []RegistryObserver

// ArticleRegistered implements RegistryObserver.
func (o Observers) ArticleRegistered(a *Article, total int) {
	for _, obs := range o {
		obs.ArticleRegistered(a, total)
	}
}

// ArticleRejected implements RegistryObserver.
func (o Observers) ArticleRejected(err error) {
	for _, obs := range o {
		obs.ArticleRejected(err)
	}
}
