package entity_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/tests/fixtures"
)

type recordingObserver struct {
	registered []*entity.Article
	totals     []int
	rejected   []error
}

func (r *recordingObserver) ArticleRegistered(a *entity.Article, total int) {
	r.registered = append(r.registered, a)
	r.totals = append(r.totals, total)
}

func (r *recordingObserver) ArticleRejected(err error) {
	r.rejected = append(r.rejected, err)
}

func TestRegistry_Empty(t *testing.T) {
	reg := entity.NewRegistry()

	assert.Equal(t, 0, reg.Len())
	assert.NotNil(t, reg.Articles())
	assert.Empty(t, reg.Articles())
}

func TestRegistry_Scenario(t *testing.T) {
	reg := entity.NewRegistry()
	jane, err := entity.NewAuthor(reg, "Jane Doe")
	require.NoError(t, err)
	vogue, err := entity.NewMagazine(reg, "Vogue", "Fashion")
	require.NoError(t, err)

	before := reg.Len()
	_, err = jane.AddArticle(vogue, "How to Wear a Scarf")
	require.NoError(t, err)

	assert.Equal(t, before+1, reg.Len())
	assert.Equal(t, []string{"How to Wear a Scarf"}, vogue.ArticleTitles())
	assert.Equal(t, []*entity.Magazine{vogue}, jane.Magazines())
}

func TestRegistry_ArticlesIsSnapshot(t *testing.T) {
	reg := entity.NewRegistry()
	jane := fixtures.NewTestAuthor(reg, "Jane Doe")
	vogue := fixtures.NewTestMagazine(reg)
	_, err := jane.AddArticle(vogue, "How to Wear a Scarf")
	require.NoError(t, err)

	snapshot := reg.Articles()
	snapshot[0] = nil
	_, err = jane.AddArticle(vogue, "Street Style in Milan")
	require.NoError(t, err)

	assert.Len(t, snapshot, 1)
	assert.NotNil(t, reg.Articles()[0])
	assert.Equal(t, 2, reg.Len())
}

func TestRegistry_RegistriesAreIsolated(t *testing.T) {
	r1 := entity.NewRegistry()
	r2 := entity.NewRegistry()
	jane := fixtures.NewTestAuthor(r1, "Jane Doe")
	vogue := fixtures.NewTestMagazine(r1)

	_, err := jane.AddArticle(vogue, "How to Wear a Scarf")
	require.NoError(t, err)

	assert.Equal(t, 1, r1.Len())
	assert.Equal(t, 0, r2.Len())
}

func TestRegistry_Observer(t *testing.T) {
	obs := &recordingObserver{}
	reg := entity.NewRegistry(entity.WithObserver(obs))
	jane := fixtures.NewTestAuthor(reg, "Jane Doe")
	vogue := fixtures.NewTestMagazine(reg)

	a1, err := jane.AddArticle(vogue, "How to Wear a Scarf")
	require.NoError(t, err)
	_, err = jane.AddArticle(vogue, "Tiny")
	require.Error(t, err)
	a2, err := jane.AddArticle(vogue, "Street Style in Milan")
	require.NoError(t, err)

	assert.Equal(t, []*entity.Article{a1, a2}, obs.registered)
	assert.Equal(t, []int{1, 2}, obs.totals)
	require.Len(t, obs.rejected, 1)
	assert.True(t, errors.Is(obs.rejected[0], entity.ErrInvalidValue))
}

func TestRegistry_MultipleObservers(t *testing.T) {
	first := &recordingObserver{}
	second := &recordingObserver{}
	reg := entity.NewRegistry(
		entity.WithObserver(first),
		entity.WithObserver(nil),
		entity.WithObserver(second),
	)
	jane := fixtures.NewTestAuthor(reg, "Jane Doe")
	vogue := fixtures.NewTestMagazine(reg)

	_, err := jane.AddArticle(vogue, "How to Wear a Scarf")
	require.NoError(t, err)
	_, err = jane.AddArticle(nil, "How to Wear a Scarf")
	require.Error(t, err)

	for _, obs := range []*recordingObserver{first, second} {
		assert.Len(t, obs.registered, 1)
		assert.Len(t, obs.rejected, 1)
	}
}

func TestRegistry_ConcurrentAppendAndQuery(t *testing.T) {
	reg := entity.NewRegistry()
	vogue := fixtures.NewTestMagazine(reg)

	const writers = 8
	const perWriter = 50

	authors := make([]*entity.Author, writers)
	for i := range authors {
		authors[i] = fixtures.NewTestAuthor(reg, fixtures.GenerateTitle(i+1))
	}

	var wg sync.WaitGroup
	for _, au := range authors {
		wg.Add(1)
		go func(au *entity.Author) {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				if _, err := au.AddArticle(vogue, "How to Wear a Scarf"); err != nil {
					t.Errorf("AddArticle: %v", err)
				}
				_ = vogue.Articles()
			}
		}(au)
	}
	wg.Wait()

	assert.Equal(t, writers*perWriter, reg.Len())
	for _, au := range authors {
		assert.Len(t, au.Articles(), perWriter)
	}
	assert.Len(t, vogue.Contributors(), writers)
}
