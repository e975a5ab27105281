package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/tests/fixtures"
)

// ===========================================================================
// Property-Based Tests (using pgregory.net/rapid)
// ===========================================================================

func TestProperty_ArticleConstructionRespectsTitleBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		reg := entity.NewRegistry()
		jane := fixtures.NewTestAuthor(reg, "Jane Doe")
		vogue := fixtures.NewTestMagazine(reg)

		n := rapid.IntRange(0, 80).Draw(rt, "titleLength")
		art, err := jane.AddArticle(vogue, fixtures.GenerateTitle(n))

		valid := n >= entity.MinTitleLength && n <= entity.MaxTitleLength
		if valid {
			require.NoError(rt, err)
			require.Equal(rt, 1, reg.Len())
			require.Contains(rt, jane.Articles(), art)
			require.Contains(rt, vogue.Articles(), art)
		} else {
			require.ErrorIs(rt, err, entity.ErrInvalidValue)
			require.Equal(rt, 0, reg.Len())
		}
	})
}

func TestProperty_MagazineNameAlwaysValid(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		m := fixtures.NewTestMagazine(entity.NewRegistry())

		lengths := rapid.SliceOf(rapid.IntRange(0, 30)).Draw(rt, "nameLengths")
		for _, n := range lengths {
			prev := m.Name()
			candidate := fixtures.GenerateTitle(n)
			ok := m.SetName(candidate)

			valid := n >= entity.MinMagazineNameLength && n <= entity.MaxMagazineNameLength
			require.Equal(rt, valid, ok)
			if ok {
				require.Equal(rt, candidate, m.Name())
			} else {
				require.Equal(rt, prev, m.Name())
			}
			require.NoError(rt, entity.ValidateMagazineName(m.Name()))
		}
	})
}

func TestProperty_ContributingAuthorsExceedTwo(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		reg := entity.NewRegistry()
		vogue := fixtures.NewTestMagazine(reg)

		counts := rapid.SliceOfN(rapid.IntRange(0, 5), 1, 6).Draw(rt, "articlesPerAuthor")
		want := map[*entity.Author]bool{}
		for i, c := range counts {
			au := fixtures.NewTestAuthor(reg, fixtures.GenerateTitle(i+1))
			for j := 0; j < c; j++ {
				_, err := au.AddArticle(vogue, "How to Wear a Scarf")
				require.NoError(rt, err)
			}
			if c > 2 {
				want[au] = true
			}
		}

		got := vogue.ContributingAuthors()
		if len(want) == 0 {
			require.Nil(rt, got)
			return
		}
		require.Len(rt, got, len(want))
		for _, au := range got {
			require.True(rt, want[au])
		}
	})
}
