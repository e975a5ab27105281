package report_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magazine-catalog/internal/catalog"
	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/report"
	"magazine-catalog/tests/fixtures"
)

func loadSample(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load(context.Background(), strings.NewReader(fixtures.SampleCatalogYAML), entity.NewRegistry())
	require.NoError(t, err)
	return cat
}

func TestBuild_SampleCatalog(t *testing.T) {
	got := report.Build(loadSample(t))

	want := report.Report{
		RegistrySize: 6,
		Authors: []report.AuthorSummary{
			{
				Name: "Jane Doe",
				Articles: []string{
					"How to Wear a Scarf",
					"Autumn Colour Palettes",
					"Street Style in Milan",
					"Wearable Tech Goes Mainstream",
				},
				Magazines:  []string{"Vogue", "Wired"},
				TopicAreas: []string{"Fashion", "Technology"},
			},
			{
				Name:       "John Roe",
				Articles:   []string{"The Return of Tailoring", "Shoes for Every Season"},
				Magazines:  []string{"Vogue"},
				TopicAreas: []string{"Fashion"},
			},
			{
				Name:       "Idle Writer",
				Articles:   []string{},
				Magazines:  []string{},
				TopicAreas: nil,
			},
		},
		Magazines: []report.MagazineSummary{
			{
				Name:     "Vogue",
				Category: "Fashion",
				ArticleTitles: []string{
					"How to Wear a Scarf",
					"Autumn Colour Palettes",
					"The Return of Tailoring",
					"Street Style in Milan",
					"Shoes for Every Season",
				},
				Contributors:        []string{"Jane Doe", "John Roe"},
				ContributingAuthors: []string{"Jane Doe"},
			},
			{
				Name:                "Wired",
				Category:            "Technology",
				ArticleTitles:       []string{"Wearable Tech Goes Mainstream"},
				Contributors:        []string{"Jane Doe"},
				ContributingAuthors: nil,
			},
			{
				Name:     "GQ",
				Category: "Fashion",
			},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_AbsentResultsEncodeAsNull(t *testing.T) {
	rep := report.Build(loadSample(t))

	data, err := json.Marshal(rep.Magazines[2])
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"name": "GQ",
		"category": "Fashion",
		"article_titles": null,
		"contributors": null,
		"contributing_authors": null
	}`, string(data))

	data, err = json.Marshal(rep.Authors[2])
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "Idle Writer",
		"articles": [],
		"magazines": [],
		"topic_areas": null
	}`, string(data))
}

func TestBuild_EmptyCatalog(t *testing.T) {
	cat, err := catalog.Load(context.Background(), strings.NewReader(""), entity.NewRegistry())
	require.NoError(t, err)

	rep := report.Build(cat)
	assert.Equal(t, 0, rep.RegistrySize)
	assert.NotNil(t, rep.Authors)
	assert.NotNil(t, rep.Magazines)
}
