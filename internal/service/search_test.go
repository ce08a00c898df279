package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchEmptyQueryIsDistinctFromNoMatches(t *testing.T) {
	env := setupServices(t)

	result, err := env.search.Search(SearchRequest{Query: "   "})
	require.NoError(t, err)
	assert.True(t, result.EmptyQuery)
	assert.Zero(t, result.Total)

	result, err = env.search.Search(SearchRequest{Query: "quantum chromodynamics"})
	require.NoError(t, err)
	assert.False(t, result.EmptyQuery)
	assert.Zero(t, result.Total)
	assert.NotNil(t, result.Posts)
}

func TestSearchDefaultsToRelevance(t *testing.T) {
	env := setupServices(t)

	result, err := env.search.Search(SearchRequest{Query: "dialogue"})
	require.NoError(t, err)
	require.Equal(t, 1, result.Total)
	assert.Equal(t, "3", result.Posts[0].ID)
}

func TestSearchRejectsUnknownSort(t *testing.T) {
	env := setupServices(t)

	_, err := env.search.Search(SearchRequest{Query: "writing", Sort: "alphabetical"})
	assert.Error(t, err)
}

func TestSearchPopularSort(t *testing.T) {
	env := setupServices(t)

	result, err := env.search.Search(SearchRequest{Query: "writing", Sort: "popular"})
	require.NoError(t, err)
	require.NotZero(t, result.Total)
	for i := 1; i < len(result.Posts); i++ {
		assert.GreaterOrEqual(t, result.Posts[i-1].Views, result.Posts[i].Views)
	}
}

func TestDeepSearchFindsContentMatches(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	hits, err := env.search.Deep(ctx, "dialogue", 10)
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Equal(t, "3", hits[0].Post.ID)
	assert.Greater(t, hits[0].Score, 0.0)
}

func TestDeepSearchBlankQuery(t *testing.T) {
	env := setupServices(t)

	hits, err := env.search.Deep(context.Background(), "  ", 10)
	require.NoError(t, err)
	assert.Nil(t, hits)
}
