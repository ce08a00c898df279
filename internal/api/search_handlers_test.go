package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/writermorphosis/writermorphosis-server/internal/service"
)

func TestSearch(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/search?q=dialogue")
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[service.SearchResult](t, resp.Body.Bytes())
	require.NotEmpty(t, envelope.Data.Posts)
	assert.Equal(t, "3", envelope.Data.Posts[0].ID)
	assert.False(t, envelope.Data.EmptyQuery)
}

func TestSearch_EmptyQuery(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/search?q=")
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[service.SearchResult](t, resp.Body.Bytes())
	assert.True(t, envelope.Data.EmptyQuery)
	assert.Zero(t, envelope.Data.Total)
}

func TestSearch_PopularSort(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/search?q=writing&sort=popular")
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[service.SearchResult](t, resp.Body.Bytes())
	posts := envelope.Data.Posts
	for i := 1; i < len(posts); i++ {
		assert.GreaterOrEqual(t, posts[i-1].Views, posts[i].Views)
	}
}

func TestSearch_BadSortRejected(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/search?q=writing&sort=upside-down")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestDeepSearch(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/search/deep?q=dialogue")
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[DeepSearchResponse](t, resp.Body.Bytes())
	require.NotEmpty(t, envelope.Data.Hits)
	assert.Equal(t, "3", envelope.Data.Hits[0].Post.ID)
	assert.Greater(t, envelope.Data.Hits[0].Score, 0.0)
}

func TestDeepSearch_NoMatches(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/search/deep?q=xyzzyplugh")
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[DeepSearchResponse](t, resp.Body.Bytes())
	assert.Zero(t, envelope.Data.Total)
}
