package search

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "engine maintenance", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"query": "engine maintenance",
			"results": [
				{"title": "First", "url": "https://example.com/1", "content": "snippet one", "publishedDate": "2026-05-01"},
				{"title": "No URL", "url": "", "content": "dropped"},
				{"title": "Second", "url": "https://example.com/2", "content": "snippet two"},
				{"title": "Third", "url": "https://example.com/3", "content": "snippet three"}
			]
		}`)
	}))
	defer server.Close()

	c := NewClient(server.URL, 5*time.Second)
	require.True(t, c.Available())

	sources, err := c.Search(context.Background(), "engine maintenance", 2)
	require.NoError(t, err)
	require.Len(t, sources, 2, "results cap and empty-URL filtering")

	assert.Equal(t, "First", sources[0].Title)
	assert.Equal(t, "2026-05-01", sources[0].PublishedDate)
	assert.Equal(t, "Second", sources[1].Title)
}

func TestSearchUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, "upstream broke")
	}))
	defer server.Close()

	c := NewClient(server.URL, 5*time.Second)
	_, err := c.Search(context.Background(), "anything", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestSearchMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not json at all")
	}))
	defer server.Close()

	c := NewClient(server.URL, 5*time.Second)
	_, err := c.Search(context.Background(), "anything", 5)
	require.Error(t, err)
}

func TestAvailable(t *testing.T) {
	assert.False(t, NewClient("", time.Second).Available())
	assert.True(t, NewClient("http://localhost:8888", time.Second).Available())
}
