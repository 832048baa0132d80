package fetch

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

func TestFetchExtractsText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<html><body>
			<h1>Vessel Maintenance Guide</h1>
			<script>alert("stripped")</script>
			<p>Planned maintenance keeps machinery within class requirements.</p>
		</body></html>`)
	}))
	defer server.Close()

	f := NewFetcher(5 * time.Second)
	text, err := f.Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Contains(t, text, "Vessel Maintenance Guide")
	assert.Contains(t, text, "Planned maintenance keeps machinery")
	assert.NotContains(t, text, "alert(")
	assert.NotContains(t, text, "<p>")
}

func TestFetchNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	f := NewFetcher(5 * time.Second)
	_, err := f.Fetch(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestFetchSetsUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		fmt.Fprint(w, "<p>ok</p>")
	}))
	defer server.Close()

	f := NewFetcher(5 * time.Second)
	_, err := f.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Contains(t, gotUA, "Helmsman")
}
