package sanity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mashupapi/internal/config"
	"mashupapi/internal/source"
)

func testConfig() config.Sanity {
	return config.Sanity{ProjectID: "abc123", Dataset: "production", APIVersion: "2023-01-01"}
}

func TestQueryBooks(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("query")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":[{"title":"Dune","number":1,"date":"2024-01-01","completed":true}]}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig())
	c.baseURL = srv.URL

	books, err := c.QueryBooks(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0].Title)
	assert.Equal(t, 1, books[0].Number)
	assert.Equal(t, "2024-01-01", books[0].Date)
	assert.True(t, books[0].Completed)

	assert.Equal(t, "/v2023-01-01/data/query/production", gotPath)
	assert.Contains(t, gotQuery, "_type == 'book'")
	assert.Contains(t, gotQuery, "[0...20]")
}

func TestQueryBooksUnlimitedOmitsSlice(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		_, _ = w.Write([]byte(`{"result":[]}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig())
	c.baseURL = srv.URL

	_, err := c.QueryBooks(context.Background(), 0)
	require.NoError(t, err)
	assert.NotContains(t, gotQuery, "[0...")
}

func TestQueryBooksNotConfigured(t *testing.T) {
	c := NewClient(config.Sanity{Dataset: "production", APIVersion: "2023-01-01"})

	_, err := c.QueryBooks(context.Background(), 20)
	require.Error(t, err)
	assert.Equal(t, source.KindNotConfigured, source.KindOf(err))
}

func TestQueryBooksUpstreamStatuses(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantKind source.Kind
	}{
		{name: "401", status: http.StatusUnauthorized, wantKind: source.KindUnauthorized},
		{name: "500", status: http.StatusInternalServerError, wantKind: source.KindUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("upstream says no"))
			}))
			defer srv.Close()

			c := NewClient(testConfig())
			c.baseURL = srv.URL

			_, err := c.QueryBooks(context.Background(), 20)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, source.KindOf(err))
		})
	}
}

func TestQueryBooksMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer srv.Close()

	c := NewClient(testConfig())
	c.baseURL = srv.URL

	_, err := c.QueryBooks(context.Background(), 20)
	require.Error(t, err)
	assert.Equal(t, source.KindMalformed, source.KindOf(err))
}

func TestQueryBooksEscapesGROQ(t *testing.T) {
	var rawQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"result":[]}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig())
	c.baseURL = srv.URL

	_, err := c.QueryBooks(context.Background(), 10)
	require.NoError(t, err)

	decoded, decErr := url.QueryUnescape(rawQuery)
	require.NoError(t, decErr)
	assert.Contains(t, decoded, "order(_createdAt desc)")
}
