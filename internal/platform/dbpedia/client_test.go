package dbpedia

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mashupapi/internal/config"
	"mashupapi/internal/source"
)

func testClient(endpoint string) *Client {
	return NewClient(config.DBpedia{Endpoint: endpoint})
}

func TestSearchFilms(t *testing.T) {
	var gotQuery, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		gotAccept = r.Header.Get("Accept")
		_, _ = w.Write([]byte(`{"results":{"bindings":[
			{"subject":{"value":"http://dbpedia.org/resource/Dune_(2021_film)"},
			 "label":{"value":"Dune (2021 film)"},
			 "abstract":{"value":"A film about spice."}},
			{"subject":{"value":"http://dbpedia.org/resource/Dune_(1984_film)"},
			 "label":{"value":"Dune (1984 film)"}}
		]}}`))
	}))
	defer srv.Close()

	films, err := testClient(srv.URL).SearchFilms(context.Background(), "dune")
	require.NoError(t, err)
	require.Len(t, films, 2)
	assert.Equal(t, "Dune (2021 film)", films[0].Label)
	assert.Equal(t, "A film about spice.", films[0].Abstract)
	assert.Equal(t, "http://dbpedia.org/resource/Dune_(1984_film)", films[1].SubjectURI)
	assert.Empty(t, films[1].Abstract)

	assert.Contains(t, gotQuery, "dbo:Film")
	assert.Contains(t, gotQuery, `lcase("dune")`)
	assert.Contains(t, gotQuery, "LIMIT 10")
	assert.Equal(t, "application/sparql-results+json", gotAccept)
}

func TestSearchFilmsEmptyBindings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":{"bindings":[]}}`))
	}))
	defer srv.Close()

	films, err := testClient(srv.URL).SearchFilms(context.Background(), "nothing matches this")
	require.NoError(t, err)
	assert.Empty(t, films)
}

func TestSearchFilmsWrongShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"head":{"vars":[]}}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).SearchFilms(context.Background(), "dune")
	require.Error(t, err)
	assert.Equal(t, source.KindMalformed, source.KindOf(err))
}

func TestSearchFilmsUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("Virtuoso is busy"))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).SearchFilms(context.Background(), "dune")
	require.Error(t, err)
	assert.Equal(t, source.KindUpstream, source.KindOf(err))
}

func TestBuildFilmQueryEscaping(t *testing.T) {
	tests := []struct {
		name string
		term string
		want string
	}{
		{
			name: "single quote passes through safely",
			term: "O'Brien",
			want: `lcase("O'Brien")`,
		},
		{
			name: "double quote is escaped",
			term: `the "best" film`,
			want: `lcase("the \"best\" film")`,
		},
		{
			name: "backslash is escaped first",
			term: `back\slash`,
			want: `lcase("back\\slash")`,
		},
		{
			name: "term is trimmed",
			term: "  dune  ",
			want: `lcase("dune")`,
		},
		{
			name: "newline cannot break the literal",
			term: "a\nb",
			want: `lcase("a b")`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := BuildFilmQuery(tt.term)
			assert.Contains(t, q, tt.want)
			// The literal must stay on one line inside the FILTER.
			for _, line := range strings.Split(q, "\n") {
				if strings.Contains(line, "contains(lcase(?label)") {
					assert.Contains(t, line, "))")
				}
			}
		})
	}
}

func TestBuildFilmQueryIdempotent(t *testing.T) {
	assert.Equal(t, BuildFilmQuery("dune"), BuildFilmQuery("dune"))
}
