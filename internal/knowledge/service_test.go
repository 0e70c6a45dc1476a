package knowledge

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mashupapi/internal/platform/dbpedia"
	"mashupapi/internal/source"
)

type fakeFilms struct {
	films  []dbpedia.FilmResult
	err    error
	term   string
	called bool
}

func (f *fakeFilms) SearchFilms(ctx context.Context, term string) ([]dbpedia.FilmResult, error) {
	f.called = true
	f.term = term
	return f.films, f.err
}

func TestSearch(t *testing.T) {
	films := &fakeFilms{films: []dbpedia.FilmResult{{
		SubjectURI: "http://dbpedia.org/resource/Alien_(film)",
		Label:      "Alien (film)",
		Abstract:   "Alien is a 1979 science fiction horror film.",
	}}}
	svc := NewService(films)

	res, err := svc.Search(context.Background(), "alien")
	require.NoError(t, err)

	assert.Equal(t, StateResulted, res.State)
	assert.Equal(t, "alien", res.Term)
	require.Len(t, res.Results, 1)
	assert.Equal(t, "http://dbpedia.org/resource/Alien_(film)", res.Results[0].SubjectURI)
	assert.Equal(t, "Alien (film)", res.Results[0].Label)
	assert.Equal(t, "Alien is a 1979 science fiction horror film.", res.Results[0].Abstract)
}

func TestSearchBlankTermIsIdle(t *testing.T) {
	films := &fakeFilms{}
	svc := NewService(films)

	for _, term := range []string{"", "   ", "\t\n"} {
		res, err := svc.Search(context.Background(), term)
		require.NoError(t, err)
		assert.Equal(t, StateIdle, res.State)
		assert.Empty(t, res.Results)
	}
	assert.False(t, films.called, "blank term must not hit the endpoint")
}

func TestSearchTrimsTerm(t *testing.T) {
	films := &fakeFilms{}
	res, err := NewService(films).Search(context.Background(), "  alien  ")
	require.NoError(t, err)
	assert.Equal(t, "alien", films.term)
	assert.Equal(t, "alien", res.Term)
}

func TestSearchFallbacksAndTruncation(t *testing.T) {
	long := strings.Repeat("a", 350)
	films := &fakeFilms{films: []dbpedia.FilmResult{
		{SubjectURI: "uri-1"},
		{SubjectURI: "uri-2", Label: "Long", Abstract: long},
	}}

	res, err := NewService(films).Search(context.Background(), "x")
	require.NoError(t, err)
	require.Len(t, res.Results, 2)

	assert.Equal(t, "No label", res.Results[0].Label)
	assert.Equal(t, "No description available", res.Results[0].Abstract)
	assert.Equal(t, strings.Repeat("a", 300)+"...", res.Results[1].Abstract)
}

func TestSearchEmptyResultsIsStillResulted(t *testing.T) {
	res, err := NewService(&fakeFilms{}).Search(context.Background(), "zzz")
	require.NoError(t, err)
	assert.Equal(t, StateResulted, res.State)
	assert.NotNil(t, res.Results)
	assert.Empty(t, res.Results)
}

func TestSearchPropagatesError(t *testing.T) {
	films := &fakeFilms{err: &source.Error{Source: "dbpedia", Kind: source.KindNetwork, Message: "down"}}
	_, err := NewService(films).Search(context.Background(), "alien")
	require.Error(t, err)
	assert.Equal(t, source.KindNetwork, source.KindOf(err))
}
