package knowledge

import (
	"context"

	"mashupapi/internal/platform/dbpedia"
)

// FilmSearcher is the slice of the DBpedia client the search page needs.
type FilmSearcher interface {
	SearchFilms(ctx context.Context, term string) ([]dbpedia.FilmResult, error)
}
