package knowledge

import (
	"context"
	"strings"

	"mashupapi/internal/entity"
)

const abstractMax = 300

// State distinguishes a page that has not been searched yet from one
// that ran a search, so an empty term renders as a prompt rather than
// "no results".
type State string

const (
	StateIdle     State = "idle"
	StateResulted State = "resulted"
)

// Result is the outcome of one search-page request.
type Result struct {
	State   State
	Term    string
	Results []entity.KnowledgeResult
}

// Service runs film lookups against the knowledge graph.
type Service struct {
	films FilmSearcher
}

func NewService(films FilmSearcher) *Service {
	return &Service{films: films}
}

// Search looks up films whose label contains term. A blank term is not
// an error: the page simply has nothing to search for yet.
func (s *Service) Search(ctx context.Context, term string) (Result, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return Result{State: StateIdle}, nil
	}

	films, err := s.films.SearchFilms(ctx, term)
	if err != nil {
		return Result{}, err
	}

	results := make([]entity.KnowledgeResult, 0, len(films))
	for _, f := range films {
		label := f.Label
		if label == "" {
			label = "No label"
		}
		abstract := f.Abstract
		if abstract == "" {
			abstract = "No description available"
		} else if len(abstract) > abstractMax {
			abstract = abstract[:abstractMax] + "..."
		}
		results = append(results, entity.KnowledgeResult{
			SubjectURI: f.SubjectURI,
			Label:      label,
			Abstract:   abstract,
		})
	}
	return Result{State: StateResulted, Term: term, Results: results}, nil
}
