// Package dbpedia runs film searches against the public DBpedia SPARQL
// endpoint. The endpoint is slow (60s timeout) and occasionally
// unavailable, so requests go through a circuit breaker.
package dbpedia

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"mashupapi/internal/config"
	"mashupapi/internal/logging"
	"mashupapi/internal/metrics"
	"mashupapi/internal/platform/fetch"
	"mashupapi/internal/source"
)

const src = "dbpedia"

var errMissingResults = errors.New("response has no results object")

type Client struct {
	httpClient *http.Client
	endpoint   string
	cb         *gobreaker.CircuitBreaker[fetch.Response]
}

func NewClient(cfg config.DBpedia) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		endpoint:   cfg.Endpoint,
		cb:         newBreaker(),
	}
}

// binding values arrive as {"value": "..."} objects in the SPARQL JSON
// results format.
type bindingValue struct {
	Value string `json:"value"`
}

type binding struct {
	Subject  bindingValue `json:"subject"`
	Label    bindingValue `json:"label"`
	Abstract bindingValue `json:"abstract"`
}

// FilmResult is one matched film, in response order.
type FilmResult struct {
	SubjectURI string
	Label      string
	Abstract   string
}

type sparqlResponse struct {
	Results *struct {
		Bindings []binding `json:"bindings"`
	} `json:"results"`
}

// SearchFilms runs the fixed film query for term. The caller guarantees
// term is non-empty; escaping happens here.
func (c *Client) SearchFilms(ctx context.Context, term string) ([]FilmResult, error) {
	q := url.Values{}
	q.Set("query", BuildFilmQuery(term))
	q.Set("format", "application/sparql-results+json")
	u := c.endpoint + "?" + q.Encode()

	headers := map[string]string{"Accept": "application/sparql-results+json"}

	resp, err := c.cb.Execute(func() (fetch.Response, error) {
		return fetch.Do(ctx, c.httpClient, src, u, headers)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, &source.Error{
				Source:  src,
				Kind:    source.KindNetwork,
				Message: "dbpedia is temporarily unavailable, try again in a minute",
			}
		}
		return nil, err
	}
	if !resp.OK() {
		return nil, source.FromStatus(src, resp.Status, resp.Body)
	}

	var sr sparqlResponse
	if err := fetch.DecodeJSON(src, resp.Body, &sr); err != nil {
		return nil, err
	}
	// A 2xx body that decodes but lacks the results object is still the
	// wrong shape (e.g. an HTML error page served as 200).
	if sr.Results == nil {
		return nil, source.Malformed(src, errMissingResults)
	}

	films := make([]FilmResult, 0, len(sr.Results.Bindings))
	for _, b := range sr.Results.Bindings {
		films = append(films, FilmResult{
			SubjectURI: b.Subject.Value,
			Label:      b.Label.Value,
			Abstract:   b.Abstract.Value,
		})
	}
	return films, nil
}

// newBreaker opens the circuit after a 60%+ failure rate over at least
// 6 requests within a minute, and probes again two minutes later. A 60s
// client timeout makes every stuck request expensive, which is why this
// client gets a breaker and the fast sources do not.
func newBreaker() *gobreaker.CircuitBreaker[fetch.Response] {
	metrics.CircuitBreakerState.WithLabelValues(src).Set(0)

	return gobreaker.NewCircuitBreaker[fetch.Response](gobreaker.Settings{
		Name:        src,
		MaxRequests: 2,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 6 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state change")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})
}

func stateToFloat(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
