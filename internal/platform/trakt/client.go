// Package trakt talks to the Trakt.tv v2 API: a user's movie watch
// history and the public popular-movies list.
package trakt

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"mashupapi/internal/config"
	"mashupapi/internal/platform/fetch"
	"mashupapi/internal/source"
)

const src = "trakt"

type Client struct {
	httpClient *http.Client
	cfg        config.Trakt
	baseURL    string
}

func NewClient(cfg config.Trakt) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cfg:        cfg,
		baseURL:    "https://api.trakt.tv",
	}
}

type MovieIDs struct {
	Trakt int    `json:"trakt"`
	Slug  string `json:"slug"`
}

type Movie struct {
	Title    string   `json:"title"`
	Year     int      `json:"year"`
	Overview string   `json:"overview"`
	IDs      MovieIDs `json:"ids"`
}

// HistoryItem is one watch-history entry. WatchedAt is the raw ISO-8601
// timestamp as sent by the API; parsing happens in the transformer so a
// bad value degrades one record, not the request.
type HistoryItem struct {
	WatchedAt string `json:"watched_at"`
	Movie     Movie  `json:"movie"`
}

func (c *Client) headers() map[string]string {
	return map[string]string{
		"Content-Type":      "application/json",
		"trakt-api-version": "2",
		"trakt-api-key":     c.cfg.ClientID,
	}
}

// History fetches the configured user's most recent movie watches,
// newest first.
func (c *Client) History(ctx context.Context, limit int) ([]HistoryItem, error) {
	if !c.cfg.Configured() {
		return nil, source.NotConfigured(src, "TRAKT_USERNAME and TRAKT_CLIENT_ID")
	}

	u := fmt.Sprintf("%s/users/%s/history/movies?limit=%d",
		c.baseURL, url.PathEscape(c.cfg.Username), limit)

	resp, err := fetch.Do(ctx, c.httpClient, src, u, c.headers())
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		serr := source.FromStatus(src, resp.Status, resp.Body)
		if serr.Kind == source.KindNotFound {
			serr.Message = fmt.Sprintf("trakt user %q was not found", c.cfg.Username)
		}
		return nil, serr
	}

	var items []HistoryItem
	if err := fetch.DecodeJSON(src, resp.Body, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Popular fetches the public popular-movies list. Only the client id is
// required; the username plays no part here.
func (c *Client) Popular(ctx context.Context) ([]Movie, error) {
	if c.cfg.ClientID == "" {
		return nil, source.NotConfigured(src, "TRAKT_CLIENT_ID")
	}

	resp, err := fetch.Do(ctx, c.httpClient, src, c.baseURL+"/movies/popular", c.headers())
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, source.FromStatus(src, resp.Status, resp.Body)
	}

	var movies []Movie
	if err := fetch.DecodeJSON(src, resp.Body, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}
