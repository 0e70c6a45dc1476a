// Package nytimes covers the two New York Times APIs the news page uses:
// Most Popular (viewed, last 7 days) and Article Search.
package nytimes

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"mashupapi/internal/config"
	"mashupapi/internal/platform/fetch"
	"mashupapi/internal/source"
)

const src = "nytimes"

type Client struct {
	httpClient *http.Client
	cfg        config.NYTimes
	baseURL    string
	limiter    *rate.Limiter
}

func NewClient(cfg config.NYTimes) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cfg:        cfg,
		baseURL:    "https://api.nytimes.com",
		// The NYT developer tier allows 5 requests per minute bursts;
		// keep well under it.
		limiter: rate.NewLimiter(rate.Every(time.Second), 2),
	}
}

type MediaMetadata struct {
	URL    string `json:"url"`
	Format string `json:"format"`
}

type Media struct {
	MediaMetadata []MediaMetadata `json:"media-metadata"`
}

// ViewedArticle is one row of the most-viewed feed.
type ViewedArticle struct {
	Title         string  `json:"title"`
	Abstract      string  `json:"abstract"`
	Byline        string  `json:"byline"`
	Section       string  `json:"section"`
	PublishedDate string  `json:"published_date"`
	URL           string  `json:"url"`
	Media         []Media `json:"media"`
}

type viewedResponse struct {
	Results []ViewedArticle `json:"results"`
}

// MostViewed fetches the most-viewed articles of the last 7 days.
func (c *Client) MostViewed(ctx context.Context) ([]ViewedArticle, error) {
	if !c.cfg.Configured() {
		return nil, source.NotConfigured(src, "NYT_API_KEY")
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, source.Network(src, err)
	}

	u := c.baseURL + "/svc/mostpopular/v2/viewed/7.json?api-key=" + url.QueryEscape(c.cfg.APIKey)

	resp, err := fetch.Do(ctx, c.httpClient, src, u, nil)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, source.FromStatus(src, resp.Status, resp.Body)
	}

	var vr viewedResponse
	if err := fetch.DecodeJSON(src, resp.Body, &vr); err != nil {
		return nil, err
	}
	return vr.Results, nil
}

// Multimedia is one attachment of a search result document.
type Multimedia struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// SearchDoc is one Article Search result. Headline and Byline arrive as
// either a plain string or an object depending on document age; both are
// normalized to strings at decode time.
type SearchDoc struct {
	Headline    Headline     `json:"headline"`
	Byline      Byline       `json:"byline"`
	Abstract    string       `json:"abstract"`
	SectionName string       `json:"section_name"`
	PubDate     string       `json:"pub_date"`
	WebURL      string       `json:"web_url"`
	Multimedia  []Multimedia `json:"multimedia"`
}

type searchResponse struct {
	Response struct {
		Docs []SearchDoc `json:"docs"`
	} `json:"response"`
}

// Search queries the Article Search API, newest first, first page only.
func (c *Client) Search(ctx context.Context, term string) ([]SearchDoc, error) {
	if !c.cfg.Configured() {
		return nil, source.NotConfigured(src, "NYT_API_KEY")
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, source.Network(src, err)
	}

	q := url.Values{}
	q.Set("api-key", c.cfg.APIKey)
	q.Set("q", term)
	q.Set("sort", "newest")
	q.Set("page", "0")
	u := c.baseURL + "/svc/search/v2/articlesearch.json?" + q.Encode()

	resp, err := fetch.Do(ctx, c.httpClient, src, u, nil)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, source.FromStatus(src, resp.Status, resp.Body)
	}

	var sr searchResponse
	if err := fetch.DecodeJSON(src, resp.Body, &sr); err != nil {
		return nil, err
	}
	return sr.Response.Docs, nil
}
