// Package sanity queries the Sanity content store's GROQ endpoint for
// book-tracking records.
package sanity

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

const src = "sanity"

type Client struct {
	httpClient *http.Client
	cfg        config.Sanity
	baseURL    string // empty in production; tests point it at a fake server
}

func NewClient(cfg config.Sanity) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cfg:        cfg,
	}
}

// Book matches one result of the book GROQ query.
type Book struct {
	Title     string `json:"title"`
	Number    int    `json:"number"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

type queryResponse struct {
	Result []Book `json:"result"`
}

// QueryBooks fetches book documents ordered newest first. limit <= 0
// fetches the full set (the dashboard needs every record for the
// completion split).
func (c *Client) QueryBooks(ctx context.Context, limit int) ([]Book, error) {
	if !c.cfg.Configured() {
		return nil, source.NotConfigured(src, "SANITY_PROJECT_ID")
	}

	groq := "*[_type == 'book'] | order(_createdAt desc)"
	if limit > 0 {
		groq = fmt.Sprintf("%s [0...%d]", groq, limit)
	}

	base := c.baseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.api.sanity.io", c.cfg.ProjectID)
	}
	u := fmt.Sprintf("%s/v%s/data/query/%s?query=%s",
		base, c.cfg.APIVersion, c.cfg.Dataset, url.QueryEscape(groq))

	resp, err := fetch.Do(ctx, c.httpClient, src, u, nil)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, source.FromStatus(src, resp.Status, resp.Body)
	}

	var qr queryResponse
	if err := fetch.DecodeJSON(src, resp.Body, &qr); err != nil {
		return nil, err
	}
	return qr.Result, nil
}
