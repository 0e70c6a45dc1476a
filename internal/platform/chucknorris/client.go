// Package chucknorris feeds the banner widget. The banner always shows
// something: every failure mode maps to a fixed fallback line.
package chucknorris

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"mashupapi/internal/platform/fetch"
)

const src = "chucknorris"

const (
	// fallbackJoke is shown when the API answers but the value is empty.
	fallbackJoke = "Chuck Norris doesn't need jokes, jokes need Chuck Norris."
	// loadingJoke is shown on any non-200 response.
	loadingJoke = "Chuck Norris is loading..."
)

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    "https://api.chucknorris.io",
	}
}

type jokeResponse struct {
	Value string `json:"value"`
}

// RandomJoke never fails: network and decode problems degrade to
// banner-safe text.
func (c *Client) RandomJoke(ctx context.Context) string {
	resp, err := fetch.Do(ctx, c.httpClient, src, c.baseURL+"/jokes/random", nil)
	if err != nil {
		return fmt.Sprintf("Chuck Norris error: %v", err)
	}
	if resp.Status != http.StatusOK {
		return loadingJoke
	}

	var jr jokeResponse
	if err := fetch.DecodeJSON(src, resp.Body, &jr); err != nil || jr.Value == "" {
		return fallbackJoke
	}
	return jr.Value
}
