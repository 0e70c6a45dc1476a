// Package youtube fetches playlist items from the YouTube Data API v3.
package youtube

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"mashupapi/internal/config"
	"mashupapi/internal/platform/fetch"
	"mashupapi/internal/source"
)

const src = "youtube"

type Client struct {
	httpClient *http.Client
	cfg        config.YouTube
	baseURL    string
}

func NewClient(cfg config.YouTube) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cfg:        cfg,
		baseURL:    "https://www.googleapis.com/youtube/v3",
	}
}

type Thumbnail struct {
	URL string `json:"url"`
}

type Thumbnails struct {
	Default Thumbnail `json:"default"`
	Medium  Thumbnail `json:"medium"`
	High    Thumbnail `json:"high"`
}

// BestURL picks the largest available rendition: high, then medium,
// then default. A playlist item with no thumbnails yields "".
func (t Thumbnails) BestURL() string {
	switch {
	case t.High.URL != "":
		return t.High.URL
	case t.Medium.URL != "":
		return t.Medium.URL
	default:
		return t.Default.URL
	}
}

type ResourceID struct {
	VideoID string `json:"videoId"`
}

type Snippet struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	ChannelTitle string     `json:"channelTitle"`
	PublishedAt  string     `json:"publishedAt"`
	Thumbnails   Thumbnails `json:"thumbnails"`
	ResourceID   ResourceID `json:"resourceId"`
}

type PlaylistItem struct {
	Snippet Snippet `json:"snippet"`
}

type playlistResponse struct {
	Items []PlaylistItem `json:"items"`
}

// PlaylistItems fetches up to maxResults items of the given playlist.
func (c *Client) PlaylistItems(ctx context.Context, playlistID string, maxResults int) ([]PlaylistItem, error) {
	if !c.cfg.Configured() {
		return nil, source.NotConfigured(src, "YOUTUBE_API_KEY")
	}

	q := url.Values{}
	q.Set("part", "snippet,contentDetails")
	q.Set("playlistId", playlistID)
	q.Set("maxResults", strconv.Itoa(maxResults))
	q.Set("key", c.cfg.APIKey)
	u := c.baseURL + "/playlistItems?" + q.Encode()

	resp, err := fetch.Do(ctx, c.httpClient, src, u, nil)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, source.FromStatus(src, resp.Status, resp.Body)
	}

	var pr playlistResponse
	if err := fetch.DecodeJSON(src, resp.Body, &pr); err != nil {
		return nil, err
	}
	return pr.Items, nil
}
