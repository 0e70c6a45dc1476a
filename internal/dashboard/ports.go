package dashboard

import (
	"context"

	"mashupapi/internal/platform/nytimes"
	"mashupapi/internal/platform/sanity"
	"mashupapi/internal/platform/trakt"
	"mashupapi/internal/platform/youtube"
)

// The aggregator takes one narrow interface per upstream so a test can
// fail any subset of sources independently.

type WatchHistory interface {
	History(ctx context.Context, limit int) ([]trakt.HistoryItem, error)
}

type BookStore interface {
	QueryBooks(ctx context.Context, limit int) ([]sanity.Book, error)
}

type NewsFeed interface {
	MostViewed(ctx context.Context) ([]nytimes.ViewedArticle, error)
}

type PlaylistStore interface {
	PlaylistItems(ctx context.Context, playlistID string, maxResults int) ([]youtube.PlaylistItem, error)
}
