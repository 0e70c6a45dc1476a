package movies

import (
	"context"

	"mashupapi/internal/platform/trakt"
)

// WatchSource is the slice of the Trakt client the movie pages need.
type WatchSource interface {
	History(ctx context.Context, limit int) ([]trakt.HistoryItem, error)
	Popular(ctx context.Context) ([]trakt.Movie, error)
}
