package music

import (
	"context"

	"mashupapi/internal/platform/youtube"
)

// PlaylistSource is the slice of the YouTube client the music page needs.
type PlaylistSource interface {
	PlaylistItems(ctx context.Context, playlistID string, maxResults int) ([]youtube.PlaylistItem, error)
}
