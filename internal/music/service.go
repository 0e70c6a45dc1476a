package music

import (
	"context"

	"mashupapi/internal/entity"
)

const (
	playlistLimit  = 50
	descriptionMax = 200
)

// Service turns playlist items into display records.
type Service struct {
	playlists PlaylistSource
}

func NewService(playlists PlaylistSource) *Service {
	return &Service{playlists: playlists}
}

// Playlist fetches up to 50 items of the given playlist.
func (s *Service) Playlist(ctx context.Context, playlistID string) ([]entity.DisplayRecord, error) {
	items, err := s.playlists.PlaylistItems(ctx, playlistID, playlistLimit)
	if err != nil {
		return nil, err
	}

	records := make([]entity.DisplayRecord, 0, len(items))
	for _, it := range items {
		sn := it.Snippet

		title := sn.Title
		if title == "" {
			title = "No title"
		}

		rec := entity.DisplayRecord{
			Title:       title,
			Subtitle:    sn.ChannelTitle,
			Description: truncate(sn.Description, descriptionMax),
			ImageURL:    sn.Thumbnails.BestURL(),
			PublishedAt: sn.PublishedAt,
		}
		if sn.ResourceID.VideoID != "" {
			rec.Link = "https://www.youtube.com/watch?v=" + sn.ResourceID.VideoID
		}
		records = append(records, rec)
	}
	return records, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
