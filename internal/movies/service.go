package movies

import (
	"context"
	"fmt"
	"time"

	"mashupapi/internal/entity"
	"mashupapi/internal/platform/trakt"
)

const (
	historyLimit = 20
	popularLimit = 10
	overviewMax  = 200
)

// Service turns Trakt payloads into display records.
type Service struct {
	watch WatchSource
}

func NewService(watch WatchSource) *Service {
	return &Service{watch: watch}
}

// RecentlyWatched fetches the configured user's latest watches.
func (s *Service) RecentlyWatched(ctx context.Context) ([]entity.DisplayRecord, error) {
	items, err := s.watch.History(ctx, historyLimit)
	if err != nil {
		return nil, err
	}

	records := make([]entity.DisplayRecord, 0, len(items))
	for _, it := range items {
		rec := movieRecord(it.Movie)
		rec.PublishedAt = FormatWatchedAt(it.WatchedAt)
		records = append(records, rec)
	}
	return records, nil
}

// Popular fetches the public popular list, capped at 10.
func (s *Service) Popular(ctx context.Context) ([]entity.DisplayRecord, error) {
	all, err := s.watch.Popular(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) > popularLimit {
		all = all[:popularLimit]
	}

	records := make([]entity.DisplayRecord, 0, len(all))
	for _, m := range all {
		records = append(records, movieRecord(m))
	}
	return records, nil
}

func movieRecord(m trakt.Movie) entity.DisplayRecord {
	title := m.Title
	if title == "" {
		title = "No title"
	}
	if m.Year > 0 {
		title = fmt.Sprintf("%s (%d)", title, m.Year)
	}

	return entity.DisplayRecord{
		Title:       title,
		Description: truncate(m.Overview, overviewMax),
		Link:        traktLink(m.IDs),
	}
}

// traktLink prefers the slug URL, falling back to the numeric id.
func traktLink(ids trakt.MovieIDs) string {
	if ids.Slug != "" {
		return "https://trakt.tv/movies/" + ids.Slug
	}
	if ids.Trakt > 0 {
		return fmt.Sprintf("https://trakt.tv/movies/%d", ids.Trakt)
	}
	return ""
}

// FormatWatchedAt converts the ISO-8601 watch timestamp to local
// DD/MM/YYYY HH:MM. An unparsable value is kept verbatim.
func FormatWatchedAt(raw string) string {
	if raw == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.Local().Format("02/01/2006 15:04")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
