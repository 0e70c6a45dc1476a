package dashboard

import (
	"context"
	"sync"
	"time"

	"mashupapi/internal/entity"
	"mashupapi/internal/logging"
	"mashupapi/internal/platform/trakt"
)

const (
	sourceTimeout = 5 * time.Second

	// historyFetch is how many watches the snapshot counts over;
	// timelineSpan is how many of those feed the monthly histogram.
	historyFetch = 100
	timelineSpan = 20
)

// Service assembles the dashboard snapshot by fanning out to every
// upstream at once. A failed source logs a warning and contributes
// zeros; it never fails the snapshot.
type Service struct {
	movies     WatchHistory
	books      BookStore
	news       NewsFeed
	playlists  PlaylistStore
	playlistID string
}

func NewService(movies WatchHistory, books BookStore, news NewsFeed, playlists PlaylistStore, playlistID string) *Service {
	return &Service{
		movies:     movies,
		books:      books,
		news:       news,
		playlists:  playlists,
		playlistID: playlistID,
	}
}

// Aggregate fetches all sources concurrently, each under its own 5s
// deadline, and folds whatever succeeded into a snapshot.
func (s *Service) Aggregate(ctx context.Context) entity.DashboardSnapshot {
	snap := entity.DashboardSnapshot{
		MovieTimeline: []entity.TimelineBucket{},
	}

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		sctx, cancel := context.WithTimeout(ctx, sourceTimeout)
		defer cancel()

		items, err := s.movies.History(sctx, historyFetch)
		if err != nil {
			logging.Warn().Err(err).Str("source", "trakt").Msg("dashboard source failed")
			return
		}
		snap.MoviesCount = len(items)
		snap.MovieTimeline = buildTimeline(items)
	}()

	go func() {
		defer wg.Done()
		sctx, cancel := context.WithTimeout(ctx, sourceTimeout)
		defer cancel()

		books, err := s.books.QueryBooks(sctx, 0)
		if err != nil {
			logging.Warn().Err(err).Str("source", "sanity").Msg("dashboard source failed")
			return
		}
		snap.BooksCount = len(books)
		for _, b := range books {
			if b.Completed {
				snap.BookStatus.Completed++
			} else {
				snap.BookStatus.InProgress++
			}
		}
		snap.BooksCompleted = snap.BookStatus.Completed
	}()

	go func() {
		defer wg.Done()
		sctx, cancel := context.WithTimeout(ctx, sourceTimeout)
		defer cancel()

		articles, err := s.news.MostViewed(sctx)
		if err != nil {
			logging.Warn().Err(err).Str("source", "nytimes").Msg("dashboard source failed")
			return
		}
		snap.NewsCount = len(articles)
	}()

	go func() {
		defer wg.Done()
		sctx, cancel := context.WithTimeout(ctx, sourceTimeout)
		defer cancel()

		// The playlist endpoint only reports page sizes, not the playlist
		// total, so the tile always shows zero. The fetch stays in place
		// to surface credential problems in the logs.
		if _, err := s.playlists.PlaylistItems(sctx, s.playlistID, 1); err != nil {
			logging.Warn().Err(err).Str("source", "youtube").Msg("dashboard source failed")
		}
		snap.MusicCount = 0
	}()

	wg.Wait()
	return snap
}

// buildTimeline buckets the first timelineSpan watches by month,
// keeping first-seen order. History arrives newest first, so the
// buckets read newest month to oldest. Entries with an unparseable
// timestamp are skipped rather than bucketed under a bogus month.
func buildTimeline(items []trakt.HistoryItem) []entity.TimelineBucket {
	if len(items) > timelineSpan {
		items = items[:timelineSpan]
	}

	buckets := []entity.TimelineBucket{}
	index := make(map[string]int)
	for _, it := range items {
		ts, err := time.Parse(time.RFC3339, it.WatchedAt)
		if err != nil {
			continue
		}
		month := ts.Format("2006-01")
		if i, ok := index[month]; ok {
			buckets[i].Count++
			continue
		}
		index[month] = len(buckets)
		buckets = append(buckets, entity.TimelineBucket{Month: month, Count: 1})
	}
	return buckets
}
