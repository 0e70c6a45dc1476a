package http

import (
	"context"

	"mashupapi/internal/entity"
	"mashupapi/internal/knowledge"
)

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

type BooksService interface {
	List(ctx context.Context) ([]entity.DisplayRecord, error)
}

type MoviesService interface {
	RecentlyWatched(ctx context.Context) ([]entity.DisplayRecord, error)
	Popular(ctx context.Context) ([]entity.DisplayRecord, error)
}

type MusicService interface {
	Playlist(ctx context.Context, playlistID string) ([]entity.DisplayRecord, error)
}

type NewsService interface {
	MostViewed(ctx context.Context) ([]entity.DisplayRecord, error)
	Search(ctx context.Context, term string) ([]entity.DisplayRecord, error)
}

type KnowledgeService interface {
	Search(ctx context.Context, term string) (knowledge.Result, error)
}

type DashboardService interface {
	Aggregate(ctx context.Context) entity.DashboardSnapshot
}

type JokeSource interface {
	RandomJoke(ctx context.Context) string
}
