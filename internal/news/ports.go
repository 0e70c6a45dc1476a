package news

import (
	"context"

	"mashupapi/internal/platform/nytimes"
)

// Feed is the slice of the NYT client the news page needs.
type Feed interface {
	MostViewed(ctx context.Context) ([]nytimes.ViewedArticle, error)
	Search(ctx context.Context, term string) ([]nytimes.SearchDoc, error)
}
