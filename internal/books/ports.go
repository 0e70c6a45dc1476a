package books

import (
	"context"

	"mashupapi/internal/platform/sanity"
)

// ContentStore is the slice of the Sanity client the books page needs.
type ContentStore interface {
	QueryBooks(ctx context.Context, limit int) ([]sanity.Book, error)
}
