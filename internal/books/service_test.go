package books

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mashupapi/internal/platform/sanity"
	"mashupapi/internal/source"
)

type fakeStore struct {
	books []sanity.Book
	err   error
	limit int
}

func (f *fakeStore) QueryBooks(ctx context.Context, limit int) ([]sanity.Book, error) {
	f.limit = limit
	return f.books, f.err
}

func TestListTransformsBooks(t *testing.T) {
	store := &fakeStore{books: []sanity.Book{
		{Title: "Dune", Number: 1, Date: "2024-01-01", Completed: true},
		{Title: "Dune Messiah", Number: 2, Date: "2024-03-15", Completed: false},
	}}
	svc := NewService(store)

	records, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Dune", records[0].Title)
	assert.Equal(t, "completed", records[0].Subtitle)
	assert.Equal(t, "01/01/2024", records[0].PublishedAt)
	assert.Equal(t, "Volume 1", records[0].Description)

	assert.Equal(t, "in progress", records[1].Subtitle)
	assert.Equal(t, "15/03/2024", records[1].PublishedAt)

	assert.Equal(t, 20, store.limit)
}

func TestListIsPureFunctionOfInput(t *testing.T) {
	store := &fakeStore{books: []sanity.Book{
		{Title: "Dune", Number: 1, Date: "2024-01-01", Completed: true},
	}}
	svc := NewService(store)

	first, err := svc.List(context.Background())
	require.NoError(t, err)
	second, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestListPropagatesSourceError(t *testing.T) {
	store := &fakeStore{err: source.NotConfigured("sanity", "SANITY_PROJECT_ID")}
	svc := NewService(store)

	_, err := svc.List(context.Background())
	require.Error(t, err)
	assert.Equal(t, source.KindNotConfigured, source.KindOf(err))
}

func TestListEmptyResult(t *testing.T) {
	svc := NewService(&fakeStore{})
	records, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NotNil(t, records)
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "valid date", in: "2024-03-15", want: "15/03/2024"},
		{name: "unparsable kept verbatim", in: "spring 2024", want: "spring 2024"},
		{name: "wrong separator kept verbatim", in: "2024/03/15", want: "2024/03/15"},
		{name: "empty stays empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(tt.in))
		})
	}
}

func TestMissingTitleFallsBack(t *testing.T) {
	svc := NewService(&fakeStore{books: []sanity.Book{{Date: "2024-01-01"}}})
	records, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "No title", records[0].Title)
}
