package books

import (
	"context"
	"fmt"
	"time"

	"mashupapi/internal/entity"
	"mashupapi/internal/platform/sanity"
)

// pageLimit caps the books page.
const pageLimit = 20

const (
	StatusCompleted  = "completed"
	StatusInProgress = "in progress"
)

// Service turns content-store book documents into display records.
type Service struct {
	store ContentStore
}

func NewService(store ContentStore) *Service {
	return &Service{store: store}
}

// List fetches the newest books and normalizes them for display.
func (s *Service) List(ctx context.Context) ([]entity.DisplayRecord, error) {
	docs, err := s.store.QueryBooks(ctx, pageLimit)
	if err != nil {
		return nil, err
	}

	records := make([]entity.DisplayRecord, 0, len(docs))
	for _, d := range docs {
		records = append(records, toRecord(d))
	}
	return records, nil
}

func toRecord(b sanity.Book) entity.DisplayRecord {
	title := b.Title
	if title == "" {
		title = "No title"
	}

	rec := entity.DisplayRecord{
		Title:       title,
		Subtitle:    StatusLabel(b.Completed),
		PublishedAt: FormatDate(b.Date),
	}
	if b.Number > 0 {
		rec.Description = fmt.Sprintf("Volume %d", b.Number)
	}
	return rec
}

// StatusLabel renders the completion flag as its binary status label.
func StatusLabel(completed bool) string {
	if completed {
		return StatusCompleted
	}
	return StatusInProgress
}

// FormatDate converts a YYYY-MM-DD content-store date to DD/MM/YYYY.
// Anything that does not parse is returned unchanged: a bad date
// degrades one field, never the record.
func FormatDate(raw string) string {
	if raw == "" {
		return ""
	}
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return raw
	}
	return d.Format("02/01/2006")
}
