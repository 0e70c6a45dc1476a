package news

import (
	"context"
	"strings"

	"mashupapi/internal/entity"
	"mashupapi/internal/platform/nytimes"
)

const resultLimit = 20

// articleBase is prepended to scheme-less multimedia URLs from the
// Article Search API.
const articleBase = "https://www.nytimes.com"

// Service turns NYT payloads into display records. Two modes: the
// most-viewed feed and free-text search.
type Service struct {
	feed Feed
}

func NewService(feed Feed) *Service {
	return &Service{feed: feed}
}

// MostViewed fetches the most-viewed articles of the last 7 days.
func (s *Service) MostViewed(ctx context.Context) ([]entity.DisplayRecord, error) {
	articles, err := s.feed.MostViewed(ctx)
	if err != nil {
		return nil, err
	}
	if len(articles) > resultLimit {
		articles = articles[:resultLimit]
	}

	records := make([]entity.DisplayRecord, 0, len(articles))
	for _, a := range articles {
		title := a.Title
		if title == "" {
			title = "No title"
		}
		records = append(records, entity.DisplayRecord{
			Title:       title,
			Subtitle:    subtitle(a.Byline, a.Section),
			Description: a.Abstract,
			ImageURL:    viewedImage(a.Media),
			Link:        a.URL,
			PublishedAt: a.PublishedDate,
		})
	}
	return records, nil
}

// Search queries the Article Search API for term.
func (s *Service) Search(ctx context.Context, term string) ([]entity.DisplayRecord, error) {
	docs, err := s.feed.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	if len(docs) > resultLimit {
		docs = docs[:resultLimit]
	}

	records := make([]entity.DisplayRecord, 0, len(docs))
	for _, d := range docs {
		title := string(d.Headline)
		if title == "" {
			title = "No title"
		}
		records = append(records, entity.DisplayRecord{
			Title:       title,
			Subtitle:    subtitle(string(d.Byline), d.SectionName),
			Description: d.Abstract,
			ImageURL:    searchImage(d.Multimedia),
			Link:        d.WebURL,
			PublishedAt: d.PubDate,
		})
	}
	return records, nil
}

func subtitle(byline, section string) string {
	switch {
	case byline != "" && section != "":
		return byline + " (" + section + ")"
	case byline != "":
		return byline
	default:
		return section
	}
}

// viewedImage scans the nested media-metadata entries, preferring the
// superJumbo rendition, then large, else the last entry seen (renditions
// are ordered smallest to largest).
func viewedImage(media []nytimes.Media) string {
	var large, last string
	for _, m := range media {
		for _, mm := range m.MediaMetadata {
			if mm.URL == "" {
				continue
			}
			switch mm.Format {
			case "superJumbo":
				return mm.URL
			case "large":
				if large == "" {
					large = mm.URL
				}
			}
			last = mm.URL
		}
	}
	if large != "" {
		return large
	}
	return last
}

// searchImage takes the first multimedia entry typed "image" and
// prepends the site origin when the URL has no scheme.
//
// TODO: check the relative-URL handling against the current Article
// Search schema; newer payloads may already return absolute URLs.
func searchImage(media []nytimes.Multimedia) string {
	for _, m := range media {
		if m.Type != "image" || m.URL == "" {
			continue
		}
		if strings.HasPrefix(m.URL, "http://") || strings.HasPrefix(m.URL, "https://") {
			return m.URL
		}
		if strings.HasPrefix(m.URL, "/") {
			return articleBase + m.URL
		}
		return articleBase + "/" + m.URL
	}
	return ""
}
