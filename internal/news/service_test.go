package news

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mashupapi/internal/platform/nytimes"
	"mashupapi/internal/source"
)

type fakeFeed struct {
	viewed []nytimes.ViewedArticle
	docs   []nytimes.SearchDoc
	err    error
	term   string
}

func (f *fakeFeed) MostViewed(ctx context.Context) ([]nytimes.ViewedArticle, error) {
	return f.viewed, f.err
}

func (f *fakeFeed) Search(ctx context.Context, term string) ([]nytimes.SearchDoc, error) {
	f.term = term
	return f.docs, f.err
}

func TestMostViewed(t *testing.T) {
	feed := &fakeFeed{viewed: []nytimes.ViewedArticle{{
		Title:         "Big Story",
		Abstract:      "Something happened.",
		Byline:        "By Jane Doe",
		Section:       "World",
		PublishedDate: "2024-03-15",
		URL:           "https://www.nytimes.com/2024/03/15/world/big-story.html",
		Media: []nytimes.Media{{MediaMetadata: []nytimes.MediaMetadata{
			{URL: "thumb.jpg", Format: "Standard Thumbnail"},
			{URL: "large.jpg", Format: "large"},
			{URL: "jumbo.jpg", Format: "superJumbo"},
		}}},
	}}}
	svc := NewService(feed)

	records, err := svc.MostViewed(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "Big Story", records[0].Title)
	assert.Equal(t, "By Jane Doe (World)", records[0].Subtitle)
	assert.Equal(t, "Something happened.", records[0].Description)
	assert.Equal(t, "jumbo.jpg", records[0].ImageURL)
	assert.Equal(t, "https://www.nytimes.com/2024/03/15/world/big-story.html", records[0].Link)
	assert.Equal(t, "2024-03-15", records[0].PublishedAt)
}

func TestMostViewedCapsAtTwenty(t *testing.T) {
	feed := &fakeFeed{}
	for i := 0; i < 25; i++ {
		feed.viewed = append(feed.viewed, nytimes.ViewedArticle{Title: "A"})
	}
	records, err := NewService(feed).MostViewed(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 20)
}

func TestMostViewedPropagatesError(t *testing.T) {
	feed := &fakeFeed{err: source.NotConfigured("nytimes", "NYT_API_KEY")}
	_, err := NewService(feed).MostViewed(context.Background())
	require.Error(t, err)
	assert.Equal(t, source.KindNotConfigured, source.KindOf(err))
}

func TestSearch(t *testing.T) {
	feed := &fakeFeed{docs: []nytimes.SearchDoc{{
		Headline:    "Election Results",
		Byline:      "By John Smith",
		Abstract:    "The votes are in.",
		SectionName: "Politics",
		PubDate:     "2024-11-06T02:00:00+0000",
		WebURL:      "https://www.nytimes.com/2024/11/06/politics/results.html",
		Multimedia: []nytimes.Multimedia{
			{Type: "video", URL: "clip.mp4"},
			{Type: "image", URL: "images/2024/results.jpg"},
		},
	}}}
	svc := NewService(feed)

	records, err := svc.Search(context.Background(), "election")
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "election", feed.term)
	assert.Equal(t, "Election Results", records[0].Title)
	assert.Equal(t, "By John Smith (Politics)", records[0].Subtitle)
	assert.Equal(t, "https://www.nytimes.com/images/2024/results.jpg", records[0].ImageURL)
	assert.Equal(t, "https://www.nytimes.com/2024/11/06/politics/results.html", records[0].Link)
}

func TestSubtitle(t *testing.T) {
	tests := []struct {
		name    string
		byline  string
		section string
		want    string
	}{
		{"both", "By Jane Doe", "World", "By Jane Doe (World)"},
		{"byline only", "By Jane Doe", "", "By Jane Doe"},
		{"section only", "", "World", "World"},
		{"neither", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, subtitle(tt.byline, tt.section))
		})
	}
}

func TestViewedImageFallbacks(t *testing.T) {
	tests := []struct {
		name  string
		media []nytimes.Media
		want  string
	}{
		{
			"prefers superJumbo",
			[]nytimes.Media{{MediaMetadata: []nytimes.MediaMetadata{
				{URL: "l.jpg", Format: "large"},
				{URL: "sj.jpg", Format: "superJumbo"},
			}}},
			"sj.jpg",
		},
		{
			"falls back to large",
			[]nytimes.Media{{MediaMetadata: []nytimes.MediaMetadata{
				{URL: "thumb.jpg", Format: "Standard Thumbnail"},
				{URL: "l.jpg", Format: "large"},
			}}},
			"l.jpg",
		},
		{
			"last entry when no known format",
			[]nytimes.Media{{MediaMetadata: []nytimes.MediaMetadata{
				{URL: "a.jpg", Format: "mediumThreeByTwo210"},
				{URL: "b.jpg", Format: "mediumThreeByTwo440"},
			}}},
			"b.jpg",
		},
		{"no media", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, viewedImage(tt.media))
		})
	}
}

func TestSearchImage(t *testing.T) {
	tests := []struct {
		name  string
		media []nytimes.Multimedia
		want  string
	}{
		{
			"absolute URL kept",
			[]nytimes.Multimedia{{Type: "image", URL: "https://static01.nyt.com/a.jpg"}},
			"https://static01.nyt.com/a.jpg",
		},
		{
			"relative with leading slash",
			[]nytimes.Multimedia{{Type: "image", URL: "/images/a.jpg"}},
			"https://www.nytimes.com/images/a.jpg",
		},
		{
			"relative without leading slash",
			[]nytimes.Multimedia{{Type: "image", URL: "images/a.jpg"}},
			"https://www.nytimes.com/images/a.jpg",
		},
		{
			"skips non-image entries",
			[]nytimes.Multimedia{
				{Type: "video", URL: "clip.mp4"},
				{Type: "image", URL: "/a.jpg"},
			},
			"https://www.nytimes.com/a.jpg",
		},
		{"no image", []nytimes.Multimedia{{Type: "video", URL: "clip.mp4"}}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, searchImage(tt.media))
		})
	}
}

func TestSearchMissingHeadlineFallsBack(t *testing.T) {
	feed := &fakeFeed{docs: []nytimes.SearchDoc{{WebURL: "https://example.com"}}}
	records, err := NewService(feed).Search(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "No title", records[0].Title)
}

func TestSearchEmpty(t *testing.T) {
	records, err := NewService(&fakeFeed{}).Search(context.Background(), "nothing")
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NotNil(t, records)
}
