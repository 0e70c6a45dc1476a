package entity

// TimelineBucket is one bar of the monthly watch histogram. Month is a
// "YYYY-MM" label; buckets keep the order they were first seen in.
type TimelineBucket struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// BookStatus splits the book count for the status pie chart.
// Completed + InProgress always equals the books count.
type BookStatus struct {
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
}

// DashboardSnapshot is the full dashboard view model, recomputed from
// scratch on every request. Sources that failed contribute zero counts
// and empty series.
type DashboardSnapshot struct {
	MoviesCount    int              `json:"movies_count"`
	BooksCount     int              `json:"books_count"`
	BooksCompleted int              `json:"books_completed"`
	NewsCount      int              `json:"news_count"`
	MusicCount     int              `json:"music_count"`
	MovieTimeline  []TimelineBucket `json:"movie_timeline"`
	BookStatus     BookStatus       `json:"book_status"`
}
