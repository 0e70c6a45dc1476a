package entity

// DisplayRecord is the normalized, presentation-ready unit derived from
// one upstream item. Every transformer produces these; optional fields
// stay empty when the source does not provide them.
type DisplayRecord struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Link        string `json:"link,omitempty"`
	PublishedAt string `json:"published_at,omitempty"`
}

// KnowledgeResult is one row of a knowledge-graph search response,
// in source response order.
type KnowledgeResult struct {
	SubjectURI string `json:"subject_uri"`
	Label      string `json:"label"`
	Abstract   string `json:"abstract,omitempty"`
}
