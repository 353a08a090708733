package models

// SourceDraft is a source collected during research, pending persistence
// alongside the final report.
type SourceDraft struct {
	URL            string  `json:"url"`
	Title          string  `json:"title,omitempty"`
	Snippet        string  `json:"snippet,omitempty"`
	Content        string  `json:"content,omitempty"`        // cleaned extracted text
	PublishedDate  string  `json:"published_date,omitempty"` // ISO-8601
	RelevanceScore float64 `json:"relevance_score,omitempty"`
}

// CitationDraft is one citation extracted from the final report. Positions
// are contiguous starting at 0.
type CitationDraft struct {
	Position int    `json:"position"`
	Text     string `json:"text"`
	URL      string `json:"url,omitempty"`
}

// ReportDraft is the parsed final report handed to the session store for
// transactional persistence.
type ReportDraft struct {
	Title       string          `json:"title"`
	Content     string          `json:"content"`
	Summary     string          `json:"summary"`
	KeyFindings []string        `json:"key_findings"`
	Sources     []SourceDraft   `json:"sources"`
	Citations   []CitationDraft `json:"citations"`
	WordCount   int             `json:"word_count"`
}
