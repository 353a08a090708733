package models

import "time"

// SessionView is the API representation of a research session.
type SessionView struct {
	ID           string              `json:"id"`
	UserID       string              `json:"user_id"`
	Topic        string              `json:"topic"`
	Status       string              `json:"status"`
	Parameters   *ResearchParameters `json:"parameters,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	StartedAt    *time.Time          `json:"started_at,omitempty"`
	CompletedAt  *time.Time          `json:"completed_at,omitempty"`
	ErrorMessage string              `json:"error_message,omitempty"`
	ReportID     string              `json:"report_id,omitempty"`
	RetriedFrom  string              `json:"retried_from,omitempty"`
}

// ReportView is the API representation of a report.
type ReportView struct {
	ID          string         `json:"id"`
	SessionID   string         `json:"session_id"`
	Content     string         `json:"content"`
	Summary     string         `json:"summary"`
	KeyFindings []string       `json:"keyFindings"`
	WordCount   int            `json:"word_count"`
	Citations   []CitationView `json:"citations,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// CitationView is the API representation of a citation.
type CitationView struct {
	ID       string `json:"id"`
	SourceID string `json:"source_id,omitempty"`
	Quote    string `json:"quote"`
	Context  string `json:"context,omitempty"`
	Position int    `json:"position"`
	URL      string `json:"url,omitempty"`
}

// SourceView is the API representation of a source.
type SourceView struct {
	ID             string    `json:"id"`
	URL            string    `json:"url"`
	Title          string    `json:"title"`
	Summary        string    `json:"summary,omitempty"`
	RelevanceScore float64   `json:"relevance_score"`
	AccessedAt     time.Time `json:"accessed_at"`
}

// SearchHistoryView is one entry in a user's search history.
type SearchHistoryView struct {
	ID          string    `json:"id"`
	Query       string    `json:"query"`
	ResultCount int       `json:"result_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserView is the API representation of a user account.
type UserView struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse carries a signed token after register/login.
type AuthResponse struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}
