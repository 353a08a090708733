package models

// StartResearchRequest is the body of POST /api/v1/research.
type StartResearchRequest struct {
	Topic      string             `json:"topic"`
	Parameters ResearchParameters `json:"parameters"`
}

// RegisterRequest is the body of POST /api/v1/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateSettingsRequest is the body of PUT /api/v1/settings.
type UpdateSettingsRequest struct {
	Preferences map[string]any `json:"preferences"`
}

// SessionFilter narrows session listings.
type SessionFilter struct {
	UserID string
	Status string
	Limit  int
	Offset int
}
