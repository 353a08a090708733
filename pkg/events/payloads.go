package events

import "time"

// ProgressUpdate reports pipeline progress in [0,100].
type ProgressUpdate struct {
	BaseEvent
	Progress int    `json:"progress"`
	Stage    string `json:"stage"`
	Message  string `json:"message,omitempty"`
}

// NewProgressUpdate builds a progress_update event.
func NewProgressUpdate(sessionID string, progress int, stage, message string) *ProgressUpdate {
	return &ProgressUpdate{
		BaseEvent: base(TypeProgressUpdate, sessionID),
		Progress:  progress,
		Stage:     stage,
		Message:   message,
	}
}

// StatusChange reports a session status transition.
type StatusChange struct {
	BaseEvent
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// NewStatusChange builds a status_change event.
func NewStatusChange(sessionID, status, errorMessage string) *StatusChange {
	return &StatusChange{
		BaseEvent:    base(TypeStatusChange, sessionID),
		Status:       status,
		ErrorMessage: errorMessage,
	}
}

// SourceFound reports a source persisted during research.
type SourceFound struct {
	BaseEvent
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

// NewSourceFound builds a source_found event.
func NewSourceFound(sessionID, url, title string) *SourceFound {
	return &SourceFound{
		BaseEvent: base(TypeSourceFound, sessionID),
		URL:       url,
		Title:     title,
	}
}

// PartialReport carries an intermediate artifact from a pipeline stage.
type PartialReport struct {
	BaseEvent
	Stage   string `json:"stage"`
	Content string `json:"content"`
}

// NewPartialReport builds a partial_report event.
func NewPartialReport(sessionID, stage, content string) *PartialReport {
	return &PartialReport{
		BaseEvent: base(TypePartialReport, sessionID),
		Stage:     stage,
		Content:   content,
	}
}

// ResearchComplete announces the finished report.
type ResearchComplete struct {
	BaseEvent
	ReportID    string `json:"report_id"`
	WordCount   int    `json:"word_count"`
	SourceCount int    `json:"source_count"`
}

// NewResearchComplete builds a research_complete event.
func NewResearchComplete(sessionID, reportID string, wordCount, sourceCount int) *ResearchComplete {
	return &ResearchComplete{
		BaseEvent:   base(TypeResearchComplete, sessionID),
		ReportID:    reportID,
		WordCount:   wordCount,
		SourceCount: sourceCount,
	}
}

// ErrorEvent reports a session failure.
type ErrorEvent struct {
	BaseEvent
	Message string `json:"message"`
}

// NewErrorEvent builds an error event.
func NewErrorEvent(sessionID, message string) *ErrorEvent {
	return &ErrorEvent{
		BaseEvent: base(TypeError, sessionID),
		Message:   message,
	}
}

func base(t EventType, sessionID string) BaseEvent {
	return BaseEvent{Type: t, SessionID: sessionID, Timestamp: time.Now().UTC()}
}
