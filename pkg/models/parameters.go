// Package models defines the request/response types and shared domain
// constants used across services, queue, workflow, and the API layer.
package models

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ReportLength controls how long the written report should be.
type ReportLength string

// Valid report lengths.
const (
	ReportLengthShort         ReportLength = "short"
	ReportLengthMedium        ReportLength = "medium"
	ReportLengthLong          ReportLength = "long"
	ReportLengthComprehensive ReportLength = "comprehensive"
)

// ResearchDepth controls how aggressively the pipeline digs into sources.
type ResearchDepth string

// Valid research depths.
const (
	DepthSurface       ResearchDepth = "surface"
	DepthStandard      ResearchDepth = "standard"
	DepthComprehensive ResearchDepth = "comprehensive"
)

// ResearchParameters tune a research session. Zero values are filled in
// by Normalize; Validate rejects out-of-range combinations before any
// session row is created or job enqueued.
type ResearchParameters struct {
	MaxSources     int           `json:"max_sources,omitempty"`
	MinSources     int           `json:"min_sources,omitempty"`
	ReportLength   ReportLength  `json:"report_length,omitempty"`
	Depth          ResearchDepth `json:"depth,omitempty"`
	Language       string        `json:"language,omitempty"` // BCP-47
	AllowedDomains []string      `json:"allowed_domains,omitempty"`
	BlockedDomains []string      `json:"blocked_domains,omitempty"`
	DateRange      string        `json:"date_range,omitempty"` // "7d", "1m", "1y"
}

// Normalize fills defaults for unset fields. It does not clamp invalid
// values; Validate handles rejection.
func (p *ResearchParameters) Normalize() {
	if p.MaxSources == 0 {
		p.MaxSources = 50
	}
	if p.ReportLength == "" {
		p.ReportLength = ReportLengthMedium
	}
	if p.Depth == "" {
		p.Depth = DepthStandard
	}
	if p.Language == "" {
		p.Language = "en"
	}
}

// Validate checks the parameters after Normalize.
func (p *ResearchParameters) Validate() error {
	if p.MaxSources < 1 || p.MaxSources > 200 {
		return fmt.Errorf("max_sources must be between 1 and 200, got %d", p.MaxSources)
	}
	if p.MinSources < 0 {
		return fmt.Errorf("min_sources must not be negative, got %d", p.MinSources)
	}
	if p.MinSources > p.MaxSources {
		return fmt.Errorf("min_sources (%d) must not exceed max_sources (%d)", p.MinSources, p.MaxSources)
	}
	switch p.ReportLength {
	case ReportLengthShort, ReportLengthMedium, ReportLengthLong, ReportLengthComprehensive:
	default:
		return fmt.Errorf("invalid report_length %q", p.ReportLength)
	}
	switch p.Depth {
	case DepthSurface, DepthStandard, DepthComprehensive:
	default:
		return fmt.Errorf("invalid depth %q", p.Depth)
	}
	if p.DateRange != "" && !validDateRange(p.DateRange) {
		return fmt.Errorf("invalid date_range %q (want e.g. \"7d\", \"1m\", \"1y\")", p.DateRange)
	}
	return nil
}

// validDateRange accepts <number><d|w|m|y> shorthand.
func validDateRange(s string) bool {
	if len(s) < 2 {
		return false
	}
	unit := s[len(s)-1]
	switch unit {
	case 'd', 'w', 'm', 'y':
	default:
		return false
	}
	for _, r := range s[:len(s)-1] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ValidateTopic checks the free-text research topic. Length limits count
// characters, not bytes; multibyte topics are not penalized.
func ValidateTopic(topic string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(topic))
	if n < 3 {
		return fmt.Errorf("topic must be at least 3 characters")
	}
	if n > 500 {
		return fmt.Errorf("topic must be at most 500 characters, got %d", n)
	}
	return nil
}
