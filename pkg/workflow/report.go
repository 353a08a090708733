package workflow

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/delverhq/delver/pkg/models"
)

var (
	numberedItem = regexp.MustCompile(`^\s*\d+\.\s+(.+)$`)
	inlineLink   = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^)\s]+)\)`)
)

// ValidateSkeleton checks the mandatory report sections. A report without
// an Executive Summary or Key Findings section is rejected.
func ValidateSkeleton(markdown string) error {
	var missing []string
	if !hasHeading(markdown, "Executive Summary") {
		missing = append(missing, "## Executive Summary")
	}
	if !hasHeading(markdown, "Key Findings") {
		missing = append(missing, "## Key Findings")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing sections: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ParseReport extracts the structured report fields from final markdown:
// the Executive Summary text, the numbered Key Findings, and citations
// from the References section plus inline links. Citation positions are
// contiguous starting at 0.
func ParseReport(markdown string) *models.ReportDraft {
	draft := &models.ReportDraft{
		Content:   markdown,
		Title:     firstTitle(markdown),
		Summary:   strings.TrimSpace(sectionBody(markdown, "Executive Summary")),
		WordCount: len(strings.Fields(markdown)),
	}

	for _, line := range strings.Split(sectionBody(markdown, "Key Findings"), "\n") {
		if m := numberedItem.FindStringSubmatch(line); m != nil {
			draft.KeyFindings = append(draft.KeyFindings, strings.TrimSpace(m[1]))
		}
	}

	draft.Citations = extractCitations(markdown)
	return draft
}

// extractCitations collects numbered References entries first, then inline
// [text](url) links from the rest of the document. Entries are deduplicated
// by URL; text-only references are kept as uncited text.
func extractCitations(markdown string) []models.CitationDraft {
	var citations []models.CitationDraft
	seen := make(map[string]bool)

	add := func(text, url string) {
		if url != "" {
			if seen[url] {
				return
			}
			seen[url] = true
		}
		citations = append(citations, models.CitationDraft{
			Position: len(citations),
			Text:     strings.TrimSpace(text),
			URL:      url,
		})
	}

	references := sectionBody(markdown, "References")
	for _, line := range strings.Split(references, "\n") {
		m := numberedItem.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		entry := strings.TrimSpace(m[1])
		if link := inlineLink.FindStringSubmatch(entry); link != nil {
			// Replace the link syntax with its text so the citation reads
			// as plain prose.
			text := strings.TrimSpace(inlineLink.ReplaceAllString(entry, "$1"))
			add(text, link[2])
			continue
		}
		add(entry, "")
	}

	body := markdown
	if references != "" {
		body = strings.Replace(markdown, references, "", 1)
	}
	for _, link := range inlineLink.FindAllStringSubmatch(body, -1) {
		add(link[1], link[2])
	}

	return citations
}

// firstTitle returns the first top-level "# " heading.
func firstTitle(markdown string) string {
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, "# "))
		}
	}
	return ""
}

// hasHeading reports whether a "## name" heading exists.
func hasHeading(markdown, name string) bool {
	for _, line := range strings.Split(markdown, "\n") {
		if headingName(line) == strings.ToLower(name) {
			return true
		}
	}
	return false
}

// sectionBody returns the text between a "## name" heading and the next
// "#"-prefixed heading.
func sectionBody(markdown, name string) string {
	lines := strings.Split(markdown, "\n")
	var body []string
	inSection := false
	for _, line := range lines {
		if heading := headingName(line); heading != "" {
			if inSection {
				break
			}
			inSection = heading == strings.ToLower(name)
			continue
		}
		if inSection {
			if strings.HasPrefix(strings.TrimSpace(line), "# ") {
				break
			}
			body = append(body, line)
		}
	}
	return strings.Join(body, "\n")
}

// headingName returns the lowercased name of a "## " heading, or "".
func headingName(line string) string {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "## ") {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(trimmed, "## ")))
}
