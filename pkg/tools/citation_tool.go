package tools

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// markdownLink matches [text](url) inline links.
var markdownLink = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^)\s]+)\)`)

// citationFormats the format action accepts.
var citationFormats = []string{"apa", "mla", "chicago", "harvard", "markdown"}

// CitationTool creates, formats, extracts, and validates citations. Pure
// string manipulation, no external I/O; safe to retry.
type CitationTool struct{}

// NewCitationTool builds the citation tool.
func NewCitationTool() *CitationTool { return &CitationTool{} }

// Info implements Tool.
func (t *CitationTool) Info() Info {
	return Info{
		Name:        "citation_tool",
		Description: "Create or format a citation for a source, extract citations from text, or validate a citation's fields.",
		Params: []Param{
			{Name: "action", Type: "string", Required: true, Enum: []string{"create", "format", "extract", "validate"}},
			{Name: "source", Type: "object", Description: "Source fields: title, url, author, published_date"},
			{Name: "format", Type: "string", Default: "markdown", Enum: citationFormats},
			{Name: "text", Type: "string", Description: "Text to extract citations from"},
		},
	}
}

// Invoke implements Tool.
func (t *CitationTool) Invoke(_ context.Context, args map[string]any) Result {
	switch strArg(args, "action") {
	case "create", "format":
		src, ok := args["source"].(map[string]any)
		if !ok {
			return Errf("create/format requires a source object")
		}
		formatted, err := formatCitation(src, strArg(args, "format"))
		if err != nil {
			return Errf("%v", err)
		}
		return Ok(map[string]any{"citation": formatted})

	case "extract":
		text := strArg(args, "text")
		if text == "" {
			return Errf("extract requires text")
		}
		return Ok(map[string]any{"citations": extractCitations(text)})

	case "validate":
		src, ok := args["source"].(map[string]any)
		if !ok {
			return Errf("validate requires a source object")
		}
		problems := validateSource(src)
		return Ok(map[string]any{"valid": len(problems) == 0, "problems": problems})
	}
	return Errf("unreachable action")
}

// ExtractedCitation is one inline link pulled out of report text.
type ExtractedCitation struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// extractCitations finds [text](url) links in order of appearance,
// deduplicated by URL.
func extractCitations(text string) []ExtractedCitation {
	matches := markdownLink.FindAllStringSubmatch(text, -1)
	seen := make(map[string]bool, len(matches))
	out := make([]ExtractedCitation, 0, len(matches))
	for _, m := range matches {
		if seen[m[2]] {
			continue
		}
		seen[m[2]] = true
		out = append(out, ExtractedCitation{Text: m[1], URL: m[2]})
	}
	return out
}

func formatCitation(src map[string]any, format string) (string, error) {
	title, _ := src["title"].(string)
	rawURL, _ := src["url"].(string)
	author, _ := src["author"].(string)
	published, _ := src["published_date"].(string)

	if title == "" && rawURL == "" {
		return "", fmt.Errorf("source needs at least a title or url")
	}
	if title == "" {
		title = rawURL
	}
	year := citationYear(published)
	if author == "" {
		author = siteName(rawURL)
	}

	switch format {
	case "apa":
		return fmt.Sprintf("%s (%s). %s. %s", author, year, title, rawURL), nil
	case "mla":
		return fmt.Sprintf("%s. \"%s.\" %s, %s.", author, title, year, rawURL), nil
	case "chicago":
		return fmt.Sprintf("%s. \"%s.\" Accessed %s. %s.", author, title, time.Now().Format("January 2, 2006"), rawURL), nil
	case "harvard":
		return fmt.Sprintf("%s (%s) %s. Available at: %s", author, year, title, rawURL), nil
	case "markdown":
		if rawURL == "" {
			return title, nil
		}
		return fmt.Sprintf("[%s](%s)", title, rawURL), nil
	}
	return "", fmt.Errorf("unsupported format %q", format)
}

func validateSource(src map[string]any) []string {
	var problems []string
	title, _ := src["title"].(string)
	if strings.TrimSpace(title) == "" {
		problems = append(problems, "missing title")
	}
	rawURL, _ := src["url"].(string)
	if rawURL == "" {
		problems = append(problems, "missing url")
	} else if u, err := url.Parse(rawURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		problems = append(problems, "url is not a valid http(s) url")
	}
	if published, ok := src["published_date"].(string); ok && published != "" {
		if _, err := time.Parse(time.RFC3339, published); err != nil {
			if _, err := time.Parse("2006-01-02", published); err != nil {
				problems = append(problems, "published_date is not ISO-8601")
			}
		}
	}
	return problems
}

// citationYear pulls the year out of an ISO-8601 date, or "n.d." when
// absent.
func citationYear(published string) string {
	if len(published) >= 4 {
		if _, err := time.Parse("2006", published[:4]); err == nil {
			return published[:4]
		}
	}
	return "n.d."
}

// siteName derives a fallback author from the URL host.
func siteName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "Unknown"
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}
