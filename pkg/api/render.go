package api

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/delverhq/delver/pkg/models"
)

// Report render formats.
const (
	formatJSON     = "json"
	formatMarkdown = "markdown"
	formatHTML     = "html"
	formatText     = "text"
)

var (
	mdLink   = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)\)`)
	mdBold   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	mdItalic = regexp.MustCompile(`\*([^*]+)\*`)
)

// validFormat reports whether f is a supported render format.
func validFormat(f string) bool {
	switch f {
	case formatJSON, formatMarkdown, formatHTML, formatText:
		return true
	}
	return false
}

// renderReport converts the stored markdown into the requested format and
// returns the body plus its content type. The json format is handled by
// the caller with the regular envelope.
func renderReport(view *models.ReportView, format string) (body, contentType string) {
	switch format {
	case formatHTML:
		return renderHTML(view.Content), "text/html; charset=utf-8"
	case formatText:
		return renderText(view.Content), "text/plain; charset=utf-8"
	default:
		return view.Content, "text/markdown; charset=utf-8"
	}
}

// fileExtension maps a render format to a download extension.
func fileExtension(format string) string {
	switch format {
	case formatHTML:
		return "html"
	case formatText:
		return "txt"
	case formatJSON:
		return "json"
	default:
		return "md"
	}
}

// renderHTML converts report markdown to a minimal standalone HTML body.
// Only the constructs the writer stage emits are handled: headings, bold,
// italics, links, numbered lists, and paragraphs.
func renderHTML(markdown string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html><body>\n")

	inList := false
	closeList := func() {
		if inList {
			b.WriteString("</ol>\n")
			inList = false
		}
	}

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			closeList()
		case strings.HasPrefix(trimmed, "### "):
			closeList()
			fmt.Fprintf(&b, "<h3>%s</h3>\n", inlineHTML(trimmed[4:]))
		case strings.HasPrefix(trimmed, "## "):
			closeList()
			fmt.Fprintf(&b, "<h2>%s</h2>\n", inlineHTML(trimmed[3:]))
		case strings.HasPrefix(trimmed, "# "):
			closeList()
			fmt.Fprintf(&b, "<h1>%s</h1>\n", inlineHTML(trimmed[2:]))
		case numberedItem.MatchString(trimmed):
			if !inList {
				b.WriteString("<ol>\n")
				inList = true
			}
			item := numberedItem.FindStringSubmatch(trimmed)[1]
			fmt.Fprintf(&b, "<li>%s</li>\n", inlineHTML(item))
		default:
			closeList()
			fmt.Fprintf(&b, "<p>%s</p>\n", inlineHTML(trimmed))
		}
	}
	closeList()
	b.WriteString("</body></html>\n")
	return b.String()
}

// numberedItem matches "N. body" list entries.
var numberedItem = regexp.MustCompile(`^\d+\.\s+(.+)$`)

// inlineHTML escapes a line and converts inline markdown spans.
func inlineHTML(line string) string {
	// Escape first so link URLs and text stay safe; the regexes then run
	// over escaped text, which they tolerate since [, ], ( and ) survive
	// escaping unchanged.
	escaped := html.EscapeString(line)
	escaped = mdLink.ReplaceAllString(escaped, `<a href="$2">$1</a>`)
	escaped = mdBold.ReplaceAllString(escaped, "<strong>$1</strong>")
	escaped = mdItalic.ReplaceAllString(escaped, "<em>$1</em>")
	return escaped
}

// renderText strips markdown syntax, keeping link text with its URL.
func renderText(markdown string) string {
	var b strings.Builder
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimLeft(line, "# ")
		trimmed = mdLink.ReplaceAllString(trimmed, "$1 ($2)")
		trimmed = mdBold.ReplaceAllString(trimmed, "$1")
		trimmed = mdItalic.ReplaceAllString(trimmed, "$1")
		b.WriteString(trimmed)
		b.WriteString("\n")
	}
	return b.String()
}
