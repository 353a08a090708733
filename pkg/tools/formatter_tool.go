package tools

import (
	"context"
	"fmt"
	"strings"
)

// ReportFormatterTool assembles the final markdown report from structured
// input. It always emits the Executive Summary and Key Findings headings
// the report contract requires. Pure string assembly; safe to retry.
type ReportFormatterTool struct{}

// NewReportFormatterTool builds the formatter tool.
func NewReportFormatterTool() *ReportFormatterTool { return &ReportFormatterTool{} }

// Info implements Tool.
func (t *ReportFormatterTool) Info() Info {
	return Info{
		Name:        "report_formatter_tool",
		Description: "Assemble the final markdown report from a title, executive summary, key findings, body sections, and citations.",
		Params: []Param{
			{Name: "content", Type: "object", Description: "Structured report: {title, summary, key_findings[], sections[{heading, content}], citations[]}", Required: true},
			{Name: "format", Type: "string", Default: "markdown", Enum: []string{"markdown"}},
			{Name: "style", Type: "string", Default: "report", Enum: []string{"report", "academic", "brief"}},
		},
	}
}

// Invoke implements Tool.
func (t *ReportFormatterTool) Invoke(_ context.Context, args map[string]any) Result {
	content, ok := args["content"].(map[string]any)
	if !ok {
		return Errf("content must be an object")
	}

	summary, _ := content["summary"].(string)
	if strings.TrimSpace(summary) == "" {
		return Errf("content.summary is required")
	}
	findings := stringList(content["key_findings"])
	if len(findings) == 0 {
		return Errf("content.key_findings must have at least one entry")
	}

	var sb strings.Builder
	if title, _ := content["title"].(string); strings.TrimSpace(title) != "" {
		fmt.Fprintf(&sb, "# %s\n\n", strings.TrimSpace(title))
	}

	sb.WriteString("## Executive Summary\n\n")
	sb.WriteString(strings.TrimSpace(summary))
	sb.WriteString("\n\n## Key Findings\n\n")
	// Numbered, matching the report contract's key-findings list shape.
	for i, f := range findings {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, f)
	}

	if sections, ok := content["sections"].([]any); ok {
		for _, raw := range sections {
			sec, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			heading, _ := sec["heading"].(string)
			body, _ := sec["content"].(string)
			if strings.TrimSpace(heading) == "" || strings.TrimSpace(body) == "" {
				continue
			}
			fmt.Fprintf(&sb, "\n## %s\n\n%s\n", strings.TrimSpace(heading), strings.TrimSpace(body))
		}
	}

	if citations := stringList(content["citations"]); len(citations) > 0 {
		sb.WriteString("\n## References\n\n")
		for i, c := range citations {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, c)
		}
	}

	report := sb.String()
	return Ok(map[string]any{
		"report":     report,
		"word_count": len(strings.Fields(report)),
	})
}

// stringList coerces a JSON array into its string elements.
func stringList(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}
