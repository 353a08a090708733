package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invokeFormatter(t *testing.T, content map[string]any) Result {
	t.Helper()
	tool := NewReportFormatterTool()
	validated, err := validateArgs(tool.Info(), map[string]any{"content": content})
	require.NoError(t, err)
	return tool.Invoke(context.Background(), validated)
}

func TestReportFormatter_FullReport(t *testing.T) {
	res := invokeFormatter(t, map[string]any{
		"title":        "AI in Healthcare Diagnostics",
		"summary":      "Diagnostic AI systems now match specialists on narrow tasks.",
		"key_findings": []any{"Radiology leads adoption", "Regulation lags deployment"},
		"sections": []any{
			map[string]any{"heading": "Adoption", "content": "Hospitals report steady uptake."},
			map[string]any{"heading": "", "content": "dropped, no heading"},
		},
		"citations": []any{"[Study](https://j.test/1)", "[Review](https://j.test/2)"},
	})
	require.True(t, res.Success, "error: %s", res.Error)

	out := res.Output.(map[string]any)
	report := out["report"].(string)

	assert.True(t, strings.HasPrefix(report, "# AI in Healthcare Diagnostics"))
	assert.Contains(t, report, "## Executive Summary")
	assert.Contains(t, report, "## Key Findings")
	assert.Contains(t, report, "1. Radiology leads adoption")
	assert.Contains(t, report, "2. Regulation lags deployment")
	assert.Contains(t, report, "## Adoption")
	assert.NotContains(t, report, "dropped, no heading")
	assert.Contains(t, report, "## References")
	assert.Contains(t, report, "1. [Study](https://j.test/1)")
	assert.Greater(t, out["word_count"].(int), 10)
}

func TestReportFormatter_MandatoryHeadingsAlwaysPresent(t *testing.T) {
	res := invokeFormatter(t, map[string]any{
		"summary":      "Minimal.",
		"key_findings": []any{"One finding"},
	})
	require.True(t, res.Success)
	report := res.Output.(map[string]any)["report"].(string)
	assert.Contains(t, report, "## Executive Summary")
	assert.Contains(t, report, "## Key Findings")
}

func TestReportFormatter_RejectsMissingParts(t *testing.T) {
	res := invokeFormatter(t, map[string]any{"key_findings": []any{"f"}})
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "summary")

	res = invokeFormatter(t, map[string]any{"summary": "s"})
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "key_findings")
}
