package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invokeCitation(t *testing.T, args map[string]any) Result {
	t.Helper()
	tool := NewCitationTool()
	validated, err := validateArgs(tool.Info(), args)
	require.NoError(t, err)
	return tool.Invoke(context.Background(), validated)
}

func TestCitationTool_CreateFormats(t *testing.T) {
	source := map[string]any{
		"title":          "The State of Fusion Energy",
		"url":            "https://energy.example.com/fusion",
		"author":         "Ito",
		"published_date": "2023-06-01T00:00:00Z",
	}

	tests := []struct {
		format string
		want   string
	}{
		{"markdown", "[The State of Fusion Energy](https://energy.example.com/fusion)"},
		{"apa", "Ito (2023). The State of Fusion Energy. https://energy.example.com/fusion"},
		{"harvard", "Ito (2023) The State of Fusion Energy. Available at: https://energy.example.com/fusion"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			res := invokeCitation(t, map[string]any{"action": "create", "source": source, "format": tt.format})
			require.True(t, res.Success, "error: %s", res.Error)
			assert.Equal(t, tt.want, res.Output.(map[string]any)["citation"])
		})
	}
}

func TestCitationTool_CreateFallbacks(t *testing.T) {
	res := invokeCitation(t, map[string]any{
		"action": "create",
		"source": map[string]any{"url": "https://www.nature.example.org/article"},
		"format": "apa",
	})
	require.True(t, res.Success)
	citation := res.Output.(map[string]any)["citation"].(string)
	assert.Contains(t, citation, "nature.example.org")
	assert.Contains(t, citation, "(n.d.)")
}

func TestCitationTool_Extract(t *testing.T) {
	text := `Findings build on [a recent study](https://journals.test/study-1) and
[agency data](https://data.gov.test/report). The study ([a recent study](https://journals.test/study-1))
is cited twice but should appear once.`

	res := invokeCitation(t, map[string]any{"action": "extract", "text": text})
	require.True(t, res.Success)

	citations := res.Output.(map[string]any)["citations"].([]ExtractedCitation)
	require.Len(t, citations, 2)
	assert.Equal(t, "a recent study", citations[0].Text)
	assert.Equal(t, "https://journals.test/study-1", citations[0].URL)
	assert.Equal(t, "https://data.gov.test/report", citations[1].URL)
}

func TestCitationTool_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		res := invokeCitation(t, map[string]any{
			"action": "validate",
			"source": map[string]any{
				"title":          "T",
				"url":            "https://x.test/a",
				"published_date": "2024-01-15",
			},
		})
		require.True(t, res.Success)
		out := res.Output.(map[string]any)
		assert.Equal(t, true, out["valid"])
	})

	t.Run("problems reported", func(t *testing.T) {
		res := invokeCitation(t, map[string]any{
			"action": "validate",
			"source": map[string]any{
				"url":            "ftp://x.test/a",
				"published_date": "last tuesday",
			},
		})
		require.True(t, res.Success)
		out := res.Output.(map[string]any)
		assert.Equal(t, false, out["valid"])
		problems := out["problems"].([]string)
		assert.Len(t, problems, 3)
	})
}

func TestCitationTool_MissingInputs(t *testing.T) {
	res := invokeCitation(t, map[string]any{"action": "create"})
	assert.False(t, res.Success)

	res = invokeCitation(t, map[string]any{"action": "extract"})
	assert.False(t, res.Success)
}
