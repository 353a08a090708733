package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReport = `# Solid State Batteries in 2026

## Executive Summary
Solid state batteries are approaching commercial viability. Several
manufacturers have announced pilot production lines.

A second paragraph with an inline citation to [Toyota's announcement](https://example.com/toyota).

## Key Findings
1. **Energy density:** Prototypes exceed 400 Wh/kg in lab conditions.
2. **Manufacturing cost:** Costs remain 3x lithium-ion at pilot scale.
3. **Timeline:** Mass production is unlikely before 2028.

## Market Landscape
The market is led by a handful of players, per [industry analysis](https://example.com/analysis).

## References
1. [Toyota announcement](https://example.com/toyota)
2. [Industry analysis](https://example.com/analysis)
3. Offline interview with battery researchers
`

func TestValidateSkeleton(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		wantErr  string
	}{
		{name: "complete report", markdown: sampleReport},
		{
			name:     "missing executive summary",
			markdown: "# T\n## Key Findings\n1. **A:** b\n",
			wantErr:  "## Executive Summary",
		},
		{
			name:     "missing key findings",
			markdown: "# T\n## Executive Summary\ntext\n",
			wantErr:  "## Key Findings",
		},
		{
			name:     "missing both",
			markdown: "just prose",
			wantErr:  "## Executive Summary, ## Key Findings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSkeleton(tt.markdown)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseReport(t *testing.T) {
	draft := ParseReport(sampleReport)

	assert.Equal(t, "Solid State Batteries in 2026", draft.Title)
	assert.Contains(t, draft.Summary, "approaching commercial viability")
	assert.NotContains(t, draft.Summary, "Key Findings")

	require.Len(t, draft.KeyFindings, 3)
	assert.Equal(t, "**Energy density:** Prototypes exceed 400 Wh/kg in lab conditions.", draft.KeyFindings[0])

	assert.Equal(t, sampleReport, draft.Content)
	assert.Positive(t, draft.WordCount)
}

func TestParseReport_CitationsContiguousAndDeduplicated(t *testing.T) {
	draft := ParseReport(sampleReport)

	// Two linked references, one text-only reference. The inline links in
	// the body point at the same URLs and must not duplicate.
	require.Len(t, draft.Citations, 3)
	for i, c := range draft.Citations {
		assert.Equal(t, i, c.Position)
	}

	assert.Equal(t, "Toyota announcement", draft.Citations[0].Text)
	assert.Equal(t, "https://example.com/toyota", draft.Citations[0].URL)
	assert.Equal(t, "https://example.com/analysis", draft.Citations[1].URL)
	assert.Equal(t, "Offline interview with battery researchers", draft.Citations[2].Text)
	assert.Empty(t, draft.Citations[2].URL)
}

func TestParseReport_InlineLinksOnly(t *testing.T) {
	md := "# T\n## Executive Summary\nSee [a study](https://example.com/study).\n## Key Findings\n1. **F:** x\n"
	draft := ParseReport(md)

	require.Len(t, draft.Citations, 1)
	assert.Equal(t, 0, draft.Citations[0].Position)
	assert.Equal(t, "a study", draft.Citations[0].Text)
	assert.Equal(t, "https://example.com/study", draft.Citations[0].URL)
}

func TestParseReport_EmptySections(t *testing.T) {
	draft := ParseReport("no structure at all")
	assert.Empty(t, draft.Title)
	assert.Empty(t, draft.Summary)
	assert.Empty(t, draft.KeyFindings)
	assert.Empty(t, draft.Citations)
}
