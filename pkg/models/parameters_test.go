package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResearchParameters_Normalize(t *testing.T) {
	p := &ResearchParameters{}
	p.Normalize()

	assert.Equal(t, 50, p.MaxSources)
	assert.Equal(t, ReportLengthMedium, p.ReportLength)
	assert.Equal(t, DepthStandard, p.Depth)
	assert.Equal(t, "en", p.Language)

	// Explicit values survive.
	p2 := &ResearchParameters{MaxSources: 10, Depth: DepthComprehensive}
	p2.Normalize()
	assert.Equal(t, 10, p2.MaxSources)
	assert.Equal(t, DepthComprehensive, p2.Depth)
}

func TestResearchParameters_Validate(t *testing.T) {
	valid := func() *ResearchParameters {
		p := &ResearchParameters{MaxSources: 10, MinSources: 3}
		p.Normalize()
		return p
	}

	tests := []struct {
		name    string
		mutate  func(*ResearchParameters)
		wantErr string
	}{
		{"valid", func(p *ResearchParameters) {}, ""},
		{"max sources too high", func(p *ResearchParameters) { p.MaxSources = 201 }, "max_sources"},
		{"max sources zero", func(p *ResearchParameters) { p.MaxSources = 0 }, "max_sources"},
		{"min exceeds max", func(p *ResearchParameters) { p.MinSources = 11 }, "min_sources"},
		{"negative min", func(p *ResearchParameters) { p.MinSources = -1 }, "min_sources"},
		{"bad report length", func(p *ResearchParameters) { p.ReportLength = "huge" }, "report_length"},
		{"bad depth", func(p *ResearchParameters) { p.Depth = "abyssal" }, "depth"},
		{"bad date range", func(p *ResearchParameters) { p.DateRange = "yesterday" }, "date_range"},
		{"good date range", func(p *ResearchParameters) { p.DateRange = "7d" }, ""},
		{"good date range months", func(p *ResearchParameters) { p.DateRange = "1m" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.mutate(p)
			err := p.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateTopic(t *testing.T) {
	assert.NoError(t, ValidateTopic("Impact of AI on healthcare diagnostics"))
	assert.Error(t, ValidateTopic("AI"))
	assert.Error(t, ValidateTopic("  a  "))
	assert.Error(t, ValidateTopic(strings.Repeat("x", 501)))
	assert.NoError(t, ValidateTopic(strings.Repeat("x", 500)))

	// Limits count runes, not bytes.
	assert.NoError(t, ValidateTopic(strings.Repeat("量", 500)))
	assert.Error(t, ValidateTopic(strings.Repeat("量", 501)))
	assert.NoError(t, ValidateTopic("量子電池"))
	assert.Error(t, ValidateTopic("電池"))
}
