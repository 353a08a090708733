package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delverhq/delver/pkg/llm"
)

type scriptedLLM struct {
	responses []string
	calls     []llm.Options
	messages  [][]llm.Message
	err       error
}

func (s *scriptedLLM) Complete(_ context.Context, messages []llm.Message, opts llm.Options) (*llm.Completion, error) {
	s.calls = append(s.calls, opts)
	s.messages = append(s.messages, messages)
	if s.err != nil {
		return nil, s.err
	}
	idx := len(s.calls) - 1
	if idx >= len(s.responses) {
		idx = len(s.responses) - 1
	}
	return &llm.Completion{Text: s.responses[idx]}, nil
}

func invokeLLMTool(t *testing.T, tool Tool, args map[string]any) Result {
	t.Helper()
	validated, err := validateArgs(tool.Info(), args)
	require.NoError(t, err)
	return tool.Invoke(context.Background(), validated)
}

func TestAnalysisTool(t *testing.T) {
	client := &scriptedLLM{responses: []string{"Patterns: consistent growth across studies."}}
	tool := NewAnalysisTool(client)

	res := invokeLLMTool(t, tool, map[string]any{"content": "study data", "analysis_type": "patterns"})
	require.True(t, res.Success)
	out := res.Output.(map[string]any)
	assert.Contains(t, out["result"], "consistent growth")

	require.Len(t, client.messages, 1)
	assert.Contains(t, client.messages[0][1].Content, "patterns")
	assert.InDelta(t, 0.3, client.calls[0].Temperature, 1e-9)
}

func TestSummarizationTool_DefaultLength(t *testing.T) {
	client := &scriptedLLM{responses: []string{"A short summary."}}
	tool := NewSummarizationTool(client)

	res := invokeLLMTool(t, tool, map[string]any{"content": "long text"})
	require.True(t, res.Success)
	assert.Contains(t, client.messages[0][1].Content, "at most 200 words")
	assert.Contains(t, client.messages[0][1].Content, "concise")
}

func TestFactCheckTool_ParsesVerdict(t *testing.T) {
	client := &scriptedLLM{responses: []string{
		"Here is my assessment:\n```json\n{\"verdict\":\"supported\",\"reasoning\":\"matches the evidence\"}\n```",
	}}
	tool := NewFactCheckTool(client)

	res := invokeLLMTool(t, tool, map[string]any{"claim": "X causes Y", "evidence": "study shows X causes Y"})
	require.True(t, res.Success)
	out := res.Output.(map[string]any)
	assert.Equal(t, "supported", out["verdict"])
	assert.Equal(t, "matches the evidence", out["reasoning"])
}

func TestFactCheckTool_UnparseableFallsBack(t *testing.T) {
	client := &scriptedLLM{responses: []string{"I cannot determine this."}}
	tool := NewFactCheckTool(client)

	res := invokeLLMTool(t, tool, map[string]any{"claim": "X"})
	require.True(t, res.Success)
	out := res.Output.(map[string]any)
	assert.Equal(t, "insufficient_evidence", out["verdict"])
}

func TestRelevanceScoringTool(t *testing.T) {
	t.Run("parses and clamps", func(t *testing.T) {
		client := &scriptedLLM{responses: []string{`{"score":1.4,"reasoning":"very relevant"}`}}
		tool := NewRelevanceScoringTool(client)

		res := invokeLLMTool(t, tool, map[string]any{"content": "c", "topic": "t"})
		require.True(t, res.Success)
		out := res.Output.(map[string]any)
		assert.Equal(t, 1.0, out["score"])
	})

	t.Run("unparseable defaults to neutral", func(t *testing.T) {
		client := &scriptedLLM{responses: []string{"somewhat relevant I suppose"}}
		tool := NewRelevanceScoringTool(client)

		res := invokeLLMTool(t, tool, map[string]any{"content": "c", "topic": "t"})
		require.True(t, res.Success)
		out := res.Output.(map[string]any)
		assert.Equal(t, 0.5, out["score"])
	})
}

func TestLLMTool_CompletionFailure(t *testing.T) {
	client := &scriptedLLM{err: assert.AnError}
	tool := NewAnalysisTool(client)

	res := invokeLLMTool(t, tool, map[string]any{"content": "c"})
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "analysis_tool failed")
}
