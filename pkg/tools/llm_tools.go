package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/delverhq/delver/pkg/llm"
)

// llmTool is the shared shape of the stateless LLM-backed tools: one
// prompt, one completion, no side effects, safe to retry.
type llmTool struct {
	info        Info
	client      llm.Client
	temperature float64
	buildPrompt func(args map[string]any) (system, user string)
	parse       func(text string) any
}

// Info implements Tool.
func (t *llmTool) Info() Info { return t.info }

// Invoke implements Tool.
func (t *llmTool) Invoke(ctx context.Context, args map[string]any) Result {
	system, user := t.buildPrompt(args)
	completion, err := t.client.Complete(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: user},
	}, llm.Options{Temperature: t.temperature})
	if err != nil {
		return Errf("%s failed: %v", t.info.Name, err)
	}
	if t.parse != nil {
		return Ok(t.parse(completion.Text))
	}
	return Ok(map[string]any{"result": completion.Text})
}

// NewAnalysisTool analyzes a block of content. Stateless.
func NewAnalysisTool(client llm.Client) Tool {
	return &llmTool{
		client:      client,
		temperature: 0.3,
		info: Info{
			Name:        "analysis_tool",
			Description: "Analyze content for patterns, contradictions, or confidence of claims.",
			Params: []Param{
				{Name: "content", Type: "string", Required: true},
				{Name: "analysis_type", Type: "string", Default: "general",
					Enum: []string{"general", "patterns", "contradictions", "confidence"}},
			},
		},
		buildPrompt: func(args map[string]any) (string, string) {
			kind := strArg(args, "analysis_type")
			system := "You are a rigorous research analyst. Analyze the provided content and respond with a structured analysis."
			user := fmt.Sprintf("Analysis type: %s\n\nContent:\n%s", kind, strArg(args, "content"))
			return system, user
		},
	}
}

// NewSummarizationTool condenses content. Stateless.
func NewSummarizationTool(client llm.Client) Tool {
	return &llmTool{
		client:      client,
		temperature: 0.3,
		info: Info{
			Name:        "summarization_tool",
			Description: "Summarize content to a target length and style.",
			Params: []Param{
				{Name: "content", Type: "string", Required: true},
				{Name: "summary_type", Type: "string", Default: "concise",
					Enum: []string{"concise", "detailed", "bullet_points"}},
				{Name: "max_length", Type: "integer", Default: 200, Minimum: ptr(20), Maximum: ptr(2000)},
			},
		},
		buildPrompt: func(args map[string]any) (string, string) {
			system := "You summarize research content faithfully without adding information."
			user := fmt.Sprintf("Produce a %s summary of at most %d words.\n\nContent:\n%s",
				strArg(args, "summary_type"), intArg(args, "max_length"), strArg(args, "content"))
			return system, user
		},
	}
}

// NewFactCheckTool assesses a claim against provided evidence. Stateless.
func NewFactCheckTool(client llm.Client) Tool {
	return &llmTool{
		client:      client,
		temperature: 0.1,
		info: Info{
			Name:        "fact_check_tool",
			Description: "Check a claim against the provided evidence and report a verdict with reasoning.",
			Params: []Param{
				{Name: "claim", Type: "string", Required: true},
				{Name: "evidence", Type: "string", Description: "Evidence text to check the claim against"},
			},
		},
		buildPrompt: func(args map[string]any) (string, string) {
			system := `You are a fact checker. Respond with JSON: {"verdict":"supported|refuted|insufficient_evidence","reasoning":"..."}`
			user := fmt.Sprintf("Claim: %s\n\nEvidence:\n%s", strArg(args, "claim"), strArg(args, "evidence"))
			return system, user
		},
		parse: func(text string) any {
			var out struct {
				Verdict   string `json:"verdict"`
				Reasoning string `json:"reasoning"`
			}
			if err := json.Unmarshal([]byte(extractJSON(text)), &out); err == nil && out.Verdict != "" {
				return map[string]any{"verdict": out.Verdict, "reasoning": out.Reasoning}
			}
			return map[string]any{"verdict": "insufficient_evidence", "reasoning": text}
		},
	}
}

// NewRelevanceScoringTool scores content relevance to a topic. Stateless.
func NewRelevanceScoringTool(client llm.Client) Tool {
	return &llmTool{
		client:      client,
		temperature: 0.1,
		info: Info{
			Name:        "relevance_scoring_tool",
			Description: "Score how relevant a piece of content is to the research topic, from 0 to 1.",
			Params: []Param{
				{Name: "content", Type: "string", Required: true},
				{Name: "topic", Type: "string", Required: true},
			},
		},
		buildPrompt: func(args map[string]any) (string, string) {
			system := `You rate relevance. Respond with JSON: {"score":0.0,"reasoning":"..."} where score is in [0,1].`
			user := fmt.Sprintf("Topic: %s\n\nContent:\n%s", strArg(args, "topic"), strArg(args, "content"))
			return system, user
		},
		parse: func(text string) any {
			var out struct {
				Score     float64 `json:"score"`
				Reasoning string  `json:"reasoning"`
			}
			if err := json.Unmarshal([]byte(extractJSON(text)), &out); err == nil {
				if out.Score < 0 {
					out.Score = 0
				}
				if out.Score > 1 {
					out.Score = 1
				}
				return map[string]any{"score": out.Score, "reasoning": out.Reasoning}
			}
			// Unscorable responses get the neutral default.
			return map[string]any{"score": 0.5, "reasoning": text}
		},
	}
}

// extractJSON pulls the first {...} block out of a completion; models often
// wrap JSON in prose or code fences.
func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return text
	}
	return text[start : end+1]
}
