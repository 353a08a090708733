// Package agent implements the bounded LLM tool-call loop. An agent holds
// a role prompt, a tool allowlist, and bounded state; it runs until the
// model emits a final answer, the iteration budget runs out, a guard rail
// trips, or the session is cancelled.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/delverhq/delver/pkg/llm"
	"github.com/delverhq/delver/pkg/tools"
)

// Status is the terminal state of one agent execution.
type Status string

// Agent execution statuses.
const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// Config describes one agent: its role, tools, and budgets.
type Config struct {
	Name         string
	SystemPrompt string
	Tools        []string // allowlist of registry tool names
	Temperature  float64

	// MaxIterations bounds LLM round trips (default 100).
	MaxIterations int

	// MaxIdenticalCalls bounds consecutive tool calls with identical
	// arguments (default 3); one more aborts the agent.
	MaxIdenticalCalls int

	// OnToolResult, when set, observes every executed tool call. Used by
	// the workflow driver to emit progress events.
	OnToolResult func(toolName string, args map[string]any, result tools.Result)

	// Done, when set, is polled alongside cancellation. Reporting true
	// ends the agent with StatusCompleted without another model round
	// trip; the stage's goal is met regardless of what the model would
	// say next.
	Done func() bool
}

// Result is the outcome of one agent execution.
type Result struct {
	Status        Status
	FinalAnswer   string
	FailureReason string
	Iterations    int
	ToolCalls     int
	TokensUsed    int
}

// Runner executes agents against a tool registry.
type Runner struct {
	client   llm.Client
	registry *tools.Registry
	logger   *slog.Logger
}

// NewRunner creates an agent runner.
func NewRunner(client llm.Client, registry *tools.Registry, logger *slog.Logger) *Runner {
	return &Runner{
		client:   client,
		registry: registry,
		logger:   logger.With("component", "agent"),
	}
}

// Run executes one agent on a task. cancelled is polled between steps and
// after each tool call; when it reports true the agent stops after the
// in-flight call and returns StatusCancelled. cfg.Done is polled at the
// same points and ends the agent with StatusCompleted. Run returns an
// error only
// for infrastructure failures (LLM unreachable); agent-level failures come
// back as StatusFailed with a reason.
func (r *Runner) Run(ctx context.Context, cfg Config, task string, cancelled func() bool) (*Result, error) {
	maxIter := cfg.MaxIterations
	if maxIter <= 0 {
		maxIter = 100
	}
	maxIdentical := cfg.MaxIdenticalCalls
	if maxIdentical <= 0 {
		maxIdentical = 3
	}

	logger := r.logger.With("agent", cfg.Name)
	defs := r.registry.Defs(cfg.Tools...)

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: cfg.SystemPrompt},
		{Role: llm.RoleUser, Content: task},
	}

	res := &Result{}
	var lastCallKey string
	identicalRun := 0
	schemaErrors := 0

	for iter := 1; iter <= maxIter; iter++ {
		res.Iterations = iter

		if cancelled() {
			res.Status = StatusCancelled
			return res, nil
		}
		if cfg.Done != nil && cfg.Done() {
			res.Status = StatusCompleted
			logger.Info("agent goal reached",
				"iterations", res.Iterations,
				"tool_calls", res.ToolCalls)
			return res, nil
		}

		completion, err := r.client.Complete(ctx, messages, llm.Options{
			Temperature: cfg.Temperature,
			Tools:       defs,
		})
		if err != nil {
			if ctx.Err() != nil && cancelled() {
				res.Status = StatusCancelled
				return res, nil
			}
			return nil, fmt.Errorf("agent %s: completion failed: %w", cfg.Name, err)
		}
		res.TokensUsed += completion.Usage.TotalTokens

		if len(completion.ToolCalls) == 0 {
			res.Status = StatusCompleted
			res.FinalAnswer = completion.Text
			logger.Info("agent completed",
				"iterations", res.Iterations,
				"tool_calls", res.ToolCalls,
				"tokens", res.TokensUsed)
			return res, nil
		}

		messages = append(messages, llm.Message{
			Role:      llm.RoleAssistant,
			Content:   completion.Text,
			ToolCalls: completion.ToolCalls,
		})

		for _, call := range completion.ToolCalls {
			key := call.Function.Name + "\x00" + canonicalArgs(call.Function.Arguments)
			if key == lastCallKey {
				identicalRun++
			} else {
				identicalRun = 1
				lastCallKey = key
			}
			if identicalRun > maxIdentical {
				res.Status = StatusFailed
				res.FailureReason = fmt.Sprintf("tool %s called %d times in a row with identical arguments", call.Function.Name, identicalRun)
				logger.Warn("agent aborted on repeated tool call", "tool", call.Function.Name)
				return res, nil
			}

			toolRes := r.registry.Invoke(ctx, call.Function.Name, json.RawMessage(call.Function.Arguments))
			res.ToolCalls++

			if toolRes.IsSchemaError() {
				schemaErrors++
				if schemaErrors > 1 {
					res.Status = StatusFailed
					res.FailureReason = fmt.Sprintf("repeated invalid tool arguments: %s", toolRes.Error)
					logger.Warn("agent aborted on repeated schema error", "tool", call.Function.Name)
					return res, nil
				}
			}

			if cfg.OnToolResult != nil && !toolRes.IsSchemaError() {
				var args map[string]any
				_ = json.Unmarshal([]byte(call.Function.Arguments), &args)
				cfg.OnToolResult(call.Function.Name, args, toolRes)
			}

			messages = append(messages, llm.Message{
				Role:       llm.RoleTool,
				Content:    toolRes.Observation(),
				ToolCallID: call.ID,
				Name:       call.Function.Name,
			})

			if cancelled() {
				res.Status = StatusCancelled
				return res, nil
			}
			if cfg.Done != nil && cfg.Done() {
				res.Status = StatusCompleted
				logger.Info("agent goal reached",
					"iterations", res.Iterations,
					"tool_calls", res.ToolCalls)
				return res, nil
			}
		}
	}

	res.Status = StatusFailed
	res.FailureReason = fmt.Sprintf("iteration budget of %d exhausted", maxIter)
	logger.Warn("agent exhausted iteration budget", "tool_calls", res.ToolCalls)
	return res, nil
}

// canonicalArgs re-marshals argument JSON with sorted keys so formatting
// differences don't defeat the identical-call guard.
func canonicalArgs(raw string) string {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	out, err := json.Marshal(v)
	if err != nil {
		return raw
	}
	return string(out)
}
