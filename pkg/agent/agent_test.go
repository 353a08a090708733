package agent

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delverhq/delver/pkg/llm"
	"github.com/delverhq/delver/pkg/tools"
)

// scriptedLLM replays canned completions in order.
type scriptedLLM struct {
	script []llm.Completion
	calls  atomic.Int32
	seen   [][]llm.Message
}

func (s *scriptedLLM) Complete(_ context.Context, messages []llm.Message, _ llm.Options) (*llm.Completion, error) {
	s.seen = append(s.seen, messages)
	i := int(s.calls.Add(1)) - 1
	if i >= len(s.script) {
		return nil, fmt.Errorf("script exhausted at call %d", i+1)
	}
	c := s.script[i]
	return &c, nil
}

func toolCall(id, name, args string) llm.ToolCall {
	return llm.ToolCall{ID: id, Type: "function", Function: llm.FunctionCall{Name: name, Arguments: args}}
}

// countingTool records invocations and returns a fixed payload.
type countingTool struct {
	name  string
	calls atomic.Int32
}

func (c *countingTool) Info() tools.Info {
	return tools.Info{
		Name:        c.name,
		Description: "test tool",
		Params: []tools.Param{
			{Name: "q", Type: "string", Required: true},
		},
	}
}

func (c *countingTool) Invoke(_ context.Context, args map[string]any) tools.Result {
	c.calls.Add(1)
	return tools.Ok(map[string]any{"echo": args["q"]})
}

func never() bool { return false }

func newRunner(t *testing.T, client llm.Client, ts ...tools.Tool) *Runner {
	t.Helper()
	reg := tools.NewRegistry(slog.Default())
	reg.MustRegister(ts...)
	return NewRunner(client, reg, slog.Default())
}

func TestRun_FinalAnswerFirstTurn(t *testing.T) {
	client := &scriptedLLM{script: []llm.Completion{{Text: "the answer"}}}
	r := newRunner(t, client)

	res, err := r.Run(context.Background(), Config{Name: "research"}, "task", never)
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, res.Status)
	assert.Equal(t, "the answer", res.FinalAnswer)
	assert.Equal(t, 1, res.Iterations)
	assert.Zero(t, res.ToolCalls)
}

func TestRun_ToolCallThenAnswer(t *testing.T) {
	tool := &countingTool{name: "lookup"}
	client := &scriptedLLM{script: []llm.Completion{
		{ToolCalls: []llm.ToolCall{toolCall("c1", "lookup", `{"q":"hello"}`)}},
		{Text: "done"},
	}}
	r := newRunner(t, client, tool)

	var observed []string
	res, err := r.Run(context.Background(), Config{
		Name:  "research",
		Tools: []string{"lookup"},
		OnToolResult: func(name string, args map[string]any, result tools.Result) {
			observed = append(observed, name)
			assert.Equal(t, "hello", args["q"])
			assert.True(t, result.Success)
		},
	}, "task", never)
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, res.Status)
	assert.Equal(t, int32(1), tool.calls.Load())
	assert.Equal(t, 1, res.ToolCalls)
	assert.Equal(t, []string{"lookup"}, observed)

	// Second turn carries the assistant tool call and the observation.
	last := client.seen[1]
	require.Len(t, last, 4)
	assert.Equal(t, llm.RoleAssistant, last[2].Role)
	assert.Equal(t, llm.RoleTool, last[3].Role)
	assert.Equal(t, "c1", last[3].ToolCallID)
	assert.Contains(t, last[3].Content, `"echo":"hello"`)
}

func TestRun_IterationBudget(t *testing.T) {
	tool := &countingTool{name: "lookup"}
	// Model never stops calling the tool with fresh args.
	script := make([]llm.Completion, 5)
	for i := range script {
		script[i] = llm.Completion{ToolCalls: []llm.ToolCall{
			toolCall(fmt.Sprintf("c%d", i), "lookup", fmt.Sprintf(`{"q":"v%d"}`, i)),
		}}
	}
	client := &scriptedLLM{script: script}
	r := newRunner(t, client, tool)

	res, err := r.Run(context.Background(), Config{
		Name:          "research",
		Tools:         []string{"lookup"},
		MaxIterations: 5,
	}, "task", never)
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, res.Status)
	assert.Contains(t, res.FailureReason, "iteration budget")
	assert.Equal(t, 5, res.Iterations)
}

func TestRun_IdenticalCallGuard(t *testing.T) {
	tool := &countingTool{name: "lookup"}
	// Same args every time; key ordering and whitespace differ.
	variants := []string{
		`{"q":"same"}`,
		`{ "q" : "same" }`,
		`{"q":"same"}`,
		`{"q":"same"}`,
	}
	script := make([]llm.Completion, len(variants))
	for i, v := range variants {
		script[i] = llm.Completion{ToolCalls: []llm.ToolCall{toolCall(fmt.Sprintf("c%d", i), "lookup", v)}}
	}
	client := &scriptedLLM{script: script}
	r := newRunner(t, client, tool)

	res, err := r.Run(context.Background(), Config{
		Name:  "research",
		Tools: []string{"lookup"},
	}, "task", never)
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, res.Status)
	assert.Contains(t, res.FailureReason, "identical arguments")
	// The guard allows 3 executions and trips on the 4th attempt.
	assert.Equal(t, int32(3), tool.calls.Load())
}

func TestRun_SchemaErrorFedBackOnceThenAbort(t *testing.T) {
	tool := &countingTool{name: "lookup"}
	client := &scriptedLLM{script: []llm.Completion{
		{ToolCalls: []llm.ToolCall{toolCall("c1", "lookup", `{"wrong":"field"}`)}},
		{ToolCalls: []llm.ToolCall{toolCall("c2", "lookup", `{"still":"wrong"}`)}},
		{Text: "never reached"},
	}}
	r := newRunner(t, client, tool)

	res, err := r.Run(context.Background(), Config{
		Name:  "research",
		Tools: []string{"lookup"},
	}, "task", never)
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, res.Status)
	assert.Contains(t, res.FailureReason, "invalid tool arguments")
	assert.Zero(t, tool.calls.Load())
	// First schema error was fed back to the model as an observation.
	require.GreaterOrEqual(t, len(client.seen), 2)
	secondTurn := client.seen[1]
	assert.Contains(t, secondTurn[len(secondTurn)-1].Content, "unknown parameter")
}

func TestRun_SchemaErrorRecovery(t *testing.T) {
	tool := &countingTool{name: "lookup"}
	client := &scriptedLLM{script: []llm.Completion{
		{ToolCalls: []llm.ToolCall{toolCall("c1", "lookup", `{"wrong":"field"}`)}},
		{ToolCalls: []llm.ToolCall{toolCall("c2", "lookup", `{"q":"fixed"}`)}},
		{Text: "recovered"},
	}}
	r := newRunner(t, client, tool)

	res, err := r.Run(context.Background(), Config{Name: "a", Tools: []string{"lookup"}}, "task", never)
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, res.Status)
	assert.Equal(t, int32(1), tool.calls.Load())
}

func TestRun_DoneEndsAgentAfterToolCall(t *testing.T) {
	tool := &countingTool{name: "lookup"}
	client := &scriptedLLM{script: []llm.Completion{
		{ToolCalls: []llm.ToolCall{toolCall("c1", "lookup", `{"q":"v"}`)}},
		{Text: "never reached"},
	}}
	r := newRunner(t, client, tool)

	var goalMet atomic.Bool
	res, err := r.Run(context.Background(), Config{
		Name:  "a",
		Tools: []string{"lookup"},
		OnToolResult: func(string, map[string]any, tools.Result) {
			goalMet.Store(true)
		},
		Done: func() bool { return goalMet.Load() },
	}, "task", never)
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, res.Status)
	assert.Equal(t, 1, res.ToolCalls)
	assert.Equal(t, int32(1), client.calls.Load(), "no further round trip once the goal is met")
}

func TestRun_CancellationBetweenSteps(t *testing.T) {
	client := &scriptedLLM{script: []llm.Completion{{Text: "never"}}}
	r := newRunner(t, client)

	res, err := r.Run(context.Background(), Config{Name: "a"}, "task", func() bool { return true })
	require.NoError(t, err)

	assert.Equal(t, StatusCancelled, res.Status)
	assert.Zero(t, client.calls.Load(), "cancelled before any LLM call")
}

func TestRun_CancellationAfterToolCall(t *testing.T) {
	tool := &countingTool{name: "lookup"}
	client := &scriptedLLM{script: []llm.Completion{
		{ToolCalls: []llm.ToolCall{toolCall("c1", "lookup", `{"q":"v"}`)}},
		{Text: "never reached"},
	}}
	r := newRunner(t, client, tool)

	var flag atomic.Bool
	res, err := r.Run(context.Background(), Config{
		Name:  "a",
		Tools: []string{"lookup"},
		OnToolResult: func(string, map[string]any, tools.Result) {
			flag.Store(true) // cancel lands while the tool call is in flight
		},
	}, "task", func() bool { return flag.Load() })
	require.NoError(t, err)

	assert.Equal(t, StatusCancelled, res.Status)
	// The in-flight call completed; nothing further ran.
	assert.Equal(t, int32(1), tool.calls.Load())
	assert.Equal(t, int32(1), client.calls.Load())
}
