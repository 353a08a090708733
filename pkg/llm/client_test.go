package llm

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delverhq/delver/pkg/config"
)

func testClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.DefaultLLMConfig()
	cfg.BaseURL = srv.URL
	cfg.APIKey = "test-key"
	cfg.RetryBaseDelay = time.Millisecond

	c := NewHTTPClient(cfg, slog.New(slog.NewTextHandler(testWriter{t}, nil)))
	c.sleep = func(ctx context.Context, d time.Duration) error { return nil }
	return c
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func chatOK(content string, toolCalls ...ToolCall) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"choices": []map[string]any{{
				"message": map[string]any{
					"content":    content,
					"tool_calls": toolCalls,
				},
				"finish_reason": "stop",
			}},
			"usage": map[string]int{"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func TestComplete_Success(t *testing.T) {
	var gotAuth string
	var gotReq chatRequest
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		chatOK("hello there")(w, r)
	})

	got, err := c.Complete(context.Background(),
		[]Message{{Role: RoleUser, Content: "hi"}},
		Options{Model: "gpt-4o-mini", Temperature: 0.7})
	require.NoError(t, err)

	assert.Equal(t, "hello there", got.Text)
	assert.Empty(t, got.ToolCalls)
	assert.Equal(t, 15, got.Usage.TotalTokens)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "gpt-4o-mini", gotReq.Model)
	assert.InDelta(t, 0.7, gotReq.Temperature, 1e-9)
}

func TestComplete_ToolCalls(t *testing.T) {
	call := ToolCall{
		ID:   "call_1",
		Type: "function",
		Function: FunctionCall{
			Name:      "search_tool",
			Arguments: `{"query":"golang generics"}`,
		},
	}
	c := testClient(t, chatOK("", call))

	got, err := c.Complete(context.Background(),
		[]Message{{Role: RoleUser, Content: "search something"}}, Options{})
	require.NoError(t, err)

	require.Len(t, got.ToolCalls, 1)
	assert.Equal(t, "search_tool", got.ToolCalls[0].Function.Name)
	assert.JSONEq(t, `{"query":"golang generics"}`, got.ToolCalls[0].Function.Arguments)
}

func TestComplete_ToolsOnWire(t *testing.T) {
	var raw map[string]any
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		chatOK("done")(w, r)
	})

	_, err := c.Complete(context.Background(),
		[]Message{{Role: RoleUser, Content: "x"}},
		Options{Tools: []ToolDef{{
			Name:        "search_tool",
			Description: "search the web",
			Parameters:  json.RawMessage(`{"type":"object"}`),
		}}})
	require.NoError(t, err)

	tools, ok := raw["tools"].([]any)
	require.True(t, ok)
	require.Len(t, tools, 1)
	fn := tools[0].(map[string]any)["function"].(map[string]any)
	assert.Equal(t, "search_tool", fn["name"])
}

func TestComplete_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "upstream exploded", http.StatusBadGateway)
			return
		}
		chatOK("recovered")(w, r)
	})

	got, err := c.Complete(context.Background(),
		[]Message{{Role: RoleUser, Content: "x"}}, Options{})
	require.NoError(t, err)
	assert.Equal(t, "recovered", got.Text)
	assert.Equal(t, int32(3), calls.Load())
}

func TestComplete_RetriesRateLimit(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "slow down", http.StatusTooManyRequests)
			return
		}
		chatOK("ok")(w, r)
	})

	_, err := c.Complete(context.Background(),
		[]Message{{Role: RoleUser, Content: "x"}}, Options{})
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestComplete_NoRetryOnClientError(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad request", http.StatusBadRequest)
	})

	_, err := c.Complete(context.Background(),
		[]Message{{Role: RoleUser, Content: "x"}}, Options{})
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
	assert.Contains(t, err.Error(), "400")
}

func TestComplete_ExhaustsRetries(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "nope", http.StatusInternalServerError)
	})

	_, err := c.Complete(context.Background(),
		[]Message{{Role: RoleUser, Content: "x"}}, Options{})
	require.Error(t, err)
	assert.Equal(t, int32(3), calls.Load())
	assert.Contains(t, err.Error(), "after 3 attempts")
}

func TestComplete_ContextCancelled(t *testing.T) {
	c := testClient(t, chatOK("never seen"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Complete(ctx, []Message{{Role: RoleUser, Content: "x"}}, Options{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestComplete_EmptyChoices(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	_, err := c.Complete(context.Background(),
		[]Message{{Role: RoleUser, Content: "x"}}, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}
