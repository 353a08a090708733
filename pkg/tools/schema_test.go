package tools

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testInfo = Info{
	Name:        "sample_tool",
	Description: "test fixture",
	Params: []Param{
		{Name: "query", Type: "string", Required: true},
		{Name: "max_results", Type: "integer", Default: 10, Minimum: ptr(1), Maximum: ptr(50)},
		{Name: "threshold", Type: "number", Minimum: ptr(0), Maximum: ptr(1)},
		{Name: "deep", Type: "boolean", Default: true},
		{Name: "mode", Type: "string", Enum: []string{"fast", "thorough"}},
		{Name: "tags", Type: "array", Items: "string"},
		{Name: "extra", Type: "object"},
	},
}

func TestValidateArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]any
		wantErr string
		check   func(t *testing.T, out map[string]any)
	}{
		{
			name: "defaults applied",
			args: map[string]any{"query": "x"},
			check: func(t *testing.T, out map[string]any) {
				assert.Equal(t, 10, out["max_results"])
				assert.Equal(t, true, out["deep"])
				assert.NotContains(t, out, "mode")
			},
		},
		{
			name:    "missing required",
			args:    map[string]any{"max_results": float64(5)},
			wantErr: `missing required parameter "query"`,
		},
		{
			name:    "unknown parameter",
			args:    map[string]any{"query": "x", "bogus": 1},
			wantErr: `unknown parameter "bogus"`,
		},
		{
			name: "integer coerced from json number",
			args: map[string]any{"query": "x", "max_results": float64(25)},
			check: func(t *testing.T, out map[string]any) {
				assert.Equal(t, 25, out["max_results"])
			},
		},
		{
			name:    "fractional integer rejected",
			args:    map[string]any{"query": "x", "max_results": 2.5},
			wantErr: "expected integer",
		},
		{
			name:    "above maximum",
			args:    map[string]any{"query": "x", "max_results": float64(51)},
			wantErr: "above maximum",
		},
		{
			name:    "below minimum",
			args:    map[string]any{"query": "x", "threshold": -0.1},
			wantErr: "below minimum",
		},
		{
			name:    "enum violation",
			args:    map[string]any{"query": "x", "mode": "lazy"},
			wantErr: "not in",
		},
		{
			name: "enum ok",
			args: map[string]any{"query": "x", "mode": "thorough"},
			check: func(t *testing.T, out map[string]any) {
				assert.Equal(t, "thorough", out["mode"])
			},
		},
		{
			name:    "wrong type for string",
			args:    map[string]any{"query": float64(5)},
			wantErr: "expected string",
		},
		{
			name:    "array element type",
			args:    map[string]any{"query": "x", "tags": []any{"a", float64(2)}},
			wantErr: "element 1",
		},
		{
			name: "array ok",
			args: map[string]any{"query": "x", "tags": []any{"a", "b"}},
			check: func(t *testing.T, out map[string]any) {
				assert.Equal(t, []any{"a", "b"}, out["tags"])
			},
		},
		{
			name: "object passes through",
			args: map[string]any{"query": "x", "extra": map[string]any{"k": "v"}},
			check: func(t *testing.T, out map[string]any) {
				assert.Equal(t, map[string]any{"k": "v"}, out["extra"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := validateArgs(testInfo, tt.args)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, out)
			}
		})
	}
}

type echoTool struct{ info Info }

func (e echoTool) Info() Info { return e.info }
func (e echoTool) Invoke(_ context.Context, args map[string]any) Result {
	return Ok(args)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(slog.Default())
	require.NoError(t, r.Register(echoTool{info: testInfo}))

	t.Run("duplicate rejected", func(t *testing.T) {
		require.Error(t, r.Register(echoTool{info: testInfo}))
	})

	t.Run("invoke validates", func(t *testing.T) {
		res := r.Invoke(context.Background(), "sample_tool", json.RawMessage(`{"query": 7}`))
		assert.False(t, res.Success)
		assert.True(t, res.IsSchemaError())
		assert.Contains(t, res.Error, "expected string")
	})

	t.Run("invoke applies defaults", func(t *testing.T) {
		res := r.Invoke(context.Background(), "sample_tool", json.RawMessage(`{"query":"hi"}`))
		require.True(t, res.Success)
		out := res.Output.(map[string]any)
		assert.Equal(t, 10, out["max_results"])
	})

	t.Run("unknown tool", func(t *testing.T) {
		res := r.Invoke(context.Background(), "nope", nil)
		assert.False(t, res.Success)
		assert.True(t, res.IsSchemaError())
	})

	t.Run("malformed args json", func(t *testing.T) {
		res := r.Invoke(context.Background(), "sample_tool", json.RawMessage(`{not json`))
		assert.False(t, res.Success)
		assert.True(t, res.IsSchemaError())
	})

	t.Run("defs preserve allowlist order", func(t *testing.T) {
		defs := r.Defs("sample_tool", "missing_tool")
		require.Len(t, defs, 1)
		assert.Equal(t, "sample_tool", defs[0].Name)
	})
}

func TestInfoJSONSchema(t *testing.T) {
	raw := testInfo.JSONSchema()
	var schema map[string]any
	require.NoError(t, json.Unmarshal(raw, &schema))

	assert.Equal(t, "object", schema["type"])
	props := schema["properties"].(map[string]any)
	assert.Contains(t, props, "query")
	mode := props["mode"].(map[string]any)
	assert.ElementsMatch(t, []any{"fast", "thorough"}, mode["enum"])
	required := schema["required"].([]any)
	assert.Equal(t, []any{"query"}, required)
}

func TestResultObservation(t *testing.T) {
	obs := Ok(map[string]any{"n": 1}).Observation()
	assert.JSONEq(t, `{"success":true,"output":{"n":1}}`, obs)

	obs = Errf("boom %d", 2).Observation()
	assert.JSONEq(t, `{"success":false,"error":"boom 2"}`, obs)
}
