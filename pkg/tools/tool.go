// Package tools implements the schema-validated tool registry the agents
// call into. Every tool declares typed parameters; the registry rejects
// calls whose arguments fail validation and hands the error back to the
// agent, never to the user.
package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/delverhq/delver/pkg/llm"
)

// Param is one typed tool parameter.
type Param struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"` // string, integer, number, boolean, array, object
	Description string   `json:"description"`
	Required    bool     `json:"required"`
	Default     any      `json:"default,omitempty"`
	Enum        []string `json:"enum,omitempty"`
	Items       string   `json:"items,omitempty"` // element type for arrays
	Minimum     *float64 `json:"minimum,omitempty"`
	Maximum     *float64 `json:"maximum,omitempty"`
}

// Info is a tool's metadata, shown to the LLM as a function definition.
type Info struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Params      []Param `json:"parameters"`
}

// JSONSchema renders the parameters as a JSON Schema object for the
// OpenAI-compatible tools field.
func (i Info) JSONSchema() json.RawMessage {
	properties := map[string]any{}
	var required []string
	for _, p := range i.Params {
		prop := map[string]any{"type": p.Type}
		if p.Description != "" {
			prop["description"] = p.Description
		}
		if len(p.Enum) > 0 {
			prop["enum"] = p.Enum
		}
		if p.Items != "" {
			prop["items"] = map[string]any{"type": p.Items}
		}
		if p.Minimum != nil {
			prop["minimum"] = *p.Minimum
		}
		if p.Maximum != nil {
			prop["maximum"] = *p.Maximum
		}
		if p.Default != nil {
			prop["default"] = p.Default
		}
		properties[p.Name] = prop
		if p.Required {
			required = append(required, p.Name)
		}
	}
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	raw, _ := json.Marshal(schema)
	return raw
}

// Def converts the info into an LLM tool definition.
func (i Info) Def() llm.ToolDef {
	return llm.ToolDef{
		Name:        i.Name,
		Description: i.Description,
		Parameters:  i.JSONSchema(),
	}
}

// Result is a tool invocation outcome. Output must be JSON-serializable.
type Result struct {
	Success bool   `json:"success"`
	Output  any    `json:"output,omitempty"`
	Error   string `json:"error,omitempty"`

	// schemaError marks argument-validation failures so the agent runtime
	// can apply its feed-back-once rule. Not serialized.
	schemaError bool
}

// IsSchemaError reports whether the failure was argument validation.
func (r Result) IsSchemaError() bool { return r.schemaError }

// Ok wraps a successful output.
func Ok(output any) Result {
	return Result{Success: true, Output: output}
}

// Errf builds a failure result.
func Errf(format string, args ...any) Result {
	return Result{Error: fmt.Sprintf(format, args...)}
}

func schemaErrf(format string, args ...any) Result {
	return Result{Error: fmt.Sprintf(format, args...), schemaError: true}
}

// Observation renders the result as the JSON string appended to the agent
// transcript.
func (r Result) Observation() string {
	raw, err := json.Marshal(r)
	if err != nil {
		return fmt.Sprintf(`{"success":false,"error":"unserializable result: %v"}`, err)
	}
	return string(raw)
}

// Tool is the interface every tool implements. Invoke receives arguments
// already validated against the tool's schema, with defaults applied.
type Tool interface {
	Info() Info
	Invoke(ctx context.Context, args map[string]any) Result
}
