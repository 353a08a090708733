package tools

import (
	"fmt"
	"math"
)

// validateArgs checks args against the tool's parameter schema and returns
// a normalized copy with defaults applied. Unknown keys are rejected; an
// LLM inventing parameters is an argument error like any other.
func validateArgs(info Info, args map[string]any) (map[string]any, error) {
	byName := make(map[string]Param, len(info.Params))
	for _, p := range info.Params {
		byName[p.Name] = p
	}

	for key := range args {
		if _, ok := byName[key]; !ok {
			return nil, fmt.Errorf("unknown parameter %q", key)
		}
	}

	out := make(map[string]any, len(info.Params))
	for _, p := range info.Params {
		val, present := args[p.Name]
		if !present || val == nil {
			if p.Required {
				return nil, fmt.Errorf("missing required parameter %q", p.Name)
			}
			if p.Default != nil {
				out[p.Name] = p.Default
			}
			continue
		}

		norm, err := coerceValue(p, val)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", p.Name, err)
		}
		out[p.Name] = norm
	}
	return out, nil
}

// coerceValue checks one value against its parameter definition. Values
// arrive from json.Unmarshal, so numbers are float64.
func coerceValue(p Param, val any) (any, error) {
	switch p.Type {
	case "string":
		s, ok := val.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", val)
		}
		if len(p.Enum) > 0 && !contains(p.Enum, s) {
			return nil, fmt.Errorf("value %q not in %v", s, p.Enum)
		}
		return s, nil

	case "integer":
		f, ok := val.(float64)
		if !ok {
			return nil, fmt.Errorf("expected integer, got %T", val)
		}
		if f != math.Trunc(f) {
			return nil, fmt.Errorf("expected integer, got %v", f)
		}
		if err := checkBounds(p, f); err != nil {
			return nil, err
		}
		return int(f), nil

	case "number":
		f, ok := val.(float64)
		if !ok {
			return nil, fmt.Errorf("expected number, got %T", val)
		}
		if err := checkBounds(p, f); err != nil {
			return nil, err
		}
		return f, nil

	case "boolean":
		b, ok := val.(bool)
		if !ok {
			return nil, fmt.Errorf("expected boolean, got %T", val)
		}
		return b, nil

	case "array":
		arr, ok := val.([]any)
		if !ok {
			return nil, fmt.Errorf("expected array, got %T", val)
		}
		if p.Items != "" {
			itemParam := Param{Name: p.Name, Type: p.Items}
			for idx, item := range arr {
				if _, err := coerceValue(itemParam, item); err != nil {
					return nil, fmt.Errorf("element %d: %w", idx, err)
				}
			}
		}
		return arr, nil

	case "object":
		obj, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("expected object, got %T", val)
		}
		return obj, nil

	default:
		return nil, fmt.Errorf("unsupported schema type %q", p.Type)
	}
}

func checkBounds(p Param, f float64) error {
	if p.Minimum != nil && f < *p.Minimum {
		return fmt.Errorf("value %v below minimum %v", f, *p.Minimum)
	}
	if p.Maximum != nil && f > *p.Maximum {
		return fmt.Errorf("value %v above maximum %v", f, *p.Maximum)
	}
	return nil
}

func contains(xs []string, want string) bool {
	for _, x := range xs {
		if x == want {
			return true
		}
	}
	return false
}

// helpers for tools reading validated args

func strArg(args map[string]any, name string) string {
	s, _ := args[name].(string)
	return s
}

func intArg(args map[string]any, name string) int {
	switch v := args[name].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

func floatArg(args map[string]any, name string) float64 {
	switch v := args[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func boolArg(args map[string]any, name string) bool {
	b, _ := args[name].(bool)
	return b
}

func ptr(f float64) *float64 { return &f }
