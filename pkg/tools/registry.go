package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/delverhq/delver/pkg/llm"
)

// Registry holds the tools available to agents. Agents see subsets of the
// registry via their allowlists; invocation always validates arguments
// before the tool runs.
type Registry struct {
	mu     sync.RWMutex
	tools  map[string]Tool
	logger *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		tools:  make(map[string]Tool),
		logger: logger.With("component", "tools"),
	}
}

// Register adds a tool. Duplicate names are an error.
func (r *Registry) Register(t Tool) error {
	name := t.Info().Name
	if name == "" {
		return fmt.Errorf("tool has empty name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("tool %q already registered", name)
	}
	r.tools[name] = t
	return nil
}

// MustRegister registers tools built at startup; a duplicate is a
// programming error.
func (r *Registry) MustRegister(ts ...Tool) {
	for _, t := range ts {
		if err := r.Register(t); err != nil {
			panic(err)
		}
	}
}

// Get returns a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// List returns all tool infos, sorted by name.
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()
	infos := make([]Info, 0, len(r.tools))
	for _, t := range r.tools {
		infos = append(infos, t.Info())
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// Defs returns LLM tool definitions for the named tools, preserving the
// allowlist order. Unknown names are skipped.
func (r *Registry) Defs(names ...string) []llm.ToolDef {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs := make([]llm.ToolDef, 0, len(names))
	for _, name := range names {
		if t, ok := r.tools[name]; ok {
			defs = append(defs, t.Info().Def())
		}
	}
	return defs
}

// Invoke validates rawArgs against the tool's schema and runs it. All
// failure modes come back as a structured Result for the agent transcript.
func (r *Registry) Invoke(ctx context.Context, name string, rawArgs json.RawMessage) Result {
	t, ok := r.Get(name)
	if !ok {
		return schemaErrf("unknown tool %q", name)
	}

	var args map[string]any
	if len(rawArgs) > 0 {
		if err := json.Unmarshal(rawArgs, &args); err != nil {
			return schemaErrf("arguments are not a JSON object: %v", err)
		}
	}

	validated, err := validateArgs(t.Info(), args)
	if err != nil {
		r.logger.Debug("rejected tool call", "tool", name, "error", err)
		return schemaErrf("invalid arguments for %s: %v", name, err)
	}

	res := t.Invoke(ctx, validated)
	if !res.Success && res.Error == "" {
		res.Error = "tool failed without a message"
	}
	return res
}
