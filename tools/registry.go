package tools

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/iportilla/agents/llm"
)

// Registry manages tool registration, lookup, and dispatch. It is safe
// for concurrent use, so one registry can serve multiple runs.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds or replaces a tool.
func (r *Registry) Register(t Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[t.Name()] = t
}

// Get returns a tool by name, or nil if not registered.
func (r *Registry) Get(name string) Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tools[name]
}

// Schemas returns all tool schemas for sending to the model, sorted by
// name so request payloads are stable.
func (r *Registry) Schemas() []llm.ToolSchema {
	r.mu.RLock()
	defer r.mu.RUnlock()
	schemas := make([]llm.ToolSchema, 0, len(r.tools))
	for _, t := range r.tools {
		schemas = append(schemas, t.Describe())
	}
	sort.Slice(schemas, func(i, j int) bool { return schemas[i].Name < schemas[j].Name })
	return schemas
}

// Names returns the sorted names of all registered tools.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered tools.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}

// Invoke looks up a tool and executes it. It fails with an
// *UnknownToolError when the name has no registration, or with whatever
// error the tool itself returns.
func (r *Registry) Invoke(ctx context.Context, name string, args json.RawMessage) (string, error) {
	t := r.Get(name)
	if t == nil {
		return "", &UnknownToolError{Name: name}
	}
	return t.Invoke(ctx, args)
}

// Dispatch executes one model-requested call and always produces a
// result: failures are converted into error-flagged result text so the
// model can see what went wrong and self-correct.
func (r *Registry) Dispatch(ctx context.Context, call llm.ToolCall) llm.ToolResult {
	content, err := r.Invoke(ctx, call.Name, call.Arguments)
	if err != nil {
		return llm.ToolResult{CallID: call.ID, Content: err.Error(), IsError: true}
	}
	return llm.ToolResult{CallID: call.ID, Content: content, IsError: false}
}
