// Package tools holds the tool handlers the voice agent can invoke and the
// registry the dispatcher resolves them from.
package tools

import (
	"context"
	"fmt"
	"sort"

	"healthcall/types"
)

// Handler is the shared (parameters) -> result contract of every tool.
//
// Business failures are returned as a ToolOutput whose result starts with
// "error:"; a returned error means the batch cannot continue.
type Handler interface {
	Name() string
	Definition() types.FunctionDef
	Handle(ctx context.Context, params types.Params) (types.ToolOutput, error)
}

// Registry maps tool names to handlers. It is built once and read-only afterwards.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry panics on an empty or duplicate name; both are wiring mistakes.
func NewRegistry(handlers ...Handler) *Registry {
	table := make(map[string]Handler, len(handlers))
	for _, h := range handlers {
		if h == nil {
			continue
		}
		name := h.Name()
		if name == "" {
			panic("tools: handler with empty name")
		}
		if _, exists := table[name]; exists {
			panic(fmt.Sprintf("tools: handler %q registered twice", name))
		}
		table[name] = h
	}
	return &Registry{handlers: table}
}

// Lookup 按名称精确查找
func (r *Registry) Lookup(name string) (Handler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

// Names returns the registered names sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definitions returns every tool definition ordered by name.
func (r *Registry) Definitions() []types.FunctionDef {
	defs := make([]types.FunctionDef, 0, len(r.handlers))
	for _, name := range r.Names() {
		defs = append(defs, r.handlers[name].Definition())
	}
	return defs
}

// failure builds the spoken-friendly failure result.
func failure(format string, v ...interface{}) types.ToolOutput {
	return types.ToolOutput{Result: "error: " + fmt.Sprintf(format, v...)}
}

// requireStrings returns the trimmed values of keys, or the first missing/blank key.
func requireStrings(params types.Params, keys ...string) (map[string]string, string) {
	out := make(map[string]string, len(keys))
	for _, key := range keys {
		v, ok := params.String(key)
		if !ok || v == "" {
			return nil, key
		}
		out[key] = v
	}
	return out, ""
}

// NewDefaultRegistry registers the health check-in tools.
// Nil dependencies are fine when only definitions are needed.
func NewDefaultRegistry(store SheetAppender, calls CallScheduler, phoneNumberID string) *Registry {
	return NewRegistry(
		NewLogHealthStatus(store),
		NewScheduleFollowUp(calls, phoneNumberID, DefaultFollowUpAgent),
	)
}
