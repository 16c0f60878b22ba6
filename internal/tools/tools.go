// Package tools provides the registry of named operations the agent
// exposes for invocation. Each tool pairs a declarative Spec (name,
// description, argument schema) with a Handler; Dispatch validates the
// arguments against the Spec before the handler runs.
package tools

import (
	"context"
	"fmt"
	"sort"

	"github.com/substrate-dev/sandbox-agent/internal/errors"
)

// ArgType constrains a tool argument's JSON shape.
type ArgType string

const (
	ArgTypeString ArgType = "string"
	ArgTypeNumber ArgType = "number"
	ArgTypeBool   ArgType = "bool"
	ArgTypeObject ArgType = "object"
)

// Spec declares a tool's invocation surface.
type Spec struct {
	Name        string
	Description string
	Required    []string
	ArgTypes    map[string]ArgType
}

// Request carries the arguments of one invocation.
type Request struct {
	Tool string
	Args map[string]any
}

// String returns the named argument as a string, or "" when absent.
func (r Request) String(key string) string {
	s, _ := r.Args[key].(string)
	return s
}

// Object returns the named argument as a map, or nil when absent.
func (r Request) Object(key string) map[string]any {
	m, _ := r.Args[key].(map[string]any)
	return m
}

// Handler executes one tool invocation.
type Handler func(ctx context.Context, req Request) (map[string]any, error)

type entry struct {
	spec    Spec
	handler Handler
}

// Registry maps tool names to specs and handlers. Registration happens
// at agent construction; dispatch may run concurrently afterwards.
type Registry struct {
	entries map[string]entry
	names   []string
}

// NewRegistry returns an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Register adds a tool. Duplicate names and nil handlers are rejected.
func (r *Registry) Register(spec Spec, handler Handler) error {
	if spec.Name == "" {
		return fmt.Errorf("tool name is required")
	}
	if handler == nil {
		return fmt.Errorf("tool %s: handler is required", spec.Name)
	}
	if _, exists := r.entries[spec.Name]; exists {
		return fmt.Errorf("tool %s: already registered", spec.Name)
	}
	r.entries[spec.Name] = entry{spec: spec, handler: handler}
	r.names = append(r.names, spec.Name)
	return nil
}

// MustRegister registers or panics; for static tool tables.
func (r *Registry) MustRegister(spec Spec, handler Handler) {
	if err := r.Register(spec, handler); err != nil {
		panic(err)
	}
}

// Specs returns all registered tool specs in name order.
func (r *Registry) Specs() []Spec {
	names := make([]string, len(r.names))
	copy(names, r.names)
	sort.Strings(names)

	out := make([]Spec, 0, len(names))
	for _, name := range names {
		out = append(out, r.entries[name].spec)
	}
	return out
}

// Dispatch validates args against the tool's Spec and runs its handler.
func (r *Registry) Dispatch(ctx context.Context, tool string, args map[string]any) (map[string]any, error) {
	e, ok := r.entries[tool]
	if !ok {
		return nil, errors.ToolNotFound(tool)
	}

	if args == nil {
		args = map[string]any{}
	}
	if err := validateArgs(e.spec, args); err != nil {
		return nil, err
	}

	return e.handler(ctx, Request{Tool: tool, Args: args})
}

func validateArgs(spec Spec, args map[string]any) error {
	for _, name := range spec.Required {
		v, ok := args[name]
		if !ok || v == nil {
			return errors.InvalidArgument(fmt.Sprintf("%s: missing required argument %q", spec.Name, name))
		}
		if s, isStr := v.(string); isStr && s == "" {
			return errors.InvalidArgument(fmt.Sprintf("%s: required argument %q is empty", spec.Name, name))
		}
	}

	for name, v := range args {
		want, declared := spec.ArgTypes[name]
		if !declared {
			continue
		}
		if v == nil {
			continue
		}
		if !matchesType(v, want) {
			return errors.InvalidArgument(fmt.Sprintf("%s: argument %q must be a %s", spec.Name, name, want))
		}
	}
	return nil
}

func matchesType(v any, want ArgType) bool {
	switch want {
	case ArgTypeString:
		_, ok := v.(string)
		return ok
	case ArgTypeNumber:
		switch v.(type) {
		case int, int64, float64:
			return true
		}
		return false
	case ArgTypeBool:
		_, ok := v.(bool)
		return ok
	case ArgTypeObject:
		_, ok := v.(map[string]any)
		return ok
	}
	return true
}
