package tools

import (
	"context"
	"testing"

	"github.com/substrate-dev/sandbox-agent/internal/errors"
)

func echoHandler(ctx context.Context, req Request) (map[string]any, error) {
	return map[string]any{"tool": req.Tool, "args": req.Args}, nil
}

func TestRegister(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(Spec{Name: "noop"}, echoHandler); err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	tests := []struct {
		name    string
		spec    Spec
		handler Handler
	}{
		{"empty name", Spec{}, echoHandler},
		{"nil handler", Spec{Name: "broken"}, nil},
		{"duplicate", Spec{Name: "noop"}, echoHandler},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := r.Register(tt.spec, tt.handler); err == nil {
				t.Error("Register() should fail")
			}
		})
	}
}

func TestDispatch(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(Spec{
		Name:     "create_sandbox",
		Required: []string{"name", "template"},
		ArgTypes: map[string]ArgType{
			"name":      ArgTypeString,
			"template":  ArgTypeString,
			"resources": ArgTypeObject,
		},
	}, echoHandler)

	out, err := r.Dispatch(context.Background(), "create_sandbox", map[string]any{
		"name":     "dev",
		"template": "python-dev",
	})
	if err != nil {
		t.Fatalf("Dispatch() error: %v", err)
	}
	if out["tool"] != "create_sandbox" {
		t.Errorf("tool = %v", out["tool"])
	}
}

func TestDispatch_UnknownTool(t *testing.T) {
	r := NewRegistry()

	_, err := r.Dispatch(context.Background(), "missing", nil)
	if !errors.IsNotFound(err) {
		t.Errorf("error = %v, want NotFound", err)
	}
}

func TestDispatch_Validation(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(Spec{
		Name:     "configure_sandbox",
		Required: []string{"sandbox_id", "configuration"},
		ArgTypes: map[string]ArgType{
			"sandbox_id":    ArgTypeString,
			"configuration": ArgTypeObject,
			"force":         ArgTypeBool,
			"priority":      ArgTypeNumber,
		},
	}, echoHandler)

	tests := []struct {
		name string
		args map[string]any
	}{
		{"missing required", map[string]any{"sandbox_id": "sandbox-1"}},
		{"empty required string", map[string]any{"sandbox_id": "", "configuration": map[string]any{}}},
		{"wrong string type", map[string]any{"sandbox_id": 7, "configuration": map[string]any{}}},
		{"wrong object type", map[string]any{"sandbox_id": "sandbox-1", "configuration": "not-a-map"}},
		{"wrong bool type", map[string]any{"sandbox_id": "s", "configuration": map[string]any{}, "force": "yes"}},
		{"wrong number type", map[string]any{"sandbox_id": "s", "configuration": map[string]any{}, "priority": "high"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Dispatch(context.Background(), "configure_sandbox", tt.args)
			if !errors.IsInvalidArgument(err) {
				t.Errorf("error = %v, want InvalidArgument", err)
			}
		})
	}
}

func TestDispatch_UndeclaredArgsPass(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(Spec{Name: "loose"}, echoHandler)

	// Arguments without a declared type are passed through untouched.
	if _, err := r.Dispatch(context.Background(), "loose", map[string]any{"anything": 42}); err != nil {
		t.Errorf("Dispatch() error: %v", err)
	}
}

func TestDispatch_NumberShapes(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(Spec{
		Name:     "n",
		ArgTypes: map[string]ArgType{"v": ArgTypeNumber},
	}, echoHandler)

	// JSON decoding yields float64; handlers may also be called with ints.
	for _, v := range []any{1, int64(2), 3.5} {
		if _, err := r.Dispatch(context.Background(), "n", map[string]any{"v": v}); err != nil {
			t.Errorf("Dispatch(v=%T) error: %v", v, err)
		}
	}
}

func TestSpecs_SortedByName(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(Spec{Name: "zeta"}, echoHandler)
	r.MustRegister(Spec{Name: "alpha"}, echoHandler)

	specs := r.Specs()
	if len(specs) != 2 || specs[0].Name != "alpha" || specs[1].Name != "zeta" {
		t.Errorf("Specs() order = %v", specs)
	}
}

func TestRequestAccessors(t *testing.T) {
	req := Request{Args: map[string]any{
		"name": "dev",
		"conf": map[string]any{"cpu": "2"},
	}}

	if req.String("name") != "dev" {
		t.Errorf("String(name) = %q", req.String("name"))
	}
	if req.String("absent") != "" {
		t.Error("String of absent key should be empty")
	}
	if req.Object("conf")["cpu"] != "2" {
		t.Errorf("Object(conf) = %v", req.Object("conf"))
	}
	if req.Object("name") != nil {
		t.Error("Object of non-map should be nil")
	}
}
