package provision

import (
	"context"
	"fmt"
	"testing"
)

func TestMock_Create(t *testing.T) {
	m := NewMock()
	ctx := context.Background()

	sb, err := m.Create(ctx, CreateRequest{Name: "dev", Template: "python-dev"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if sb.ID != "sandbox-1" {
		t.Errorf("ID = %q, want sandbox-1", sb.ID)
	}
	if sb.Status != "creating" {
		t.Errorf("Status = %q, want creating", sb.Status)
	}
	if sb.URL != "https://sandbox-1.example.com" {
		t.Errorf("URL = %q", sb.URL)
	}
	if sb.Resources == nil {
		t.Error("Resources should default to an empty map")
	}
}

func TestMock_GetReportsRunning(t *testing.T) {
	m := NewMock()
	ctx := context.Background()

	sb, err := m.Get(ctx, "sandbox-42")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if sb.Status != "running" {
		t.Errorf("Status = %q, want running", sb.Status)
	}
	if sb.Name != "Sandbox sandbox-42" {
		t.Errorf("Name = %q", sb.Name)
	}
	if sb.URL != "https://sandbox-42.example.com" {
		t.Errorf("URL = %q", sb.URL)
	}
}

func TestMock_ListIncludesFixedEnvironments(t *testing.T) {
	m := NewMock()
	ctx := context.Background()

	sandboxes, err := m.List(ctx)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(sandboxes) != 2 {
		t.Fatalf("len(List()) = %d, want 2", len(sandboxes))
	}
	if sandboxes[0].Name != "Development Environment" || sandboxes[0].Status != "running" {
		t.Errorf("first = %+v", sandboxes[0])
	}
	if sandboxes[1].Name != "Test Environment" || sandboxes[1].Status != "stopped" {
		t.Errorf("second = %+v", sandboxes[1])
	}

	// Created sandboxes are appended after the fixed pair.
	if _, err := m.Create(ctx, CreateRequest{Name: "mine", Template: "go-dev"}); err != nil {
		t.Fatal(err)
	}
	sandboxes, err = m.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(sandboxes) != 3 || sandboxes[2].Name != "mine" {
		t.Errorf("List() after create = %+v", sandboxes)
	}
}

func TestMock_Lifecycle(t *testing.T) {
	m := NewMock()
	ctx := context.Background()

	sb, err := m.Create(ctx, CreateRequest{Name: "dev", Template: "python-dev"})
	if err != nil {
		t.Fatal(err)
	}

	start, err := m.Start(ctx, sb.ID)
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if start.Status != "running" || start.Message != "Sandbox sandbox-1 started" {
		t.Errorf("Start ack = %+v", start)
	}

	stop, err := m.Stop(ctx, sb.ID)
	if err != nil {
		t.Fatalf("Stop() error: %v", err)
	}
	if stop.Status != "stopped" || stop.Message != "Sandbox sandbox-1 stopped" {
		t.Errorf("Stop ack = %+v", stop)
	}

	del, err := m.Delete(ctx, sb.ID)
	if err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if del.Status != "success" || del.Message != "Sandbox sandbox-1 deleted" {
		t.Errorf("Delete ack = %+v", del)
	}
}

func TestMock_Configure(t *testing.T) {
	m := NewMock()
	ctx := context.Background()

	sb, err := m.Configure(ctx, "sandbox-9", map[string]any{"memory": "8Gi"})
	if err != nil {
		t.Fatalf("Configure() error: %v", err)
	}
	if sb.ID != "sandbox-9" || sb.Status != "configured" {
		t.Errorf("Configure = %+v", sb)
	}
}

func TestMock_ErrorInjection(t *testing.T) {
	m := NewMock()
	ctx := context.Background()

	injected := fmt.Errorf("provider down")
	m.SetError("Create", injected)

	if _, err := m.Create(ctx, CreateRequest{Name: "dev"}); err != injected {
		t.Errorf("Create() error = %v, want injected error", err)
	}

	// Other operations are unaffected.
	if _, err := m.List(ctx); err != nil {
		t.Errorf("List() error = %v, want nil", err)
	}
}

func TestMock_CallLog(t *testing.T) {
	m := NewMock()
	ctx := context.Background()

	_, _ = m.Create(ctx, CreateRequest{Name: "a"})
	_, _ = m.Get(ctx, "sandbox-1")
	_, _ = m.Get(ctx, "sandbox-2")

	if got := len(m.GetCallsFor("Get")); got != 2 {
		t.Errorf("GetCallsFor(Get) = %d calls, want 2", got)
	}
	creates := m.GetCallsFor("Create")
	if len(creates) != 1 {
		t.Fatalf("GetCallsFor(Create) = %d calls, want 1", len(creates))
	}
	req, ok := creates[0].Args[0].(CreateRequest)
	if !ok || req.Name != "a" {
		t.Errorf("recorded args = %+v", creates[0].Args)
	}
}
