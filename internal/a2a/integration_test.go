package a2a

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/substrate-dev/sandbox-agent/internal/errors"
)

func TestConnect(t *testing.T) {
	i := NewIntegration(NewMock(), time.Second)
	ctx := context.Background()

	conn, err := i.Connect(ctx, "coder")
	if err != nil {
		t.Fatalf("Connect() error: %v", err)
	}
	if conn.AgentID != "coder" {
		t.Errorf("AgentID = %q, want coder", conn.AgentID)
	}

	// Connecting again returns the same connection.
	again, err := i.Connect(ctx, "coder")
	if err != nil {
		t.Fatal(err)
	}
	if again != conn {
		t.Error("second Connect should return the existing connection")
	}

	if got := i.Connections(); len(got) != 1 || got[0] != "coder" {
		t.Errorf("Connections() = %v, want [coder]", got)
	}
}

func TestConnect_EmptyID(t *testing.T) {
	i := NewIntegration(NewMock(), time.Second)

	_, err := i.Connect(context.Background(), "")
	if !errors.IsInvalidArgument(err) {
		t.Errorf("Connect(\"\") error = %v, want InvalidArgument", err)
	}
}

func TestDisconnect(t *testing.T) {
	i := NewIntegration(NewMock(), time.Second)
	ctx := context.Background()

	if _, err := i.Connect(ctx, "coder"); err != nil {
		t.Fatal(err)
	}
	i.Disconnect("coder")

	if got := i.Connections(); len(got) != 0 {
		t.Errorf("Connections() = %v, want empty", got)
	}

	// Disconnecting an unknown agent is a no-op.
	i.Disconnect("nobody")
}

func TestSend_AutoConnects(t *testing.T) {
	mock := NewMock()
	i := NewIntegration(mock, time.Second)

	resp, err := i.Send(context.Background(), "coder", "set up a python sandbox", "task-1")
	if err != nil {
		t.Fatalf("Send() error: %v", err)
	}

	if resp.TaskID != "task-1" {
		t.Errorf("TaskID = %q, want task-1", resp.TaskID)
	}
	if resp.Status != "received" {
		t.Errorf("Status = %q, want received", resp.Status)
	}
	if got := i.Connections(); len(got) != 1 || got[0] != "coder" {
		t.Errorf("Send should have connected, Connections() = %v", got)
	}
	if len(mock.Sent["coder"]) != 1 {
		t.Errorf("mock recorded %d messages, want 1", len(mock.Sent["coder"]))
	}
}

func TestSend_AssignsTaskID(t *testing.T) {
	mock := NewMock()
	i := NewIntegration(mock, time.Second)

	resp, err := i.Send(context.Background(), "coder", "hello", "")
	if err != nil {
		t.Fatalf("Send() error: %v", err)
	}

	if !strings.HasPrefix(resp.TaskID, "task-") {
		t.Errorf("TaskID = %q, want task- prefix", resp.TaskID)
	}
	if resp.TaskID == "task-" {
		t.Error("TaskID should carry a generated suffix")
	}

	// Distinct sends get distinct task ids.
	second, err := i.Send(context.Background(), "coder", "hello", "")
	if err != nil {
		t.Fatal(err)
	}
	if second.TaskID == resp.TaskID {
		t.Error("generated task ids should be unique")
	}
}

func TestSend_UnknownAgent(t *testing.T) {
	i := NewIntegration(NewMock(), time.Second)

	_, err := i.Send(context.Background(), "nobody", "hello", "")
	if err == nil {
		t.Fatal("Send() to unknown agent should fail")
	}
	if errors.GetExitCode(err) != errors.ExitMessagingError {
		t.Errorf("exit code = %d, want %d", errors.GetExitCode(err), errors.ExitMessagingError)
	}
}

func TestAgents_CachesDirectory(t *testing.T) {
	mock := NewMock()
	i := NewIntegration(mock, time.Minute)
	ctx := context.Background()

	first, err := i.Agents(ctx)
	if err != nil {
		t.Fatalf("Agents() error: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("len(Agents()) = %d, want 2", len(first))
	}

	// A transport failure is invisible while the cache is warm.
	mock.SetError("ListAgents", fmt.Errorf("host unreachable"))
	cached, err := i.Agents(ctx)
	if err != nil {
		t.Fatalf("Agents() should serve from cache, got: %v", err)
	}
	if len(cached) != 2 {
		t.Errorf("cached directory = %v", cached)
	}

	// After invalidation the failure surfaces.
	i.InvalidateAgents()
	if _, err := i.Agents(ctx); err == nil {
		t.Error("Agents() after invalidation should hit the transport and fail")
	}
}

func TestMock_DirectoryIsCopied(t *testing.T) {
	mock := NewMock()

	cards, err := mock.ListAgents(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	cards[0].ID = "mutated"

	fresh, err := mock.ListAgents(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if fresh[0].ID == "mutated" {
		t.Error("mutating the returned slice should not affect the mock directory")
	}
}
