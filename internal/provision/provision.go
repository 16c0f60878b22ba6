// Package provision defines the sandbox provisioning client capability
// for sandbox-agent. This abstraction keeps the orchestrator independent
// of the provisioning wire protocol and enables testing through mocking.
package provision

import (
	"context"
)

// Sandbox is a provisioning-level view of an environment. Unlike
// registry records, these carry the provider's lifecycle states
// (running, stopped) and may include fields the registry never tracks.
type Sandbox struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Template  string            `json:"template,omitempty"`
	Resources map[string]string `json:"resources,omitempty"`
	Status    string            `json:"status"`
	URL       string            `json:"url,omitempty"`
}

// Ack acknowledges a lifecycle operation.
type Ack struct {
	ID      string `json:"id,omitempty"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// CreateRequest is the payload for Create.
type CreateRequest struct {
	Name          string            `json:"name"`
	Template      string            `json:"template"`
	Resources     map[string]string `json:"resources"`
	BaseImage     string            `json:"base_image,omitempty"`
	SetupCommands []string          `json:"setup_commands,omitempty"`
}

// Client is the provisioning capability the agent depends on. The wire
// protocol behind it is provider-specific; see HTTPClient for the REST
// binding and Mock for the canned in-process implementation.
type Client interface {
	// Create provisions a new sandbox.
	Create(ctx context.Context, req CreateRequest) (*Sandbox, error)

	// Get returns the current state of a sandbox.
	Get(ctx context.Context, id string) (*Sandbox, error)

	// List returns all sandboxes known to the provider.
	List(ctx context.Context) ([]*Sandbox, error)

	// Delete removes a sandbox.
	Delete(ctx context.Context, id string) (*Ack, error)

	// Configure applies configuration to an existing sandbox.
	Configure(ctx context.Context, id string, configuration map[string]any) (*Sandbox, error)

	// Start starts a stopped sandbox.
	Start(ctx context.Context, id string) (*Ack, error)

	// Stop stops a running sandbox.
	Stop(ctx context.Context, id string) (*Ack, error)
}
