package agent

import (
	"context"
	"time"

	"github.com/substrate-dev/sandbox-agent/internal/a2a"
	"github.com/substrate-dev/sandbox-agent/internal/catalog"
	"github.com/substrate-dev/sandbox-agent/internal/config"
	"github.com/substrate-dev/sandbox-agent/internal/logging"
	"github.com/substrate-dev/sandbox-agent/internal/provision"
	"github.com/substrate-dev/sandbox-agent/internal/registry"
	"github.com/substrate-dev/sandbox-agent/internal/tools"
)

// Card identifies this agent to its peers.
var Card = a2a.AgentCard{
	ID:          "sandbox-agent",
	Name:        "Sandbox Orchestration Agent",
	Description: "An agent that orchestrates sandbox environments and communicates with other agents",
	Version:     "0.1.0",
	Interfaces:  []string{"coder", "general"},
}

// Agent binds one sandbox registry, the template catalog, a provisioning
// client, and the messaging integration behind a tool registry. Each
// Agent owns its registry exclusively; two agents never share sandbox
// state.
type Agent struct {
	catalog     *catalog.Catalog
	registry    *registry.Registry
	provisioner provision.Client
	messaging   *a2a.Integration
	tools       *tools.Registry
}

// Option configures an Agent.
type Option func(*Agent)

// WithCatalog sets the template catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(a *Agent) { a.catalog = c }
}

// WithProvisioner sets the provisioning client.
func WithProvisioner(p provision.Client) Option {
	return func(a *Agent) { a.provisioner = p }
}

// WithMessaging sets the messaging integration.
func WithMessaging(m *a2a.Integration) Option {
	return func(a *Agent) { a.messaging = m }
}

// New creates an Agent with a fresh, empty sandbox registry. Defaults:
// the built-in catalog, the mock provisioning client, and a mock
// messaging transport.
func New(opts ...Option) *Agent {
	a := &Agent{
		registry: registry.New(),
		tools:    tools.NewRegistry(),
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.catalog == nil {
		a.catalog = catalog.Default()
	}
	if a.provisioner == nil {
		a.provisioner = provision.NewMock()
	}
	if a.messaging == nil {
		a.messaging = a2a.NewIntegration(a2a.NewMock(), config.DefaultHeartbeatInterval)
	}

	a.registerTools()
	return a
}

// Catalog returns the agent's template catalog.
func (a *Agent) Catalog() *catalog.Catalog {
	return a.catalog
}

// Registry returns the agent's sandbox registry.
func (a *Agent) Registry() *registry.Registry {
	return a.registry
}

// Provisioner returns the agent's provisioning client.
func (a *Agent) Provisioner() provision.Client {
	return a.provisioner
}

// Messaging returns the agent's messaging integration.
func (a *Agent) Messaging() *a2a.Integration {
	return a.messaging
}

// Tools returns the agent's tool registry.
func (a *Agent) Tools() *tools.Registry {
	return a.tools
}

// Invoke dispatches a named tool call.
func (a *Agent) Invoke(ctx context.Context, tool string, args map[string]any) (map[string]any, error) {
	started := time.Now()
	out, err := a.tools.Dispatch(ctx, tool, args)
	logging.Debug("tool invocation", "tool", tool, "elapsed", time.Since(started), "err", err)
	return out, err
}

// CreateFromTemplate resolves a template and an optional resource size
// from the catalog, then records the sandbox in the registry. Catalog
// lookups fail before any record is created. The resolved template is
// returned alongside the record so callers can provision from it.
func (a *Agent) CreateFromTemplate(name, templateID, size string) (registry.Sandbox, catalog.Template, error) {
	if err := config.ValidateSandboxName(name); err != nil {
		return registry.Sandbox{}, catalog.Template{}, err
	}

	tmpl, err := a.catalog.TemplateByID(templateID)
	if err != nil {
		return registry.Sandbox{}, catalog.Template{}, err
	}

	var resources map[string]string
	if size != "" {
		preset, err := a.catalog.ResourceConfig(size)
		if err != nil {
			return registry.Sandbox{}, catalog.Template{}, err
		}
		resources = preset.Map()
	}

	sb := a.registry.Create(name, tmpl.ID, resources)
	logging.Debug("sandbox recorded", "id", sb.ID, "template", tmpl.ID, "size", size)

	return sb, tmpl, nil
}
