// Package app provides the application context for sandbox-agent.
// It allows dependency injection for testing: commands read their
// collaborators from the Default app, and tests swap it out.
package app

import (
	"github.com/substrate-dev/sandbox-agent/internal/a2a"
	"github.com/substrate-dev/sandbox-agent/internal/agent"
	"github.com/substrate-dev/sandbox-agent/internal/catalog"
	"github.com/substrate-dev/sandbox-agent/internal/config"
	"github.com/substrate-dev/sandbox-agent/internal/provision"
	"github.com/substrate-dev/sandbox-agent/internal/registry"
)

// App holds the application dependencies.
type App struct {
	// Config is the runtime configuration.
	Config *config.Config

	// Catalog is the template and resource-preset catalog.
	Catalog *catalog.Catalog

	// Provisioner is the sandbox provisioning client.
	Provisioner provision.Client

	// Messaging is the inter-agent messaging integration.
	Messaging *a2a.Integration

	// Agent is the orchestrator bound to the dependencies above.
	Agent *agent.Agent

	// Registry is the agent's session registry, exposed for tests and
	// commands that inspect recorded sandboxes.
	Registry *registry.Registry
}

// Option is a function that configures the App.
type Option func(*App)

// WithConfig sets a custom configuration.
func WithConfig(cfg *config.Config) Option {
	return func(a *App) { a.Config = cfg }
}

// WithCatalog sets a custom catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(a *App) { a.Catalog = c }
}

// WithProvisioner sets a custom provisioning client.
func WithProvisioner(p provision.Client) Option {
	return func(a *App) { a.Provisioner = p }
}

// WithMessaging sets a custom messaging integration.
func WithMessaging(m *a2a.Integration) Option {
	return func(a *App) { a.Messaging = m }
}

// New creates an App with the given options. Anything not provided is
// derived from the environment configuration (falling back to the
// built-in defaults): the built-in catalog, a provisioning
// client matching cfg.Provider, and a mock messaging transport.
func New(opts ...Option) *App {
	a := &App{}

	for _, opt := range opts {
		opt(a)
	}

	if a.Config == nil {
		cfg, err := config.Load()
		if err != nil {
			cfg = config.Default()
		}
		a.Config = cfg
	}
	if a.Catalog == nil {
		a.Catalog = catalog.Default()
	}
	if a.Provisioner == nil {
		a.Provisioner = newProvisioner(a.Config)
	}
	if a.Messaging == nil {
		a.Messaging = a2a.NewIntegration(a2a.NewMock(), a.Config.HeartbeatInterval)
	}

	a.Agent = agent.New(
		agent.WithCatalog(a.Catalog),
		agent.WithProvisioner(a.Provisioner),
		agent.WithMessaging(a.Messaging),
	)
	a.Registry = a.Agent.Registry()

	return a
}

// newProvisioner builds the provisioning client selected by the config.
func newProvisioner(cfg *config.Config) provision.Client {
	if cfg.Provider == config.ProviderHTTP {
		return provision.NewHTTPClient(cfg.APIURL, cfg.APIKey, cfg.APITimeout)
	}
	return provision.NewMock()
}

// Default is the default application instance.
var Default = New()

// SetDefault sets the default application instance (used for testing).
func SetDefault(a *App) {
	Default = a
}

// ResetDefault resets to a freshly constructed application instance.
func ResetDefault() {
	Default = New()
}
