// Package testutil provides test utilities for integration tests
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/substrate-dev/sandbox-agent/internal/a2a"
	"github.com/substrate-dev/sandbox-agent/internal/agent"
	"github.com/substrate-dev/sandbox-agent/internal/app"
	"github.com/substrate-dev/sandbox-agent/internal/catalog"
	"github.com/substrate-dev/sandbox-agent/internal/config"
	"github.com/substrate-dev/sandbox-agent/internal/provision"
	"github.com/substrate-dev/sandbox-agent/internal/registry"
)

// TestEnv holds the test environment
type TestEnv struct {
	T           *testing.T
	Config      *config.Config
	Catalog     *catalog.Catalog
	Provisioner *provision.Mock
	Peers       *a2a.Mock
	App         *app.App
	cleanup     func()
}

// NewTestEnv creates a new test environment with mock backends and
// installs it as the process default app for the duration of the test.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	cfg := config.Default()
	cat := catalog.Default()
	mockProv := provision.NewMock()
	mockPeers := a2a.NewMock()

	testApp := app.New(
		app.WithConfig(cfg),
		app.WithCatalog(cat),
		app.WithProvisioner(mockProv),
		app.WithMessaging(a2a.NewIntegration(mockPeers, cfg.HeartbeatInterval)),
	)

	originalDefault := app.Default
	app.SetDefault(testApp)

	env := &TestEnv{
		T:           t,
		Config:      cfg,
		Catalog:     cat,
		Provisioner: mockProv,
		Peers:       mockPeers,
		App:         testApp,
		cleanup: func() {
			app.SetDefault(originalDefault)
		},
	}

	t.Cleanup(env.Cleanup)

	return env
}

// Cleanup restores the original app default
func (e *TestEnv) Cleanup() {
	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}
}

// Agent returns the agent wired into the test app.
func (e *TestEnv) Agent() *agent.Agent {
	return e.App.Agent
}

// Registry returns the session registry of the test agent.
func (e *TestEnv) Registry() *registry.Registry {
	return e.App.Agent.Registry()
}

// AddSandbox records a sandbox directly in the session registry and
// returns it.
func (e *TestEnv) AddSandbox(name, template string) registry.Sandbox {
	e.T.Helper()

	return e.Registry().Create(name, template, nil)
}

// FailProvisioner injects an error for the named mock provisioner call.
func (e *TestEnv) FailProvisioner(call string, err error) {
	e.Provisioner.SetError(call, err)
}

// WriteCatalogFile writes a catalog overlay file into a fresh temp
// directory and returns the directory, for use with catalog.Load.
func WriteCatalogFile(t *testing.T, body string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, catalog.CatalogFileName)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Failed to write catalog file: %v", err)
	}
	return dir
}

// DefaultTemplate returns a basic template for testing
func DefaultTemplate() catalog.Template {
	return catalog.Template{
		ID:                "test-dev",
		Name:              "Test Development",
		Description:       "Template for exercising catalog overlays",
		BaseImage:         "alpine:3.19",
		InstalledPackages: []string{"curl"},
		SetupCommands:     []string{"echo ready"},
	}
}
