package cmd

import (
	"github.com/substrate-dev/sandbox-agent/internal/a2a"
	"github.com/substrate-dev/sandbox-agent/internal/agent"
	"github.com/substrate-dev/sandbox-agent/internal/app"
	"github.com/substrate-dev/sandbox-agent/internal/catalog"
	"github.com/substrate-dev/sandbox-agent/internal/config"
	"github.com/substrate-dev/sandbox-agent/internal/provision"
)

// getAgent returns the application agent.
// This is a helper to reduce repetition in commands.
func getAgent() *agent.Agent {
	return app.Default.Agent
}

// getProvisioner returns the application provisioning client.
func getProvisioner() provision.Client {
	return app.Default.Provisioner
}

// getCatalog returns the template and resource catalog.
func getCatalog() *catalog.Catalog {
	return app.Default.Catalog
}

// getMessaging returns the inter-agent messaging integration.
func getMessaging() *a2a.Integration {
	return app.Default.Messaging
}

// getConfig returns the runtime configuration.
func getConfig() *config.Config {
	return app.Default.Config
}
