// Package catalog provides the static template and resource-preset lookup
// table for sandbox-agent.
//
// A Catalog is immutable after construction and exposes three read-only
// operations:
//
//	TemplateByID(id)     // template or TemplateNotFound
//	ResourceConfig(size) // preset or ResourceConfigNotFound
//	Templates()          // full catalog in declaration order
//
// The built-in catalog carries the python-dev, node-dev, and go-dev
// templates and the small/medium/large presets. An optional catalog.toml
// in the config directory can overlay or replace the built-ins; see Load.
//
// The catalog never talks to the sandbox registry: callers resolve
// templates and presets here first, then pass the resolved values to the
// registry or the provisioning client.
package catalog
