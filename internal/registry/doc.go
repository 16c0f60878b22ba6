// Package registry owns the in-memory sandbox records for a single agent
// instance.
//
// A Registry maps sandbox ids to records and provides the lifecycle
// operations the agent exposes as tools: Create, Configure, Delete, List
// (plus Get). Ids are assigned sequentially as sandbox-1, sandbox-2, ...
// per registry instance; they are not unique across instances or process
// restarts, and the registry does not persist anything.
//
// Each registry must be owned by exactly one orchestrating component.
// Holding registry state process-wide would silently share one sandbox
// table between agent instances; construct one Registry per agent
// instead. Operations are mutex-guarded so an owner may still call them
// from multiple goroutines.
//
// The registry never validates template ids against the catalog; callers
// resolve templates and resource presets before calling Create.
package registry
