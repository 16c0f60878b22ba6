// Package agent binds the sandbox registry, the template catalog, the
// provisioning client, and the inter-agent messaging integration into
// one orchestrator with an invocable tool surface.
//
// An Agent owns exactly one registry instance; sandbox records are never
// shared between agents. The LLM host drives the agent through
// Invoke(ctx, tool, args), where the tool names mirror the registered
// capabilities:
//
//	create_sandbox, configure_sandbox, delete_sandbox, list_sandboxes
//	get_sandbox, start_sandbox, stop_sandbox
//	connect_to_agent, send_message_to_agent, list_available_agents
//
// CreateFromTemplate implements the standard orchestration flow: resolve
// the template and resource preset from the catalog first, then record
// the sandbox in the registry with the resolved values.
package agent
