// Package logging provides logging utilities for sandbox-agent.
//
// This package provides two categories of output:
//   - Debug logging: structured logs for debugging (via slog)
//   - User output: formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("creating sandbox", "name", name, "template", template)
//	logging.Warn("provisioning slow", "elapsed", elapsed)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Resolving template %s...", templateID)
//	logging.UserSuccess("Sandbox %s created", id)
//	logging.UserWarning("Agent %s not connected", agentID)
//	logging.UserError("Failed to create sandbox: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
package logging
