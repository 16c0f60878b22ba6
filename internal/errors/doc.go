// Package errors provides typed errors with exit codes for sandbox-agent.
//
// # Error Types
//
// AgentError is the base error type that carries an exit code and a kind:
//
//	type AgentError struct {
//	    Code    int    // Exit code
//	    Kind    Kind   // NotFound, InvalidArgument, ...
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// The Kind distinguishes lookup failures (unknown sandbox id, template id,
// resource size label, agent id, tool name) from caller-input validation
// failures. Errors are never retried or translated by the core packages;
// they propagate to the command layer, which maps them to process exit
// codes via GetExitCode.
//
// # Exit Codes
//
//	ExitSuccess          = 0
//	ExitGeneralError     = 1
//	ExitSandboxNotFound  = 2
//	ExitTemplateNotFound = 3
//	ExitResourceNotFound = 4
//	ExitInvalidArgument  = 5
//	ExitConfigError      = 6
//	ExitAPIError         = 7
//	ExitMessagingError   = 8
package errors
