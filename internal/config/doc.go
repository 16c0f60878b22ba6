// Package config loads and validates the runtime configuration for
// sandbox-agent.
//
// Configuration is environment-driven with built-in defaults. A .env file
// in the working directory is loaded first (without overriding variables
// already present in the environment), then SANDBOX_AGENT_* variables are
// applied on top of the defaults:
//
//	SANDBOX_AGENT_HOST_URL            messaging host endpoint (default http://localhost:8080)
//	SANDBOX_AGENT_API_URL             provisioning API endpoint (default http://localhost:8090)
//	SANDBOX_AGENT_API_KEY             bearer token for the provisioning API
//	SANDBOX_AGENT_PROVIDER            mock | http (default mock)
//	SANDBOX_AGENT_API_TIMEOUT         Go duration, e.g. 60s
//	SANDBOX_AGENT_SESSION_TIMEOUT     Go duration, e.g. 1h
//	SANDBOX_AGENT_HEARTBEAT_INTERVAL  Go duration, e.g. 30s
//
// The package also owns sandbox name validation, shared by the command
// layer and the orchestrator.
package config
