package errors

import (
	"errors"
	"fmt"
)

// Exit codes for sandbox-agent
const (
	ExitSuccess          = 0
	ExitGeneralError     = 1
	ExitSandboxNotFound  = 2
	ExitTemplateNotFound = 3
	ExitResourceNotFound = 4
	ExitInvalidArgument  = 5
	ExitConfigError      = 6
	ExitAPIError         = 7
	ExitMessagingError   = 8
)

// Kind classifies an AgentError beyond its exit code.
type Kind int

const (
	KindGeneral Kind = iota
	KindNotFound
	KindInvalidArgument
	KindConfig
	KindAPI
	KindMessaging
)

// AgentError is the base error type for sandbox-agent
type AgentError struct {
	Code    int
	Kind    Kind
	Message string
	Cause   error
}

func (e *AgentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AgentError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *AgentError) ExitCode() int {
	return e.Code
}

// New creates a new AgentError
func New(code int, kind Kind, message string) *AgentError {
	return &AgentError{
		Code:    code,
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an existing error with an AgentError
func Wrap(code int, kind Kind, message string, cause error) *AgentError {
	return &AgentError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// SandboxNotFound returns an error for a missing sandbox
func SandboxNotFound(id string) *AgentError {
	return New(ExitSandboxNotFound, KindNotFound, fmt.Sprintf("sandbox not found: %s", id))
}

// TemplateNotFound returns an error for a missing template
func TemplateNotFound(id string) *AgentError {
	return New(ExitTemplateNotFound, KindNotFound, fmt.Sprintf("template not found: %s", id))
}

// ResourceConfigNotFound returns an error for an unknown resource size label
func ResourceConfigNotFound(size string) *AgentError {
	return New(ExitResourceNotFound, KindNotFound, fmt.Sprintf("resource config not found: %s", size))
}

// AgentNotFound returns an error for an unknown remote agent
func AgentNotFound(id string) *AgentError {
	return New(ExitMessagingError, KindNotFound, fmt.Sprintf("agent not found: %s", id))
}

// ToolNotFound returns an error for an unregistered tool
func ToolNotFound(name string) *AgentError {
	return New(ExitGeneralError, KindNotFound, fmt.Sprintf("tool not found: %s", name))
}

// InvalidArgument returns an error for caller-input validation failures
func InvalidArgument(message string) *AgentError {
	return New(ExitInvalidArgument, KindInvalidArgument, message)
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *AgentError {
	return Wrap(ExitConfigError, KindConfig, message, cause)
}

// APIError returns an error for provisioning API failures
func APIError(message string, cause error) *AgentError {
	return Wrap(ExitAPIError, KindAPI, message, cause)
}

// MessagingError returns an error for inter-agent messaging failures
func MessagingError(message string, cause error) *AgentError {
	return Wrap(ExitMessagingError, KindMessaging, message, cause)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var agentErr *AgentError
	if errors.As(err, &agentErr) {
		return agentErr.ExitCode()
	}
	return ExitGeneralError
}

// IsNotFound reports whether err is a lookup failure
func IsNotFound(err error) bool {
	var agentErr *AgentError
	return errors.As(err, &agentErr) && agentErr.Kind == KindNotFound
}

// IsInvalidArgument reports whether err is a caller-input validation failure
func IsInvalidArgument(err error) bool {
	var agentErr *AgentError
	return errors.As(err, &agentErr) && agentErr.Kind == KindInvalidArgument
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
