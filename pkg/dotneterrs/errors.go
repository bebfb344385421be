// Package dotneterrs provides the error taxonomy shared by the dotnet CLI
// wrapper and its adapters.
//
// Every failure surfaced by the core is one of three process kinds:
// the executable could not be started, it ran and exited non-zero, or the
// caller cancelled. Adapters use the predicates in this package to tell
// them apart without string matching.
package dotneterrs

// ErrorCategory groups related error codes.
type ErrorCategory string

const (
	// CategoryProcess represents failures of the spawned CLI process.
	CategoryProcess ErrorCategory = "process"
	// CategoryValidation represents invalid configuration or input.
	CategoryValidation ErrorCategory = "validation"
	// CategoryProtocol represents malformed adapter traffic.
	CategoryProtocol ErrorCategory = "protocol"
)

// ErrorCode represents a specific error within a category.
type ErrorCode string

// Process error codes.
const (
	ErrCodeSpawnFailed   ErrorCode = "spawn_failed"
	ErrCodeCommandFailed ErrorCode = "command_failed"
	ErrCodeCancelled     ErrorCode = "operation_cancelled"
)

// Validation error codes.
const (
	ErrCodeInvalidConfig ErrorCode = "invalid_config"
	ErrCodeMissingField  ErrorCode = "missing_field"
	ErrCodeInvalidFormat ErrorCode = "invalid_format"
)

// Protocol error codes.
const (
	ErrCodeUnknownTool        ErrorCode = "unknown_tool"
	ErrCodeMessageParseFailed ErrorCode = "message_parse_failed"
)
