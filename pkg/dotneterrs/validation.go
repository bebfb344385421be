package dotneterrs

// ValidationError represents invalid configuration or tool input.
type ValidationError struct {
	*BaseError
	field string
	value any
}

// NewValidationError creates a new validation error.
func NewValidationError(
	code ErrorCode,
	message string,
	cause error,
	field string,
	value any,
) *ValidationError {
	err := &ValidationError{
		BaseError: NewBaseError(CategoryValidation, code, message, cause),
		field:     field,
		value:     value,
	}

	err.WithMetadata("field", field)
	err.WithMetadata("value", value)

	return err
}

// Field returns the offending field name.
func (e *ValidationError) Field() string {
	return e.field
}

// Value returns the offending value.
func (e *ValidationError) Value() any {
	return e.value
}

// ProtocolError represents malformed traffic between an adapter and its
// peer, such as an unknown tool name.
type ProtocolError struct {
	*BaseError
}

// NewProtocolError creates a new protocol error.
func NewProtocolError(code ErrorCode, message string, cause error) *ProtocolError {
	return &ProtocolError{
		BaseError: NewBaseError(CategoryProtocol, code, message, cause),
	}
}
