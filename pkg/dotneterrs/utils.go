package dotneterrs

import "errors"

// AsSDKError extracts an SDKError from the error chain.
func AsSDKError(err error) (SDKError, bool) {
	var sdkErr SDKError
	if errors.As(err, &sdkErr) {
		return sdkErr, true
	}

	return nil, false
}

// AsProcessError extracts a ProcessError from the error chain.
func AsProcessError(err error) (*ProcessError, bool) {
	var procErr *ProcessError
	if errors.As(err, &procErr) {
		return procErr, true
	}

	return nil, false
}

func hasCode(err error, code ErrorCode) bool {
	if sdkErr, ok := AsSDKError(err); ok {
		return sdkErr.Code() == code
	}

	return false
}

// IsProcessError checks if the error is any process error, including
// cancellation.
func IsProcessError(err error) bool {
	if sdkErr, ok := AsSDKError(err); ok {
		return sdkErr.Category() == CategoryProcess
	}

	return false
}

// IsSpawnFailed checks if the executable could not be started.
func IsSpawnFailed(err error) bool {
	return hasCode(err, ErrCodeSpawnFailed)
}

// IsCommandFailed checks if the executable exited with a non-zero code.
func IsCommandFailed(err error) bool {
	return hasCode(err, ErrCodeCommandFailed)
}

// IsCancelled checks if the operation was cancelled by the caller.
func IsCancelled(err error) bool {
	return hasCode(err, ErrCodeCancelled)
}

// IsValidationError checks if the error is a validation error.
func IsValidationError(err error) bool {
	if sdkErr, ok := AsSDKError(err); ok {
		return sdkErr.Category() == CategoryValidation
	}

	return false
}

// IsProtocolError checks if the error is a protocol error.
func IsProtocolError(err error) bool {
	if sdkErr, ok := AsSDKError(err); ok {
		return sdkErr.Category() == CategoryProtocol
	}

	return false
}
