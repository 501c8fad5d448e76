package meridian

import "errors"

var (
	// ErrEmptyFunctionName indicates that a function call was attempted without a name.
	ErrEmptyFunctionName = errors.New("function name cannot be empty")
	// ErrFailedToCallFunction indicates failure to call a function after all retry attempts.
	ErrFailedToCallFunction = errors.New("failed to call function after retries")
)
