package domain

import "errors"

// InvalidArgumentError reports input that fails shape validation before any
// state is touched: missing references, empty identifiers, bad date ranges.
type InvalidArgumentError struct {
	Message string
}

// NewInvalidArgumentError creates a new InvalidArgumentError.
func NewInvalidArgumentError(message string) *InvalidArgumentError {
	return &InvalidArgumentError{Message: message}
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}

// InvalidStateError reports an operation that is not legal for the entity's
// current lifecycle state, such as booking an unavailable room or processing
// an already-completed payment.
type InvalidStateError struct {
	Message string
}

// NewInvalidStateError creates a new InvalidStateError.
func NewInvalidStateError(message string) *InvalidStateError {
	return &InvalidStateError{Message: message}
}

func (e *InvalidStateError) Error() string {
	return e.Message
}

// IsInvalidArgument returns true if err is (or wraps) an InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var target *InvalidArgumentError
	return errors.As(err, &target)
}

// IsInvalidState returns true if err is (or wraps) an InvalidStateError.
func IsInvalidState(err error) bool {
	var target *InvalidStateError
	return errors.As(err, &target)
}
