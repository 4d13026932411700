package application

import "errors"

// InvalidBookingError is the single error kind BookingService surfaces.
// Domain-level argument and state errors are both collapsed into it, with
// the original message preserved.
type InvalidBookingError struct {
	Message string
	Err     error
}

// NewInvalidBookingError creates an InvalidBookingError wrapping an optional cause.
func NewInvalidBookingError(message string, cause error) *InvalidBookingError {
	return &InvalidBookingError{Message: message, Err: cause}
}

func (e *InvalidBookingError) Error() string { return e.Message }

func (e *InvalidBookingError) Unwrap() error { return e.Err }

// InvalidPaymentError is the single error kind PaymentService surfaces.
type InvalidPaymentError struct {
	Message string
	Err     error
}

// NewInvalidPaymentError creates an InvalidPaymentError wrapping an optional cause.
func NewInvalidPaymentError(message string, cause error) *InvalidPaymentError {
	return &InvalidPaymentError{Message: message, Err: cause}
}

func (e *InvalidPaymentError) Error() string { return e.Message }

func (e *InvalidPaymentError) Unwrap() error { return e.Err }

// IsInvalidBooking returns true if err is (or wraps) an InvalidBookingError.
func IsInvalidBooking(err error) bool {
	var target *InvalidBookingError
	return errors.As(err, &target)
}

// IsInvalidPayment returns true if err is (or wraps) an InvalidPaymentError.
func IsInvalidPayment(err error) bool {
	var target *InvalidPaymentError
	return errors.As(err, &target)
}
