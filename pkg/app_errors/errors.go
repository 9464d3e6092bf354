package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrValidation          = errors.New("validation failed")
	ErrInvalidInput        = ErrValidation
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrForbidden           = errors.New("actor is not allowed to perform this action")
	ErrCapacityExceeded    = errors.New("event capacity exceeded")
	ErrAlreadyProcessed    = errors.New("already processed")
	ErrGateway             = errors.New("payment gateway error")
	ErrInternalServerError = errors.New("internal server error")

	ErrNotFound              = errors.New("not found")
	ErrEventNotFound         = fmt.Errorf("event %w", ErrNotFound)
	ErrUserNotFound          = fmt.Errorf("user %w", ErrNotFound)
	ErrBookingNotFound       = fmt.Errorf("booking %w", ErrNotFound)
	ErrTransactionNotFound   = fmt.Errorf("transaction %w", ErrNotFound)
	ErrWaitlistEntryNotFound = fmt.Errorf("waitlist entry %w", ErrNotFound)

	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrAlreadyBooked     = errors.New("user already holds a confirmed booking")
	ErrEventNotFull      = errors.New("event is not at capacity")
	ErrRefundNotEligible = errors.New("booking is not eligible for a refund")
	ErrInvalidSignature  = errors.New("invalid webhook signature")
	ErrEventIgnored      = errors.New("gateway event ignored")
	ErrLocked            = errors.New("resource is locked by another operation")
)

// GatewayError carries the payment gateway's failure details. It matches ErrGateway
// under errors.Is so callers do not need to know the concrete type.
type GatewayError struct {
	Op         string
	Code       string
	StatusCode int
	Err        error
}

func (e *GatewayError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("gateway %s failed (%d %s): %v", e.Op, e.StatusCode, e.Code, e.Err)
	}
	return fmt.Sprintf("gateway %s failed: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

func (e *GatewayError) Is(target error) bool {
	return target == ErrGateway
}

// Validation wraps ErrValidation with a field-level message.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
