package booking

import (
	"errors"
	"fmt"
)

// Error codes surfaced by the booking service. Handlers map these to HTTP
// statuses; Details carries the offending entities (seat numbers, available
// days, hours until departure).
const (
	CodeValidation          = "validationError"
	CodeNotFound            = "notFound"
	CodeSchedule            = "scheduleError"
	CodeTiming              = "timingError"
	CodeSeatNotFound        = "seatNotFound"
	CodeSeatUnavailable     = "seatUnavailable"
	CodeSeatClassMismatch   = "seatClassMismatch"
	CodeDataIntegrity       = "dataIntegrity"
	CodeAuthorization       = "authorization"
	CodeAlreadyCancelled    = "alreadyCancelled"
	CodeCancellationWindow  = "cancellationWindow"
	CodeTransactionConflict = "transactionConflict"
	CodeUnknown             = "unknown"
)

// Error is a typed booking failure with a machine-readable code.
type Error struct {
	Code    string
	Message string
	Details map[string]interface{}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

func newErrorWithDetails(code, msg string, details map[string]interface{}) *Error {
	return &Error{Code: code, Message: msg, Details: details}
}

// AsError unwraps err into a booking *Error if it is one.
func AsError(err error) (*Error, bool) {
	var be *Error
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}
