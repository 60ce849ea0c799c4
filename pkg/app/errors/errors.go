// Package errors contains helper functions and types to work with errors
package errors

import (
	"errors"
	"net/http"
)

// Category defines error category
type Category int

const (
	// CategoryDataError The client sent invalid data: a malformed body, amount,
	// commitment, secret or account.
	CategoryDataError Category = iota + 1
	// CategoryUnauthorized The request carries no usable caller identity
	CategoryUnauthorized
	// CategoryForbidden The caller is known but may not act on the resource now
	// (wrong party, deadline not reached or already passed)
	CategoryForbidden
	// CategoryResourceNotFound The escrow, order, fill or request does not exist
	CategoryResourceNotFound
	// CategoryDataConflict The resource is already finalized or the id is taken
	CategoryDataConflict
	// CategoryLocked A payout for the resource is in flight, or the engine is paused
	CategoryLocked
	// CategoryRateLimited The client exceeded its request budget
	CategoryRateLimited
	// CategoryGeneralError The service failed in an unexpected way
	CategoryGeneralError
)

var categoryStatus = map[Category]int{
	CategoryDataError:        http.StatusBadRequest,
	CategoryUnauthorized:     http.StatusUnauthorized,
	CategoryForbidden:        http.StatusForbidden,
	CategoryResourceNotFound: http.StatusNotFound,
	CategoryDataConflict:     http.StatusConflict,
	CategoryLocked:           http.StatusLocked,
	CategoryRateLimited:      http.StatusTooManyRequests,
	CategoryGeneralError:     http.StatusInternalServerError,
}

func (c Category) String() string {
	switch c {
	case CategoryDataError:
		return "CategoryDataError"
	case CategoryUnauthorized:
		return "CategoryUnauthorized"
	case CategoryForbidden:
		return "CategoryForbidden"
	case CategoryResourceNotFound:
		return "CategoryResourceNotFound"
	case CategoryDataConflict:
		return "CategoryDataConflict"
	case CategoryLocked:
		return "CategoryLocked"
	case CategoryRateLimited:
		return "CategoryRateLimited"
	default:
		return "CategoryGeneralError"
	}
}

// ServiceError is the error every API-facing layer returns. Message goes to
// the client, Err goes to the logs.
type ServiceError struct {
	Category Category
	Message  string
	// Reason is a stable machine-readable code returned alongside Message.
	Reason string
	Err    error
}

// Error method to comply with error interface
func (err ServiceError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}

// Unwrap returns the underlying error
func (err ServiceError) Unwrap() error {
	return err.Err
}

// StatusCode returns the HTTP status code for the error category
func (err ServiceError) StatusCode() int {
	if status, ok := categoryStatus[err.Category]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Is checks that provided error is a ServiceError with desired Category
func Is(err error, cat Category) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr) && svcErr.Category == cat
}

// IsInternalError reports whether err is a server-side failure rather than a
// rejected request. Errors that are not ServiceErrors count as internal.
func IsInternalError(err error) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Category == CategoryGeneralError
	}
	return true
}

func newError(cat Category, err error, fallback, message string) error {
	if err == nil {
		err = errors.New(fallback)
	}
	return &ServiceError{Category: cat, Message: message, Err: err}
}

// GeneralError hides err behind "Internal Server Error"; err is only logged.
func GeneralError(err error) error {
	return newError(CategoryGeneralError, err, "internal server error", "Internal Server Error")
}

// ResourceNotFoundError returns an error with category ResourceNotFound.
func ResourceNotFoundError(err error, message string) error {
	return newError(CategoryResourceNotFound, err, "resource not found: "+message, message)
}

// BadRequestError returns an error with category DataError.
func BadRequestError(err error, message string) error {
	return newError(CategoryDataError, err, "bad request: "+message, message)
}

// ForbiddenError returns an error with category Forbidden.
func ForbiddenError(err error, message string) error {
	return newError(CategoryForbidden, err, "request forbidden", message)
}

// UnAuthorizedError returns an error with category Unauthorized.
func UnAuthorizedError(err error, message string) error {
	return newError(CategoryUnauthorized, err, "unauthorized", message)
}

// ConflictError returns an error with category DataConflict.
func ConflictError(err error, message string) error {
	return newError(CategoryDataConflict, err, "conflict", message)
}

// LockedError returns an error with category Locked.
func LockedError(err error, message string) error {
	return newError(CategoryLocked, err, "locked", message)
}

// RateLimitedError returns an error with category RateLimited.
func RateLimitedError(message string) error {
	return newError(CategoryRateLimited, nil, "rate limited", message)
}

// WithReason attaches a reason code to a ServiceError. Other errors are returned unchanged.
func WithReason(err error, reason string) error {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		svcErr.Reason = reason
	}
	return err
}
