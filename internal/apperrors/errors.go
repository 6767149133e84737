package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError is the application error type. Every error crossing a service
// boundary is one of these so callers can tell a rejected input from a
// missing record from a failing store without string matching.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Domain   string      `json:"domain"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s:%s] %s (%v)", e.Domain, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Domain, e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap attaches an underlying cause to a new AppError.
func Wrap(err error, code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

// Validation reports malformed or missing input. Terminal for the request,
// never retried.
func Validation(domain, message string) *AppError {
	return New(CodeValidationFailed, domain, message, http.StatusBadRequest)
}

// NotFound reports a referenced entity that does not exist.
func NotFound(domain, message string) *AppError {
	return New(CodeNotFound, domain, message, http.StatusNotFound)
}

// Storage wraps a backing-store failure. Idempotent reads may be retried by
// the caller; writes are surfaced as-is so an admin knows the write did not
// happen.
func Storage(domain string, err error) *AppError {
	return Wrap(err, CodeStorageError, domain, "storage operation failed", http.StatusInternalServerError)
}

// Notification wraps a best-effort side-channel failure. Always logged,
// never propagated to the caller.
func Notification(domain string, err error) *AppError {
	return Wrap(err, CodeNotificationError, domain, "notification dispatch failed", http.StatusInternalServerError)
}

// Conflict reports a business-rule violation such as withdrawing a vote that
// was never cast.
func Conflict(domain, message string) *AppError {
	return New(CodeConflict, domain, message, http.StatusBadRequest)
}

// Internal wraps an unexpected system error.
func Internal(err error) *AppError {
	return Wrap(err, CodeInternalError, "system", "internal server error", http.StatusInternalServerError)
}

// Is and As re-export the stdlib helpers so call sites only import this
// package for error handling.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// IsCode reports whether err is an AppError carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	var ae *AppError
	if stderrors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}

// IsNotFound is a shorthand for the most commonly branched-on code.
func IsNotFound(err error) bool {
	return IsCode(err, CodeNotFound)
}

// HTTPStatus extracts the HTTP status for err, defaulting to 500 for
// anything that is not an AppError.
func HTTPStatus(err error) int {
	var ae *AppError
	if stderrors.As(err, &ae) && ae.HTTPCode != 0 {
		return ae.HTTPCode
	}
	return http.StatusInternalServerError
}
