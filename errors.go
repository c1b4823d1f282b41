package folio

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to be a coarse, stable vocabulary shared across
// implementations. Infrastructure errors that carry no code are
// reported as EINTERNAL to callers.
const (
	EAMBIGUOUS   = "ambiguous"   // query matches more than one work
	ECONFIG      = "config"      // catalog/data mismatch, not retryable
	EINTERNAL    = "internal"    // unexpected internal error
	EINVALID     = "invalid"     // validation failed
	ENOTFOUND    = "not_found"   // entity does not exist
	EUNAVAILABLE = "unavailable" // a storage tier could not be used
)

// Error represents an application error with a machine-readable code
// and a human-readable message.
type Error struct {
	// Code is one of the E* constants above.
	Code string

	// Message is a human-readable description of the error.
	Message string

	// Candidates lists the matching work titles for EAMBIGUOUS errors.
	// It is nil for all other codes.
	Candidates []string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("folio error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode returns the code of the root error, if available; EINTERNAL
// for non-application errors; and an empty string for a nil error.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of the root error, if available; a
// generic message for non-application errors; and an empty string for
// a nil error.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// ErrorCandidates returns the candidate titles attached to an
// EAMBIGUOUS error, or nil.
func ErrorCandidates(err error) []string {
	var e *Error
	if errors.As(err, &e) {
		return e.Candidates
	}
	return nil
}

// Errorf is a helper for constructing an Error with a formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
