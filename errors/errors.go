package errors

import (
	"fmt"

	"github.com/eaugeas/ordtree/logs"
)

// Error is a failure identified by a code that callers can
// switch on, along with a human-readable description
type Error struct {
	// ErrorCode is a unique identifier for the error that can be used to identify
	// the particular type of error encountered
	ErrorCode int `json:"errorCode"`

	// Description is a human-readable description of the error that occurred
	// to aid the client in debugging
	Description string `json:"description"`
}

// New creates a new Error
func New(code int, description string) *Error {
	return &Error{ErrorCode: code, Description: description}
}

// Newf creates a new Error formatting its description
func Newf(code int, format string, args ...interface{}) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Error is the implementation of go's error interface for Error
func (e *Error) Error() string {
	return e.Description
}

// Log implementation of logs.Loggable
func (e *Error) Log(fields logs.Fields) {
	fields.Add("error_code", e.ErrorCode)
	fields.Add("description", e.Description)
}

// Code returns the code of err if it is an *Error, or 0
// otherwise
func Code(err error) int {
	if e, ok := err.(*Error); ok {
		return e.ErrorCode
	}

	return 0
}
