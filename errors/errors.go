package errors

import "github.com/ihilario9/Binary-Search-Tree/logs"

// Error is an application error that carries a code so that callers
// can tell apart the different failures without parsing messages
type Error struct {
	// ErrorCode is a unique identifier for the error that can be used to identify
	// the particular type of error encountered
	ErrorCode int `json:"errorCode"`

	// Description is a human-readable description of the error that occurred
	// to aid in debugging
	Description string `json:"description"`

	// Cause is the underlying error, if any
	Cause error `json:"-"`
}

// Error is the implementation of go's error interface for Error
func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Description + ": " + e.Cause.Error()
	}

	return e.Description
}

// Unwrap returns the underlying cause of the error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Log implementation of logs.Loggable for Error
func (e *Error) Log(fields logs.Fields) {
	fields.Add("error_code", e.ErrorCode)
	fields.Add("description", e.Description)
	if e.Cause != nil {
		fields.Add("cause", e.Cause.Error())
	}
}

// New creates a new error with the code and description
func New(code int, description string) *Error {
	return &Error{ErrorCode: code, Description: description}
}

// Wrap creates a new error with the code and description
// caused by err
func Wrap(code int, err error, description string) *Error {
	return &Error{ErrorCode: code, Description: description, Cause: err}
}
