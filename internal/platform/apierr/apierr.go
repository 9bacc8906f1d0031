// Package apierr pairs an error with the HTTP status and machine-readable
// code that handlers use when mapping a failure onto the wire.
package apierr

import "fmt"

// Error annotates a cause with the status and code to answer with. The
// advisor's model client builds one from every non-2xx upstream response.
type Error struct {
	Status int
	Code   string
	Err    error
}

// Error prefers the wrapped cause, then the code, then the status.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}
