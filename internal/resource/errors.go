package resource

import "net/http"

// Error is the request-scoped failure type surfaced by lifecycle operations.
// Every failure is detected before any state mutation and maps directly onto
// the wire envelope {"error":{message,type,param,code}}.
type Error struct {
	Status  int
	Message string
	Param   string // offending parameter, empty when not applicable
	Code    string
}

func (e *Error) Error() string { return e.Message }

const (
	CodeInvalidRequest   = "invalid_request_error"
	CodeResourceNotFound = "resource_not_found"
)

func InvalidRequest(message, param string) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Message: message,
		Param:   param,
		Code:    CodeInvalidRequest,
	}
}

func NotFound(message string) *Error {
	return &Error{
		Status:  http.StatusNotFound,
		Message: message,
		Code:    CodeResourceNotFound,
	}
}
