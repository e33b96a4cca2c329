package booking

import (
	"fmt"
	"net/http"
)

// Error codes carried by ServiceError.
const (
	CodeInvalidRequest  = "invalidRequest"
	CodeSlotUnavailable = "slotUnavailable"
	CodeExternalFailure = "externalServiceFailure"
	CodeNotFound        = "notFound"
	CodeForbidden       = "forbidden"
)

// ServiceError is a booking failure with a stable code handlers map to HTTP.
type ServiceError struct {
	Code    string
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error code to a response status.
func (e *ServiceError) HTTPStatus() int {
	switch e.Code {
	case CodeInvalidRequest:
		return http.StatusBadRequest
	case CodeSlotUnavailable:
		return http.StatusConflict
	case CodeNotFound:
		return http.StatusNotFound
	case CodeForbidden:
		return http.StatusForbidden
	case CodeExternalFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func invalidRequest(format string, args ...any) *ServiceError {
	return &ServiceError{Code: CodeInvalidRequest, Message: fmt.Sprintf(format, args...)}
}

func slotUnavailable(format string, args ...any) *ServiceError {
	return &ServiceError{Code: CodeSlotUnavailable, Message: fmt.Sprintf(format, args...)}
}

func externalFailure(msg string, err error) *ServiceError {
	return &ServiceError{Code: CodeExternalFailure, Message: msg, Err: err}
}

func notFound(msg string) *ServiceError {
	return &ServiceError{Code: CodeNotFound, Message: msg}
}

func forbidden(msg string) *ServiceError {
	return &ServiceError{Code: CodeForbidden, Message: msg}
}
