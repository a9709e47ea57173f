// Package middleware provides HTTP middleware for the API server.
package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/agenticlabs/semsearch/domain/search"
	"github.com/agenticlabs/semsearch/internal/log"
)

// ErrServer is the sentinel for server-side errors, matchable with errors.Is.
var ErrServer = errors.New("server error")

// APIError is an error with an associated HTTP status code, raised by
// handlers for caller mistakes.
type APIError struct {
	code    int
	message string
	cause   error
}

// NewAPIError creates a new APIError.
func NewAPIError(code int, message string, cause error) *APIError {
	return &APIError{
		code:    code,
		message: message,
		cause:   cause,
	}
}

// Code returns the HTTP status code.
func (e *APIError) Code() int { return e.code }

// Message returns the caller-facing message.
func (e *APIError) Message() string { return e.message }

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("api error %d: %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("api error %d: %s", e.code, e.message)
}

// Unwrap returns the underlying cause.
func (e *APIError) Unwrap() error { return e.cause }

// ServerError is an error representing a server-side failure.
type ServerError struct {
	statusCode int
	message    string
}

// NewServerError creates a new ServerError.
func NewServerError(statusCode int, message string) *ServerError {
	return &ServerError{
		statusCode: statusCode,
		message:    message,
	}
}

// StatusCode returns the HTTP status code.
func (e *ServerError) StatusCode() int { return e.statusCode }

// Message returns the error message.
func (e *ServerError) Message() string { return e.message }

// Error implements the error interface.
func (e *ServerError) Error() string {
	return fmt.Sprintf("server error %d: %s", e.statusCode, e.message)
}

// Is makes ServerError matchable against ErrServer.
func (e *ServerError) Is(target error) bool {
	return target == ErrServer
}

// errorResponse is the JSON body for error responses.
type errorResponse struct {
	Error string `json:"error"`
}

// WriteError writes a JSON error response with a status derived from the
// error type. Unknown errors are reported as 500 without leaking internals.
func WriteError(w http.ResponseWriter, r *http.Request, err error, logger *log.Logger) {
	status := http.StatusInternalServerError
	message := "internal server error"

	var apiErr *APIError
	var serverErr *ServerError

	switch {
	case errors.As(err, &apiErr):
		status = apiErr.Code()
		message = apiErr.Message()
	case errors.As(err, &serverErr):
		status = serverErr.StatusCode()
		message = serverErr.Message()
	case errors.Is(err, search.ErrInvalidQuery):
		status = http.StatusBadRequest
		message = err.Error()
	}

	if status >= http.StatusInternalServerError {
		logger.WithContext(r.Context()).Error("request failed",
			"path", r.URL.Path,
			"error", err,
		)
	}

	WriteJSON(w, status, errorResponse{Error: message})
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
