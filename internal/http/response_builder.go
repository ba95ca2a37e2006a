// Package http provides HTTP server and handler implementations.
//
// This file implements the Builder Pattern for JSON responses and the
// mapping from domain errors to status codes.

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"spesegen/internal/core"
	applog "spesegen/internal/log"
	"spesegen/internal/services"
)

// ErrorKind labels an error body so clients can branch without parsing text.
type ErrorKind string

const (
	KindInvalidArgument  ErrorKind = "invalid_argument"
	KindQuery            ErrorKind = "query_error"
	KindUnknownQuery     ErrorKind = "unknown_query"
	KindStoreUnavailable ErrorKind = "store_unavailable"
	KindExportDisabled   ErrorKind = "export_disabled"
	KindRateLimited      ErrorKind = "rate_limited"
	KindInternal         ErrorKind = "internal"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error     string    `json:"error"`
	Kind      ErrorKind `json:"kind"`
	RequestID string    `json:"request_id,omitempty"`
}

// JSONResponseBuilder provides a fluent API for building JSON responses.
type JSONResponseBuilder struct {
	statusCode int
	body       any
	headers    map[string]string
}

// NewJSONResponse creates a new response builder with default 200 status.
func NewJSONResponse() *JSONResponseBuilder {
	return &JSONResponseBuilder{
		statusCode: http.StatusOK,
		headers:    make(map[string]string),
	}
}

// Status sets the HTTP status code for the response.
func (b *JSONResponseBuilder) Status(code int) *JSONResponseBuilder {
	b.statusCode = code
	return b
}

// Header adds a custom header to the response.
func (b *JSONResponseBuilder) Header(name, value string) *JSONResponseBuilder {
	b.headers[name] = value
	return b
}

// Body sets the value encoded as the response body.
func (b *JSONResponseBuilder) Body(v any) *JSONResponseBuilder {
	b.body = v
	return b
}

// Write sends the built response to the http.ResponseWriter.
func (b *JSONResponseBuilder) Write(w http.ResponseWriter) {
	for name, value := range b.headers {
		w.Header().Set(name, value)
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(b.statusCode)
	if b.body != nil {
		_ = json.NewEncoder(w).Encode(b.body)
	}
}

// classify maps a domain error to a status code and kind.
func classify(err error) (int, ErrorKind) {
	switch {
	case errors.Is(err, core.ErrInvalidArgument):
		return http.StatusBadRequest, KindInvalidArgument
	case errors.Is(err, core.ErrQuery):
		return http.StatusBadRequest, KindQuery
	case errors.Is(err, core.ErrUnknownQuery):
		return http.StatusNotFound, KindUnknownQuery
	case errors.Is(err, core.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, KindStoreUnavailable
	case errors.Is(err, services.ErrExportDisabled):
		return http.StatusNotImplemented, KindExportDisabled
	default:
		return http.StatusInternalServerError, KindInternal
	}
}

// ErrorResponse builds the response for err. Internal errors are logged and
// their text is not sent to the client.
func ErrorResponse(r *http.Request, err error) *JSONResponseBuilder {
	status, kind := classify(err)
	msg := err.Error()
	if kind == KindInternal {
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Request failed",
			applog.FieldError, err,
			applog.FieldPath, r.URL.Path)
		msg = http.StatusText(status)
	}
	return NewJSONResponse().
		Status(status).
		Body(ErrorBody{Error: msg, Kind: kind, RequestID: applog.RequestID(r.Context())})
}

// BadRequestError creates a 400 response for malformed input.
func BadRequestError(r *http.Request, message string) *JSONResponseBuilder {
	return NewJSONResponse().
		Status(http.StatusBadRequest).
		Body(ErrorBody{Error: message, Kind: KindInvalidArgument, RequestID: applog.RequestID(r.Context())})
}
