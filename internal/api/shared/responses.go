package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

// FieldError identifies a single invalid field in a request.
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// FieldErrorList is an error aggregating per-field validation failures.
// Update DTOs return it from their Validate method so every offending
// field is reported at once.
type FieldErrorList []FieldError

// Error implements the error interface for FieldErrorList.
func (l FieldErrorList) Error() string {
	msgs := make([]string, 0, len(l))
	for _, fe := range l {
		if fe.Field == "" {
			msgs = append(msgs, fe.Message)
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// ErrorResponse defines the standard error response structure.
type ErrorResponse struct {
	Error   string       `json:"error"`
	Fields  []FieldError `json:"fields,omitempty"`
	TraceID string       `json:"trace_id,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes a JSON error response with the given status code
// and message. It also sets the TraceID from the request context if available.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	RespondWithJSON(w, r, status, ErrorResponse{
		Error:   message,
		TraceID: GetTraceID(r.Context()),
	})
}

// RespondWithValidationError writes a 422 response listing the offending
// fields. Validation failures never reach the store, so this is always a
// caller-input problem and is logged at debug level only.
func RespondWithValidationError(w http.ResponseWriter, r *http.Request, fields []FieldError) {
	traceID := GetTraceID(r.Context())

	slog.Debug("request validation failed",
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method,
		"field_count", len(fields))

	RespondWithJSON(w, r, http.StatusUnprocessableEntity, ErrorResponse{
		Error:   "Validation error",
		Fields:  fields,
		TraceID: traceID,
	})
}

// RespondWithErrorAndLog writes a JSON error response and also logs the
// detailed error. The full error stays in the logs; only the sanitized
// message reaches the client.
//
// Log level strategy: 5xx at ERROR, 4xx at DEBUG. All errors in this API
// are synchronous caller-input problems, so nothing here warrants WARN.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", err.Error()),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, ErrorResponse{
		Error:   userMessage,
		TraceID: traceID,
	})
}
