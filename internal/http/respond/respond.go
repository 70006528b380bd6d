// Package respond is the single place where handler results become HTTP
// responses. Handlers return an error instead of writing one; Handle renders
// it as {"error": {"message": ..., "status": ...}}.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/MrJamesThe3rd/biztime/internal/apperr"
)

// HandlerFunc is an http.HandlerFunc that reports failure by returning an error.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handle adapts fn to http.HandlerFunc, rendering any returned error.
func Handle(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			Error(w, r, err)
		}
	}
}

type errorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// Error writes the error envelope for err. Only the apperr message reaches
// the client; the underlying cause is logged.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperr.From(err)
	status := appErr.Status()

	attrs := []any{
		"status", status,
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", middleware.GetReqID(r.Context()),
	}
	if appErr.Err != nil {
		attrs = append(attrs, "error", appErr.Err.Error())
	}

	switch {
	case status >= http.StatusInternalServerError:
		slog.ErrorContext(r.Context(), "request failed", attrs...)
	case appErr.Err != nil:
		slog.DebugContext(r.Context(), "request rejected", attrs...)
	}

	JSON(w, status, errorResponse{Error: errorBody{Message: appErr.Message, Status: status}})
}

// JSON writes payload with the given status.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Status is the acknowledgement body of operations without a payload.
type Status struct {
	Status string `json:"status"`
}
