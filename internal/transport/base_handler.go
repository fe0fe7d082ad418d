package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/frahmantamala/personnel-management/internal"
	"github.com/frahmantamala/personnel-management/pkg/logger"
	"github.com/go-chi/chi"
)

// GenericErrorMessage is the only body a client sees for unexpected failures.
const GenericErrorMessage = "An error occurred while processing your request."

// BaseHandler provides common functionality for HTTP handlers
type BaseHandler struct {
	Logger         *slog.Logger
	RequestTimeout time.Duration
}

// NewBaseHandler creates a base handler with logger
func NewBaseHandler(lg *slog.Logger) *BaseHandler {
	if lg == nil {
		lg = logger.LoggerWrapper()
		if lg == nil {
			lg = slog.Default()
		}
	}
	return &BaseHandler{Logger: lg}
}

// WithTimeout sets the per-request deadline applied by Context.
func (h *BaseHandler) WithTimeout(d time.Duration) *BaseHandler {
	h.RequestTimeout = d
	return h
}

// Context derives the context a handler hands to its service.
func (h *BaseHandler) Context(r *http.Request) (context.Context, context.CancelFunc) {
	return internal.WithTimeout(r.Context(), h.RequestTimeout)
}

// WriteJSON writes a JSON response
func (h *BaseHandler) WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteNoContent answers 204 with an empty body.
func (h *BaseHandler) WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// WriteError writes an error response
func (h *BaseHandler) WriteError(w http.ResponseWriter, status int, message string) {
	if status >= http.StatusInternalServerError {
		h.Logger.Error("http error", "status", status, "message", message)
	} else {
		h.Logger.Warn("http error", "status", status, "message", message)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errorResp := map[string]interface{}{
		"code":    status,
		"message": message,
	}

	if err := json.NewEncoder(w).Encode(errorResp); err != nil {
		h.Logger.Error("failed to encode error response", "error", err)
	}
}

// HandleServiceError maps typed application errors to their status code and
// everything else to a generic 500 without leaking the cause.
func (h *BaseHandler) HandleServiceError(w http.ResponseWriter, err error) {
	if appErr, ok := internal.IsAppError(err); ok && appErr.StatusCode < http.StatusInternalServerError {
		h.WriteError(w, appErr.StatusCode, appErr.GetDetailedMessage())
		return
	}
	if errors.Is(err, context.DeadlineExceeded) {
		h.Logger.Error("request deadline exceeded", "error", err)
	} else {
		h.Logger.Error("unhandled service error", "error", err)
	}
	h.WriteError(w, http.StatusInternalServerError, GenericErrorMessage)
}

// DecodeJSON reads the request body into dst.
func (h *BaseHandler) DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return internal.NewValidationError("request body is required", internal.ErrCodeInvalidBody)
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return internal.NewValidationError("request body is required", internal.ErrCodeInvalidBody)
		}
		return internal.NewValidationError(fmt.Sprintf("invalid request body: %v", err), internal.ErrCodeInvalidBody)
	}
	return nil
}

// ParseID reads an integer URL parameter. Ids that match no row, zero and
// negatives included, are left for the service to report as not found.
func (h *BaseHandler) ParseID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, internal.NewValidationError(fmt.Sprintf("invalid %s: %q", name, raw), internal.ErrCodeInvalidID)
	}
	return id, nil
}

// ExtractTokenFromHeader extracts Bearer token from Authorization header
func (h *BaseHandler) ExtractTokenFromHeader(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ""
	}

	return authHeader[7:]
}
