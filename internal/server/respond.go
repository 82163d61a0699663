package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/amwagner/askminstrel/internal/shared"
	"github.com/charmbracelet/log"
)

// errorBody is the JSON error envelope shared by every endpoint.
type errorBody struct {
	Error             string `json:"error"`
	RetryAfterSeconds int    `json:"retry_after_seconds,omitempty"`
}

// writeJSON serializes v with the given status. Serialization failures are
// logged; headers are already written at that point so nothing more can be done.
func writeJSON(w http.ResponseWriter, logger *log.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// writeError maps an adapter or validation error to its HTTP status and JSON
// error body.
//
// Mapping: validation 400, unauthorized 401, unknown id 404, rate limited 429
// with the Retry-After hint echoed in both header and body, upstream failure
// 502, anything else 500.
func writeError(w http.ResponseWriter, logger *log.Logger, err error) {
	var rle *shared.RateLimitError
	if errors.As(err, &rle) {
		body := errorBody{Error: rle.Error()}
		if rle.RetryAfter > 0 {
			seconds := int(rle.RetryAfter.Seconds())
			body.RetryAfterSeconds = seconds
			w.Header().Set("Retry-After", strconv.Itoa(seconds))
		}
		writeJSON(w, logger, http.StatusTooManyRequests, body)
		return
	}

	var status int
	switch {
	case errors.Is(err, shared.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, shared.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, shared.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, shared.ErrRateLimited):
		status = http.StatusTooManyRequests
	case errors.Is(err, shared.ErrUpstreamUnavailable):
		status = http.StatusBadGateway
	default:
		status = http.StatusInternalServerError
	}

	if status >= 500 {
		logger.Error("lookup failed", "error", err)
	} else {
		logger.Debug("request rejected", "status", status, "error", err)
	}

	writeJSON(w, logger, status, errorBody{Error: err.Error()})
}
