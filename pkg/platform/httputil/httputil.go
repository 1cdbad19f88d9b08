// Package httputil centralizes JSON response writing so every endpoint emits
// the same envelopes.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	"mortar/pkg/platform/sentinel"
)

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into its HTTP status and a JSON error
// envelope. Unrecognized errors map to 500 and omit the description so
// internals never leak to clients.
func WriteError(w http.ResponseWriter, err error) {
	status, code := classify(err)
	body := map[string]string{"error": code}
	if status != http.StatusInternalServerError && err != nil {
		body["error_description"] = err.Error()
	}
	WriteJSON(w, status, body)
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, sentinel.ErrUntracked):
		return http.StatusNotFound, "untracked"
	case errors.Is(err, sentinel.ErrUnknownKey):
		return http.StatusNotFound, "unknown_key"
	case errors.Is(err, sentinel.ErrMissingGeometry):
		return http.StatusConflict, "missing_geometry"
	case errors.Is(err, sentinel.ErrInvalidState):
		return http.StatusUnprocessableEntity, "invalid_state"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
