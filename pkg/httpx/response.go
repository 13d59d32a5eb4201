// Package httpx holds small HTTP helpers shared by the storefront handlers:
// JSON responses, middleware chaining and per-key rate limiting.
package httpx

import (
	"encoding/json"
	"net/http"
)

// WriteJSON writes a JSON response with the given status code. It sets
// Content-Type and no-store cache headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes a uniform JSON error body.
func WriteError(w http.ResponseWriter, code int, errCode, message string) {
	WriteJSON(w, code, map[string]string{
		"error":   errCode,
		"message": message,
	})
}

// NoCache sets Cache-Control and Pragma headers to prevent caching. Required
// for responses derived from session state.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
