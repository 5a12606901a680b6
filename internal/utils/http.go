// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for writing JSON HTTP responses, extracting bearer
// credentials from requests, HTTP client initialization, identifier
// generation, and other common operations.
package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// bearerScheme is the authorization scheme expected in the
// Authorization header, compared case-insensitively.
const bearerScheme = "Bearer"

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Parameters:
//
//	w          - the HTTP response writer to write the response to
//	data       - any value to be serialized as JSON (struct, map, slice, nil, etc.)
//	statusCode - HTTP status code to set in the response (e.g. http.StatusOK)
//
// Returns:
//
//	int   - number of bytes written to the response body
//	error - non-nil if JSON marshaling fails
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
//	WriteJSON(w, map[string]string{"error": "not found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// BearerToken extracts the bearer credential from the request's
// Authorization header.
//
// Returns the raw token and an ok flag:
//   - ok == true  — the header carried a "Bearer <token>" value
//   - ok == false — the header is absent, uses another scheme,
//     or carries an empty credential
//
// The scheme is matched case-insensitively; surrounding whitespace
// around the credential is trimmed. No validation of the token itself
// happens here.
func BearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	scheme, credential, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	credential = strings.TrimSpace(credential)
	if credential == "" {
		return "", false
	}

	return credential, true
}
