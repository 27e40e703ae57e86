package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"pdf-toolkit/internal/domain"
)

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeEngineError maps a domain error to an HTTP status and writes it
func writeEngineError(w http.ResponseWriter, err error) {
	writeError(w, statusForError(err), err.Error())
}

// statusForError maps the engine's error taxonomy onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrPageOutOfRange),
		errors.Is(err, domain.ErrInsufficientInputs),
		errors.Is(err, domain.ErrInvalidSelection):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrCorruptDocument),
		errors.Is(err, domain.ErrPasswordRequired),
		errors.Is(err, domain.ErrAuthenticationFailed),
		errors.Is(err, domain.ErrEncryptionUnsupported),
		errors.Is(err, domain.ErrConversionFailed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrExternalToolMissing):
		return http.StatusServiceUnavailable
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// decodeBody decodes a JSON request body into dst, rejecting unknown fields
func decodeBody(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
