// Package handlers holds the JSON request/response helpers shared by
// all endpoint handlers.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Conflict codes carried in the "code" field of 409 responses so
// clients can tell a date overlap from a stale optimistic version.
const (
	CodeDateConflict = "date_conflict"
	CodeStaleVersion = "stale_version"
)

// ErrorResponse uniform error envelope
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`

	// ConflictingBookingID identifies the blocking booking on
	// date_conflict responses.
	ConflictingBookingID *int64 `json:"conflictingBookingId,omitempty"`
}

// DecodeJSON decodes the request body into v, rejecting unknown fields.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// RespondJSON writes v as a JSON response with the given status.
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// RespondError writes a JSON error envelope with the given status.
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondBadRequest writes a 400 error.
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondNotFound writes a 404 error.
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict writes a 409 error with a machine-readable code and,
// for date conflicts, the blocking booking id.
func RespondConflict(w http.ResponseWriter, code, message string, conflictingBookingID *int64) {
	RespondJSON(w, http.StatusConflict, ErrorResponse{
		Error:                message,
		Code:                 code,
		ConflictingBookingID: conflictingBookingID,
	})
}

// RespondInternalError writes a 500 error.
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, "internal server error")
}
