package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/dom/superheroes-api/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Error bodies carry either "error" or "errors", never both.
type ErrorResponse struct {
	Error string `json:"error"`
}

type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

const (
	msgResourceNotFound   = "Resource not found"
	msgHeroNotFound       = "Hero not found"
	msgHeroOrPowerMissing = "Hero or Power not found"
	msgBadRequest         = "Bad request"
	msgMethodNotAllowed   = "Method not allowed"
	msgInternal           = "Internal server error"
	msgValidationErrors   = "validation errors"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

func writeValidationErrors(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{Errors: []string{msgValidationErrors}})
}

// NotFound answers unmatched routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, msgResourceNotFound)
}

// MethodNotAllowed answers known paths hit with an unsupported verb.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
}

// idParam parses the {id} route parameter. The router only matches digits,
// so a failure here means the value overflowed.
func idParam(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 0)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// decodeJSON reads a single JSON object from the body into v.
// Any failure is reported as domain.ErrBadRequest.
func decodeJSON(r *http.Request, v any) error {
	var raw json.RawMessage
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBadRequest, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data after JSON object", domain.ErrBadRequest)
	}
	if len(raw) == 0 || raw[0] != '{' {
		return fmt.Errorf("%w: body must be a JSON object", domain.ErrBadRequest)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBadRequest, err)
	}
	return nil
}

func validationField(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Field
	}
	return ""
}

func logError(r *http.Request, op string, err error) *zerolog.Event {
	return zerolog.Ctx(r.Context()).Error().Str("op", op).Err(err)
}

func logWarn(r *http.Request, op string, err error) *zerolog.Event {
	return zerolog.Ctx(r.Context()).Warn().Str("op", op).Err(err)
}
