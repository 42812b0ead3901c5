package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

type apiError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

var (
	errInvalidPayload = apiError{Status: http.StatusBadRequest, Code: "INVALID_PAYLOAD", Message: "Invalid request payload"}
	errNotFound       = apiError{Status: http.StatusNotFound, Code: "NOT_FOUND", Message: "Record not found"}
	errUnauthorized   = apiError{Status: http.StatusUnauthorized, Code: "UNAUTHORIZED", Message: "Authentication required"}
	errInternal       = apiError{Status: http.StatusInternalServerError, Code: "INTERNAL_ERROR", Message: "An internal error occurred"}
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, e apiError) {
	writeJSON(w, e.Status, e)
}

// decodeValid decodes a JSON body into dst and runs struct validation. On failure it
// writes a 400 response and returns false.
func (s *server) decodeValid(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		writeError(w, errInvalidPayload)
		return false
	}

	if err := s.validate.Struct(dst); err != nil {
		writeError(w, validationError(err))
		return false
	}
	return true
}

func validationError(err error) apiError {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errInvalidPayload
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fe.Field()+" failed "+fe.Tag())
	}
	return apiError{Status: http.StatusBadRequest, Code: "VALIDATION_FAILED", Message: strings.Join(msgs, "; ")}
}
