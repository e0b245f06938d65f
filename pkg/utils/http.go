package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
)

func WriteJSON(w http.ResponseWriter, payload any, code int) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(payload)
}

func DecodeBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// SuccessResponse is the envelope for every successful JSON payload
// swagger:model SuccessResponse
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func WriteSuccess(w http.ResponseWriter, data any, code int) error {
	return WriteJSON(w, SuccessResponse{Success: true, Data: data}, code)
}

// ErrorResponse is the envelope for every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}

func WriteError(w http.ResponseWriter, message string, code int) error {
	return WriteJSON(w, ErrorResponse{
		Success:   false,
		Error:     message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, code)
}

// ValidationErrorResponse carries field-specific validation messages
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	Success   bool              `json:"success"`
	Error     string            `json:"error"`
	Fields    map[string]string `json:"fields,omitempty"`
	Timestamp string            `json:"timestamp"`
}

func WriteValidationError(w http.ResponseWriter, err error) error {
	res := ValidationErrorResponse{
		Success:   false,
		Error:     "invalid request",
		Fields:    make(map[string]string),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, err := range ve {
			res.Fields[err.Field()] = err.Tag()
		}
	}

	return WriteJSON(w, res, http.StatusBadRequest)
}
