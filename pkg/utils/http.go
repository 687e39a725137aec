package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Envelope is the uniform response wrapper. The HTTP status is repeated in Code.
// Handlers put the payload under a resource-specific key via Data.
type Envelope map[string]any

func NewEnvelope(code int, message string) Envelope {
	return Envelope{
		"status":  code < http.StatusBadRequest,
		"code":    code,
		"message": message,
	}
}

// With adds a payload field to the envelope.
func (e Envelope) With(key string, value any) Envelope {
	e[key] = value
	return e
}

func WriteJSON(w http.ResponseWriter, payload any, code int) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(payload)
}

// WriteOK writes a successful envelope carrying value under key.
func WriteOK(w http.ResponseWriter, code int, message, key string, value any) error {
	env := NewEnvelope(code, message)
	if key != "" {
		env.With(key, value)
	}
	return WriteJSON(w, env, code)
}

func DecodeBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// ErrorResponse describes a standard error envelope
// swagger:model ErrorResponse
type ErrorResponse struct {
	Status  bool   `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func WriteError(w http.ResponseWriter, message string, code int) error {
	return WriteJSON(w, ErrorResponse{Code: code, Message: message}, code)
}

// WriteErrorDetail is WriteError with the underlying error text attached.
func WriteErrorDetail(w http.ResponseWriter, message string, err error, code int) error {
	res := ErrorResponse{Code: code, Message: message}
	if err != nil {
		res.Error = err.Error()
	}
	return WriteJSON(w, res, code)
}

// ValidationErrorResponse contains field-specific validation messages
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	Status  bool              `json:"status"`
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func WriteValidationError(w http.ResponseWriter, err error) error {
	return writeValidation(w, "invalid request", err, http.StatusBadRequest)
}

// WriteInvalidID rejects a malformed path identifier.
func WriteInvalidID(w http.ResponseWriter, err error) error {
	return writeValidation(w, "invalid id", err, http.StatusUnprocessableEntity)
}

func writeValidation(w http.ResponseWriter, message string, err error, code int) error {
	res := ValidationErrorResponse{
		Code:    code,
		Message: message,
		Fields:  make(map[string]string),
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, err := range ve {
			field := err.Field()
			res.Fields[field] = err.Tag()
		}
	}

	return WriteJSON(w, res, code)
}
