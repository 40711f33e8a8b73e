package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"caregiver-app-go/internal/domain/enums"
)

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorEnvelope{Error: errorBody{Code: code, Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// writeEnumError reports an invalid enum value as a validation failure.
// Returns false when err is not an enum error so callers can fall through.
func writeEnumError(w http.ResponseWriter, err error) bool {
	var invalid *enums.InvalidValueError
	if !errors.As(err, &invalid) {
		return false
	}
	writeError(w, http.StatusUnprocessableEntity, "invalid_enum_value", invalid.Error())
	return true
}
