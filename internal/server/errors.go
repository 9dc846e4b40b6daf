package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	apperr "github.com/matzehuels/wordgrid/pkg/errors"
)

// errorResponse is the JSON body of every failed request.
type errorResponse struct {
	Code    apperr.Code `json:"code"`
	Message string      `json:"message"`
}

func errNotFound(path string) error {
	return apperr.New(apperr.ErrCodeNotFound, "no route for %s", path)
}

// statusFor maps an error to its HTTP status and public body. Errors without
// a code are reported as internal errors without their details.
func statusFor(err error) (int, errorResponse) {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, errorResponse{apperr.ErrCodeTimeout, "request timed out"}
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, errorResponse{apperr.ErrCodeTimeout, "request canceled"}
	}

	code := apperr.GetCode(err)
	body := errorResponse{Code: code, Message: apperr.UserMessage(err)}
	switch {
	case apperr.IsValidation(err):
		return http.StatusBadRequest, body
	case code == apperr.ErrCodeNotFound, code == apperr.ErrCodeFileNotFound:
		return http.StatusNotFound, body
	case code == apperr.ErrCodeUnsupported:
		return http.StatusNotImplemented, body
	case code == apperr.ErrCodeNetwork:
		return http.StatusBadGateway, body
	case code == apperr.ErrCodeTimeout:
		return http.StatusGatewayTimeout, body
	}
	return http.StatusInternalServerError, errorResponse{apperr.ErrCodeInternal, "internal error"}
}

func writeError(w http.ResponseWriter, err error) {
	status, body := statusFor(err)
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
